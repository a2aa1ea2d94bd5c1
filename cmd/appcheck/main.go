package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		// The report already describes failed checks.
		if !errors.Is(err, ErrChecksFailed) {
			fmt.Fprintf(os.Stderr, "appcheck: %v\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "appcheck",
	Short:         "Run application health checks",
	Long:          "Appcheck runs the health checks listed in a config file and reports each result in the terminal.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}
