package config

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// ExpandEnv replaces every ${VAR} in s with the value of VAR.
//
// A bare $VAR is left untouched so secrets containing dollar signs survive
// decoding. $$ emits a literal $. Every unset variable is reported in a
// single ErrMissingEnv error, sorted by name.
func ExpandEnv(s string) (string, error) {
	const dollarSentinel = "\x00APPCHECK_DOLLAR\x00"
	s = strings.ReplaceAll(s, "$$", dollarSentinel)

	missing := make(map[string]struct{})
	s = envVarPattern.ReplaceAllStringFunc(s, func(ref string) string {
		key := ref[2 : len(ref)-1]
		v, ok := os.LookupEnv(key)
		if !ok {
			missing[key] = struct{}{}
		}
		return v
	})
	if len(missing) > 0 {
		keys := make([]string, 0, len(missing))
		for k := range missing {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return "", fmt.Errorf("%w: %s", ErrMissingEnv, strings.Join(keys, ", "))
	}

	return strings.ReplaceAll(s, dollarSentinel, "$"), nil
}
