// Package probe provides ready-made health checks for common dependencies.
//
// Every probe exposes Name, the default display name, and Check, which has
// the health.CheckFunc signature:
//
//	tcp := &probe.TCP{Address: "localhost:5432"}
//	runner.RegisterFunc(tcp.Name(), tcp.Check)
//
// Probes return an error describing why a dependency is unhealthy. The
// health runner never bounds a check's duration, so each network probe
// applies its own timeout.
package probe
