// Package observe provides observability primitives for health check runs.
//
// It is a pure instrumentation library: it never runs checks itself.
// The health runner wraps every check invocation with a Middleware that
// opens a span, records metrics and writes a structured log line.
package observe
