package probe

import "errors"

var (
	// ErrMissingTarget indicates a probe has no address, URL or bucket to check.
	ErrMissingTarget = errors.New("probe: missing target")

	// ErrUnexpectedStatus indicates an HTTP probe got the wrong status code.
	ErrUnexpectedStatus = errors.New("probe: unexpected status")

	// ErrMemoryCritical indicates memory usage reached the critical threshold.
	ErrMemoryCritical = errors.New("probe: memory usage critical")

	// ErrTimeout indicates a check did not finish before its deadline.
	ErrTimeout = errors.New("probe: check timed out")
)
