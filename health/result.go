package health

import "time"

// Result contains the outcome of a single check invocation.
type Result struct {
	// Name is the display name of the check.
	Name string

	// Success is true when the check returned true without error.
	Success bool

	// Duration is how long the check took.
	Duration time.Duration

	// Timestamp is when the check started.
	Timestamp time.Time

	// Err is the error returned or recovered from the check, if any.
	Err error
}

// Summary aggregates the results of one run.
type Summary struct {
	Successes int
	Failures  int
	Elapsed   time.Duration
}

// Total returns the number of checks executed in the run.
func (s Summary) Total() int {
	return s.Successes + s.Failures
}

// OK reports whether no check failed. An empty run is OK.
func (s Summary) OK() bool {
	return s.Failures == 0
}

// Summarize counts successes and failures in results. Elapsed is left zero.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		if r.Success {
			s.Successes++
		} else {
			s.Failures++
		}
	}
	return s
}
