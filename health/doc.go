// Package health runs application health checks and collects their results.
//
// A check is a function that reports whether one condition holds, such as
// "the database answers a ping". A Runner holds an ordered registry of
// checks, runs them one at a time in registration order, and records one
// Result per check.
//
// # Failure isolation
//
// Nothing a check does can abort a run. Returned errors and panics are
// caught at a single boundary inside Run and recorded as a failed Result;
// the error is logged and kept in Result.Err. Isolate exposes the same
// boundary as a plain function wrapper for callers that invoke checks
// themselves.
//
// # Basic Usage
//
//	runner := health.NewRunner(health.WithReporter(report.New()))
//
//	runner.CheckHealth(checkDatabase)
//	runner.CheckHealth(checkCache)
//
//	summary := runner.Run(ctx)
//	if !summary.OK() {
//	    os.Exit(1)
//	}
//
// Results accumulate across runs until ClearResults is called. Success and
// failure counts are computed from the accumulated results, so clearing
// them also resets the counts.
//
// The Runner imposes no timeout. A check that needs one should bound its own
// work, for example with probe.WithTimeout.
package health
