package health

import (
	"context"
	"sync"
	"time"

	"github.com/jonwraymond/appcheck/observe"
)

// Runner owns an ordered list of checks and the results of running them.
//
// Contract:
// - Concurrency: safe for concurrent use. Concurrent Run calls are serialized.
// - Errors: nothing a check does escapes Run.
type Runner struct {
	runMu sync.Mutex

	mu      sync.RWMutex
	checks  []*Check
	results []Result

	reporter   Reporter
	logger     observe.Logger
	middleware *observe.Middleware
	silent     bool
	now        func() time.Time
}

// Option configures a Runner.
type Option func(*Runner)

// WithReporter sets the progress reporter. Default: NopReporter.
func WithReporter(rep Reporter) Option {
	return func(r *Runner) {
		if rep != nil {
			r.reporter = rep
		}
	}
}

// WithLogger sets the logger that receives check errors.
// Default: error-level JSON logger on stderr.
func WithLogger(l observe.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMiddleware wraps the run and every check invocation with tracing,
// metrics and debug logging.
func WithMiddleware(mw *observe.Middleware) Option {
	return func(r *Runner) {
		r.middleware = mw
	}
}

// WithSilent suppresses all reporter and log output when silent is true.
func WithSilent(silent bool) Option {
	return func(r *Runner) {
		r.silent = silent
	}
}

// WithClock overrides the time source used for durations.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRunner creates a Runner with no registered checks.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		reporter: NopReporter(),
		logger:   observe.NewLogger("error"),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	// Silent wins over any reporter or logger passed in the same call,
	// including the logger inside the middleware.
	if r.silent {
		r.reporter = NopReporter()
		r.logger = observe.NopLogger()
		if r.middleware != nil {
			r.middleware = r.middleware.WithLogger(observe.NopLogger())
		}
	}
	return r
}

// Silent reports whether the runner suppresses output.
func (r *Runner) Silent() bool {
	return r.silent
}

// Register appends check to the registry and returns it unchanged.
// Registering the same check twice runs it twice.
func (r *Runner) Register(check *Check) (*Check, error) {
	if check == nil || check.fn == nil {
		return nil, ErrInvalidCheck
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks = append(r.checks, check)
	return check, nil
}

// RegisterFunc registers fn under name, deriving the name when it is empty.
func (r *Runner) RegisterFunc(name string, fn CheckFunc) (*Check, error) {
	check, err := NewCheck(name, fn)
	if err != nil {
		return nil, err
	}
	return r.Register(check)
}

// CheckHealth registers fn under its declared name and returns an isolated
// check: calling it directly never fails. Run still records, logs and
// reports the error fn returns.
func (r *Runner) CheckHealth(fn CheckFunc) (*Check, error) {
	check, err := NewCheck(Named(fn), fn)
	if err != nil {
		return nil, err
	}
	check.isolated = true
	return r.Register(check)
}

// Checks returns the registered checks in registration order.
func (r *Runner) Checks() []*Check {
	r.mu.RLock()
	defer r.mu.RUnlock()

	checks := make([]*Check, len(r.checks))
	copy(checks, r.checks)
	return checks
}

// Run executes every registered check once, in registration order, and
// appends one Result per check. It returns the summary of this run only.
//
// Run never sets a deadline; a check that blocks forever blocks Run.
func (r *Runner) Run(ctx context.Context) Summary {
	r.runMu.Lock()
	defer r.runMu.Unlock()

	checks := r.Checks()
	start := r.now()

	endRun := func(successes, failures int) {}
	if r.middleware != nil {
		ctx, endRun = r.middleware.StartRun(ctx, len(checks))
	}
	r.reporter.Begin(len(checks))

	var summary Summary
	for i, check := range checks {
		r.reporter.CheckStarted(check.name)

		result := r.execute(ctx, i+1, check)

		r.mu.Lock()
		r.results = append(r.results, result)
		r.mu.Unlock()

		if result.Success {
			summary.Successes++
		} else {
			summary.Failures++
		}
		r.reporter.CheckFinished(result)
	}

	summary.Elapsed = r.now().Sub(start)
	endRun(summary.Successes, summary.Failures)
	r.reporter.Summary(summary)
	return summary
}

func (r *Runner) execute(ctx context.Context, index int, check *Check) Result {
	meta := observe.CheckMeta{Name: check.name, Index: index}

	exec := func(ctx context.Context, meta observe.CheckMeta) (bool, error) {
		out := invoke(ctx, meta.Name, check.fn)
		return out.OK, out.Err
	}
	if r.middleware != nil {
		exec = r.middleware.Wrap(exec)
	}

	start := r.now()
	ok, err := exec(ctx, meta)
	result := Result{
		Name:      check.name,
		Success:   ok && err == nil,
		Duration:  r.now().Sub(start),
		Timestamp: start,
		Err:       err,
	}

	if err != nil {
		r.logger.WithCheck(meta).Error(ctx, "check failed",
			observe.Field{Key: "error", Value: err.Error()},
		)
	}
	return result
}

// Results returns a copy of the results accumulated since the last clear.
func (r *Runner) Results() []Result {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]Result, len(r.results))
	copy(results, r.results)
	return results
}

// ClearResults empties the result set. Registered checks are kept.
func (r *Runner) ClearResults() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = nil
}

// Successes returns the number of successful results since the last clear.
func (r *Runner) Successes() int {
	return Summarize(r.Results()).Successes
}

// Failures returns the number of failed results since the last clear.
func (r *Runner) Failures() int {
	return Summarize(r.Results()).Failures
}
