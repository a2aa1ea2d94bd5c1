package health

// Reporter receives progress from a Runner. The terminal implementation
// lives in package report.
//
// Contract:
// - Calls for one run arrive in order from a single goroutine:
//   Begin, then CheckStarted/CheckFinished per check, then Summary.
// - Implementations must not panic; the Runner does not contain reporter failures.
type Reporter interface {
	Begin(total int)
	CheckStarted(name string)
	CheckFinished(result Result)
	Summary(summary Summary)
}

// NopReporter returns a Reporter that produces no output.
func NopReporter() Reporter {
	return nopReporter{}
}

type nopReporter struct{}

func (nopReporter) Begin(int)            {}
func (nopReporter) CheckStarted(string)  {}
func (nopReporter) CheckFinished(Result) {}
func (nopReporter) Summary(Summary)      {}
