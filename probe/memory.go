package probe

import (
	"context"
	"fmt"
	"runtime"
)

// DefaultMemoryThreshold is the critical heap usage ratio.
const DefaultMemoryThreshold = 0.95

// Memory checks that heap allocation stays below a fraction of a limit.
type Memory struct {
	// Threshold is the usage ratio at which the check fails.
	// Value should be between 0 and 1. Default: 0.95
	Threshold float64

	// MaxAlloc is the allocation limit in bytes.
	// If zero, memory obtained from the OS (MemStats.Sys) is used.
	MaxAlloc uint64

	// ReadStats is injected for testing; nil uses runtime.ReadMemStats.
	ReadStats func(*runtime.MemStats)
}

// Name returns "memory".
func (p *Memory) Name() string {
	return "memory"
}

// Check compares current heap allocation against the threshold.
func (p *Memory) Check(ctx context.Context) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	threshold := p.Threshold
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultMemoryThreshold
	}

	read := p.ReadStats
	if read == nil {
		read = runtime.ReadMemStats
	}
	var stats runtime.MemStats
	read(&stats)

	maxAlloc := p.MaxAlloc
	if maxAlloc == 0 {
		maxAlloc = stats.Sys
	}
	if maxAlloc == 0 {
		// Nothing to compare against.
		return true, nil
	}

	usage := float64(stats.Alloc) / float64(maxAlloc)
	if usage >= threshold {
		return false, fmt.Errorf("%w: %.1f%% of %d bytes", ErrMemoryCritical, usage*100, maxAlloc)
	}
	return true, nil
}
