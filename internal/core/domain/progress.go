package domain

// ProgressFunc receives a completion percentage in [0, 100].
// Within one conversion call the values are monotonically
// non-decreasing and the final call is exactly 100, meaning "no
// further progress will be reported", not "fully succeeded".
//
// Callbacks run inline on the conversion's single thread of control;
// callers must not perform expensive work in them.
type ProgressFunc func(percent int)

// ProgressTracker emits item-granular progress for a batch of known
// size. Every strategy shares it so the percentage arithmetic cannot
// drift between near-identical loops.
type ProgressTracker struct {
	report ProgressFunc
	total  int
	done   int
}

// NewProgressTracker creates a tracker for total items.
// A nil report function is tolerated and turns emissions into no-ops.
func NewProgressTracker(report ProgressFunc, total int) *ProgressTracker {
	if report == nil {
		report = func(int) {}
	}
	if total < 1 {
		total = 1
	}
	return &ProgressTracker{report: report, total: total}
}

// Advance marks one more item as processed, converted or skipped
// alike, and emits the resulting percentage.
func (t *ProgressTracker) Advance() {
	if t.done < t.total {
		t.done++
	}
	t.report(t.done * 100 / t.total)
}

// Finish emits the terminal 100. Safe to call after any number of
// Advance calls, including zero.
func (t *ProgressTracker) Finish() {
	t.done = t.total
	t.report(100)
}
