package scanner

// ProgressFunc receives throttled progress updates from the pipeline.
// It is invoked synchronously from the collecting/exporting goroutine and
// must return quickly; a slow callback stalls the whole run.
type ProgressFunc func(done, total int, phase string)

// Update is one progress message as delivered over a reporter channel.
type Update struct {
	Done  int
	Total int
	Phase string
}

// ChannelReporter bridges the callback contract onto a bounded channel so a
// front end can consume updates in a single loop while the pipeline runs on
// a worker goroutine. Sends block when the consumer falls behind, which
// keeps the queue bounded without dropping the guaranteed final update.
func ChannelReporter(updates chan<- Update) ProgressFunc {
	return func(done, total int, phase string) {
		updates <- Update{Done: done, Total: total, Phase: phase}
	}
}

// Throttle limits progress callbacks to roughly one per thousandth of the
// workload: every max(1, total/1000) items, plus an unconditional final
// update. Short phases still report on every item.
type Throttle struct {
	total    int
	interval int
	report   ProgressFunc
}

// NewThrottle builds a throttle for a phase of total items. A nil report
// function yields a throttle whose methods are no-ops.
func NewThrottle(total int, report ProgressFunc) *Throttle {
	interval := total / 1000
	if interval < 1 {
		interval = 1
	}
	return &Throttle{total: total, interval: interval, report: report}
}

// Start emits the initial zero-progress update for the phase.
func (t *Throttle) Start(phase string) {
	if t.report != nil {
		t.report(0, t.total, phase)
	}
}

// Tick reports the done count when it lands on the throttle interval.
func (t *Throttle) Tick(done int, phase string) {
	if t.report != nil && done%t.interval == 0 {
		t.report(done, t.total, phase)
	}
}

// Finish emits the unconditional final update with done == total.
func (t *Throttle) Finish(phase string) {
	if t.report != nil {
		t.report(t.total, t.total, phase)
	}
}
