package world

import "time"

// Timer is a repeating countdown advanced in discrete tick deltas.
// JustFinished is true only on the advance that crossed the period boundary,
// so a gated caller fires at most once per crossing.
type Timer struct {
	period       time.Duration
	elapsed      time.Duration
	justFinished bool
}

func NewTimer(period time.Duration) Timer {
	return Timer{period: period}
}

func (t *Timer) Advance(d time.Duration) {
	if t.period <= 0 {
		t.justFinished = false
		return
	}
	t.elapsed += d
	if t.elapsed >= t.period {
		t.justFinished = true
		t.elapsed = t.elapsed % t.period
	} else {
		t.justFinished = false
	}
}

func (t *Timer) JustFinished() bool { return t.justFinished }

func (t *Timer) Reset() {
	t.elapsed = 0
	t.justFinished = false
}

func (t *Timer) Period() time.Duration { return t.period }

// Progress is in [0,1); 0 right after a reset or crossing.
func (t *Timer) Progress() float64 {
	if t.period <= 0 {
		return 0
	}
	return float64(t.elapsed) / float64(t.period)
}

// Process tracks the reaction assigned to a block and its countdown. The
// timer keeps advancing while inputs are missing; validity only gates the
// firing instant.
type Process struct {
	Reaction *Reaction
	Timer    Timer
}

// SetReaction assigns (or replaces) the reaction and restarts the countdown
// at the new duration, discarding prior progress.
func (p *Process) SetReaction(r *Reaction) {
	p.Reaction = r
	p.Timer = NewTimer(r.Duration)
}
