package world

import (
	"testing"
	"time"
)

func TestTimerAdvance_EdgeFires(t *testing.T) {
	tm := NewTimer(5 * time.Second)

	tm.Advance(4999 * time.Millisecond)
	if tm.JustFinished() {
		t.Fatalf("4.999s into a 5s period must not fire")
	}

	tm.Advance(1 * time.Millisecond)
	if !tm.JustFinished() {
		t.Fatalf("crossing the period boundary must fire")
	}

	// JustFinished holds only for the crossing advance.
	tm.Advance(1 * time.Millisecond)
	if tm.JustFinished() {
		t.Fatalf("fire flag must clear on the next advance")
	}
}

func TestTimerAdvance_OverrunWrapsRemainder(t *testing.T) {
	tm := NewTimer(5 * time.Second)

	tm.Advance(12 * time.Second)
	if !tm.JustFinished() {
		t.Fatalf("overrun advance must fire")
	}
	// 12s mod 5s leaves 2s of progress toward the next firing.
	if got := tm.Progress(); got != 0.4 {
		t.Fatalf("progress = %v, want 0.4", got)
	}

	tm.Advance(3 * time.Second)
	if !tm.JustFinished() {
		t.Fatalf("remainder carries over: 2s + 3s reaches the period")
	}
}

func TestTimerReset(t *testing.T) {
	tm := NewTimer(time.Second)
	tm.Advance(time.Second)
	if !tm.JustFinished() {
		t.Fatalf("expected fire")
	}
	tm.Reset()
	if tm.JustFinished() || tm.Progress() != 0 {
		t.Fatalf("reset must clear the flag and progress")
	}
}

func TestTimerZeroPeriodNeverFires(t *testing.T) {
	var tm Timer
	tm.Advance(time.Hour)
	if tm.JustFinished() {
		t.Fatalf("unarmed timer must not fire")
	}
}

func TestProcessSetReaction_RestartsCountdown(t *testing.T) {
	w := newTestWorld(t, WorldConfig{})
	slow, _ := w.Reaction("PROCESS_IRON_TO_GOLD")
	fast, _ := w.Reaction("BOIL_HYDROGEN")

	var p Process
	p.SetReaction(slow)
	p.Timer.Advance(3 * time.Second)
	if p.Timer.Progress() == 0 {
		t.Fatalf("expected progress before swap")
	}

	p.SetReaction(fast)
	if p.Timer.Progress() != 0 {
		t.Fatalf("swapping reactions must discard prior progress")
	}
	if p.Timer.Period() != fast.Duration {
		t.Fatalf("period = %v, want %v", p.Timer.Period(), fast.Duration)
	}
}
