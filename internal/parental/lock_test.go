package parental

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-playroom/internal/core"
)

func TestLockOpensOnFifthTap(t *testing.T) {
	timers := core.NewTimers()
	l := New(timers, 5, 2500*time.Millisecond)

	for i := 1; i <= 4; i++ {
		if l.Tap() {
			t.Fatalf("lock opened on tap %d", i)
		}
		timers.Advance(300 * time.Millisecond)
	}
	if !l.Tap() {
		t.Fatal("lock should open on the fifth tap")
	}
	if l.Count() != 0 {
		t.Errorf("Count() after opening = %d, expected 0", l.Count())
	}
}

func TestLockResetsAfterWindow(t *testing.T) {
	timers := core.NewTimers()
	l := New(timers, 5, 2500*time.Millisecond)

	for i := 0; i < 4; i++ {
		l.Tap()
	}
	timers.Advance(2500 * time.Millisecond)
	if l.Count() != 0 {
		t.Fatalf("Count() after reset window = %d, expected 0", l.Count())
	}
	if l.Tap() {
		t.Error("a single tap after reset should not open the lock")
	}
}

func TestLockWindowCountsFromFirstTap(t *testing.T) {
	timers := core.NewTimers()
	l := New(timers, 5, 2500*time.Millisecond)

	// Four taps spread over 3s: the first tap's reset lands in between.
	for i := 0; i < 4; i++ {
		l.Tap()
		timers.Advance(800 * time.Millisecond)
	}
	if l.Tap() {
		t.Error("taps spread past the first reset should not open the lock")
	}
}

func TestLockStop(t *testing.T) {
	timers := core.NewTimers()
	l := New(timers, 5, 2500*time.Millisecond)
	l.Tap()
	l.Tap()
	if timers.Pending() != 2 {
		t.Fatalf("Pending() = %d, expected 2", timers.Pending())
	}
	l.Stop()
	if timers.Pending() != 0 || l.Count() != 0 {
		t.Errorf("Stop left %d timers, count %d", timers.Pending(), l.Count())
	}
}
