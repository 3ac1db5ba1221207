// Package parental implements the tap pattern that keeps small hands
// out of the settings screen.
package parental

import (
	"time"

	"github.com/vovakirdan/tui-playroom/internal/core"
)

// Lock opens after a fixed number of taps in quick succession.
// Every tap that does not open it schedules its own reset of the counter,
// so the taps must all land within one reset window of the first.
type Lock struct {
	timers  *core.Timers
	taps    int
	reset   time.Duration
	count   int
	pending []core.TimerID
}

// New creates a lock needing taps presses within reset. It schedules on timers.
func New(timers *core.Timers, taps int, reset time.Duration) *Lock {
	if taps < 1 {
		taps = 1
	}
	return &Lock{timers: timers, taps: taps, reset: reset}
}

// Tap registers one press and reports whether the lock opened.
func (l *Lock) Tap() bool {
	if l.count >= l.taps-1 {
		l.count = 0
		return true
	}
	l.count++
	l.prune()
	l.pending = append(l.pending, l.timers.After(l.reset, func() {
		l.count = 0
	}))
	return false
}

// Count returns the taps registered since the last reset.
func (l *Lock) Count() int {
	return l.count
}

// Stop cancels pending resets and clears the counter.
func (l *Lock) Stop() {
	for _, id := range l.pending {
		l.timers.Cancel(id)
	}
	l.pending = nil
	l.count = 0
}

func (l *Lock) prune() {
	kept := l.pending[:0]
	for _, id := range l.pending {
		if l.timers.Active(id) {
			kept = append(kept, id)
		}
	}
	l.pending = kept
}
