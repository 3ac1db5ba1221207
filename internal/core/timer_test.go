package core

import (
	"testing"
	"time"
)

func TestTimersFireInOrder(t *testing.T) {
	tm := NewTimers()
	var got []int

	tm.After(30*time.Millisecond, func() { got = append(got, 3) })
	tm.After(10*time.Millisecond, func() { got = append(got, 1) })
	tm.After(10*time.Millisecond, func() { got = append(got, 2) })

	tm.Advance(5 * time.Millisecond)
	if len(got) != 0 {
		t.Fatalf("nothing should fire before deadline, got %v", got)
	}

	tm.Advance(25 * time.Millisecond)
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("fired %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("fired[%d] = %d, expected %d", i, got[i], want[i])
		}
	}
	if tm.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", tm.Pending())
	}
}

func TestTimersCancel(t *testing.T) {
	tm := NewTimers()
	fired := false
	id := tm.After(10*time.Millisecond, func() { fired = true })

	if !tm.Active(id) {
		t.Fatal("timer should be active after scheduling")
	}
	if !tm.Cancel(id) {
		t.Fatal("Cancel should report true for a pending timer")
	}
	if tm.Cancel(id) {
		t.Error("second Cancel should report false")
	}

	tm.Advance(time.Second)
	if fired {
		t.Error("cancelled timer fired")
	}
	if tm.Cancel(0) {
		t.Error("zero id should never be pending")
	}
}

func TestTimersNowDuringCallback(t *testing.T) {
	tm := NewTimers()
	var at time.Duration
	tm.After(40*time.Millisecond, func() { at = tm.Now() })

	tm.Advance(100 * time.Millisecond)
	if at != 40*time.Millisecond {
		t.Errorf("Now() inside callback = %v, expected 40ms", at)
	}
	if tm.Now() != 100*time.Millisecond {
		t.Errorf("Now() after Advance = %v, expected 100ms", tm.Now())
	}
}

func TestTimersChained(t *testing.T) {
	tm := NewTimers()
	count := 0
	var tick func()
	tick = func() {
		count++
		if count < 5 {
			tm.After(10*time.Millisecond, tick)
		}
	}
	tm.After(10*time.Millisecond, tick)

	// A callback scheduling inside the window fires in the same Advance.
	tm.Advance(50 * time.Millisecond)
	if count != 5 {
		t.Errorf("chained timer fired %d times, expected 5", count)
	}
}

func TestTimersStop(t *testing.T) {
	tm := NewTimers()
	for i := 0; i < 10; i++ {
		tm.After(time.Duration(i)*time.Millisecond, func() {
			t.Error("stopped timer fired")
		})
	}
	tm.Stop()
	if tm.Pending() != 0 {
		t.Errorf("Pending() after Stop = %d", tm.Pending())
	}
	tm.Advance(time.Second)
}
