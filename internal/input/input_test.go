package input

import (
	"bufio"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

var t0 = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestParseArrowKeysAndLetters(t *testing.T) {
	var s keyState
	parseBytes(&s, []byte("\x1b[A\x1b[Dd"), t0)
	in := s.build(t0)
	if !in.Up || !in.Left || !in.Right || in.Down {
		t.Fatalf("unexpected input %+v", in)
	}
}

func TestHeldKeyExpires(t *testing.T) {
	var s keyState
	parseBytes(&s, []byte("w"), t0)
	if !s.build(t0.Add(10 * time.Millisecond)).Up {
		t.Fatal("key should still be held shortly after the press")
	}
	if s.build(t0.Add(keyHoldDuration)).Up {
		t.Fatal("key should be released after the hold duration")
	}
}

func TestFirePressedIsEdgeTriggered(t *testing.T) {
	var s keyState
	parseBytes(&s, []byte(" "), t0)

	first := s.build(t0)
	if !first.Fire || !first.FirePressed {
		t.Fatalf("first tick after press: %+v, want Fire and FirePressed", first)
	}
	second := s.build(t0.Add(5 * time.Millisecond))
	if !second.Fire || second.FirePressed {
		t.Fatalf("second tick of the same press: %+v, want Fire without FirePressed", second)
	}

	// Key released, then pressed again.
	released := s.build(t0.Add(fireHoldDuration))
	if released.Fire {
		t.Fatal("fire should be released")
	}
	repress := t0.Add(fireHoldDuration + 20*time.Millisecond)
	parseBytes(&s, []byte(" "), repress)
	if again := s.build(repress); !again.FirePressed {
		t.Fatal("new press after release should trigger the edge again")
	}
}

// holdFire simulates holding fire for total: a press at t0, the first
// auto-repeat after 600 ms, then one repeat every 40 ms, polled at 60 FPS.
// press delivers one key at the given time. It returns how many ticks
// reported FirePressed.
func holdFire(s *keyState, total time.Duration, press func(time.Time)) int {
	const (
		repeatDelay = 600 * time.Millisecond
		repeatRate  = 40 * time.Millisecond
		tick        = time.Second / 60
	)
	next := time.Duration(0)
	presses := 0
	for at := time.Duration(0); at < total; at += tick {
		for next <= at {
			press(t0.Add(next))
			if next == 0 {
				next = repeatDelay
			} else {
				next += repeatRate
			}
		}
		if s.build(t0.Add(at)).FirePressed {
			presses++
		}
	}
	return presses
}

func TestHeldFireWithKeyRepeatFiresOnce(t *testing.T) {
	var s keyState
	got := holdFire(&s, 2*time.Second, func(at time.Time) {
		parseBytes(&s, []byte(" "), at)
	})
	if got != 1 {
		t.Fatalf("FirePressed ticks = %d, want 1", got)
	}
}

func TestHeldFireKeyEventsFireOnce(t *testing.T) {
	var s keyState
	got := holdFire(&s, 2*time.Second, func(at time.Time) {
		applyKeyEvent(&s, tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), at)
	})
	if got != 1 {
		t.Fatalf("FirePressed ticks = %d, want 1", got)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, b := range []byte{'q', 'Q', '\x03'} {
		var s keyState
		parseBytes(&s, []byte{b}, t0)
		if !s.build(t0).Quit {
			t.Errorf("byte %q did not request quit", b)
		}
	}
}

func TestStreamQuitsOnEOF(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("")))
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s.Poll().Quit {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("closed stream never reported quit")
}

func TestStopReleasesUnpolledStream(t *testing.T) {
	// More bytes than the channel buffers, and nobody polls.
	s := StartStream(bufio.NewReader(strings.NewReader(strings.Repeat("w", 1024))))
	s.Stop()
	s.Stop()
	select {
	case <-s.exited:
	case <-time.After(2 * time.Second):
		t.Fatal("reader goroutine still running after Stop")
	}
}

func TestApplyKeyEvent(t *testing.T) {
	var s keyState
	applyKeyEvent(&s, tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), t0)
	applyKeyEvent(&s, tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), t0)
	in := s.build(t0)
	if !in.Left || !in.FirePressed {
		t.Fatalf("unexpected input %+v", in)
	}

	applyKeyEvent(&s, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), t0)
	if !s.build(t0).Quit {
		t.Fatal("escape should request quit")
	}
}
