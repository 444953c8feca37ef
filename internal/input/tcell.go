package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// EventPoller is the part of tcell.Screen the input source needs.
type EventPoller interface {
	PollEvent() tcell.Event
}

// TcellSource reads key events from a tcell screen and reports them through
// the same held-key emulation as Stream.
type TcellSource struct {
	ch    chan *tcell.EventKey
	done  chan struct{}
	state keyState
	now   func() time.Time
}

// StartTcell spawns a goroutine polling screen events. Polling ends when the
// screen is finalized (PollEvent returns nil).
func StartTcell(p EventPoller) *TcellSource {
	s := &TcellSource{
		ch:   make(chan *tcell.EventKey, 128),
		done: make(chan struct{}),
		now:  time.Now,
	}
	go func() {
		defer close(s.done)
		for {
			ev := p.PollEvent()
			if ev == nil {
				return
			}
			if key, ok := ev.(*tcell.EventKey); ok {
				select {
				case s.ch <- key:
				default:
					// Queue full, drop the key
				}
			}
		}
	}()
	return s
}

// Poll drains pending key events (non-blocking) and returns this tick's input.
func (s *TcellSource) Poll() Input {
	now := s.now()
	quit := false

drain:
	for {
		select {
		case ev := <-s.ch:
			applyKeyEvent(&s.state, ev, now)
		case <-s.done:
			quit = true
			break drain
		default:
			break drain
		}
	}

	in := s.state.build(now)
	if quit {
		in.Quit = true
	}
	return in
}

// applyKeyEvent maps a tcell key event onto the key state.
func applyKeyEvent(state *keyState, ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyUp:
		state.up = now
	case tcell.KeyDown:
		state.down = now
	case tcell.KeyLeft:
		state.left = now
	case tcell.KeyRight:
		state.right = now
	case tcell.KeyCtrlC, tcell.KeyEscape:
		state.quit = now
	case tcell.KeyRune:
		if r := ev.Rune(); r < 0x80 {
			applyByteToState(state, byte(r), now)
		}
	}
}
