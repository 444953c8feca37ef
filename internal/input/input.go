// Package input turns raw key presses into per-tick input state.
package input

import (
	"bufio"
	"sync"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals report key repeats rather than key-up events, so holding is emulated.
const keyHoldDuration = 30 * time.Millisecond

// fireHoldDuration bridges the gap between a key press and the terminal's
// first auto-repeat (commonly 500-600 ms), so holding fire stays one press.
// Taps closer together than this also count as one press.
const fireHoldDuration = 650 * time.Millisecond

// Input represents the current tick's input state.
type Input struct {
	Quit  bool
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Fire  bool // Fire key held

	// FirePressed is true only on the tick the fire key goes from released to held.
	FirePressed bool
}

// Source yields one Input per tick.
type Source interface {
	Poll() Input
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit  time.Time
	left  time.Time
	right time.Time
	up    time.Time
	down  time.Time
	fire  time.Time

	fireHeld bool // fire state reported on the previous poll
}

// build converts key timestamps into an Input and advances the fire edge state.
func (s *keyState) build(now time.Time) Input {
	in := Input{
		Quit:  now.Sub(s.quit) < keyHoldDuration,
		Left:  now.Sub(s.left) < keyHoldDuration,
		Right: now.Sub(s.right) < keyHoldDuration,
		Up:    now.Sub(s.up) < keyHoldDuration,
		Down:  now.Sub(s.down) < keyHoldDuration,
		Fire:  now.Sub(s.fire) < fireHoldDuration,
	}
	in.FirePressed = in.Fire && !s.fireHeld
	s.fireHeld = in.Fire
	return in
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch       chan byte
	stop     chan struct{}
	stopOnce sync.Once
	exited   chan struct{} // closed when the reader goroutine returns
	state    keyState
	now      func() time.Time
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// Call Stop once the stream is no longer polled.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:     make(chan byte, 128),
		stop:   make(chan struct{}),
		exited: make(chan struct{}),
		now:    time.Now,
	}
	go func() {
		defer close(s.exited)
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			select {
			case s.ch <- b:
			case <-s.stop:
				return
			}
		}
	}()
	return s
}

// Stop releases the reader goroutine. A goroutine blocked in a read exits
// once that read returns.
func (s *Stream) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// Poll drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and accumulates all pressed keys.
// A closed stream (EOF, dropped session) reports Quit.
func (s *Stream) Poll() Input {
	now := s.now()
	var buf []byte
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	parseBytes(&s.state, buf, now)
	in := s.state.build(now)
	if closed {
		in.Quit = true
	}
	return in
}

// parseBytes updates key timestamps from a batch of raw terminal bytes.
func parseBytes(state *keyState, buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				state.up = now
				i += 2
				continue
			case 'B':
				state.down = now
				i += 2
				continue
			case 'C':
				state.right = now
				i += 2
				continue
			case 'D':
				state.left = now
				i += 2
				continue
			}
		}

		applyByteToState(state, b, now)
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03': // Ctrl-C arrives as a byte in raw mode
		state.quit = now
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'i', 'I':
		state.up = now
	case 's', 'S', 'k', 'K':
		state.down = now
	case ' ':
		state.fire = now
	}
}
