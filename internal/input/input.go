// Package input turns a raw terminal byte stream into per-frame game input.
package input

import (
	"bufio"
	"io"
	"time"
	"unicode/utf8"

	"github.com/tomz197/logastroids/internal/loop"
)

// HoldDuration is how long a control key counts as held after its last byte.
// Terminals only report key repeats, never releases.
const HoldDuration = 90 * time.Millisecond

// held tracks the last time each continuous control was seen.
type held struct {
	left, right, thrust, fire time.Time
}

// Stream delivers terminal bytes through a channel and remembers which
// control keys are being held.
type Stream struct {
	ch   chan byte
	held held
	// partial keeps an incomplete escape sequence or UTF-8 rune for the next read.
	partial []byte
	closed  bool
	now     func() time.Time
}

// StartStream spawns a goroutine that reads from r until it fails.
func StartStream(r io.Reader) *Stream {
	s := NewStream(make(chan byte, 256))
	br := bufio.NewReader(r)
	go func() {
		for {
			b, err := br.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// NewStream wraps an existing byte channel. Closing ch reports Quit.
func NewStream(ch chan byte) *Stream {
	return &Stream{ch: ch, now: time.Now}
}

// ReadInput drains every buffered byte without blocking. In text mode
// printable characters are collected as text instead of controls and only
// Escape quits.
func ReadInput(s *Stream, textMode bool) loop.Input {
	now := s.now()
	buf := s.partial
	carried := len(buf)
	s.partial = nil
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	// A pending tail with nothing new behind it is taken as typed.
	flush := s.closed || len(buf) == carried

	var in loop.Input
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b == '\x1b' {
			n, complete := escapeLen(buf[i:])
			if !complete && !flush {
				s.partial = append(s.partial, buf[i:]...)
				break
			}
			if n == 1 {
				in.Quit = true
				continue
			}
			if !textMode && n == 3 {
				s.applyArrow(buf[i+2], now)
			}
			i += n - 1
			continue
		}
		if textMode {
			if b >= utf8.RuneSelf {
				r, size := utf8.DecodeRune(buf[i:])
				if r == utf8.RuneError && !utf8.FullRune(buf[i:]) && !flush {
					s.partial = append(s.partial, buf[i:]...)
					break
				}
				if r != utf8.RuneError {
					in.Text = append(in.Text, r)
				}
				i += size - 1
				continue
			}
			applyTextByte(&in, b)
			continue
		}
		s.applyByte(&in, b, now)
	}

	in.Left = now.Sub(s.held.left) < HoldDuration
	in.Right = now.Sub(s.held.right) < HoldDuration
	in.Thrust = now.Sub(s.held.thrust) < HoldDuration
	in.Fire = now.Sub(s.held.fire) < HoldDuration
	if s.closed {
		in.Quit = true
	}
	return in
}

// escapeLen measures the escape sequence at the start of buf. A lone ESC
// has length 1. complete is false when more bytes may still arrive.
func escapeLen(buf []byte) (n int, complete bool) {
	if len(buf) == 1 {
		return 1, false
	}
	if buf[1] != '[' && buf[1] != 'O' {
		return 1, true
	}
	for j := 2; j < len(buf); j++ {
		if buf[j] >= 0x40 && buf[j] <= 0x7e {
			return j + 1, true
		}
	}
	return len(buf), false
}

func (s *Stream) applyArrow(code byte, now time.Time) {
	switch code {
	case 'A':
		s.held.thrust = now
	case 'C':
		s.held.right = now
	case 'D':
		s.held.left = now
	}
}

func (s *Stream) applyByte(in *loop.Input, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', 0x03:
		in.Quit = true
	case 'a', 'A', 'j', 'J':
		s.held.left = now
	case 'd', 'D', 'l', 'L':
		s.held.right = now
	case 'w', 'W', 'i', 'I':
		s.held.thrust = now
	case ' ':
		s.held.fire = now
	case 'f', 'F', 'x', 'X':
		in.Rocket = true
	case 'p', 'P':
		in.Pause = true
	case '\r', '\n':
		in.Start = true
		in.Confirm = true
	}
}

func applyTextByte(in *loop.Input, b byte) {
	switch {
	case b == '\r' || b == '\n':
		in.Confirm = true
	case b == '\b' || b == 0x7f:
		in.Backspace = true
	case b == 0x03:
		in.Quit = true
	case b >= 0x20 && b < 0x7f:
		in.Text = append(in.Text, rune(b))
	}
}
