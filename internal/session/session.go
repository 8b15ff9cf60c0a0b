// Package session runs the editor against a terminal: it reads input events,
// routes them through an editor.State and paints every resulting frame.
package session

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/iw2rmb/tedit/buffer"
	"github.com/iw2rmb/tedit/editor"
	"github.com/iw2rmb/tedit/input"
	"github.com/iw2rmb/tedit/screen"
)

// Options wires a Session to its surroundings.
type Options struct {
	Input io.Reader
	Sink  screen.Sink

	// Size reports the terminal size. It is polled after every event.
	Size func() (width, height int, err error)

	// Save persists the document. Without it save requests are ignored.
	Save func(*buffer.Content) error

	Logger *log.Logger
}

// Session is a single-threaded read, update, render loop.
type Session struct {
	state  *editor.State
	reader *input.Reader
	sink   screen.Sink
	size   func() (int, int, error)
	save   func(*buffer.Content) error
	logger *log.Logger

	width, height int
}

func New(state *editor.State, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	dec := input.NewDecoder()
	dec.OnDiscard = func(seq []byte) {
		logger.Printf("input: discarded %q", seq)
	}
	return &Session{
		state:  state,
		reader: input.NewReader(opts.Input, dec),
		sink:   opts.Sink,
		size:   opts.Size,
		save:   opts.Save,
		logger: logger,
	}
}

// Run paints the first frame and processes events until the user quits or
// input ends. Input and output errors end the loop and are returned; save
// failures are logged and leave the document marked modified.
func (s *Session) Run() error {
	s.logger.Printf("session: start")
	defer s.logger.Printf("session: stop")

	s.resize()
	if err := s.paint(true, true); err != nil {
		return err
	}

	for {
		ev, err := s.reader.ReadEvent()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		res := s.state.HandleEvent(ev)
		switch res.Action {
		case editor.ActionQuit:
			return nil
		case editor.ActionSave:
			s.saveDocument()
		}

		resized := s.resize()
		if err := s.paint(res.Redraw || resized, resized); err != nil {
			return err
		}
	}
}

func (s *Session) saveDocument() {
	if s.save == nil {
		return
	}
	if err := s.save(s.state.Content()); err != nil {
		s.logger.Printf("session: %v", err)
		return
	}
	s.state.MarkSaved()
	s.logger.Printf("session: saved")
}

// resize polls the terminal size and reports whether it changed.
func (s *Session) resize() bool {
	if s.size == nil {
		return false
	}
	w, h, err := s.size()
	if err != nil {
		s.logger.Printf("session: %v", err)
		return false
	}
	if w == s.width && h == s.height {
		return false
	}
	s.width, s.height = w, h
	s.state.Resize(w, h)
	if r, ok := s.sink.(interface{ Resize(width, height int) }); ok {
		r.Resize(w, h)
	}
	s.logger.Printf("session: resize %dx%d", w, h)
	return true
}

func (s *Session) paint(full, clear bool) error {
	if clear {
		s.sink.Apply(screen.ClearScreen())
	}
	s.sink.Apply(s.state.Render(full)...)
	if err := s.sink.Flush(); err != nil {
		return fmt.Errorf("paint: %w", err)
	}
	return nil
}
