// Package clipboard adapts the OS clipboard to editor.Clipboard.
package clipboard

import (
	"fmt"
	"io"
	"log"

	"github.com/atotto/clipboard"
)

// System reads and writes the OS clipboard. When no clipboard utility is
// available, or a call fails, it keeps the text in memory so copy and paste
// still work within one session.
type System struct {
	logger *log.Logger
	mem    string

	readAll  func() (string, error)
	writeAll func(string) error
	ok       bool
}

// New returns a System clipboard. A nil logger discards failures.
func New(logger *log.Logger) *System {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &System{
		logger:   logger,
		readAll:  clipboard.ReadAll,
		writeAll: clipboard.WriteAll,
		ok:       !clipboard.Unsupported,
	}
	if !s.ok {
		logger.Printf("clipboard: no system clipboard, using memory")
	}
	return s
}

func (s *System) ReadText() (string, error) {
	if !s.ok {
		return s.mem, nil
	}
	text, err := s.readAll()
	if err != nil {
		s.logger.Printf("clipboard: read: %v", err)
		return s.mem, nil
	}
	return text, nil
}

func (s *System) WriteText(text string) error {
	s.mem = text
	if !s.ok {
		return nil
	}
	if err := s.writeAll(text); err != nil {
		s.logger.Printf("clipboard: write: %v", err)
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}
