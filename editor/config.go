package editor

// Config configures an editor State.
type Config struct {
	// Forwarded to buffer.NewHistory.
	HistoryLimit int

	// Rows scrolled per wheel notch or scroll key. Defaults to 1.
	ScrollStep int

	// Reserve the last screen row for the status bar.
	StatusBar bool

	ReadOnly bool

	KeyMap    KeyMap
	Clipboard Clipboard
	OnChange  func(ChangeEvent)
}

func (c Config) withDefaults() Config {
	if c.ScrollStep <= 0 {
		c.ScrollStep = 1
	}
	if c.KeyMap.isZero() {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}

// Clipboard is the copy/paste backend. Errors are not reported; the editor
// only edits once the clipboard call succeeded, so a failed cut or paste
// leaves the document unchanged.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}
