// Package fileio loads documents from disk and writes them back with their
// original line delimiter.
package fileio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/iw2rmb/tedit/buffer"
)

const defaultPerm fs.FileMode = 0o644

// Load reads path into a Content. A file that does not exist yet loads as an
// empty document so it can be created on save.
func Load(path string) (*buffer.Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return buffer.NewContent(nil, buffer.LF), nil
		}
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return buffer.Parse(string(data)), nil
}

// Save writes content to path, rows joined by the content delimiter. An
// existing file keeps its permissions.
func Save(path string, content *buffer.Content) error {
	perm := defaultPerm
	if fi, err := os.Stat(path); err == nil {
		perm = fi.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(content.Text()), perm); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
