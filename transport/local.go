package transport

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// LocalSave appends each sent message to a log file, the mock send target
// used in demos. Entries are separated by a timestamped header line.
type LocalSave struct {
	Path string
}

func NewLocalSave(path string) *LocalSave {
	return &LocalSave{Path: path}
}

func (l *LocalSave) Name() string { return "local" }

func (l *LocalSave) Send(_ context.Context, filename string, payload []byte) error {
	if dir := filepath.Dir(l.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
	}
	f, err := os.OpenFile(l.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening send log: %w", err)
	}
	defer f.Close()

	header := fmt.Sprintf("----- %s %s -----\n", time.Now().UTC().Format(time.RFC3339), filename)
	if _, err := f.WriteString(header); err != nil {
		return fmt.Errorf("writing send log: %w", err)
	}
	if _, err := f.Write(append(payload, '\n', '\n')); err != nil {
		return fmt.Errorf("writing send log: %w", err)
	}
	return nil
}
