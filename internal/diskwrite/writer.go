package diskwrite

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/spf13/afero"

	"github.com/vvka-141/baseline/pkg/baseline"
)

// DefaultFileMode is the permission used when a baseline file is created.
const DefaultFileMode os.FileMode = 0644

// Writer performs lock-protected file overwrites.
type Writer struct {
	mu   sync.Mutex
	fs   afero.Fs
	mode os.FileMode
}

var defaultWriter = sync.OnceValue(NewWriter)

// Default returns the process-wide Writer on the OS filesystem. Every caller
// gets the same instance, so all default writes share one lock.
func Default() *Writer {
	return defaultWriter()
}

// NewWriter creates a Writer on the OS filesystem.
func NewWriter() *Writer {
	return NewWriterWithFS(afero.NewOsFs())
}

// NewWriterWithFS creates a Writer on fs.
// Panics if fs is nil.
func NewWriterWithFS(fs afero.Fs) *Writer {
	if fs == nil {
		panic("fs cannot be nil")
	}
	return &Writer{fs: fs, mode: DefaultFileMode}
}

// WriteFile creates or truncates path and writes content verbatim.
// Missing parent directories are an error.
func (w *Writer) WriteFile(path string, content string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := w.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, w.mode)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", baseline.ErrWriteFailed, path, err)
	}

	if _, err := io.WriteString(f, content); err != nil {
		f.Close()
		return fmt.Errorf("%w: write %s: %w", baseline.ErrWriteFailed, path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", baseline.ErrWriteFailed, path, err)
	}
	return nil
}

var _ baseline.FileWriter = (*Writer)(nil)
