package fixtures

import (
	"os"
	"sync/atomic"

	"github.com/spf13/afero"
)

// CountingFs wraps an afero.Fs and counts the files opened for writing.
type CountingFs struct {
	afero.Fs
	writes atomic.Int64
}

// NewCountingFs wraps fs. A nil fs gets an in-memory filesystem.
func NewCountingFs(fs afero.Fs) *CountingFs {
	if fs == nil {
		fs = afero.NewMemMapFs()
	}
	return &CountingFs{Fs: fs}
}

// Writes returns how many files were opened for writing.
func (c *CountingFs) Writes() int64 { return c.writes.Load() }

func (c *CountingFs) Create(name string) (afero.File, error) {
	c.writes.Add(1)
	return c.Fs.Create(name)
}

func (c *CountingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if flag&(os.O_WRONLY|os.O_RDWR|os.O_CREATE|os.O_TRUNC|os.O_APPEND) != 0 {
		c.writes.Add(1)
	}
	return c.Fs.OpenFile(name, flag, perm)
}
