// Package pathresolve locates a test project's source directory from the
// working directory a test binary was started in.
//
// Test binaries are launched from the project directory, from the shared
// test root, or from the repository root, depending on the invoking tool.
// Resolver accepts all three.
package pathresolve

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vvka-141/baseline/pkg/baseline"
)

// Resolver maps project names to source directories.
// It is stateless apart from its configuration and safe for concurrent use.
type Resolver struct {
	testRoot string
	getwd    func() (string, error)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithTestRoot sets the name of the directory that contains the test projects.
func WithTestRoot(name string) Option {
	return func(r *Resolver) {
		if name != "" {
			r.testRoot = name
		}
	}
}

// WithWorkingDir replaces os.Getwd as the source of the working directory.
func WithWorkingDir(getwd func() (string, error)) Option {
	return func(r *Resolver) {
		if getwd != nil {
			r.getwd = getwd
		}
	}
}

// New creates a Resolver using baseline.DefaultTestRoot and the process working directory.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		testRoot: baseline.DefaultTestRoot,
		getwd:    os.Getwd,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// TestRoot returns the configured test root directory name.
func (r *Resolver) TestRoot() string { return r.testRoot }

// ResolveProjectPath returns the directory holding projectName's sources:
//   - the working directory itself when its name is projectName
//   - <wd>/<projectName> when the working directory is the test root
//   - <wd>/<testRoot>/<projectName> otherwise (repository root)
func (r *Resolver) ResolveProjectPath(projectName string) (string, error) {
	if projectName == "" {
		return "", fmt.Errorf("project name is required: %w", baseline.ErrInvalidConfig)
	}

	wd, err := r.getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	wd = filepath.Clean(wd)

	switch filepath.Base(wd) {
	case projectName:
		return wd, nil
	case r.testRoot:
		return filepath.Join(wd, projectName), nil
	default:
		return filepath.Join(wd, r.testRoot, projectName), nil
	}
}

var _ baseline.PathResolver = (*Resolver)(nil)
