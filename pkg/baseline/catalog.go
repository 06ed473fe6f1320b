package baseline

import "io"

// Catalog is the set of resources bundled with a test binary, addressed by qualified name.
// Implementations must be safe for concurrent use by multiple goroutines.
type Catalog interface {
	// Exists reports whether a resource is registered under exactly this name.
	// Comparison is case-sensitive; no prefix or partial matching is performed.
	Exists(qualifiedName string) bool

	// Open returns a stream over the resource content, or nil when the name
	// does not exist. The caller closes the stream.
	Open(qualifiedName string) io.ReadCloser
}

// TestingT is the subset of testing.TB the gateway uses to report failures.
// *testing.T and *testing.B satisfy it.
type TestingT interface {
	Helper()
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// FileWriter overwrites files on disk. Every Gateway write goes through one.
type FileWriter interface {
	// WriteFile creates or truncates path and writes content verbatim.
	WriteFile(path string, content string) error
}

// PathResolver maps a project name to its source directory on disk.
type PathResolver interface {
	ResolveProjectPath(projectName string) (string, error)
}
