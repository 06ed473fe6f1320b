package filesystem

import (
	"io"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// File represents an individual file with its metadata and content accessor
type File interface {
	// Path returns the location of the file inside its provider
	Path() string

	// RelativePath returns the slash-separated path relative to the directory being walked
	RelativePath() string

	// Info returns file metadata
	Info() FileInfo

	// Open returns a stream over the file content. The caller closes it.
	Open() (io.ReadCloser, error)
}

// Directory represents a directory that can be traversed to discover files
type Directory interface {
	// Path returns the location of the directory inside its provider
	Path() string

	// Walk traverses the directory tree, calling the provided function for each file and directory.
	// Entries are visited in lexical order. If the function returns an error, walking stops.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider is a factory for creating Directory instances
type FileSystemProvider interface {
	// Open opens a directory at the specified path
	Open(path string) (Directory, error)
}
