package filesystem

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
)

// embedFile implements File for an fs.FS entry
type embedFile struct {
	fsys    fs.FS
	absPath string // path within the fs.FS (always uses forward slashes)
	relPath string
	info    fs.FileInfo
}

func (f *embedFile) Path() string         { return f.absPath }
func (f *embedFile) RelativePath() string { return f.relPath }
func (f *embedFile) Info() FileInfo       { return f.info }

func (f *embedFile) Open() (io.ReadCloser, error) {
	return f.fsys.Open(f.absPath)
}

// embedDirectory implements Directory for an fs.FS subtree
type embedDirectory struct {
	fsys    fs.FS
	absPath string
}

func (d *embedDirectory) Path() string { return d.absPath }

func (d *embedDirectory) Walk(fn func(File, error) error) error {
	return fs.WalkDir(d.fsys, d.absPath, func(filePath string, entry fs.DirEntry, err error) error {
		if err != nil {
			return fn(nil, err)
		}

		info, err := entry.Info()
		if err != nil {
			return fn(nil, fmt.Errorf("failed to get file info for %s: %w", filePath, err))
		}

		return fn(&embedFile{
			fsys:    d.fsys,
			absPath: filePath,
			relPath: relativeSlashPath(d.absPath, filePath),
			info:    info,
		}, nil)
	})
}

// EmbedFileSystem implements FileSystemProvider for files compiled into the binary.
// It accepts any fs.FS; embed.FS is the usual source.
type EmbedFileSystem struct {
	fsys fs.FS
	root string // root path within the fs.FS (always uses forward slashes)
}

// NewEmbedFileSystem creates a new filesystem provider wrapping an embedded file tree.
// The root parameter specifies the subdirectory within fsys to treat as the root.
func NewEmbedFileSystem(fsys fs.FS, root string) *EmbedFileSystem {
	root = strings.ReplaceAll(root, "\\", "/")
	if root == "" {
		root = "."
	}
	return &EmbedFileSystem{
		fsys: fsys,
		root: path.Clean(root),
	}
}

// Open implements FileSystemProvider.Open. Paths are relative to the provider root.
func (efs *EmbedFileSystem) Open(openPath string) (Directory, error) {
	openPath = strings.ReplaceAll(openPath, "\\", "/")
	absPath := path.Clean(path.Join(efs.root, strings.TrimPrefix(openPath, "/")))

	info, err := fs.Stat(efs.fsys, absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory %s: %w", openPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}

	return &embedDirectory{fsys: efs.fsys, absPath: absPath}, nil
}

// relativeSlashPath returns target relative to base for slash-separated paths
// that are already known to share the prefix.
func relativeSlashPath(base, target string) string {
	if base == "." {
		return target
	}
	if target == base {
		return "."
	}
	return strings.TrimPrefix(target, base+"/")
}
