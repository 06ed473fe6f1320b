package resources

import (
	"io/fs"
	"path"
	"strings"

	"github.com/vvka-141/baseline/internal/files/filesystem"
)

// FromFS builds a catalog of the files under root in fsys, usually an embed.FS
// declared in the test package of binary.
//
// Qualified names are relative to fsys itself, not to root: root only selects
// the subtree, so testdata/out.txt is named binary.testdata.out.txt whether
// root is "." or "testdata". This keeps every name equal to the file's path
// inside the project directory.
func FromFS(binary string, fsys fs.FS, root string) (*Catalog, error) {
	prefix := strings.TrimPrefix(path.Clean(strings.ReplaceAll(root, "\\", "/")), "/")
	if prefix == "." {
		prefix = ""
	}

	c := NewCatalog()
	if err := c.mount(binary, filesystem.NewEmbedFileSystem(fsys, "."), root, prefix); err != nil {
		return nil, err
	}
	return c, nil
}
