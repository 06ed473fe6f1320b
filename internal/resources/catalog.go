package resources

import (
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/vvka-141/baseline/internal/files/filesystem"
	"github.com/vvka-141/baseline/pkg/baseline"
)

// QualifiedName derives the catalog name of relPath inside binary.
// Both '/' and '\' count as path separators.
func QualifiedName(binary, relPath string) string {
	name := strings.ReplaceAll(relPath, "\\", "/")
	name = strings.TrimPrefix(name, "./")
	name = strings.ReplaceAll(name, "/", baseline.NamespaceSeparator)
	return binary + baseline.NamespaceSeparator + name
}

// Catalog is a baseline.Catalog assembled from one or more mounted file trees.
type Catalog struct {
	mu      sync.RWMutex
	entries map[string]filesystem.File
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[string]filesystem.File)}
}

// Mount registers every regular file under root in provider as a resource of binary.
// The mount is all-or-nothing: on error the catalog is left unchanged.
func (c *Catalog) Mount(binary string, provider filesystem.FileSystemProvider, root string) error {
	return c.mount(binary, provider, root, "")
}

// mount is Mount with prefix joined in front of every relative path before
// the qualified name is derived.
func (c *Catalog) mount(binary string, provider filesystem.FileSystemProvider, root, prefix string) error {
	if binary == "" {
		return fmt.Errorf("binary name is required: %w", baseline.ErrInvalidConfig)
	}
	if provider == nil {
		return fmt.Errorf("provider is required: %w", baseline.ErrInvalidConfig)
	}

	dir, err := provider.Open(root)
	if err != nil {
		return fmt.Errorf("failed to mount %s for %s: %w", root, binary, err)
	}

	staged := make(map[string]filesystem.File)
	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}
		if file.Info().IsDir() {
			return nil
		}

		rel := file.RelativePath()
		if prefix != "" {
			rel = path.Join(prefix, rel)
		}
		name := QualifiedName(binary, rel)
		if prev, dup := staged[name]; dup {
			return fmt.Errorf("%s and %s both map to %s: %w",
				prev.RelativePath(), file.RelativePath(), name, baseline.ErrNameCollision)
		}
		staged[name] = file
		return nil
	})
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for name := range staged {
		if prev, dup := c.entries[name]; dup {
			return fmt.Errorf("%s is already mounted from %s: %w", name, prev.Path(), baseline.ErrNameCollision)
		}
	}
	for name, file := range staged {
		c.entries[name] = file
	}
	return nil
}

// Exists implements baseline.Catalog.
func (c *Catalog) Exists(qualifiedName string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[qualifiedName]
	return ok
}

// Open implements baseline.Catalog. A resource that exists but cannot be
// opened also yields nil.
func (c *Catalog) Open(qualifiedName string) io.ReadCloser {
	c.mu.RLock()
	file, ok := c.entries[qualifiedName]
	c.mu.RUnlock()
	if !ok {
		return nil
	}

	rc, err := file.Open()
	if err != nil {
		return nil
	}
	return rc
}

// Names returns every qualified name in the catalog, sorted.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of resources in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

var _ baseline.Catalog = (*Catalog)(nil)
