// Package fixtures provides builders and probes shared by package tests:
// in-memory resource catalogs, a recording baseline.TestingT and an
// instrumented afero filesystem.
package fixtures

import (
	"fmt"

	"github.com/vvka-141/baseline/internal/files/filesystem"
	"github.com/vvka-141/baseline/internal/resources"
)

// CatalogBuilder provides a fluent API for building in-memory resource catalogs
// for a single binary.
//
// Example usage:
//
//	catalog := NewCatalogBuilder("MyProj").
//	    AddFixture("Fixtures/Case1.txt", "input").
//	    AddFixtureDirectory("Expected", func(d *FixtureDirBuilder) {
//	        d.Add("Case1.txt", "line1\r\nline2\n")
//	    }).
//	    MustBuild()
type CatalogBuilder struct {
	binary string
	files  map[string]string // path -> content
}

// NewCatalogBuilder creates an empty builder for binary.
func NewCatalogBuilder(binary string) *CatalogBuilder {
	return &CatalogBuilder{
		binary: binary,
		files:  make(map[string]string),
	}
}

// AddFixture adds a file at the specified relative path.
func (b *CatalogBuilder) AddFixture(path, content string) *CatalogBuilder {
	b.files[path] = content
	return b
}

// AddFixtureDirectory adds files beneath a directory.
// The builder function receives a FixtureDirBuilder for that directory.
func (b *CatalogBuilder) AddFixtureDirectory(name string, builderFunc func(*FixtureDirBuilder)) *CatalogBuilder {
	builderFunc(&FixtureDirBuilder{basePath: name, files: b.files})
	return b
}

// Provider returns the accumulated files as an in-memory filesystem rooted at "/<binary>".
func (b *CatalogBuilder) Provider() *filesystem.MemoryFileSystem {
	mfs := filesystem.NewMemoryFileSystem("/" + b.binary)
	for path, content := range b.files {
		mfs.AddFile(path, content)
	}
	return mfs
}

// Build mounts the accumulated files into a new catalog.
func (b *CatalogBuilder) Build() (*resources.Catalog, error) {
	c := resources.NewCatalog()
	if err := c.Mount(b.binary, b.Provider(), "."); err != nil {
		return nil, err
	}
	return c, nil
}

// MustBuild is Build that panics on error.
func (b *CatalogBuilder) MustBuild() *resources.Catalog {
	c, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("fixtures: build catalog for %s: %v", b.binary, err))
	}
	return c
}

// FixtureDirBuilder adds files beneath one directory of a CatalogBuilder.
type FixtureDirBuilder struct {
	basePath string
	files    map[string]string
}

// Add adds a file in the current directory.
func (d *FixtureDirBuilder) Add(name, content string) *FixtureDirBuilder {
	d.files[fmt.Sprintf("%s/%s", d.basePath, name)] = content
	return d
}

// AddSubDirectory adds a nested subdirectory.
func (d *FixtureDirBuilder) AddSubDirectory(name string, builderFunc func(*FixtureDirBuilder)) *FixtureDirBuilder {
	builderFunc(&FixtureDirBuilder{
		basePath: fmt.Sprintf("%s/%s", d.basePath, name),
		files:    d.files,
	})
	return d
}
