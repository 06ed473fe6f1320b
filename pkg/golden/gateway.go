package golden

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/vvka-141/baseline/internal/config"
	"github.com/vvka-141/baseline/internal/diskwrite"
	"github.com/vvka-141/baseline/internal/logging"
	"github.com/vvka-141/baseline/internal/normalize"
	"github.com/vvka-141/baseline/internal/pathresolve"
	"github.com/vvka-141/baseline/internal/resources"
	"github.com/vvka-141/baseline/pkg/baseline"
)

// Gateway reads baselines from a catalog and, in generate mode, rewrites their
// source files. Safe for concurrent use by multiple goroutines.
type Gateway struct {
	catalog  baseline.Catalog
	mode     baseline.Mode
	resolver baseline.PathResolver
	writer   baseline.FileWriter
	logger   baseline.Logger
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithMode sets the run mode. The default is baseline.ModeAssert.
func WithMode(mode baseline.Mode) Option {
	return func(g *Gateway) { g.mode = mode }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger baseline.Logger) Option {
	return func(g *Gateway) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithResolver replaces the working-directory based project resolver.
func WithResolver(resolver baseline.PathResolver) Option {
	return func(g *Gateway) {
		if resolver != nil {
			g.resolver = resolver
		}
	}
}

// WithFileWriter replaces the process-wide disk writer. Gateways given the
// same writer share its write lock.
func WithFileWriter(writer baseline.FileWriter) Option {
	return func(g *Gateway) {
		if writer != nil {
			g.writer = writer
		}
	}
}

// New creates a Gateway over catalog.
// Panics if catalog is nil.
func New(catalog baseline.Catalog, opts ...Option) *Gateway {
	if catalog == nil {
		panic("catalog cannot be nil")
	}

	g := &Gateway{
		catalog:  catalog,
		mode:     baseline.ModeAssert,
		resolver: pathresolve.New(),
		writer:   diskwrite.Default(),
		logger:   logging.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewFromConfig creates a Gateway using the mode and test root of cfg.
// Options are applied after the configuration.
func NewFromConfig(cfg *config.Config, catalog baseline.Catalog, opts ...Option) (*Gateway, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base := []Option{
		WithMode(cfg.Mode),
		WithResolver(pathresolve.New(pathresolve.WithTestRoot(cfg.TestRoot))),
	}
	if cfg.Verbose {
		base = append(base, WithLogger(logging.NewConsoleLogger(true)))
	}
	return New(catalog, append(base, opts...)...), nil
}

// NewFromDir resolves the configuration of dir (baseline.yaml, .env and the
// process environment) and creates a Gateway from it.
func NewFromDir(dir string, catalog baseline.Catalog, opts ...Option) (*Gateway, error) {
	cfg, err := config.Resolve(dir)
	if err != nil {
		return nil, err
	}
	return NewFromConfig(cfg, catalog, opts...)
}

// LoadCatalog builds a catalog for binaryID from the files under root in
// fsys, usually an embed.FS declared next to the tests. Resource names are
// paths inside fsys regardless of root, so they match the paths UpdateFile
// writes to.
func LoadCatalog(binaryID string, fsys fs.FS, root string) (baseline.Catalog, error) {
	return resources.FromFS(binaryID, fsys, root)
}

// Mode returns the run mode the gateway was built with.
func (g *Gateway) Mode() baseline.Mode { return g.mode }

// GetResourceStream opens the resource relName of binaryID.
//
// A missing resource is a hard failure reported through t, except for an
// OutputFixture in generate mode, which yields nil silently so the caller
// can produce it. The caller closes the returned stream.
func (g *Gateway) GetResourceStream(t baseline.TestingT, binaryID, relName string, class baseline.ResourceClass) io.ReadCloser {
	t.Helper()

	name := resources.QualifiedName(binaryID, relName)
	if !g.catalog.Exists(name) {
		if g.mode == baseline.ModeGenerate && class == baseline.OutputFixture {
			g.logger.Verbose("baseline %s not found, pending generation", name)
			return nil
		}
		t.Fatalf("%s: %s", baseline.ErrResourceNotFound, name)
		return nil
	}

	stream := g.catalog.Open(name)
	if stream == nil {
		t.Fatalf("manifest resource %s exists but could not be opened", name)
		return nil
	}
	g.logger.Verbose("opened baseline %s", name)
	return stream
}

// ReadResourceText returns the canonical text of a resource and whether it was found.
// Failures are reported through t exactly as by GetResourceStream.
func (g *Gateway) ReadResourceText(t baseline.TestingT, binaryID, relName string, class baseline.ResourceClass) (string, bool) {
	t.Helper()

	stream := g.GetResourceStream(t, binaryID, relName, class)
	if stream == nil {
		return "", false
	}
	defer stream.Close()

	raw, err := io.ReadAll(stream)
	if err != nil {
		t.Fatalf("failed to read manifest resource %s: %v", resources.QualifiedName(binaryID, relName), err)
		return "", false
	}
	return normalize.NormalizeBytes(raw), true
}

// ExpectedPath returns the file UpdateFile would write for relName of binaryID.
func (g *Gateway) ExpectedPath(binaryID, relName string) (string, error) {
	if err := validateRelName(relName); err != nil {
		return "", err
	}

	projectDir, err := g.resolver.ResolveProjectPath(binaryID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", baseline.ErrWriteFailed, err)
	}
	return filepath.Join(projectDir, filepath.FromSlash(strings.ReplaceAll(relName, "\\", "/"))), nil
}

// UpdateFile rewrites the source file of relName with next when the gateway
// runs in generate mode and next differs from previous. In assert mode it
// does nothing. The content is written verbatim.
func (g *Gateway) UpdateFile(binaryID, relName, previous, next string) error {
	if g.mode != baseline.ModeGenerate {
		return nil
	}
	if previous == next {
		g.logger.Verbose("baseline %s unchanged", resources.QualifiedName(binaryID, relName))
		return nil
	}

	return g.write(binaryID, relName, next)
}

func (g *Gateway) write(binaryID, relName, content string) error {
	target, err := g.ExpectedPath(binaryID, relName)
	if err != nil {
		g.logger.Error("cannot resolve baseline %s: %v", relName, err)
		return err
	}

	if err := g.writer.WriteFile(target, content); err != nil {
		g.logger.Error("failed to update baseline %s: %v", target, err)
		return err
	}
	g.logger.Info("updated baseline %s", target)
	return nil
}

// Verify checks actual against the OutputFixture relName.
//
// In assert mode a mismatch is reported through t.Errorf with a diff of the
// canonical texts. In generate mode the baseline file is rewritten when the
// content changed, and a write failure fails the test.
func (g *Gateway) Verify(t baseline.TestingT, binaryID, relName, actual string) {
	t.Helper()

	expected, found := g.ReadResourceText(t, binaryID, relName, baseline.OutputFixture)

	if g.mode == baseline.ModeGenerate {
		var err error
		switch {
		case !found:
			err = g.write(binaryID, relName, actual)
		case expected == normalize.Normalize(actual):
			// line endings alone never trigger a rewrite
		default:
			err = g.UpdateFile(binaryID, relName, expected, actual)
		}
		if err != nil {
			t.Fatalf("failed to update baseline %s: %v", relName, err)
		}
		return
	}

	if !found {
		return
	}
	if diff := cmp.Diff(expected, normalize.Normalize(actual)); diff != "" {
		t.Errorf("baseline %s mismatch (-want +got):\n%s", resources.QualifiedName(binaryID, relName), diff)
	}
}

func validateRelName(relName string) error {
	p := strings.ReplaceAll(relName, "\\", "/")
	if p == "" || path.IsAbs(p) || filepath.IsAbs(relName) {
		return fmt.Errorf("%q: %w", relName, baseline.ErrInvalidResourcePath)
	}
	clean := path.Clean(p)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("%q: %w", relName, baseline.ErrInvalidResourcePath)
	}
	return nil
}
