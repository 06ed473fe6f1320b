package golden_test

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/vvka-141/baseline/internal/config"
	"github.com/vvka-141/baseline/internal/diskwrite"
	"github.com/vvka-141/baseline/internal/logging"
	"github.com/vvka-141/baseline/internal/normalize"
	"github.com/vvka-141/baseline/internal/pathresolve"
	"github.com/vvka-141/baseline/internal/testing/fixtures"
	"github.com/vvka-141/baseline/pkg/baseline"
	"github.com/vvka-141/baseline/pkg/golden"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

//go:embed testdata
var testdataFS embed.FS

const nl = normalize.NativeNewline

func fixedWd(dir string) *pathresolve.Resolver {
	return pathresolve.New(pathresolve.WithWorkingDir(func() (string, error) { return dir, nil }))
}

func pkgCatalog() baseline.Catalog {
	return fixtures.NewCatalogBuilder("Pkg").
		AddFixture("out.txt", "line1\r\nline2\n").
		AddFixture("in/source.txt", "input\n").
		MustBuild()
}

func TestGetResourceStream_MissingResourcePolicy(t *testing.T) {
	tests := []struct {
		name      string
		mode      baseline.Mode
		class     baseline.ResourceClass
		wantFatal bool
	}{
		{"assert mode, missing source fixture", baseline.ModeAssert, baseline.SourceFixture, true},
		{"assert mode, missing output fixture", baseline.ModeAssert, baseline.OutputFixture, true},
		{"generate mode, missing source fixture", baseline.ModeGenerate, baseline.SourceFixture, true},
		{"generate mode, missing output fixture", baseline.ModeGenerate, baseline.OutputFixture, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := golden.New(pkgCatalog(), golden.WithMode(tt.mode))
			rt := &fixtures.RecordingT{}

			stream := gw.GetResourceStream(rt, "Pkg", "missing.txt", tt.class)
			assert.Nil(t, stream)

			if tt.wantFatal {
				require.Len(t, rt.Fatals(), 1)
				assert.Contains(t, rt.Fatals()[0], "manifest resource not found")
				assert.Contains(t, rt.Fatals()[0], "Pkg.missing.txt")
			} else {
				assert.False(t, rt.Failed())
			}
		})
	}
}

func TestGetResourceStream_Found(t *testing.T) {
	gw := golden.New(pkgCatalog())
	rt := &fixtures.RecordingT{}

	stream := gw.GetResourceStream(rt, "Pkg", "in/source.txt", baseline.SourceFixture)
	require.NotNil(t, stream)
	defer stream.Close()

	raw, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, "input\n", string(raw))
	assert.False(t, rt.Failed())
}

func TestGetResourceStream_NameIsCaseSensitive(t *testing.T) {
	catalog := fixtures.NewCatalogBuilder("MyProj").
		AddFixture("Fixtures/Case1.txt", "x").
		MustBuild()
	gw := golden.New(catalog)

	rt := &fixtures.RecordingT{}
	stream := gw.GetResourceStream(rt, "MyProj", "Fixtures/Case1.txt", baseline.SourceFixture)
	require.NotNil(t, stream)
	stream.Close()
	assert.Nil(t, gw.GetResourceStream(rt, "myproj", "fixtures/case1.txt", baseline.SourceFixture))
	assert.Len(t, rt.Fatals(), 1)
}

func TestReadResourceText_EndToEnd(t *testing.T) {
	gw := golden.New(pkgCatalog(), golden.WithMode(baseline.ModeAssert))
	rt := &fixtures.RecordingT{}

	text, found := gw.ReadResourceText(rt, "Pkg", "out.txt", baseline.OutputFixture)
	require.True(t, found)
	assert.Equal(t, "line1"+nl+"line2"+nl, text)
	assert.False(t, rt.Failed())
}

func TestReadResourceText_PendingGeneration(t *testing.T) {
	gw := golden.New(pkgCatalog(), golden.WithMode(baseline.ModeGenerate))
	rt := &fixtures.RecordingT{}

	text, found := gw.ReadResourceText(rt, "Pkg", "new.txt", baseline.OutputFixture)
	assert.False(t, found)
	assert.Empty(t, text)
	assert.False(t, rt.Failed())
}

type closeTracker struct {
	io.Reader
	closed bool
	err    error
}

func (c *closeTracker) Read(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	return c.Reader.Read(p)
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

type stubCatalog struct {
	stream *closeTracker
}

func (s *stubCatalog) Exists(name string) bool { return name == "Pkg.x.txt" }

func (s *stubCatalog) Open(name string) io.ReadCloser {
	if !s.Exists(name) || s.stream == nil {
		return nil
	}
	return s.stream
}

func TestReadResourceText_ClosesStream(t *testing.T) {
	t.Run("on success", func(t *testing.T) {
		stream := &closeTracker{Reader: strings.NewReader("a\r\n")}
		gw := golden.New(&stubCatalog{stream: stream})
		rt := &fixtures.RecordingT{}

		text, found := gw.ReadResourceText(rt, "Pkg", "x.txt", baseline.SourceFixture)
		assert.True(t, found)
		assert.Equal(t, "a"+nl, text)
		assert.True(t, stream.closed)
	})

	t.Run("on read failure", func(t *testing.T) {
		stream := &closeTracker{Reader: strings.NewReader(""), err: errors.New("disk gone")}
		gw := golden.New(&stubCatalog{stream: stream})
		rt := &fixtures.RecordingT{}

		_, found := gw.ReadResourceText(rt, "Pkg", "x.txt", baseline.SourceFixture)
		assert.False(t, found)
		assert.True(t, stream.closed)
		require.Len(t, rt.Fatals(), 1)
		assert.Contains(t, rt.Fatals()[0], "disk gone")
	})

	t.Run("exists but cannot open", func(t *testing.T) {
		gw := golden.New(&stubCatalog{})
		rt := &fixtures.RecordingT{}

		_, found := gw.ReadResourceText(rt, "Pkg", "x.txt", baseline.SourceFixture)
		assert.False(t, found)
		assert.Len(t, rt.Fatals(), 1)
	})
}

func TestUpdateFile_AssertModeNeverWrites(t *testing.T) {
	fs := fixtures.NewCountingFs(nil)
	gw := golden.New(pkgCatalog(),
		golden.WithMode(baseline.ModeAssert),
		golden.WithFileWriter(diskwrite.NewWriterWithFS(fs)),
		golden.WithResolver(fixedWd("/repo")),
	)

	require.NoError(t, gw.UpdateFile("Pkg", "out.txt", "old", "new"))
	assert.Equal(t, int64(0), fs.Writes())
}

func TestUpdateFile_UnchangedContentNeverWrites(t *testing.T) {
	fs := fixtures.NewCountingFs(nil)
	gw := golden.New(pkgCatalog(),
		golden.WithMode(baseline.ModeGenerate),
		golden.WithFileWriter(diskwrite.NewWriterWithFS(fs)),
		golden.WithResolver(fixedWd("/repo")),
	)

	require.NoError(t, gw.UpdateFile("Pkg", "out.txt", "same\n", "same\n"))
	require.NoError(t, gw.UpdateFile("Pkg", "out.txt", "", ""))
	assert.Equal(t, int64(0), fs.Writes())
}

func TestUpdateFile_ComparisonIsOrdinal(t *testing.T) {
	fs := fixtures.NewCountingFs(nil)
	require.NoError(t, fs.MkdirAll("/repo/test/Pkg", 0755))
	gw := golden.New(pkgCatalog(),
		golden.WithMode(baseline.ModeGenerate),
		golden.WithFileWriter(diskwrite.NewWriterWithFS(fs)),
		golden.WithResolver(fixedWd("/repo")),
	)

	require.NoError(t, gw.UpdateFile("Pkg", "out.txt", "a\n", "a\r\n"))
	assert.Equal(t, int64(1), fs.Writes())

	got, err := afero.ReadFile(fs, filepath.Join("/repo", "test", "Pkg", "out.txt"))
	require.NoError(t, err)
	assert.Equal(t, "a\r\n", string(got), "content is written without normalization")
}

func TestUpdateFile_SamePathFromEveryWorkingDirectory(t *testing.T) {
	repo := t.TempDir()
	projectDir := filepath.Join(repo, "test", "Pkg")
	require.NoError(t, os.MkdirAll(filepath.Join(projectDir, "expected"), 0755))
	target := filepath.Join(projectDir, "expected", "out.txt")

	workingDirs := map[string]string{
		"project directory": projectDir,
		"test root":         filepath.Join(repo, "test"),
		"repository root":   repo,
	}

	writer := diskwrite.NewWriter()
	for name, wd := range workingDirs {
		t.Run(name, func(t *testing.T) {
			gw := golden.New(pkgCatalog(),
				golden.WithMode(baseline.ModeGenerate),
				golden.WithResolver(fixedWd(wd)),
				golden.WithFileWriter(writer),
			)

			path, err := gw.ExpectedPath("Pkg", "expected/out.txt")
			require.NoError(t, err)
			assert.Equal(t, target, path)

			content := fmt.Sprintf("written from %s\r\nsecond line\n", name)
			require.NoError(t, gw.UpdateFile("Pkg", "expected/out.txt", "old", content))

			got, err := os.ReadFile(target)
			require.NoError(t, err)
			assert.Equal(t, []byte(content), got)
		})
	}
}

func TestUpdateFile_ConcurrentDistinctFiles(t *testing.T) {
	fs := fixtures.NewCountingFs(afero.NewMemMapFs())
	require.NoError(t, fs.MkdirAll(filepath.Join("/repo", "test", "Pkg", "out"), 0755))
	gw := golden.New(pkgCatalog(),
		golden.WithMode(baseline.ModeGenerate),
		golden.WithFileWriter(diskwrite.NewWriterWithFS(fs)),
		golden.WithResolver(fixedWd("/repo")),
	)

	const n = 40
	content := func(i int) string {
		return strings.Repeat(fmt.Sprintf("case %d line\n", i), 100+i)
	}

	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			return gw.UpdateFile("Pkg", fmt.Sprintf("out/case%02d.txt", i), "", content(i))
		})
	}
	require.NoError(t, g.Wait())

	for i := 0; i < n; i++ {
		got, err := afero.ReadFile(fs, filepath.Join("/repo", "test", "Pkg", "out", fmt.Sprintf("case%02d.txt", i)))
		require.NoError(t, err)
		assert.Equal(t, content(i), string(got))
	}
	assert.Equal(t, int64(n), fs.Writes())
}

func TestUpdateFile_WriteFailureIsReturned(t *testing.T) {
	var logBuf bytes.Buffer
	gw := golden.New(pkgCatalog(),
		golden.WithMode(baseline.ModeGenerate),
		golden.WithFileWriter(diskwrite.NewWriterWithFS(afero.NewReadOnlyFs(afero.NewMemMapFs()))),
		golden.WithResolver(fixedWd("/repo")),
		golden.WithLogger(logging.NewConsoleLoggerTo(&logBuf, false)),
	)

	err := gw.UpdateFile("Pkg", "out.txt", "old", "new")
	require.Error(t, err)
	assert.ErrorIs(t, err, baseline.ErrWriteFailed)
	assert.Contains(t, logBuf.String(), "[ERROR] failed to update baseline")
}

func TestUpdateFile_MissingDirectoryOnDisk(t *testing.T) {
	gw := golden.New(pkgCatalog(),
		golden.WithMode(baseline.ModeGenerate),
		golden.WithResolver(fixedWd(t.TempDir())),
	)

	err := gw.UpdateFile("Pkg", "out.txt", "old", "new")
	assert.ErrorIs(t, err, baseline.ErrWriteFailed)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestUpdateFile_ResolverFailure(t *testing.T) {
	boom := errors.New("no cwd")
	gw := golden.New(pkgCatalog(),
		golden.WithMode(baseline.ModeGenerate),
		golden.WithResolver(pathresolve.New(pathresolve.WithWorkingDir(func() (string, error) { return "", boom }))),
	)

	err := gw.UpdateFile("Pkg", "out.txt", "old", "new")
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, baseline.ErrWriteFailed)
}

func TestExpectedPath_RejectsEscapingNames(t *testing.T) {
	gw := golden.New(pkgCatalog(), golden.WithResolver(fixedWd("/repo")))

	for _, name := range []string{"", ".", "..", "../other/out.txt", "/etc/passwd", "a/../../b"} {
		t.Run(name, func(t *testing.T) {
			_, err := gw.ExpectedPath("Pkg", name)
			assert.ErrorIs(t, err, baseline.ErrInvalidResourcePath)
		})
	}

	path, err := gw.ExpectedPath("Pkg", `sub\out.txt`)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/repo", "test", "Pkg", "sub", "out.txt"), path)
}

func TestGateways_ShareWriteLock(t *testing.T) {
	fs := fixtures.NewCountingFs(nil)
	writer := diskwrite.NewWriterWithFS(fs)
	require.NoError(t, fs.MkdirAll("/repo/test/A", 0755))
	require.NoError(t, fs.MkdirAll("/repo/test/B", 0755))

	a := golden.New(pkgCatalog(), golden.WithMode(baseline.ModeGenerate), golden.WithFileWriter(writer), golden.WithResolver(fixedWd("/repo")))
	b := golden.New(pkgCatalog(), golden.WithMode(baseline.ModeGenerate), golden.WithFileWriter(writer), golden.WithResolver(fixedWd("/repo")))

	var g errgroup.Group
	for i := 0; i < 10; i++ {
		g.Go(func() error { return a.UpdateFile("A", fmt.Sprintf("f%d.txt", i), "", "a") })
		g.Go(func() error { return b.UpdateFile("B", fmt.Sprintf("f%d.txt", i), "", "b") })
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, int64(20), fs.Writes())
}

func TestVerify_AssertMode(t *testing.T) {
	gw := golden.New(pkgCatalog(), golden.WithMode(baseline.ModeAssert))

	t.Run("match ignores line endings", func(t *testing.T) {
		rt := &fixtures.RecordingT{}
		gw.Verify(rt, "Pkg", "out.txt", "line1\nline2\r\n")
		assert.False(t, rt.Failed())
	})

	t.Run("mismatch reports a diff", func(t *testing.T) {
		rt := &fixtures.RecordingT{}
		gw.Verify(rt, "Pkg", "out.txt", "line1\nchanged\n")
		require.Len(t, rt.Errors(), 1)
		assert.Contains(t, rt.Errors()[0], "Pkg.out.txt mismatch")
		assert.Contains(t, rt.Errors()[0], "changed")
	})

	t.Run("missing baseline is fatal", func(t *testing.T) {
		rt := &fixtures.RecordingT{}
		gw.Verify(rt, "Pkg", "absent.txt", "x")
		assert.Len(t, rt.Fatals(), 1)
		assert.Empty(t, rt.Errors())
	})
}

func TestVerify_GenerateMode(t *testing.T) {
	fs := fixtures.NewCountingFs(nil)
	require.NoError(t, fs.MkdirAll("/repo/test/Pkg", 0755))
	var logBuf bytes.Buffer
	gw := golden.New(pkgCatalog(),
		golden.WithMode(baseline.ModeGenerate),
		golden.WithFileWriter(diskwrite.NewWriterWithFS(fs)),
		golden.WithResolver(fixedWd("/repo")),
		golden.WithLogger(logging.NewConsoleLoggerTo(&logBuf, true)),
	)

	rt := &fixtures.RecordingT{}
	gw.Verify(rt, "Pkg", "out.txt", "line1\r\nline2\n")
	assert.Equal(t, int64(0), fs.Writes(), "unchanged baseline must not be rewritten")

	gw.Verify(rt, "Pkg", "out.txt", "line1\nline3\n")
	assert.Equal(t, int64(1), fs.Writes())

	gw.Verify(rt, "Pkg", "fresh.txt", "")
	assert.Equal(t, int64(2), fs.Writes(), "a missing baseline is created even when empty")

	exists, err := afero.Exists(fs, "/repo/test/Pkg/fresh.txt")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.False(t, rt.Failed())
	assert.Contains(t, logBuf.String(), "updated baseline")
	assert.Contains(t, logBuf.String(), "[VERBOSE] baseline Pkg.fresh.txt not found, pending generation")
}

func TestVerify_GenerateModeWriteFailureIsFatal(t *testing.T) {
	gw := golden.New(pkgCatalog(),
		golden.WithMode(baseline.ModeGenerate),
		golden.WithFileWriter(diskwrite.NewWriterWithFS(afero.NewReadOnlyFs(afero.NewMemMapFs()))),
		golden.WithResolver(fixedWd("/repo")),
	)

	rt := &fixtures.RecordingT{}
	gw.Verify(rt, "Pkg", "out.txt", "different")
	require.Len(t, rt.Fatals(), 1)
	assert.Contains(t, rt.Fatals()[0], "failed to update baseline out.txt")
}

func TestEmbeddedCatalog_WithRealTestingT(t *testing.T) {
	catalog, err := golden.LoadCatalog("golden", testdataFS, ".")
	require.NoError(t, err)

	gw := golden.New(catalog)
	assert.Equal(t, baseline.ModeAssert, gw.Mode())

	text, found := gw.ReadResourceText(t, "golden", "testdata/input.txt", baseline.SourceFixture)
	require.True(t, found)
	assert.Equal(t, "input data"+nl, text)

	gw.Verify(t, "golden", "testdata/render.golden", "expected render\n")
}

func TestEmbeddedCatalog_SubtreeRootWritesBackToEmbeddedSource(t *testing.T) {
	catalog, err := golden.LoadCatalog("golden", testdataFS, "testdata")
	require.NoError(t, err)

	fs := fixtures.NewCountingFs(nil)
	require.NoError(t, fs.MkdirAll("/repo/test/golden/testdata", 0755))
	gw := golden.New(catalog,
		golden.WithMode(baseline.ModeGenerate),
		golden.WithFileWriter(diskwrite.NewWriterWithFS(fs)),
		golden.WithResolver(fixedWd("/repo/test/golden")),
	)

	rt := &fixtures.RecordingT{}
	text, found := gw.ReadResourceText(rt, "golden", "testdata/render.golden", baseline.OutputFixture)
	require.True(t, found)
	assert.Equal(t, "expected render"+nl, text)

	path, err := gw.ExpectedPath("golden", "testdata/render.golden")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/repo", "test", "golden", "testdata", "render.golden"), path)

	gw.Verify(rt, "golden", "testdata/render.golden", "new render\n")
	assert.False(t, rt.Failed())
	assert.Equal(t, int64(1), fs.Writes())

	got, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "new render\n", string(got))

	stray, err := afero.Exists(fs, filepath.Join("/repo", "test", "golden", "render.golden"))
	require.NoError(t, err)
	assert.False(t, stray)
}

func TestNewFromConfig(t *testing.T) {
	cfg := &config.Config{Mode: baseline.ModeGenerate, TestRoot: "tests"}
	gw, err := golden.NewFromConfig(cfg, pkgCatalog(), golden.WithResolver(nil))
	require.NoError(t, err)
	assert.Equal(t, baseline.ModeGenerate, gw.Mode())

	cfg.TestRoot = "a/b"
	_, err = golden.NewFromConfig(cfg, pkgCatalog())
	assert.ErrorIs(t, err, baseline.ErrInvalidConfig)

	gw, err = golden.NewFromConfig(nil, pkgCatalog())
	require.NoError(t, err)
	assert.Equal(t, baseline.ModeAssert, gw.Mode())
}

func TestNewFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, baseline.ConfigFileName), []byte("mode: generate\n"), 0644))
	for _, key := range []string{baseline.EnvMode, baseline.EnvRegenerate, baseline.EnvTestRoot, baseline.EnvVerbose} {
		t.Setenv(key, "")
	}

	gw, err := golden.NewFromDir(dir, pkgCatalog())
	require.NoError(t, err)
	assert.Equal(t, baseline.ModeGenerate, gw.Mode())
}

func TestNew_NilCatalogPanics(t *testing.T) {
	assert.Panics(t, func() { golden.New(nil) })
}
