// Package golden is the test-facing entry point of the baseline loader.
//
// A Gateway reads expected content ("baselines") bundled with the test binary
// and, when the run is configured to regenerate baselines, writes updated
// content back to the source files the resources were embedded from.
//
// # Usage
//
//	//go:embed testdata
//	var testdata embed.FS
//
//	func TestRender(t *testing.T) {
//	    catalog, err := golden.LoadCatalog("MyProj", testdata, ".")
//	    require.NoError(t, err)
//
//	    gw, err := golden.NewFromDir(".", catalog)
//	    require.NoError(t, err)
//
//	    gw.Verify(t, "MyProj", "testdata/render.golden", render())
//	}
//
// # Failure Semantics
//
// A missing SourceFixture always fails the test. A missing OutputFixture fails
// the test in assert mode and is returned as "not found" in generate mode.
// Write errors are returned from UpdateFile and never swallowed.
//
// # Thread Safety
//
// Reads take no locks. All writes of a Gateway go through one FileWriter
// whose lock serializes them.
package golden
