// Package resources implements the resource catalog: the set of fixture files
// bundled with a test binary, addressable by qualified name.
//
// # Qualified Names
//
// A qualified name joins the binary (project) name and the resource's relative
// path, with every path separator replaced by the namespace separator:
//
//	QualifiedName("MyProj", "Fixtures/Case1.txt") == "MyProj.Fixtures.Case1.txt"
//
// Mounting rejects two files that derive the same qualified name, so names in
// a catalog always identify exactly one file.
//
// # Lookup
//
// Exists is an exact, case-sensitive comparison. Open returns nil for unknown
// names and never fails for them.
//
// # Thread Safety
//
// Catalog is safe for concurrent use. Mounting while other goroutines look up
// names is allowed.
package resources
