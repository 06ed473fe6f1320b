// Package baseline defines the public contracts of the golden-file loader:
// run modes, resource classes, the resource catalog and failure-reporting
// interfaces, sentinel errors and exit codes.
//
// The gateway that ties these together lives in package golden; concrete
// catalogs, writers and resolvers live under internal/.
package baseline
