// Package files groups the file access layers used to build resource catalogs.
//
// # Organization
//
//   - filesystem: provider abstraction over embedded (embed.FS / fs.FS),
//     in-memory and OS directories
//
// Catalog construction on top of these providers lives in internal/resources.
package files
