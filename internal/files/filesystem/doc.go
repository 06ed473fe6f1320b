// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// This package defines interfaces for discovering and opening fixture files,
// so a resource catalog can be mounted from files embedded into the test
// binary, from an in-memory tree in unit tests, or from a directory on disk.
//
// Key interfaces:
//   - FileSystemProvider: Factory for creating directory instances
//   - Directory: Represents a directory that can be traversed
//   - File: Represents an individual file with metadata and a content stream
//
// Implementations:
//   - EmbedFileSystem: Files compiled into the binary (embed.FS or any fs.FS)
//   - MemoryFileSystem: In-memory implementation for testing
//   - OSFileSystem: Directories on the OS filesystem
package filesystem
