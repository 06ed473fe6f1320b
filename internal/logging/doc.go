// Package logging provides concrete implementations of the baseline.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted lines to an io.Writer (stderr by default)
//   - NullLogger: Discards all messages (the gateway default)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
