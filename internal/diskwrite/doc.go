// Package diskwrite overwrites baseline files on disk under a single lock.
//
// A Writer serializes every write issued through it, whatever the target
// file: the lock is held from opening the file for a truncating write until
// it is closed. Share one Writer to share the lock.
//
// Writes go through an afero.Fs so tests can substitute an in-memory or
// instrumented filesystem.
package diskwrite
