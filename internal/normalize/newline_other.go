//go:build !windows

package normalize

// NativeNewline is the line break sequence canonical text uses on this platform.
const NativeNewline = "\n"
