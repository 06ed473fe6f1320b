package normalize

import "strings"

// Normalize returns the canonical form of raw.
func Normalize(raw string) string {
	if strings.IndexByte(raw, '\r') >= 0 {
		raw = strings.ReplaceAll(raw, "\r", "")
	}
	if NativeNewline == "\n" {
		return raw
	}
	return strings.ReplaceAll(raw, "\n", NativeNewline)
}

// NormalizeBytes is Normalize for content read from a stream.
func NormalizeBytes(raw []byte) string {
	return Normalize(string(raw))
}
