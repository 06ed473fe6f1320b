// Package normalize converts fixture text into canonical form so that
// comparisons do not depend on the line endings a file was authored or
// checked out with.
//
// # Canonical Text
//
// Canonical text contains no carriage returns; every line break is the host's
// native newline (NativeNewline). The conversion:
//  1. Remove every '\r'
//  2. Replace every remaining '\n' with NativeNewline
//
// Normalize is idempotent: Normalize(Normalize(x)) == Normalize(x).
package normalize
