package baseline

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := gw.UpdateFile("MyProj", "testdata/out.txt", old, updated)
//	if errors.Is(err, baseline.ErrWriteFailed) {
//	    // permissions, missing directories, ...
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidMode indicates a mode value other than assert or generate.
	ErrInvalidMode = errors.New("invalid mode")

	// ErrResourceNotFound indicates a resource is not present in the catalog.
	// The gateway does not return it: it reports the failure through the test's
	// Fatalf, passing this error as an argument so callers can match it.
	ErrResourceNotFound = errors.New("manifest resource not found")

	// ErrNameCollision indicates two files map to the same qualified name.
	ErrNameCollision = errors.New("qualified name collision")

	// ErrInvalidResourcePath indicates an empty, absolute or escaping resource path.
	ErrInvalidResourcePath = errors.New("invalid resource path")

	// ErrWriteFailed indicates a baseline file could not be overwritten.
	ErrWriteFailed = errors.New("baseline write failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrInvalidMode),
		errors.Is(err, ErrNameCollision), errors.Is(err, ErrInvalidResourcePath):
		return ExitConfigError
	case errors.Is(err, ErrResourceNotFound):
		return ExitResourceMissing
	case errors.Is(err, ErrWriteFailed):
		return ExitWriteFailed
	}

	// cobra reports usage problems as plain errors
	errStr := err.Error()
	if strings.HasPrefix(errStr, "unknown flag") ||
		strings.HasPrefix(errStr, "unknown shorthand flag") ||
		strings.HasPrefix(errStr, "unknown command") ||
		strings.Contains(errStr, "arg(s), received") ||
		strings.HasPrefix(errStr, "required flag") ||
		strings.HasPrefix(errStr, "missing required argument") ||
		strings.HasPrefix(errStr, "invalid argument") {
		return ExitUsageError
	}

	return ExitGeneralError
}
