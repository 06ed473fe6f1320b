package baseline

import (
	"fmt"
	"strings"
)

// Mode selects how missing baselines and content changes are treated for a whole test run.
// It is resolved once before the run starts and never changes afterwards.
type Mode int

const (
	// ModeAssert compares generated output against existing baselines.
	// Every requested resource must be present.
	ModeAssert Mode = iota

	// ModeGenerate allows output baselines to be absent and rewrites
	// their source files when the computed content differs.
	ModeGenerate
)

// String returns the configuration spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeAssert:
		return "assert"
	case ModeGenerate:
		return "generate"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a configuration value into a Mode.
// Matching is case-insensitive and ignores surrounding whitespace.
// An empty value yields ModeAssert.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "assert":
		return ModeAssert, nil
	case "generate", "regenerate":
		return ModeGenerate, nil
	default:
		return ModeAssert, fmt.Errorf("%q: %w", s, ErrInvalidMode)
	}
}

// ResourceClass tells the gateway whether a resource may legitimately be absent.
type ResourceClass int

const (
	// SourceFixture is an input fixture that must exist in every mode.
	SourceFixture ResourceClass = iota

	// OutputFixture is an expected-output fixture that may be absent
	// before its first generation.
	OutputFixture
)

func (c ResourceClass) String() string {
	switch c {
	case SourceFixture:
		return "source"
	case OutputFixture:
		return "output"
	default:
		return fmt.Sprintf("ResourceClass(%d)", int(c))
	}
}

// ParseResourceClass converts "source" or "output" into a ResourceClass.
func ParseResourceClass(s string) (ResourceClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "source":
		return SourceFixture, nil
	case "output":
		return OutputFixture, nil
	default:
		return SourceFixture, fmt.Errorf("unknown resource class %q: %w", s, ErrInvalidConfig)
	}
}
