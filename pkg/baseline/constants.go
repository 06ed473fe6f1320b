package baseline

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Command completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration, mode or resource path
	ExitResourceMissing = 11 // Requested resource is not in the catalog
	ExitWriteFailed     = 12 // Baseline file could not be written
)

const (
	// NamespaceSeparator replaces path separators when deriving qualified names.
	NamespaceSeparator = "."

	// DefaultTestRoot is the directory that holds every test project when the
	// run starts from the repository root.
	DefaultTestRoot = "test"

	// ConfigFileName is the optional per-directory configuration file.
	ConfigFileName = "baseline.yaml"

	// EnvFileName is the optional dotenv file read next to ConfigFileName.
	EnvFileName = ".env"
)

// Environment variables consulted when resolving configuration.
const (
	EnvMode       = "BASELINE_MODE"
	EnvRegenerate = "BASELINE_REGENERATE"
	EnvTestRoot   = "BASELINE_TEST_ROOT"
	EnvVerbose    = "BASELINE_VERBOSE"
)
