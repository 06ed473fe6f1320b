package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/baseline/internal/config"
	"github.com/vvka-141/baseline/internal/logging"
	"github.com/vvka-141/baseline/pkg/baseline"
)

var rootCmd = &cobra.Command{
	Use:   "baseline",
	Short: "Inspect golden test fixtures",
	Long: `baseline inspects the fixture directories that test binaries embed as
baselines, and shows how the runtime resolves and reads them.

Resources are addressed by qualified name: the binary name followed by the
file's relative path, with path separators replaced by dots.

Configuration is read from baseline.yaml and .env in the --config directory,
then overridden by BASELINE_MODE, BASELINE_REGENERATE, BASELINE_TEST_ROOT and
BASELINE_VERBOSE.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration, mode or resource path
  11 - Resource not found
  12 - Baseline write failed`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(rootCmd.OutOrStdout(), rootCmd.ErrOrStderr())
		return nil
	}
	err := rootCmd.Execute()
	if err != nil {
		errOut := rootCmd.ErrOrStderr()
		fmt.Fprintln(errOut, errorStyle(errOut).Render("Error: "+err.Error()))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().String("config", ".", "Directory holding baseline.yaml and .env")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

// resolveConfig loads the run configuration from the --config directory.
// --verbose only ever turns verbosity on.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	dir, err := cmd.Flags().GetString("config")
	if err != nil || dir == "" {
		dir = "."
	}

	cfg, err := config.Resolve(dir)
	if err != nil {
		return nil, err
	}
	if getVerboseFlag(cmd) {
		cfg.Verbose = true
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) baseline.Logger {
	return logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), cfg.Verbose)
}
