package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/baseline/internal/pathresolve"
)

var resolveFlags struct {
	testRoot string
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <project>",
	Short: "Print the source directory baselines of a project are written to",
	Long: `Resolve prints the directory generate mode writes a project's baselines to,
computed from the current working directory:

  - inside the project directory itself: the working directory
  - inside the test root: <wd>/<project>
  - anywhere else: <wd>/<test_root>/<project>

The test root comes from --test-root, then configuration, then "test".`,
	Example: `  baseline resolve MyProj
  baseline resolve MyProj --test-root tests`,
	Args: RequireProjectName,
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().StringVar(&resolveFlags.testRoot, "test-root", "", "Name of the directory holding the test projects")
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if resolveFlags.testRoot != "" {
		cfg.TestRoot = resolveFlags.testRoot
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	resolver := pathresolve.New(pathresolve.WithTestRoot(cfg.TestRoot))
	dir, err := resolver.ResolveProjectPath(args[0])
	if err != nil {
		return err
	}

	newLogger(cmd, cfg).Verbose("test root %s, mode %s", resolver.TestRoot(), cfg.Mode)
	fmt.Fprintln(cmd.OutOrStdout(), dir)
	return nil
}
