package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireFixtureDir validates that exactly one fixture directory argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireFixtureDir(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <fixture_dir>

Usage: %s

Example:
  %s ./test/MyProj --binary MyProj`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

// RequireFixtureAndResource validates the <fixture_dir> <resource> pair.
func RequireFixtureAndResource(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf(`missing required arguments: <fixture_dir> <resource>

Usage: %s

Example:
  %s ./test/MyProj Expected/Case1.txt --binary MyProj`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 2 {
		return fmt.Errorf("accepts 2 arg(s), received %d", len(args))
	}
	return nil
}

// RequireProjectName validates that exactly one project name argument is provided.
func RequireProjectName(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <project>

Usage: %s

Example:
  %s MyProj`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}
