package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/baseline/internal/files/filesystem"
	"github.com/vvka-141/baseline/internal/resources"
)

var listFlags struct {
	binary string
}

var listCmd = &cobra.Command{
	Use:   "list <fixture_dir>",
	Short: "List the qualified names of a fixture directory",
	Long: `List mounts a fixture directory the way a test binary embeds it and prints
the qualified name of every file, one per line, sorted.

Two files whose names differ only in separators (for example a/b.txt and
a.b.txt) map to the same qualified name and are reported as a collision.`,
	Example: `  baseline list ./test/MyProj --binary MyProj`,
	Args:    RequireFixtureDir,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listFlags.binary, "binary", "b", "", "Binary name used as the qualified name prefix")
	_ = listCmd.MarkFlagRequired("binary")
	listCmd.ValidArgsFunction = completeDirectories
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd, cfg)

	catalog, err := mountDirectory(listFlags.binary, args[0])
	if err != nil {
		return err
	}
	logger.Verbose("mounted %d resources from %s", catalog.Len(), args[0])

	errOut := cmd.ErrOrStderr()
	fmt.Fprintln(errOut, headerStyle(errOut).Render(fmt.Sprintf("%s (%d resources)", listFlags.binary, catalog.Len())))

	out := cmd.OutOrStdout()
	for _, name := range catalog.Names() {
		fmt.Fprintln(out, name)
	}
	return nil
}

// mountDirectory builds a catalog of dir on the OS filesystem.
func mountDirectory(binary, dir string) (*resources.Catalog, error) {
	catalog := resources.NewCatalog()
	if err := catalog.Mount(binary, filesystem.NewOSFileSystem(), dir); err != nil {
		return nil, err
	}
	return catalog, nil
}

// completeDirectories provides shell completion for directory paths.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveFilterDirs
}
