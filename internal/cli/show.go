package cli

import (
	"errors"
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"github.com/vvka-141/baseline/internal/resources"
	"github.com/vvka-141/baseline/pkg/baseline"
	"github.com/vvka-141/baseline/pkg/golden"
)

var showFlags struct {
	binary string
	class  string
}

var showCmd = &cobra.Command{
	Use:   "show <fixture_dir> <resource>",
	Short: "Print a resource as a test would read it",
	Long: `Show reads one resource through the same path a test uses and prints its
canonical text: carriage returns removed and line feeds converted to the
native newline.

A missing source fixture is always an error. A missing output fixture is
an error in assert mode; in generate mode it is reported as pending.`,
	Example: `  baseline show ./test/MyProj Expected/Case1.txt --binary MyProj
  baseline show ./test/MyProj Fixtures/input.json -b MyProj --class source`,
	Args: RequireFixtureAndResource,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVarP(&showFlags.binary, "binary", "b", "", "Binary name used as the qualified name prefix")
	showCmd.Flags().StringVar(&showFlags.class, "class", "output", "Resource class: source or output")
	_ = showCmd.MarkFlagRequired("binary")
	_ = showCmd.RegisterFlagCompletionFunc("class", completeResourceClasses)
}

func runShow(cmd *cobra.Command, args []string) error {
	class, err := baseline.ParseResourceClass(showFlags.class)
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	catalog, err := mountDirectory(showFlags.binary, args[0])
	if err != nil {
		return err
	}

	gw, err := golden.NewFromConfig(cfg, catalog, golden.WithLogger(newLogger(cmd, cfg)))
	if err != nil {
		return err
	}

	ct := &commandT{}
	text, found := gw.ReadResourceText(ct, showFlags.binary, args[1], class)
	if failure := ct.err(); failure != nil {
		return failure
	}

	errOut := cmd.ErrOrStderr()
	if !found {
		fmt.Fprintln(errOut, warningStyle(errOut).Render(
			fmt.Sprintf("%s is pending generation", resources.QualifiedName(showFlags.binary, args[1]))))
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}

// commandT adapts the gateway's failure reporting to command errors.
// Error values passed as format arguments stay matchable with errors.Is.
type commandT struct {
	mu       sync.Mutex
	failures []error
}

// commandFailure is one reported failure: the formatted message plus the
// error arguments it was built from.
type commandFailure struct {
	msg    string
	causes []error
}

func (f *commandFailure) Error() string   { return f.msg }
func (f *commandFailure) Unwrap() []error { return f.causes }

func (c *commandT) Helper() {}

func (c *commandT) Errorf(format string, args ...any) {
	c.record(format, args)
}

func (c *commandT) Fatalf(format string, args ...any) {
	c.record(format, args)
}

func (c *commandT) record(format string, args []any) {
	failure := &commandFailure{msg: fmt.Sprintf(format, args...)}
	for _, arg := range args {
		if err, ok := arg.(error); ok {
			failure.causes = append(failure.causes, err)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures = append(c.failures, failure)
}

func (c *commandT) err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return errors.Join(c.failures...)
}

// completeResourceClasses provides shell completion for --class.
func completeResourceClasses(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{
		baseline.SourceFixture.String(),
		baseline.OutputFixture.String(),
	}, cobra.ShellCompDirectiveNoFileComp
}
