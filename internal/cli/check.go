package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mverbeek/depchart/pkg/errors"
	"github.com/mverbeek/depchart/pkg/pipeline"
)

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	var (
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "check <manifest>",
		Short: "Verify a manifest's dependency graph is acyclic",
		Long: `Verify a manifest's dependency graph is acyclic.

The manifest (TOML or JSON) is loaded, validated, and checked for directed
cycles. The command exits non-zero when a cycle exists, so it is usable as
a CI gate.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.Context(), args[0], noCache, refresh)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass cache")

	return cmd
}

func (c *CLI) runCheck(ctx context.Context, input string, noCache, refresh bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := pipeline.Options{Input: input, Refresh: refresh}

	doc, loadHit, err := runner.LoadWithCacheInfo(ctx, opts)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	report, err := runner.Analyze(ctx, doc, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Checked %q", doc.Name))

	printStats(report.NodeCount, report.EdgeCount, loadHit)

	if report.Cyclic {
		printError("Graph %q contains %d cycle(s)", doc.Name, len(report.Cycles))
		printNextStep("Inspect them with", fmt.Sprintf("depchart cycles %s", input))
		return errors.New(errors.ErrCodeGraphCyclic, "graph %q is cyclic", doc.Name)
	}

	printSuccess("Graph %q is acyclic", doc.Name)
	return nil
}
