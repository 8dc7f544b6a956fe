package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mverbeek/depchart/pkg/pipeline"
)

// depsCommand creates the deps command.
func (c *CLI) depsCommand() *cobra.Command {
	var (
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "deps <manifest> <node>",
		Short: "Partition the graph around a target node",
		Long: `Partition the graph around a target node.

Nodes preceding the target in topological order are listed as dependencies,
nodes following it as dependents. The graph must be acyclic.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDeps(cmd.Context(), args[0], args[1], noCache, refresh)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass cache")

	return cmd
}

func (c *CLI) runDeps(ctx context.Context, input, target string, noCache, refresh bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := pipeline.Options{Input: input, Target: target, Refresh: refresh}

	doc, err := runner.Load(ctx, opts)
	if err != nil {
		return err
	}
	report, err := runner.Analyze(ctx, doc, opts)
	if err != nil {
		return err
	}

	deps := report.Deps
	fmt.Println(StyleTitle.Render(deps.Target))
	printNewline()

	printInfo("Dependencies (%d)", len(deps.Dependencies))
	for _, id := range deps.Dependencies {
		printDetail("%s", id)
	}
	printNewline()

	printInfo("Dependents (%d)", len(deps.Dependents))
	for _, id := range deps.Dependents {
		printDetail("%s", id)
	}
	return nil
}
