package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mverbeek/depchart/pkg/pipeline"
)

// cyclesCommand creates the cycles command.
func (c *CLI) cyclesCommand() *cobra.Command {
	var (
		interactive bool
		noCache     bool
		refresh     bool
	)

	cmd := &cobra.Command{
		Use:   "cycles <manifest>",
		Short: "List discovered dependency cycles",
		Long: `List discovered dependency cycles.

Each listed cycle is the traversal path at the moment a back-edge was
found, so it may carry a lead-in prefix before the loop itself. At most
one cycle is reported per traversal root.

With --interactive, cycles open in a browsable list.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCycles(cmd.Context(), args[0], interactive, noCache, refresh)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse cycles interactively")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass cache")

	return cmd
}

func (c *CLI) runCycles(ctx context.Context, input string, interactive, noCache, refresh bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := pipeline.Options{Input: input, Refresh: refresh}

	doc, err := runner.Load(ctx, opts)
	if err != nil {
		return err
	}
	report, err := runner.Analyze(ctx, doc, opts)
	if err != nil {
		return err
	}

	if !report.Cyclic {
		printSuccess("Graph %q has no cycles", doc.Name)
		return nil
	}

	if interactive {
		model := NewCycleListModel(doc.Name, report.Cycles)
		_, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
		return err
	}

	printWarning("Graph %q contains %d cycle(s)", doc.Name, len(report.Cycles))
	printNewline()
	for i, cycle := range report.Cycles {
		printInfo("Cycle %d (%d nodes)", i+1, len(cycle))
		printDetail("%s", strings.Join(cycle, " "+iconArrow+" "))
	}
	return nil
}
