package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mverbeek/depchart/pkg/errors"
	"github.com/mverbeek/depchart/pkg/pipeline"
)

// orderCommand creates the order command.
func (c *CLI) orderCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "order <manifest>",
		Short: "Print a topological order of the graph",
		Long: `Print a topological order of the graph, one node ID per line.

Every edge's "from" node appears before its "to" node. Cyclic graphs have
no such order, so the command refuses them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runOrder(cmd.Context(), args[0], output, noCache, refresh)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass cache")

	return cmd
}

func (c *CLI) runOrder(ctx context.Context, input, output string, noCache, refresh bool) error {
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

	if report.Cyclic {
		printError("Graph %q is cyclic, no topological order exists", doc.Name)
		printNextStep("Inspect the cycles with", fmt.Sprintf("depchart cycles %s", input))
		return errors.New(errors.ErrCodeGraphCyclic, "graph %q is cyclic", doc.Name)
	}

	out, closeOut, err := openOutput(output)
	if err != nil {
		return err
	}
	defer closeOut()

	if _, err := io.WriteString(out, strings.Join(report.Order, "\n")+"\n"); err != nil {
		return err
	}
	if output != "" {
		printSuccess("Wrote order for %d nodes", len(report.Order))
		printFile(output)
	}
	return nil
}

// openOutput returns a writer for the given path, or stdout when empty.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
