package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mverbeek/depchart/pkg/pipeline"
)

// diagramCommand creates the diagram command.
func (c *CLI) diagramCommand() *cobra.Command {
	var (
		format   string
		output   string
		detailed bool
		noCache  bool
		refresh  bool
	)

	cmd := &cobra.Command{
		Use:   "diagram <manifest>",
		Short: "Export the graph as PlantUML or DOT diagram text",
		Long: `Export the graph as diagram text.

Supported formats are plantuml (default) and dot. With --detailed, node
metadata from the manifest is appended to the node labels.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateFormat(format); err != nil {
				return err
			}
			return c.runDiagram(cmd.Context(), args[0], pipeline.Options{
				Format:   format,
				Detailed: detailed,
				Refresh:  refresh,
			}, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", pipeline.FormatPlantUML, "output format: plantuml (default), dot")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include node metadata in labels")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass cache")

	return cmd
}

func (c *CLI) runDiagram(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Input = input

	doc, err := runner.Load(ctx, opts)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", opts.Format))
	spinner.Start()

	text, cacheHit, err := runner.ExportWithCacheInfo(ctx, doc, opts)
	if err != nil {
		spinner.StopWithError("Diagram export failed")
		return err
	}
	spinner.Stop()

	out, closeOut, err := openOutput(output)
	if err != nil {
		return err
	}
	defer closeOut()

	if _, err := io.WriteString(out, text+"\n"); err != nil {
		return err
	}

	if output != "" {
		printSuccess("Exported %s diagram for %q", opts.Format, doc.Name)
		printFile(output)
		printStats(len(doc.Nodes), len(doc.Edges), cacheHit)
	}
	return nil
}
