package pipeline

import (
	"sort"

	"github.com/mverbeek/depchart/pkg/diagram"
	"github.com/mverbeek/depchart/pkg/errors"
	"github.com/mverbeek/depchart/pkg/graph"
	"github.com/mverbeek/depchart/pkg/manifest"
)

// Render produces diagram text for the document in the requested format,
// without touching the cache. Most callers want [Runner.Export] instead.
func Render(doc *manifest.Document, opts Options) (string, error) {
	if err := opts.ValidateForExport(); err != nil {
		return "", err
	}

	g := doc.Graph()
	node := nodeLine(opts.Detailed)
	edge := edgeLine()

	switch opts.Format {
	case FormatPlantUML:
		return diagram.PlantUML(g, node, edge), nil
	case FormatDOT:
		return diagram.DOT(g, node, edge), nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", opts.Format)
	}
}

// nodeLine renders a node as its display label. With detailed output the
// node's metadata follows as sorted key=value features.
func nodeLine(detailed bool) diagram.NodeFunc[manifest.Node] {
	return func(n manifest.Node) diagram.NodeLine {
		line := diagram.NodeLine{Text: n.Display()}
		if !detailed || len(n.Meta) == 0 {
			return line
		}

		keys := make([]string, 0, len(n.Meta))
		for k := range n.Meta {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			line.Features = append(line.Features, k+"="+n.Meta[k])
		}
		return line
	}
}

func edgeLine() diagram.EdgeFunc[manifest.Node] {
	return func(e graph.Edge[manifest.Node]) diagram.EdgeLine {
		return diagram.EdgeLine{From: e.From.Display(), To: e.To.Display()}
	}
}
