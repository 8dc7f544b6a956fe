package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/mverbeek/depchart/pkg/cache"
	"github.com/mverbeek/depchart/pkg/errors"
	"github.com/mverbeek/depchart/pkg/manifest"
	"github.com/mverbeek/depchart/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Result collects the outputs of one pipeline run.
type Result struct {
	// ID uniquely identifies this run, for API responses and log
	// correlation.
	ID string

	Document  *manifest.Document
	Report    *Report
	Diagram   string
	GraphHash string
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats records per-stage timings and graph size.
type Stats struct {
	LoadTime    time.Duration
	AnalyzeTime time.Duration
	ExportTime  time.Duration
	NodeCount   int
	EdgeCount   int
}

// CacheInfo reports which stages were served from cache. Analysis is
// never cached: it is cheap relative to the load and export stages.
type CacheInfo struct {
	LoadHit   bool
	ExportHit bool
}

// Execute runs the complete load → analyze → export pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{ID: uuid.NewString()}

	// Stage 1: Load
	loadStart := time.Now()
	doc, loadHit, err := r.LoadWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Document = doc
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.NodeCount = len(doc.Nodes)
	result.Stats.EdgeCount = len(doc.Edges)
	result.CacheInfo.LoadHit = loadHit

	// Canonical hash for cache keys and API responses
	if data, err := manifest.Marshal(doc); err == nil {
		result.GraphHash = cache.Hash(data)
	}

	opts.Logger.Info("loaded manifest",
		"name", doc.Name,
		"nodes", len(doc.Nodes),
		"edges", len(doc.Edges),
		"duration", result.Stats.LoadTime)

	// Stage 2: Analyze
	analyzeStart := time.Now()
	report, err := r.Analyze(ctx, doc, opts)
	if err != nil {
		return nil, err
	}
	result.Report = report
	result.Stats.AnalyzeTime = time.Since(analyzeStart)

	opts.Logger.Info("analyzed graph",
		"cyclic", report.Cyclic,
		"duration", result.Stats.AnalyzeTime)

	// Stage 3: Export
	exportStart := time.Now()
	text, exportHit, err := r.ExportWithCacheInfo(ctx, doc, opts)
	if err != nil {
		return nil, err
	}
	result.Diagram = text
	result.Stats.ExportTime = time.Since(exportStart)
	result.CacheInfo.ExportHit = exportHit

	opts.Logger.Info("exported diagram",
		"format", opts.Format,
		"bytes", len(text),
		"duration", result.Stats.ExportTime)

	return result, nil
}

// LoadWithCacheInfo loads a manifest document with caching and returns
// cache hit info. Cache keys include the hash of the source bytes, so a
// changed file never serves a stale document.
func (r *Runner) LoadWithCacheInfo(ctx context.Context, opts Options) (*manifest.Document, bool, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	start := time.Now()
	observability.Analysis().OnLoadStart(ctx, opts.Input)

	doc, hit, err := r.load(ctx, opts)

	nodes := 0
	if doc != nil {
		nodes = len(doc.Nodes)
	}
	observability.Analysis().OnLoadComplete(ctx, opts.Input, nodes, time.Since(start), err)
	return doc, hit, err
}

func (r *Runner) load(ctx context.Context, opts Options) (*manifest.Document, bool, error) {
	source, err := manifest.DetectSource(opts.Input)
	if err != nil {
		return nil, false, err
	}

	data, err := os.ReadFile(opts.Input)
	if os.IsNotExist(err) {
		return nil, false, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest %s", opts.Input)
	}
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "read manifest %s", opts.Input)
	}

	name := strings.TrimSuffix(filepath.Base(opts.Input), filepath.Ext(opts.Input))
	cacheKey := r.Keyer.GraphKey(name, cache.Hash(data))

	// Cached documents are stored in canonical JSON, regardless of the
	// source format on disk.
	if !opts.Refresh {
		if cached, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			doc, err := manifest.Decode(bytes.NewReader(cached), manifest.SourceJSON)
			if err == nil {
				observability.Cache().OnCacheHit(ctx, "graph")
				return doc, true, nil
			}
			// Corrupt entry, fall through to a fresh decode
		}
	}
	observability.Cache().OnCacheMiss(ctx, "graph")

	doc, err := manifest.Decode(bytes.NewReader(data), source)
	if err != nil {
		return nil, false, err
	}
	if doc.Name == "" {
		doc.Name = name
	}

	if canonical, err := manifest.Marshal(doc); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, canonical, cache.TTLGraph); err == nil {
			observability.Cache().OnCacheSet(ctx, "graph", len(canonical))
		}
	}
	return doc, false, nil
}

// Load is a convenience wrapper that discards the cache hit info.
func (r *Runner) Load(ctx context.Context, opts Options) (*manifest.Document, error) {
	doc, _, err := r.LoadWithCacheInfo(ctx, opts)
	return doc, err
}

// Analyze runs cycle detection, topological ordering, and the optional
// dependency partition over the document's graph. Results are never
// cached. For cyclic graphs the report carries the discovered cycles and
// omits the order; requesting a target partition on a cyclic graph is an
// error because the partition is derived from the order.
func (r *Runner) Analyze(ctx context.Context, doc *manifest.Document, opts Options) (*Report, error) {
	r.applyLogger(&opts)

	start := time.Now()
	observability.Analysis().OnAnalyzeStart(ctx, doc.Name, len(doc.Nodes))

	report, err := analyze(doc, opts)

	observability.Analysis().OnAnalyzeComplete(ctx, doc.Name, report != nil && report.Cyclic, time.Since(start), err)
	return report, err
}

func analyze(doc *manifest.Document, opts Options) (*Report, error) {
	g := doc.Graph()
	a := manifest.Analyzer()

	report := &Report{
		Name:      doc.Name,
		NodeCount: len(doc.Nodes),
		EdgeCount: len(doc.Edges),
		Cyclic:    a.IsCyclical(g),
	}

	if report.Cyclic {
		for _, c := range a.Cycles(g) {
			report.Cycles = append(report.Cycles, nodeIDs(c.Nodes))
		}
	} else {
		report.Order = nodeIDs(a.TopologicalSort(g))
	}

	if opts.Target != "" {
		target, ok := doc.Node(opts.Target)
		if !ok {
			return nil, errors.New(errors.ErrCodeNodeNotFound, "node %q not found in graph %q", opts.Target, doc.Name)
		}
		if report.Cyclic {
			return nil, errors.New(errors.ErrCodeGraphCyclic, "graph %q is cyclic, dependency partition is undefined", doc.Name)
		}
		part := a.Deps(g, target)
		report.Deps = &DepsReport{
			Target:       target.ID,
			Dependencies: nodeIDs(part.Dependencies),
			Dependents:   nodeIDs(part.Dependents),
		}
	}
	return report, nil
}

func nodeIDs(nodes []manifest.Node) []string {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	return ids
}

// ExportWithCacheInfo renders the document as diagram text with caching
// and returns cache hit info. The cache key is derived from the canonical
// document hash and the rendering options.
func (r *Runner) ExportWithCacheInfo(ctx context.Context, doc *manifest.Document, opts Options) (string, bool, error) {
	if err := opts.ValidateForExport(); err != nil {
		return "", false, err
	}
	r.applyLogger(&opts)

	data, err := manifest.Marshal(doc)
	if err != nil {
		return "", false, err
	}
	cacheKey := r.Keyer.DiagramKey(cache.Hash(data), opts.DiagramKeyOpts())

	if !opts.Refresh {
		if cached, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "diagram")
			return string(cached), true, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, "diagram")

	start := time.Now()
	observability.Export().OnExportStart(ctx, opts.Format, len(doc.Nodes))

	text, err := Render(doc, opts)

	observability.Export().OnExportComplete(ctx, opts.Format, len(text), time.Since(start), err)
	if err != nil {
		return "", false, err
	}

	if err := r.Cache.Set(ctx, cacheKey, []byte(text), cache.TTLDiagram); err == nil {
		observability.Cache().OnCacheSet(ctx, "diagram", len(text))
	}
	return text, false, nil
}

// Export is a convenience wrapper that discards the cache hit info.
func (r *Runner) Export(ctx context.Context, doc *manifest.Document, opts Options) (string, error) {
	text, _, err := r.ExportWithCacheInfo(ctx, doc, opts)
	return text, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
