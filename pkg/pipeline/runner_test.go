package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mverbeek/depchart/pkg/cache"
	"github.com/mverbeek/depchart/pkg/errors"
	"github.com/mverbeek/depchart/pkg/manifest"
)

const chainManifest = `name = "shop"

[[nodes]]
id = "orders"

[[nodes]]
id = "customers"

[[edges]]
from = "orders"
to = "customers"
`

const cyclicManifest = `name = "tangle"

[[nodes]]
id = "a"

[[nodes]]
id = "b"

[[edges]]
from = "a"
to = "b"

[[edges]]
from = "b"
to = "a"
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, nil)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestValidateFormat(t *testing.T) {
	if err := ValidateFormat(FormatPlantUML); err != nil {
		t.Errorf("plantuml rejected: %v", err)
	}
	if err := ValidateFormat(FormatDOT); err != nil {
		t.Errorf("dot rejected: %v", err)
	}
	if err := ValidateFormat("svg"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("svg accepted, err = %v", err)
	}
}

func TestOptions_Defaults(t *testing.T) {
	opts := Options{Input: "graph.toml"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() = %v", err)
	}
	if opts.Format != FormatPlantUML {
		t.Errorf("default format = %q, want plantuml", opts.Format)
	}
}

func TestOptions_MissingInput(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("err = %v, want INVALID_INPUT", err)
	}
}

func TestExecute_Acyclic(t *testing.T) {
	r := newTestRunner(t)
	path := writeManifest(t, chainManifest)

	result, err := r.Execute(context.Background(), Options{Input: path})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if result.ID == "" {
		t.Error("result has no ID")
	}
	if result.GraphHash == "" {
		t.Error("result has no graph hash")
	}
	if result.Report.Cyclic {
		t.Error("chain reported as cyclic")
	}
	wantOrder := []string{"orders", "customers"}
	if len(result.Report.Order) != 2 || result.Report.Order[0] != wantOrder[0] || result.Report.Order[1] != wantOrder[1] {
		t.Errorf("order = %v, want %v", result.Report.Order, wantOrder)
	}
	if !strings.HasPrefix(result.Diagram, "@startuml") {
		t.Errorf("diagram does not start with @startuml: %q", result.Diagram)
	}
	if result.Stats.NodeCount != 2 || result.Stats.EdgeCount != 1 {
		t.Errorf("stats = %d nodes / %d edges, want 2/1", result.Stats.NodeCount, result.Stats.EdgeCount)
	}
}

func TestExecute_SecondRunHitsCache(t *testing.T) {
	r := newTestRunner(t)
	path := writeManifest(t, chainManifest)
	ctx := context.Background()

	first, err := r.Execute(ctx, Options{Input: path})
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheInfo.LoadHit || first.CacheInfo.ExportHit {
		t.Errorf("first run reported cache hits: %+v", first.CacheInfo)
	}

	second, err := r.Execute(ctx, Options{Input: path})
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheInfo.LoadHit || !second.CacheInfo.ExportHit {
		t.Errorf("second run missed cache: %+v", second.CacheInfo)
	}
	if second.Diagram != first.Diagram {
		t.Error("cached diagram differs from computed diagram")
	}
}

func TestExecute_RefreshBypassesCache(t *testing.T) {
	r := newTestRunner(t)
	path := writeManifest(t, chainManifest)
	ctx := context.Background()

	if _, err := r.Execute(ctx, Options{Input: path}); err != nil {
		t.Fatal(err)
	}
	result, err := r.Execute(ctx, Options{Input: path, Refresh: true})
	if err != nil {
		t.Fatal(err)
	}
	if result.CacheInfo.LoadHit || result.CacheInfo.ExportHit {
		t.Errorf("refresh run reported cache hits: %+v", result.CacheInfo)
	}
}

func TestExecute_MissingFile(t *testing.T) {
	r := newTestRunner(t)
	_, err := r.Execute(context.Background(), Options{Input: filepath.Join(t.TempDir(), "nope.toml")})
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestAnalyze_Cyclic(t *testing.T) {
	r := newTestRunner(t)
	path := writeManifest(t, cyclicManifest)

	result, err := r.Execute(context.Background(), Options{Input: path})
	if err != nil {
		t.Fatal(err)
	}
	if !result.Report.Cyclic {
		t.Fatal("two-node loop not reported as cyclic")
	}
	if len(result.Report.Order) != 0 {
		t.Errorf("cyclic report carries an order: %v", result.Report.Order)
	}
	if len(result.Report.Cycles) == 0 {
		t.Fatal("cyclic report carries no cycles")
	}
	if got := result.Report.Cycles[0]; len(got) < 2 {
		t.Errorf("cycle too short: %v", got)
	}
}

func TestAnalyze_TargetPartition(t *testing.T) {
	r := newTestRunner(t)
	path := writeManifest(t, chainManifest)

	doc, err := r.Load(context.Background(), Options{Input: path})
	if err != nil {
		t.Fatal(err)
	}
	report, err := r.Analyze(context.Background(), doc, Options{Target: "customers"})
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if report.Deps == nil {
		t.Fatal("report has no deps partition")
	}
	if len(report.Deps.Dependencies) != 1 || report.Deps.Dependencies[0] != "orders" {
		t.Errorf("dependencies = %v, want [orders]", report.Deps.Dependencies)
	}
	if len(report.Deps.Dependents) != 0 {
		t.Errorf("dependents = %v, want empty", report.Deps.Dependents)
	}
}

func TestAnalyze_TargetNotFound(t *testing.T) {
	r := newTestRunner(t)
	path := writeManifest(t, chainManifest)

	doc, err := r.Load(context.Background(), Options{Input: path})
	if err != nil {
		t.Fatal(err)
	}
	_, err = r.Analyze(context.Background(), doc, Options{Target: "ghost"})
	if !errors.Is(err, errors.ErrCodeNodeNotFound) {
		t.Errorf("err = %v, want NODE_NOT_FOUND", err)
	}
}

func TestAnalyze_TargetOnCyclicGraph(t *testing.T) {
	r := newTestRunner(t)
	path := writeManifest(t, cyclicManifest)

	doc, err := r.Load(context.Background(), Options{Input: path})
	if err != nil {
		t.Fatal(err)
	}
	_, err = r.Analyze(context.Background(), doc, Options{Target: "a"})
	if !errors.Is(err, errors.ErrCodeGraphCyclic) {
		t.Errorf("err = %v, want GRAPH_CYCLIC", err)
	}
}

func TestRender_PlantUML(t *testing.T) {
	doc := &manifest.Document{
		Nodes: []manifest.Node{{ID: "A"}, {ID: "B"}},
		Edges: []manifest.Edge{{From: "A", To: "B"}},
	}
	got, err := Render(doc, Options{Format: FormatPlantUML})
	if err != nil {
		t.Fatal(err)
	}
	want := "@startuml\nA\nB\nA --> B\n@enduml"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_DetailedMetaSorted(t *testing.T) {
	doc := &manifest.Document{
		Nodes: []manifest.Node{{ID: "t", Meta: map[string]string{"owner": "data", "kind": "view"}}},
	}
	got, err := Render(doc, Options{Format: FormatPlantUML, Detailed: true})
	if err != nil {
		t.Fatal(err)
	}
	want := "@startuml\nt kind=view owner=data\n@enduml"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_DOT(t *testing.T) {
	doc := &manifest.Document{
		Nodes: []manifest.Node{{ID: "A"}, {ID: "B"}},
		Edges: []manifest.Edge{{From: "A", To: "B"}},
	}
	got, err := Render(doc, Options{Format: FormatDOT})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, `"A" -> "B";`) {
		t.Errorf("DOT output missing edge: %q", got)
	}
}

func TestExport_LabelsUseDisplay(t *testing.T) {
	doc := &manifest.Document{
		Nodes: []manifest.Node{{ID: "orders", Label: "sales.orders"}},
	}
	got, err := Render(doc, Options{Format: FormatPlantUML})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "sales.orders") {
		t.Errorf("label not used in output: %q", got)
	}
}
