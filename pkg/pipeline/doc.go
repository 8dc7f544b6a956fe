// Package pipeline orchestrates the load → analyze → export flow shared by
// the CLI and the HTTP API.
//
// A [Runner] holds the cache, the keyer, and the logger; everything else
// arrives per run through [Options]. The load and export stages are cached
// (keyed on source bytes and canonical document hash respectively), the
// analysis stage is always computed fresh.
//
// # Usage
//
//	runner := pipeline.NewRunner(fileCache, nil, logger)
//	defer runner.Close()
//
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:  "schema.toml",
//	    Format: pipeline.FormatPlantUML,
//	})
//
// Individual stages are exposed as well ([Runner.Load], [Runner.Analyze],
// [Runner.Export]) for callers that need only part of the flow.
package pipeline
