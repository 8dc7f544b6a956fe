// Package cli implements the depchart command-line interface.
//
// This package provides commands for checking dependency manifests for
// cycles, printing topological orders and dependency partitions, exporting
// diagrams, serving the HTTP API, and managing the local cache. The CLI is
// built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - check: Verify a manifest's graph is acyclic
//   - cycles: List discovered cycles, optionally in an interactive browser
//   - order: Print a topological order
//   - deps: Partition the graph around a target node
//   - diagram: Export PlantUML or DOT diagram text
//   - serve: Run the HTTP API
//   - cache: Manage the local result cache
//
// # Configuration
//
// The cache backend is selected in ~/.config/depchart/config.toml; see
// [Config]. All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mverbeek/depchart/pkg/buildinfo"
	"github.com/mverbeek/depchart/pkg/cache"
	"github.com/mverbeek/depchart/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "depchart"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *Config
}

// New creates a new CLI instance with a default logger and the on-disk
// configuration (falling back to defaults when no config file exists).
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: LoadConfigOrDefault(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "depchart",
		Short:        "Depchart analyzes and charts dependency graphs",
		Long:         `Depchart is a CLI tool for analyzing declared dependency graphs: it detects cycles, computes topological orders and dependency partitions, and exports PlantUML or DOT diagrams.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.cyclesCommand())
	root.AddCommand(c.orderCommand())
	root.AddCommand(c.depsCommand())
	root.AddCommand(c.diagramCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use, wiring the cache
// backend named by the configuration.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	backend, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(backend, nil, c.Logger), nil
}

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}

	switch c.Config.Cache.Backend {
	case CacheBackendNone:
		return cache.NewNullCache(), nil

	case CacheBackendRedis:
		var backend cache.Cache
		err := cache.RetryWithBackoff(ctx, func() error {
			var err error
			backend, err = cache.NewRedisCache(ctx, cache.RedisConfig{
				Addr:     c.Config.Cache.Redis.Addr,
				Password: c.Config.Cache.Redis.Password,
				DB:       c.Config.Cache.Redis.DB,
			})
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("connect redis cache at %s: %w", c.Config.Cache.Redis.Addr, err)
		}
		return backend, nil

	case CacheBackendMongo:
		var backend cache.Cache
		err := cache.RetryWithBackoff(ctx, func() error {
			var err error
			backend, err = cache.NewMongoCache(ctx, cache.MongoConfig{
				URI:        c.Config.Cache.Mongo.URI,
				Database:   c.Config.Cache.Mongo.Database,
				Collection: c.Config.Cache.Mongo.Collection,
			})
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("connect mongo cache: %w", err)
		}
		return backend, nil

	default:
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	}
}

// cacheDir returns the cache directory using XDG standard (~/.cache/depchart/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
