package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/rustbrew/pkg/catalog"
)

// Source provides a fresh snapshot file.
// *snapshot.Snapshot satisfies it.
type Source interface {
	EnsureFresh(ctx context.Context, force bool) (bool, error)
	Path() string
}

// Runner executes queries against one snapshot source.
type Runner struct {
	Source Source
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(src Source, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Source: src,
		Logger: logger,
	}
}

// Execute runs every stage and returns the aggregated result.
// Errors from the snapshot and loader are returned wrapped with the stage
// name and keep their error codes.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	downloaded, err := r.Source.EnsureFresh(ctx, opts.Refresh)
	if err != nil {
		return nil, fmt.Errorf("refresh: %w", err)
	}

	loadStart := time.Now()
	c, err := catalog.Load(r.Source.Path())
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result := &Result{Query: opts.Query}
	result.Stats.Formulae = c.Len()
	result.Stats.Downloaded = downloaded
	result.Stats.LoadTime = time.Since(loadStart)

	r.Logger.Debug("loaded catalog",
		"path", r.Source.Path(),
		"formulae", c.Len(),
		"duration", result.Stats.LoadTime)

	matchStart := time.Now()
	result.Count = catalog.CountMatches(c, opts.Query)
	if opts.Names {
		result.Names = catalog.MatchingNames(c, opts.Query)
	}
	if opts.BuildDeps {
		result.BuildDependencies = catalog.CollectBuildDependencies(c)
	}
	result.Stats.MatchTime = time.Since(matchStart)

	if r.Logger.GetLevel() <= log.DebugLevel {
		r.logMatches(c, opts.Query)
	}
	r.Logger.Debug("matched formulae",
		"query", opts.Query,
		"count", result.Count,
		"duration", result.Stats.MatchTime)

	return result, nil
}

func (r *Runner) logMatches(c catalog.Catalog, q string) {
	for _, f := range c {
		if cats := catalog.MatchedCategories(f, q); cats != nil {
			r.Logger.Debug("match", "formula", f.Name, "categories", cats)
		}
	}
}
