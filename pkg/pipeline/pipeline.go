// Package pipeline runs one rustbrew query end to end.
//
// This package implements the validate → refresh → load → aggregate
// sequence behind the CLI. Keeping it out of the command layer means the same
// steps run in the same order no matter how they are invoked, and all of them
// finish before anything is printed.
//
// # Stages
//
//  1. Validate: reject queries longer than catalog.MaxQueryLen, before any I/O
//  2. Refresh: make sure the catalog snapshot is fresh (download if stale)
//  3. Load: decode the snapshot into a catalog.Catalog
//  4. Aggregate: count matches and optionally collect names and build dependencies
//
// # Usage
//
//	runner := pipeline.NewRunner(snap, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Query: "rust", BuildDeps: true})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Count)
package pipeline

import (
	"time"

	"github.com/matzehuels/rustbrew/pkg/catalog"
)

// Options configures one run.
type Options struct {
	Query     string // dependency name to count formulae for
	BuildDeps bool   // also collect every distinct build dependency
	Names     bool   // also list the names of matching formulae
	Refresh   bool   // download the catalog even if the snapshot is fresh
}

// Validate checks the options before any I/O happens.
func (o Options) Validate() error {
	return catalog.ValidateQuery(o.Query)
}

// Result holds everything a run computed.
type Result struct {
	Query string
	Count int

	// Names is set when Options.Names was requested.
	Names []string

	// BuildDependencies is set when Options.BuildDeps was requested.
	BuildDependencies []string

	Stats Stats
}

// Stats records how the run went.
type Stats struct {
	Formulae   int           // catalog size
	Downloaded bool          // whether the snapshot was refreshed
	LoadTime   time.Duration // time spent decoding the snapshot
	MatchTime  time.Duration // time spent aggregating
}
