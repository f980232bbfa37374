// Package catalog models the Homebrew Core formula catalog and answers
// dependency questions about it.
//
// # Overview
//
// A [Catalog] is the ordered list of [Formula] records decoded from one
// snapshot of https://formulae.brew.sh/api/formula.json. Each formula
// declares its dependencies in five [Category] lists: build, runtime, test,
// recommended and optional.
//
// # Matching
//
// [Matches] reports whether a formula depends on a [Query] in any category.
// A dependency matches when it equals the query or starts with the query
// followed by "@", so "python" matches both "python" and "python@3.12".
// Matching is case-sensitive and applies no other normalization:
//
//	f := catalog.Formula{Name: "ripgrep", BuildDependencies: []string{"rust"}}
//	catalog.Matches(f, "rust")   // true
//	catalog.Matches(f, "Rust")   // false
//
// # Aggregation
//
// [CountMatches] and [MatchingNames] reduce a catalog for one query.
// [CollectBuildDependencies] lists every distinct build dependency in the
// order it first appears.
//
// # Loading
//
// [Load] reads a snapshot file and [Decode] reads any stream. Both decode the
// whole document at once and fail without returning partial results.
package catalog
