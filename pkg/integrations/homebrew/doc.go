// Package homebrew provides an HTTP client for the Homebrew formulae API.
//
// # Overview
//
// This package downloads the Homebrew Core catalog from
// https://formulae.brew.sh/api/formula.json, a single JSON array with one
// object per formula. The body is streamed to the caller's writer without
// being decoded; [catalog.Decode] parses it later.
//
// # Usage
//
//	client := homebrew.NewClient(homebrew.DefaultEndpoint, integrations.NewHTTPClient(0))
//	n, err := client.Fetch(ctx, file)
//
// There is no authentication, pagination or incremental sync: every fetch
// transfers the full catalog.
//
// [catalog.Decode]: github.com/matzehuels/rustbrew/pkg/catalog.Decode
package homebrew
