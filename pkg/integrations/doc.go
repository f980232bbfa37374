// Package integrations provides the HTTP plumbing shared by remote catalog
// clients.
//
// # Overview
//
// The [Client] type performs single-attempt GET requests with default
// headers, maps HTTP status codes onto the [ErrNotFound] and [ErrNetwork]
// sentinels and streams response bodies to an [io.Writer]. Registry-specific
// clients live in subpackages:
//
//   - [homebrew]: Homebrew Core formula catalog (formulae.brew.sh)
//
// # Errors
//
// Every transport failure and non-200 response wraps one of the sentinels,
// so callers can classify with errors.Is:
//
//	if _, err := client.Stream(ctx, url, w); errors.Is(err, integrations.ErrNetwork) {
//	    // endpoint unreachable or unhealthy
//	}
//
// Requests are never retried.
//
// [homebrew]: github.com/matzehuels/rustbrew/pkg/integrations/homebrew
package integrations
