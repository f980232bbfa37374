// Package snapshot keeps a local copy of the remote formula catalog fresh.
//
// # Overview
//
// A [Snapshot] owns one file on disk. [Snapshot.EnsureFresh] is the only way
// to bring it up to date: it checks the file's modification time against the
// maximum age and downloads a new copy through a [Fetcher] when the file is
// missing, unreadable or too old. Checking and downloading are deliberately
// one operation so callers cannot read a stale snapshot by forgetting a step.
//
//	snap := snapshot.New("core_formulas.json", snapshot.DefaultMaxAge, client, logger)
//	if _, err := snap.EnsureFresh(ctx, false); err != nil {
//	    return err
//	}
//	c, err := catalog.Load(snap.Path())
//
// # Downloads
//
// A download makes exactly one request. The body is streamed into a
// temporary file next to the snapshot and renamed over it only once the
// transfer completed, so a failed download leaves the previous snapshot in
// place. Failures are reported as NETWORK (transfer) or IO (local disk)
// coded errors from [github.com/matzehuels/rustbrew/pkg/errors].
//
// Concurrent runs against the same file are not coordinated.
package snapshot
