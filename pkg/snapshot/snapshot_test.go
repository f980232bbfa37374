package snapshot

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/matzehuels/rustbrew/pkg/errors"
)

type fakeFetcher struct {
	body  string
	err   error
	calls int
}

func (f *fakeFetcher) Fetch(ctx context.Context, w io.Writer) (int64, error) {
	f.calls++
	if f.err != nil {
		// Write part of the body first so a failed download is observable.
		io.WriteString(w, f.body[:len(f.body)/2])
		return 0, f.err
	}
	n, err := io.WriteString(w, f.body)
	return int64(n), err
}

func newTestSnapshot(t *testing.T, f Fetcher) (*Snapshot, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})
	return New(filepath.Join(t.TempDir(), DefaultFile), 0, f, logger), &logs
}

func writeAged(t *testing.T, path, content string, age time.Duration) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	mtime := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func TestNewDefaults(t *testing.T) {
	s := New("x.json", 0, &fakeFetcher{}, nil)
	assert.Equal(t, DefaultMaxAge, s.MaxAge())
	assert.Equal(t, "x.json", s.Path())
	assert.NotNil(t, s.logger)
}

func TestStale(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	missing := filepath.Join(dir, "missing.json")
	assert.True(t, Stale(missing, DefaultMaxAge, now))

	fresh := filepath.Join(dir, "fresh.json")
	writeAged(t, fresh, "[]", time.Hour)
	assert.False(t, Stale(fresh, DefaultMaxAge, now))

	old := filepath.Join(dir, "old.json")
	writeAged(t, old, "[]", DefaultMaxAge+time.Hour)
	assert.True(t, Stale(old, DefaultMaxAge, now))

	// A just-written file becomes stale once the clock passes the window.
	assert.True(t, Stale(fresh, DefaultMaxAge, now.Add(DefaultMaxAge)))
}

func TestEnsureFreshDownloadsMissing(t *testing.T) {
	f := &fakeFetcher{body: `[{"name":"foo"}]`}
	s, logs := newTestSnapshot(t, f)

	downloaded, err := s.EnsureFresh(context.Background(), false)
	require.NoError(t, err)
	assert.True(t, downloaded)
	assert.Equal(t, 1, f.calls)

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, f.body, string(data))
	assert.Contains(t, logs.String(), "wrote catalog snapshot")

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must not be left behind")
}

func TestEnsureFreshSkipsFresh(t *testing.T) {
	f := &fakeFetcher{body: "new"}
	s, _ := newTestSnapshot(t, f)
	writeAged(t, s.Path(), "old", time.Hour)

	downloaded, err := s.EnsureFresh(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, downloaded)
	assert.Equal(t, 0, f.calls)

	data, _ := os.ReadFile(s.Path())
	assert.Equal(t, "old", string(data))
}

func TestEnsureFreshReplacesStale(t *testing.T) {
	f := &fakeFetcher{body: "new"}
	s, _ := newTestSnapshot(t, f)
	writeAged(t, s.Path(), "old-and-longer", DefaultMaxAge+time.Minute)

	downloaded, err := s.EnsureFresh(context.Background(), false)
	require.NoError(t, err)
	assert.True(t, downloaded)

	data, _ := os.ReadFile(s.Path())
	assert.Equal(t, "new", string(data))

	st, err := s.Status()
	require.NoError(t, err)
	assert.True(t, st.Fresh)
}

func TestEnsureFreshForce(t *testing.T) {
	f := &fakeFetcher{body: "new"}
	s, _ := newTestSnapshot(t, f)
	writeAged(t, s.Path(), "old", time.Minute)

	downloaded, err := s.EnsureFresh(context.Background(), true)
	require.NoError(t, err)
	assert.True(t, downloaded)
	assert.Equal(t, 1, f.calls)
}

func TestEnsureFreshInjectedClock(t *testing.T) {
	f := &fakeFetcher{body: "new"}
	s, _ := newTestSnapshot(t, f)
	writeAged(t, s.Path(), "old", 0)
	s.now = func() time.Time { return time.Now().Add(8 * 24 * time.Hour) }

	downloaded, err := s.EnsureFresh(context.Background(), false)
	require.NoError(t, err)
	assert.True(t, downloaded)
}

func TestEnsureFreshNetworkFailureKeepsOldSnapshot(t *testing.T) {
	f := &fakeFetcher{body: "partial-body", err: errors.New("connection reset")}
	s, _ := newTestSnapshot(t, f)
	writeAged(t, s.Path(), "previous", DefaultMaxAge+time.Hour)

	downloaded, err := s.EnsureFresh(context.Background(), false)
	require.Error(t, err)
	assert.False(t, downloaded)
	assert.True(t, apperr.Is(err, apperr.ErrCodeNetwork), "got %v", err)
	assert.Equal(t, 1, f.calls, "downloads are never retried")

	data, _ := os.ReadFile(s.Path())
	assert.Equal(t, "previous", string(data))

	entries, _ := os.ReadDir(filepath.Dir(s.Path()))
	assert.Len(t, entries, 1)
}

func TestEnsureFreshCanceled(t *testing.T) {
	f := &fakeFetcher{body: "xx", err: context.Canceled}
	s, _ := newTestSnapshot(t, f)

	_, err := s.EnsureFresh(context.Background(), false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	_, statErr := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(statErr))
}

func TestEnsureFreshUnwritableDir(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "no", "such", "dir", DefaultFile), 0, &fakeFetcher{body: "[]"}, nil)

	_, err := s.EnsureFresh(context.Background(), false)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.ErrCodeIO), "got %v", err)
}

func TestStatusAndRemove(t *testing.T) {
	s, _ := newTestSnapshot(t, &fakeFetcher{})

	st, err := s.Status()
	require.NoError(t, err)
	assert.False(t, st.Exists)
	assert.False(t, st.Fresh)

	removed, err := s.Remove()
	require.NoError(t, err)
	assert.False(t, removed)

	writeAged(t, s.Path(), "[]", 2*time.Hour)
	st, err = s.Status()
	require.NoError(t, err)
	assert.True(t, st.Exists)
	assert.True(t, st.Fresh)
	assert.Equal(t, int64(2), st.Size)
	assert.InDelta(t, (2 * time.Hour).Seconds(), st.Age.Seconds(), 60)

	removed, err = s.Remove()
	require.NoError(t, err)
	assert.True(t, removed)
	_, statErr := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(statErr))
}
