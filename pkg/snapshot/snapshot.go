package snapshot

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	apperr "github.com/matzehuels/rustbrew/pkg/errors"
	"github.com/matzehuels/rustbrew/pkg/integrations"
)

// DefaultMaxAge is how long a downloaded snapshot stays fresh.
const DefaultMaxAge = 7 * 24 * time.Hour

// DefaultFile is the snapshot file name, relative to the working directory.
const DefaultFile = "core_formulas.json"

// Fetcher streams the remote catalog into w.
type Fetcher interface {
	Fetch(ctx context.Context, w io.Writer) (int64, error)
}

// Snapshot is a locally cached copy of the catalog.
// It is not safe for concurrent use.
type Snapshot struct {
	path    string
	maxAge  time.Duration
	fetcher Fetcher
	logger  *log.Logger
	now     func() time.Time
}

// New creates a Snapshot stored at path that is refreshed through f once it
// is older than maxAge. A non-positive maxAge selects [DefaultMaxAge] and a
// nil logger selects log.Default().
func New(path string, maxAge time.Duration, f Fetcher, logger *log.Logger) *Snapshot {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Snapshot{
		path:    path,
		maxAge:  maxAge,
		fetcher: f,
		logger:  logger,
		now:     time.Now,
	}
}

// Path returns the snapshot file path.
func (s *Snapshot) Path() string { return s.path }

// MaxAge returns the freshness window.
func (s *Snapshot) MaxAge() time.Duration { return s.maxAge }

// Status describes the snapshot file on disk.
type Status struct {
	Exists  bool
	ModTime time.Time
	Age     time.Duration
	Size    int64
	Fresh   bool
}

// Status reports the current state of the snapshot file without touching it.
// A missing file is not an error.
func (s *Snapshot) Status() (Status, error) {
	info, err := os.Stat(s.path)
	if os.IsNotExist(err) {
		return Status{}, nil
	}
	if err != nil {
		return Status{}, apperr.Wrap(apperr.ErrCodeIO, err, "stat snapshot %s", s.path)
	}
	now := s.now()
	return Status{
		Exists:  true,
		ModTime: info.ModTime(),
		Age:     now.Sub(info.ModTime()),
		Size:    info.Size(),
		Fresh:   !Stale(s.path, s.maxAge, now),
	}, nil
}

// Stale reports whether the file at path must be downloaded again: it is
// missing, cannot be opened for reading, or was last modified more than
// maxAge before now.
func Stale(path string, maxAge time.Duration, now time.Time) bool {
	f, err := os.Open(path)
	if err != nil {
		return true
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return true
	}
	return info.ModTime().Before(now.Add(-maxAge))
}

// EnsureFresh downloads the catalog when the snapshot is stale, or always
// when force is set. It reports whether a download happened.
func (s *Snapshot) EnsureFresh(ctx context.Context, force bool) (bool, error) {
	if !force && !Stale(s.path, s.maxAge, s.now()) {
		s.logger.Debug("catalog snapshot is fresh", "path", s.path)
		return false, nil
	}
	s.logger.Debug("downloading catalog snapshot", "path", s.path, "forced", force)

	start := time.Now()
	n, err := s.download(ctx)
	if err != nil {
		return false, err
	}
	s.logger.Info("wrote catalog snapshot",
		"path", s.path,
		"bytes", n,
		"duration", time.Since(start).Round(time.Millisecond))
	return true, nil
}

// Remove deletes the snapshot file. It reports whether a file was removed.
func (s *Snapshot) Remove() (bool, error) {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, apperr.Wrap(apperr.ErrCodeIO, err, "remove snapshot %s", s.path)
	}
	return true, nil
}

func (s *Snapshot) download(ctx context.Context) (int64, error) {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return 0, apperr.Wrap(apperr.ErrCodeIO, err, "create file in %s", dir)
	}
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	buf := bufio.NewWriter(tmp)
	// Fetchers are not trusted to keep write errors distinguishable.
	tw := integrations.NewTrackingWriter(buf)
	n, err := s.fetcher.Fetch(ctx, tw)
	if err != nil {
		if tw.Err() != nil {
			return n, apperr.Wrap(apperr.ErrCodeIO, tw.Err(), "write snapshot %s", s.path)
		}
		return n, apperr.Wrap(apperr.ErrCodeNetwork, err, "download catalog")
	}
	if err := buf.Flush(); err != nil {
		return n, apperr.Wrap(apperr.ErrCodeIO, err, "write snapshot %s", s.path)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return n, apperr.Wrap(apperr.ErrCodeIO, err, "write snapshot %s", s.path)
	}
	if err := tmp.Close(); err != nil {
		return n, apperr.Wrap(apperr.ErrCodeIO, err, "write snapshot %s", s.path)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return n, apperr.Wrap(apperr.ErrCodeIO, err, "replace snapshot %s", s.path)
	}
	committed = true
	return n, nil
}
