package integrations

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	headers := map[string]string{"User-Agent": "test"}
	client := NewClient(nil, headers)

	if client == nil {
		t.Fatal("NewClient() returned nil")
	}
	if client.http == nil {
		t.Error("NewClient() http client is nil")
	}
	if client.http.Timeout != 0 {
		t.Errorf("NewClient(nil) timeout = %v, want 0", client.http.Timeout)
	}
	if client.headers["User-Agent"] != "test" {
		t.Error("NewClient() headers not set correctly")
	}
}

func TestNewHTTPClient(t *testing.T) {
	if got := NewHTTPClient(5 * time.Second).Timeout; got != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", got)
	}
}

func TestClientStream(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`[{"name":"foo"}]`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), map[string]string{"User-Agent": UserAgent()})

	var buf bytes.Buffer
	n, err := client.Stream(context.Background(), server.URL, &buf)
	if err != nil {
		t.Fatalf("Stream() error: %v", err)
	}
	if buf.String() != `[{"name":"foo"}]` {
		t.Errorf("Stream() body = %q", buf.String())
	}
	if n != int64(buf.Len()) {
		t.Errorf("Stream() n = %d, want %d", n, buf.Len())
	}
	if gotUA != UserAgent() {
		t.Errorf("User-Agent = %q, want %q", gotUA, UserAgent())
	}
}

func TestClientStreamStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"not found", http.StatusNotFound, ErrNotFound},
		{"server error", http.StatusInternalServerError, ErrNetwork},
		{"bad gateway", http.StatusBadGateway, ErrNetwork},
		{"forbidden", http.StatusForbidden, ErrNetwork},
		{"no content", http.StatusNoContent, ErrNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := NewClient(server.Client(), nil)
			var buf bytes.Buffer
			_, err := client.Stream(context.Background(), server.URL, &buf)
			if !errors.Is(err, tt.want) {
				t.Errorf("Stream() error = %v, want %v", err, tt.want)
			}
			if calls != 1 {
				t.Errorf("server saw %d requests, want exactly 1", calls)
			}
			if buf.Len() != 0 {
				t.Errorf("nothing should be written on error, got %q", buf.String())
			}
		})
	}
}

func TestClientStreamUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(nil, nil)
	_, err := client.Stream(context.Background(), url, &bytes.Buffer{})
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("Stream() error = %v, want ErrNetwork", err)
	}
}

func TestClientStreamCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.Client(), nil)
	_, err := client.Stream(ctx, server.URL, &bytes.Buffer{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Stream() error = %v, want context.Canceled", err)
	}
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestClientStreamWriteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	diskFull := errors.New("no space left on device")
	client := NewClient(server.Client(), nil)
	_, err := client.Stream(context.Background(), server.URL, failingWriter{diskFull})
	if !errors.Is(err, diskFull) {
		t.Errorf("Stream() error = %v, want %v", err, diskFull)
	}
	if errors.Is(err, ErrNetwork) {
		t.Error("write failures must not be reported as network errors")
	}
}

func TestTrackingWriterKeepsFirstError(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTrackingWriter(&buf)
	if _, err := tw.Write([]byte("ok")); err != nil || tw.Err() != nil {
		t.Fatalf("Write() error = %v, Err() = %v, want nil", err, tw.Err())
	}

	first := errors.New("first")
	tw = NewTrackingWriter(failingWriter{first})
	tw.Write([]byte("a"))
	tw.w = failingWriter{errors.New("second")}
	tw.Write([]byte("b"))
	if tw.Err() != first {
		t.Errorf("Err() = %v, want %v", tw.Err(), first)
	}
}
