package mimedb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requestLog records the paths a test server was asked for.
type requestLog struct {
	mu    sync.Mutex
	paths []string
}

func (l *requestLog) add(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.paths = append(l.paths, path)
}

func (l *requestLog) Paths() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.paths)
}

func newDBServer(t *testing.T, status int, body string) (*httptest.Server, *requestLog) {
	t.Helper()

	log := &requestLog{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.add(r.URL.Path)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, log
}

func TestURL(t *testing.T) {
	t.Parallel()

	u, err := URL("v1.54.0")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.jsdelivr.net/gh/jshttp/mime-db@v1.54.0/db.json", u)

	for _, release := range []string{"", "v1/../x", "v1?x", "v1#x", "v 1"} {
		_, err := URL(release)
		assert.ErrorIs(t, err, ErrInvalidRelease, "release %q", release)
	}
}

func TestFetchRecords(t *testing.T) {
	t.Parallel()

	srv, requests := newDBServer(t, http.StatusOK, sampleDB)

	records, err := FetchRecords(context.Background(), "1.35.0",
		WithBaseURL(srv.URL+"/mime-db@"),
		WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	assert.Len(t, records, 5)
	assert.Equal(t, []string{"/mime-db@1.35.0/db.json"}, requests.Paths())
}

func TestFetchErrors(t *testing.T) {
	t.Parallel()

	t.Run("status", func(t *testing.T) {
		t.Parallel()

		srv, _ := newDBServer(t, http.StatusNotFound, "not found")
		_, err := Fetch(context.Background(), "v0.0.0", WithBaseURL(srv.URL+"/"), WithHTTPClient(srv.Client()))
		require.ErrorIs(t, err, ErrFetchFailed)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("invalid release", func(t *testing.T) {
		t.Parallel()

		_, err := Fetch(context.Background(), "", WithBaseURL("http://127.0.0.1:0/"))
		require.ErrorIs(t, err, ErrInvalidRelease)
	})

	t.Run("canceled", func(t *testing.T) {
		t.Parallel()

		srv, _ := newDBServer(t, http.StatusOK, sampleDB)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := Fetch(ctx, "v1", WithBaseURL(srv.URL+"/"), WithHTTPClient(srv.Client()))
		require.ErrorIs(t, err, ErrFetchFailed)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("too large", func(t *testing.T) {
		t.Parallel()

		srv, _ := newDBServer(t, http.StatusOK, strings.Repeat(" ", maxDatabaseSize+1))
		_, err := Fetch(context.Background(), "v1", WithBaseURL(srv.URL+"/"), WithHTTPClient(srv.Client()))
		require.ErrorIs(t, err, ErrFetchFailed)
	})

	t.Run("bad body", func(t *testing.T) {
		t.Parallel()

		srv, _ := newDBServer(t, http.StatusOK, "{}")
		_, err := FetchRecords(context.Background(), "v1", WithBaseURL(srv.URL+"/"), WithHTTPClient(srv.Client()))
		require.ErrorIs(t, err, ErrEmptyDatabase)
	})
}
