package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchReturnsBody(t *testing.T) {
	t.Parallel()

	var gotUA, gotLang string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotLang = r.Header.Get("Accept-Language")
		_, _ = w.Write([]byte("<html>ok</html>"))
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL, 5*time.Second)
	body, err := f.Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "<html>ok</html>", body)
	assert.Contains(t, gotUA, "Mozilla/5.0", "must present a browser user agent")
	assert.Contains(t, gotLang, "it-IT", "must request the Italian page")
}

func TestFetchNon2xxIsError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL, 5*time.Second)
	_, err := f.Fetch(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestFetchConnectionError(t *testing.T) {
	t.Parallel()

	// Port 1 is never listening.
	f := NewFetcher("http://127.0.0.1:1/", time.Second)
	_, err := f.Fetch(context.Background())

	require.Error(t, err)
}

func TestFetchURL(t *testing.T) {
	t.Parallel()

	f := NewFetcher("https://example.org/esami", time.Second)
	assert.Equal(t, "https://example.org/esami", f.URL())
}
