package sheet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientFetch_ReturnsBody(t *testing.T) {
	const body = "id,class,score,status\n1,1-1,50,\n"

	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(body))
	}))
	defer srv.Close()

	client := NewClient(5 * time.Second)
	got, err := client.Fetch(context.Background(), srv.URL)

	require.NoError(t, err, "Should fetch the published CSV")
	assert.Equal(t, body, got)
	assert.NotEmpty(t, gotQuery["t"], "Cache buster should be appended")
}

func TestClientFetch_CacheBusterPreservesQuery(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte("id\n"))
	}))
	defer srv.Close()

	client := NewClient(5 * time.Second)
	// Fixed clock so the appended parameter is deterministic
	fixed := time.UnixMilli(1700000000000)
	client.now = func() time.Time { return fixed }

	_, err := client.Fetch(context.Background(), srv.URL+"/pub?gid=0&output=csv")
	require.NoError(t, err)

	assert.Equal(t, "csv", got.Get("output"), "Existing query parameters must survive")
	assert.Equal(t, "0", got.Get("gid"))
	assert.Equal(t, "1700000000000", got.Get("t"))
}

func TestClientFetch_HTMLBodyIsFormatError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<!DOCTYPE html><html><head><title>로그인</title></head></html>"))
	}))
	defer srv.Close()

	client := NewClient(5 * time.Second)
	_, err := client.Fetch(context.Background(), srv.URL)

	require.Error(t, err)
	assert.True(t, IsFormatError(err), "HTML body should be a format error")
	assert.False(t, IsNetworkError(err))
}

func TestClientFetch_HTMLWinsOverBadStatus(t *testing.T) {
	// A misconfigured publish link can serve its error page with any
	// status; the body check decides
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("  \n<html><body>temporarily unavailable</body></html>"))
	}))
	defer srv.Close()

	client := NewClient(5 * time.Second)
	_, err := client.Fetch(context.Background(), srv.URL)

	require.Error(t, err)
	assert.True(t, IsFormatError(err), "Format error should win regardless of HTTP status")
}

func TestClientFetch_BadStatusIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(5 * time.Second)
	_, err := client.Fetch(context.Background(), srv.URL)

	require.Error(t, err)
	var ne *NetworkError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, http.StatusNotFound, ne.StatusCode)
}

func TestClientFetch_TransportFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse all connections

	client := NewClient(2 * time.Second)
	_, err := client.Fetch(context.Background(), srv.URL)

	require.Error(t, err)
	var ne *NetworkError
	require.ErrorAs(t, err, &ne)
	assert.Zero(t, ne.StatusCode, "No status when the transport call fails")
	assert.Error(t, ne.Unwrap(), "Underlying transport error should be preserved")
}

func TestClientFetch_InvalidURL(t *testing.T) {
	client := NewClient(time.Second)
	_, err := client.Fetch(context.Background(), "://not-a-url")

	require.Error(t, err)
	assert.False(t, IsNetworkError(err))
	assert.False(t, IsFormatError(err))
}
