package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMetricsPathFormatter(t *testing.T) {
	tests := []struct {
		statusCode int
		path       string
		expected   string
	}{
		{statusCode: http.StatusOK, path: "/metrics", expected: "/metrics"},
		{statusCode: http.StatusOK, path: "/debug/pprof/heap", expected: "/debug/pprof"},
		{statusCode: http.StatusNotFound, path: "/nope", expected: ""},
		{statusCode: http.StatusMethodNotAllowed, path: "/health", expected: ""},
	}

	for _, test := range tests {
		require.Equal(t, test.expected, MetricsPathFormatter(test.statusCode, test.path))
	}
}

func TestAdminHandler(t *testing.T) {
	server := httptest.NewServer(NewAdminHandler("v1.2.3"))
	defer server.Close()

	t.Run("health", func(t *testing.T) {
		res, err := http.Get(server.URL + "/health")
		require.NoError(t, err)
		defer res.Body.Close()
		require.Equal(t, http.StatusOK, res.StatusCode)
	})

	t.Run("version", func(t *testing.T) {
		res, err := http.Get(server.URL + "/version")
		require.NoError(t, err)
		defer res.Body.Close()

		b, err := io.ReadAll(res.Body)
		require.NoError(t, err)
		require.Equal(t, "v1.2.3", string(b))
	})

	t.Run("metrics", func(t *testing.T) {
		res, err := http.Get(server.URL + "/metrics")
		require.NoError(t, err)
		defer res.Body.Close()
		require.Equal(t, http.StatusOK, res.StatusCode)

		b, err := io.ReadAll(res.Body)
		require.NoError(t, err)
		require.Contains(t, string(b), "go_goroutines")
	})
}

func TestListenAndServe(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		defer close(done)
		ListenAndServe(ctx, &http.Server{
			Addr:    "127.0.0.1:0",
			Handler: http.HandlerFunc(HandleHealthCheck),
		})
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
