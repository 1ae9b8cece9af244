package http

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
)

// How long in-flight admin requests get to complete once the run is over.
const shutdownTimeout = 5 * time.Second

// ListenAndServe serves the given servers until ctx is done, then shuts
// them down and waits for them to stop.
func ListenAndServe(ctx context.Context, servers ...*http.Server) {
	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		for _, s := range servers {
			if err := s.Shutdown(shutdownCtx); err != nil {
				logs.Warn(errors.Newf("shutting down the admin server failed").
					WithTag("addr", s.Addr).
					Wrap(err))
			}
		}
	}()

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)

		go func(s *http.Server) {
			defer wg.Done()
			serve(s)
		}(s)
	}
	wg.Wait()
}

func serve(s *http.Server) {
	logs.WithTag("addr", s.Addr).Info("starting admin server")

	err := s.ListenAndServe()
	if err == nil || err == http.ErrServerClosed {
		logs.WithTag("addr", s.Addr).Info("admin server stopped")
		return
	}

	logs.Warn(errors.Newf("admin server stopped").
		WithTag("addr", s.Addr).
		Wrap(err))
}

// MetricsPathFormatter returns empty string on HTTP 301, 400, 404 or 405
// statusCode. Profiling paths are collapsed into /debug/pprof.
func MetricsPathFormatter(statusCode int, path string) string {
	if statusCode == http.StatusMovedPermanently ||
		statusCode == http.StatusBadRequest ||
		statusCode == http.StatusNotFound ||
		statusCode == http.StatusMethodNotAllowed {
		return ""
	}

	if strings.HasPrefix(path, "/debug/pprof") {
		return "/debug/pprof"
	}
	return path
}
