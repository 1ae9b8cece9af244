// Package input loads raw puzzle inputs by puzzle identifier.
package input

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
)

const (
	ErrTypeInputNotFound = "input_not_found"
	ErrTypeFetch         = "input_fetch_error"
)

// Loader reads puzzle inputs from a local directory and falls back to
// fetching them from a remote endpoint. Fetched inputs are cached in the
// directory.
type Loader struct {
	// The directory where inputs are stored as <id>.txt.
	Dir string

	// The remote endpoint serving inputs at <Endpoint>/<id>/input. Empty
	// disables fetching.
	Endpoint string

	// The session token sent as the "session" cookie.
	Session string

	// The transport used to fetch inputs. Defaults to http.DefaultTransport.
	Transport http.RoundTripper
}

// Load returns the raw input of the given puzzle.
func (l Loader) Load(ctx context.Context, id string) (string, error) {
	path := l.path(id)

	b, err := os.ReadFile(path)
	if err == nil {
		return string(b), nil
	}
	if !os.IsNotExist(err) {
		return "", errors.New("reading input failed").
			WithTag("puzzle", id).
			WithTag("path", path).
			Wrap(err)
	}

	if l.Endpoint == "" {
		return "", errors.New("input not found").
			WithType(ErrTypeInputNotFound).
			WithTag("puzzle", id).
			WithTag("path", path)
	}

	body, err := l.fetch(ctx, id)
	if err != nil {
		return "", err
	}

	if err := l.cache(path, body); err != nil {
		logs.Warn(errors.New("caching input failed").
			WithTag("puzzle", id).
			WithTag("path", path).
			Wrap(err))
	}
	return string(body), nil
}

func (l Loader) path(id string) string {
	dir := l.Dir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, id+".txt")
}

func (l Loader) fetch(ctx context.Context, id string) ([]byte, error) {
	url := strings.TrimSuffix(l.Endpoint, "/") + "/" + id + "/input"

	var body []byte
	err := instrumentFetch(l.Endpoint, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return errors.New("creating input request failed").
				WithType(ErrTypeFetch).
				Wrap(err)
		}
		if l.Session != "" {
			req.AddCookie(&http.Cookie{Name: "session", Value: l.Session})
		}

		transport := l.Transport
		if transport == nil {
			transport = http.DefaultTransport
		}
		client := http.Client{Transport: transport}

		res, err := client.Do(req)
		if err != nil {
			return errors.New("fetching input failed").
				WithType(ErrTypeFetch).
				Wrap(err)
		}
		defer res.Body.Close()

		if res.StatusCode != http.StatusOK {
			return errors.New("fetching input failed").
				WithType(ErrTypeFetch).
				WithTag("status", res.StatusCode)
		}

		if body, err = io.ReadAll(res.Body); err != nil {
			return errors.New("reading input response failed").
				WithType(ErrTypeFetch).
				Wrap(err)
		}
		return nil
	})
	if err != nil {
		return nil, errors.New("loading input failed").
			WithTag("puzzle", id).
			WithTag("url", url).
			Wrap(err)
	}
	return body, nil
}

func (l Loader) cache(path string, body []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	return os.WriteFile(path, body, 0644)
}

// LoadFile returns the content of the given file. "-" reads the standard
// input.
func LoadFile(path string) (string, error) {
	var b []byte
	var err error
	if path == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(path)
	}

	if err != nil {
		return "", errors.New("reading input file failed").
			WithTag("path", path).
			Wrap(err)
	}
	return string(b), nil
}
