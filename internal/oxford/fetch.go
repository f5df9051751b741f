package oxford

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Fetcher loads the listing page, downloading it to a local cache path on
// first use. Subsequent runs read the cached copy and never touch the
// network.
type Fetcher struct {
	url        string
	path       string
	httpClient *http.Client
	log        *slog.Logger
}

// NewFetcher creates a Fetcher caching the page from url at path.
func NewFetcher(url, path string, timeout time.Duration, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		url:        url,
		path:       path,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "oxford"),
	}
}

// Load returns the parsed listing metadata, downloading the page first when
// the cached copy does not exist.
func (f *Fetcher) Load(ctx context.Context) (map[string]*Metadata, error) {
	if _, err := os.Stat(f.path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("oxford: stat %s: %w", f.path, err)
		}
		if err := f.download(ctx); err != nil {
			return nil, err
		}
	}

	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("oxford: open listing: %w", err)
	}
	defer file.Close()

	return ParseMetadata(file)
}

func (f *Fetcher) download(ctx context.Context) error {
	f.log.InfoContext(ctx, "downloading listing page", slog.String("url", f.url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return fmt.Errorf("oxford: create request: %w", err)
	}

	resp, err := f.doWithRetry(ctx, req)
	if err != nil {
		return fmt.Errorf("oxford: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("oxford: unexpected status %d", resp.StatusCode)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("oxford: create cache dir: %w", err)
	}

	out, err := os.Create(f.path)
	if err != nil {
		return fmt.Errorf("oxford: create cache file: %w", err)
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(f.path)
		return fmt.Errorf("oxford: write cache file: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("oxford: close cache file: %w", err)
	}

	f.log.InfoContext(ctx, "listing page cached", slog.String("path", f.path))
	return nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (f *Fetcher) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := f.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	f.log.WarnContext(ctx, "oxford retry", slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	resp, err = f.httpClient.Do(req)
	return resp, err
}
