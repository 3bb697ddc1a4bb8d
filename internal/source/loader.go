package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/colorcompare/pkg/types"
)

// Loader errors.
var (
	ErrInvalidName = errors.New("invalid document name")
	ErrHTTPStatus  = errors.New("unexpected HTTP status")
	ErrTooLarge    = errors.New("document exceeds size limit")
)

// Loader reads the raw bytes of a named document.
type Loader interface {
	Load(ctx context.Context, name string) ([]byte, error)
}

// DirLoader reads documents from files under Root.
type DirLoader struct {
	Root string
}

// Load reads Root/name. Names must be relative and stay inside Root.
func (l DirLoader) Load(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	clean, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(l.Root, filepath.FromSlash(clean)))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", clean, err)
	}
	return data, nil
}

// HTTPLoader fetches documents relative to BaseURL.
type HTTPLoader struct {
	BaseURL      string
	Client       *http.Client
	UserAgent    string
	MaxBodyBytes int64
}

// Load issues a single GET for BaseURL/name. There are no retries; the
// caller decides what a failure means.
func (l HTTPLoader) Load(ctx context.Context, name string) ([]byte, error) {
	clean, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	target, err := url.JoinPath(l.BaseURL, clean)
	if err != nil {
		return nil, fmt.Errorf("building URL for %s: %w", clean, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if l.UserAgent != "" {
		req.Header.Set("User-Agent", l.UserAgent)
	}

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %d", ErrHTTPStatus, target, resp.StatusCode)
	}

	limit := l.MaxBodyBytes
	if limit <= 0 {
		limit = 64 << 20
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", target, err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: %s", ErrTooLarge, target)
	}
	return data, nil
}

// cleanName rejects absolute names and names that climb out of the root.
func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidName)
	}
	clean := filepath.ToSlash(filepath.Clean(filepath.FromSlash(name)))
	if strings.HasPrefix(clean, "/") || clean == ".." || strings.HasPrefix(clean, "../") || filepath.IsAbs(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return clean, nil
}

// NewLoader builds the Loader selected by cfg.
func NewLoader(cfg types.Config, s Settings) (Loader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Source {
	case types.SourceHTTP:
		return HTTPLoader{
			BaseURL:      cfg.BaseURL,
			Client:       &http.Client{Timeout: s.HTTPTimeout},
			UserAgent:    s.UserAgent,
			MaxBodyBytes: s.MaxBodyBytes,
		}, nil
	default:
		return DirLoader{Root: cfg.DataDir}, nil
	}
}
