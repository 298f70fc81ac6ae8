// SPDX-License-Identifier: MPL-2.0

package fetch

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// DefaultTimeout bounds a single archive download. Release archives are
// usually a few megabytes; five minutes leaves room for slow links.
const DefaultTimeout = 5 * time.Minute

// NetworkError describes a failed archive download. Any transport-level or
// HTTP-status failure aborts the whole publish; there are no retries.
type NetworkError struct {
	URL string
	Err error
}

// Error returns a human-readable description of the download failure.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("downloading %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error { return e.Err }

type (
	// Client downloads release source archives and hashes them.
	Client struct {
		httpClient *http.Client
		baseURL    string // archive host base URL (default "https://github.com", overridable for tests)
		token      string // optional token for private repositories
		userAgent  string
	}

	// ClientOption configures a Client during construction.
	ClientOption func(*Client)
)

// WithHTTPClient sets a custom HTTP client, useful for tests or proxy
// configurations.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(f *Client) {
		f.httpClient = c
	}
}

// WithBaseURL overrides the archive host base URL, primarily for test servers.
func WithBaseURL(base string) ClientOption {
	return func(f *Client) {
		f.baseURL = strings.TrimRight(base, "/")
	}
}

// WithToken sets an access token attached to requests against the configured
// host, for archives of private repositories.
func WithToken(token string) ClientOption {
	return func(f *Client) {
		f.token = token
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) ClientOption {
	return func(f *Client) {
		f.userAgent = ua
	}
}

// NewClient creates a Client with sensible defaults: baseURL
// "https://github.com", a timeout-bounded HTTP client, and no token.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    "https://github.com",
		userAgent:  "create-bcr-entry/dev",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ArchiveURL returns the download URL for a release source archive,
// following the hosting convention
// <base>/<owner>/<repo>/archive/v<version>.tar.gz.
func (c *Client) ArchiveURL(ownerSlashRepo, version string) string {
	return fmt.Sprintf("%s/%s/archive/v%s.tar.gz", c.baseURL, ownerSlashRepo, version)
}

// ArchiveHash downloads the release archive for ownerSlashRepo at version,
// streams it to a temporary file, and returns the base64-encoded SHA-256
// digest of its content. The temporary file is removed on every exit path.
func (c *Client) ArchiveHash(ctx context.Context, ownerSlashRepo, version string) (string, error) {
	archiveURL := c.ArchiveURL(ownerSlashRepo, version)

	body, err := c.download(ctx, archiveURL)
	if err != nil {
		return "", err
	}
	defer func() {
		// Draining is pointless for an aborted archive stream.
		_ = body.Close()
	}()

	tmp, err := os.CreateTemp("", "bcr-entry-*.tar.gz")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	h := sha256.New()
	if _, err := io.Copy(io.MultiWriter(tmp, h), body); err != nil {
		return "", &NetworkError{URL: archiveURL, Err: err}
	}

	return base64.StdEncoding.EncodeToString(h.Sum(nil)), nil
}

// download issues the GET request and returns the response body as a
// streaming reader. The caller closes the returned ReadCloser.
func (c *Client) download(ctx context.Context, archiveURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, archiveURL, http.NoBody)
	if err != nil {
		return nil, &NetworkError{URL: archiveURL, Err: err}
	}

	req.Header.Set("User-Agent", c.userAgent)

	// Only attach the token when the request targets the configured host.
	// This prevents token leakage if the download redirects to a CDN.
	if c.token != "" && isConfiguredHost(req.URL, c.baseURL) {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: archiveURL, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, &NetworkError{URL: archiveURL, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	return resp.Body, nil
}

// isConfiguredHost reports whether reqURL targets the configured base host.
func isConfiguredHost(reqURL *url.URL, baseURL string) bool {
	base, err := url.Parse(baseURL)
	if err != nil {
		return false
	}
	return strings.EqualFold(reqURL.Host, base.Host)
}
