package release

import (
	"net/http"
	"time"
)

// Release is one published version of the asset bundle.
type Release struct {
	Version   string    `json:"tag_name"`
	Assets    []Asset   `json:"assets"`
	Published time.Time `json:"published_at"`
	HTMLURL   string    `json:"html_url"`
}

// Asset is a downloadable file attached to a release.
type Asset struct {
	Name        string `json:"name"`
	DownloadURL string `json:"browser_download_url"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// Client fetches release metadata and assets.
type Client struct {
	currentVersion string
	httpClient     *http.Client
	mirror         string
	apiBase        string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithMirror sets a mirror URL for downloading release assets.
func WithMirror(mirror string) Option {
	return func(cl *Client) {
		cl.mirror = mirror
	}
}

// WithAPIBase overrides the GitHub API base URL (useful for testing).
func WithAPIBase(base string) Option {
	return func(cl *Client) {
		cl.apiBase = base
	}
}

// New creates a Client with the given current bundle version and options.
func New(currentVersion string, opts ...Option) *Client {
	c := &Client{
		currentVersion: currentVersion,
		httpClient:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CurrentVersion returns the version this client was created with.
func (c *Client) CurrentVersion() string {
	return c.currentVersion
}
