package release

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/btLong402/flutter-skill/internal/branding"
)

const githubAPIBase = "https://api.github.com"

// Latest fetches the most recent release from GitHub.
func (c *Client) Latest() (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", c.base(), branding.GitHubRepo())

	body, err := c.get(url)
	if err != nil {
		return nil, err
	}

	var rel Release
	if err := json.Unmarshal(body, &rel); err != nil {
		return nil, fmt.Errorf("parsing release JSON: %w", err)
	}
	c.applyMirror(&rel)
	return &rel, nil
}

// ByTag fetches a release by tag. A missing "v" prefix is tolerated.
func (c *Client) ByTag(tag string) (*Release, error) {
	if !strings.HasPrefix(tag, "v") {
		tag = "v" + tag
	}
	url := fmt.Sprintf("%s/repos/%s/releases/tags/%s", c.base(), branding.GitHubRepo(), tag)

	body, err := c.get(url)
	if err != nil {
		return nil, err
	}

	var rel Release
	if err := json.Unmarshal(body, &rel); err != nil {
		return nil, fmt.Errorf("parsing release JSON: %w", err)
	}
	c.applyMirror(&rel)
	return &rel, nil
}

// List fetches all published releases, newest first.
func (c *Client) List() ([]Release, error) {
	url := fmt.Sprintf("%s/repos/%s/releases", c.base(), branding.GitHubRepo())

	body, err := c.get(url)
	if err != nil {
		return nil, err
	}

	var releases []Release
	if err := json.Unmarshal(body, &releases); err != nil {
		return nil, fmt.Errorf("parsing release list JSON: %w", err)
	}
	for i := range releases {
		c.applyMirror(&releases[i])
	}
	return releases, nil
}

func (c *Client) base() string {
	if c.apiBase != "" {
		return c.apiBase
	}
	return githubAPIBase
}

func (c *Client) get(url string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", branding.CLIName()+"-release")

	// Support optional GitHub token for higher rate limits.
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		req.Header.Set("Authorization", "token "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching release feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("release not found")
	}
	if resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("GitHub API rate limit exceeded. Set GITHUB_TOKEN for higher limits")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return body, nil
}

// applyMirror rewrites asset download URLs when a mirror is configured.
func (c *Client) applyMirror(rel *Release) {
	if c.mirror == "" {
		return
	}
	for i := range rel.Assets {
		rel.Assets[i].DownloadURL = strings.TrimRight(c.mirror, "/") + "/" + rel.Assets[i].Name
	}
}

// BundleAsset finds the knowledge bundle archive in a release.
func BundleAsset(rel *Release) (*Asset, error) {
	for i := range rel.Assets {
		if rel.Assets[i].Name == branding.AssetName() {
			return &rel.Assets[i], nil
		}
	}
	return nil, fmt.Errorf("release %s has no %s asset", rel.Version, branding.AssetName())
}
