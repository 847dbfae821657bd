package release

import (
	"fmt"
	"io"
	"time"

	"github.com/btLong402/flutter-skill/internal/branding"
)

// CheckAndPrintBanner checks the version cache and prints a banner if a
// newer bundle is available. It never blocks: if the cache is stale, a
// background goroutine refreshes it for the next invocation.
func (c *Client) CheckAndPrintBanner(w io.Writer, configDir string) {
	cache, err := LoadCache(configDir)
	if err != nil {
		// Silently ignore cache errors.
		return
	}

	if cache != nil && cache.UpdateAvailable {
		PrintUpdateBanner(w, cache.CurrentVersion, cache.LatestVersion)
	}

	if IsCacheStale(cache, DefaultCacheMaxAge) {
		go c.refreshCache(configDir)
	}
}

// PrintUpdateBanner prints the update notification to w.
func PrintUpdateBanner(w io.Writer, current, latest string) {
	fmt.Fprintf(w, "\nKnowledge base update available: %s -> %s\n", current, latest)
	fmt.Fprintf(w, "    Run `%s update` to upgrade\n\n", branding.CLIName())
}

// refreshCache fetches the latest version and updates the cache file.
// Runs in a background goroutine and never fails loudly.
func (c *Client) refreshCache(configDir string) {
	rel, err := c.Latest()
	if err != nil {
		return
	}

	available, err := IsUpdateAvailable(c.currentVersion, rel.Version)
	if err != nil {
		return
	}

	cache := &VersionCache{
		LatestVersion:   rel.Version,
		CurrentVersion:  c.currentVersion,
		CheckedAt:       time.Now(),
		UpdateAvailable: available,
	}

	// Silently ignore save errors.
	_ = SaveCache(configDir, cache)
}
