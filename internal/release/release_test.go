package release

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		current, latest string
		want            int
	}{
		{"1.0.0", "1.1.0", -1},
		{"v1.1.0", "1.1.0", 0},
		{"2.0.0", "v1.9.9", 1},
	}
	for _, tt := range tests {
		got, err := CompareVersions(tt.current, tt.latest)
		if err != nil {
			t.Fatalf("CompareVersions(%q, %q): %v", tt.current, tt.latest, err)
		}
		if got != tt.want {
			t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.current, tt.latest, got, tt.want)
		}
	}
}

func TestCompareVersionsInvalid(t *testing.T) {
	if _, err := CompareVersions("not-a-version", "1.0.0"); err == nil {
		t.Error("expected error for invalid version")
	}
}

func TestIsUpdateAvailable(t *testing.T) {
	available, err := IsUpdateAvailable("1.0.0", "1.2.0")
	if err != nil {
		t.Fatal(err)
	}
	if !available {
		t.Error("expected update to be available")
	}

	available, err = IsUpdateAvailable("1.2.0", "1.2.0")
	if err != nil {
		t.Fatal(err)
	}
	if available {
		t.Error("equal versions should not report an update")
	}
}

func TestLatestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"tag_name": "v1.5.0", "assets": [
			{"name": "flutter-skill-assets.tar.gz", "browser_download_url": "https://example.com/a.tar.gz"}
		]}`)
	}))
	defer srv.Close()

	c := New("1.4.0", WithAPIBase(srv.URL))
	rel, err := c.Latest()
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if rel.Version != "v1.5.0" {
		t.Errorf("Version = %q", rel.Version)
	}

	asset, err := BundleAsset(rel)
	if err != nil {
		t.Fatalf("BundleAsset: %v", err)
	}
	if asset.DownloadURL != "https://example.com/a.tar.gz" {
		t.Errorf("DownloadURL = %q", asset.DownloadURL)
	}
}

func TestListFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"tag_name": "v1.5.0"}, {"tag_name": "v1.4.0"}]`)
	}))
	defer srv.Close()

	c := New("1.4.0", WithAPIBase(srv.URL))
	releases, err := c.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(releases) != 2 || releases[0].Version != "v1.5.0" {
		t.Errorf("unexpected releases: %+v", releases)
	}
}

func TestMirrorRewritesAssetURLs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"tag_name": "v1.5.0", "assets": [
			{"name": "flutter-skill-assets.tar.gz", "browser_download_url": "https://github.example/a.tar.gz"}
		]}`)
	}))
	defer srv.Close()

	c := New("1.4.0", WithAPIBase(srv.URL), WithMirror("https://mirror.example/releases/"))
	rel, err := c.Latest()
	if err != nil {
		t.Fatal(err)
	}
	want := "https://mirror.example/releases/flutter-skill-assets.tar.gz"
	if rel.Assets[0].DownloadURL != want {
		t.Errorf("DownloadURL = %q, want %q", rel.Assets[0].DownloadURL, want)
	}
}

func TestNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := New("1.4.0", WithAPIBase(srv.URL))
	if _, err := c.ByTag("9.9.9"); err == nil {
		t.Error("expected error for missing release")
	}
}

func TestCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()

	// Missing cache is not an error.
	cache, err := LoadCache(dir)
	if err != nil {
		t.Fatalf("LoadCache (missing): %v", err)
	}
	if cache != nil {
		t.Error("expected nil cache on first run")
	}

	saved := &VersionCache{
		LatestVersion:   "1.5.0",
		CurrentVersion:  "1.4.0",
		CheckedAt:       time.Now(),
		UpdateAvailable: true,
	}
	if err := SaveCache(dir, saved); err != nil {
		t.Fatalf("SaveCache: %v", err)
	}

	loaded, err := LoadCache(dir)
	if err != nil {
		t.Fatalf("LoadCache: %v", err)
	}
	if loaded.LatestVersion != "1.5.0" || !loaded.UpdateAvailable {
		t.Errorf("unexpected cache: %+v", loaded)
	}
}

func TestIsCacheStale(t *testing.T) {
	if !IsCacheStale(nil, time.Hour) {
		t.Error("nil cache should be stale")
	}
	fresh := &VersionCache{CheckedAt: time.Now()}
	if IsCacheStale(fresh, time.Hour) {
		t.Error("fresh cache should not be stale")
	}
	old := &VersionCache{CheckedAt: time.Now().Add(-2 * time.Hour)}
	if !IsCacheStale(old, time.Hour) {
		t.Error("old cache should be stale")
	}
}
