package cli

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/btLong402/flutter-skill/internal/manifest"
	"github.com/btLong402/flutter-skill/internal/release"
)

func bundleArchive(t *testing.T, files map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	for name, content := range files {
		hdr := &tar.Header{Name: name, Mode: 0644, Size: int64(len(content))}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatal(err)
		}
		if _, err := tw.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestResolveSourceOffline(t *testing.T) {
	src, cleanup, err := resolveSource(release.New(bundleVersion()), true, io.Discard)
	if err != nil {
		t.Fatalf("resolveSource: %v", err)
	}
	defer cleanup()

	if src.Version() != bundleVersion() {
		t.Errorf("offline source version = %q, want bundled %q", src.Version(), bundleVersion())
	}
}

func TestResolveSourceFeedUnreachableFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := release.New("1.4.0",
		release.WithAPIBase(srv.URL),
		release.WithHTTPClient(srv.Client()))

	var warn bytes.Buffer
	src, cleanup, err := resolveSource(client, false, &warn)
	if err != nil {
		t.Fatalf("resolveSource: %v", err)
	}
	defer cleanup()

	if src.Version() != bundleVersion() {
		t.Errorf("expected bundled fallback, got version %q", src.Version())
	}
	if !strings.Contains(warn.String(), "bundled assets") {
		t.Errorf("expected fallback warning, got %q", warn.String())
	}
}

func TestResolveSourceInvalidRemoteManifestFatal(t *testing.T) {
	archive := bundleArchive(t, map[string]string{
		"manifest.json": `{"name": "x", "version": "latest", "files": ["data/a.csv"]}`,
		"data/a.csv":    "name\nfoo\n",
	})

	mux := http.NewServeMux()
	mux.HandleFunc("/flutter-skill-assets.tar.gz", func(w http.ResponseWriter, r *http.Request) {
		w.Write(archive)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"tag_name": "v9.9.9", "assets": [
			{"name": "flutter-skill-assets.tar.gz", "browser_download_url": "http://%s/flutter-skill-assets.tar.gz"}
		]}`, r.Host)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := release.New("1.4.0",
		release.WithAPIBase(srv.URL),
		release.WithHTTPClient(srv.Client()))

	var warn bytes.Buffer
	src, _, err := resolveSource(client, false, &warn)
	var verr *manifest.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got err=%v src=%v", err, src)
	}
	// An invalid downloaded bundle never falls back to the bundled copy.
	if strings.Contains(warn.String(), "bundled assets") {
		t.Errorf("unexpected fallback warning: %q", warn.String())
	}
}
