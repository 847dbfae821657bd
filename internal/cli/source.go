package cli

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/btLong402/flutter-skill/internal/assets"
	"github.com/btLong402/flutter-skill/internal/branding"
	"github.com/btLong402/flutter-skill/internal/config"
	"github.com/btLong402/flutter-skill/internal/manifest"
	"github.com/btLong402/flutter-skill/internal/release"
)

// releaseClient builds a release client honoring the configured mirror.
func releaseClient() *release.Client {
	config.Load()
	mirror := config.Get("mirror")
	if envMirror := os.Getenv(branding.EnvVar("MIRROR")); envMirror != "" {
		mirror = envMirror
	}

	var opts []release.Option
	if mirror != "" {
		opts = append(opts, release.WithMirror(mirror))
	}
	return release.New(bundleVersion(), opts...)
}

// resolveSource picks the asset source for an install. Offline goes
// straight to the bundled copy. Otherwise the latest remote bundle is
// fetched; network faults fall back to the bundled copy with a warning,
// while a bundle that downloads but fails manifest validation is fatal.
func resolveSource(client *release.Client, offline bool, warn io.Writer) (assets.Source, func(), error) {
	noop := func() {}

	if offline {
		src, err := assets.Bundled()
		return src, noop, err
	}

	rel, err := client.Latest()
	if err != nil {
		fmt.Fprintf(warn, "Warning: release feed unreachable (%v); using bundled assets %s\n",
			err, bundleVersion())
		src, berr := assets.Bundled()
		return src, noop, berr
	}

	src, cleanup, err := fetchBundle(rel)
	if err != nil {
		var verr *manifest.ValidationError
		if errors.As(err, &verr) {
			return nil, noop, err
		}
		fmt.Fprintf(warn, "Warning: bundle download failed (%v); using bundled assets %s\n",
			err, bundleVersion())
		bsrc, berr := assets.Bundled()
		return bsrc, noop, berr
	}
	return src, cleanup, nil
}

// fetchBundle downloads and extracts a release bundle into a temp dir.
// The returned cleanup removes the temp dir.
func fetchBundle(rel *release.Release) (assets.Source, func(), error) {
	tmpDir, err := os.MkdirTemp("", branding.CLIName()+"-bundle-*")
	if err != nil {
		return nil, func() {}, fmt.Errorf("creating temp directory: %w", err)
	}
	cleanup := func() { os.RemoveAll(tmpDir) }

	src, err := assets.FetchRemote(http.DefaultClient, rel, tmpDir)
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}
	return src, cleanup, nil
}
