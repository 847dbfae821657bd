package assets

import (
	"embed"
	"io/fs"
)

//go:embed bundle
var bundleFS embed.FS

// Bundled returns the asset source baked into the binary. It is the
// offline fallback when the remote release feed is unreachable.
func Bundled() (Source, error) {
	sub, err := fs.Sub(bundleFS, "bundle")
	if err != nil {
		return nil, err
	}
	return newFSSource(sub)
}
