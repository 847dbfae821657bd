package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/btLong402/flutter-skill/internal/manifest"
)

// ErrNotFound is returned when a requested asset path does not exist.
var ErrNotFound = errors.New("asset not found")

// Source supplies raw asset bytes for the installer. Implementations are
// read-only; the installer only ever asks "give me bytes for path P" and
// "which paths exist under prefix Q".
type Source interface {
	// Open returns the bytes for a bundle-relative path like
	// "data/widgets.csv". A missing path yields ErrNotFound.
	Open(path string) ([]byte, error)
	// List returns all file paths under prefix, sorted. An empty prefix
	// lists the whole bundle.
	List(prefix string) ([]string, error)
	// Version is the bundle version this source serves.
	Version() string
}

// fsSource adapts any fs.FS plus a parsed manifest into a Source.
type fsSource struct {
	fsys    fs.FS
	version string
}

func (s *fsSource) Open(path string) ([]byte, error) {
	data, err := fs.ReadFile(s.fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading asset %s: %w", path, err)
	}
	return data, nil
}

func (s *fsSource) List(prefix string) ([]string, error) {
	var paths []string
	err := fs.WalkDir(s.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if prefix == "" || p == prefix || strings.HasPrefix(p, prefix+"/") {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing assets under %q: %w", prefix, err)
	}
	sort.Strings(paths)
	return paths, nil
}

func (s *fsSource) Version() string {
	return s.version
}

// newFSSource validates the manifest.json inside fsys and wraps it.
func newFSSource(fsys fs.FS) (Source, error) {
	data, err := fs.ReadFile(fsys, "manifest.json")
	if err != nil {
		return nil, fmt.Errorf("bundle has no manifest.json: %w", err)
	}
	m, err := manifest.Parse(data)
	if err != nil {
		return nil, err
	}
	for _, f := range m.Files {
		if _, err := fs.Stat(fsys, f); err != nil {
			return nil, fmt.Errorf("bundle is missing %s listed in its manifest", f)
		}
	}
	return &fsSource{fsys: fsys, version: m.Version}, nil
}

// FromDir builds a Source from an extracted bundle directory, validating
// its manifest first.
func FromDir(root string) (Source, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("bundle directory %s: %w", root, err)
	}
	return newFSSource(os.DirFS(root))
}
