package install

import (
	"errors"
	"fmt"
)

// ErrNoProfilesSelected is returned when platform selection expands to an
// empty set.
var ErrNoProfilesSelected = errors.New("no platforms selected")

// SourceKind distinguishes rendered template output from verbatim assets.
type SourceKind string

const (
	SourceTemplate    SourceKind = "template"
	SourceStaticAsset SourceKind = "staticAsset"
)

// FileAction is one planned write. Content is materialized at plan time;
// the writer only commits bytes to disk.
type FileAction struct {
	SourceKind      SourceKind
	SourceRef       string // template variant name or bundle-relative asset path
	DestinationPath string // slash-separated, relative to the project root
	AllowOverwrite  bool
	Content         []byte
}

// Plan is the ordered sequence of writes for one invocation. Plans are
// built fresh per invocation and discarded after execution.
type Plan struct {
	Actions []FileAction
}

// Result reports what Execute did. It is consumed for user-facing
// reporting only and never persisted.
type Result struct {
	// AffectedTopLevelFolders lists the first path segment of every
	// written or skipped destination, in order of first appearance.
	AffectedTopLevelFolders []string
	FilesWritten            int
	FilesSkipped            int
}

// WriteError is an I/O fault during plan execution. It aborts the
// remaining plan; earlier writes stay on disk.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
