package install

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Execute commits a plan to disk under root. Destinations that already
// exist are skipped unless the action allows overwrite. The first I/O
// fault aborts the remaining plan with a *WriteError; earlier writes stay
// on disk (no rollback) and the partial Result is returned alongside the
// error for reporting.
func Execute(root string, plan *Plan) (*Result, error) {
	result := &Result{}
	seenTop := make(map[string]bool)

	record := func(dest string) {
		top := topSegment(dest)
		if top != "" && !seenTop[top] {
			seenTop[top] = true
			result.AffectedTopLevelFolders = append(result.AffectedTopLevelFolders, top)
		}
	}

	for _, action := range plan.Actions {
		rel := action.DestinationPath
		cleaned := filepath.Clean(filepath.FromSlash(rel))
		if filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
			return result, &WriteError{Path: rel, Err: fmt.Errorf("destination escapes the project root")}
		}
		dest := filepath.Join(root, cleaned)

		if _, err := os.Stat(dest); err == nil && !action.AllowOverwrite {
			result.FilesSkipped++
			record(rel)
			continue
		}

		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return result, &WriteError{Path: rel, Err: err}
		}
		if err := os.WriteFile(dest, action.Content, fileMode(rel)); err != nil {
			return result, &WriteError{Path: rel, Err: err}
		}
		result.FilesWritten++
		record(rel)
	}

	return result, nil
}

// fileMode keeps scripts executable; everything else is plain data.
func fileMode(rel string) os.FileMode {
	if strings.HasSuffix(rel, ".py") || strings.HasSuffix(rel, ".sh") {
		return 0755
	}
	return 0644
}

// topSegment returns the first path segment of a slash-separated
// relative path.
func topSegment(rel string) string {
	rel = strings.TrimPrefix(rel, "./")
	if i := strings.IndexByte(rel, '/'); i >= 0 {
		return rel[:i]
	}
	return rel
}
