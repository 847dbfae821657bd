package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/btLong402/flutter-skill/internal/install"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
	folderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// printResult prints the user-facing install summary.
func printResult(w io.Writer, result *install.Result, bundleVer string) {
	fmt.Fprintln(w)
	if result.FilesWritten > 0 {
		fmt.Fprintf(w, "%s %d files written", okStyle.Render("✓"), result.FilesWritten)
	} else {
		fmt.Fprintf(w, "%s nothing to write", okStyle.Render("✓"))
	}
	if result.FilesSkipped > 0 {
		fmt.Fprintf(w, " %s", dimStyle.Render(fmt.Sprintf("(%d existing files skipped, use --force to overwrite)", result.FilesSkipped)))
	}
	fmt.Fprintln(w)

	if len(result.AffectedTopLevelFolders) > 0 {
		folders := make([]string, len(result.AffectedTopLevelFolders))
		for i, f := range result.AffectedTopLevelFolders {
			folders[i] = folderStyle.Render(f + "/")
		}
		fmt.Fprintf(w, "  Installed folders: %s\n", strings.Join(folders, ", "))
	}
	fmt.Fprintf(w, "  Knowledge base version: %s\n", bundleVer)
}
