package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionsCmd)
}

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List published knowledge bundle versions",
	RunE: func(cmd *cobra.Command, args []string) error {
		releases, err := releaseClient().List()
		if err != nil {
			return fmt.Errorf("listing releases: %w", err)
		}
		if len(releases) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No published versions found.")
			return nil
		}

		current := bundleVersion()
		fmt.Fprintln(cmd.OutOrStdout(), headerStyle.Render("Available knowledge bundle versions:"))
		for _, rel := range releases {
			line := "  " + rel.Version
			if !rel.Published.IsZero() {
				line += dimStyle.Render("  (" + rel.Published.Format("2006-01-02") + ")")
			}
			if rel.Version == current || rel.Version == "v"+current {
				line += okStyle.Render("  * bundled")
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}
