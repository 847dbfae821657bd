package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/btLong402/flutter-skill/internal/platforms"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List supported AI assistant platforms",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), headerStyle.Render("Supported platforms:"))

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "  ID\tNAME\tMODE\tVARIANT\tTARGET")
		for _, p := range platforms.ListProfiles() {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n",
				p.ID, p.DisplayName, p.InstallMode, p.TemplateVariant, p.TargetRoot)
		}
		return w.Flush()
	},
}
