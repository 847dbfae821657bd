package cli

import (
	"os"

	"github.com/btLong402/flutter-skill/internal/assets"
	"github.com/btLong402/flutter-skill/internal/branding"
	"github.com/btLong402/flutter-skill/internal/config"
	"github.com/btLong402/flutter-skill/internal/release"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` distributes a curated Flutter knowledge base and matching
prompt instructions to AI coding assistants, each in its expected directory layout.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Commands that manage bundle versions themselves skip the banner.
		name := cmd.Name()
		if name == "update" || name == "versions" || name == "init" {
			return
		}

		// Non-blocking banner from the cached version check.
		c := release.New(bundleVersion())
		c.CheckAndPrintBanner(os.Stderr, config.Dir())
	},
}

// bundleVersion reports the version of the knowledge bundle baked into
// this binary, the baseline for update checks.
func bundleVersion() string {
	src, err := assets.Bundled()
	if err != nil {
		return "0.0.0"
	}
	return src.Version()
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
