package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/btLong402/flutter-skill/internal/config"
	"github.com/btLong402/flutter-skill/internal/install"
	"github.com/btLong402/flutter-skill/internal/release"
	"github.com/spf13/cobra"
)

var updateAI string

func init() {
	updateCmd.Flags().StringVar(&updateAI, "ai", "", "Platform id to refresh (defaults to every recorded platform)")
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Refresh installed platforms from the latest knowledge bundle",
	Long: `Re-runs the install for already-configured platforms against the latest
published bundle. Overwrite is implied: update exists to replace stale files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := []string{updateAI}
		if updateAI == "" {
			ids = config.InstalledPlatforms()
			if len(ids) == 0 {
				return fmt.Errorf("no platforms recorded; run `%s init --ai <platform>` first", rootCmd.Use)
			}
		}

		client := releaseClient()
		fmt.Fprintln(cmd.ErrOrStderr(), "Checking for the latest knowledge bundle...")
		rel, err := client.Latest()
		if err != nil {
			return fmt.Errorf("checking release feed: %w", err)
		}

		source, cleanup, err := fetchBundle(rel)
		if err != nil {
			return fmt.Errorf("fetching bundle %s: %w", rel.Version, err)
		}
		defer cleanup()

		plan, err := install.BuildPlanForIDs(source, ids, install.Options{Force: true})
		if err != nil {
			return err
		}

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		result, err := install.Execute(cwd, plan)
		if err != nil {
			return err
		}

		printResult(cmd.OutOrStdout(), result, source.Version())

		// Mark the cache current so the banner stays quiet.
		_ = release.SaveCache(config.Dir(), &release.VersionCache{
			LatestVersion:   rel.Version,
			CurrentVersion:  source.Version(),
			CheckedAt:       time.Now(),
			UpdateAvailable: false,
		})
		return nil
	},
}
