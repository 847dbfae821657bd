package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/btLong402/flutter-skill/internal/branding"
	"github.com/btLong402/flutter-skill/internal/config"
	"github.com/btLong402/flutter-skill/internal/install"
	"github.com/btLong402/flutter-skill/internal/platforms"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	initAI      string
	initForce   bool
	initOffline bool
	initLegacy  bool
)

func init() {
	initCmd.Flags().StringVar(&initAI, "ai", "", "Platform id to install for (or \"all\"); prompts when omitted")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing files")
	initCmd.Flags().BoolVar(&initOffline, "offline", false, "Use the bundled assets, skip the release feed")
	initCmd.Flags().BoolVar(&initLegacy, "legacy", false, "Install only the monolithic instructions file; assumes the knowledge tree from an earlier standard install")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Install the knowledge base for an AI coding assistant",
	Long: `Install the ` + branding.DisplayName() + ` knowledge base and instructions into the
current project, laid out for the chosen assistant.

  flutter-skill init --ai claude      # one platform
  flutter-skill init --ai all         # every registered platform
  flutter-skill init                  # pick interactively`,
	RunE: func(cmd *cobra.Command, args []string) error {
		id := initAI
		if id == "" {
			selected, err := selectPlatform()
			if err != nil {
				return fmt.Errorf("selecting platform: %w", err)
			}
			id = selected
		}

		source, cleanup, err := resolveSource(releaseClient(), initOffline, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer cleanup()

		plan, err := install.BuildPlan(source, id, install.Options{
			Force:  initForce,
			Legacy: initLegacy,
		})
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
		recordInstall(cmd.ErrOrStderr(), id)
		return nil
	},
}

// selectPlatform prompts for a platform interactively.
func selectPlatform() (string, error) {
	options := []huh.Option[string]{
		huh.NewOption("All platforms", platforms.All),
	}
	for _, p := range platforms.ListProfiles() {
		label := fmt.Sprintf("%s (%s)", p.DisplayName, p.InstallMode)
		options = append(options, huh.NewOption(label, p.ID))
	}

	var id string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which assistant should receive the knowledge base?").
				Options(options...).
				Value(&id),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", err
	}
	return id, nil
}

// recordInstall remembers the installed platform ids for later `update`.
// Failures are reported but never fail the install itself.
func recordInstall(warn io.Writer, id string) {
	ids := []string{id}
	if id == platforms.All {
		ids = nil
		for _, p := range platforms.ListProfiles() {
			ids = append(ids, p.ID)
		}
	}
	for _, pid := range ids {
		if err := config.RecordInstalledPlatform(pid); err != nil {
			fmt.Fprintf(warn, "Warning: could not record installed platform %s: %v\n", pid, err)
			return
		}
	}
}
