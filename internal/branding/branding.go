// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into
// the binary with //go:embed, so a fork only needs to edit the YAML and
// rebuild.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	SharedDir   string `yaml:"shared_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	GitHubRepo  string `yaml:"github_repo"`
	AssetName   string `yaml:"asset_name"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "flutter-skill",
			DisplayName: "Flutter Pro Max",
			Description: "Flutter knowledge base installer for AI coding assistants",
			HomeDir:     ".flutter-skill",
			SharedDir:   ".flutter-skill",
			EnvPrefix:   "FLUTTER_SKILL",
			GoModule:    "github.com/btLong402/flutter-skill",
			GitHubRepo:  "btLong402/flutter-skill",
			AssetName:   "flutter-skill-assets.tar.gz",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "flutter-skill").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".flutter-skill").
func HomeDir() string { load(); return defaults.HomeDir }

// SharedDir returns the project-relative shared asset directory used by
// reference-mode installs.
func SharedDir() string { load(); return defaults.SharedDir }

// EnvPrefix returns the environment variable prefix (e.g., "FLUTTER_SKILL").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GitHubRepo returns the "owner/repo" string hosting the asset releases.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// AssetName returns the release asset file name for the knowledge bundle.
func AssetName() string { load(); return defaults.AssetName }

// EnvVar returns a fully qualified env var name,
// e.g., EnvVar("MIRROR") -> "FLUTTER_SKILL_MIRROR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
