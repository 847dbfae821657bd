package platforms

import (
	"errors"
	"fmt"
)

// ErrUnknownPlatform is returned when a platform id is not in the registry.
var ErrUnknownPlatform = errors.New("unknown platform")

// InstallMode selects how a platform receives the knowledge base.
type InstallMode string

const (
	// ModeFull copies the complete data/scripts tree into the platform's
	// own directory, making it self-contained.
	ModeFull InstallMode = "full"
	// ModeReference installs a thin pointer file; the bulk content lives
	// once in the shared project folder.
	ModeReference InstallMode = "reference"
)

// Variant selects which pre-written template body a platform gets.
// The three bodies are sized to fit different context budgets and are
// distinct files, never derived from each other at render time.
type Variant string

const (
	VariantFull    Variant = "full"
	VariantCompact Variant = "compact"
	VariantMini    Variant = "mini"
)

// Profile describes one supported assistant: where its files go and
// which template body it receives.
type Profile struct {
	ID               string
	DisplayName      string
	TargetRoot       string // relative to the project root, never escapes it
	FileName         string // rendered instructions file inside TargetRoot
	InstallMode      InstallMode
	TemplateVariant  Variant
	UsesSharedFolder bool
}

// profiles is the registry, in display order. Adding a platform is a row
// here, not a code change elsewhere: the planner consumes InstallMode and
// TemplateVariant generically.
var profiles = []Profile{
	{
		ID:              "claude",
		DisplayName:     "Claude Code",
		TargetRoot:      ".claude/skills/flutter-pro-max",
		FileName:        "SKILL.md",
		InstallMode:     ModeFull,
		TemplateVariant: VariantFull,
	},
	{
		ID:              "qoder",
		DisplayName:     "Qoder",
		TargetRoot:      ".qoder/rules/flutter-pro-max",
		FileName:        "flutter-pro-max.md",
		InstallMode:     ModeFull,
		TemplateVariant: VariantFull,
	},
	{
		ID:               "cursor",
		DisplayName:      "Cursor",
		TargetRoot:       ".cursor/rules",
		FileName:         "flutter-pro-max.mdc",
		InstallMode:      ModeReference,
		TemplateVariant:  VariantCompact,
		UsesSharedFolder: true,
	},
	{
		ID:               "windsurf",
		DisplayName:      "Windsurf",
		TargetRoot:       ".windsurf/rules",
		FileName:         "flutter-pro-max.md",
		InstallMode:      ModeReference,
		TemplateVariant:  VariantCompact,
		UsesSharedFolder: true,
	},
	{
		ID:               "copilot",
		DisplayName:      "GitHub Copilot",
		TargetRoot:       ".github/instructions",
		FileName:         "flutter-pro-max.instructions.md",
		InstallMode:      ModeReference,
		TemplateVariant:  VariantCompact,
		UsesSharedFolder: true,
	},
	{
		ID:               "cline",
		DisplayName:      "Cline",
		TargetRoot:       ".clinerules",
		FileName:         "flutter-pro-max.md",
		InstallMode:      ModeReference,
		TemplateVariant:  VariantCompact,
		UsesSharedFolder: true,
	},
	{
		ID:               "roo",
		DisplayName:      "Roo Code",
		TargetRoot:       ".roo/rules",
		FileName:         "flutter-pro-max.md",
		InstallMode:      ModeReference,
		TemplateVariant:  VariantCompact,
		UsesSharedFolder: true,
	},
	{
		ID:               "gemini",
		DisplayName:      "Gemini CLI",
		TargetRoot:       ".gemini",
		FileName:         "flutter-pro-max.md",
		InstallMode:      ModeReference,
		TemplateVariant:  VariantMini,
		UsesSharedFolder: true,
	},
	{
		ID:               "codex",
		DisplayName:      "Codex CLI",
		TargetRoot:       ".codex",
		FileName:         "flutter-pro-max.md",
		InstallMode:      ModeReference,
		TemplateVariant:  VariantMini,
		UsesSharedFolder: true,
	},
	{
		ID:               "trae",
		DisplayName:      "Trae",
		TargetRoot:       ".trae/rules",
		FileName:         "flutter-pro-max.md",
		InstallMode:      ModeReference,
		TemplateVariant:  VariantMini,
		UsesSharedFolder: true,
	},
}

// All is the wildcard id that expands to every registered profile.
const All = "all"

// ResolveProfile looks up a profile by id.
func ResolveProfile(id string) (Profile, error) {
	for _, p := range profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%w: %q", ErrUnknownPlatform, id)
}

// ListProfiles returns all registered profiles in display order.
// The returned slice is a copy; the registry itself is immutable.
func ListProfiles() []Profile {
	out := make([]Profile, len(profiles))
	copy(out, profiles)
	return out
}
