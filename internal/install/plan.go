package install

import (
	"fmt"
	"path"
	"strings"

	"github.com/btLong402/flutter-skill/internal/assets"
	"github.com/btLong402/flutter-skill/internal/branding"
	"github.com/btLong402/flutter-skill/internal/platforms"
	"github.com/btLong402/flutter-skill/internal/render"
)

// skillDescription is the description substituted into every rendered
// instructions file.
const skillDescription = "Curated Flutter knowledge base: widgets, packages, " +
	"architecture patterns, colors, and typography, searchable with the bundled BM25 script."

// Options tunes plan construction.
type Options struct {
	// Force marks every action as overwrite-allowed.
	Force bool
	// Legacy installs only the monolithic rendered instructions file per
	// platform, skipping the data/scripts tree (the pre-skill layout).
	// The file keeps the standard script paths, so it expects the
	// knowledge tree left behind by an earlier non-legacy install.
	Legacy bool
}

// BuildPlan resolves idOrAll against the platform registry and produces
// the ordered write plan. Shared-asset actions come before per-platform
// actions, and the shared tree is scheduled at most once per invocation
// no matter how many reference-mode platforms are selected.
func BuildPlan(source assets.Source, idOrAll string, opts Options) (*Plan, error) {
	return BuildPlanForIDs(source, []string{idOrAll}, opts)
}

// BuildPlanForIDs builds one plan covering several platform ids (used by
// `update`, which refreshes every recorded platform in a single
// invocation). The wildcard id expands in place; duplicates collapse.
func BuildPlanForIDs(source assets.Source, ids []string, opts Options) (*Plan, error) {
	var selected []platforms.Profile
	seen := make(map[string]bool)
	for _, id := range ids {
		var expanded []platforms.Profile
		if id == platforms.All {
			expanded = platforms.ListProfiles()
		} else {
			p, err := platforms.ResolveProfile(id)
			if err != nil {
				return nil, err
			}
			expanded = []platforms.Profile{p}
		}
		for _, p := range expanded {
			if !seen[p.ID] {
				seen[p.ID] = true
				selected = append(selected, p)
			}
		}
	}
	if len(selected) == 0 {
		return nil, ErrNoProfilesSelected
	}

	assetPaths, err := source.List("")
	if err != nil {
		return nil, fmt.Errorf("listing bundle assets: %w", err)
	}

	plan := &Plan{}
	sharedScheduled := make(map[string]bool)

	// Shared trees first, so reference files can assume the tree exists
	// by the time anything opens them.
	if !opts.Legacy {
		for _, p := range selected {
			if !p.UsesSharedFolder {
				continue
			}
			sharedRoot := branding.SharedDir()
			if sharedScheduled[sharedRoot] {
				continue
			}
			sharedScheduled[sharedRoot] = true
			if err := appendAssetTree(plan, source, assetPaths, sharedRoot, opts.Force); err != nil {
				return nil, err
			}
		}
	}

	for _, p := range selected {
		dest, err := normalizeDest(path.Join(p.TargetRoot, p.FileName))
		if err != nil {
			return nil, err
		}

		content, err := render.Render(p.TemplateVariant, renderParams(p))
		if err != nil {
			return nil, err
		}

		plan.Actions = append(plan.Actions, FileAction{
			SourceKind:      SourceTemplate,
			SourceRef:       string(p.TemplateVariant),
			DestinationPath: dest,
			AllowOverwrite:  opts.Force,
			Content:         []byte(content),
		})

		if p.InstallMode == platforms.ModeFull && !opts.Legacy {
			if err := appendAssetTree(plan, source, assetPaths, p.TargetRoot, opts.Force); err != nil {
				return nil, err
			}
		}
	}

	return plan, nil
}

// renderParams derives the template substitutions for a profile. The
// script path is relative to the project root: inside the platform's own
// tree for full installs, inside the shared folder otherwise.
func renderParams(p platforms.Profile) render.Params {
	scriptRoot := branding.SharedDir()
	if p.InstallMode == platforms.ModeFull {
		scriptRoot = p.TargetRoot
	}
	return render.Params{
		Title:       branding.DisplayName(),
		Description: skillDescription,
		ScriptPath:  path.Join(scriptRoot, "scripts", "search.py"),
	}
}

// appendAssetTree schedules a verbatim copy of every bundle asset under
// destRoot. Content is resolved here, at plan time, so the writer never
// touches the asset source.
func appendAssetTree(plan *Plan, source assets.Source, assetPaths []string, destRoot string, force bool) error {
	for _, assetPath := range assetPaths {
		dest, err := normalizeDest(path.Join(destRoot, assetPath))
		if err != nil {
			return err
		}
		content, err := source.Open(assetPath)
		if err != nil {
			return err
		}
		plan.Actions = append(plan.Actions, FileAction{
			SourceKind:      SourceStaticAsset,
			SourceRef:       assetPath,
			DestinationPath: dest,
			AllowOverwrite:  force,
			Content:         content,
		})
	}
	return nil
}

// normalizeDest cleans a destination path and rejects anything that is
// absolute or escapes the project root.
func normalizeDest(p string) (string, error) {
	cleaned := path.Clean(p)
	if path.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("destination %q escapes the project root", p)
	}
	return cleaned, nil
}
