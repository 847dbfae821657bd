package render

import (
	"bytes"
	"embed"
	"fmt"
	"sync"
	"text/template"

	"github.com/btLong402/flutter-skill/internal/platforms"
)

//go:embed templates/*.md.tmpl
var templateFS embed.FS

// Params holds the substitution values for a template body.
// Title, Description, and ScriptPath are required by every variant;
// QuickReference is optional and may be empty.
type Params struct {
	Title          string
	Description    string
	ScriptPath     string
	QuickReference string
}

// MissingPlaceholderError reports a required placeholder with no supplied
// value. This signals a registry/template inconsistency and is fatal.
type MissingPlaceholderError struct {
	Name string
}

func (e *MissingPlaceholderError) Error() string {
	return fmt.Sprintf("missing template placeholder %q", e.Name)
}

// variantFiles maps each variant to its embedded body. The bodies are
// distinct files sized to different context budgets; a variant is never
// produced by trimming another at render time.
var variantFiles = map[platforms.Variant]string{
	platforms.VariantFull:    "templates/skill_full.md.tmpl",
	platforms.VariantCompact: "templates/skill_compact.md.tmpl",
	platforms.VariantMini:    "templates/skill_mini.md.tmpl",
}

var (
	parseOnce sync.Once
	parsed    map[platforms.Variant]*template.Template
	parseErr  error
)

func load() (map[platforms.Variant]*template.Template, error) {
	parseOnce.Do(func() {
		parsed = make(map[platforms.Variant]*template.Template, len(variantFiles))
		for variant, file := range variantFiles {
			body, err := templateFS.ReadFile(file)
			if err != nil {
				parseErr = fmt.Errorf("reading template %s: %w", file, err)
				return
			}
			tmpl, err := template.New(file).Option("missingkey=error").Parse(string(body))
			if err != nil {
				parseErr = fmt.Errorf("parsing template %s: %w", file, err)
				return
			}
			parsed[variant] = tmpl
		}
	})
	return parsed, parseErr
}

// Render fills the template body for variant with params. Output is
// deterministic: identical arguments yield byte-identical text, which is
// what makes reinstall detection possible.
func Render(variant platforms.Variant, params Params) (string, error) {
	if params.Title == "" {
		return "", &MissingPlaceholderError{Name: "title"}
	}
	if params.Description == "" {
		return "", &MissingPlaceholderError{Name: "description"}
	}
	if params.ScriptPath == "" {
		return "", &MissingPlaceholderError{Name: "scriptPath"}
	}

	templates, err := load()
	if err != nil {
		return "", err
	}
	tmpl, ok := templates[variant]
	if !ok {
		return "", fmt.Errorf("no template body for variant %q", variant)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params); err != nil {
		return "", fmt.Errorf("executing %s template: %w", variant, err)
	}
	return buf.String(), nil
}
