package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/btLong402/flutter-skill/internal/platforms"
)

func validParams() Params {
	return Params{
		Title:       "Flutter Pro Max",
		Description: "Curated Flutter knowledge base.",
		ScriptPath:  ".flutter-skill/scripts/search.py",
	}
}

func TestRenderAllVariants(t *testing.T) {
	for _, variant := range []platforms.Variant{
		platforms.VariantFull, platforms.VariantCompact, platforms.VariantMini,
	} {
		out, err := Render(variant, validParams())
		if err != nil {
			t.Fatalf("Render(%s): %v", variant, err)
		}
		if !strings.Contains(out, "Flutter Pro Max") {
			t.Errorf("%s: title not substituted", variant)
		}
		if !strings.Contains(out, ".flutter-skill/scripts/search.py") {
			t.Errorf("%s: script path not substituted", variant)
		}
		if strings.Contains(out, "{{") {
			t.Errorf("%s: unexpanded placeholder in output:\n%s", variant, out)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	a, err := Render(platforms.VariantFull, validParams())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Render(platforms.VariantFull, validParams())
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("identical arguments produced different output")
	}
}

func TestRenderMissingPlaceholder(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"title", func(p *Params) { p.Title = "" }},
		{"description", func(p *Params) { p.Description = "" }},
		{"scriptPath", func(p *Params) { p.ScriptPath = "" }},
	}

	for _, tt := range tests {
		params := validParams()
		tt.mutate(&params)

		_, err := Render(platforms.VariantCompact, params)
		var missing *MissingPlaceholderError
		if !errors.As(err, &missing) {
			t.Fatalf("%s: expected MissingPlaceholderError, got %v", tt.name, err)
		}
		if missing.Name != tt.name {
			t.Errorf("expected placeholder %q in error, got %q", tt.name, missing.Name)
		}
	}
}

func TestRenderQuickReferenceOptional(t *testing.T) {
	params := validParams()
	without, err := Render(platforms.VariantFull, params)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(without, "Quick reference") {
		t.Error("quick reference section should be absent when not supplied")
	}

	params.QuickReference = "ListView.builder for long lists."
	with, err := Render(platforms.VariantFull, params)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(with, "ListView.builder for long lists.") {
		t.Error("quick reference block missing from output")
	}
}

func TestVariantsAreDistinctBodies(t *testing.T) {
	full, _ := Render(platforms.VariantFull, validParams())
	compact, _ := Render(platforms.VariantCompact, validParams())
	mini, _ := Render(platforms.VariantMini, validParams())

	if full == compact || compact == mini || full == mini {
		t.Error("variant bodies should differ")
	}
	if !(len(full) > len(compact) && len(compact) > len(mini)) {
		t.Errorf("expected full > compact > mini, got %d/%d/%d",
			len(full), len(compact), len(mini))
	}
}

func TestRenderUnknownVariant(t *testing.T) {
	if _, err := Render(platforms.Variant("huge"), validParams()); err == nil {
		t.Error("expected error for unknown variant")
	}
}
