package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "i18nlint.yml")
	data := []byte(`
ignore:
  - "^Copyright"
ignoreFunction:
  - translate
  - intl.formatMessage
ignoreAttribute:
  - tooltip
ignoreComponent:
  - Localized
markupOnly: true
validateTemplate: false
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if len(opts.Ignore) != 1 || opts.Ignore[0] != "^Copyright" {
		t.Fatalf("unexpected ignore list %+v", opts.Ignore)
	}
	if len(opts.IgnoreFunction) != 2 {
		t.Fatalf("unexpected ignoreFunction list %+v", opts.IgnoreFunction)
	}
	if !opts.MarkupOnly {
		t.Fatal("expected markupOnly to be set")
	}
	if opts.TemplateValidation() {
		t.Fatal("expected template validation to be disabled")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Fatal("expected Load to fail on missing file")
	}
}

func TestMerge(t *testing.T) {
	off := false
	base := Options{Ignore: []string{"a"}, ValidateTemplate: &off}
	merged := base.Merge(Options{Ignore: []string{"b"}, IgnoreAttribute: []string{"tooltip"}, MarkupOnly: true})

	if len(merged.Ignore) != 2 {
		t.Fatalf("expected appended ignore list, got %+v", merged.Ignore)
	}
	if len(merged.IgnoreAttribute) != 1 {
		t.Fatalf("expected appended attribute list, got %+v", merged.IgnoreAttribute)
	}
	if !merged.MarkupOnly {
		t.Fatal("expected markupOnly to survive merge")
	}
	if merged.TemplateValidation() {
		t.Fatal("expected base validateTemplate to survive merge")
	}
}

func TestTemplateValidation_DefaultsOn(t *testing.T) {
	if !(Options{}).TemplateValidation() {
		t.Fatal("expected template validation to default on")
	}
}
