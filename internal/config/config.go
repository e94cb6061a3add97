// Package config loads and merges linter options from YAML files and flags.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options mirrors the rule's configuration surface. Lists extend the
// built-in allow-lists; they never replace them.
type Options struct {
	// Ignore holds extra regex sources; literals whose trimmed text matches
	// any of them are never reported.
	Ignore []string `yaml:"ignore"`
	// IgnoreFunction holds extra callee names. A name containing a dot is
	// matched as object.method, otherwise as a bare name.
	IgnoreFunction []string `yaml:"ignoreFunction"`
	// IgnoreAttribute holds extra markup attribute names whose values are
	// never inspected.
	IgnoreAttribute []string `yaml:"ignoreAttribute"`
	// IgnoreComponent holds extra pass-through component names whose textual
	// children are always exempt, in addition to the built-in Trans.
	IgnoreComponent []string `yaml:"ignoreComponent"`
	// MarkupOnly restricts reporting to markup text and attribute values.
	MarkupOnly bool `yaml:"markupOnly"`
	// ValidateTemplate gates checking of template literals.
	ValidateTemplate *bool `yaml:"validateTemplate"`
}

// Load reads options from a YAML file.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read config: %w", err)
	}

	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return opts, nil
}

// Merge overlays extra onto o: lists append, booleans OR, and an explicit
// ValidateTemplate in extra wins.
func (o Options) Merge(extra Options) Options {
	merged := o
	merged.Ignore = append(merged.Ignore, extra.Ignore...)
	merged.IgnoreFunction = append(merged.IgnoreFunction, extra.IgnoreFunction...)
	merged.IgnoreAttribute = append(merged.IgnoreAttribute, extra.IgnoreAttribute...)
	merged.IgnoreComponent = append(merged.IgnoreComponent, extra.IgnoreComponent...)
	merged.MarkupOnly = merged.MarkupOnly || extra.MarkupOnly
	if extra.ValidateTemplate != nil {
		merged.ValidateTemplate = extra.ValidateTemplate
	}
	return merged
}

// TemplateValidation resolves the ValidateTemplate default: template
// literals are checked unless explicitly disabled.
func (o Options) TemplateValidation() bool {
	if o.ValidateTemplate == nil {
		return true
	}
	return *o.ValidateTemplate
}
