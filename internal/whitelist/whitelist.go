// Package whitelist compiles configured allow-lists (content patterns, callee
// names, markup attribute names) into the lookup structures the rule engine
// queries.
package whitelist

import (
	"fmt"
	"regexp"
	"strings"
)

// noLetters is the built-in first pattern: any string without a Latin letter
// (numbers, punctuation, symbols) is always allowed.
var noLetters = regexp.MustCompile(`^[^A-Za-z]*$`)

// Built-in callee allow-list: DOM/event primitives, common store dispatchers,
// standard string methods, the module loader, and the translation alias.
var defaultSimpleCallees = []string{
	"addEventListener",
	"removeEventListener",
	"postMessage",
	"getElementById",
	"querySelector",
	"querySelectorAll",
	"dispatch",
	"commit",
	"includes",
	"indexOf",
	"endsWith",
	"startsWith",
	"require",
	"t",
}

var defaultComplexCallees = []string{
	"i18n.t",
	"i18next.t",
}

// Built-in presentation attributes that never carry prose.
var defaultAttributes = []string{
	"className",
	"styleName",
	"type",
	"id",
	"width",
	"height",
}

// Config carries the user-supplied additions to the built-in allow-lists.
// It is assumed validated; only pattern compilation can fail here.
type Config struct {
	Patterns   []string // regex sources matched against trimmed literal text
	Functions  []string // callee names; dot-qualified means object.method form
	Attributes []string // markup attribute names
}

// Matcher answers allow-list membership queries. Compiled once per rule
// invocation and immutable afterward.
type Matcher struct {
	patterns      []*regexp.Regexp
	calleeSimple  map[string]bool
	calleeComplex map[string]bool
	attributes    map[string]bool
}

// Compile builds a Matcher from built-in defaults extended by cfg, keeping
// user patterns in configured order after the built-in no-letters pattern.
func Compile(cfg Config) (*Matcher, error) {
	m := &Matcher{
		patterns:      []*regexp.Regexp{noLetters},
		calleeSimple:  make(map[string]bool, len(defaultSimpleCallees)+len(cfg.Functions)),
		calleeComplex: make(map[string]bool, len(defaultComplexCallees)),
		attributes:    make(map[string]bool, len(defaultAttributes)+len(cfg.Attributes)),
	}

	for _, source := range cfg.Patterns {
		pattern, err := regexp.Compile(source)
		if err != nil {
			return nil, fmt.Errorf("compile ignore pattern %q: %w", source, err)
		}
		m.patterns = append(m.patterns, pattern)
	}

	for _, name := range defaultSimpleCallees {
		m.calleeSimple[name] = true
	}
	for _, name := range defaultComplexCallees {
		m.calleeComplex[name] = true
	}
	for _, name := range cfg.Functions {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if strings.Contains(name, ".") {
			m.calleeComplex[name] = true
		} else {
			m.calleeSimple[name] = true
		}
	}

	for _, name := range defaultAttributes {
		m.attributes[name] = true
	}
	for _, name := range cfg.Attributes {
		name = strings.TrimSpace(name)
		if name != "" {
			m.attributes[name] = true
		}
	}

	return m, nil
}

// MatchText reports whether the trimmed text matches any allow pattern.
func (m *Matcher) MatchText(text string) bool {
	trimmed := strings.TrimSpace(text)
	for _, pattern := range m.patterns {
		if pattern.MatchString(trimmed) {
			return true
		}
	}
	return false
}

// MatchSimpleCallee reports whether a bare callee or member name is allowed.
func (m *Matcher) MatchSimpleCallee(name string) bool {
	return m.calleeSimple[name]
}

// MatchComplexCallee reports whether an object.method qualified name is allowed.
func (m *Matcher) MatchComplexCallee(qualified string) bool {
	return m.calleeComplex[qualified]
}

// MatchAttribute reports whether a markup attribute name is allowed.
func (m *Matcher) MatchAttribute(name string) bool {
	return m.attributes[name]
}
