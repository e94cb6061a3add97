// Package rule implements the exemption and classification engine for
// string-bearing syntax nodes: an ordered table of context rules that can
// mark a node exempt, followed by content-based terminal rules that decide
// whether to report it.
package rule

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"i18nlint/internal/model"
	"i18nlint/internal/typeinfo"
	"i18nlint/internal/whitelist"
)

// String-bearing node kinds in the javascript/typescript/tsx grammars.
const (
	kindString   = "string"
	kindTemplate = "template_string"
	kindJSXText  = "jsx_text"
)

// Options configures an Engine. Nil collaborators fall back to built-ins.
type Options struct {
	Whitelist        *whitelist.Matcher
	Types            typeinfo.Resolver
	Attrs            AttrResolver
	PassThrough      []string // component names beyond the built-in Trans
	MarkupOnly       bool
	ValidateTemplate bool
}

// Engine evaluates one parsed file at a time. It holds only immutable
// configuration; per-file state lives in a pass.
type Engine struct {
	wl               *whitelist.Matcher
	types            typeinfo.Resolver
	attrs            AttrResolver
	passThrough      map[string]bool
	markupOnly       bool
	validateTemplate bool
}

// New builds an Engine from opts.
func New(opts Options) *Engine {
	wl := opts.Whitelist
	if wl == nil {
		wl, _ = whitelist.Compile(whitelist.Config{})
	}

	var types typeinfo.Resolver = typeinfo.Noop{}
	if opts.Types != nil {
		types = opts.Types
	}

	attrs := opts.Attrs
	if attrs == nil {
		attrs = DefaultAttrResolver()
	}

	passThrough := map[string]bool{"Trans": true}
	for _, name := range opts.PassThrough {
		name = strings.TrimSpace(name)
		if name != "" {
			passThrough[name] = true
		}
	}

	return &Engine{
		wl:               wl,
		types:            types,
		attrs:            attrs,
		passThrough:      passThrough,
		markupOnly:       opts.MarkupOnly,
		validateTemplate: opts.ValidateTemplate,
	}
}

// nodeKey identifies a node within one parsed tree. Byte span plus kind is
// unique per node, so the exemption set never outlives or aliases nodes.
type nodeKey struct {
	start uint32
	end   uint32
	kind  string
}

func keyOf(n *sitter.Node) nodeKey {
	return nodeKey{start: n.StartByte(), end: n.EndByte(), kind: n.Type()}
}

// pass is the per-file state: source bytes, the monotonic exemption set, and
// collected diagnostics. Discarded when the file's traversal ends.
type pass struct {
	engine *Engine
	file   string
	src    []byte
	exempt map[nodeKey]struct{}
	diags  []model.Diagnostic
}

// Lint walks one parsed file and returns its diagnostics in source order.
func (e *Engine) Lint(file string, src []byte, root *sitter.Node) []model.Diagnostic {
	p := &pass{
		engine: e,
		file:   file,
		src:    src,
		exempt: make(map[nodeKey]struct{}),
	}
	p.walk(root)
	return p.diags
}

// walk visits the tree in preorder. String and jsx_text nodes are leaves for
// our purposes; template strings are visited and then descended into only
// through their substitutions, so static fragments are never revisited.
func (p *pass) walk(n *sitter.Node) {
	switch n.Type() {
	case kindString, kindJSXText:
		p.visitLiteral(n)
		return
	case kindTemplate:
		p.visitLiteral(n)
		for i := 0; i < int(n.NamedChildCount()); i++ {
			child := n.NamedChild(i)
			if child.Type() == "template_substitution" {
				p.walk(child)
			}
		}
		return
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		p.walk(n.NamedChild(i))
	}
}

// visitLiteral runs the full decision pipeline for one string-bearing node:
// markup body text goes through the dedicated handler; everything else runs
// the context-rule table and then its terminal rule.
func (p *pass) visitLiteral(n *sitter.Node) {
	if p.isMarkupBody(n) {
		p.handleMarkupText(n)
		return
	}

	for _, rule := range contextRules {
		if rule.exempts(p, n) {
			p.markExempt(n)
			break
		}
	}

	if p.engine.markupOnly && p.attributeFor(n) == nil {
		return
	}

	switch n.Type() {
	case kindTemplate:
		if p.engine.validateTemplate {
			p.terminalTemplate(n)
		}
	case kindString:
		p.terminalString(n)
	}
}

func (p *pass) markExempt(n *sitter.Node) {
	p.exempt[keyOf(n)] = struct{}{}
}

func (p *pass) isExempt(n *sitter.Node) bool {
	_, ok := p.exempt[keyOf(n)]
	return ok
}

func (p *pass) report(n *sitter.Node, text string) {
	start := n.StartPoint()
	end := n.EndPoint()
	p.diags = append(p.diags, model.Diagnostic{
		File:      p.file,
		StartLine: int(start.Row) + 1,
		StartCol:  int(start.Column) + 1,
		EndLine:   int(end.Row) + 1,
		EndCol:    int(end.Column) + 1,
		Kind:      n.Type(),
		Text:      compactText(text),
		Message:   model.Message,
	})
}

// literalText extracts the textual value of a string-bearing node. Plain
// strings and templates concatenate their static fragments, so quotes,
// backticks, and interpolated expressions never count as content.
func (p *pass) literalText(n *sitter.Node) string {
	switch n.Type() {
	case kindJSXText:
		return n.Content(p.src)
	case kindString, kindTemplate:
		var b strings.Builder
		for i := 0; i < int(n.NamedChildCount()); i++ {
			child := n.NamedChild(i)
			switch child.Type() {
			case "string_fragment", "escape_sequence":
				b.WriteString(child.Content(p.src))
			}
		}
		return b.String()
	}
	return n.Content(p.src)
}

func compactText(text string) string {
	trimmed := strings.Join(strings.Fields(strings.TrimSpace(text)), " ")
	const maxLen = 120
	if len(trimmed) <= maxLen {
		return trimmed
	}
	return trimmed[:maxLen] + "..."
}
