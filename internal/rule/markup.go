package rule

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"i18nlint/internal/content"
)

// Symbols that are fine as bare markup text: separators, bullets, arrows,
// and non-breaking space in both literal and entity form.
var allowedMarkupSymbols = map[string]bool{
	"-":        true,
	"–":        true,
	"—":        true,
	"|":        true,
	"*":        true,
	"•":        true,
	"·":        true,
	"→":        true,
	"←":        true,
	"…":        true,
	"...":      true,
	" ":   true,
	"&nbsp;":   true,
	"&bull;":   true,
	"&middot;": true,
	"&rarr;":   true,
	"&larr;":   true,
	"&hellip;": true,
}

// isMarkupBody reports whether n is text content of a markup element: a
// jsx_text node, or a string/template directly inside an expression
// container that itself sits in an element or fragment body.
func (p *pass) isMarkupBody(n *sitter.Node) bool {
	parent := n.Parent()
	if parent == nil {
		return false
	}
	switch n.Type() {
	case kindJSXText:
		return true
	case kindString, kindTemplate:
		if parent.Type() != "jsx_expression" {
			return false
		}
		grand := parent.Parent()
		if grand == nil {
			return false
		}
		switch grand.Type() {
		case "jsx_element", "jsx_fragment":
			return true
		}
	}
	return false
}

// handleMarkupText decides markup text in two steps: the node is marked
// exempt first, so no later rule re-inspects it, and reporting is then
// evaluated independently on the trimmed text.
func (p *pass) handleMarkupText(n *sitter.Node) {
	p.markExempt(n)

	text := strings.TrimSpace(p.literalText(n))
	if text == "" {
		return
	}
	if content.IsAllUpper(text) {
		return
	}
	if p.engine.wl.MatchText(text) {
		return
	}
	if p.insidePassThrough(n) {
		return
	}
	if allowedMarkupSymbols[text] {
		return
	}
	p.report(n, text)
}

// insidePassThrough walks the ancestor chain looking for an enclosing
// element whose tag is a designated pass-through component such as Trans.
func (p *pass) insidePassThrough(n *sitter.Node) bool {
	for ancestor := n.Parent(); ancestor != nil; ancestor = ancestor.Parent() {
		switch ancestor.Type() {
		case "jsx_element":
			opening := ancestor.NamedChild(0)
			if opening == nil || opening.Type() != "jsx_opening_element" {
				continue
			}
			name := opening.ChildByFieldName("name")
			if name != nil && p.engine.passThrough[name.Content(p.src)] {
				return true
			}
		case "jsx_self_closing_element":
			name := ancestor.ChildByFieldName("name")
			if name != nil && p.engine.passThrough[name.Content(p.src)] {
				return true
			}
		}
	}
	return false
}

// AttrResolver answers whether an element/attribute pairing is a known
// structural (never-prose) attribute. Injected so hosts with richer DOM
// knowledge can extend the built-in table.
type AttrResolver interface {
	IsStructuralAttr(element, attr string) bool
}

// Attributes that never carry user-facing text on any DOM element.
var structuralAttrs = map[string]bool{
	"href":         true,
	"src":          true,
	"srcSet":       true,
	"rel":          true,
	"target":       true,
	"key":          true,
	"ref":          true,
	"role":         true,
	"name":         true,
	"method":       true,
	"action":       true,
	"htmlFor":      true,
	"tabIndex":     true,
	"autoComplete": true,
	"charSet":      true,
	"crossOrigin":  true,
	"loading":      true,
	"media":        true,
	"sizes":        true,
	"lang":         true,
	"dir":          true,
}

type defaultAttrResolver struct{}

// DefaultAttrResolver returns the built-in structural-attribute table. It
// only recognizes lower-case tags, since capitalized names are components
// whose props may well be prose.
func DefaultAttrResolver() AttrResolver {
	return defaultAttrResolver{}
}

func (defaultAttrResolver) IsStructuralAttr(element, attr string) bool {
	if element == "" || attr == "" {
		return false
	}
	first := element[0]
	if first < 'a' || first > 'z' {
		return false
	}
	if strings.HasPrefix(attr, "data-") {
		return true
	}
	return structuralAttrs[attr]
}
