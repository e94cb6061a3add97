package rule

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"i18nlint/internal/content"
)

// contextRule inspects a literal's structural position and reports whether
// that position exempts it. Rules match disjoint patterns, so table order
// does not affect the outcome.
type contextRule struct {
	name    string
	exempts func(p *pass, n *sitter.Node) bool
}

var contextRules = []contextRule{
	{"module-source", exemptModuleSource},
	{"type-level", exemptTypeLevel},
	{"enum-member", exemptEnumMember},
	{"markup-attribute", exemptMarkupAttribute},
	{"member-key", exemptMemberKey},
	{"non-concat-operand", exemptNonConcatOperand},
	{"allowed-callee", exemptAllowedCallee},
	{"switch-case", exemptSwitchCase},
	{"tagged-template", exemptTaggedTemplate},
	{"upper-declaration", exemptUpperDeclaration},
}

// Module specifiers are never prose.
func exemptModuleSource(p *pass, n *sitter.Node) bool {
	parent := n.Parent()
	if parent == nil {
		return false
	}
	switch parent.Type() {
	case "import_statement", "export_statement":
		source := parent.ChildByFieldName("source")
		return source != nil && source.Equal(n)
	}
	return false
}

// Strings used as types (literal types, indexed-access keys) are code.
func exemptTypeLevel(p *pass, n *sitter.Node) bool {
	for ancestor := n.Parent(); ancestor != nil; ancestor = ancestor.Parent() {
		if ancestor.Type() == "literal_type" {
			return true
		}
	}
	return false
}

func exemptEnumMember(p *pass, n *sitter.Node) bool {
	parent := n.Parent()
	if parent == nil {
		return false
	}
	// enum_assignment covers both a string member name and its value;
	// enum_body covers a string member name with no initializer.
	return parent.Type() == "enum_assignment" || parent.Type() == "enum_body"
}

func exemptMarkupAttribute(p *pass, n *sitter.Node) bool {
	attr := p.attributeFor(n)
	if attr == nil {
		return false
	}

	name := attributeName(attr, p.src)
	if name == "" {
		return false
	}
	if p.engine.wl.MatchAttribute(name) {
		return true
	}
	return p.engine.attrs.IsStructuralAttr(elementName(attr, p.src), name)
}

// Built-in keys whose class-member values are identifier-like, not prose.
var classMemberIgnoreKeys = map[string]bool{
	"displayName": true,
}

func exemptMemberKey(p *pass, n *sitter.Node) bool {
	parent := n.Parent()
	if parent == nil {
		return false
	}

	switch parent.Type() {
	case "computed_property_name":
		// Strings inside ["KEY"] positions are keys themselves.
		return true
	case "pair":
		key := parent.ChildByFieldName("key")
		if key == nil {
			return false
		}
		if key.Equal(n) {
			return true
		}
		return content.IsAllUpper(p.keyText(key))
	case "method_definition":
		name := parent.ChildByFieldName("name")
		return name != nil && name.Equal(n)
	case "field_definition", "public_field_definition":
		// The javascript grammar calls the key "property", typescript "name".
		name := parent.ChildByFieldName("name")
		if name == nil {
			name = parent.ChildByFieldName("property")
		}
		if name == nil {
			return false
		}
		if name.Equal(n) {
			return true
		}
		keyName := p.keyText(name)
		return content.IsAllUpper(keyName) || classMemberIgnoreKeys[keyName]
	}
	return false
}

// Operands of comparisons and other non-concatenation operators are code
// sentinels, not prose.
func exemptNonConcatOperand(p *pass, n *sitter.Node) bool {
	parent := n.Parent()
	if parent == nil || parent.Type() != "binary_expression" {
		return false
	}
	operator := parent.ChildByFieldName("operator")
	return operator == nil || operator.Content(p.src) != "+"
}

func exemptAllowedCallee(p *pass, n *sitter.Node) bool {
	args := n.Parent()
	if args == nil || args.Type() != "arguments" {
		return false
	}
	call := args.Parent()
	if call == nil {
		return false
	}

	var callee *sitter.Node
	switch call.Type() {
	case "call_expression":
		callee = call.ChildByFieldName("function")
	case "new_expression":
		callee = call.ChildByFieldName("constructor")
	default:
		return false
	}
	if callee == nil {
		return false
	}

	switch callee.Type() {
	case "import":
		// Dynamic import() takes a module specifier.
		return true
	case "identifier":
		return p.engine.wl.MatchSimpleCallee(callee.Content(p.src))
	case "member_expression":
		property := callee.ChildByFieldName("property")
		if property == nil {
			return false
		}
		propertyName := property.Content(p.src)
		if p.engine.wl.MatchSimpleCallee(propertyName) {
			return true
		}
		object := callee.ChildByFieldName("object")
		if object != nil && object.Type() == "identifier" {
			qualified := object.Content(p.src) + "." + propertyName
			return p.engine.wl.MatchComplexCallee(qualified)
		}
	}
	return false
}

func exemptSwitchCase(p *pass, n *sitter.Node) bool {
	parent := n.Parent()
	return parent != nil && parent.Type() == "switch_case"
}

// Tagged templates are DSL literals: the quasi itself is exempt, and so are
// strings appearing inside its interpolation segments.
func exemptTaggedTemplate(p *pass, n *sitter.Node) bool {
	if n.Type() == kindTemplate {
		parent := n.Parent()
		return parent != nil && parent.Type() == "call_expression"
	}

	for ancestor := n.Parent(); ancestor != nil; ancestor = ancestor.Parent() {
		if ancestor.Type() != "template_substitution" {
			continue
		}
		template := ancestor.Parent()
		if template == nil || template.Type() != kindTemplate {
			return false
		}
		grand := template.Parent()
		return grand != nil && grand.Type() == "call_expression"
	}
	return false
}

// Initializers bound to constant-style (all-upper) identifiers are exempt.
func exemptUpperDeclaration(p *pass, n *sitter.Node) bool {
	parent := n.Parent()
	if parent == nil || parent.Type() != "variable_declarator" {
		return false
	}
	value := parent.ChildByFieldName("value")
	if value == nil || !value.Equal(n) {
		return false
	}
	name := parent.ChildByFieldName("name")
	return name != nil && content.IsAllUpper(name.Content(p.src))
}

// attributeFor resolves the jsx_attribute a literal belongs to, whether the
// value is written directly or wrapped in an expression container.
func (p *pass) attributeFor(n *sitter.Node) *sitter.Node {
	parent := n.Parent()
	if parent == nil {
		return nil
	}
	if parent.Type() == "jsx_attribute" {
		return parent
	}
	if parent.Type() == "jsx_expression" {
		grand := parent.Parent()
		if grand != nil && grand.Type() == "jsx_attribute" {
			return grand
		}
	}
	return nil
}

func attributeName(attr *sitter.Node, src []byte) string {
	name := attr.NamedChild(0)
	if name == nil {
		return ""
	}
	return name.Content(src)
}

// elementName returns the tag of the element owning an attribute.
func elementName(attr *sitter.Node, src []byte) string {
	opening := attr.Parent()
	if opening == nil {
		return ""
	}
	switch opening.Type() {
	case "jsx_opening_element", "jsx_self_closing_element":
		name := opening.ChildByFieldName("name")
		if name != nil {
			return name.Content(src)
		}
	}
	return ""
}

// keyText normalizes a member key for the all-upper check: identifiers as
// written, string and template keys by their static content.
func (p *pass) keyText(key *sitter.Node) string {
	switch key.Type() {
	case kindString, kindTemplate:
		return strings.TrimSpace(p.literalText(key))
	}
	return key.Content(p.src)
}
