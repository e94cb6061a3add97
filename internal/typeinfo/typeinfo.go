// Package typeinfo declares the optional semantic-type collaborator the rule
// engine consults before reporting a plain string literal.
package typeinfo

import sitter "github.com/smacker/go-tree-sitter"

// Resolver answers whether a literal's contextual type is a named string
// literal type (e.g. the literal is assigned to a position annotated with its
// own literal-type alias). The engine treats a true answer as an exemption.
//
// Tree-sitter carries no type information, so the default resolver answers
// no for every node; a host with a real type checker can inject its own.
type Resolver interface {
	IsNamedLiteralStringType(node *sitter.Node, src []byte) bool
}

// Noop is the degraded-mode resolver used when no type checker is available.
// Its absence of answers must not change any other exemption decision.
type Noop struct{}

// IsNamedLiteralStringType always reports false.
func (Noop) IsNamedLiteralStringType(*sitter.Node, []byte) bool { return false }
