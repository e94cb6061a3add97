package rule

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"i18nlint/internal/content"
)

// terminalString is the final verdict for a plain string literal: report it
// unless context exempted it, its content is not prose-shaped, or the
// optional type resolver recognizes a named literal string type.
func (p *pass) terminalString(n *sitter.Node) {
	if p.isExempt(n) {
		return
	}

	text := p.literalText(n)
	if content.IsTrivial(text) {
		return
	}

	trimmed := strings.TrimSpace(text)
	if content.IsAllUpper(trimmed) {
		return
	}
	if p.engine.wl.MatchText(trimmed) || !content.LooksLikeHumanText(trimmed) {
		return
	}

	if p.engine.types.IsNamedLiteralStringType(n, p.src) {
		p.markExempt(n)
		return
	}
	p.report(n, trimmed)
}

// terminalTemplate is the final verdict for a template literal, judged by
// the concatenation of its static segments only.
func (p *pass) terminalTemplate(n *sitter.Node) {
	if p.isExempt(n) {
		return
	}

	trimmed := strings.TrimSpace(p.literalText(n))
	if content.IsAllUpper(trimmed) {
		return
	}
	if p.engine.wl.MatchText(trimmed) || !content.LooksLikeHumanText(trimmed) {
		return
	}
	p.report(n, trimmed)
}
