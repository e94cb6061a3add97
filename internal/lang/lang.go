// Package lang maps source file extensions to tree-sitter grammars and
// parses files for the rule engine.
package lang

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Parser wraps one tree-sitter parser with its language name.
type Parser struct {
	name   string
	parser *sitter.Parser
}

func newParser(name string, language *sitter.Language) *Parser {
	parser := sitter.NewParser()
	parser.SetLanguage(language)
	return &Parser{name: name, parser: parser}
}

// Registry owns one parser per supported language, keyed by extension.
type Registry struct {
	byExtension map[string]*Parser
}

// NewRegistry builds the default registry: javascript for .js/.jsx/.mjs/.cjs,
// typescript for .ts, tsx for .tsx. The JSX-capable grammars parse plain
// sources too, so .jsx shares the javascript parser and .tsx gets its own.
func NewRegistry() *Registry {
	js := newParser("javascript", javascript.GetLanguage())
	ts := newParser("typescript", typescript.GetLanguage())
	tsxParser := newParser("tsx", tsx.GetLanguage())

	return &Registry{
		byExtension: map[string]*Parser{
			".js":  js,
			".jsx": js,
			".mjs": js,
			".cjs": js,
			".ts":  ts,
			".tsx": tsxParser,
		},
	}
}

// ForPath returns the parser for a file path, or nil if the extension is not
// a supported source kind.
func (r *Registry) ForPath(path string) *Parser {
	ext := strings.ToLower(filepath.Ext(path))
	return r.byExtension[ext]
}

// Supported reports whether path has a recognized source extension.
func (r *Registry) Supported(path string) bool {
	return r.ForPath(path) != nil
}

// Language returns the parser's language name.
func (p *Parser) Language() string {
	return p.name
}

// Parse parses src and returns the syntax tree. The caller owns the tree and
// must Close it.
func (p *Parser) Parse(ctx context.Context, src []byte) (*sitter.Tree, error) {
	tree, err := p.parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s source: %w", p.name, err)
	}
	if tree == nil || tree.RootNode() == nil {
		return nil, fmt.Errorf("parse %s source: empty tree", p.name)
	}
	return tree, nil
}
