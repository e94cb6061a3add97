package rule

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	sitter "github.com/smacker/go-tree-sitter"

	"i18nlint/internal/lang"
	"i18nlint/internal/model"
	"i18nlint/internal/whitelist"
)

func mustCompile(t *testing.T, patterns []string) *whitelist.Matcher {
	t.Helper()
	m, err := whitelist.Compile(whitelist.Config{Patterns: patterns})
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	return m
}

func compileFunctions(names []string) (*whitelist.Matcher, error) {
	return whitelist.Compile(whitelist.Config{Functions: names})
}

func mustCompileAttributes(t *testing.T, names []string) *whitelist.Matcher {
	t.Helper()
	m, err := whitelist.Compile(whitelist.Config{Attributes: names})
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	return m
}

var testRegistry = lang.NewRegistry()

func lintSnippet(t *testing.T, filename, source string, opts Options) []model.Diagnostic {
	t.Helper()

	parser := testRegistry.ForPath(filename)
	if parser == nil {
		t.Fatalf("no parser for %s", filename)
	}
	tree, err := parser.Parse(context.Background(), []byte(source))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	defer tree.Close()

	return New(opts).Lint(filename, []byte(source), tree.RootNode())
}

func defaultOptions() Options {
	return Options{ValidateTemplate: true}
}

func expectNone(t *testing.T, filename, source string) {
	t.Helper()
	diags := lintSnippet(t, filename, source, defaultOptions())
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %d: %+v", len(diags), diags)
	}
}

func expectOne(t *testing.T, filename, source, wantText string) {
	t.Helper()
	diags := lintSnippet(t, filename, source, defaultOptions())
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %+v", len(diags), diags)
	}
	if diags[0].Text != wantText {
		t.Fatalf("unexpected diagnostic text %q, want %q", diags[0].Text, wantText)
	}
	if diags[0].Message != model.Message {
		t.Fatalf("unexpected message %q", diags[0].Message)
	}
}

func TestTerminal_TrivialNeverReported(t *testing.T) {
	expectNone(t, "app.js", `const a = "";`)
	expectNone(t, "app.js", `const a = "   ";`)
	expectNone(t, "app.js", "const a = `\t \n`;")
}

func TestTerminal_NoLettersNeverReported(t *testing.T) {
	expectNone(t, "app.js", `const a = "123-456!";`)
	expectNone(t, "app.js", `const a = "=> :: %";`)
}

func TestTerminal_AllUpperNeverReported(t *testing.T) {
	expectNone(t, "app.js", `const a = "HELLO WORLD";`)
	expectNone(t, "app.js", `const a = "STATUS_OK";`)
	expectNone(t, "app.js", "const a = `READY SET GO`;")
}

func TestTerminal_CodeShapedNeverReported(t *testing.T) {
	expectNone(t, "app.js", `const a = "hello";`)
	expectNone(t, "app.js", `const a = "camelCase";`)
	expectNone(t, "app.js", `const a = "snake_case";`)
}

func TestTerminal_ProseReported(t *testing.T) {
	expectOne(t, "app.js", `const a = "Hello world";`, "Hello world")
	expectOne(t, "app.js", `const a = "hello out there";`, "hello out there")
}

func TestTerminal_ConcatOperandReported(t *testing.T) {
	expectOne(t, "app.js", `const a = "Hello " + name;`, "Hello")
}

func TestTemplate_StaticSegmentsReported(t *testing.T) {
	// Scenario E: static segments concatenate to "Order  confirmed".
	expectOne(t, "app.js", "const msg = `Order ${id} confirmed`;", "Order confirmed")
}

func TestTemplate_ValidationDisabled(t *testing.T) {
	diags := lintSnippet(t, "app.js", "const msg = `Order ${id} confirmed`;", Options{ValidateTemplate: false})
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics with template validation off, got %+v", diags)
	}
}

func TestUpperDeclaration_InitializerExempt(t *testing.T) {
	// Scenario C: all-upper bound identifier exempts any initializer content.
	expectNone(t, "app.js", `const GREETING = "Hi there";`)
	expectNone(t, "app.js", "const PROMPT_TEXT = `Enter a ${kind} value`;")
}

func TestConfiguredIgnorePattern(t *testing.T) {
	opts := defaultOptions()
	wl := mustCompile(t, []string{"^Copyright"})
	opts.Whitelist = wl

	diags := lintSnippet(t, "app.js", `const a = "Copyright Acme Corp";`, opts)
	if len(diags) != 0 {
		t.Fatalf("expected ignore pattern to suppress diagnostic, got %+v", diags)
	}
}

type alwaysLiteralType struct{}

func (alwaysLiteralType) IsNamedLiteralStringType(*sitter.Node, []byte) bool { return true }

func TestTypeResolver_LiteralTypeExempts(t *testing.T) {
	opts := defaultOptions()
	opts.Types = alwaysLiteralType{}

	diags := lintSnippet(t, "app.ts", `const a = "Hello world";`, opts)
	if len(diags) != 0 {
		t.Fatalf("expected type resolver to exempt literal, got %+v", diags)
	}
}

func TestTypeResolver_AbsenceOnlyAffectsLastCheck(t *testing.T) {
	// Without a resolver the literal is reported; nothing else changes.
	expectOne(t, "app.ts", `const a = "Hello world";`, "Hello world")
}

func TestMarkupOnly_SkipsPlainStrings(t *testing.T) {
	opts := defaultOptions()
	opts.MarkupOnly = true

	diags := lintSnippet(t, "app.jsx", `const a = "Hello world";`, opts)
	if len(diags) != 0 {
		t.Fatalf("expected markup-only to skip plain strings, got %+v", diags)
	}

	diags = lintSnippet(t, "app.jsx", `const el = <div>Hello world</div>;`, opts)
	if len(diags) != 1 {
		t.Fatalf("expected markup text to be reported under markup-only, got %+v", diags)
	}

	diags = lintSnippet(t, "app.jsx", `const el = <div title="Hello world" />;`, opts)
	if len(diags) != 1 {
		t.Fatalf("expected attribute value to be reported under markup-only, got %+v", diags)
	}
}

func TestIdempotence(t *testing.T) {
	source := `
const a = "Hello world";
const el = <div>Another greeting here</div>;
const msg = ` + "`Order ${id} confirmed`" + `;
`
	parser := testRegistry.ForPath("app.jsx")
	tree, err := parser.Parse(context.Background(), []byte(source))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	defer tree.Close()

	engine := New(defaultOptions())
	first := engine.Lint("app.jsx", []byte(source), tree.RootNode())
	second := engine.Lint("app.jsx", []byte(source), tree.RootNode())

	if len(first) != 3 {
		t.Fatalf("expected 3 diagnostics, got %d: %+v", len(first), first)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("diagnostics differ between runs (-first +second):\n%s", diff)
	}
}
