package lang

import (
	"context"
	"testing"
)

func TestRegistry_Extensions(t *testing.T) {
	r := NewRegistry()

	cases := []struct {
		path string
		lang string
	}{
		{"app.js", "javascript"},
		{"app.jsx", "javascript"},
		{"app.mjs", "javascript"},
		{"app.cjs", "javascript"},
		{"app.ts", "typescript"},
		{"app.tsx", "tsx"},
		{"APP.TSX", "tsx"},
	}
	for _, tc := range cases {
		parser := r.ForPath(tc.path)
		if parser == nil {
			t.Fatalf("no parser for %s", tc.path)
		}
		if parser.Language() != tc.lang {
			t.Errorf("ForPath(%s) language = %q, want %q", tc.path, parser.Language(), tc.lang)
		}
	}

	for _, path := range []string{"style.css", "readme.md", "app.go", "noext"} {
		if r.Supported(path) {
			t.Errorf("unexpected parser for %s", path)
		}
	}
}

func TestParse_ProducesTree(t *testing.T) {
	r := NewRegistry()

	src := []byte(`const el = <div className="x">text</div>;`)
	tree, err := r.ForPath("app.tsx").Parse(context.Background(), src)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	defer tree.Close()

	if got := tree.RootNode().Type(); got != "program" {
		t.Fatalf("unexpected root node type %q", got)
	}
}
