package rule

import "testing"

func TestMarkup_TextReported(t *testing.T) {
	// Scenario A: bare element text with no pass-through wrapper.
	expectOne(t, "app.jsx", `const el = <div>Hello world</div>;`, "Hello world")
	expectOne(t, "app.tsx", `const el = <div>Hello world</div>;`, "Hello world")
	expectOne(t, "app.jsx", `const el = <div>  padded Text here  </div>;`, "padded Text here")
}

func TestMarkup_ExpressionContainerReported(t *testing.T) {
	expectOne(t, "app.jsx", `const el = <div>{"Hello world"}</div>;`, "Hello world")
	expectOne(t, "app.jsx", "const el = <div>{`Order ${id} confirmed`}</div>;", "Order confirmed")
}

func TestMarkup_EmptyAndSymbolsSkipped(t *testing.T) {
	expectNone(t, "app.jsx", `const el = <div>   </div>;`)
	expectNone(t, "app.jsx", `const el = <div>•</div>;`)
	expectNone(t, "app.jsx", `const el = <span>&nbsp;</span>;`)
}

func TestMarkup_AllUpperSkipped(t *testing.T) {
	expectNone(t, "app.jsx", `const el = <div>LOADING</div>;`)
}

func TestMarkup_PassThroughComponent(t *testing.T) {
	expectNone(t, "app.jsx", `const el = <Trans>Hello world</Trans>;`)
	expectNone(t, "app.jsx", `const el = <Trans><b>Hello nested text</b></Trans>;`)
}

func TestMarkup_ConfiguredPassThrough(t *testing.T) {
	opts := defaultOptions()
	opts.PassThrough = []string{"Localized"}

	diags := lintSnippet(t, "app.jsx", `const el = <Localized>Hello world</Localized>;`, opts)
	if len(diags) != 0 {
		t.Fatalf("expected configured pass-through to suppress diagnostic, got %+v", diags)
	}
}

func TestMarkup_AttributeAllowList(t *testing.T) {
	// Scenario D: built-in presentation attributes.
	expectNone(t, "app.jsx", `const el = <div className="Active State" />;`)
	expectNone(t, "app.jsx", `const el = <div className={"Active State"} />;`)
	expectNone(t, "app.jsx", `const el = <input type="Some Kind" id="Main Input" />;`)
}

func TestMarkup_StructuralAttributes(t *testing.T) {
	expectNone(t, "app.jsx", `const el = <a href="https://example.com/Some Path" />;`)
	expectNone(t, "app.jsx", `const el = <div data-track="Checkout Step" role="Main Region" />;`)
}

func TestMarkup_ProseAttributeReported(t *testing.T) {
	expectOne(t, "app.jsx", `const el = <div title="Hover to see more" />;`, "Hover to see more")
	// Structural attributes on components are still props that may be prose.
	expectOne(t, "app.jsx", `const el = <Card name="Welcome Banner" />;`, "Welcome Banner")
}

func TestMarkup_ConfiguredAttribute(t *testing.T) {
	opts := defaultOptions()
	wl := mustCompileAttributes(t, []string{"tooltip"})
	opts.Whitelist = wl

	diags := lintSnippet(t, "app.jsx", `const el = <div tooltip="Hover to see more" />;`, opts)
	if len(diags) != 0 {
		t.Fatalf("expected configured attribute to suppress diagnostic, got %+v", diags)
	}
}
