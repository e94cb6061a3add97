package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"i18nlint/internal/config"
	"i18nlint/internal/ignore"
	"i18nlint/internal/model"
	"i18nlint/internal/scan"
)

// ruleFlags is the flag surface shared by scan and watch.
type ruleFlags struct {
	configPath       string
	ignorePatterns   []string
	ignoreFunctions  []string
	ignoreAttributes []string
	ignoreComponents []string
	markupOnly       bool
	noColor          bool
	jsonOutput       bool
}

func (f *ruleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "YAML options file")
	cmd.Flags().StringArrayVar(&f.ignorePatterns, "ignore", nil, "extra allow regex (repeatable)")
	cmd.Flags().StringArrayVar(&f.ignoreFunctions, "ignore-function", nil, "extra allowed callee name (repeatable)")
	cmd.Flags().StringArrayVar(&f.ignoreAttributes, "ignore-attribute", nil, "extra allowed attribute name (repeatable)")
	cmd.Flags().StringArrayVar(&f.ignoreComponents, "ignore-component", nil, "extra pass-through component (repeatable)")
	cmd.Flags().BoolVar(&f.markupOnly, "markup-only", false, "only check markup text and attribute values")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "disable colorized output")
	cmd.Flags().BoolVar(&f.jsonOutput, "json", false, "emit JSON output")
}

// options resolves the config file, then overlays the flag values.
func (f *ruleFlags) options() (config.Options, error) {
	var opts config.Options
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return config.Options{}, err
		}
		opts = loaded
	}
	return opts.Merge(config.Options{
		Ignore:          f.ignorePatterns,
		IgnoreFunction:  f.ignoreFunctions,
		IgnoreAttribute: f.ignoreAttributes,
		IgnoreComponent: f.ignoreComponents,
		MarkupOnly:      f.markupOnly,
	}), nil
}

// newScanner builds a scanner with the root's ignore file installed.
func (f *ruleFlags) newScanner(target string) (*scan.Scanner, error) {
	opts, err := f.options()
	if err != nil {
		return nil, err
	}

	scanner, err := scan.New(scan.Options{Config: opts})
	if err != nil {
		return nil, err
	}

	root := target
	if info, statErr := os.Stat(target); statErr == nil && !info.IsDir() {
		root = filepath.Dir(target)
	}
	matcher, err := ignore.LoadRoot(root)
	if err != nil {
		return nil, fmt.Errorf("load ignore file: %w", err)
	}
	scanner.SetIgnore(matcher)
	return scanner, nil
}

func emitJSON(value any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

var (
	locationColor = color.New(color.FgCyan)
	messageColor  = color.New(color.FgRed)
)

func printReport(report *model.Report, useColor bool) {
	if !useColor {
		color.NoColor = true
	}

	for _, file := range report.Files {
		for _, diag := range file.Diagnostics {
			locationColor.Printf("%s:%d:%d", diag.File, diag.StartLine, diag.StartCol)
			fmt.Printf(" %q ", diag.Text)
			messageColor.Println(diag.Message)
		}
	}

	fmt.Printf("scan: files=%d diagnostics=%d\n", report.FileCount(), report.DiagnosticCount())
	if len(report.Errors) > 0 {
		fmt.Printf("scan: parse errors=%d (ignored)\n", len(report.Errors))
	}
}
