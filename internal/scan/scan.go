// Package scan walks source trees, parses supported files, and runs the
// rule engine over each one to assemble a report.
package scan

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"i18nlint/internal/config"
	"i18nlint/internal/ignore"
	"i18nlint/internal/lang"
	"i18nlint/internal/model"
	"i18nlint/internal/rule"
	"i18nlint/internal/typeinfo"
	"i18nlint/internal/whitelist"
)

// Options assembles a Scanner. Types may be nil; the engine then runs in
// degraded mode with no semantic-type exemptions.
type Options struct {
	Config config.Options
	Types  typeinfo.Resolver
}

// Scanner owns the compiled configuration and parser registry for repeated
// scans (one-shot runs and watch-mode rescans alike).
type Scanner struct {
	registry *lang.Registry
	engine   *rule.Engine
	ignore   *ignore.Matcher
}

// New compiles the configuration into a Scanner. Pattern compilation is the
// only thing that can fail.
func New(opts Options) (*Scanner, error) {
	wl, err := whitelist.Compile(whitelist.Config{
		Patterns:   opts.Config.Ignore,
		Functions:  opts.Config.IgnoreFunction,
		Attributes: opts.Config.IgnoreAttribute,
	})
	if err != nil {
		return nil, err
	}

	engine := rule.New(rule.Options{
		Whitelist:        wl,
		Types:            opts.Types,
		PassThrough:      opts.Config.IgnoreComponent,
		MarkupOnly:       opts.Config.MarkupOnly,
		ValidateTemplate: opts.Config.TemplateValidation(),
	})

	return &Scanner{
		registry: lang.NewRegistry(),
		engine:   engine,
		ignore:   &ignore.Matcher{},
	}, nil
}

// SetIgnore installs a path matcher used when walking directories.
func (s *Scanner) SetIgnore(m *ignore.Matcher) {
	if m != nil {
		s.ignore = m
	}
}

// Supported reports whether path would be linted by a scan.
func (s *Scanner) Supported(path string) bool {
	return s.registry.Supported(path)
}

// Run lints a file or directory tree and returns the report. Unreadable and
// unparsable files are recorded as errors but do not abort the scan.
func (s *Scanner) Run(ctx context.Context, target string) (*model.Report, error) {
	if strings.TrimSpace(target) == "" {
		target = "."
	}
	root, err := filepath.Abs(target)
	if err != nil {
		return nil, err
	}
	root = filepath.Clean(root)

	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}

	report := &model.Report{
		Root:        root,
		GeneratedAt: time.Now().UTC(),
	}

	if !info.IsDir() {
		s.lintInto(ctx, report, root, filepath.Base(root))
		return report, nil
	}

	err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil || rel == "." {
			return nil
		}

		if entry.IsDir() {
			if s.ignore.Skip(rel, true) {
				return filepath.SkipDir
			}
			return nil
		}
		if s.ignore.Skip(rel, false) || !s.registry.Supported(path) {
			return nil
		}

		s.lintInto(ctx, report, path, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.Slice(report.Files, func(i, j int) bool {
		return report.Files[i].Path < report.Files[j].Path
	})
	sort.Slice(report.Errors, func(i, j int) bool {
		return report.Errors[i].Path < report.Errors[j].Path
	})
	return report, nil
}

// lintInto lints one file and appends the outcome to the report.
func (s *Scanner) lintInto(ctx context.Context, report *model.Report, path, rel string) {
	result, err := s.LintFile(ctx, path, rel)
	if err != nil {
		report.Errors = append(report.Errors, model.ParseError{Path: rel, Error: err.Error()})
		return
	}
	report.Files = append(report.Files, result)
}

// LintFile parses and lints a single file. rel is the path recorded in
// diagnostics; pass the display-friendly form.
func (s *Scanner) LintFile(ctx context.Context, path, rel string) (model.FileResult, error) {
	parser := s.registry.ForPath(path)
	if parser == nil {
		return model.FileResult{}, fmt.Errorf("unsupported file type: %s", path)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return model.FileResult{}, fmt.Errorf("read %s: %w", path, err)
	}

	tree, err := parser.Parse(ctx, src)
	if err != nil {
		return model.FileResult{}, err
	}
	defer tree.Close()

	return model.FileResult{
		Path:        rel,
		Language:    parser.Language(),
		Diagnostics: s.engine.Lint(rel, src, tree.RootNode()),
	}, nil
}
