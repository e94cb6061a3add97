// Package model defines the diagnostic and report types shared by the scanner and CLI.
package model

import "time"

// Message is the fixed diagnostic text attached to every reported literal.
const Message = "disallow literal string"

// Diagnostic points at one string literal that should be externalized.
type Diagnostic struct {
	File      string `json:"file"`
	StartLine int    `json:"start_line"`
	StartCol  int    `json:"start_col"`
	EndLine   int    `json:"end_line"`
	EndCol    int    `json:"end_col"`
	Kind      string `json:"kind"`
	Text      string `json:"text"`
	Message   string `json:"message"`
}

// FileResult holds the outcome of linting a single source file.
type FileResult struct {
	Path        string       `json:"path"`
	Language    string       `json:"language"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// ParseError records a file that could not be read or parsed. Parse errors
// do not abort a scan.
type ParseError struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// Report is the full result of one scan invocation.
type Report struct {
	Root        string       `json:"root"`
	GeneratedAt time.Time    `json:"generated_at"`
	Files       []FileResult `json:"files"`
	Errors      []ParseError `json:"errors,omitempty"`
}

// FileCount reports how many files were linted.
func (r *Report) FileCount() int {
	if r == nil {
		return 0
	}
	return len(r.Files)
}

// DiagnosticCount reports the total number of diagnostics across all files.
func (r *Report) DiagnosticCount() int {
	if r == nil {
		return 0
	}

	total := 0
	for _, file := range r.Files {
		total += len(file.Diagnostics)
	}
	return total
}
