package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"sentra/internal/security"
)

// Reporter renders analyzer warnings as Rust-style terminal diagnostics.
// When constructed with the original source text it shows the offending line
// with a caret marker; without source it falls back to a header plus locator.
type Reporter struct {
	filename string
	lines    []string
}

// NewReporter creates a reporter for a file. Pass the empty string for
// source when the original text is unavailable (e.g. analyzing an AST dump
// without the matching source file).
func NewReporter(filename, source string) *Reporter {
	r := &Reporter{filename: filename}
	if source != "" {
		r.lines = strings.Split(source, "\n")
	}
	return r
}

// FormatWarning formats one warning, with source context when available.
func (r *Reporter) FormatWarning(w security.SecurityWarning) string {
	var result strings.Builder

	warnColor := color.New(color.FgYellow, color.Bold).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	// Header: warning[SEC-002]: message
	// Message() already embeds the code, so strip it from the body text.
	body := strings.TrimPrefix(w.Message(), w.Code()+": ")
	result.WriteString(fmt.Sprintf("%s[%s]: %s\n", warnColor("warning"), w.Code(), body))

	// Location line: --> filename:line:column
	filename := r.filename
	if w.Position.Filename != "" {
		filename = w.Position.Filename
	}
	lineNumberWidth := lineNumberWidth(w.Position.Line)
	indent := strings.Repeat(" ", lineNumberWidth)

	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("-->"), filename, w.Position.Line, w.Position.Column))

	// Source context with caret marker, when we have the line
	if w.Position.Line > 0 && w.Position.Line <= len(r.lines) {
		lineContent := r.lines[w.Position.Line-1]

		result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			bold(fmt.Sprintf("%*d", lineNumberWidth, w.Position.Line)),
			dim("│"),
			lineContent))
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			indent, dim("│"), r.createMarker(w)))
	}

	// Fix hint keyed by warning kind
	if hint := hintFor(w.Kind); hint != "" {
		hintColor := color.New(color.FgCyan).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s\n", indent, hintColor("help:"), hint))
	}

	result.WriteString("\n")
	return result.String()
}

// FormatAll formats every warning in emission order.
func (r *Reporter) FormatAll(warnings []security.SecurityWarning) string {
	var result strings.Builder
	for _, w := range warnings {
		result.WriteString(r.FormatWarning(w))
	}
	return result.String()
}

// hintFor returns the advisory fix hint for a warning kind.
func hintFor(kind security.WarningKind) string {
	switch kind {
	case security.PotentialReentrancy:
		return "update contract state before making external calls"
	case security.UncheckedArithmetic, security.PotentialOverflow:
		return "use a checked arithmetic helper, or rename the function with a 'checked_' or 'safe_' prefix if the operation is already guarded"
	case security.UninitializedVariable:
		return "assign the field at the top level of the constructor body"
	default:
		return ""
	}
}

// createMarker underlines the warning span on its source line.
func (r *Reporter) createMarker(w security.SecurityWarning) string {
	length := 1
	if w.EndPos.Line == w.Position.Line && w.EndPos.Column > w.Position.Column {
		length = w.EndPos.Column - w.Position.Column
	}

	spaces := strings.Repeat(" ", max(0, w.Position.Column-1))
	markerColor := color.New(color.FgYellow, color.Bold).SprintFunc()
	return spaces + markerColor(strings.Repeat("^", length))
}

func lineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3 // minimum width for visual alignment
	}
	return width
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
