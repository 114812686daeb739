// Package render wraps the typesetting engine. Markdown goes in, a
// rendered terminal string and a set of diagnostics come out; the
// engine's internals are not this package's business.
package render

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/hollisbeck/vellum/internal/domain"
)

// Severity classifies a diagnostic
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns the severity name for display
func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Diagnostic is one issue found in a document's markdown source
type Diagnostic struct {
	Line     int
	Severity Severity
	Message  string
}

// Service renders markdown for the preview pane
type Service struct {
	renderer *glamour.TermRenderer
	width    int
	logger   *slog.Logger
}

// NewService creates a renderer wrapping at the given width
func NewService(width int, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, &domain.RenderError{Op: "init", Err: err}
	}
	return &Service{renderer: renderer, width: width, logger: logger}, nil
}

// Render typesets markdown and reports diagnostics found in the source.
// Diagnostics never fail the render; a document with problems still
// produces output.
func (s *Service) Render(markdown string) (string, []Diagnostic, error) {
	out, err := s.renderer.Render(markdown)
	if err != nil {
		return "", nil, &domain.RenderError{Op: "markdown", Err: err}
	}

	diags := Inspect(markdown)
	if len(diags) > 0 {
		s.logger.Debug("render produced diagnostics", "count", len(diags))
	}
	return strings.TrimRight(out, "\n"), diags, nil
}

// Width returns the wrap width the service was built with
func (s *Service) Width() int {
	return s.width
}

var refLinkRe = regexp.MustCompile(`\[[^\]]+\]\[([^\]]+)\]`)
var refDefRe = regexp.MustCompile(`^\[([^\]]+)\]:\s+\S`)

// Inspect scans markdown source for structural problems: unclosed code
// fences, empty link targets, and reference links without a definition.
func Inspect(markdown string) []Diagnostic {
	var diags []Diagnostic

	lines := strings.Split(markdown, "\n")

	fenceOpen := false
	fenceLine := 0
	defs := make(map[string]bool)

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			fenceOpen = !fenceOpen
			fenceLine = i + 1
			continue
		}
		if fenceOpen {
			continue
		}
		if m := refDefRe.FindStringSubmatch(trimmed); m != nil {
			defs[strings.ToLower(m[1])] = true
		}
	}

	if fenceOpen {
		diags = append(diags, Diagnostic{
			Line:     fenceLine,
			Severity: SeverityError,
			Message:  "unclosed code fence",
		})
	}

	inFence := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}

		if strings.Contains(line, "]()") {
			diags = append(diags, Diagnostic{
				Line:     i + 1,
				Severity: SeverityWarning,
				Message:  "link with empty target",
			})
		}

		for _, m := range refLinkRe.FindAllStringSubmatch(line, -1) {
			ref := strings.ToLower(m[1])
			if !defs[ref] {
				diags = append(diags, Diagnostic{
					Line:     i + 1,
					Severity: SeverityWarning,
					Message:  fmt.Sprintf("reference link %q has no definition", m[1]),
				})
			}
		}
	}

	return diags
}
