// Package output renders CLI results as lipgloss-styled text or as JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	domainerrors "pocketratings/internal/domain/errors"
	"pocketratings/internal/domain/hierarchy"
	"pocketratings/internal/errors"

	"github.com/charmbracelet/lipgloss"
)

// Formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorPrimary = lipgloss.Color("#7C3AED")

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	headerStyle  = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	cellStyle    = lipgloss.NewStyle().PaddingRight(2)
)

// Response is the JSON document written for every command.
type Response struct {
	Status string     `json:"status"`
	Data   any        `json:"data,omitempty"`
	Error  *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo describes a failed command.
type ErrorInfo struct {
	Code    string `json:"code"`
	Class   string `json:"class"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Printer writes command results. Diagnostics go to ErrWriter so JSON on Writer stays parseable.
type Printer struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer
	Verbose   bool
}

// ValidFormat reports whether format is accepted by --format.
func ValidFormat(format string) bool {
	return format == FormatText || format == FormatJSON
}

// Result writes data as JSON, or calls text to render it for a terminal.
func (p *Printer) Result(data any, text func(w io.Writer)) error {
	if p.Format == FormatJSON {
		return errors.WithStack(json.NewEncoder(p.Writer).Encode(Response{Status: "ok", Data: data}))
	}
	text(p.Writer)

	return nil
}

// Done reports a command that has nothing to print but a confirmation.
func (p *Printer) Done(format string, args ...any) error {
	return p.Result(nil, func(w io.Writer) {
		fmt.Fprintln(w, successStyle.Render("✓ ")+fmt.Sprintf(format, args...))
	})
}

// Failure renders err. The returned error is the one from writing, not err itself.
func (p *Printer) Failure(err error) error {
	info := &ErrorInfo{
		Code:    "INTERNAL_ERROR",
		Class:   domainerrors.Classify(err).String(),
		Message: err.Error(),
	}
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		info.Code = appErr.ErrorCode()
		info.Message = appErr.Message()
		info.Details = appErr.Details()
	}

	if p.Format == FormatJSON {
		return errors.WithStack(json.NewEncoder(p.Writer).Encode(Response{Status: "error", Error: info}))
	}

	fmt.Fprintf(p.errWriter(), "%s %s [%s]\n", errorStyle.Render("✗"), info.Message, info.Code)
	if p.Verbose {
		if info.Details != "" {
			fmt.Fprintln(p.errWriter(), mutedStyle.Render("  "+info.Details))
		}
		fmt.Fprintln(p.errWriter(), mutedStyle.Render(fmt.Sprintf("  %+v", err)))
	}

	return nil
}

// Verbosef writes a diagnostic line when --verbose is set.
func (p *Printer) Verbosef(format string, args ...any) {
	if !p.Verbose {
		return
	}
	fmt.Fprintln(p.errWriter(), mutedStyle.Render(fmt.Sprintf(format, args...)))
}

func (p *Printer) errWriter() io.Writer {
	if p.ErrWriter != nil {
		return p.ErrWriter
	}

	return p.Writer
}

// Table writes rows under a styled header with columns padded to their widest cell.
func Table(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("(none)"))

		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	line := func(cells []string, style lipgloss.Style) string {
		rendered := make([]string, len(cells))
		for i, cell := range cells {
			rendered[i] = cellStyle.Width(widths[i] + 2).Render(style.Render(cell))
		}

		return strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, rendered...), " ")
	}

	fmt.Fprintln(w, line(headers, headerStyle))
	for _, row := range rows {
		fmt.Fprintln(w, line(row, lipgloss.NewStyle()))
	}
}

// Tree writes the category tree with one indented line per category.
// Deleted categories are marked so an --include-deleted listing stays readable.
func Tree(w io.Writer, root *hierarchy.Node) {
	if root == nil || root.Size() == 0 {
		fmt.Fprintln(w, mutedStyle.Render("(no categories)"))

		return
	}

	root.Walk(func(node *hierarchy.Node, depth int) {
		if node.IsVirtual() {
			return
		}
		if !root.IsVirtual() {
			depth++
		}
		c := node.Category
		label := c.Name() + " " + mutedStyle.Render(c.ID().String())
		if !c.IsActive() {
			label += " " + warningStyle.Render("(deleted)")
		}
		fmt.Fprintln(w, strings.Repeat("  ", depth-1)+label)
	})
}

// Muted renders s in the secondary color.
func Muted(s string) string {
	return mutedStyle.Render(s)
}
