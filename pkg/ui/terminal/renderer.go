// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/nxj/pkg/ui/display"
	"github.com/arthur-debert/nxj/pkg/ui/styles"
)

// Renderer renders tables with pterm and text with the lipgloss styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	table, isTable := result.(display.Table)
	if isTable && len(table.Rows()) > 0 {
		data := pterm.TableData{}
		if header := table.Header(); len(header) > 0 {
			styled := make([]string, len(header))
			for i, h := range header {
				styled[i] = styles.Render("TableHeader", h)
			}
			data = append(data, styled)
		}
		data = append(data, table.Rows()...)

		rendered, err := pterm.DefaultTable.
			WithHasHeader(len(table.Header()) > 0).
			WithData(data).
			Srender()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
		if _, err := fmt.Fprintln(r.output, rendered); err != nil {
			return err
		}
	}

	if s, ok := result.(display.Summarizer); ok {
		_, err := fmt.Fprintln(r.output, styles.Render("Muted", s.Summary()))
		return err
	}
	if !isTable {
		_, err := fmt.Fprintf(r.output, "%v\n", result)
		return err
	}
	return nil
}

// RenderError renders an error in the Error style
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintln(r.output, styles.Render("Error", fmt.Sprintf("Error: %v", err)))
	return writeErr
}

// RenderMessage renders a message in the Success style
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, styles.Render("Success", msg))
	return err
}
