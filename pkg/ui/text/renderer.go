// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/arthur-debert/nxj/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders tables as aligned columns, then any summary. Other
// values are printed with %v.
func (r *Renderer) RenderResult(result interface{}) error {
	table, isTable := result.(display.Table)
	if isTable {
		if err := r.renderTable(table); err != nil {
			return err
		}
	}
	if s, ok := result.(display.Summarizer); ok {
		_, err := fmt.Fprintln(r.output, s.Summary())
		return err
	}
	if !isTable {
		_, err := fmt.Fprintf(r.output, "%v\n", result)
		return err
	}
	return nil
}

func (r *Renderer) renderTable(table display.Table) error {
	rows := table.Rows()
	if len(rows) == 0 {
		return nil
	}
	tw := tabwriter.NewWriter(r.output, 0, 0, 2, ' ', 0)
	if header := table.Header(); len(header) > 0 {
		fmt.Fprintln(tw, strings.ToUpper(strings.Join(header, "\t")))
	}
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return writeErr
}

// RenderMessage renders a simple message as plain text
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
