package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/geoknoesis/rdfio/rdf"
	"github.com/geoknoesis/rdfio/results"
)

// Output names accepted by Renderer besides the RDF syntax names.
const (
	FormatTable = "table"
	FormatTerms = "terms"
	FormatXML   = "xml"
)

// ErrNotStatements is returned when rows cannot be read as statements.
var ErrNotStatements = errors.New("rows do not bind ?s ?p ?o")

// Renderer writes a parsed query result in one output format.
type Renderer struct {
	w        io.Writer
	format   string
	useColor bool
}

// New returns a renderer for format, which is one of FormatTable, FormatTerms,
// FormatXML or an RDF syntax name understood by rdf.ParseGraphSyntax or
// rdf.ParseDatasetSyntax.
func New(w io.Writer, format string, useColor bool) (*Renderer, error) {
	if !IsFormat(format) {
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	return &Renderer{w: w, format: format, useColor: useColor}, nil
}

// IsFormat reports whether format can be rendered.
func IsFormat(format string) bool {
	switch format {
	case FormatTable, FormatTerms, FormatXML:
		return true
	}
	if _, ok := rdf.ParseGraphSyntax(format); ok {
		return true
	}
	_, ok := rdf.ParseDatasetSyntax(format)
	return ok
}

// Result renders res and returns the number of rows written.
func (r *Renderer) Result(res results.QueryResult) (int, error) {
	switch res := res.(type) {
	case results.BooleanResult:
		return 0, r.boolean(bool(res))
	case *results.Solutions:
		return r.solutions(res)
	default:
		return 0, fmt.Errorf("unsupported result %T", res)
	}
}

func (r *Renderer) boolean(v bool) error {
	if r.format == FormatXML {
		return results.WriteBoolean(r.w, v)
	}
	attr := color.FgRed
	if v {
		attr = color.FgGreen
	}
	_, err := fmt.Fprintln(r.w, r.colorize(fmt.Sprintf("%t", v), attr))
	return err
}

func (r *Renderer) solutions(sol *results.Solutions) (int, error) {
	switch r.format {
	case FormatTable:
		return r.table(sol)
	case FormatTerms:
		return r.terms(sol)
	case FormatXML:
		return r.xml(sol)
	default:
		return r.statements(sol)
	}
}

// table buffers every row; tablewriter sizes columns over the whole table.
func (r *Renderer) table(sol *results.Solutions) (int, error) {
	rows, err := sol.Rows.Collect()
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintf(r.w, "_Columns: %v_\n\n_No rows_\n", results.VariableNames(sol.Variables))
		return 0, err
	}

	// Per-column alignment applies to header cells too; AlignNone would
	// centre them.
	alignment := make([]tw.Align, len(sol.Variables))
	for i := range alignment {
		alignment[i] = tw.AlignLeft
	}
	table := tablewriter.NewTable(r.w,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
		tablewriter.WithAlignment(alignment),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)

	headers := make([]string, len(sol.Variables))
	for i, v := range sol.Variables {
		headers[i] = "?" + v.Name
	}
	table.Header(headers)
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, term := range row {
			cells[i] = r.term(term)
		}
		if err := table.Append(cells); err != nil {
			return 0, err
		}
	}
	if err := table.Render(); err != nil {
		return 0, err
	}
	_, err = fmt.Fprintf(r.w, "\n_%d rows_\n", len(rows))
	return len(rows), err
}

// terms streams one line per row with a "?name term" pair per bound slot.
func (r *Renderer) terms(sol *results.Solutions) (int, error) {
	n := 0
	for row, err := range sol.Rows.All() {
		if err != nil {
			return n, err
		}
		var line strings.Builder
		for i, term := range row {
			if term == nil {
				continue
			}
			if line.Len() > 0 {
				line.WriteString("\t")
			}
			line.WriteString(r.colorize("?"+sol.Variables[i].Name, color.Bold))
			line.WriteString(" ")
			line.WriteString(r.term(term))
		}
		if _, err := fmt.Fprintln(r.w, line.String()); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func (r *Renderer) xml(sol *results.Solutions) (int, error) {
	w, err := results.NewSolutionsWriter(r.w, sol.Variables)
	if err != nil {
		return 0, err
	}
	n := 0
	for row, err := range sol.Rows.All() {
		if err != nil {
			return n, err
		}
		if err := w.WriteRow(row); err != nil {
			return n, err
		}
		n++
	}
	return n, w.Finish()
}

func (r *Renderer) term(term rdf.Term) string {
	if term == nil {
		return ""
	}
	text := term.String()
	switch term.Kind() {
	case rdf.TermIRI:
		return r.colorize(text, color.FgCyan)
	case rdf.TermBlankNode:
		return r.colorize(text, color.FgYellow)
	default:
		return r.colorize(text, color.FgGreen)
	}
}

func (r *Renderer) colorize(text string, attrs ...color.Attribute) string {
	if !r.useColor {
		return text
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(text)
}
