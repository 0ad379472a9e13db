package results

import (
	"fmt"
	"io"
	"strconv"

	xw "github.com/shabbyrobe/xmlwriter"

	"github.com/geoknoesis/rdfio/rdf"
)

// WriteBoolean writes a complete ASK answer document.
func WriteBoolean(w io.Writer, value bool) error {
	x := xw.Open(w)
	ec := &xw.ErrCollector{}
	ec.Do(
		x.Start(xw.Doc{}),
		x.Start(xw.Elem{Name: "sparql", Attrs: []xw.Attr{{Name: "xmlns", Value: Namespace}}}),
		x.Write(xw.Elem{Name: "head"}),
		x.Write(xw.Elem{Name: "boolean", Content: []xw.Writable{xw.Text(strconv.FormatBool(value))}}),
		x.EndAllFlush(),
	)
	return ec.Err
}

// SolutionsWriter streams a SELECT answer document. The head is written by
// NewSolutionsWriter, one <result> per WriteRow, and Finish closes the
// document.
type SolutionsWriter struct {
	x        *xw.Writer
	vars     []Variable
	finished bool
}

// NewSolutionsWriter writes the document head for vars and returns a writer
// for the rows.
func NewSolutionsWriter(w io.Writer, vars []Variable) (*SolutionsWriter, error) {
	x := xw.Open(w)
	head := xw.Elem{Name: "head"}
	for _, v := range vars {
		head.Content = append(head.Content, xw.Elem{Name: "variable", Attrs: []xw.Attr{{Name: "name", Value: v.Name}}})
	}
	ec := &xw.ErrCollector{}
	ec.Do(
		x.Start(xw.Doc{}),
		x.Start(xw.Elem{Name: "sparql", Attrs: []xw.Attr{{Name: "xmlns", Value: Namespace}}}),
		x.Write(head),
		x.Start(xw.Elem{Name: "results"}),
	)
	if ec.Err != nil {
		return nil, ec.Err
	}
	return &SolutionsWriter{x: x, vars: vars}, nil
}

// WriteRow writes one <result>. Unbound slots are omitted. The row must have
// one slot per variable.
func (s *SolutionsWriter) WriteRow(row Row) error {
	if s.finished {
		return rdf.ErrWriterFinished
	}
	if len(row) != len(s.vars) {
		return fmt.Errorf("results: row has %d slots, want %d", len(row), len(s.vars))
	}
	result := xw.Elem{Name: "result"}
	for i, term := range row {
		if term == nil {
			continue
		}
		value, err := termElem(term)
		if err != nil {
			return err
		}
		result.Content = append(result.Content, xw.Elem{
			Name:    "binding",
			Attrs:   []xw.Attr{{Name: "name", Value: s.vars[i].Name}},
			Content: []xw.Writable{value},
		})
	}
	return s.x.Write(result)
}

// Flush writes buffered output without ending the document.
func (s *SolutionsWriter) Flush() error {
	if s.finished {
		return rdf.ErrWriterFinished
	}
	return s.x.Flush()
}

// Finish closes the document. The writer cannot be used afterwards.
func (s *SolutionsWriter) Finish() error {
	if s.finished {
		return rdf.ErrWriterFinished
	}
	s.finished = true
	return s.x.EndAllFlush()
}

func termElem(term rdf.Term) (xw.Elem, error) {
	switch t := term.(type) {
	case rdf.IRI:
		return xw.Elem{Name: "uri", Content: []xw.Writable{xw.Text(t.Value)}}, nil
	case rdf.BlankNode:
		return xw.Elem{Name: "bnode", Content: []xw.Writable{xw.Text(t.ID)}}, nil
	case rdf.Literal:
		elem := xw.Elem{Name: "literal"}
		switch {
		case t.IsTyped():
			elem.Attrs = []xw.Attr{{Name: "datatype", Value: t.Datatype.Value}}
		case t.Lang != "":
			elem.Attrs = []xw.Attr{{Name: "xml:lang", Value: t.Lang}}
		}
		if t.Lexical != "" {
			elem.Content = []xw.Writable{xw.Text(t.Lexical)}
		}
		return elem, nil
	default:
		return xw.Elem{}, fmt.Errorf("results: unsupported term %T", term)
	}
}
