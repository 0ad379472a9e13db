package rdf

import (
	"bufio"
	"io"
)

// TurtleEncodeOptions configures Turtle and TriG encoding.
type TurtleEncodeOptions struct {
	// Prefixes maps prefix labels to namespace IRIs. The empty label is the
	// default prefix.
	Prefixes map[string]string
	// BaseIRI is emitted as an @base directive. IRIs are not relativized.
	BaseIRI string
	// Indent is used for continuation lines and for statements inside TriG
	// graph blocks. Defaults to a tab.
	Indent string
}

// turtleEncoder writes Turtle, or TriG when format is FormatTriG.
//
// Consecutive statements sharing a subject are joined with ';', and those
// sharing subject and predicate with ','. The encoder only remembers the
// pending subject, predicate and graph, so memory does not grow with the
// number of statements.
type turtleEncoder struct {
	writer   *bufio.Writer
	format   Format
	prefixes prefixMap
	base     string
	indent   string
	err      error
	started  bool

	open      bool // a statement is pending its terminating " ."
	subject   Term
	predicate IRI
	inGraph   bool
	graph     Term
}

func newTurtleEncoder(w io.Writer, opts TurtleEncodeOptions) *turtleEncoder {
	return newTurtleFamilyEncoder(w, FormatTurtle, opts)
}

func newTriGEncoder(w io.Writer, opts TurtleEncodeOptions) *turtleEncoder {
	return newTurtleFamilyEncoder(w, FormatTriG, opts)
}

func newTurtleFamilyEncoder(w io.Writer, format Format, opts TurtleEncodeOptions) *turtleEncoder {
	indent := opts.Indent
	if indent == "" {
		indent = "\t"
	}
	prefixes := make(prefixMap, len(opts.Prefixes))
	for prefix, ns := range opts.Prefixes {
		prefixes[prefix] = ns
	}
	return &turtleEncoder{
		writer:   bufio.NewWriter(w),
		format:   format,
		prefixes: prefixes,
		base:     opts.BaseIRI,
		indent:   indent,
	}
}

func (e *turtleEncoder) writeQuad(q Quad) error {
	if e.err != nil {
		return e.err
	}
	if !e.started {
		e.started = true
		e.writeHeader()
	}
	graph := q.G
	if e.format != FormatTriG {
		graph = nil
	}
	if graph != e.graph {
		e.closeStatement()
		if e.inGraph {
			e.writeString("}\n")
			e.inGraph = false
		}
		if graph != nil {
			e.writeString(e.prefixes.renderTerm(graph) + " {\n")
			e.inGraph = true
		}
		e.graph = graph
	}

	object := e.prefixes.renderTerm(q.O)
	switch {
	case e.open && q.S == e.subject && q.P == e.predicate:
		e.writeString(" ,\n" + e.lineIndent() + e.indent + e.indent + object)
	case e.open && q.S == e.subject:
		e.writeString(" ;\n" + e.lineIndent() + e.indent + e.prefixes.renderIRI(q.P) + " " + object)
	default:
		e.closeStatement()
		e.writeString(e.lineIndent() + e.prefixes.renderTerm(q.S) + " " + e.prefixes.renderIRI(q.P) + " " + object)
	}
	e.open = true
	e.subject = q.S
	e.predicate = q.P
	return e.err
}

func (e *turtleEncoder) lineIndent() string {
	if e.inGraph {
		return e.indent
	}
	return ""
}

func (e *turtleEncoder) closeStatement() {
	if e.open {
		e.writeString(" .\n")
		e.open = false
		e.subject = nil
		e.predicate = IRI{}
	}
}

func (e *turtleEncoder) writeHeader() {
	if e.base != "" {
		e.writeString("@base " + renderIRI(IRI{Value: e.base}) + " .\n")
	}
	for _, prefix := range e.prefixes.sortedKeys() {
		e.writeString("@prefix " + prefix + ": " + renderIRI(IRI{Value: e.prefixes[prefix]}) + " .\n")
	}
}

// writeString records the first sink error; later writes become no-ops.
func (e *turtleEncoder) writeString(s string) {
	if e.err != nil {
		return
	}
	if _, err := e.writer.WriteString(s); err != nil {
		e.err = err
	}
}

func (e *turtleEncoder) flush() error {
	if e.err != nil {
		return e.err
	}
	if err := e.writer.Flush(); err != nil {
		e.err = err
	}
	return e.err
}

// finish terminates the pending statement and graph block.
func (e *turtleEncoder) finish() error {
	if e.err != nil {
		return e.err
	}
	e.closeStatement()
	if e.inGraph {
		e.writeString("}\n")
		e.inGraph = false
	}
	return e.flush()
}
