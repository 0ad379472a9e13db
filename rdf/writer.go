package rdf

import "io"

// SerializerOption configures a GraphSerializer or DatasetSerializer.
type SerializerOption func(*serializerOptions)

type serializerOptions struct {
	turtle TurtleEncodeOptions
}

// WithPrefixes declares namespace prefixes used to abbreviate IRIs in Turtle
// and TriG output. Other syntaxes ignore it.
func WithPrefixes(prefixes map[string]string) SerializerOption {
	return func(opts *serializerOptions) {
		opts.turtle.Prefixes = prefixes
	}
}

// WithBaseIRI emits an @base directive in Turtle and TriG output.
func WithBaseIRI(base string) SerializerOption {
	return func(opts *serializerOptions) {
		opts.turtle.BaseIRI = base
	}
}

// WithIndent sets the indentation of Turtle and TriG continuation lines.
func WithIndent(indent string) SerializerOption {
	return func(opts *serializerOptions) {
		opts.turtle.Indent = indent
	}
}

func buildSerializerOptions(opts []SerializerOption) serializerOptions {
	var options serializerOptions
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// GraphSerializer creates writers for one of the triple syntaxes.
//
//	w, err := rdf.NewGraphSerializer(rdf.GraphSyntaxNTriples).TripleWriter(&buf)
//	if err != nil {
//	    // handle error
//	}
//	if err := w.Write(triple); err != nil {
//	    // handle error
//	}
//	err = w.Finish()
type GraphSerializer struct {
	syntax GraphSyntax
	opts   serializerOptions
}

// NewGraphSerializer returns a serializer for syntax.
func NewGraphSerializer(syntax GraphSyntax, opts ...SerializerOption) GraphSerializer {
	return GraphSerializer{syntax: syntax, opts: buildSerializerOptions(opts)}
}

// Syntax returns the selected syntax.
func (s GraphSerializer) Syntax() GraphSyntax { return s.syntax }

// TripleWriter returns a writer that owns w until Finish is called.
// For RDF/XML the document prologue and root element are written here, so
// construction can fail with a *FormatError.
func (s GraphSerializer) TripleWriter(w io.Writer) (*TripleWriter, error) {
	tw := &TripleWriter{syntax: s.syntax}
	switch s.syntax {
	case GraphSyntaxNTriples:
		tw.ntriples = newNTriplesEncoder(w)
	case GraphSyntaxTurtle:
		tw.turtle = newTurtleEncoder(w, s.opts.turtle)
	case GraphSyntaxRDFXML:
		enc, err := newRDFXMLEncoder(w)
		if err != nil {
			return nil, formatError(FormatRDFXML, "open", err)
		}
		tw.rdfxml = enc
	default:
		return nil, ErrUnsupportedFormat
	}
	return tw, nil
}

// TripleWriter streams triples in one syntax. Exactly one encoder field is set,
// chosen by syntax.
//
// Finish must be called once to write the closing bytes of the document;
// a writer dropped without Finish leaves an incomplete document.
// A TripleWriter is not safe for concurrent use.
type TripleWriter struct {
	syntax   GraphSyntax
	ntriples *ntEncoder
	turtle   *turtleEncoder
	rdfxml   *rdfxmlEncoder
	finished bool
}

// Write validates and emits one triple. Sink errors are returned as the sink
// reported them.
func (w *TripleWriter) Write(t Triple) error {
	if w.finished {
		return ErrWriterFinished
	}
	if err := t.Validate(); err != nil {
		return err
	}
	switch w.syntax {
	case GraphSyntaxNTriples:
		return w.ntriples.writeQuad(t.ToQuad())
	case GraphSyntaxTurtle:
		return w.turtle.writeQuad(t.ToQuad())
	case GraphSyntaxRDFXML:
		return w.rdfxml.writeTriple(t)
	default:
		return ErrUnsupportedFormat
	}
}

// Flush writes buffered bytes to the sink without ending the document.
func (w *TripleWriter) Flush() error {
	if w.finished {
		return ErrWriterFinished
	}
	switch w.syntax {
	case GraphSyntaxNTriples:
		return w.ntriples.flush()
	case GraphSyntaxTurtle:
		return w.turtle.flush()
	case GraphSyntaxRDFXML:
		return w.rdfxml.flush()
	default:
		return ErrUnsupportedFormat
	}
}

// Finish writes the last bytes of the document. The writer cannot be used
// afterwards.
func (w *TripleWriter) Finish() error {
	if w.finished {
		return ErrWriterFinished
	}
	w.finished = true
	switch w.syntax {
	case GraphSyntaxNTriples:
		return w.ntriples.finish()
	case GraphSyntaxTurtle:
		return formatError(FormatTurtle, "finish", w.turtle.finish())
	case GraphSyntaxRDFXML:
		return formatError(FormatRDFXML, "finish", w.rdfxml.finish())
	default:
		return ErrUnsupportedFormat
	}
}

// DatasetSerializer creates writers for one of the quad syntaxes.
type DatasetSerializer struct {
	syntax DatasetSyntax
	opts   serializerOptions
}

// NewDatasetSerializer returns a serializer for syntax.
func NewDatasetSerializer(syntax DatasetSyntax, opts ...SerializerOption) DatasetSerializer {
	return DatasetSerializer{syntax: syntax, opts: buildSerializerOptions(opts)}
}

// Syntax returns the selected syntax.
func (s DatasetSerializer) Syntax() DatasetSyntax { return s.syntax }

// QuadWriter returns a writer that owns w until Finish is called.
func (s DatasetSerializer) QuadWriter(w io.Writer) (*QuadWriter, error) {
	qw := &QuadWriter{syntax: s.syntax}
	switch s.syntax {
	case DatasetSyntaxNQuads:
		qw.nquads = newNQuadsEncoder(w)
	case DatasetSyntaxTriG:
		qw.trig = newTriGEncoder(w, s.opts.turtle)
	default:
		return nil, ErrUnsupportedFormat
	}
	return qw, nil
}

// QuadWriter streams quads in one syntax. Quads with a nil graph name go to
// the default graph.
//
// Finish must be called once to write the closing bytes of the document.
// A QuadWriter is not safe for concurrent use.
type QuadWriter struct {
	syntax   DatasetSyntax
	nquads   *ntEncoder
	trig     *turtleEncoder
	finished bool
}

// Write validates and emits one quad.
func (w *QuadWriter) Write(q Quad) error {
	if w.finished {
		return ErrWriterFinished
	}
	if err := q.Validate(); err != nil {
		return err
	}
	switch w.syntax {
	case DatasetSyntaxNQuads:
		return w.nquads.writeQuad(q)
	case DatasetSyntaxTriG:
		return w.trig.writeQuad(q)
	default:
		return ErrUnsupportedFormat
	}
}

// Flush writes buffered bytes to the sink without ending the document.
func (w *QuadWriter) Flush() error {
	if w.finished {
		return ErrWriterFinished
	}
	switch w.syntax {
	case DatasetSyntaxNQuads:
		return w.nquads.flush()
	case DatasetSyntaxTriG:
		return w.trig.flush()
	default:
		return ErrUnsupportedFormat
	}
}

// Finish writes the last bytes of the document. The writer cannot be used
// afterwards.
func (w *QuadWriter) Finish() error {
	if w.finished {
		return ErrWriterFinished
	}
	w.finished = true
	switch w.syntax {
	case DatasetSyntaxNQuads:
		return w.nquads.finish()
	case DatasetSyntaxTriG:
		return formatError(FormatTriG, "finish", w.trig.finish())
	default:
		return ErrUnsupportedFormat
	}
}
