package rdf

import (
	"bufio"
	"io"
	"strings"
)

// ntEncoder writes N-Triples or N-Quads: one self-contained line per statement.
type ntEncoder struct {
	writer *bufio.Writer
	format Format
	err    error
}

func newNTriplesEncoder(w io.Writer) *ntEncoder {
	return &ntEncoder{writer: bufio.NewWriter(w), format: FormatNTriples}
}

func newNQuadsEncoder(w io.Writer) *ntEncoder {
	return &ntEncoder{writer: bufio.NewWriter(w), format: FormatNQuads}
}

func (e *ntEncoder) writeQuad(q Quad) error {
	if e.err != nil {
		return e.err
	}
	var line strings.Builder
	line.WriteString(renderNTriplesTerm(q.S))
	line.WriteByte(' ')
	line.WriteString(renderIRI(q.P))
	line.WriteByte(' ')
	line.WriteString(renderNTriplesTerm(q.O))
	if e.format == FormatNQuads && q.G != nil {
		line.WriteByte(' ')
		line.WriteString(renderNTriplesTerm(q.G))
	}
	line.WriteString(" .\n")
	if _, err := e.writer.WriteString(line.String()); err != nil {
		e.err = err
		return err
	}
	return nil
}

func (e *ntEncoder) flush() error {
	if e.err != nil {
		return e.err
	}
	if err := e.writer.Flush(); err != nil {
		e.err = err
		return err
	}
	return nil
}

// finish has no closing bytes to write; it only drains the buffer.
func (e *ntEncoder) finish() error {
	return e.flush()
}
