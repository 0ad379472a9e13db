package rdf

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

type failingWriter struct{}

func (f failingWriter) Write(p []byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func exTriple(s, p, o string) Triple {
	return Triple{
		S: IRI{Value: "http://example.com/" + s},
		P: IRI{Value: "http://example.com/" + p},
		O: IRI{Value: "http://example.com/" + o},
	}
}

func TestTripleWriterNTriples(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewGraphSerializer(GraphSyntaxNTriples).TripleWriter(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Write(exTriple("s", "p", "o")); err != nil {
		t.Fatalf("write error: %v", err)
	}
	if err := w.Finish(); err != nil {
		t.Fatalf("finish error: %v", err)
	}
	want := "<http://example.com/s> <http://example.com/p> <http://example.com/o> .\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestQuadWriterNQuads(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewDatasetSerializer(DatasetSyntaxNQuads).QuadWriter(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	named := exTriple("s", "p", "o").ToQuadInGraph(IRI{Value: "http://example.com/g"})
	if err := w.Write(named); err != nil {
		t.Fatalf("write error: %v", err)
	}
	if err := w.Write(exTriple("s", "p", "o").ToQuad()); err != nil {
		t.Fatalf("write error: %v", err)
	}
	if err := w.Finish(); err != nil {
		t.Fatalf("finish error: %v", err)
	}
	want := "<http://example.com/s> <http://example.com/p> <http://example.com/o> <http://example.com/g> .\n" +
		"<http://example.com/s> <http://example.com/p> <http://example.com/o> .\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestWritersProduceOneLinePerStatement(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewDatasetSerializer(DatasetSyntaxNQuads).QuadWriter(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 50; i++ {
		q := Quad{
			S: BlankNode{ID: "b"},
			P: IRI{Value: "http://example.com/p"},
			O: NewLiteral("line\nbreak"),
			G: IRI{Value: "http://example.com/g"},
		}
		if err := w.Write(q); err != nil {
			t.Fatalf("write error: %v", err)
		}
	}
	if err := w.Finish(); err != nil {
		t.Fatalf("finish error: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 50 {
		t.Fatalf("expected 50 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if !strings.HasSuffix(line, " .") {
			t.Fatalf("unterminated line %q", line)
		}
	}
}

func TestUnsupportedSyntax(t *testing.T) {
	if _, err := NewGraphSerializer(GraphSyntax(0)).TripleWriter(&bytes.Buffer{}); err != ErrUnsupportedFormat {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := NewDatasetSerializer(DatasetSyntax(42)).QuadWriter(&bytes.Buffer{}); err != ErrUnsupportedFormat {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestWriterUnusableAfterFinish(t *testing.T) {
	for _, syntax := range []GraphSyntax{GraphSyntaxNTriples, GraphSyntaxTurtle, GraphSyntaxRDFXML} {
		w, err := NewGraphSerializer(syntax).TripleWriter(&bytes.Buffer{})
		if err != nil {
			t.Fatalf("%s: %v", syntax, err)
		}
		if err := w.Finish(); err != nil {
			t.Fatalf("%s: finish error %v", syntax, err)
		}
		if err := w.Write(exTriple("s", "p", "o")); !errors.Is(err, ErrWriterFinished) {
			t.Fatalf("%s: expected ErrWriterFinished on write, got %v", syntax, err)
		}
		if err := w.Flush(); !errors.Is(err, ErrWriterFinished) {
			t.Fatalf("%s: expected ErrWriterFinished on flush, got %v", syntax, err)
		}
		if err := w.Finish(); Code(err) != ErrCodeWriterFinished {
			t.Fatalf("%s: expected WRITER_FINISHED on second finish, got %v", syntax, err)
		}
	}
	for _, syntax := range []DatasetSyntax{DatasetSyntaxNQuads, DatasetSyntaxTriG} {
		w, err := NewDatasetSerializer(syntax).QuadWriter(&bytes.Buffer{})
		if err != nil {
			t.Fatalf("%s: %v", syntax, err)
		}
		if err := w.Finish(); err != nil {
			t.Fatalf("%s: finish error %v", syntax, err)
		}
		if err := w.Write(exTriple("s", "p", "o").ToQuad()); !errors.Is(err, ErrWriterFinished) {
			t.Fatalf("%s: expected ErrWriterFinished, got %v", syntax, err)
		}
	}
}

func TestWriterRejectsInvalidStatements(t *testing.T) {
	w, err := NewGraphSerializer(GraphSyntaxNTriples).TripleWriter(&bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := Triple{S: NewLiteral("s"), P: IRI{Value: "http://example.com/p"}, O: NewLiteral("o")}
	if err := w.Write(bad); !errors.Is(err, ErrInvalidStatement) {
		t.Fatalf("expected ErrInvalidStatement, got %v", err)
	}
}

func TestWriterRejectsUnescapedIRIs(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewGraphSerializer(GraphSyntaxNTriples).TripleWriter(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := Triple{S: IRI{Value: "http://a> <b"}, P: IRI{Value: "http://example.com/p"}, O: NewLiteral("o")}
	if err := w.Write(bad); !errors.Is(err, ErrInvalidIRI) {
		t.Fatalf("expected ErrInvalidIRI, got %v", err)
	}
	if err := w.Write(exTriple("s", "p", "o")); err != nil {
		t.Fatalf("writer should stay usable: %v", err)
	}
	if err := w.Finish(); err != nil {
		t.Fatalf("finish: %v", err)
	}
	if got, want := buf.String(), "<http://example.com/s> <http://example.com/p> <http://example.com/o> .\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestWriterSinkErrors(t *testing.T) {
	w, err := NewGraphSerializer(GraphSyntaxNTriples).TripleWriter(failingWriter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Write(exTriple("s", "p", "o")); err != nil {
		t.Fatalf("buffered write should not fail: %v", err)
	}
	if err := w.Flush(); err != io.ErrClosedPipe {
		t.Fatalf("expected sink error verbatim, got %v", err)
	}
	err = w.Finish()
	if err != io.ErrClosedPipe {
		t.Fatalf("expected sink error verbatim from Finish, got %T %v", err, err)
	}
	if Code(err) != ErrCodeIOError {
		t.Fatalf("unexpected code %s", Code(err))
	}
}

func TestLineWriterFinishReturnsSinkError(t *testing.T) {
	tw, err := NewGraphSerializer(GraphSyntaxNTriples).TripleWriter(failingWriter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tw.Write(exTriple("s", "p", "o")); err != nil {
		t.Fatalf("buffered write should not fail: %v", err)
	}
	if err := tw.Finish(); err != io.ErrClosedPipe || Code(err) != ErrCodeIOError {
		t.Fatalf("triple Finish = %v (%s), want sink error with IO_ERROR", err, Code(err))
	}

	qw, err := NewDatasetSerializer(DatasetSyntaxNQuads).QuadWriter(failingWriter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := qw.Write(exTriple("s", "p", "o").ToQuad()); err != nil {
		t.Fatalf("buffered write should not fail: %v", err)
	}
	err = qw.Finish()
	var formatErr *FormatError
	if errors.As(err, &formatErr) {
		t.Fatalf("n-quads Finish wrapped the sink error: %v", err)
	}
	if !errors.Is(err, io.ErrClosedPipe) || Code(err) != ErrCodeIOError {
		t.Fatalf("quad Finish = %v (%s), want sink error with IO_ERROR", err, Code(err))
	}
}

func TestQuadWriterSinkErrorOnFinish(t *testing.T) {
	w, err := NewDatasetSerializer(DatasetSyntaxTriG).QuadWriter(failingWriter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Write(exTriple("s", "p", "o").ToQuad()); err != nil {
		t.Fatalf("buffered write should not fail: %v", err)
	}
	err = w.Finish()
	var formatErr *FormatError
	if !errors.As(err, &formatErr) || formatErr.Format != FormatTriG {
		t.Fatalf("expected trig *FormatError, got %v", err)
	}
}

func TestCodeFlattening(t *testing.T) {
	if Code(nil) != "" || Code(io.EOF) != "" {
		t.Fatal("nil and EOF have no code")
	}
	if Code(io.ErrUnexpectedEOF) != ErrCodeIOError {
		t.Fatalf("unexpected code for raw I/O error")
	}
	if Code(ErrUnsupportedFormat) != ErrCodeUnsupportedFormat {
		t.Fatalf("unexpected code for unsupported format")
	}
	writeErr := &FormatError{Format: FormatRDFXML, Op: "write", Err: io.ErrShortWrite}
	if Code(writeErr) != ErrCodeIOError {
		t.Fatalf("write failures flatten to IO_ERROR")
	}
	if !strings.Contains(writeErr.Error(), "rdfxml write") {
		t.Fatalf("unexpected message %q", writeErr.Error())
	}
}
