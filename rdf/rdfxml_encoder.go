package rdf

import (
	"fmt"
	"io"
	"strings"

	xw "github.com/shabbyrobe/xmlwriter"
)

const rdfXMLNS = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

// rdfxmlEncoder writes one rdf:Description element per triple inside a single
// rdf:RDF root. The root is opened when the encoder is created.
type rdfxmlEncoder struct {
	writer *xw.Writer
	err    error
}

func newRDFXMLEncoder(w io.Writer) (*rdfxmlEncoder, error) {
	writer := xw.Open(w)
	if err := writer.Start(xw.Doc{}); err != nil {
		return nil, err
	}
	root := xw.Elem{
		Name:  "rdf:RDF",
		Attrs: []xw.Attr{{Name: "xmlns:rdf", Value: rdfXMLNS}},
	}
	if err := writer.Start(root); err != nil {
		return nil, err
	}
	return &rdfxmlEncoder{writer: writer}, nil
}

func (e *rdfxmlEncoder) writeTriple(t Triple) error {
	if e.err != nil {
		return e.err
	}
	property, err := rdfxmlPropertyElem(t.P, t.O)
	if err != nil {
		return err
	}
	description := xw.Elem{
		Name:    "rdf:Description",
		Attrs:   []xw.Attr{rdfxmlSubjectAttr(t.S)},
		Content: []xw.Writable{property},
	}
	if err := e.writer.Write(description); err != nil {
		e.err = err
		return err
	}
	return nil
}

func (e *rdfxmlEncoder) flush() error {
	if e.err != nil {
		return e.err
	}
	if err := e.writer.Flush(); err != nil {
		e.err = err
	}
	return e.err
}

// finish closes the rdf:RDF root and drains the buffer.
func (e *rdfxmlEncoder) finish() error {
	if e.err != nil {
		return e.err
	}
	if err := e.writer.EndAllFlush(); err != nil {
		e.err = err
	}
	return e.err
}

func rdfxmlSubjectAttr(term Term) xw.Attr {
	if bnode, ok := term.(BlankNode); ok {
		return xw.Attr{Name: "rdf:nodeID", Value: rdfxmlNodeID(bnode)}
	}
	return xw.Attr{Name: "rdf:about", Value: term.(IRI).Value}
}

// rdfxmlPropertyElem builds the property element. The predicate namespace is
// declared as the element's default namespace so no prefix bookkeeping is
// carried between triples.
func rdfxmlPropertyElem(predicate IRI, object Term) (xw.Elem, error) {
	ns, local, ok := splitIRIForQName(predicate.Value)
	if !ok {
		return xw.Elem{}, fmt.Errorf("%w: rdfxml: predicate %s cannot be written as an element name", ErrInvalidStatement, predicate)
	}
	elem := xw.Elem{
		Name:  local,
		Attrs: []xw.Attr{{Name: "xmlns", Value: ns}},
	}
	switch value := object.(type) {
	case IRI:
		elem.Attrs = append(elem.Attrs, xw.Attr{Name: "rdf:resource", Value: value.Value})
	case BlankNode:
		elem.Attrs = append(elem.Attrs, xw.Attr{Name: "rdf:nodeID", Value: rdfxmlNodeID(value)})
	case Literal:
		switch {
		case value.IsTyped():
			elem.Attrs = append(elem.Attrs, xw.Attr{Name: "rdf:datatype", Value: value.Datatype.Value})
		case value.Lang != "":
			elem.Attrs = append(elem.Attrs, xw.Attr{Name: "xml:lang", Value: value.Lang})
		}
		if value.Lexical != "" {
			elem.Content = []xw.Writable{xw.Text(value.Lexical)}
		}
	}
	return elem, nil
}

// rdfxmlNodeID maps a blank node label to an XML name. Labels that are already
// names and do not start with '_' are kept; all others gain a '_' prefix, which
// keeps the mapping injective.
func rdfxmlNodeID(b BlankNode) string {
	if isQNameLocal(b.ID) && !strings.HasPrefix(b.ID, "_") {
		return b.ID
	}
	return "_" + b.ID
}
