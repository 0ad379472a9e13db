package rdf

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// XSDString is the datatype of plain literals.
const XSDString = "http://www.w3.org/2001/XMLSchema#string"

// RDFLangString is the datatype of language-tagged literals.
const RDFLangString = "http://www.w3.org/1999/02/22-rdf-syntax-ns#langString"

// TermKind identifies RDF term types.
type TermKind uint8

const (
	// TermIRI represents an IRI term.
	TermIRI TermKind = iota
	// TermBlankNode represents a blank node term.
	TermBlankNode
	// TermLiteral represents a literal term.
	TermLiteral
)

func (k TermKind) String() string {
	switch k {
	case TermIRI:
		return "iri"
	case TermBlankNode:
		return "bnode"
	case TermLiteral:
		return "literal"
	default:
		return fmt.Sprintf("TermKind(%d)", uint8(k))
	}
}

// Term is a value that can appear in RDF statements.
type Term interface {
	Kind() TermKind
	String() string
}

// IRI represents an RDF IRI.
type IRI struct {
	// Value is the IRI string value.
	Value string
}

// NewIRI validates value and returns it as an IRI.
func NewIRI(value string) (IRI, error) {
	if err := ValidateIRI(value); err != nil {
		return IRI{}, err
	}
	return IRI{Value: value}, nil
}

// Kind returns TermIRI.
func (i IRI) Kind() TermKind { return TermIRI }

// String returns the IRI in N-Triples form.
func (i IRI) String() string { return "<" + i.Value + ">" }

// BlankNode represents an RDF blank node.
type BlankNode struct {
	// ID is the blank node identifier, without the "_:" prefix.
	ID string
}

// NewBlankNode allocates a blank node with a fresh random identifier.
func NewBlankNode() BlankNode {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic("rdf: unable to read random bytes: " + err.Error())
	}
	return BlankNode{ID: hex.EncodeToString(buf[:])}
}

// Kind returns TermBlankNode.
func (b BlankNode) Kind() TermKind { return TermBlankNode }

// String returns the blank node identifier prefixed with "_:".
func (b BlankNode) String() string { return "_:" + b.ID }

// Literal represents an RDF literal.
//
// A literal carries at most one of Lang and Datatype. When both are set the
// datatype wins everywhere in this package.
type Literal struct {
	// Lexical is the lexical form of the literal.
	Lexical string
	// Datatype is the datatype IRI, if any.
	Datatype IRI
	// Lang is the language tag, if any.
	Lang string
}

// NewLiteral returns a plain literal.
func NewLiteral(lexical string) Literal {
	return Literal{Lexical: lexical}
}

// NewLangLiteral returns a language-tagged literal.
func NewLangLiteral(lexical, lang string) Literal {
	return Literal{Lexical: lexical, Lang: lang}
}

// NewTypedLiteral returns a datatype-tagged literal. An xsd:string datatype
// yields the equivalent plain literal.
func NewTypedLiteral(lexical string, datatype IRI) Literal {
	if datatype.Value == XSDString {
		return Literal{Lexical: lexical}
	}
	return Literal{Lexical: lexical, Datatype: datatype}
}

// Kind returns TermLiteral.
func (l Literal) Kind() TermKind { return TermLiteral }

// String returns the literal in N-Triples form.
func (l Literal) String() string {
	return renderLiteral(l, renderIRI)
}

// IsTyped reports whether the literal carries a datatype other than xsd:string.
func (l Literal) IsTyped() bool {
	return l.Datatype.Value != "" && l.Datatype.Value != XSDString
}

// Triple is an RDF triple.
type Triple struct {
	// S is the subject.
	S Term
	// P is the predicate.
	P IRI
	// O is the object.
	O Term
}

// Validate reports whether the triple can be serialized.
func (t Triple) Validate() error {
	return validateStatement(t.S, t.P, t.O, nil)
}

// ToQuad converts a triple to a quad in the default graph.
func (t Triple) ToQuad() Quad {
	return Quad{S: t.S, P: t.P, O: t.O}
}

// ToQuadInGraph converts a triple to a quad in a named graph.
func (t Triple) ToQuadInGraph(graph Term) Quad {
	return Quad{S: t.S, P: t.P, O: t.O, G: graph}
}

// Quad is an RDF quad (triple + optional graph name).
type Quad struct {
	// S is the subject.
	S Term
	// P is the predicate.
	P IRI
	// O is the object.
	O Term
	// G is the graph name, or nil for the default graph.
	G Term
}

// Validate reports whether the quad can be serialized.
func (q Quad) Validate() error {
	return validateStatement(q.S, q.P, q.O, q.G)
}

// ToTriple extracts the triple from a quad (ignores graph).
func (q Quad) ToTriple() Triple {
	return Triple{S: q.S, P: q.P, O: q.O}
}

// InDefaultGraph reports whether the quad is in the default graph.
func (q Quad) InDefaultGraph() bool {
	return q.G == nil
}

// validateStatement checks term positions and runs ValidateIRI on every IRI
// the statement carries, so struct literals cannot corrupt the output.
func validateStatement(s Term, p IRI, o Term, g Term) error {
	switch s.(type) {
	case IRI, BlankNode:
	case nil:
		return fmt.Errorf("%w: missing subject", ErrInvalidStatement)
	default:
		return fmt.Errorf("%w: subject must be an IRI or blank node, got %s", ErrInvalidStatement, s.Kind())
	}
	if p.Value == "" {
		return fmt.Errorf("%w: missing predicate", ErrInvalidStatement)
	}
	switch o.(type) {
	case IRI, BlankNode, Literal:
	case nil:
		return fmt.Errorf("%w: missing object", ErrInvalidStatement)
	default:
		return fmt.Errorf("%w: unsupported object %T", ErrInvalidStatement, o)
	}
	switch g.(type) {
	case nil, IRI, BlankNode:
	default:
		return fmt.Errorf("%w: graph name must be an IRI or blank node, got %s", ErrInvalidStatement, g.Kind())
	}

	if err := validateTermIRI("subject", s); err != nil {
		return err
	}
	if err := validateTermIRI("predicate", p); err != nil {
		return err
	}
	if err := validateTermIRI("object", o); err != nil {
		return err
	}
	return validateTermIRI("graph name", g)
}

func validateTermIRI(position string, term Term) error {
	var iri string
	switch value := term.(type) {
	case IRI:
		iri = value.Value
	case Literal:
		if !value.IsTyped() {
			return nil
		}
		position += " datatype"
		iri = value.Datatype.Value
	default:
		return nil
	}
	if err := ValidateIRI(iri); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidStatement, position, err)
	}
	return nil
}
