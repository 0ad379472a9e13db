package rdf

import "strings"

// Format identifies RDF serialization formats by canonical name.
type Format string

const (
	FormatTurtle   Format = "turtle"
	FormatTriG     Format = "trig"
	FormatNTriples Format = "ntriples"
	FormatNQuads   Format = "nquads"
	FormatRDFXML   Format = "rdfxml"
)

// GraphSyntax selects one of the triple serialization formats.
type GraphSyntax uint8

const (
	GraphSyntaxNTriples GraphSyntax = iota + 1
	GraphSyntaxTurtle
	GraphSyntaxRDFXML
)

// DatasetSyntax selects one of the quad serialization formats.
type DatasetSyntax uint8

const (
	DatasetSyntaxNQuads DatasetSyntax = iota + 1
	DatasetSyntaxTriG
)

// Format returns the canonical format name.
func (s GraphSyntax) Format() Format {
	switch s {
	case GraphSyntaxNTriples:
		return FormatNTriples
	case GraphSyntaxTurtle:
		return FormatTurtle
	case GraphSyntaxRDFXML:
		return FormatRDFXML
	default:
		return ""
	}
}

func (s GraphSyntax) String() string { return string(s.Format()) }

// MediaType returns the registered media type of the syntax.
func (s GraphSyntax) MediaType() string {
	switch s {
	case GraphSyntaxNTriples:
		return "application/n-triples"
	case GraphSyntaxTurtle:
		return "text/turtle"
	case GraphSyntaxRDFXML:
		return "application/rdf+xml"
	default:
		return ""
	}
}

// Extension returns the usual file extension of the syntax, without the dot.
func (s GraphSyntax) Extension() string {
	switch s {
	case GraphSyntaxNTriples:
		return "nt"
	case GraphSyntaxTurtle:
		return "ttl"
	case GraphSyntaxRDFXML:
		return "rdf"
	default:
		return ""
	}
}

// Format returns the canonical format name.
func (s DatasetSyntax) Format() Format {
	switch s {
	case DatasetSyntaxNQuads:
		return FormatNQuads
	case DatasetSyntaxTriG:
		return FormatTriG
	default:
		return ""
	}
}

func (s DatasetSyntax) String() string { return string(s.Format()) }

// MediaType returns the registered media type of the syntax.
func (s DatasetSyntax) MediaType() string {
	switch s {
	case DatasetSyntaxNQuads:
		return "application/n-quads"
	case DatasetSyntaxTriG:
		return "application/trig"
	default:
		return ""
	}
}

// Extension returns the usual file extension of the syntax, without the dot.
func (s DatasetSyntax) Extension() string {
	switch s {
	case DatasetSyntaxNQuads:
		return "nq"
	case DatasetSyntaxTriG:
		return "trig"
	default:
		return ""
	}
}

// ParseGraphSyntax normalizes a format name, extension or media type.
func ParseGraphSyntax(value string) (GraphSyntax, bool) {
	switch normalizeFormatName(value) {
	case "ntriples", "nt", "n-triples", "application/n-triples":
		return GraphSyntaxNTriples, true
	case "turtle", "ttl", "text/turtle":
		return GraphSyntaxTurtle, true
	case "rdfxml", "rdf", "xml", "rdf/xml", "application/rdf+xml":
		return GraphSyntaxRDFXML, true
	default:
		return 0, false
	}
}

// ParseDatasetSyntax normalizes a format name, extension or media type.
func ParseDatasetSyntax(value string) (DatasetSyntax, bool) {
	switch normalizeFormatName(value) {
	case "nquads", "nq", "n-quads", "application/n-quads":
		return DatasetSyntaxNQuads, true
	case "trig", "application/trig":
		return DatasetSyntaxTriG, true
	default:
		return 0, false
	}
}

func normalizeFormatName(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if i := strings.IndexByte(value, ';'); i >= 0 {
		value = strings.TrimSpace(value[:i])
	}
	return strings.TrimPrefix(value, ".")
}
