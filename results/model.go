package results

import "github.com/geoknoesis/rdfio/rdf"

// Namespace is the XML namespace of the results vocabulary.
const Namespace = "http://www.w3.org/2005/sparql-results#"

// Variable is a projected query variable. Its position in the header is its
// index into every Row of the same document.
type Variable struct {
	Name string
}

// Row holds one solution. Slot i belongs to variable i; a nil slot is unbound.
type Row []rdf.Term

// Bound returns the term for slot i and whether it is bound.
func (r Row) Bound(i int) (rdf.Term, bool) {
	if i < 0 || i >= len(r) || r[i] == nil {
		return nil, false
	}
	return r[i], true
}

// QueryResult is either BooleanResult or *Solutions.
type QueryResult interface {
	isQueryResult()
}

// BooleanResult is the answer of an ASK query.
type BooleanResult bool

func (BooleanResult) isQueryResult() {}

// Solutions is the answer of a SELECT query.
type Solutions struct {
	Variables []Variable
	Rows      *Rows
}

func (*Solutions) isQueryResult() {}

// VariableNames returns the variable names in declaration order.
func VariableNames(vars []Variable) []string {
	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = v.Name
	}
	return names
}
