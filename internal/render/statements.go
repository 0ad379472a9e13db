package render

import (
	"fmt"

	"github.com/geoknoesis/rdfio/rdf"
	"github.com/geoknoesis/rdfio/results"
)

// statementSlots locates ?s ?p ?o and the optional ?g among the variables.
type statementSlots struct {
	s, p, o, g int
}

func findStatementSlots(vars []results.Variable) (statementSlots, error) {
	slots := statementSlots{s: -1, p: -1, o: -1, g: -1}
	for i, v := range vars {
		switch v.Name {
		case "s":
			slots.s = i
		case "p":
			slots.p = i
		case "o":
			slots.o = i
		case "g":
			slots.g = i
		}
	}
	if slots.s < 0 || slots.p < 0 || slots.o < 0 {
		return slots, fmt.Errorf("%w: variables are %v", ErrNotStatements, results.VariableNames(vars))
	}
	return slots, nil
}

func (s statementSlots) quad(row results.Row) (rdf.Quad, error) {
	p, ok := row[s.p].(rdf.IRI)
	if !ok {
		return rdf.Quad{}, fmt.Errorf("%w: ?p is %v", ErrNotStatements, row[s.p])
	}
	q := rdf.Quad{S: row[s.s], P: p, O: row[s.o]}
	if s.g >= 0 {
		q.G = row[s.g]
	}
	return q, nil
}

// statements writes rows as RDF statements in the renderer's syntax. Triple
// syntaxes drop ?g.
func (r *Renderer) statements(sol *results.Solutions) (int, error) {
	slots, err := findStatementSlots(sol.Variables)
	if err != nil {
		return 0, err
	}
	write, finish, err := r.statementWriter()
	if err != nil {
		return 0, err
	}
	n := 0
	for row, err := range sol.Rows.All() {
		if err != nil {
			return n, err
		}
		q, err := slots.quad(row)
		if err != nil {
			return n, err
		}
		if err := write(q); err != nil {
			return n, err
		}
		n++
	}
	return n, finish()
}

func (r *Renderer) statementWriter() (func(rdf.Quad) error, func() error, error) {
	if syntax, ok := rdf.ParseDatasetSyntax(r.format); ok {
		w, err := rdf.NewDatasetSerializer(syntax).QuadWriter(r.w)
		if err != nil {
			return nil, nil, err
		}
		return w.Write, w.Finish, nil
	}
	syntax, _ := rdf.ParseGraphSyntax(r.format)
	w, err := rdf.NewGraphSerializer(syntax).TripleWriter(r.w)
	if err != nil {
		return nil, nil, err
	}
	write := func(q rdf.Quad) error { return w.Write(q.ToTriple()) }
	return write, w.Finish, nil
}
