package results

import "github.com/geoknoesis/rdfio/rdf"

// BlankNodeTable maps document-local blank node labels to fresh blank nodes.
// A table belongs to one parse session and must not be shared.
type BlankNodeTable struct {
	nodes map[string]rdf.BlankNode
	mint  func() rdf.BlankNode
}

// NewBlankNodeTable returns an empty table that mints nodes with
// rdf.NewBlankNode.
func NewBlankNodeTable() *BlankNodeTable {
	return &BlankNodeTable{nodes: make(map[string]rdf.BlankNode), mint: rdf.NewBlankNode}
}

// Resolve returns the node for label, allocating one on first sight.
func (t *BlankNodeTable) Resolve(label string) rdf.BlankNode {
	if node, ok := t.nodes[label]; ok {
		return node
	}
	node := t.mint()
	t.nodes[label] = node
	return node
}

// Len returns the number of distinct labels seen.
func (t *BlankNodeTable) Len() int { return len(t.nodes) }
