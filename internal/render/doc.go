// Package render prints SPARQL query results for people and for other tools:
// a Markdown table, one line of terms per row, results XML, or RDF statements
// when the rows bind ?s ?p ?o.
package render
