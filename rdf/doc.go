// Package rdf provides a compact RDF term model and streaming writers for the
// standard triple and quad serializations.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// The set of syntaxes is fixed:
//   - Triple syntaxes (GraphSyntax): N-Triples, Turtle, RDF/XML
//   - Quad syntaxes (DatasetSyntax): N-Quads, TriG
//
// Triple syntaxes are only reachable through GraphSerializer and quad syntaxes
// through DatasetSerializer, so a dataset cannot be written to a triple-only
// format by accident.
//
// Example (writing triples):
//
//	w, err := rdf.NewGraphSerializer(rdf.GraphSyntaxTurtle).TripleWriter(os.Stdout)
//	if err != nil {
//	    // handle error
//	}
//	for _, t := range triples {
//	    if err := w.Write(t); err != nil {
//	        // handle error
//	    }
//	}
//	if err := w.Finish(); err != nil {
//	    // handle error
//	}
//
// Writers are push-style and stream: each Write emits one statement and keeps
// no history beyond what the syntax needs to group consecutive statements.
// Finish writes the closing bytes (the end of a pending Turtle statement, the
// closing rdf:RDF tag) and must be called exactly once.
//
// Encoder start-up and shutdown failures are reported as *FormatError, which
// names the format and keeps the cause. Code flattens any error returned by
// this package to an ErrorCode.
package rdf
