// Package results reads and writes SPARQL Query Results XML documents.
//
// Read consumes the document prologue and returns either a BooleanResult or
// *Solutions. Solution rows are decoded lazily: each call to Rows.Next pulls
// just enough XML to produce one row, so a caller that stops early never reads
// the rest of the document.
//
//	res, err := results.Read(r)
//	if err != nil {
//	    // handle error
//	}
//	switch res := res.(type) {
//	case results.BooleanResult:
//	    fmt.Println(bool(res))
//	case *results.Solutions:
//	    for res.Rows.Next() {
//	        row := res.Rows.Row()
//	        // use row
//	    }
//	    if err := res.Rows.Err(); err != nil {
//	        // handle error
//	    }
//	}
//
// Blank node labels are scoped to one document: every Read starts a fresh
// BlankNodeTable, so the label "b0" in two documents yields unrelated nodes.
//
// Any structural problem is fatal and reported as a *SyntaxError matching
// ErrMalformedResults. Errors from the underlying reader are returned as is.
package results
