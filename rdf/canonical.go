package rdf

import (
	"bytes"
	"fmt"

	ld "github.com/piprate/json-gold/ld"
)

// CanonicalNQuads returns the URDNA2015 canonical N-Quads form of quads.
// Blank nodes are relabelled by their position in the graph, so two datasets
// that differ only in blank node labels produce the same string.
func CanonicalNQuads(quads []Quad) (string, error) {
	var buf bytes.Buffer
	w, err := NewDatasetSerializer(DatasetSyntaxNQuads).QuadWriter(&buf)
	if err != nil {
		return "", err
	}
	for _, q := range quads {
		if err := w.Write(q); err != nil {
			return "", err
		}
	}
	if err := w.Finish(); err != nil {
		return "", err
	}
	return canonicalizeNQuads(buf.String())
}

// Isomorphic reports whether a and b contain the same statements up to blank
// node relabelling.
func Isomorphic(a, b []Quad) (bool, error) {
	left, err := CanonicalNQuads(a)
	if err != nil {
		return false, err
	}
	right, err := CanonicalNQuads(b)
	if err != nil {
		return false, err
	}
	return left == right, nil
}

func canonicalizeNQuads(nquads string) (string, error) {
	serializer := &ld.NQuadRDFSerializer{}
	dataset, err := serializer.Parse(nquads)
	if err != nil {
		return "", fmt.Errorf("nquads: %w", err)
	}
	api := ld.NewJsonLdApi()
	opts := ld.NewJsonLdOptions("")
	opts.Format = "application/n-quads"
	opts.Algorithm = ld.AlgorithmURDNA2015
	normalized, err := api.Normalize(dataset, opts)
	if err != nil {
		return "", err
	}
	value, ok := normalized.(string)
	if !ok {
		return "", fmt.Errorf("nquads: unexpected normalization result %T", normalized)
	}
	return value, nil
}
