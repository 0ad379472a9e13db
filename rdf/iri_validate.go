package rdf

import (
	"fmt"
	"net/url"
)

// ValidateIRI checks that iri is an absolute IRI.
//
// The check is structural: a scheme starting with a letter, a reference that
// net/url accepts, and none of the characters RFC 3987 forbids unescaped
// (controls, space, <, >, ", {, }, |, \, ^, `).
func ValidateIRI(iri string) error {
	if iri == "" {
		return fmt.Errorf("%w: empty IRI", ErrInvalidIRI)
	}
	for i, r := range iri {
		if r <= 0x20 || r == 0x7f {
			return fmt.Errorf("%w: control or space character at position %d in %q", ErrInvalidIRI, i, iri)
		}
		switch r {
		case '<', '>', '"', '{', '}', '|', '\\', '^', '`':
			return fmt.Errorf("%w: character %q at position %d must be percent-encoded in %q", ErrInvalidIRI, r, i, iri)
		}
	}
	scheme, ok := iriScheme(iri)
	if !ok {
		return fmt.Errorf("%w: missing scheme in %q", ErrInvalidIRI, iri)
	}
	if _, err := url.Parse(iri); err != nil {
		return fmt.Errorf("%w: %s IRI %q: %v", ErrInvalidIRI, scheme, iri, err)
	}
	return nil
}

// iriScheme returns the scheme of iri when it has a syntactically valid one.
func iriScheme(iri string) (string, bool) {
	for i := 0; i < len(iri); i++ {
		ch := iri[i]
		switch {
		case ch == ':':
			return iri[:i], i > 0
		case (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z'):
		case i > 0 && ((ch >= '0' && ch <= '9') || ch == '+' || ch == '-' || ch == '.'):
		default:
			return "", false
		}
	}
	return "", false
}
