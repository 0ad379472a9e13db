package rdf

import (
	"errors"
	"testing"
)

func TestValidateIRI(t *testing.T) {
	tests := []struct {
		name    string
		iri     string
		wantErr bool
	}{
		{name: "http", iri: "http://example.org/resource"},
		{name: "urn", iri: "urn:example:resource"},
		{name: "query and fragment", iri: "http://example.org/r?x=1#frag"},
		{name: "unicode path", iri: "http://example.org/café"},
		{name: "scheme with digits and plus", iri: "svn+ssh2://example.org/repo"},
		{name: "empty", iri: "", wantErr: true},
		{name: "relative", iri: "/relative/path", wantErr: true},
		{name: "no scheme", iri: "example", wantErr: true},
		{name: "scheme starts with digit", iri: "1http://example.org", wantErr: true},
		{name: "space", iri: "http://example.org/a b", wantErr: true},
		{name: "angle bracket", iri: "http://example.org/<a>", wantErr: true},
		{name: "quote", iri: `http://example.org/"a"`, wantErr: true},
		{name: "newline", iri: "http://example.org/a\nb", wantErr: true},
		{name: "bad escape", iri: "http://example.org/%zz", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIRI(tt.iri)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateIRI(%q) error = %v, wantErr %v", tt.iri, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidIRI) {
				t.Fatalf("expected ErrInvalidIRI, got %v", err)
			}
		})
	}
}

func TestNewIRI(t *testing.T) {
	iri, err := NewIRI("http://example.org/s")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if iri.Value != "http://example.org/s" {
		t.Fatalf("unexpected value %q", iri.Value)
	}
	if _, err := NewIRI("not an iri"); Code(err) != ErrCodeInvalidIRI {
		t.Fatalf("expected INVALID_IRI, got %v", err)
	}
}
