package rdf

import (
	"fmt"
	"sort"
	"strings"
)

// Term model adapter: converts terms into the textual shapes each encoder
// expects. All renderers assume the statement was validated first.

func renderIRI(iri IRI) string {
	return "<" + iri.Value + ">"
}

func renderNTriplesTerm(term Term) string {
	switch value := term.(type) {
	case IRI:
		return renderIRI(value)
	case BlankNode:
		return value.String()
	case Literal:
		return renderLiteral(value, renderIRI)
	default:
		return ""
	}
}

// renderLiteral writes a quoted literal. The datatype takes precedence over
// the language tag.
func renderLiteral(lit Literal, iri func(IRI) string) string {
	quoted := `"` + escapeString(lit.Lexical) + `"`
	switch {
	case lit.IsTyped():
		return quoted + "^^" + iri(lit.Datatype)
	case lit.Lang != "":
		return quoted + "@" + lit.Lang
	default:
		return quoted
	}
}

// escapeString applies the N-Triples ECHAR/UCHAR escapes, which Turtle shares.
func escapeString(value string) string {
	if !needsEscape(value) {
		return value
	}
	var b strings.Builder
	b.Grow(len(value) + 8)
	for _, r := range value {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04X`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsEscape(value string) bool {
	for i := 0; i < len(value); i++ {
		ch := value[i]
		if ch == '"' || ch == '\\' || ch < 0x20 || ch == 0x7f {
			return true
		}
	}
	return false
}

// prefixMap abbreviates IRIs to prefixed names for Turtle and TriG.
type prefixMap map[string]string

func (m prefixMap) sortedKeys() []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// abbreviate returns the prefixed name for iri using the longest matching
// namespace whose remainder is a valid local name.
func (m prefixMap) abbreviate(iri string) (string, bool) {
	bestNS, bestPrefix, found := "", "", false
	for prefix, ns := range m {
		if ns == "" || !strings.HasPrefix(iri, ns) {
			continue
		}
		if !isQNameLocal(iri[len(ns):]) {
			continue
		}
		if len(ns) > len(bestNS) || (len(ns) == len(bestNS) && prefix < bestPrefix) {
			bestNS, bestPrefix, found = ns, prefix, true
		}
	}
	if !found {
		return "", false
	}
	return bestPrefix + ":" + iri[len(bestNS):], true
}

func (m prefixMap) renderIRI(iri IRI) string {
	if qname, ok := m.abbreviate(iri.Value); ok {
		return qname
	}
	return renderIRI(iri)
}

func (m prefixMap) renderTerm(term Term) string {
	switch value := term.(type) {
	case IRI:
		return m.renderIRI(value)
	case Literal:
		return renderLiteral(value, m.renderIRI)
	default:
		return renderNTriplesTerm(term)
	}
}

// splitIRIForQName splits iri after its last '#' or '/' so the remainder can
// be used as an XML element name.
func splitIRIForQName(iri string) (string, string, bool) {
	idx := strings.LastIndexAny(iri, "#/")
	if idx <= 0 || idx+1 >= len(iri) {
		return "", "", false
	}
	ns, local := iri[:idx+1], iri[idx+1:]
	if !isQNameLocal(local) {
		return "", "", false
	}
	return ns, local, true
}

func isQNameLocal(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		ch := value[i]
		if i == 0 {
			if !isNameStartChar(ch) {
				return false
			}
		} else if !isNameChar(ch) {
			return false
		}
	}
	return value[len(value)-1] != '.'
}

func isNameStartChar(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || ch == '_'
}

func isNameChar(ch byte) bool {
	return isNameStartChar(ch) || (ch >= '0' && ch <= '9') || ch == '-' || ch == '.'
}
