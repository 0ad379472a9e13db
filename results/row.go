package results

import (
	"strings"

	"github.com/geoknoesis/rdfio/rdf"
)

type rowState uint8

const (
	rowStart rowState = iota
	rowInResult
	rowInBinding
	rowInURI
	rowInBNode
	rowInLiteral
)

func (s rowState) String() string {
	switch s {
	case rowStart:
		return "row start"
	case rowInResult:
		return "result"
	case rowInBinding:
		return "binding"
	case rowInURI:
		return "uri"
	case rowInBNode:
		return "bnode"
	case rowInLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

type rowOutcome uint8

const (
	rowContinue rowOutcome = iota
	rowReady
	rowsExhausted
)

// rowMachine decodes <result> elements one event at a time. It resets to
// rowStart after every row; blank node labels resolve through the table
// shared by all rows of the document.
type rowMachine struct {
	state  rowState
	slots  map[string]int
	width  int
	bnodes *BlankNodeTable

	row     Row
	slot    int      // variable index of the open binding
	value   rdf.Term // term captured for the open binding
	text    strings.Builder
	lang    string
	hasLang bool
	dtype   string
	hasType bool
}

func newRowMachine(slots map[string]int, width int, bnodes *BlankNodeTable) *rowMachine {
	return &rowMachine{slots: slots, width: width, bnodes: bnodes}
}

// step consumes one event. On rowReady the finished row is returned.
func (m *rowMachine) step(ev event) (rowOutcome, Row, error) {
	if ev.kind == eventStart && !inResultsNamespace(ev.name) {
		return rowContinue, nil, syntaxErrorf(ErrUnexpectedNamespace, ev.offset, "element %s has namespace %q, want %q", ev.describe(), ev.name.Space, Namespace)
	}
	if ev.kind == eventEOF {
		if m.state == rowStart && !ev.truncated {
			return rowsExhausted, nil, nil
		}
		return rowContinue, nil, syntaxErrorf(ErrIncompleteDocument, ev.offset, "document ended in %s state", m.state)
	}

	switch m.state {
	case rowStart:
		switch {
		case ev.isWhitespace():
			return rowContinue, nil, nil
		case isEnd(ev, "results"):
			return rowsExhausted, nil, nil
		case isStart(ev, "result"):
			m.row = make(Row, m.width)
			if ev.selfClosing {
				return rowReady, m.finishRow(), nil
			}
			m.state = rowInResult
			return rowContinue, nil, nil
		}
	case rowInResult:
		switch {
		case ev.isWhitespace():
			return rowContinue, nil, nil
		case isStart(ev, "binding"):
			return rowContinue, nil, m.openBinding(ev)
		case isEnd(ev, "result"):
			return rowReady, m.finishRow(), nil
		}
	case rowInBinding:
		switch {
		case ev.isWhitespace():
			return rowContinue, nil, nil
		case isStart(ev, "uri"), isStart(ev, "bnode"), isStart(ev, "literal"):
			return rowContinue, nil, m.openValue(ev)
		case isEnd(ev, "binding"):
			if m.value == nil {
				return rowContinue, nil, syntaxErrorf(ErrMissingBindingValue, ev.offset, "binding for %q has no value", m.bindingName())
			}
			m.row[m.slot] = m.value
			m.value = nil
			m.state = rowInResult
			return rowContinue, nil, nil
		}
	case rowInURI, rowInBNode, rowInLiteral:
		switch {
		case ev.kind == eventText:
			m.text.WriteString(ev.text)
			return rowContinue, nil, nil
		case ev.kind == eventEnd:
			return rowContinue, nil, m.closeValue(ev.offset)
		}
	}
	if ev.kind == eventText {
		return rowContinue, nil, syntaxErrorf(ErrUnexpectedText, ev.offset, "unexpected %s in %s state", ev.describe(), m.state)
	}
	return rowContinue, nil, syntaxErrorf(ErrUnexpectedTag, ev.offset, "unexpected %s in %s state", ev.describe(), m.state)
}

func (m *rowMachine) openBinding(ev event) error {
	name, ok := ev.attr("", "name")
	if !ok {
		return syntaxErrorf(ErrMissingAttribute, ev.offset, "<binding> without name attribute")
	}
	slot, ok := m.slots[name]
	if !ok {
		return syntaxErrorf(ErrUnknownVariable, ev.offset, "binding names undeclared variable %q", name)
	}
	if m.row[slot] != nil {
		return syntaxErrorf(ErrDuplicateBindingValue, ev.offset, "variable %q bound twice in one result", name)
	}
	if ev.selfClosing {
		return syntaxErrorf(ErrMissingBindingValue, ev.offset, "binding for %q has no value", name)
	}
	m.slot = slot
	m.value = nil
	m.state = rowInBinding
	return nil
}

func (m *rowMachine) openValue(ev event) error {
	if m.value != nil {
		return syntaxErrorf(ErrDuplicateBindingValue, ev.offset, "binding for %q has a second value %s", m.bindingName(), ev.describe())
	}
	m.text.Reset()
	m.lang, m.hasLang = "", false
	m.dtype, m.hasType = "", false
	switch ev.name.Local {
	case "uri":
		m.state = rowInURI
	case "bnode":
		m.state = rowInBNode
	default:
		m.state = rowInLiteral
		m.lang, m.hasLang = ev.lang()
		m.dtype, m.hasType = ev.attr("", "datatype")
	}
	if ev.selfClosing {
		return m.closeValue(ev.offset)
	}
	return nil
}

// closeValue builds the captured term and returns to the binding.
func (m *rowMachine) closeValue(offset int64) error {
	term, err := m.buildTerm(offset)
	if err != nil {
		return err
	}
	m.value = term
	m.text.Reset()
	m.state = rowInBinding
	return nil
}

func (m *rowMachine) buildTerm(offset int64) (rdf.Term, error) {
	switch m.state {
	case rowInURI:
		iri, err := rdf.NewIRI(strings.TrimSpace(m.text.String()))
		if err != nil {
			return nil, &SyntaxError{Kind: ErrInvalidTerm, Msg: "invalid <uri> value", Offset: offset, Err: err}
		}
		return iri, nil
	case rowInBNode:
		label := strings.TrimSpace(m.text.String())
		if label == "" {
			return nil, syntaxErrorf(ErrInvalidTerm, offset, "empty <bnode> label")
		}
		return m.bnodes.Resolve(label), nil
	default:
		return buildLiteral(m.text.String(), m.lang, m.hasLang, m.dtype, m.hasType, offset)
	}
}

// buildLiteral applies datatype, then language, then plain. A datatype present
// together with xml:lang wins over it.
func buildLiteral(lexical, lang string, hasLang bool, dtype string, hasType bool, offset int64) (rdf.Term, error) {
	switch {
	case hasType:
		datatype, err := rdf.NewIRI(dtype)
		if err != nil {
			return nil, &SyntaxError{Kind: ErrInvalidTerm, Msg: "invalid literal datatype", Offset: offset, Err: err}
		}
		return rdf.NewTypedLiteral(lexical, datatype), nil
	case hasLang:
		if lang == "" {
			return nil, syntaxErrorf(ErrInvalidTerm, offset, "empty xml:lang on literal")
		}
		return rdf.NewLangLiteral(lexical, lang), nil
	default:
		return rdf.NewLiteral(lexical), nil
	}
}

func (m *rowMachine) finishRow() Row {
	row := m.row
	m.row = nil
	m.value = nil
	m.state = rowStart
	return row
}

func (m *rowMachine) bindingName() string {
	for name, slot := range m.slots {
		if slot == m.slot {
			return name
		}
	}
	return ""
}
