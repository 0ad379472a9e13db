package results

import (
	"encoding/xml"
	"strings"
)

type headerState uint8

const (
	headerStart headerState = iota
	headerInSparql
	headerInHead
	headerAfterHead
	headerInBoolean
)

func (s headerState) String() string {
	switch s {
	case headerStart:
		return "start"
	case headerInSparql:
		return "sparql"
	case headerInHead:
		return "head"
	case headerAfterHead:
		return "after head"
	case headerInBoolean:
		return "boolean"
	default:
		return "unknown"
	}
}

type headerOutcome uint8

const (
	headerContinue headerOutcome = iota
	headerBoolean
	headerSolutions      // <results> is open; rows follow
	headerEmptySolutions // <results/>
)

// headerMachine decodes the document prologue. step consumes one event and
// never reads input, so it can be driven by any event sequence.
type headerMachine struct {
	state     headerState
	variables []Variable
	seen      map[string]bool
	answer    bool
}

func newHeaderMachine() *headerMachine {
	return &headerMachine{seen: make(map[string]bool)}
}

func (m *headerMachine) step(ev event) (headerOutcome, error) {
	if ev.kind == eventEOF {
		return headerContinue, syntaxErrorf(ErrIncompleteDocument, ev.offset, "document ended in %s state", m.state)
	}
	if ev.kind == eventStart && !inResultsNamespace(ev.name) {
		return headerContinue, syntaxErrorf(ErrUnexpectedNamespace, ev.offset, "element %s has namespace %q, want %q", ev.describe(), ev.name.Space, Namespace)
	}
	if m.state != headerInBoolean && ev.isWhitespace() {
		return headerContinue, nil
	}

	switch m.state {
	case headerStart:
		if isStart(ev, "sparql") {
			if ev.selfClosing {
				return headerContinue, syntaxErrorf(ErrIncompleteDocument, ev.offset, "empty <sparql> element")
			}
			m.state = headerInSparql
			return headerContinue, nil
		}
	case headerInSparql:
		if isStart(ev, "head") {
			if ev.selfClosing {
				m.state = headerAfterHead
			} else {
				m.state = headerInHead
			}
			return headerContinue, nil
		}
	case headerInHead:
		switch {
		case isStart(ev, "variable"):
			if !ev.selfClosing {
				return headerContinue, syntaxErrorf(ErrMustBeSelfClosing, ev.offset, "<variable> must be self-closing")
			}
			return headerContinue, m.declare(ev)
		case isStart(ev, "link"):
			if !ev.selfClosing {
				return headerContinue, syntaxErrorf(ErrMustBeSelfClosing, ev.offset, "<link> must be self-closing")
			}
			return headerContinue, nil
		case isEnd(ev, "head"):
			m.state = headerAfterHead
			return headerContinue, nil
		}
	case headerAfterHead:
		switch {
		case isStart(ev, "boolean") && !ev.selfClosing:
			m.state = headerInBoolean
			return headerContinue, nil
		case isStart(ev, "link") && ev.selfClosing:
			return headerContinue, nil
		case isStart(ev, "results"):
			if ev.selfClosing {
				return headerEmptySolutions, nil
			}
			return headerSolutions, nil
		}
	case headerInBoolean:
		if ev.kind == eventText {
			switch strings.TrimSpace(ev.text) {
			case "true":
				m.answer = true
				return headerBoolean, nil
			case "false":
				m.answer = false
				return headerBoolean, nil
			}
			return headerContinue, syntaxErrorf(ErrUnexpectedText, ev.offset, "boolean value must be true or false, got %s", quoteShort(ev.text))
		}
	}
	if ev.kind == eventText {
		return headerContinue, syntaxErrorf(ErrUnexpectedText, ev.offset, "unexpected %s in %s state", ev.describe(), m.state)
	}
	return headerContinue, syntaxErrorf(ErrUnexpectedTag, ev.offset, "unexpected %s in %s state", ev.describe(), m.state)
}

func (m *headerMachine) declare(ev event) error {
	name, ok := ev.attr("", "name")
	if !ok {
		return syntaxErrorf(ErrMissingAttribute, ev.offset, "<variable> without name attribute")
	}
	if m.seen[name] {
		return syntaxErrorf(ErrDuplicateVariable, ev.offset, "variable %q declared twice", name)
	}
	m.seen[name] = true
	m.variables = append(m.variables, Variable{Name: name})
	return nil
}

// index maps variable names to row slots.
func (m *headerMachine) index() map[string]int {
	idx := make(map[string]int, len(m.variables))
	for i, v := range m.variables {
		idx[v.Name] = i
	}
	return idx
}

// inResultsNamespace accepts unqualified vocabulary as well as the results
// namespace. Only an element in some other namespace is foreign.
func inResultsNamespace(name xml.Name) bool {
	return name.Space == "" || name.Space == Namespace
}

func isStart(ev event, local string) bool {
	return ev.kind == eventStart && ev.name.Local == local
}

func isEnd(ev event, local string) bool {
	return ev.kind == eventEnd && ev.name.Local == local
}
