package results

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

type eventKind uint8

const (
	eventStart eventKind = iota + 1
	eventEnd
	eventText
	eventEOF
)

func (k eventKind) String() string {
	switch k {
	case eventStart:
		return "start"
	case eventEnd:
		return "end"
	case eventText:
		return "text"
	case eventEOF:
		return "eof"
	default:
		return "unknown"
	}
}

// event is what the state machines consume. A self-closing element is a
// single start event with selfClosing set and no matching end event.
type event struct {
	kind        eventKind
	name        xml.Name
	attrs       []xml.Attr
	selfClosing bool
	text        string
	truncated   bool // eof came from a document cut short
	offset      int64
}

func (e event) attr(space, local string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name.Local == local && a.Name.Space == space {
			return a.Value, true
		}
	}
	return "", false
}

// lang returns the xml:lang attribute. encoding/xml reports the reserved
// prefix as the XML namespace, but a bare "xml" space is accepted as well.
func (e event) lang() (string, bool) {
	if v, ok := e.attr(xmlNamespace, "lang"); ok {
		return v, true
	}
	return e.attr("xml", "lang")
}

func (e event) isWhitespace() bool {
	return e.kind == eventText && strings.TrimSpace(e.text) == ""
}

// describe names the event for error messages.
func (e event) describe() string {
	switch e.kind {
	case eventStart:
		if e.selfClosing {
			return "<" + e.name.Local + "/>"
		}
		return "<" + e.name.Local + ">"
	case eventEnd:
		return "</" + e.name.Local + ">"
	case eventText:
		return "text " + quoteShort(e.text)
	default:
		return "end of document"
	}
}

func quoteShort(s string) string {
	const limit = 32
	if len(s) > limit {
		s = s[:limit] + "..."
	}
	return `"` + s + `"`
}

// eventSource turns encoding/xml tokens into events. It folds a start tag
// followed immediately by its end tag into one self-closing start, and joins
// adjacent character data (CDATA sections, text around comments) into one
// text event.
type eventSource struct {
	dec          *xml.Decoder
	peeked       xml.Token
	peekedOffset int64
	err          error // first tokenizer error; sticky
	offset       int64 // offset of the token last returned by token
}

func newEventSource(r io.Reader) *eventSource {
	return &eventSource{dec: xml.NewDecoder(r)}
}

func (s *eventSource) token() (xml.Token, error) {
	if s.peeked != nil {
		tok := s.peeked
		s.peeked = nil
		s.offset = s.peekedOffset
		return tok, nil
	}
	if s.err != nil {
		return nil, s.err
	}
	s.offset = s.dec.InputOffset()
	tok, err := s.dec.Token()
	if err != nil {
		s.err = err
		return nil, err
	}
	return xml.CopyToken(tok), nil
}

// peek returns the next token without consuming it, or nil when the
// tokenizer failed. The failure is reported by the following token call.
func (s *eventSource) peek() xml.Token {
	if s.peeked != nil {
		return s.peeked
	}
	if s.err != nil {
		return nil
	}
	s.peekedOffset = s.dec.InputOffset()
	tok, err := s.dec.Token()
	if err != nil {
		s.err = err
		return nil
	}
	s.peeked = xml.CopyToken(tok)
	return s.peeked
}

// next returns the next event. Reader errors are returned unchanged; XML
// syntax errors become *SyntaxError values of kind ErrInvalidXML.
func (s *eventSource) next() (event, error) {
	for {
		tok, err := s.token()
		if err != nil {
			return s.endOfInput(err)
		}
		offset := s.offset
		switch tok := tok.(type) {
		case xml.StartElement:
			ev := event{kind: eventStart, name: tok.Name, attrs: tok.Attr, offset: offset}
			end := s.dec.InputOffset()
			if _, ok := s.peek().(xml.EndElement); ok && s.dec.InputOffset() == end {
				s.peeked = nil
				ev.selfClosing = true
			}
			return ev, nil
		case xml.EndElement:
			return event{kind: eventEnd, name: tok.Name, offset: offset}, nil
		case xml.CharData:
			text := string(tok)
			for {
				next := s.peek()
				if data, ok := next.(xml.CharData); ok {
					text += string(data)
				} else if !isIgnorable(next) {
					break
				}
				s.peeked = nil
			}
			return event{kind: eventText, text: text, offset: offset}, nil
		}
		// Comments, processing instructions and directives carry nothing.
	}
}

func isIgnorable(tok xml.Token) bool {
	switch tok.(type) {
	case xml.Comment, xml.ProcInst, xml.Directive:
		return true
	default:
		return false
	}
}

func (s *eventSource) endOfInput(err error) (event, error) {
	offset := s.dec.InputOffset()
	switch {
	case err == io.EOF:
		return event{kind: eventEOF, offset: offset}, nil
	case isTruncation(err):
		return event{kind: eventEOF, truncated: true, offset: offset}, nil
	}
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		return event{}, &SyntaxError{Kind: ErrInvalidXML, Msg: "tokenizer rejected input", Offset: offset, Err: err}
	}
	return event{}, err
}

// isTruncation reports whether encoding/xml hit the end of input with
// elements still open.
func isTruncation(err error) bool {
	var syntaxErr *xml.SyntaxError
	return errors.As(err, &syntaxErr) && syntaxErr.Msg == "unexpected EOF"
}
