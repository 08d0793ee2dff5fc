package xmltree

import (
	"fmt"
	"strconv"
	"strings"
)

// Document is a parsed XML file: the bytes before the root element, the
// root element itself, and any bytes after it.
type Document struct {
	Prolog  string
	Root    *Node
	Trailer string
}

// ParseError reports malformed markup with the byte offset of the problem.
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("xmltree: parse error at byte %d: %s", e.Offset, e.Msg)
}

// Parse builds a Document from raw XML bytes.
func Parse(data []byte) (*Document, error) {
	s := &scanner{data: data}
	return s.run()
}

type scanner struct {
	data []byte
	pos  int

	doc  Document
	root *Node
	cur  *Node // innermost open element, nil outside the root
}

func (s *scanner) errf(format string, args ...interface{}) error {
	return &ParseError{Offset: s.pos, Msg: fmt.Sprintf(format, args...)}
}

func (s *scanner) run() (*Document, error) {
	for s.pos < len(s.data) {
		if s.data[s.pos] != '<' {
			start := s.pos
			for s.pos < len(s.data) && s.data[s.pos] != '<' {
				s.pos++
			}
			s.text(string(s.data[start:s.pos]))
			continue
		}
		if s.pos+1 >= len(s.data) {
			return nil, s.errf("truncated markup")
		}
		switch s.data[s.pos+1] {
		case '?':
			raw, err := s.rawUntil("?>")
			if err != nil {
				return nil, err
			}
			s.text(raw)
		case '!':
			raw, err := s.declaration()
			if err != nil {
				return nil, err
			}
			s.text(raw)
		case '/':
			if err := s.endTag(); err != nil {
				return nil, err
			}
		default:
			if err := s.startTag(); err != nil {
				return nil, err
			}
		}
	}
	if s.root == nil {
		return nil, &ParseError{Offset: len(s.data), Msg: "no root element"}
	}
	if s.cur != nil {
		return nil, &ParseError{Offset: len(s.data), Msg: fmt.Sprintf("unclosed element <%s>", s.cur.Tag)}
	}
	s.doc.Root = s.root
	return &s.doc, nil
}

// text routes raw character data to the right holder: prolog before the
// root, trailer after it, otherwise the innermost open element following
// the lxml text/tail convention.
func (s *scanner) text(raw string) {
	if raw == "" {
		return
	}
	switch {
	case s.cur != nil:
		if len(s.cur.Children) == 0 {
			s.cur.Text += raw
		} else {
			s.cur.Children[len(s.cur.Children)-1].Tail += raw
		}
	case s.root == nil:
		s.doc.Prolog += raw
	default:
		s.doc.Trailer += raw
	}
}

// rawUntil consumes from the current position through the terminator and
// returns the raw bytes, terminator included.
func (s *scanner) rawUntil(term string) (string, error) {
	end := strings.Index(string(s.data[s.pos:]), term)
	if end < 0 {
		return "", s.errf("unterminated %q section", term)
	}
	raw := string(s.data[s.pos : s.pos+end+len(term)])
	s.pos += end + len(term)
	return raw, nil
}

// declaration consumes a <!...> construct: comment, CDATA or doctype.
func (s *scanner) declaration() (string, error) {
	rest := string(s.data[s.pos:])
	switch {
	case strings.HasPrefix(rest, "<!--"):
		return s.rawUntil("-->")
	case strings.HasPrefix(rest, "<![CDATA["):
		return s.rawUntil("]]>")
	default:
		// Doctype; internal subsets with brackets are not expected in
		// game saves, a plain '>' terminator is enough.
		return s.rawUntil(">")
	}
}

func (s *scanner) startTag() error {
	start := s.pos
	s.pos++ // consume '<'
	name := s.name()
	if name == "" {
		s.pos = start
		return s.errf("malformed start tag")
	}
	n := &Node{Tag: name}
	for {
		hadSpace := s.skipSpace()
		if s.pos >= len(s.data) {
			return s.errf("unterminated start tag <%s>", name)
		}
		switch s.data[s.pos] {
		case '>':
			s.pos++
			if err := s.attach(n); err != nil {
				return err
			}
			s.cur = n
			return nil
		case '/':
			if s.pos+1 >= len(s.data) || s.data[s.pos+1] != '>' {
				return s.errf("malformed empty-element tag <%s>", name)
			}
			s.pos += 2
			n.empty = true
			n.emptySpace = hadSpace
			if err := s.attach(n); err != nil {
				return err
			}
			return nil
		default:
			if !hadSpace {
				return s.errf("malformed start tag <%s>", name)
			}
			attr, err := s.attribute()
			if err != nil {
				return err
			}
			n.Attrs = append(n.Attrs, attr)
		}
	}
}

func (s *scanner) attach(n *Node) error {
	if s.cur != nil {
		n.Parent = s.cur
		s.cur.Children = append(s.cur.Children, n)
		return nil
	}
	if s.root != nil {
		return s.errf("second root element <%s>", n.Tag)
	}
	s.root = n
	return nil
}

func (s *scanner) endTag() error {
	s.pos += 2 // consume "</"
	name := s.name()
	s.skipSpace()
	if s.pos >= len(s.data) || s.data[s.pos] != '>' {
		return s.errf("malformed end tag </%s>", name)
	}
	s.pos++
	if s.cur == nil {
		return s.errf("unexpected end tag </%s>", name)
	}
	if s.cur.Tag != name {
		return s.errf("end tag </%s> does not match <%s>", name, s.cur.Tag)
	}
	s.cur = s.cur.Parent
	return nil
}

func (s *scanner) attribute() (Attr, error) {
	name := s.name()
	if name == "" {
		return Attr{}, s.errf("malformed attribute")
	}
	s.skipSpace()
	if s.pos >= len(s.data) || s.data[s.pos] != '=' {
		return Attr{}, s.errf("attribute %q missing value", name)
	}
	s.pos++
	s.skipSpace()
	if s.pos >= len(s.data) || (s.data[s.pos] != '"' && s.data[s.pos] != '\'') {
		return Attr{}, s.errf("attribute %q value not quoted", name)
	}
	q := s.data[s.pos]
	s.pos++
	start := s.pos
	for s.pos < len(s.data) && s.data[s.pos] != q {
		s.pos++
	}
	if s.pos >= len(s.data) {
		return Attr{}, s.errf("attribute %q value not terminated", name)
	}
	raw := string(s.data[start:s.pos])
	s.pos++
	return Attr{Name: name, raw: raw, q: q}, nil
}

func (s *scanner) name() string {
	start := s.pos
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' ||
			c == '=' || c == '>' || c == '/' || c == '<' {
			break
		}
		s.pos++
	}
	return string(s.data[start:s.pos])
}

func (s *scanner) skipSpace() bool {
	start := s.pos
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		if c != ' ' && c != '\t' && c != '\r' && c != '\n' {
			break
		}
		s.pos++
	}
	return s.pos > start
}

// escape encodes the characters that cannot appear literally in attribute
// values or character data.
func escape(s string) string {
	if !strings.ContainsAny(s, `&<>"`) {
		return s
	}
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}

// unescape decodes entity and character references. Unknown references are
// left untouched rather than rejected; the documents are externally
// authored and occasionally sloppy.
func unescape(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '&' {
			b.WriteByte(s[i])
			i++
			continue
		}
		end := strings.IndexByte(s[i:], ';')
		if end < 0 {
			b.WriteString(s[i:])
			break
		}
		ref := s[i+1 : i+end]
		switch {
		case ref == "amp":
			b.WriteByte('&')
		case ref == "lt":
			b.WriteByte('<')
		case ref == "gt":
			b.WriteByte('>')
		case ref == "quot":
			b.WriteByte('"')
		case ref == "apos":
			b.WriteByte('\'')
		case strings.HasPrefix(ref, "#x") || strings.HasPrefix(ref, "#X"):
			if v, err := strconv.ParseInt(ref[2:], 16, 32); err == nil {
				b.WriteRune(rune(v))
			} else {
				b.WriteString(s[i : i+end+1])
			}
		case strings.HasPrefix(ref, "#"):
			if v, err := strconv.ParseInt(ref[1:], 10, 32); err == nil {
				b.WriteRune(rune(v))
			} else {
				b.WriteString(s[i : i+end+1])
			}
		default:
			b.WriteString(s[i : i+end+1])
		}
		i += end + 1
	}
	return b.String()
}
