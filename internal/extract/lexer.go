package extract

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SyntaxError is a lexical error in the source text.
type SyntaxError struct {
	Line int
	Col  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Msg)
}

// Lexer is the default Parser. It tokenizes just enough of the
// JavaScript / TypeScript grammar to find comments: string literals,
// template literals with nested substitutions, regular expression
// literals and, for JSX dialects, JSX elements. Comment-like text inside
// any of those is never reported as a comment.
//
// The zero value is ready to use.
type Lexer struct{}

// Parse returns the comments of source in order of appearance.
func (Lexer) Parse(source string, dialect Dialect) (*Program, error) {
	s := &scanner{
		src: strings.TrimPrefix(source, "\uFEFF"),
		jsx: dialect.AllowsJSX(),
		tsx: dialect == TSX,
	}
	s.skipHashbang()
	if _, err := s.code(false); err != nil {
		return nil, err
	}
	return &Program{Comments: s.comments}, nil
}

// tokClass is the class of the previous significant token. It decides
// whether a '/' starts a regular expression and whether '<' may open a
// JSX element.
type tokClass int

const (
	tokNone tokClass = iota
	tokPunct
	tokKeyword
	tokValue
)

// Keywords after which an expression (and so a regex literal) may follow.
var expressionKeywords = map[string]bool{
	"return":     true,
	"typeof":     true,
	"instanceof": true,
	"in":         true,
	"of":         true,
	"new":        true,
	"delete":     true,
	"void":       true,
	"throw":      true,
	"case":       true,
	"do":         true,
	"else":       true,
	"yield":      true,
	"await":      true,
}

// Keywords whose parenthesized head is followed by a statement, so a
// '/' after the closing ')' starts a regex.
var controlKeywords = map[string]bool{
	"if":    true,
	"while": true,
	"for":   true,
	"with":  true,
}

type scanner struct {
	src      string
	pos      int
	prev     tokClass
	jsx      bool
	tsx      bool
	comments []Comment

	// word and wordEnd locate the most recent identifier.
	word    string
	wordEnd int
	// parens records, per open '(', whether it opens a control head.
	parens []bool
}

func (s *scanner) peek(n int) byte {
	if s.pos+n < len(s.src) {
		return s.src[s.pos+n]
	}
	return 0
}

func (s *scanner) errorAt(off int, msg string) error {
	line, col := 1, 1
	for _, r := range s.src[:off] {
		if r == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return &SyntaxError{Line: line, Col: col, Msg: msg}
}

func (s *scanner) skipHashbang() {
	if !strings.HasPrefix(s.src, "#!") {
		return
	}
	s.pos = lineEnd(s.src, 0)
}

// code scans expressions and statements. When nested is set it stops
// after the '}' closing the enclosing substitution or JSX expression and
// reports closed=true; hitting EOF first reports closed=false.
func (s *scanner) code(nested bool) (closed bool, err error) {
	depth := 0
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v':
			s.pos++
		case c == '/' && s.peek(1) == '/':
			s.lineComment()
		case c == '/' && s.peek(1) == '*':
			if err := s.blockComment(); err != nil {
				return false, err
			}
		case c == '/':
			if s.prev == tokValue {
				s.pos++
				s.prev = tokPunct
				continue
			}
			if err := s.regex(); err != nil {
				return false, err
			}
			s.prev = tokValue
		case c == '"' || c == '\'':
			if err := s.str(c); err != nil {
				return false, err
			}
			s.prev = tokValue
		case c == '`':
			if err := s.template(); err != nil {
				return false, err
			}
			s.prev = tokValue
		case c == '{':
			depth++
			s.pos++
			s.prev = tokPunct
		case c == '}':
			s.pos++
			if depth == 0 && nested {
				return true, nil
			}
			if depth > 0 {
				depth--
			}
			s.prev = tokPunct
		case c == '(':
			s.parens = append(s.parens, s.opensControlHead())
			s.pos++
			s.prev = tokPunct
		case c == ')':
			s.pos++
			s.prev = tokValue
			if n := len(s.parens); n > 0 {
				if s.parens[n-1] {
					s.prev = tokPunct
				}
				s.parens = s.parens[:n-1]
			}
		case c == ']':
			s.pos++
			s.prev = tokValue
		case (c == '+' || c == '-') && s.peek(1) == c:
			// A postfix increment leaves the operand as the last value.
			s.pos += 2
			if s.prev != tokValue {
				s.prev = tokPunct
			}
		case c == '<' && s.jsx && s.prev != tokValue && s.startsJSX():
			if err := s.jsxElement(); err != nil {
				return false, err
			}
			s.prev = tokValue
		case isIdentStart(c):
			word := s.ident()
			s.word, s.wordEnd = word, s.pos
			if expressionKeywords[word] {
				s.prev = tokKeyword
			} else {
				s.prev = tokValue
			}
		case isDigit(c) || (c == '.' && isDigit(s.peek(1))):
			s.number()
			s.prev = tokValue
		case c >= utf8.RuneSelf:
			r, size := utf8.DecodeRuneInString(s.src[s.pos:])
			s.pos += size
			if unicode.IsSpace(r) {
				continue
			}
			s.prev = tokValue
		default:
			s.pos++
			s.prev = tokPunct
		}
	}
	return false, nil
}

// opensControlHead reports whether the '(' at the cursor directly
// follows if, while, for or with.
func (s *scanner) opensControlHead() bool {
	if !controlKeywords[s.word] || s.wordEnd > s.pos {
		return false
	}
	return strings.TrimSpace(s.src[s.wordEnd:s.pos]) == ""
}

func (s *scanner) lineComment() {
	start := s.pos + 2
	end := lineEnd(s.src, start)
	s.comments = append(s.comments, Comment{Text: s.src[start:end], Kind: LineComment})
	s.pos = end
}

func (s *scanner) blockComment() error {
	open := s.pos
	start := s.pos + 2
	idx := strings.Index(s.src[start:], "*/")
	if idx < 0 {
		return s.errorAt(open, "unterminated block comment")
	}
	s.comments = append(s.comments, Comment{Text: s.src[start : start+idx], Kind: BlockComment})
	s.pos = start + idx + 2
	return nil
}

func (s *scanner) str(quote byte) error {
	open := s.pos
	s.pos++
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case c == quote:
			s.pos++
			return nil
		case c == '\\':
			s.pos += 2
			if s.pos < len(s.src) && s.src[s.pos-1] == '\r' && s.src[s.pos] == '\n' {
				s.pos++
			}
		case c == '\n' || c == '\r':
			return s.errorAt(open, "unterminated string literal")
		default:
			s.pos++
		}
	}
	return s.errorAt(open, "unterminated string literal")
}

func (s *scanner) template() error {
	open := s.pos
	s.pos++
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case c == '`':
			s.pos++
			return nil
		case c == '\\':
			s.pos += 2
		case c == '$' && s.peek(1) == '{':
			s.pos += 2
			s.prev = tokPunct
			closed, err := s.code(true)
			if err != nil {
				return err
			}
			if !closed {
				return s.errorAt(open, "unterminated template literal")
			}
		default:
			s.pos++
		}
	}
	return s.errorAt(open, "unterminated template literal")
}

func (s *scanner) regex() error {
	open := s.pos
	s.pos++
	inClass := false
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case c == '\n' || c == '\r':
			return s.errorAt(open, "unterminated regular expression literal")
		case c == '\\':
			if n := s.peek(1); n == '\n' || n == '\r' {
				return s.errorAt(open, "unterminated regular expression literal")
			}
			s.pos += 2
		case c == '[':
			inClass = true
			s.pos++
		case c == ']':
			inClass = false
			s.pos++
		case c == '/' && !inClass:
			s.pos++
			for s.pos < len(s.src) && isIdentPart(s.src[s.pos]) {
				s.pos++
			}
			return nil
		default:
			s.pos++
		}
	}
	return s.errorAt(open, "unterminated regular expression literal")
}

func (s *scanner) ident() string {
	start := s.pos
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if isIdentPart(c) {
			s.pos++
			continue
		}
		if c == '\\' {
			s.pos += 2
			continue
		}
		if c >= utf8.RuneSelf {
			r, size := utf8.DecodeRuneInString(s.src[s.pos:])
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				s.pos += size
				continue
			}
		}
		break
	}
	return s.src[start:min(s.pos, len(s.src))]
}

func (s *scanner) number() {
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if isIdentPart(c) || c == '.' {
			s.pos++
			continue
		}
		break
	}
}

// startsJSX reports whether the '<' at the cursor opens a JSX element.
// In TSX, "<T,>" and "<T extends U>" are type parameter lists.
func (s *scanner) startsJSX() bool {
	n := s.peek(1)
	if n == '>' {
		return true
	}
	if !isIdentStart(n) {
		return false
	}
	if !s.tsx {
		return true
	}
	i := s.pos + 1
	for i < len(s.src) && isIdentPart(s.src[i]) {
		i++
	}
	for i < len(s.src) && (s.src[i] == ' ' || s.src[i] == '\t') {
		i++
	}
	if i < len(s.src) && s.src[i] == ',' {
		return false
	}
	rest := s.src[i:]
	if strings.HasPrefix(rest, "extends") && (len(rest) == 7 || !isIdentPart(rest[7])) {
		return false
	}
	return true
}

// jsxElement scans an element or fragment from its opening '<' through
// its closing tag.
func (s *scanner) jsxElement() error {
	open := s.pos
	s.pos++
	if s.peek(0) == '>' {
		s.pos++
		return s.jsxChildren(open)
	}
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case c == '/' && s.peek(1) == '>':
			s.pos += 2
			return nil
		case c == '/' && s.peek(1) == '/':
			s.lineComment()
		case c == '/' && s.peek(1) == '*':
			if err := s.blockComment(); err != nil {
				return err
			}
		case c == '>':
			s.pos++
			return s.jsxChildren(open)
		case c == '{':
			if err := s.jsxExpression(open); err != nil {
				return err
			}
		case c == '"' || c == '\'':
			if err := s.jsxAttrString(c); err != nil {
				return err
			}
		default:
			s.pos++
		}
	}
	return s.errorAt(open, "unterminated JSX element")
}

func (s *scanner) jsxChildren(open int) error {
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case c == '{':
			if err := s.jsxExpression(open); err != nil {
				return err
			}
		case c == '<' && s.peek(1) == '/':
			end := strings.IndexByte(s.src[s.pos:], '>')
			if end < 0 {
				return s.errorAt(open, "unterminated JSX element")
			}
			s.pos += end + 1
			return nil
		case c == '<':
			if err := s.jsxElement(); err != nil {
				return err
			}
		default:
			s.pos++
		}
	}
	return s.errorAt(open, "unterminated JSX element")
}

func (s *scanner) jsxExpression(open int) error {
	s.pos++
	s.prev = tokPunct
	closed, err := s.code(true)
	if err != nil {
		return err
	}
	if !closed {
		return s.errorAt(open, "unterminated JSX expression")
	}
	return nil
}

// jsxAttrString scans a JSX attribute value. JSX strings have no
// escapes and may span lines.
func (s *scanner) jsxAttrString(quote byte) error {
	open := s.pos
	end := strings.IndexByte(s.src[s.pos+1:], quote)
	if end < 0 {
		return s.errorAt(open, "unterminated JSX attribute string")
	}
	s.pos += end + 2
	return nil
}

// lineEnd returns the offset of the first line terminator at or after
// start, or len(src).
func lineEnd(src string, start int) int {
	for i := start; i < len(src); {
		c := src[i]
		if c == '\n' || c == '\r' {
			return i
		}
		if c >= utf8.RuneSelf {
			r, size := utf8.DecodeRuneInString(src[i:])
			if r == '\u2028' || r == '\u2029' {
				return i
			}
			i += size
			continue
		}
		i++
	}
	return len(src)
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || c == '\\' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) && c != '\\' || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
