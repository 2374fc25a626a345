// Package extract reads source files and returns their comments.
//
// Tokenizing is delegated to a Parser. The default Parser is Lexer; any
// tokenizer that never reports comment-like text inside string, template,
// regular expression or JSX literals can be substituted.
package extract

import (
	"os"

	"github.com/unbound-force/cursecov/internal/fault"
)

// CommentKind distinguishes line comments from block comments.
type CommentKind int

// Comment kinds.
const (
	LineComment CommentKind = iota + 1
	BlockComment
)

func (k CommentKind) String() string {
	switch k {
	case LineComment:
		return "line"
	case BlockComment:
		return "block"
	default:
		return "unknown"
	}
}

// Comment is one comment span. Text excludes the delimiters: "//" for
// line comments, "/*" and "*/" for block comments.
type Comment struct {
	Text string
	Kind CommentKind
}

// Program is the result of parsing one source text.
type Program struct {
	Comments []Comment
}

// Parser turns source text of a given dialect into its comments.
type Parser interface {
	Parse(source string, dialect Dialect) (*Program, error)
}

// Extractor reads files and extracts their comments with Parser.
type Extractor struct {
	// Parser tokenizes source text. Nil means Lexer.
	Parser Parser
}

// New returns an Extractor using the default Lexer.
func New() *Extractor {
	return &Extractor{Parser: Lexer{}}
}

// Extract returns the ordered comments of the file at path.
//
// The dialect is decided from the extension before the file is opened,
// so an unsupported file is never read. Errors are fault.Dialect,
// fault.Filesystem or fault.Parse.
func (e *Extractor) Extract(path string) ([]Comment, error) {
	dialect, err := DialectFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fault.New(fault.Filesystem, path, err)
	}

	p := e.Parser
	if p == nil {
		p = Lexer{}
	}
	prog, err := p.Parse(string(data), dialect)
	if err != nil {
		return nil, fault.New(fault.Parse, path, err)
	}
	return prog.Comments, nil
}
