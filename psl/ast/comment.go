package ast

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Identifier is a named identifier, possibly dotted (e.g. "db.Uuid").
type Identifier struct {
	Pos  lexer.Position
	Name string `parser:"(@Ident | @Keyword) (@\".\" (@Ident | @Keyword))*"`
}

// String returns the identifier name.
func (i *Identifier) String() string {
	if i == nil {
		return ""
	}
	return i.Name
}

// Comment is a single documentation comment line (///).
type Comment struct {
	Pos  lexer.Position
	Text string `parser:"@DocComment"`
}

// CommentBlock is a run of consecutive doc comment lines.
type CommentBlock struct {
	Comments []*Comment `parser:"@@*"`
}

// GetText returns the comment text with the leading "///" markers stripped.
func (c *CommentBlock) GetText() string {
	if c == nil || len(c.Comments) == 0 {
		return ""
	}
	lines := make([]string, len(c.Comments))
	for i, comment := range c.Comments {
		text := strings.TrimPrefix(comment.Text, "///")
		lines[i] = strings.TrimPrefix(text, " ")
	}
	return strings.Join(lines, "\n")
}
