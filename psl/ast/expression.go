package ast

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Expression is a union over the value forms that can appear in attribute
// arguments and config block properties.
type Expression interface {
	isExpression()
	Span() lexer.Position
	String() string

	AsStringValue() (*StringValue, bool)
	AsConstantValue() (*ConstantValue, bool)
	AsFunction() (*FunctionCall, bool)
	AsArray() (*ArrayExpression, bool)
}

// StringValue is a quoted string literal. The parser unquotes the token, so
// Value holds the plain text.
type StringValue struct {
	Pos   lexer.Position
	Value string `parser:"@String"`
}

func (s *StringValue) isExpression()        {}
func (s *StringValue) Span() lexer.Position { return s.Pos }

// String returns the quoted rendering of the literal.
func (s *StringValue) String() string { return fmt.Sprintf("%q", s.Value) }

// NumericValue is an integer or float literal, kept as source text.
type NumericValue struct {
	Pos   lexer.Position
	Value string `parser:"@Number"`
}

func (n *NumericValue) isExpression()        {}
func (n *NumericValue) Span() lexer.Position { return n.Pos }
func (n *NumericValue) String() string       { return n.Value }

// ConstantValue is a bare identifier value (true, false, enum values,
// field references).
type ConstantValue struct {
	Pos   lexer.Position
	Value string `parser:"@Ident"`
}

func (c *ConstantValue) isExpression()        {}
func (c *ConstantValue) Span() lexer.Position { return c.Pos }
func (c *ConstantValue) String() string       { return c.Value }

// FunctionCall is a call expression such as env("DATABASE_URL") or now().
type FunctionCall struct {
	Pos       lexer.Position
	Name      string         `parser:"@Ident"`
	Arguments *ArgumentsList `parser:"\"(\" @@? \")\""`
}

func (f *FunctionCall) isExpression()        {}
func (f *FunctionCall) Span() lexer.Position { return f.Pos }

// String returns the schema rendering of the call.
func (f *FunctionCall) String() string {
	args := ""
	if f.Arguments != nil {
		args = f.Arguments.String()
	}
	return fmt.Sprintf("%s(%s)", f.Name, args)
}

// ArrayExpression is an array literal such as [authorId] or [1, 2, 3].
type ArrayExpression struct {
	Pos      lexer.Position
	Elements []Expression `parser:"\"[\" (@@ (\",\" @@)*)? \"]\""`
}

func (a *ArrayExpression) isExpression()        {}
func (a *ArrayExpression) Span() lexer.Position { return a.Pos }

// String returns the schema rendering of the array.
func (a *ArrayExpression) String() string {
	parts := make([]string, len(a.Elements))
	for i, elem := range a.Elements {
		parts[i] = elem.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ConstantNames returns the identifier elements of the array. Non-constant
// elements are skipped.
func (a *ArrayExpression) ConstantNames() []string {
	var names []string
	for _, elem := range a.Elements {
		if c, ok := elem.AsConstantValue(); ok {
			names = append(names, c.Value)
		}
	}
	return names
}

func (s *StringValue) AsStringValue() (*StringValue, bool)     { return s, true }
func (n *NumericValue) AsStringValue() (*StringValue, bool)    { return nil, false }
func (c *ConstantValue) AsStringValue() (*StringValue, bool)   { return nil, false }
func (f *FunctionCall) AsStringValue() (*StringValue, bool)    { return nil, false }
func (a *ArrayExpression) AsStringValue() (*StringValue, bool) { return nil, false }

func (s *StringValue) AsConstantValue() (*ConstantValue, bool)     { return nil, false }
func (n *NumericValue) AsConstantValue() (*ConstantValue, bool)    { return nil, false }
func (c *ConstantValue) AsConstantValue() (*ConstantValue, bool)   { return c, true }
func (f *FunctionCall) AsConstantValue() (*ConstantValue, bool)    { return nil, false }
func (a *ArrayExpression) AsConstantValue() (*ConstantValue, bool) { return nil, false }

func (s *StringValue) AsFunction() (*FunctionCall, bool)     { return nil, false }
func (n *NumericValue) AsFunction() (*FunctionCall, bool)    { return nil, false }
func (c *ConstantValue) AsFunction() (*FunctionCall, bool)   { return nil, false }
func (f *FunctionCall) AsFunction() (*FunctionCall, bool)    { return f, true }
func (a *ArrayExpression) AsFunction() (*FunctionCall, bool) { return nil, false }

func (s *StringValue) AsArray() (*ArrayExpression, bool)     { return nil, false }
func (n *NumericValue) AsArray() (*ArrayExpression, bool)    { return nil, false }
func (c *ConstantValue) AsArray() (*ArrayExpression, bool)   { return nil, false }
func (f *FunctionCall) AsArray() (*ArrayExpression, bool)    { return nil, false }
func (a *ArrayExpression) AsArray() (*ArrayExpression, bool) { return a, true }
