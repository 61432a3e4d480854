package ast

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// Attribute is a field-level attribute (@name or @name(args)).
type Attribute struct {
	Pos       lexer.Position
	Name      *Identifier    `parser:"\"@\" @@"`
	Arguments *ArgumentsList `parser:"(\"(\" @@ \")\")?"`
}

// GetName returns the attribute name.
func (a *Attribute) GetName() string {
	if a.Name == nil {
		return ""
	}
	return a.Name.Name
}

// Argument returns the argument with the given name, or the positional
// argument at the given index if no named argument matches. Returns nil
// when neither exists.
func (a *Attribute) Argument(name string, positional int) *Argument {
	if a.Arguments == nil {
		return nil
	}
	for _, arg := range a.Arguments.Arguments {
		if arg.GetName() == name {
			return arg
		}
	}
	if positional >= 0 {
		idx := 0
		for _, arg := range a.Arguments.Arguments {
			if arg.Name != nil {
				continue
			}
			if idx == positional {
				return arg
			}
			idx++
		}
	}
	return nil
}

// String returns the schema rendering of the attribute.
func (a *Attribute) String() string {
	args := ""
	if a.Arguments != nil && len(a.Arguments.Arguments) > 0 {
		args = "(" + a.Arguments.String() + ")"
	}
	return "@" + a.GetName() + args
}

// BlockAttribute is a block-level attribute (@@name or @@name(args)).
type BlockAttribute struct {
	Pos       lexer.Position
	Name      *Identifier    `parser:"\"@@\" @@"`
	Arguments *ArgumentsList `parser:"(\"(\" @@ \")\")?"`
}

// GetName returns the block attribute name.
func (b *BlockAttribute) GetName() string {
	if b.Name == nil {
		return ""
	}
	return b.Name.Name
}

// Argument behaves like Attribute.Argument for block attributes.
func (b *BlockAttribute) Argument(name string, positional int) *Argument {
	if b.Arguments == nil {
		return nil
	}
	for _, arg := range b.Arguments.Arguments {
		if arg.GetName() == name {
			return arg
		}
	}
	if positional >= 0 {
		idx := 0
		for _, arg := range b.Arguments.Arguments {
			if arg.Name != nil {
				continue
			}
			if idx == positional {
				return arg
			}
			idx++
		}
	}
	return nil
}

// ArgumentsList is a parenthesized, comma-separated argument list.
type ArgumentsList struct {
	Pos           lexer.Position
	Arguments     []*Argument `parser:"(@@ (\",\" @@)*)?"`
	TrailingComma bool        `parser:"@\",\"?"`
}

// String returns the schema rendering of the list.
func (a *ArgumentsList) String() string {
	if a == nil || len(a.Arguments) == 0 {
		return ""
	}
	out := ""
	for i, arg := range a.Arguments {
		if i > 0 {
			out += ", "
		}
		out += arg.String()
	}
	return out
}

// Argument is a single named or positional argument.
type Argument struct {
	Pos   lexer.Position
	Name  *Identifier `parser:"(@@ \":\")?"`
	Value Expression  `parser:"@@"`
}

// GetName returns the argument name, or "" for positional arguments.
func (a *Argument) GetName() string {
	if a.Name == nil {
		return ""
	}
	return a.Name.Name
}

// String returns the schema rendering of the argument.
func (a *Argument) String() string {
	if a.Name != nil {
		return fmt.Sprintf("%s: %s", a.Name.Name, a.Value.String())
	}
	return a.Value.String()
}
