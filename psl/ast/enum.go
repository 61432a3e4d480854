package ast

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Enum is an enum declaration.
type Enum struct {
	Pos             lexer.Position
	Documentation   *CommentBlock     `parser:"@@?"`
	Keyword         string            `parser:"@\"enum\""`
	Name            *Identifier       `parser:"@@"`
	Values          []*EnumValue      `parser:"\"{\" @@*"`
	BlockAttributes []*BlockAttribute `parser:"@@* \"}\""`
}

// GetName returns the enum name.
func (e *Enum) GetName() string {
	if e.Name == nil {
		return ""
	}
	return e.Name.Name
}

// GetDocumentation returns the enum's doc comment text.
func (e *Enum) GetDocumentation() string {
	if e.Documentation == nil {
		return ""
	}
	return e.Documentation.GetText()
}

// BlockAttribute returns the first block attribute with the given name, or nil.
func (e *Enum) BlockAttribute(name string) *BlockAttribute {
	for _, attr := range e.BlockAttributes {
		if attr.GetName() == name {
			return attr
		}
	}
	return nil
}

// EnumValue is a single value inside an enum block.
type EnumValue struct {
	Pos           lexer.Position
	Documentation *CommentBlock `parser:"@@?"`
	Name          *Identifier   `parser:"@@"`
	Attributes    []*Attribute  `parser:"@@*"`
}

// GetName returns the enum value name.
func (v *EnumValue) GetName() string {
	if v.Name == nil {
		return ""
	}
	return v.Name.Name
}

// Attribute returns the first attribute with the given name, or nil.
func (v *EnumValue) Attribute(name string) *Attribute {
	for _, attr := range v.Attributes {
		if attr.GetName() == name {
			return attr
		}
	}
	return nil
}
