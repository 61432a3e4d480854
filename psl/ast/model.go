package ast

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// Model is a model or view declaration.
type Model struct {
	Pos             lexer.Position
	Documentation   *CommentBlock     `parser:"@@?"`
	Keyword         string            `parser:"@(\"model\" | \"view\")"`
	Name            *Identifier       `parser:"@@"`
	Fields          []*Field          `parser:"\"{\" @@*"`
	BlockAttributes []*BlockAttribute `parser:"@@* \"}\""`
}

// GetName returns the model name.
func (m *Model) GetName() string {
	if m.Name == nil {
		return ""
	}
	return m.Name.Name
}

// GetDocumentation returns the model's doc comment text.
func (m *Model) GetDocumentation() string {
	if m.Documentation == nil {
		return ""
	}
	return m.Documentation.GetText()
}

// IsView reports whether this declaration is a view.
func (m *Model) IsView() bool {
	return m.Keyword == "view"
}

// FindField returns the field with the given name, or nil.
func (m *Model) FindField(name string) *Field {
	for _, f := range m.Fields {
		if f.GetName() == name {
			return f
		}
	}
	return nil
}

// BlockAttribute returns the first block attribute with the given name, or nil.
func (m *Model) BlockAttribute(name string) *BlockAttribute {
	for _, attr := range m.BlockAttributes {
		if attr.GetName() == name {
			return attr
		}
	}
	return nil
}

// FieldArity is the cardinality of a field.
type FieldArity int

const (
	// FieldArityRequired means the field always has a value.
	FieldArityRequired FieldArity = iota
	// FieldArityOptional means the field can be null (Type?).
	FieldArityOptional
	// FieldArityList means the field is an array (Type[]).
	FieldArityList
)

// String returns the schema suffix for the arity.
func (a FieldArity) String() string {
	switch a {
	case FieldArityOptional:
		return "?"
	case FieldArityList:
		return "[]"
	default:
		return ""
	}
}

// Field is a single field declaration inside a model.
type Field struct {
	Pos           lexer.Position
	Documentation *CommentBlock `parser:"@@?"`
	Name          *Identifier   `parser:"@@"`
	Type          *Identifier   `parser:"@@"`
	ListSuffix    *string       `parser:"@(\"[\" \"]\")?"`
	OptionalMark  *string       `parser:"@\"?\"?"`
	Attributes    []*Attribute  `parser:"@@*"`
}

// GetName returns the field name.
func (f *Field) GetName() string {
	if f.Name == nil {
		return ""
	}
	return f.Name.Name
}

// GetTypeName returns the declared type name.
func (f *Field) GetTypeName() string {
	if f.Type == nil {
		return ""
	}
	return f.Type.Name
}

// GetDocumentation returns the field's doc comment text.
func (f *Field) GetDocumentation() string {
	if f.Documentation == nil {
		return ""
	}
	return f.Documentation.GetText()
}

// Arity returns the field cardinality derived from the parsed suffixes.
func (f *Field) Arity() FieldArity {
	switch {
	case f.ListSuffix != nil:
		return FieldArityList
	case f.OptionalMark != nil:
		return FieldArityOptional
	default:
		return FieldArityRequired
	}
}

// Attribute returns the first attribute with the given name, or nil.
func (f *Field) Attribute(name string) *Attribute {
	for _, attr := range f.Attributes {
		if attr.GetName() == name {
			return attr
		}
	}
	return nil
}

// HasAttribute reports whether the field carries the named attribute.
func (f *Field) HasAttribute(name string) bool {
	return f.Attribute(name) != nil
}

// String returns a schema-like rendering of the field, for diagnostics.
func (f *Field) String() string {
	return fmt.Sprintf("%s %s%s", f.GetName(), f.GetTypeName(), f.Arity().String())
}
