package ast

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ConfigBlockProperty is a key = value property inside a datasource or
// generator block.
type ConfigBlockProperty struct {
	Pos   lexer.Position
	Name  *Identifier `parser:"@@"`
	Value Expression  `parser:"\"=\" @@"`
}

// GetName returns the property name.
func (p *ConfigBlockProperty) GetName() string {
	if p.Name == nil {
		return ""
	}
	return p.Name.Name
}

// StringValue returns the property value as a plain string, or "" when the
// value is not a string literal.
func (p *ConfigBlockProperty) StringValue() string {
	if s, ok := p.Value.AsStringValue(); ok {
		return s.Value
	}
	return ""
}

// SourceConfig is a datasource block.
type SourceConfig struct {
	Pos           lexer.Position
	Documentation *CommentBlock          `parser:"@@?"`
	Keyword       string                 `parser:"@\"datasource\""`
	Name          *Identifier            `parser:"@@"`
	Properties    []*ConfigBlockProperty `parser:"\"{\" @@* \"}\""`
}

// GetName returns the datasource name.
func (s *SourceConfig) GetName() string {
	if s.Name == nil {
		return ""
	}
	return s.Name.Name
}

// GetDocumentation returns the datasource's doc comment text.
func (s *SourceConfig) GetDocumentation() string {
	if s.Documentation == nil {
		return ""
	}
	return s.Documentation.GetText()
}

// GetProperty finds a property by name, or nil.
func (s *SourceConfig) GetProperty(name string) *ConfigBlockProperty {
	for _, prop := range s.Properties {
		if prop.GetName() == name {
			return prop
		}
	}
	return nil
}

// GeneratorConfig is a generator block.
type GeneratorConfig struct {
	Pos           lexer.Position
	Documentation *CommentBlock          `parser:"@@?"`
	Keyword       string                 `parser:"@\"generator\""`
	Name          *Identifier            `parser:"@@"`
	Properties    []*ConfigBlockProperty `parser:"\"{\" @@* \"}\""`
}

// GetName returns the generator name.
func (g *GeneratorConfig) GetName() string {
	if g.Name == nil {
		return ""
	}
	return g.Name.Name
}

// GetDocumentation returns the generator's doc comment text.
func (g *GeneratorConfig) GetDocumentation() string {
	if g.Documentation == nil {
		return ""
	}
	return g.Documentation.GetText()
}

// GetProperty finds a property by name, or nil.
func (g *GeneratorConfig) GetProperty(name string) *ConfigBlockProperty {
	for _, prop := range g.Properties {
		if prop.GetName() == name {
			return prop
		}
	}
	return nil
}
