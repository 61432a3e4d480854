// Package ast defines the syntax tree for Prisma Schema Language documents.
package ast

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Top is a union interface over all top-level schema declarations.
type Top interface {
	isTop()
	GetName() string
	GetDocumentation() string
	TopPos() lexer.Position
}

func (m *Model) isTop()                 {}
func (m *Model) TopPos() lexer.Position { return m.Pos }

func (e *Enum) isTop()                 {}
func (e *Enum) TopPos() lexer.Position { return e.Pos }

func (s *SourceConfig) isTop()                 {}
func (s *SourceConfig) TopPos() lexer.Position { return s.Pos }

func (g *GeneratorConfig) isTop()                 {}
func (g *GeneratorConfig) TopPos() lexer.Position { return g.Pos }

// SchemaAst is a complete parsed schema document.
type SchemaAst struct {
	Tops []Top
}

// Models returns all model declarations in declaration order.
func (s *SchemaAst) Models() []*Model {
	var result []*Model
	for _, top := range s.Tops {
		if model, ok := top.(*Model); ok {
			result = append(result, model)
		}
	}
	return result
}

// Enums returns all enum declarations in declaration order.
func (s *SchemaAst) Enums() []*Enum {
	var result []*Enum
	for _, top := range s.Tops {
		if enum, ok := top.(*Enum); ok {
			result = append(result, enum)
		}
	}
	return result
}

// Sources returns all datasource blocks.
func (s *SchemaAst) Sources() []*SourceConfig {
	var result []*SourceConfig
	for _, top := range s.Tops {
		if src, ok := top.(*SourceConfig); ok {
			result = append(result, src)
		}
	}
	return result
}

// Generators returns all generator blocks.
func (s *SchemaAst) Generators() []*GeneratorConfig {
	var result []*GeneratorConfig
	for _, top := range s.Tops {
		if gen, ok := top.(*GeneratorConfig); ok {
			result = append(result, gen)
		}
	}
	return result
}

// FindModel returns the model with the given name, or nil.
func (s *SchemaAst) FindModel(name string) *Model {
	for _, top := range s.Tops {
		if model, ok := top.(*Model); ok && model.GetName() == name {
			return model
		}
	}
	return nil
}

// FindEnum returns the enum with the given name, or nil.
func (s *SchemaAst) FindEnum(name string) *Enum {
	for _, top := range s.Tops {
		if enum, ok := top.(*Enum); ok && enum.GetName() == name {
			return enum
		}
	}
	return nil
}
