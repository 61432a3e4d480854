// Package psl parses Prisma Schema Language documents using Participle.
package psl

import (
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/prismagen/tsgen/psl/ast"
)

// rawSchema is the raw parse tree matching the grammar. It is flattened to
// a SchemaAst after parsing.
type rawSchema struct {
	Pos   lexer.Position
	Items []*topLevelItem `parser:"@@*"`
}

// topLevelItem is a union of the possible top-level declarations.
type topLevelItem struct {
	Pos        lexer.Position
	Model      *ast.Model           `parser:"@@"`
	Enum       *ast.Enum            `parser:"| @@"`
	Datasource *ast.SourceConfig    `parser:"| @@"`
	Generator  *ast.GeneratorConfig `parser:"| @@"`
}

func (t *topLevelItem) toTop() ast.Top {
	switch {
	case t.Model != nil:
		return t.Model
	case t.Enum != nil:
		return t.Enum
	case t.Datasource != nil:
		return t.Datasource
	case t.Generator != nil:
		return t.Generator
	default:
		return nil
	}
}

var parser = participle.MustBuild[rawSchema](
	participle.Lexer(Lexer),
	participle.Elide("Whitespace", "Newline", "Comment"),
	participle.Unquote("String"),
	participle.UseLookahead(10),
	participle.Union[ast.Expression](
		&ast.FunctionCall{},
		&ast.ArrayExpression{},
		&ast.StringValue{},
		&ast.NumericValue{},
		&ast.ConstantValue{},
	),
)

// ParseSchema parses a Prisma schema from an io.Reader.
func ParseSchema(filename string, r io.Reader) (*ast.SchemaAst, error) {
	raw, err := parser.Parse(filename, r)
	if err != nil {
		return nil, err
	}
	schema := &ast.SchemaAst{
		Tops: make([]ast.Top, 0, len(raw.Items)),
	}
	for _, item := range raw.Items {
		if top := item.toTop(); top != nil {
			schema.Tops = append(schema.Tops, top)
		}
	}
	return schema, nil
}

// ParseSchemaString parses a Prisma schema from a string.
func ParseSchemaString(filename, input string) (*ast.SchemaAst, error) {
	return ParseSchema(filename, strings.NewReader(input))
}
