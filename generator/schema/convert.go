package schema

import (
	"sort"
	"strings"

	"github.com/prismagen/tsgen/psl/ast"
)

// scalarKinds maps Prisma scalar type names to kinds. Any type name not in
// this table is an enum reference or a relation to another model.
var scalarKinds = map[string]ScalarKind{
	"String":   ScalarString,
	"Int":      ScalarInt,
	"Float":    ScalarFloat,
	"Boolean":  ScalarBoolean,
	"DateTime": ScalarDateTime,
	"BigInt":   ScalarBigInt,
	"Decimal":  ScalarDecimal,
	"Bytes":    ScalarBytes,
	"Json":     ScalarJSON,
}

// FromAST lowers a parsed schema into the descriptor model. The parser
// guarantees structural well-formedness; referential checks (enum lookups,
// identifier presence) happen later in the generation pipeline.
func FromAST(schemaAST *ast.SchemaAst) *Document {
	doc := &Document{}

	enumNames := make(map[string]bool)
	for _, e := range schemaAST.Enums() {
		enumNames[e.GetName()] = true
	}

	for _, e := range schemaAST.Enums() {
		doc.Enums = append(doc.Enums, convertEnum(e))
	}
	for _, m := range schemaAST.Models() {
		doc.Models = append(doc.Models, convertModel(m, enumNames))
	}

	return doc
}

func convertEnum(e *ast.Enum) Enum {
	enum := Enum{
		Name:          e.GetName(),
		DatabaseAlias: blockMapName(e.BlockAttribute("map")),
	}
	for _, v := range e.Values {
		enum.Values = append(enum.Values, EnumValue{
			Name:          v.GetName(),
			DatabaseAlias: mapName(v.Attribute("map")),
		})
	}
	return enum
}

func convertModel(m *ast.Model, enumNames map[string]bool) Model {
	model := Model{
		Name:          m.GetName(),
		DatabaseAlias: blockMapName(m.BlockAttribute("map")),
		Documentation: m.GetDocumentation(),
	}

	if id := m.BlockAttribute("id"); id != nil {
		if arg := id.Argument("fields", 0); arg != nil {
			if arr, ok := arg.Value.AsArray(); ok {
				model.CompositeIdentifierFields = arr.ConstantNames()
			}
		}
	}

	for _, f := range m.Fields {
		model.Fields = append(model.Fields, convertField(f, m.GetName(), enumNames))
	}

	return model
}

func convertField(f *ast.Field, modelName string, enumNames map[string]bool) Field {
	field := Field{
		Name:                f.GetName(),
		NativeType:          nativeType(f),
		IsArray:             f.Arity() == ast.FieldArityList,
		IsRequired:          f.Arity() != ast.FieldArityOptional,
		IsIdentifier:        f.HasAttribute("id"),
		IsUnique:            f.HasAttribute("unique"),
		HasGeneratedDefault: f.HasAttribute("default"),
		IsAutoUpdated:       f.HasAttribute("updatedAt"),
		DatabaseAlias:       mapName(f.Attribute("map")),
		Documentation:       f.GetDocumentation(),
	}

	typeName := f.GetTypeName()
	kind, isScalar := scalarKinds[typeName]
	switch {
	case isScalar:
		field.Kind = kind
	case enumNames[typeName]:
		field.Kind = ScalarEnum
		field.EnumName = typeName
	default:
		field.Kind = ScalarRelation
		field.RelationTargetModel = typeName
		field.RelationName = relationName(f, modelName, typeName)
		if rel := f.Attribute("relation"); rel != nil {
			if arg := rel.Argument("fields", -1); arg != nil {
				if arr, ok := arg.Value.AsArray(); ok {
					field.RelationFromKeys = arr.ConstantNames()
				}
			}
			if arg := rel.Argument("references", -1); arg != nil {
				if arr, ok := arg.Value.AsArray(); ok {
					field.RelationToKeys = arr.ConstantNames()
				}
			}
		}
	}

	return field
}

// relationName returns the explicit @relation name when one is given, and
// the Prisma default otherwise: the two participating model names in
// lexicographic order joined by "To". Both sides of a relation derive the
// same name, which is what lets the resolver deduplicate.
func relationName(f *ast.Field, modelName, targetModel string) string {
	if rel := f.Attribute("relation"); rel != nil {
		if arg := rel.Argument("name", 0); arg != nil {
			if s, ok := arg.Value.AsStringValue(); ok {
				return s.Value
			}
		}
	}
	pair := []string{modelName, targetModel}
	sort.Strings(pair)
	return pair[0] + "To" + pair[1]
}

// nativeType extracts the database type annotation (@db.X) from a field,
// without the datasource prefix: @db.Uuid yields "Uuid".
func nativeType(f *ast.Field) string {
	for _, attr := range f.Attributes {
		name := attr.GetName()
		if i := strings.Index(name, "."); i > 0 {
			return name[i+1:]
		}
	}
	return ""
}

func mapName(attr *ast.Attribute) string {
	if attr == nil {
		return ""
	}
	if arg := attr.Argument("name", 0); arg != nil {
		if s, ok := arg.Value.AsStringValue(); ok {
			return s.Value
		}
	}
	return ""
}

func blockMapName(attr *ast.BlockAttribute) string {
	if attr == nil {
		return ""
	}
	if arg := attr.Argument("name", 0); arg != nil {
		if s, ok := arg.Value.AsStringValue(); ok {
			return s.Value
		}
	}
	return ""
}
