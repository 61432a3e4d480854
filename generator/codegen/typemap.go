package codegen

import (
	"fmt"

	"github.com/prismagen/tsgen/generator/schema"
)

// scalarBase returns the TypeScript base expression for a field's declared
// kind. The table is extended by adding cases here, never by special-casing
// callers.
func scalarBase(f schema.Field, doc *schema.Document, modelName string) (string, error) {
	switch f.Kind {
	case schema.ScalarString:
		if IsUUIDField(f) {
			return "UUID", nil
		}
		return "string", nil
	case schema.ScalarInt, schema.ScalarFloat:
		return "number", nil
	case schema.ScalarBigInt:
		return "bigint", nil
	case schema.ScalarDecimal:
		// Decimals travel as strings to preserve precision.
		return "string", nil
	case schema.ScalarBoolean:
		return "boolean", nil
	case schema.ScalarDateTime:
		return "Timestamp", nil
	case schema.ScalarJSON:
		return "unknown", nil
	case schema.ScalarBytes:
		return "Buffer", nil
	case schema.ScalarEnum:
		if doc.Enum(f.EnumName) == nil {
			return "", &UndefinedEnumReferenceError{Model: modelName, Field: f.Name, Enum: f.EnumName}
		}
		return f.EnumName, nil
	default:
		return "", fmt.Errorf("field %q: no type mapping for kind %s", f.Name, f.Kind)
	}
}

// FieldType builds the full column type expression for a field. Wrappers
// compose in fixed order on top of the base expression: array, nullable
// union, read-only identifier column, generated-column marker, column alias
// binding. The order matters: read-only and generated wrapping must see the
// pre-alias type.
//
// modelName enables branded identifier substitution for read-only
// identifier columns; pass "" when no branded type exists for the model.
func FieldType(f schema.Field, doc *schema.Document, modelName string) (string, error) {
	expr, err := scalarBase(f, doc, modelName)
	if err != nil {
		return "", err
	}

	if f.IsArray {
		expr += "[]"
	}
	if !f.IsRequired {
		expr += " | null"
	}

	switch {
	case f.IsIdentifier && f.HasGeneratedDefault:
		// Generated identifiers are selectable but never written. When the
		// model has a branded identifier type, it replaces the raw scalar.
		sel := expr
		if modelName != "" {
			sel = ToPascalCase(modelName) + "Id"
		}
		expr = fmt.Sprintf("ColumnType<%s, never, never>", sel)
	case f.HasGeneratedDefault || f.IsAutoUpdated:
		expr = fmt.Sprintf("Generated<%s>", expr)
	}

	if f.DatabaseAlias != "" && f.DatabaseAlias != f.Name {
		expr = fmt.Sprintf("Aliased<%s, %q>", expr, f.DatabaseAlias)
	}

	return expr, nil
}

// joinColumnType maps a join table column to its TypeScript expression
// through the same scalar table as regular fields. The identifier metadata
// copied onto the join descriptor (kind, UUID classification, enum
// reference) reconstructs enough of the field for the base mapping; an
// undefined enum reference propagates, attributed to the join table column.
func joinColumnType(doc *schema.Document, table, column string, kind schema.ScalarKind, isUUID bool, enumName string) (string, error) {
	f := schema.Field{Name: column, Kind: kind, EnumName: enumName}
	if isUUID {
		f.NativeType = uuidNativeType
	}
	return scalarBase(f, doc, table)
}
