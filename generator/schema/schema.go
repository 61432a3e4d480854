// Package schema defines the resolved descriptor model the generator
// operates on. Descriptors are plain values built once per generation run
// from the parsed schema document and never mutated afterwards.
package schema

// ScalarKind is the declared kind of a field.
type ScalarKind int

const (
	ScalarString ScalarKind = iota
	ScalarInt
	ScalarFloat
	ScalarBoolean
	ScalarDateTime
	ScalarBigInt
	ScalarDecimal
	ScalarBytes
	ScalarJSON
	ScalarEnum
	ScalarRelation
)

// String returns the Prisma name of the scalar kind.
func (k ScalarKind) String() string {
	switch k {
	case ScalarString:
		return "String"
	case ScalarInt:
		return "Int"
	case ScalarFloat:
		return "Float"
	case ScalarBoolean:
		return "Boolean"
	case ScalarDateTime:
		return "DateTime"
	case ScalarBigInt:
		return "BigInt"
	case ScalarDecimal:
		return "Decimal"
	case ScalarBytes:
		return "Bytes"
	case ScalarJSON:
		return "Json"
	case ScalarEnum:
		return "Enum"
	case ScalarRelation:
		return "Relation"
	default:
		return "Unknown"
	}
}

// Field describes a single model field.
type Field struct {
	Name string
	Kind ScalarKind

	// EnumName is set when Kind is ScalarEnum.
	EnumName string

	// NativeType is the database type annotation (@db.X) without the "db."
	// prefix, or "" when the field carries none.
	NativeType string

	IsArray             bool
	IsRequired          bool
	IsIdentifier        bool
	IsUnique            bool
	HasGeneratedDefault bool
	IsAutoUpdated       bool

	// DatabaseAlias is the physical column name (@map), or "" when the
	// logical name is also the physical one.
	DatabaseAlias string

	// Relation linkage, set when Kind is ScalarRelation.
	RelationName        string
	RelationTargetModel string
	RelationFromKeys    []string
	RelationToKeys      []string

	Documentation string
}

// Model describes a model declaration.
type Model struct {
	Name          string
	DatabaseAlias string
	Fields        []Field

	// CompositeIdentifierFields lists the field names of a composite
	// primary key (@@id), in declaration order. Empty when the model uses a
	// single identifier field or none.
	CompositeIdentifierFields []string

	Documentation string
}

// TableName returns the physical table name: the database alias when one is
// set, the model name otherwise.
func (m *Model) TableName() string {
	if m.DatabaseAlias != "" {
		return m.DatabaseAlias
	}
	return m.Name
}

// Field returns the field with the given name, or nil.
func (m *Model) Field(name string) *Field {
	for i := range m.Fields {
		if m.Fields[i].Name == name {
			return &m.Fields[i]
		}
	}
	return nil
}

// IdentifierField returns the single @id field of the model, or nil when
// the model has none.
func (m *Model) IdentifierField() *Field {
	for i := range m.Fields {
		if m.Fields[i].IsIdentifier {
			return &m.Fields[i]
		}
	}
	return nil
}

// EnumValue is a single enum member.
type EnumValue struct {
	Name          string
	DatabaseAlias string
}

// DatabaseName returns the value stored in the database: the alias when one
// is set, the member name otherwise.
func (v EnumValue) DatabaseName() string {
	if v.DatabaseAlias != "" {
		return v.DatabaseAlias
	}
	return v.Name
}

// Enum describes an enum declaration.
type Enum struct {
	Name          string
	DatabaseAlias string
	Values        []EnumValue
}

// Document is the full resolved schema a generation run consumes.
type Document struct {
	Models []Model
	Enums  []Enum
}

// Model returns the model with the given name, or nil.
func (d *Document) Model(name string) *Model {
	for i := range d.Models {
		if d.Models[i].Name == name {
			return &d.Models[i]
		}
	}
	return nil
}

// Enum returns the enum with the given name, or nil.
func (d *Document) Enum(name string) *Enum {
	for i := range d.Enums {
		if d.Enums[i].Name == name {
			return &d.Enums[i]
		}
	}
	return nil
}
