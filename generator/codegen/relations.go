package codegen

import (
	"sort"

	"github.com/prismagen/tsgen/generator/schema"
)

// JoinTable describes the implicit two-column join table Prisma creates for
// a many-to-many relation declared without explicit foreign keys. The two
// participating models are held in lexicographic order: the first maps to
// column "A", the second to column "B". That assignment is physical column
// identity and must never depend on which side of the relation was scanned
// first.
type JoinTable struct {
	RelationName string
	TableName    string

	LowModel  string
	HighModel string

	LowKind    schema.ScalarKind
	HighKind   schema.ScalarKind
	LowIsUUID  bool
	HighIsUUID bool

	// LowEnum and HighEnum carry the identifier's enum reference when its
	// kind is ScalarEnum, so the column mapping can resolve it against the
	// schema's enum set.
	LowEnum  string
	HighEnum string
}

// InterfaceName returns the name of the generated TypeScript interface for
// the join table.
func (j JoinTable) InterfaceName() string {
	return ToPascalCase(j.LowModel) + "To" + ToPascalCase(j.HighModel)
}

// ImplicitJoinTables scans every list-valued relation field that carries no
// explicit foreign keys on either side and materializes one JoinTable per
// relation name. Each relation is discovered from both of its sides, so
// results are accumulated in a map keyed by relation name; the second
// discovery is a no-op. Self-relations are skipped: they have no stable A/B
// column assignment. Explicit many-to-many relations routed through a
// linking model never appear here because their relation fields carry
// foreign keys.
func ImplicitJoinTables(doc *schema.Document) ([]JoinTable, error) {
	byRelation := make(map[string]JoinTable)

	for i := range doc.Models {
		model := &doc.Models[i]
		for _, field := range model.Fields {
			if !isImplicitListRelation(field) {
				continue
			}
			target := doc.Model(field.RelationTargetModel)
			if target == nil || target.Name == model.Name {
				continue
			}
			if !hasReciprocalField(target, field.RelationName, model.Name) {
				continue
			}
			if _, seen := byRelation[field.RelationName]; seen {
				continue
			}

			low, high := model.Name, target.Name
			if high < low {
				low, high = high, low
			}

			lowID, err := identifierField(doc.Model(low))
			if err != nil {
				return nil, err
			}
			highID, err := identifierField(doc.Model(high))
			if err != nil {
				return nil, err
			}

			byRelation[field.RelationName] = JoinTable{
				RelationName: field.RelationName,
				TableName:    "_" + low + "To" + high,
				LowModel:     low,
				HighModel:    high,
				LowKind:      lowID.Kind,
				HighKind:     highID.Kind,
				LowIsUUID:    IsUUIDField(lowID),
				HighIsUUID:   IsUUIDField(highID),
				LowEnum:      lowID.EnumName,
				HighEnum:     highID.EnumName,
			}
		}
	}

	tables := make([]JoinTable, 0, len(byRelation))
	for _, jt := range byRelation {
		tables = append(tables, jt)
	}
	sort.Slice(tables, func(i, j int) bool {
		return tables[i].TableName < tables[j].TableName
	})
	return tables, nil
}

func isImplicitListRelation(f schema.Field) bool {
	return f.Kind == schema.ScalarRelation &&
		f.IsArray &&
		len(f.RelationFromKeys) == 0 &&
		len(f.RelationToKeys) == 0
}

// hasReciprocalField reports whether the target model declares a list
// relation field back to modelName under the same relation name, also
// without explicit keys.
func hasReciprocalField(target *schema.Model, relationName, modelName string) bool {
	for _, f := range target.Fields {
		if isImplicitListRelation(f) &&
			f.RelationName == relationName &&
			f.RelationTargetModel == modelName {
			return true
		}
	}
	return false
}

// identifierField resolves the field that carries a model's identity: the
// single @id field when one exists, otherwise the first field of the
// composite @@id. A model with neither is a configuration error, never a
// silent default.
func identifierField(m *schema.Model) (schema.Field, error) {
	if id := m.IdentifierField(); id != nil {
		return *id, nil
	}
	for _, name := range m.CompositeIdentifierFields {
		if f := m.Field(name); f != nil {
			return *f, nil
		}
	}
	return schema.Field{}, &MissingIdentifierError{Model: m.Name}
}
