package codegen

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/prismagen/tsgen/generator/schema"
)

// Artifacts holds the three generated source texts. They are independent
// blobs with no ordering dependency between them.
type Artifacts struct {
	Enums string // enums.ts
	Types string // types.ts
	Index string // index.ts
}

const generatedHeader = "// Code generated by tsgen. DO NOT EDIT.\n"

// typesPreamble declares the column wrapper constructs the type mapper
// composes with. Emitted into every types artifact.
const typesPreamble = `
export type UUID = string;

export type Timestamp = ColumnType<Date, Date | string, Date | string>;

export type Generated<T> = T extends ColumnType<infer S, infer I, infer U>
  ? ColumnType<S, I | undefined, U>
  : ColumnType<T, T | undefined, T>;

export type Aliased<T, DbName extends string> = T & { readonly __column?: DbName };
`

// Emit assembles the full artifact set for a schema document. Output is a
// pure function of the document: models, enums and fields are emitted in
// lexicographic name order regardless of declaration order, so repeated
// runs over an unchanged schema are byte-identical.
func Emit(doc *schema.Document) (Artifacts, error) {
	joins, err := ImplicitJoinTables(doc)
	if err != nil {
		return Artifacts{}, err
	}
	types, err := emitTypes(doc, joins)
	if err != nil {
		return Artifacts{}, err
	}
	return Artifacts{
		Enums: emitEnums(doc),
		Types: types,
		Index: emitIndex(),
	}, nil
}

func emitEnums(doc *schema.Document) string {
	var b strings.Builder
	b.WriteString(generatedHeader)

	for _, name := range sortedEnumNames(doc) {
		e := doc.Enum(name)
		b.WriteString("\n")
		fmt.Fprintf(&b, "export const %s = {\n", e.Name)
		for _, v := range e.Values {
			fmt.Fprintf(&b, "  %s: %q,\n", propertyKey(v.Name), v.DatabaseName())
		}
		b.WriteString("} as const;\n")
		fmt.Fprintf(&b, "export type %s = (typeof %s)[keyof typeof %s];\n", e.Name, e.Name, e.Name)
	}

	return b.String()
}

func emitTypes(doc *schema.Document, joins []JoinTable) (string, error) {
	var b strings.Builder
	b.WriteString(generatedHeader)
	b.WriteString("\nimport type { ColumnType } from \"kysely\";\n")

	if used := referencedEnumNames(doc); len(used) > 0 {
		fmt.Fprintf(&b, "\nimport type { %s } from \"./enums\";\n", strings.Join(used, ", "))
	}

	b.WriteString(typesPreamble)

	for _, name := range sortedModelNames(doc) {
		m := doc.Model(name)

		if brand := brandedIdentifierName(m); brand != "" {
			base, err := scalarBase(*m.IdentifierField(), doc, m.Name)
			if err != nil {
				return "", err
			}
			b.WriteString("\n")
			fmt.Fprintf(&b, "export type %s = %s & { readonly __brand: %q };\n", brand, base, brand)
		}

		b.WriteString("\n")
		fmt.Fprintf(&b, "export interface %s {\n", ToPascalCase(m.Name))
		for _, f := range sortedColumnFields(m) {
			expr, err := FieldType(f, doc, m.Name)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&b, "  %s: %s;\n", propertyKey(f.Name), expr)
		}
		b.WriteString("}\n")
	}

	for _, jt := range joins {
		aType, err := joinColumnType(doc, jt.TableName, "A", jt.LowKind, jt.LowIsUUID, jt.LowEnum)
		if err != nil {
			return "", err
		}
		bType, err := joinColumnType(doc, jt.TableName, "B", jt.HighKind, jt.HighIsUUID, jt.HighEnum)
		if err != nil {
			return "", err
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "export interface %s {\n", jt.InterfaceName())
		fmt.Fprintf(&b, "  A: %s;\n", aType)
		fmt.Fprintf(&b, "  B: %s;\n", bType)
		b.WriteString("}\n")
	}

	b.WriteString("\nexport interface DB {\n")
	for _, entry := range aggregateEntries(doc, joins) {
		fmt.Fprintf(&b, "  %s: %s;\n", propertyKey(entry.table), entry.typeName)
	}
	b.WriteString("}\n")

	return b.String(), nil
}

func emitIndex() string {
	return generatedHeader + "\nexport * from \"./enums\";\nexport * from \"./types\";\n"
}

type aggregateEntry struct {
	table    string
	typeName string
}

// aggregateEntries lists one entry per model and join table, keyed by
// physical table name, sorted by key.
func aggregateEntries(doc *schema.Document, joins []JoinTable) []aggregateEntry {
	entries := make([]aggregateEntry, 0, len(doc.Models)+len(joins))
	for i := range doc.Models {
		m := &doc.Models[i]
		entries = append(entries, aggregateEntry{
			table:    m.TableName(),
			typeName: ToPascalCase(m.Name),
		})
	}
	for _, jt := range joins {
		entries = append(entries, aggregateEntry{
			table:    jt.TableName,
			typeName: jt.InterfaceName(),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].table < entries[j].table
	})
	return entries
}

// brandedIdentifierName returns the name of the model's nominal identifier
// type, or "" when the model has no single non-composite identifier field.
func brandedIdentifierName(m *schema.Model) string {
	if m.IdentifierField() == nil || len(m.CompositeIdentifierFields) > 0 {
		return ""
	}
	return ToPascalCase(m.Name) + "Id"
}

// sortedColumnFields returns the model's non-relation fields in name order.
// Relation fields are navigation properties, not columns.
func sortedColumnFields(m *schema.Model) []schema.Field {
	fields := make([]schema.Field, 0, len(m.Fields))
	for _, f := range m.Fields {
		if f.Kind == schema.ScalarRelation {
			continue
		}
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Name < fields[j].Name
	})
	return fields
}

func sortedModelNames(doc *schema.Document) []string {
	names := make([]string, 0, len(doc.Models))
	for i := range doc.Models {
		names = append(names, doc.Models[i].Name)
	}
	sort.Strings(names)
	return names
}

func sortedEnumNames(doc *schema.Document) []string {
	names := make([]string, 0, len(doc.Enums))
	for i := range doc.Enums {
		names = append(names, doc.Enums[i].Name)
	}
	sort.Strings(names)
	return names
}

// referencedEnumNames returns the sorted set of enum names referenced by
// model fields that also exist in the document's enum set.
func referencedEnumNames(doc *schema.Document) []string {
	seen := make(map[string]bool)
	for i := range doc.Models {
		for _, f := range doc.Models[i].Fields {
			if f.Kind == schema.ScalarEnum && doc.Enum(f.EnumName) != nil {
				seen[f.EnumName] = true
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var identPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// propertyKey quotes a property name when it is not a valid TypeScript
// identifier.
func propertyKey(name string) string {
	if identPattern.MatchString(name) {
		return name
	}
	return strconv.Quote(name)
}
