package codegen

import (
	"errors"
	"strings"
	"testing"

	"github.com/prismagen/tsgen/generator/schema"
)

func blogDocument() *schema.Document {
	return &schema.Document{
		Models: []schema.Model{
			{Name: "Post", Fields: []schema.Field{
				uuidIDField(),
				{Name: "title", Kind: schema.ScalarString, IsRequired: true},
				{Name: "views", Kind: schema.ScalarInt, IsRequired: true, HasGeneratedDefault: true},
				{Name: "status", Kind: schema.ScalarEnum, EnumName: "Status", IsRequired: true},
				listRelation("categories", "Category", "CategoryToPost"),
			}},
			{Name: "Category", DatabaseAlias: "categories", Fields: []schema.Field{
				uuidIDField(),
				{Name: "name", Kind: schema.ScalarString, IsRequired: true},
				listRelation("posts", "Post", "CategoryToPost"),
			}},
		},
		Enums: []schema.Enum{
			{Name: "Status", Values: []schema.EnumValue{
				{Name: "DRAFT"},
				{Name: "PUBLISHED", DatabaseAlias: "published"},
			}},
		},
	}
}

func TestEmitDeterministic(t *testing.T) {
	doc := blogDocument()

	first, err := Emit(doc)
	if err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	second, err := Emit(doc)
	if err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	if first != second {
		t.Error("Repeated runs over the same document produced different output")
	}
}

func TestEmitOrderIndependent(t *testing.T) {
	doc := blogDocument()
	scrambled := blogDocument()
	scrambled.Models[0], scrambled.Models[1] = scrambled.Models[1], scrambled.Models[0]
	m := &scrambled.Models[0]
	m.Fields[0], m.Fields[1] = m.Fields[1], m.Fields[0]

	a, err := Emit(doc)
	if err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	b, err := Emit(scrambled)
	if err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	if a != b {
		t.Error("Declaration order leaked into the output")
	}
}

func TestEmitEnumsArtifact(t *testing.T) {
	artifacts, err := Emit(blogDocument())
	if err != nil {
		t.Fatalf("Emit failed: %v", err)
	}

	if !strings.HasPrefix(artifacts.Enums, "// Code generated by tsgen. DO NOT EDIT.\n") {
		t.Error("Enums artifact missing generated header")
	}
	for _, want := range []string{
		"export const Status = {",
		`  DRAFT: "DRAFT",`,
		`  PUBLISHED: "published",`,
		"export type Status = (typeof Status)[keyof typeof Status];",
	} {
		if !strings.Contains(artifacts.Enums, want) {
			t.Errorf("Enums artifact missing %q:\n%s", want, artifacts.Enums)
		}
	}
}

func TestEmitTypesArtifact(t *testing.T) {
	artifacts, err := Emit(blogDocument())
	if err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	types := artifacts.Types

	for _, want := range []string{
		`import type { ColumnType } from "kysely";`,
		`import type { Status } from "./enums";`,
		"export type UUID = string;",
		"export type Timestamp = ColumnType<Date, Date | string, Date | string>;",
		`export type PostId = UUID & { readonly __brand: "PostId" };`,
		`export type CategoryId = UUID & { readonly __brand: "CategoryId" };`,
		"export interface Post {",
		"  id: ColumnType<PostId, never, never>;",
		"  title: string;",
		"  views: Generated<number>;",
		"  status: Status;",
		"export interface CategoryToPost {",
		"  A: UUID;",
		"  B: UUID;",
		"export interface DB {",
		"  _CategoryToPost: CategoryToPost;",
		"  categories: Category;",
		"  Post: Post;",
	} {
		if !strings.Contains(types, want) {
			t.Errorf("Types artifact missing %q:\n%s", want, types)
		}
	}

	// Relation fields are navigation properties, never columns.
	if strings.Contains(types, "categories:") && strings.Contains(types, "  categories: Category[]") {
		t.Error("Relation field leaked into the model interface")
	}
}

func TestEmitDBEntriesSorted(t *testing.T) {
	artifacts, err := Emit(blogDocument())
	if err != nil {
		t.Fatalf("Emit failed: %v", err)
	}

	start := strings.Index(artifacts.Types, "export interface DB {")
	if start < 0 {
		t.Fatal("Types artifact has no DB interface")
	}
	block := artifacts.Types[start:]
	// Table keys in lexicographic order: "_CategoryToPost" < "Post" < "categories".
	a := strings.Index(block, "_CategoryToPost:")
	b := strings.Index(block, "Post:")
	c := strings.Index(block, "categories:")
	if a < 0 || b < 0 || c < 0 {
		t.Fatalf("DB block missing entries:\n%s", block)
	}
	if !(a < b && b < c) {
		t.Errorf("DB entries out of order:\n%s", block)
	}
}

func TestEmitCompositeIdentifierHasNoBrand(t *testing.T) {
	doc := &schema.Document{
		Models: []schema.Model{
			{
				Name: "Membership",
				Fields: []schema.Field{
					{Name: "userId", Kind: schema.ScalarString, IsRequired: true, NativeType: "Uuid"},
					{Name: "teamId", Kind: schema.ScalarString, IsRequired: true, NativeType: "Uuid"},
				},
				CompositeIdentifierFields: []string{"userId", "teamId"},
			},
		},
	}

	artifacts, err := Emit(doc)
	if err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	if strings.Contains(artifacts.Types, "MembershipId") {
		t.Error("Composite identifier model must not get a branded type")
	}
	if !strings.Contains(artifacts.Types, "export interface Membership {") {
		t.Error("Model interface missing")
	}
}

func TestEmitQuotesNonIdentifierKeys(t *testing.T) {
	doc := &schema.Document{
		Models: []schema.Model{
			{Name: "Event", DatabaseAlias: "analytics.events", Fields: []schema.Field{
				{Name: "id", Kind: schema.ScalarInt, IsRequired: true, IsIdentifier: true, HasGeneratedDefault: true},
			}},
		},
	}

	artifacts, err := Emit(doc)
	if err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	if !strings.Contains(artifacts.Types, `  "analytics.events": Event;`) {
		t.Errorf("Expected quoted DB key:\n%s", artifacts.Types)
	}
}

func TestEmitEnumIdentifierJoinColumn(t *testing.T) {
	doc := &schema.Document{
		Models: []schema.Model{
			{Name: "Zone", Fields: []schema.Field{
				{Name: "code", Kind: schema.ScalarEnum, EnumName: "Region", IsRequired: true, IsIdentifier: true},
				listRelation("servers", "Server", "ServerToZone"),
			}},
			{Name: "Server", Fields: []schema.Field{
				uuidIDField(),
				listRelation("zones", "Zone", "ServerToZone"),
			}},
		},
		Enums: []schema.Enum{
			{Name: "Region", Values: []schema.EnumValue{{Name: "EU"}, {Name: "US"}}},
		},
	}

	artifacts, err := Emit(doc)
	if err != nil {
		t.Fatalf("Emit failed: %v", err)
	}

	// Server < Zone: column A is Server's UUID id, column B is Zone's
	// enum-typed identifier, which must map to the enum, not a bare string.
	want := "export interface ServerToZone {\n  A: UUID;\n  B: Region;\n}"
	if !strings.Contains(artifacts.Types, want) {
		t.Errorf("Expected enum-typed join column:\n%s", artifacts.Types)
	}
}

func TestEmitEnumIdentifierJoinColumnUndefinedEnum(t *testing.T) {
	doc := &schema.Document{
		Models: []schema.Model{
			{Name: "Zone", Fields: []schema.Field{
				{Name: "code", Kind: schema.ScalarEnum, EnumName: "Region", IsRequired: true, IsIdentifier: true},
				listRelation("servers", "Server", "ServerToZone"),
			}},
			{Name: "Server", Fields: []schema.Field{
				uuidIDField(),
				listRelation("zones", "Zone", "ServerToZone"),
			}},
		},
	}

	_, err := Emit(doc)
	if err == nil {
		t.Fatal("Expected UndefinedEnumReferenceError")
	}
	var undefined *UndefinedEnumReferenceError
	if !errors.As(err, &undefined) {
		t.Fatalf("Expected UndefinedEnumReferenceError, got %T: %v", err, err)
	}
}

func TestEmitUndefinedEnumFails(t *testing.T) {
	doc := &schema.Document{
		Models: []schema.Model{
			{Name: "User", Fields: []schema.Field{
				uuidIDField(),
				{Name: "role", Kind: schema.ScalarEnum, EnumName: "Role", IsRequired: true},
			}},
		},
	}

	_, err := Emit(doc)
	if err == nil {
		t.Fatal("Expected UndefinedEnumReferenceError")
	}
	var undefined *UndefinedEnumReferenceError
	if !errors.As(err, &undefined) {
		t.Fatalf("Expected UndefinedEnumReferenceError, got %T: %v", err, err)
	}
}

func TestEmitIndexArtifact(t *testing.T) {
	artifacts, err := Emit(&schema.Document{})
	if err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	want := "// Code generated by tsgen. DO NOT EDIT.\n\nexport * from \"./enums\";\nexport * from \"./types\";\n"
	if artifacts.Index != want {
		t.Errorf("Unexpected index artifact:\n%s", artifacts.Index)
	}
}
