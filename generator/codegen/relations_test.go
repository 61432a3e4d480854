package codegen

import (
	"errors"
	"testing"

	"github.com/prismagen/tsgen/generator/schema"
)

// listRelation builds an implicit list relation field.
func listRelation(name, target, relationName string) schema.Field {
	return schema.Field{
		Name:                name,
		Kind:                schema.ScalarRelation,
		IsArray:             true,
		IsRequired:          true,
		RelationName:        relationName,
		RelationTargetModel: target,
	}
}

func uuidIDField() schema.Field {
	return schema.Field{
		Name:                "id",
		Kind:                schema.ScalarString,
		IsRequired:          true,
		IsIdentifier:        true,
		HasGeneratedDefault: true,
		NativeType:          "Uuid",
	}
}

func TestImplicitJoinTableOrdering(t *testing.T) {
	// Zebra is declared first, but Alpha must take column "A".
	doc := &schema.Document{
		Models: []schema.Model{
			{Name: "Zebra", Fields: []schema.Field{
				uuidIDField(),
				listRelation("alphas", "Alpha", "AlphaToZebra"),
			}},
			{Name: "Alpha", Fields: []schema.Field{
				uuidIDField(),
				listRelation("zebras", "Zebra", "AlphaToZebra"),
			}},
		},
	}

	tables, err := ImplicitJoinTables(doc)
	if err != nil {
		t.Fatalf("ImplicitJoinTables failed: %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("Expected 1 join table, got %d", len(tables))
	}

	jt := tables[0]
	if jt.LowModel != "Alpha" || jt.HighModel != "Zebra" {
		t.Errorf("Expected Alpha/Zebra ordering, got %s/%s", jt.LowModel, jt.HighModel)
	}
	if jt.TableName != "_AlphaToZebra" {
		t.Errorf("Expected table '_AlphaToZebra', got %q", jt.TableName)
	}
}

func TestImplicitJoinTableScenario(t *testing.T) {
	doc := &schema.Document{
		Models: []schema.Model{
			{Name: "Post", Fields: []schema.Field{
				uuidIDField(),
				listRelation("categories", "Category", "CategoryToPost"),
			}},
			{Name: "Category", Fields: []schema.Field{
				uuidIDField(),
				listRelation("posts", "Post", "CategoryToPost"),
			}},
		},
	}

	tables, err := ImplicitJoinTables(doc)
	if err != nil {
		t.Fatalf("ImplicitJoinTables failed: %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("Expected exactly 1 join table, got %d", len(tables))
	}

	jt := tables[0]
	if jt.TableName != "_CategoryToPost" {
		t.Errorf("Expected table '_CategoryToPost', got %q", jt.TableName)
	}
	if jt.LowModel != "Category" || jt.HighModel != "Post" {
		t.Errorf("Expected Category/Post, got %s/%s", jt.LowModel, jt.HighModel)
	}
	if !jt.LowIsUUID || !jt.HighIsUUID {
		t.Errorf("Expected both columns UUID-flagged: %+v", jt)
	}
}

func TestExplicitRelationExcluded(t *testing.T) {
	// Many-to-many routed through a linking model: the relation fields on
	// the linking model carry explicit keys, the list fields on the outer
	// models point at the linking model, not at each other.
	doc := &schema.Document{
		Models: []schema.Model{
			{Name: "Student", Fields: []schema.Field{
				{Name: "id", Kind: schema.ScalarInt, IsRequired: true, IsIdentifier: true},
				listRelation("enrollments", "Enrollment", "EnrollmentToStudent"),
			}},
			{Name: "Course", Fields: []schema.Field{
				{Name: "id", Kind: schema.ScalarInt, IsRequired: true, IsIdentifier: true},
				listRelation("enrollments", "Enrollment", "CourseToEnrollment"),
			}},
			{Name: "Enrollment", Fields: []schema.Field{
				{Name: "studentId", Kind: schema.ScalarInt, IsRequired: true},
				{Name: "courseId", Kind: schema.ScalarInt, IsRequired: true},
				{
					Name: "student", Kind: schema.ScalarRelation, IsRequired: true,
					RelationName: "EnrollmentToStudent", RelationTargetModel: "Student",
					RelationFromKeys: []string{"studentId"}, RelationToKeys: []string{"id"},
				},
				{
					Name: "course", Kind: schema.ScalarRelation, IsRequired: true,
					RelationName: "CourseToEnrollment", RelationTargetModel: "Course",
					RelationFromKeys: []string{"courseId"}, RelationToKeys: []string{"id"},
				},
			}, CompositeIdentifierFields: []string{"studentId", "courseId"}},
		},
	}

	tables, err := ImplicitJoinTables(doc)
	if err != nil {
		t.Fatalf("ImplicitJoinTables failed: %v", err)
	}
	if len(tables) != 0 {
		t.Errorf("Expected no join tables for explicit relation, got %d", len(tables))
	}
}

func TestSelfRelationExcluded(t *testing.T) {
	doc := &schema.Document{
		Models: []schema.Model{
			{Name: "User", Fields: []schema.Field{
				uuidIDField(),
				listRelation("followers", "User", "UserFollows"),
				listRelation("following", "User", "UserFollows"),
			}},
		},
	}

	tables, err := ImplicitJoinTables(doc)
	if err != nil {
		t.Fatalf("ImplicitJoinTables failed: %v", err)
	}
	if len(tables) != 0 {
		t.Errorf("Expected no join tables for self-relation, got %d", len(tables))
	}
}

func TestOneSidedListRelationExcluded(t *testing.T) {
	// A list field without a reciprocal list field is one-to-many, not
	// many-to-many.
	doc := &schema.Document{
		Models: []schema.Model{
			{Name: "User", Fields: []schema.Field{
				uuidIDField(),
				listRelation("posts", "Post", "PostToUser"),
			}},
			{Name: "Post", Fields: []schema.Field{
				uuidIDField(),
				{
					Name: "author", Kind: schema.ScalarRelation, IsRequired: true,
					RelationName: "PostToUser", RelationTargetModel: "User",
					RelationFromKeys: []string{"authorId"}, RelationToKeys: []string{"id"},
				},
				{Name: "authorId", Kind: schema.ScalarString, IsRequired: true, NativeType: "Uuid"},
			}},
		},
	}

	tables, err := ImplicitJoinTables(doc)
	if err != nil {
		t.Fatalf("ImplicitJoinTables failed: %v", err)
	}
	if len(tables) != 0 {
		t.Errorf("Expected no join tables for one-to-many, got %d", len(tables))
	}
}

func TestMissingIdentifierIsFatal(t *testing.T) {
	doc := &schema.Document{
		Models: []schema.Model{
			{Name: "Left", Fields: []schema.Field{
				// No @id, no composite id.
				{Name: "name", Kind: schema.ScalarString, IsRequired: true},
				listRelation("rights", "Right", "LeftToRight"),
			}},
			{Name: "Right", Fields: []schema.Field{
				uuidIDField(),
				listRelation("lefts", "Left", "LeftToRight"),
			}},
		},
	}

	_, err := ImplicitJoinTables(doc)
	if err == nil {
		t.Fatal("Expected MissingIdentifierError")
	}
	var missing *MissingIdentifierError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected MissingIdentifierError, got %T: %v", err, err)
	}
	if missing.Model != "Left" {
		t.Errorf("Expected error for model 'Left', got %q", missing.Model)
	}
}

func TestCompositeIdentifierResolvesJoinColumn(t *testing.T) {
	doc := &schema.Document{
		Models: []schema.Model{
			{
				Name: "Pair",
				Fields: []schema.Field{
					{Name: "a", Kind: schema.ScalarInt, IsRequired: true},
					{Name: "b", Kind: schema.ScalarInt, IsRequired: true},
					listRelation("others", "Other", "OtherToPair"),
				},
				CompositeIdentifierFields: []string{"a", "b"},
			},
			{Name: "Other", Fields: []schema.Field{
				uuidIDField(),
				listRelation("pairs", "Pair", "OtherToPair"),
			}},
		},
	}

	tables, err := ImplicitJoinTables(doc)
	if err != nil {
		t.Fatalf("ImplicitJoinTables failed: %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("Expected 1 join table, got %d", len(tables))
	}
	jt := tables[0]
	// Other < Pair, so Pair's composite key lands on column "B".
	if jt.HighKind != schema.ScalarInt {
		t.Errorf("Expected Int column for composite-id model, got %v", jt.HighKind)
	}
}
