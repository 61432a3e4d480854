package codegen

import (
	"regexp"
	"strings"

	"github.com/prismagen/tsgen/generator/schema"
)

// uuidNativeType is the database type annotation that marks a UUID column.
const uuidNativeType = "Uuid"

// uuidNamePattern matches field names that conventionally hold UUIDs:
// "id", "uuid", and anything ending in "_id" or "_uuid".
var uuidNamePattern = regexp.MustCompile(`(?i)^id$|_id$|_uuid$|^uuid$`)

// IsUUIDField decides whether a field holds UUID values, in three tiers of
// decreasing reliability:
//
//  1. An explicit native type annotation is authoritative in both
//     directions: @db.Uuid means UUID, any other annotation means not,
//     regardless of the field's name or documentation.
//  2. Documentation mentioning "uuid" marks the field.
//  3. Otherwise the field name is matched against common identifier naming
//     patterns.
func IsUUIDField(f schema.Field) bool {
	if f.NativeType != "" {
		return strings.EqualFold(f.NativeType, uuidNativeType)
	}
	if f.Documentation != "" && strings.Contains(strings.ToLower(f.Documentation), "uuid") {
		return true
	}
	return uuidNamePattern.MatchString(f.Name)
}
