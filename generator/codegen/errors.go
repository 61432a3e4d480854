package codegen

import "fmt"

// MissingIdentifierError reports a model that declares neither a single
// @id field nor a composite @@id, but participates in generation that
// needs one resolved. It aborts the whole run: the aggregate interface
// requires every model to be resolvable.
type MissingIdentifierError struct {
	Model string
}

func (e *MissingIdentifierError) Error() string {
	return fmt.Sprintf("model %q has no identifier: declare @id on a field or a composite @@id", e.Model)
}

// UndefinedEnumReferenceError reports a field whose enum type is absent
// from the schema's enum set.
type UndefinedEnumReferenceError struct {
	Model string
	Field string
	Enum  string
}

func (e *UndefinedEnumReferenceError) Error() string {
	return fmt.Sprintf("field %s.%s references undefined enum %q", e.Model, e.Field, e.Enum)
}
