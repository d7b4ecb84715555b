package inference

import (
	"strings"

	"graphile-codegen/internal/introspection"
	"graphile-codegen/internal/naming"
)

// canonicalKeyFieldNames are the input field names PostGraphile uses for the
// lookup key of update/delete mutations, in preference order.
var canonicalKeyFieldNames = []string{"id", "nodeId", "rowId"}

// inferPrimaryKey derives the primary/lookup key for an entity, in priority
// order:
//
//  1. A canonical key field on Update{Entity}Input, then Delete{Entity}Input.
//  2. Exactly one remaining input field after excluding clientMutationId and
//     patch-shaped fields. Zero or several candidates means inference
//     declines rather than guesses.
//  3. An id/nodeId field directly on the entity's output type.
//
// Returns an empty slice when nothing unambiguous was found.
func inferPrimaryKey(entityName string, idx *introspection.Index, namer *naming.Namer) []string {
	updateInput := idx.Lookup("Update" + entityName + "Input")
	deleteInput := idx.Lookup("Delete" + entityName + "Input")

	for _, input := range []*introspection.FullType{updateInput, deleteInput} {
		if input == nil {
			continue
		}
		if key := canonicalKeyField(input); key != "" {
			return []string{key}
		}
	}

	for _, input := range []*introspection.FullType{updateInput, deleteInput} {
		if input == nil {
			continue
		}
		if key := soleKeyCandidate(input); key != "" {
			return []string{key}
		}
	}

	if entity := idx.Lookup(entityName); entity != nil {
		for _, name := range []string{"id", "nodeId"} {
			for i := range entity.Fields {
				if entity.Fields[i].Name == name {
					return []string{name}
				}
			}
		}
	}
	return []string{}
}

func canonicalKeyField(input *introspection.FullType) string {
	for _, name := range canonicalKeyFieldNames {
		for i := range input.InputFields {
			if input.InputFields[i].Name == name {
				return name
			}
		}
	}
	return ""
}

// soleKeyCandidate returns the single input field left after dropping
// clientMutationId and patch payloads, or "" when the choice is ambiguous.
func soleKeyCandidate(input *introspection.FullType) string {
	candidate := ""
	for i := range input.InputFields {
		f := &input.InputFields[i]
		if f.Name == "clientMutationId" || isPatchShaped(f) {
			continue
		}
		if candidate != "" {
			return ""
		}
		candidate = f.Name
	}
	return candidate
}

func isPatchShaped(f *introspection.InputValue) bool {
	if strings.HasSuffix(f.Name, "Patch") || strings.HasSuffix(f.Name, "patch") {
		return true
	}
	return strings.HasSuffix(f.Type.NamedType(), "Patch")
}

// inferPatchField finds the patch-payload field on Update{Entity}Input.
// Schemas can name this field non-canonically, so the field whose type name
// ends in Patch is used verbatim. Falls back to the conventional names when
// the input type is absent or has no patch-shaped field.
func inferPatchField(entityName string, idx *introspection.Index, namer *naming.Namer) (fieldName, typeName string) {
	if input := idx.Lookup("Update" + entityName + "Input"); input != nil {
		for i := range input.InputFields {
			f := &input.InputFields[i]
			if t := f.Type.NamedType(); strings.HasSuffix(t, "Patch") {
				return f.Name, t
			}
		}
	}
	return namer.LowerCamel(entityName) + "Patch", entityName + "Patch"
}

// inferOrderByType resolves the OrderBy enum for an entity. Exact pluralized
// convention first, then naive suffix variants, then a full scan of OrderBy
// enums matched by singularizing the stripped name. The scan guards against
// prefix collisions: "SchemaGrantsOrderBy" must not be taken for entity
// "Schema" when "SchemataOrderBy" exists.
func inferOrderByType(entityName string, doc *introspection.Document, idx *introspection.Index, namer *naming.Namer) string {
	naive := namer.Pluralize(entityName) + "OrderBy"

	candidates := []string{
		naive,
		entityName + "sOrderBy",
		entityName + "esOrderBy",
		entityName + "OrderBy",
	}
	for _, name := range candidates {
		if t := idx.Lookup(name); t != nil && t.Kind == introspection.KindEnum {
			return name
		}
	}

	for i := range doc.Schema.Types {
		t := &doc.Schema.Types[i]
		if t.Kind != introspection.KindEnum || !strings.HasSuffix(t.Name, "OrderBy") {
			continue
		}
		stripped := strings.TrimSuffix(t.Name, "OrderBy")
		if namer.Singularize(stripped) == entityName {
			return t.Name
		}
	}

	// Unchecked fallback so downstream always has a name to try.
	return naive
}
