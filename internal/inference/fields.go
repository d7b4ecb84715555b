package inference

import (
	"strings"

	"graphile-codegen/internal/introspection"
)

// extractFields returns the true data fields of an entity. A field is a
// relation, and excluded here, iff its unwrapped base type is an OBJECT that
// is either a Connection or a recognized entity. Scalars, enums, and OBJECT
// types the detector never recognized (embedded composites, JSON-like shapes)
// all count as data.
func extractFields(entity *introspection.FullType, ents *entitySet) []Field {
	fields := make([]Field, 0, len(entity.Fields))
	for i := range entity.Fields {
		f := &entity.Fields[i]
		leaf := f.Type.Unwrap()
		if leaf == nil {
			// Unresolvable wrapper chains pass through rather than failing.
			fields = append(fields, Field{
				Name: f.Name,
				Type: FieldType{GQLType: "Unknown", IsArray: f.Type.IsList()},
			})
			continue
		}
		if leaf.Kind == introspection.KindObject &&
			(strings.HasSuffix(leaf.Name, "Connection") || ents.isEntity(leaf.Name)) {
			continue
		}
		fields = append(fields, Field{
			Name: f.Name,
			Type: FieldType{GQLType: leaf.Name, IsArray: f.Type.IsList()},
		})
	}
	return fields
}
