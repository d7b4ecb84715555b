package inference

import (
	"regexp"
	"strings"

	"graphile-codegen/internal/introspection"
	"graphile-codegen/internal/naming"
)

var (
	// manyToManyLeftRE captures the leading plural in a compound M2M field
	// name, e.g. "products" in "productsByOrderItemOrderIdAndProductId".
	manyToManyLeftRE = regexp.MustCompile(`^([a-z]+)By`)

	// junctionNameRE captures the capitalized word run between "By" and the
	// first "...Id" key suffix, which is the junction table's type name under
	// the PostGraphile convention.
	junctionNameRE = regexp.MustCompile(`By([A-Z][a-z]+(?:[A-Z][a-z]+)*?)(?:[A-Z][a-z]+Id)`)
)

// isManyToManyFieldName applies the PostGraphile compound-key convention.
// Known limitation: any field name that happens to contain both "By" and
// "And" outside the compound pattern will match too. Generated output for
// existing schemas depends on this exact behavior, so it stays unguarded.
func isManyToManyFieldName(name string) bool {
	return strings.Contains(name, "By") && strings.Contains(name, "And")
}

// inferRelations classifies an entity's relation-shaped fields. Fields whose
// shape fits none of the buckets are silently omitted; relation inference
// never errors.
func inferRelations(entity *introspection.FullType, ents *entitySet, namer *naming.Namer) Relations {
	rels := Relations{
		BelongsTo:  []BelongsToRelation{},
		HasOne:     []HasManyRelation{},
		HasMany:    []HasManyRelation{},
		ManyToMany: []ManyToManyRelation{},
	}

	for i := range entity.Fields {
		f := &entity.Fields[i]
		leaf := f.Type.Unwrap()
		if leaf == nil || leaf.Kind != introspection.KindObject {
			continue
		}

		switch {
		case strings.HasSuffix(leaf.Name, "Connection"):
			if isManyToManyFieldName(f.Name) {
				rels.ManyToMany = append(rels.ManyToMany, manyToManyFromFieldName(f.Name, leaf.Name, ents, namer))
				continue
			}
			rels.HasMany = append(rels.HasMany, HasManyRelation{
				FieldName:         f.Name,
				ReferencedByTable: connectionEntity(leaf.Name, ents, namer),
				Type:              RelationHasMany,
				Keys:              []string{},
			})

		case ents.isEntity(leaf.Name):
			// FK column names are not recoverable from introspection alone.
			rels.BelongsTo = append(rels.BelongsTo, BelongsToRelation{
				FieldName:       f.Name,
				ReferencesTable: leaf.Name,
				Type:            RelationBelongsTo,
				Keys:            []string{},
			})
		}
	}
	return rels
}

// manyToManyFromFieldName extracts the right-hand entity and junction table
// from a compound field name. The field name is trusted over the Connection's
// nominal entity: natural-language field names can diverge from the type name
// and the field name is what encodes the author's intent.
func manyToManyFromFieldName(fieldName, connName string, ents *entitySet, namer *naming.Namer) ManyToManyRelation {
	rightTable := ""
	if m := manyToManyLeftRE.FindStringSubmatch(fieldName); m != nil {
		rightTable = namer.UpperCamel(namer.Singularize(m[1]))
	}
	if rightTable == "" {
		rightTable = connectionEntity(connName, ents, namer)
	}

	junction := "Unknown"
	if m := junctionNameRE.FindStringSubmatch(fieldName); m != nil {
		junction = m[1]
	}

	return ManyToManyRelation{
		FieldName:     fieldName,
		RightTable:    rightTable,
		JunctionTable: junction,
		Type:          RelationManyToMany,
	}
}

// connectionEntity resolves a Connection type name to its entity via the
// detector's map, falling back to singularizing the name prefix.
func connectionEntity(connName string, ents *entitySet, namer *naming.Namer) string {
	if entity, ok := ents.entityByConnection[connName]; ok {
		return entity
	}
	if m := connectionNameRE.FindStringSubmatch(connName); m != nil {
		return namer.Singularize(m[1])
	}
	return connName
}
