package inference

import (
	"strings"

	"graphile-codegen/internal/introspection"
	"graphile-codegen/internal/naming"
)

// matchOperations resolves the CRUD root field names for an entity. The
// returned bool reports whether at least one genuine match was found; tables
// with zero real operations are noise and get dropped by the caller.
//
// All and Create are filled with conventional fallback names when unmatched,
// so emitted tables always display something sensible.
func matchOperations(entityName string, doc *introspection.Document, idx *introspection.Index, ents *entitySet, namer *naming.Namer) (Operations, bool) {
	ops := Operations{}
	real := false

	queryType := rootType(doc.QueryTypeName(), "Query", idx)
	mutationType := rootType(doc.MutationTypeName(), "Mutation", idx)

	if queryType != nil {
		connName := ents.connectionByEntity[entityName]
		if name, ok := matchListQuery(entityName, connName, queryType, namer); ok {
			ops.All = name
			real = true
		}
		if name, ok := matchSingleQuery(entityName, queryType, namer); ok {
			ops.One = name
			real = true
		}
	}

	if mutationType != nil {
		if name, ok := matchMutation(mutationType, "create"+entityName); ok {
			ops.Create = name
			real = true
		}
		if name, ok := matchMutationPreferCanonical(mutationType, "update"+entityName); ok {
			ops.Update = name
			real = true
		}
		if name, ok := matchMutationPreferCanonical(mutationType, "delete"+entityName); ok {
			ops.Delete = name
			real = true
		}
	}

	if ops.All == "" {
		ops.All = namer.LowerCamel(namer.Pluralize(entityName))
	}
	if ops.Create == "" {
		ops.Create = "create" + entityName
	}
	return ops, real
}

// rootType resolves a root operation type, tolerating documents that omit the
// queryType/mutationType header by falling back to the conventional name.
func rootType(reported, conventional string, idx *introspection.Index) *introspection.FullType {
	if reported != "" {
		return idx.Lookup(reported)
	}
	return idx.Lookup(conventional)
}

// matchListQuery finds a Query field returning the entity's Connection type.
// The field literally named after the pluralized entity wins over other
// matches; otherwise the first match in field order is taken.
func matchListQuery(entityName, connName string, queryType *introspection.FullType, namer *naming.Namer) (string, bool) {
	if connName == "" {
		return "", false
	}
	preferred := namer.LowerCamel(namer.Pluralize(entityName))
	first := ""
	for i := range queryType.Fields {
		f := &queryType.Fields[i]
		if f.Type.NamedType() != connName {
			continue
		}
		if f.Name == preferred {
			return f.Name, true
		}
		if first == "" {
			first = f.Name
		}
	}
	return first, first != ""
}

// matchSingleQuery finds a Query field returning the entity type itself with
// an id-like argument. Fields without such an argument (computed lookups,
// current-session helpers) are not row lookups.
func matchSingleQuery(entityName string, queryType *introspection.FullType, namer *naming.Namer) (string, bool) {
	preferred := namer.LowerCamel(entityName)
	first := ""
	for i := range queryType.Fields {
		f := &queryType.Fields[i]
		if f.Type.NamedType() != entityName || !hasIDLikeArg(f) {
			continue
		}
		if f.Name == preferred {
			return f.Name, true
		}
		if first == "" {
			first = f.Name
		}
	}
	return first, first != ""
}

func hasIDLikeArg(f *introspection.Field) bool {
	for i := range f.Args {
		name := strings.ToLower(f.Args[i].Name)
		if name == "id" || name == "nodeid" || strings.HasSuffix(name, "id") {
			return true
		}
	}
	return false
}

// matchMutation finds a Mutation field by exact name.
func matchMutation(mutationType *introspection.FullType, name string) (string, bool) {
	for i := range mutationType.Fields {
		if mutationType.Fields[i].Name == name {
			return name, true
		}
	}
	return "", false
}

// matchMutationPreferCanonical matches the canonical mutation name or its
// ById variant. When both exist the canonical form always wins; this is an
// explicit preference, not first-seen order.
func matchMutationPreferCanonical(mutationType *introspection.FullType, name string) (string, bool) {
	if matched, ok := matchMutation(mutationType, name); ok {
		return matched, true
	}
	return matchMutation(mutationType, name+"ById")
}
