package introspection

import "strings"

// builtinTypeNames are well-known scalar, root, and Relay plumbing types that
// no inference stage should ever treat as an entity.
var builtinTypeNames = map[string]struct{}{
	"Query":        {},
	"Mutation":     {},
	"Subscription": {},
	"String":       {},
	"Int":          {},
	"Float":        {},
	"Boolean":      {},
	"ID":           {},
	"Node":         {},
	"PageInfo":     {},
	"Cursor":       {},
	"UUID":         {},
	"Datetime":     {},
	"Date":         {},
	"Time":         {},
	"JSON":         {},
	"BigInt":       {},
	"BigFloat":     {},
}

// Index is a name-keyed lookup over a document's types. All inference
// traversals go through flat name lookups on this index rather than chasing
// object references, so mutually-referential entity types cannot recurse.
type Index struct {
	byName map[string]*FullType
	doc    *Document
}

// NewIndex builds the lookup table over every introspected type. Nothing is
// filtered at this stage; builtin and internal classification is applied by
// callers per lookup.
func NewIndex(doc *Document) *Index {
	idx := &Index{
		byName: make(map[string]*FullType, len(doc.Schema.Types)),
		doc:    doc,
	}
	for i := range doc.Schema.Types {
		t := &doc.Schema.Types[i]
		if t.Name == "" {
			continue
		}
		if _, exists := idx.byName[t.Name]; exists {
			// First definition wins; duplicate names in a document are
			// malformed but must not destabilize inference.
			continue
		}
		idx.byName[t.Name] = t
	}
	return idx
}

// Lookup returns the type with the given name, or nil.
func (idx *Index) Lookup(name string) *FullType {
	return idx.byName[name]
}

// Field returns the named field of the named type, or nil.
func (idx *Index) Field(typeName, fieldName string) *Field {
	t := idx.Lookup(typeName)
	if t == nil {
		return nil
	}
	for i := range t.Fields {
		if t.Fields[i].Name == fieldName {
			return &t.Fields[i]
		}
	}
	return nil
}

// IsBuiltin reports whether name belongs to the well-known scalar/root set.
func IsBuiltin(name string) bool {
	_, ok := builtinTypeNames[name]
	return ok
}

// IsInternal reports whether name is a GraphQL introspection-internal type.
func IsInternal(name string) bool {
	return strings.HasPrefix(name, "__")
}

// IsEntityCandidate reports whether name refers to an OBJECT type that is
// neither builtin nor internal, i.e. something a Connection may expose.
func (idx *Index) IsEntityCandidate(name string) bool {
	if name == "" || IsBuiltin(name) || IsInternal(name) {
		return false
	}
	t := idx.Lookup(name)
	return t != nil && t.Kind == KindObject
}
