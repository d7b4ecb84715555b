package introspection

// TypeRef is GraphQL's recursive type-modifier wrapper. Exactly one of Name
// (leaf) or OfType (NON_NULL/LIST wrapper) is set at each level.
type TypeRef struct {
	Kind   string   `json:"kind"`
	Name   string   `json:"name"`
	OfType *TypeRef `json:"ofType"`
}

// maxWrapDepth caps TypeRef unwrapping. The reference introspection query
// requests 7 levels of ofType nesting; anything deeper is a malformed or
// truncated payload and unwrapping stops rather than recursing forever.
const maxWrapDepth = 16

// Unwrap strips NON_NULL and LIST wrappers and returns the named leaf type.
// Returns nil for a nil ref or a wrapper chain that never reaches a leaf.
func (t *TypeRef) Unwrap() *TypeRef {
	cur := t
	for i := 0; i < maxWrapDepth && cur != nil; i++ {
		if cur.OfType == nil {
			if cur.Name == "" {
				return nil
			}
			return cur
		}
		cur = cur.OfType
	}
	return nil
}

// NamedType returns the leaf type name, or "" when none is reachable.
func (t *TypeRef) NamedType() string {
	leaf := t.Unwrap()
	if leaf == nil {
		return ""
	}
	return leaf.Name
}

// NamedKind returns the leaf type kind, or "" when none is reachable.
func (t *TypeRef) NamedKind() string {
	leaf := t.Unwrap()
	if leaf == nil {
		return ""
	}
	return leaf.Kind
}

// IsList reports whether any wrapper level is a LIST.
func (t *TypeRef) IsList() bool {
	cur := t
	for i := 0; i < maxWrapDepth && cur != nil; i++ {
		if cur.Kind == KindList {
			return true
		}
		cur = cur.OfType
	}
	return false
}
