package inference

import (
	"regexp"
	"strings"

	"graphile-codegen/internal/introspection"
	"graphile-codegen/internal/naming"
)

var connectionNameRE = regexp.MustCompile(`^(.+)Connection$`)

// entitySet is the result of scanning a document for Connection types. Entity
// names are kept in discovery order so the final table list is deterministic
// for a given document.
type entitySet struct {
	names []string
	// entityByConnection maps every matched Connection type to its entity.
	entityByConnection map[string]string
	// connectionByEntity maps an entity to the first Connection that exposed
	// it. Duplicate Connections for one entity are deliberately not merged;
	// later ones stay reachable through entityByConnection only.
	connectionByEntity map[string]string
	member             map[string]struct{}
}

func (e *entitySet) isEntity(name string) bool {
	_, ok := e.member[name]
	return ok
}

// detectEntities finds every {X}Connection OBJECT type and resolves the
// entity behind it. The structural route through the connection's nodes
// field is authoritative: naming alone misfires on irregular plurals and on
// singular (v5-style) connection names. The pluralization fallback only runs
// when there is no usable nodes field.
func detectEntities(doc *introspection.Document, idx *introspection.Index, namer *naming.Namer) *entitySet {
	ents := &entitySet{
		entityByConnection: make(map[string]string),
		connectionByEntity: make(map[string]string),
		member:             make(map[string]struct{}),
	}

	for i := range doc.Schema.Types {
		t := &doc.Schema.Types[i]
		if t.Kind != introspection.KindObject || introspection.IsInternal(t.Name) {
			continue
		}
		m := connectionNameRE.FindStringSubmatch(t.Name)
		if m == nil {
			continue
		}

		entityName := resolveEntityFromConnection(t, idx)
		if entityName == "" {
			// Fallback: singularize the name prefix ("Users" -> "User").
			candidate := namer.Singularize(m[1])
			if idx.IsEntityCandidate(candidate) {
				entityName = candidate
			}
		}
		if entityName == "" {
			continue
		}

		ents.entityByConnection[t.Name] = entityName
		if _, seen := ents.member[entityName]; !seen {
			ents.member[entityName] = struct{}{}
			ents.names = append(ents.names, entityName)
			ents.connectionByEntity[entityName] = t.Name
		}
	}
	return ents
}

// resolveEntityFromConnection unwraps the connection's nodes field to the
// underlying entity type name. Returns "" when the connection has no usable
// nodes field.
func resolveEntityFromConnection(conn *introspection.FullType, idx *introspection.Index) string {
	for i := range conn.Fields {
		f := &conn.Fields[i]
		if f.Name != "nodes" {
			continue
		}
		name := f.Type.NamedType()
		if name == "" || strings.HasSuffix(name, "Connection") {
			return ""
		}
		if !idx.IsEntityCandidate(name) {
			return ""
		}
		return name
	}
	return ""
}
