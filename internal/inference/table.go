// Package inference reconstructs a relational model from a raw GraphQL
// introspection document produced by a PostGraphile-style API. It has no
// server cooperation to lean on: entities, relations, CRUD operation names,
// and keys are recovered by matching the well-known but informally specified
// PostGraphile naming conventions, degrading to fallbacks instead of failing
// when a schema strays from them.
package inference

// Table is one inferred entity with everything downstream code generation
// needs: data fields, relations, operation names, keys, and derived type
// names.
type Table struct {
	Name        string      `json:"name" yaml:"name"`
	Fields      []Field     `json:"fields" yaml:"fields"`
	Relations   Relations   `json:"relations" yaml:"relations"`
	Query       Operations  `json:"query" yaml:"query"`
	Constraints Constraints `json:"constraints" yaml:"constraints"`
	Inflection  Inflection  `json:"inflection" yaml:"inflection"`
}

// Field is a leaf data attribute of an entity, never a relation.
type Field struct {
	Name string    `json:"name" yaml:"name"`
	Type FieldType `json:"type" yaml:"type"`
}

// FieldType is the unwrapped GraphQL type of a data field.
type FieldType struct {
	GQLType string `json:"gqlType" yaml:"gqlType"`
	IsArray bool   `json:"isArray" yaml:"isArray"`
}

// Relations groups an entity's inferred relationships by cardinality.
// HasOne is always empty: introspection alone cannot distinguish 1:1 from
// 1:many without constraint metadata.
type Relations struct {
	BelongsTo  []BelongsToRelation  `json:"belongsTo" yaml:"belongsTo"`
	HasOne     []HasManyRelation    `json:"hasOne" yaml:"hasOne"`
	HasMany    []HasManyRelation    `json:"hasMany" yaml:"hasMany"`
	ManyToMany []ManyToManyRelation `json:"manyToMany" yaml:"manyToMany"`
}

// BelongsToRelation is a field returning another entity directly.
// Relations store table names only, never Table references; resolving them
// through a name index is what keeps mutually-related entities from forming
// a cyclic object graph.
type BelongsToRelation struct {
	FieldName       string   `json:"fieldName" yaml:"fieldName"`
	ReferencesTable string   `json:"referencesTable" yaml:"referencesTable"`
	Type            string   `json:"type" yaml:"type"`
	Keys            []string `json:"keys" yaml:"keys"`
}

// HasManyRelation is a field returning a Connection of another entity.
type HasManyRelation struct {
	FieldName         string   `json:"fieldName" yaml:"fieldName"`
	ReferencedByTable string   `json:"referencedByTable" yaml:"referencedByTable"`
	Type              string   `json:"type" yaml:"type"`
	Keys              []string `json:"keys" yaml:"keys"`
}

// ManyToManyRelation is recovered from a compound field name of the form
// {plural}By{Junction}{Key1}And{Key2}. The junction table is known only by
// name; introspection carries no real constraint metadata for it.
type ManyToManyRelation struct {
	FieldName     string `json:"fieldName" yaml:"fieldName"`
	RightTable    string `json:"rightTable" yaml:"rightTable"`
	JunctionTable string `json:"junctionTable" yaml:"junctionTable"`
	Type          string `json:"type" yaml:"type"`
}

// Relation type discriminators carried on each relation record.
const (
	RelationBelongsTo  = "belongsTo"
	RelationHasMany    = "hasMany"
	RelationManyToMany = "manyToMany"
)

// Operations holds the matched root field names for an entity's CRUD surface.
// All and Create always carry a value: when no real match was found they are
// filled with the conventional name as a display fallback. One, Update, and
// Delete are empty when unmatched.
type Operations struct {
	All            string `json:"all" yaml:"all"`
	One            string `json:"one,omitempty" yaml:"one,omitempty"`
	Create         string `json:"create" yaml:"create"`
	Update         string `json:"update,omitempty" yaml:"update,omitempty"`
	Delete         string `json:"delete,omitempty" yaml:"delete,omitempty"`
	PatchFieldName string `json:"patchFieldName" yaml:"patchFieldName"`
}

// Constraints holds inferred key information. ForeignKey and Unique stay
// empty: the information simply is not present in introspection output, and
// guessing would be worse than declining.
type Constraints struct {
	PrimaryKey []string `json:"primaryKey" yaml:"primaryKey"`
	ForeignKey []string `json:"foreignKey" yaml:"foreignKey"`
	Unique     []string `json:"unique" yaml:"unique"`
}

// Inflection is the set of conventionally-derived companion type names for
// an entity. OrderByType and PatchType are verified against the document
// where possible; the rest follow the convention unchecked.
type Inflection struct {
	TypeName          string `json:"typeName" yaml:"typeName"`
	ConnectionType    string `json:"connectionType" yaml:"connectionType"`
	OrderByType       string `json:"orderByType" yaml:"orderByType"`
	FilterType        string `json:"filterType" yaml:"filterType"`
	ConditionType     string `json:"conditionType" yaml:"conditionType"`
	PatchType         string `json:"patchType" yaml:"patchType"`
	CreateInputType   string `json:"createInputType" yaml:"createInputType"`
	UpdateInputType   string `json:"updateInputType" yaml:"updateInputType"`
	DeleteInputType   string `json:"deleteInputType" yaml:"deleteInputType"`
	CreatePayloadType string `json:"createPayloadType" yaml:"createPayloadType"`
	UpdatePayloadType string `json:"updatePayloadType" yaml:"updatePayloadType"`
	DeletePayloadType string `json:"deletePayloadType" yaml:"deletePayloadType"`
}
