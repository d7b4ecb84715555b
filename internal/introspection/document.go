// Package introspection models the JSON result of the standard GraphQL
// IntrospectionQuery and provides lookup helpers over it. It is the input
// side of table inference: a flat, immutable description of every type,
// field, and operation a remote schema exposes.
package introspection

import (
	"encoding/json"
	"fmt"
)

// Type kinds as reported by __schema.types[].kind.
const (
	KindScalar      = "SCALAR"
	KindObject      = "OBJECT"
	KindInterface   = "INTERFACE"
	KindUnion       = "UNION"
	KindEnum        = "ENUM"
	KindInputObject = "INPUT_OBJECT"
	KindList        = "LIST"
	KindNonNull     = "NON_NULL"
)

// Document is a parsed introspection result.
type Document struct {
	Schema Schema `json:"__schema"`
}

// Schema mirrors the __schema selection of the standard introspection query.
type Schema struct {
	QueryType        *NamedTypeRef `json:"queryType"`
	MutationType     *NamedTypeRef `json:"mutationType"`
	SubscriptionType *NamedTypeRef `json:"subscriptionType"`
	Types            []FullType    `json:"types"`
}

// NamedTypeRef is the minimal { name } selection used for root operation types.
type NamedTypeRef struct {
	Name string `json:"name"`
}

// FullType is a single entry of __schema.types.
type FullType struct {
	Kind        string       `json:"kind"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Fields      []Field      `json:"fields"`
	InputFields []InputValue `json:"inputFields"`
	Interfaces  []TypeRef    `json:"interfaces"`
	EnumValues  []EnumValue  `json:"enumValues"`
}

// Field is an output field on an OBJECT or INTERFACE type.
type Field struct {
	Name string       `json:"name"`
	Args []InputValue `json:"args"`
	Type *TypeRef     `json:"type"`
}

// InputValue is a field argument or an INPUT_OBJECT field.
type InputValue struct {
	Name         string   `json:"name"`
	Type         *TypeRef `json:"type"`
	DefaultValue *string  `json:"defaultValue"`
}

// EnumValue is a single member of an ENUM type.
type EnumValue struct {
	Name string `json:"name"`
}

// envelope accepts the transport-level {"data": {...}} wrapper many clients
// save verbatim when capturing an introspection response.
type envelope struct {
	Data *Document `json:"data"`
}

// Decode parses raw introspection JSON into a Document. It accepts both a
// bare {"__schema": ...} object and a {"data": {"__schema": ...}} envelope.
// A payload with no __schema at all is rejected; this is the one hard
// failure the inference pipeline relies on being caught upstream.
func Decode(raw []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid introspection JSON: %w", err)
	}
	if len(doc.Schema.Types) == 0 {
		var env envelope
		if err := json.Unmarshal(raw, &env); err == nil && env.Data != nil && len(env.Data.Schema.Types) > 0 {
			return env.Data, nil
		}
		return nil, fmt.Errorf("introspection response has no __schema types; is introspection enabled on the server?")
	}
	return &doc, nil
}

// QueryTypeName returns the name of the root query type, or "" when the
// schema did not report one.
func (d *Document) QueryTypeName() string {
	if d.Schema.QueryType == nil {
		return ""
	}
	return d.Schema.QueryType.Name
}

// MutationTypeName returns the name of the root mutation type, or "".
func (d *Document) MutationTypeName() string {
	if d.Schema.MutationType == nil {
		return ""
	}
	return d.Schema.MutationType.Name
}
