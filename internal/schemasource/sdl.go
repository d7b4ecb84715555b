package schemasource

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"graphile-codegen/internal/introspection"
)

// loadSDLFile parses a GraphQL SDL document and synthesizes the equivalent
// introspection result, so local schema files work exactly like a live
// endpoint. Types are emitted in name order: gqlparser stores them in a map
// and inference output must stay deterministic per document.
func loadSDLFile(path string) (*introspection.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading SDL file: %w", err)
	}

	schema, err := gqlparser.LoadSchema(&ast.Source{Name: path, Input: string(raw)})
	if err != nil {
		return nil, fmt.Errorf("parsing SDL file %s: %w", path, err)
	}

	doc := &introspection.Document{}
	if schema.Query != nil {
		doc.Schema.QueryType = &introspection.NamedTypeRef{Name: schema.Query.Name}
	}
	if schema.Mutation != nil {
		doc.Schema.MutationType = &introspection.NamedTypeRef{Name: schema.Mutation.Name}
	}
	if schema.Subscription != nil {
		doc.Schema.SubscriptionType = &introspection.NamedTypeRef{Name: schema.Subscription.Name}
	}

	names := make([]string, 0, len(schema.Types))
	for name := range schema.Types {
		if strings.HasPrefix(name, "__") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		doc.Schema.Types = append(doc.Schema.Types, fullTypeFromDefinition(schema, schema.Types[name]))
	}
	if len(doc.Schema.Types) == 0 {
		return nil, fmt.Errorf("SDL file %s defines no types", path)
	}
	return doc, nil
}

func fullTypeFromDefinition(schema *ast.Schema, def *ast.Definition) introspection.FullType {
	t := introspection.FullType{
		Kind:        string(def.Kind),
		Name:        def.Name,
		Description: def.Description,
	}

	switch def.Kind {
	case ast.Object, ast.Interface:
		for _, f := range def.Fields {
			if strings.HasPrefix(f.Name, "__") {
				continue
			}
			field := introspection.Field{
				Name: f.Name,
				Type: typeRefFromAst(schema, f.Type),
			}
			for _, arg := range f.Arguments {
				field.Args = append(field.Args, inputValueFromAst(schema, arg.Name, arg.Type, arg.DefaultValue))
			}
			t.Fields = append(t.Fields, field)
		}
	case ast.InputObject:
		for _, f := range def.Fields {
			t.InputFields = append(t.InputFields, inputValueFromAst(schema, f.Name, f.Type, f.DefaultValue))
		}
	case ast.Enum:
		for _, v := range def.EnumValues {
			t.EnumValues = append(t.EnumValues, introspection.EnumValue{Name: v.Name})
		}
	}
	return t
}

func inputValueFromAst(schema *ast.Schema, name string, typ *ast.Type, defaultValue *ast.Value) introspection.InputValue {
	iv := introspection.InputValue{
		Name: name,
		Type: typeRefFromAst(schema, typ),
	}
	if defaultValue != nil {
		rendered := defaultValue.String()
		iv.DefaultValue = &rendered
	}
	return iv
}

// typeRefFromAst converts gqlparser's compact type notation into the nested
// introspection wrapper form.
func typeRefFromAst(schema *ast.Schema, t *ast.Type) *introspection.TypeRef {
	if t == nil {
		return nil
	}
	if t.NonNull {
		inner := *t
		inner.NonNull = false
		return &introspection.TypeRef{
			Kind:   introspection.KindNonNull,
			OfType: typeRefFromAst(schema, &inner),
		}
	}
	if t.Elem != nil {
		return &introspection.TypeRef{
			Kind:   introspection.KindList,
			OfType: typeRefFromAst(schema, t.Elem),
		}
	}
	kind := introspection.KindScalar
	if def, ok := schema.Types[t.NamedType]; ok && def != nil {
		kind = string(def.Kind)
	}
	return &introspection.TypeRef{Kind: kind, Name: t.NamedType}
}
