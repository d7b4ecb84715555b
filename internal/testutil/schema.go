// Package testutil builds real introspection documents for tests by
// executing the standard introspection query against in-memory graphql-go
// schemas. Inference tests that use these fixtures exercise the same JSON
// shapes a live PostGraphile endpoint produces.
package testutil

import (
	"encoding/json"
	"testing"

	"github.com/graphql-go/graphql"
	gqltestutil "github.com/graphql-go/graphql/testutil"
	"github.com/stretchr/testify/require"

	"graphile-codegen/internal/introspection"
)

// IntrospectSchema executes the introspection query against schema and
// decodes the result into a Document.
func IntrospectSchema(t *testing.T, schema graphql.Schema) *introspection.Document {
	t.Helper()

	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: gqltestutil.IntrospectionQuery,
	})
	require.Empty(t, result.Errors, "introspection query against test schema failed")

	raw, err := json.Marshal(result.Data)
	require.NoError(t, err)

	doc, err := introspection.Decode(raw)
	require.NoError(t, err)
	return doc
}

// BlogSchema builds a small PostGraphile-shaped schema: a User entity with a
// connection, list/single queries, and CRUD mutations.
func BlogSchema(t *testing.T) graphql.Schema {
	t.Helper()

	pageInfo := graphql.NewObject(graphql.ObjectConfig{
		Name: "PageInfo",
		Fields: graphql.Fields{
			"hasNextPage": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		},
	})

	user := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"name": &graphql.Field{Type: graphql.String},
		},
	})

	usersConnection := graphql.NewObject(graphql.ObjectConfig{
		Name: "UsersConnection",
		Fields: graphql.Fields{
			"nodes":      &graphql.Field{Type: graphql.NewList(user)},
			"totalCount": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"pageInfo":   &graphql.Field{Type: graphql.NewNonNull(pageInfo)},
		},
	})

	usersOrderBy := graphql.NewEnum(graphql.EnumConfig{
		Name: "UsersOrderBy",
		Values: graphql.EnumValueConfigMap{
			"NATURAL": &graphql.EnumValueConfig{Value: "NATURAL"},
			"ID_ASC":  &graphql.EnumValueConfig{Value: "ID_ASC"},
		},
	})

	userPatch := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UserPatch",
		Fields: graphql.InputObjectConfigFieldMap{
			"name": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	updateUserInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateUserInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"clientMutationId": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"id":               &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"userPatch":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(userPatch)},
		},
	})

	noop := func(p graphql.ResolveParams) (interface{}, error) { return nil, nil }

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"users": &graphql.Field{
				Type: graphql.NewNonNull(usersConnection),
				Args: graphql.FieldConfigArgument{
					"first":   &graphql.ArgumentConfig{Type: graphql.Int},
					"orderBy": &graphql.ArgumentConfig{Type: graphql.NewList(usersOrderBy)},
				},
				Resolve: noop,
			},
			"user": &graphql.Field{
				Type: user,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: noop,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createUser": &graphql.Field{Type: user, Resolve: noop},
			"updateUser": &graphql.Field{
				Type: user,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateUserInput)},
				},
				Resolve: noop,
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
		Types:    []graphql.Type{usersOrderBy},
	})
	require.NoError(t, err)
	return schema
}
