package inference

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graphile-codegen/internal/testutil"
)

// Runs inference over a document produced by executing the real
// introspection query against an in-memory schema, rather than over
// hand-built fixtures.
func TestInferTables_LiveIntrospectionDocument(t *testing.T) {
	doc := testutil.IntrospectSchema(t, testutil.BlogSchema(t))

	tables := InferTables(context.Background(), doc, nil)
	require.Len(t, tables, 1)
	table := tables[0]

	assert.Equal(t, "User", table.Name)
	assert.Equal(t, "users", table.Query.All)
	assert.Equal(t, "user", table.Query.One)
	assert.Equal(t, "createUser", table.Query.Create)
	assert.Equal(t, "updateUser", table.Query.Update)
	assert.Equal(t, "userPatch", table.Query.PatchFieldName)
	assert.Equal(t, []string{"id"}, table.Constraints.PrimaryKey)
	assert.Equal(t, "UsersOrderBy", table.Inflection.OrderByType)

	names := make([]string, 0, len(table.Fields))
	for _, f := range table.Fields {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, []string{"id", "name"}, names)
}
