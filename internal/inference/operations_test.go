package inference

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"graphile-codegen/internal/introspection"
	"graphile-codegen/internal/naming"
)

func matchFor(doc *introspection.Document, entity string) (Operations, bool) {
	idx := introspection.NewIndex(doc)
	return matchOperations(entity, doc, idx, detect(doc), naming.Default())
}

func TestMatchOperations_FullCRUDSurface(t *testing.T) {
	ops, real := matchFor(userDocument(), "User")

	assert.True(t, real)
	assert.Equal(t, "users", ops.All)
	assert.Equal(t, "user", ops.One)
	assert.Equal(t, "createUser", ops.Create)
	assert.Equal(t, "updateUser", ops.Update, "canonical form wins over updateUserById")
	assert.Equal(t, "deleteUser", ops.Delete)
}

func TestMatchOperations_ByIdVariantOnly(t *testing.T) {
	doc := document(
		objectType("Query"),
		objectType("Mutation",
			outField("updateUserById", objectRef("UpdateUserPayload")),
			outField("deleteUserById", objectRef("DeleteUserPayload")),
		),
		connectionType("UsersConnection", "User"),
		objectType("User", outField("id", nonNull(scalarRef("Int")))),
	)

	ops, real := matchFor(doc, "User")
	assert.True(t, real)
	assert.Equal(t, "updateUserById", ops.Update)
	assert.Equal(t, "deleteUserById", ops.Delete)
}

func TestMatchOperations_ListPrefersConventionalName(t *testing.T) {
	doc := document(
		objectType("Query",
			outField("allTheUsers", objectRef("UsersConnection")),
			outField("users", objectRef("UsersConnection")),
		),
		connectionType("UsersConnection", "User"),
		objectType("User", outField("id", nonNull(scalarRef("Int")))),
	)

	ops, real := matchFor(doc, "User")
	assert.True(t, real)
	assert.Equal(t, "users", ops.All)
}

func TestMatchOperations_ListFirstMatchWhenNoConventionalName(t *testing.T) {
	doc := document(
		objectType("Query",
			outField("allTheUsers", objectRef("UsersConnection")),
			outField("everybody", objectRef("UsersConnection")),
		),
		connectionType("UsersConnection", "User"),
		objectType("User", outField("id", nonNull(scalarRef("Int")))),
	)

	ops, _ := matchFor(doc, "User")
	assert.Equal(t, "allTheUsers", ops.All)
}

func TestMatchOperations_SingleRequiresIDLikeArg(t *testing.T) {
	doc := document(
		objectType("Query",
			// Session helper returning the entity without an id arg: not a
			// row lookup.
			outField("currentUser", objectRef("User")),
			outField("userByRowId", objectRef("User"), inValue("rowId", nonNull(scalarRef("Int")))),
		),
		connectionType("UsersConnection", "User"),
		objectType("User", outField("id", nonNull(scalarRef("Int")))),
	)

	ops, real := matchFor(doc, "User")
	assert.True(t, real)
	assert.Equal(t, "userByRowId", ops.One)
}

func TestMatchOperations_SinglePrefersConventionalName(t *testing.T) {
	doc := document(
		objectType("Query",
			outField("userByNodeId", objectRef("User"), inValue("nodeId", nonNull(scalarRef("ID")))),
			outField("user", objectRef("User"), inValue("id", nonNull(scalarRef("Int")))),
		),
		connectionType("UsersConnection", "User"),
		objectType("User", outField("id", nonNull(scalarRef("Int")))),
	)

	ops, _ := matchFor(doc, "User")
	assert.Equal(t, "user", ops.One)
}

func TestMatchOperations_NoRealOperations(t *testing.T) {
	doc := document(
		objectType("Query", outField("ping", scalarRef("String"))),
		objectType("Mutation"),
		connectionType("OrphansConnection", "Orphan"),
		objectType("Orphan", outField("id", nonNull(scalarRef("Int")))),
	)

	ops, real := matchFor(doc, "Orphan")
	assert.False(t, real)
	// Display fallbacks are still populated.
	assert.Equal(t, "orphans", ops.All)
	assert.Equal(t, "createOrphan", ops.Create)
	assert.Empty(t, ops.One)
	assert.Empty(t, ops.Update)
	assert.Empty(t, ops.Delete)
}

func TestMatchOperations_IrregularPluralListName(t *testing.T) {
	doc := document(
		objectType("Query",
			outField("people", objectRef("PeopleConnection")),
			outField("person", objectRef("Person"), inValue("id", nonNull(scalarRef("Int")))),
		),
		connectionType("PeopleConnection", "Person"),
		objectType("Person", outField("id", nonNull(scalarRef("Int")))),
	)

	ops, real := matchFor(doc, "Person")
	assert.True(t, real)
	assert.Equal(t, "people", ops.All)
	assert.Equal(t, "person", ops.One)
}

func TestMatchOperations_MissingMutationType(t *testing.T) {
	doc := &introspection.Document{Schema: introspection.Schema{
		QueryType: &introspection.NamedTypeRef{Name: "Query"},
		Types: []introspection.FullType{
			objectType("Query", outField("users", objectRef("UsersConnection"))),
			connectionType("UsersConnection", "User"),
			objectType("User", outField("id", nonNull(scalarRef("Int")))),
		},
	}}

	ops, real := matchFor(doc, "User")
	assert.True(t, real)
	assert.Equal(t, "users", ops.All)
	assert.Empty(t, ops.Update)
}
