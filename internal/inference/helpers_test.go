package inference

import (
	"graphile-codegen/internal/introspection"
)

// Fixture builders for hand-rolled introspection documents. Kept minimal on
// purpose: tests construct exactly the shapes the matcher under test cares
// about and nothing else.

func namedRef(kind, name string) *introspection.TypeRef {
	return &introspection.TypeRef{Kind: kind, Name: name}
}

func scalarRef(name string) *introspection.TypeRef {
	return namedRef(introspection.KindScalar, name)
}

func objectRef(name string) *introspection.TypeRef {
	return namedRef(introspection.KindObject, name)
}

func nonNull(of *introspection.TypeRef) *introspection.TypeRef {
	return &introspection.TypeRef{Kind: introspection.KindNonNull, OfType: of}
}

func listOf(of *introspection.TypeRef) *introspection.TypeRef {
	return &introspection.TypeRef{Kind: introspection.KindList, OfType: of}
}

func objectType(name string, fields ...introspection.Field) introspection.FullType {
	return introspection.FullType{Kind: introspection.KindObject, Name: name, Fields: fields}
}

func inputType(name string, fields ...introspection.InputValue) introspection.FullType {
	return introspection.FullType{Kind: introspection.KindInputObject, Name: name, InputFields: fields}
}

func enumType(name string, values ...string) introspection.FullType {
	t := introspection.FullType{Kind: introspection.KindEnum, Name: name}
	for _, v := range values {
		t.EnumValues = append(t.EnumValues, introspection.EnumValue{Name: v})
	}
	return t
}

func outField(name string, ref *introspection.TypeRef, args ...introspection.InputValue) introspection.Field {
	return introspection.Field{Name: name, Type: ref, Args: args}
}

func inValue(name string, ref *introspection.TypeRef) introspection.InputValue {
	return introspection.InputValue{Name: name, Type: ref}
}

// connectionType builds a Relay-style connection exposing nodes of entity.
func connectionType(name, entity string) introspection.FullType {
	return objectType(name,
		outField("nodes", listOf(objectRef(entity))),
		outField("totalCount", nonNull(scalarRef("Int"))),
		outField("pageInfo", nonNull(objectRef("PageInfo"))),
	)
}

func document(types ...introspection.FullType) *introspection.Document {
	return &introspection.Document{Schema: introspection.Schema{
		QueryType:    &introspection.NamedTypeRef{Name: "Query"},
		MutationType: &introspection.NamedTypeRef{Name: "Mutation"},
		Types:        types,
	}}
}

// userDocument is the canonical happy-path fixture: a User entity with the
// full PostGraphile CRUD surface.
func userDocument() *introspection.Document {
	return document(
		objectType("Query",
			outField("users", nonNull(objectRef("UsersConnection")),
				inValue("first", scalarRef("Int")),
				inValue("orderBy", listOf(namedRef(introspection.KindEnum, "UsersOrderBy")))),
			outField("user", objectRef("User"), inValue("id", nonNull(scalarRef("Int")))),
			outField("userByNodeId", objectRef("User"), inValue("nodeId", nonNull(scalarRef("ID")))),
		),
		objectType("Mutation",
			outField("createUser", objectRef("CreateUserPayload"), inValue("input", nonNull(namedRef(introspection.KindInputObject, "CreateUserInput")))),
			outField("updateUser", objectRef("UpdateUserPayload"), inValue("input", nonNull(namedRef(introspection.KindInputObject, "UpdateUserInput")))),
			outField("updateUserById", objectRef("UpdateUserPayload")),
			outField("deleteUser", objectRef("DeleteUserPayload"), inValue("input", nonNull(namedRef(introspection.KindInputObject, "DeleteUserInput")))),
		),
		objectType("User",
			outField("id", nonNull(scalarRef("Int"))),
			outField("name", scalarRef("String")),
			outField("createdAt", scalarRef("Datetime")),
			outField("nodeId", nonNull(scalarRef("ID"))),
		),
		connectionType("UsersConnection", "User"),
		enumType("UsersOrderBy", "NATURAL", "ID_ASC", "ID_DESC"),
		inputType("UpdateUserInput",
			inValue("clientMutationId", scalarRef("String")),
			inValue("id", nonNull(scalarRef("Int"))),
			inValue("userPatch", nonNull(namedRef(introspection.KindInputObject, "UserPatch"))),
		),
		inputType("DeleteUserInput",
			inValue("clientMutationId", scalarRef("String")),
			inValue("id", nonNull(scalarRef("Int"))),
		),
		inputType("UserPatch", inValue("name", scalarRef("String"))),
		objectType("PageInfo", outField("hasNextPage", nonNull(scalarRef("Boolean")))),
	)
}
