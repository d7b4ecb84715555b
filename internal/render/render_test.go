package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"graphile-codegen/internal/inference"
)

func sampleTables() []inference.Table {
	return []inference.Table{{
		Name: "User",
		Fields: []inference.Field{
			{Name: "id", Type: inference.FieldType{GQLType: "Int"}},
			{Name: "name", Type: inference.FieldType{GQLType: "String"}},
		},
		Relations: inference.Relations{
			HasMany: []inference.HasManyRelation{
				{FieldName: "posts", ReferencedByTable: "Post", Type: inference.RelationHasMany, Keys: []string{}},
			},
		},
		Query: inference.Operations{
			All:    "users",
			One:    "user",
			Create: "createUser",
			Update: "updateUser",
		},
		Constraints: inference.Constraints{PrimaryKey: []string{"id"}, ForeignKey: []string{}, Unique: []string{}},
	}}
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleTables(), FormatJSON, true))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "User", decoded[0]["name"])

	query := decoded[0]["query"].(map[string]any)
	assert.Equal(t, "users", query["all"])
	// Unmatched operations are omitted entirely rather than emitted empty.
	_, hasDelete := query["delete"]
	assert.False(t, hasDelete)
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleTables(), FormatYAML, true))

	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "User", decoded[0]["name"])
}

func TestRender_Summary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleTables(), FormatSummary, true))

	out := buf.String()
	assert.Contains(t, out, "Inferred 1 table(s)")
	assert.Contains(t, out, "User")
	assert.Contains(t, out, "primary key: id")
	assert.Contains(t, out, "has many Post")
	assert.Contains(t, out, "all=users")
	assert.NotContains(t, out, "delete=")
}

func TestRender_SummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, nil, FormatSummary, true))
	assert.Contains(t, buf.String(), "No tables inferred")
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, sampleTables(), "xml", true)
	assert.ErrorContains(t, err, "unknown output format")
}
