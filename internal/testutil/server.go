package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
)

// NewGraphQLServer serves schema over HTTP for end-to-end source tests. The
// server is torn down with the test.
func NewGraphQLServer(t *testing.T, schema graphql.Schema) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(handler.New(&handler.Config{Schema: &schema}))
	t.Cleanup(srv.Close)
	return srv
}

// NewRefusingServer serves a fixed GraphQL error for every request, the way
// an endpoint with introspection disabled behaves.
func NewRefusingServer(t *testing.T, message string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"errors":[{"message":` + quoteJSON(message) + `}]}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func quoteJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
