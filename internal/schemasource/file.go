package schemasource

import (
	"fmt"
	"os"

	"graphile-codegen/internal/introspection"
)

// loadFile reads a saved introspection result. Both the bare __schema form
// and the {"data": ...} envelope are accepted, since captures of either shape
// are common.
func loadFile(path string) (*introspection.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading introspection file: %w", err)
	}
	doc, err := introspection.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("introspection file %s: %w", path, err)
	}
	return doc, nil
}
