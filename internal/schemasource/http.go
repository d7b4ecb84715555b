package schemasource

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"graphile-codegen/internal/introspection"
)

const defaultTimeout = 30 * time.Second

// graphqlResponse is the transport envelope of a GraphQL HTTP response.
type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func fetchEndpoint(ctx context.Context, cfg Config) (*introspection.Document, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := json.Marshal(map[string]string{"query": introspectionQuery})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", cfg.Endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for _, header := range cfg.Headers {
		name, value, ok := strings.Cut(header, ":")
		if !ok {
			return nil, fmt.Errorf("malformed header %q: want \"Name: value\"", header)
		}
		req.Header.Set(strings.TrimSpace(name), strings.TrimSpace(value))
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("introspection request to %s failed: %w", cfg.Endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<20))
	if err != nil {
		return nil, fmt.Errorf("reading introspection response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("introspection request to %s returned %s", cfg.Endpoint, resp.Status)
	}

	var envelope graphqlResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("endpoint %s did not return JSON: %w", cfg.Endpoint, err)
	}
	if len(envelope.Errors) > 0 {
		// Most commonly introspection is disabled server-side. Surface the
		// server's own message instead of an empty document.
		return nil, fmt.Errorf("introspection query rejected by %s: %s", cfg.Endpoint, envelope.Errors[0].Message)
	}
	if len(envelope.Data) == 0 {
		return nil, fmt.Errorf("endpoint %s returned no data for the introspection query", cfg.Endpoint)
	}
	return introspection.Decode(envelope.Data)
}
