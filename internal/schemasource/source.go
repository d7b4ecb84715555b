// Package schemasource obtains an introspection document from a configured
// source: a live GraphQL endpoint, a saved introspection JSON file, or a
// local SDL file. This is the only place inference-adjacent I/O happens, and
// it fails fast with a descriptive error instead of handing partial or empty
// data to the inference pipeline.
package schemasource

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"graphile-codegen/internal/introspection"
)

// Config selects exactly one source.
type Config struct {
	// Endpoint is a GraphQL HTTP(S) URL to introspect.
	Endpoint string `mapstructure:"endpoint"`
	// Headers are extra request headers for Endpoint, "Name: value" form.
	Headers []string `mapstructure:"headers"`
	// File is a path to a saved introspection JSON result.
	File string `mapstructure:"file"`
	// SDLFile is a path to a GraphQL SDL document.
	SDLFile string `mapstructure:"sdl_file"`
	// Timeout bounds the endpoint request. Zero means 30s.
	Timeout time.Duration `mapstructure:"timeout"`
}

// Fetch resolves the configured source to an introspection document.
func Fetch(ctx context.Context, cfg Config) (*introspection.Document, error) {
	ctx, span := startSpan(ctx, "schemasource.fetch")
	defer span.End()

	var (
		doc *introspection.Document
		err error
	)
	switch {
	case cfg.Endpoint != "":
		span.SetAttributes(attribute.String("schemasource.kind", "endpoint"))
		doc, err = fetchEndpoint(ctx, cfg)
	case cfg.File != "":
		span.SetAttributes(attribute.String("schemasource.kind", "file"))
		doc, err = loadFile(cfg.File)
	case cfg.SDLFile != "":
		span.SetAttributes(attribute.String("schemasource.kind", "sdl"))
		doc, err = loadSDLFile(cfg.SDLFile)
	default:
		err = fmt.Errorf("no schema source configured: set endpoint, file, or sdl_file")
	}
	recordSpanError(span, err)
	return doc, err
}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := otel.Tracer("graphile-codegen/schemasource")
	ctx, span := tracer.Start(ctx, name)
	if len(attrs) > 0 {
		span.SetAttributes(attrs...)
	}
	return ctx, span
}

func recordSpanError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
