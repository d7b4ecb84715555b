package inference

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"graphile-codegen/internal/introspection"
	"graphile-codegen/internal/naming"
)

// InferTables runs the full inference pipeline over an introspection
// document and returns one Table per discovered entity, in discovery order.
// Entities whose CRUD surface resolves to zero real operations are dropped
// as noise (orphan Connection types, internal plumbing).
//
// The pipeline is a pure transform: it never errors, never mutates the
// document, and holds no state across calls, so concurrent invocations are
// safe. A nil namer uses default inflection rules.
func InferTables(ctx context.Context, doc *introspection.Document, namer *naming.Namer) []Table {
	ctx, span := startSpan(ctx, "inference.infer_tables")
	defer span.End()

	if namer == nil {
		namer = naming.Default()
	}

	idx := introspection.NewIndex(doc)
	ents := detectEntities(doc, idx, namer)
	span.SetAttributes(attribute.Int("inference.entities_detected", len(ents.names)))

	tables := make([]Table, 0, len(ents.names))
	for _, entityName := range ents.names {
		entityType := idx.Lookup(entityName)
		if entityType == nil {
			continue
		}

		ops, real := matchOperations(entityName, doc, idx, ents, namer)
		if !real {
			slog.DebugContext(ctx, "dropping entity with no real operations",
				slog.String("entity", entityName),
			)
			continue
		}

		patchFieldName, patchTypeName := inferPatchField(entityName, idx, namer)
		ops.PatchFieldName = patchFieldName
		orderBy := inferOrderByType(entityName, doc, idx, namer)

		tables = append(tables, Table{
			Name:      entityName,
			Fields:    extractFields(entityType, ents),
			Relations: inferRelations(entityType, ents, namer),
			Query:     ops,
			Constraints: Constraints{
				PrimaryKey: inferPrimaryKey(entityName, idx, namer),
				ForeignKey: []string{},
				Unique:     []string{},
			},
			Inflection: buildInflection(entityName, ents.connectionByEntity[entityName], orderBy, patchTypeName),
		})
	}

	span.SetAttributes(attribute.Int("inference.tables_emitted", len(tables)))
	slog.DebugContext(ctx, "inference complete",
		slog.Int("entities", len(ents.names)),
		slog.Int("tables", len(tables)),
	)
	return tables
}

// buildInflection assembles the companion type names for an entity. OrderBy
// and Patch carry document-verified values when available; the rest follow
// the convention unchecked.
func buildInflection(entityName, connectionType, orderByType, patchType string) Inflection {
	return Inflection{
		TypeName:          entityName,
		ConnectionType:    connectionType,
		OrderByType:       orderByType,
		FilterType:        entityName + "Filter",
		ConditionType:     entityName + "Condition",
		PatchType:         patchType,
		CreateInputType:   "Create" + entityName + "Input",
		UpdateInputType:   "Update" + entityName + "Input",
		DeleteInputType:   "Delete" + entityName + "Input",
		CreatePayloadType: "Create" + entityName + "Payload",
		UpdatePayloadType: "Update" + entityName + "Payload",
		DeletePayloadType: "Delete" + entityName + "Payload",
	}
}
