// Package render emits inferred tables as JSON, YAML, or a colored human
// summary.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"graphile-codegen/internal/inference"
)

// Supported output formats.
const (
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatSummary = "summary"
)

// Render writes tables to w in the given format.
func Render(w io.Writer, tables []inference.Table, format string, noColor bool) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tables)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tables); err != nil {
			return err
		}
		return enc.Close()
	case FormatSummary:
		return renderSummary(w, tables, noColor)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// WriteFile renders to path, or to stdout when path is empty.
func WriteFile(path string, tables []inference.Table, format string, noColor bool) error {
	if path == "" {
		return Render(os.Stdout, tables, format, noColor)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := Render(f, tables, format, noColor); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func renderSummary(w io.Writer, tables []inference.Table, noColor bool) error {
	heading := color.New(color.FgCyan, color.Bold)
	tableName := color.New(color.FgGreen, color.Bold)
	dim := color.New(color.Faint)
	if noColor {
		heading.DisableColor()
		tableName.DisableColor()
		dim.DisableColor()
	}

	if len(tables) == 0 {
		_, err := fmt.Fprintln(w, "No tables inferred.")
		return err
	}

	if _, err := heading.Fprintf(w, "Inferred %d table(s)\n", len(tables)); err != nil {
		return err
	}

	for _, table := range tables {
		if _, err := tableName.Fprintf(w, "\n%s\n", table.Name); err != nil {
			return err
		}

		fmt.Fprintf(w, "  fields: %s\n", fieldList(table.Fields))
		if len(table.Constraints.PrimaryKey) > 0 {
			fmt.Fprintf(w, "  primary key: %s\n", strings.Join(table.Constraints.PrimaryKey, ", "))
		}

		for _, r := range table.Relations.BelongsTo {
			fmt.Fprintf(w, "  belongs to %s", r.ReferencesTable)
			dim.Fprintf(w, " (%s)\n", r.FieldName)
		}
		for _, r := range table.Relations.HasMany {
			fmt.Fprintf(w, "  has many %s", r.ReferencedByTable)
			dim.Fprintf(w, " (%s)\n", r.FieldName)
		}
		for _, r := range table.Relations.ManyToMany {
			fmt.Fprintf(w, "  many to many %s via %s", r.RightTable, r.JunctionTable)
			dim.Fprintf(w, " (%s)\n", r.FieldName)
		}

		fmt.Fprintf(w, "  operations: %s\n", operationList(table.Query))
	}
	return nil
}

func fieldList(fields []inference.Field) string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, ", ")
}

func operationList(ops inference.Operations) string {
	parts := []string{"all=" + ops.All}
	if ops.One != "" {
		parts = append(parts, "one="+ops.One)
	}
	parts = append(parts, "create="+ops.Create)
	if ops.Update != "" {
		parts = append(parts, "update="+ops.Update)
	}
	if ops.Delete != "" {
		parts = append(parts, "delete="+ops.Delete)
	}
	return strings.Join(parts, " ")
}
