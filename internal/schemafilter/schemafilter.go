// Package schemafilter applies allow/deny filters to inferred table sets.
package schemafilter

import (
	"path"
	"strings"

	"graphile-codegen/internal/inference"
)

// Config controls allow/deny filters for inferred tables and their fields.
// Patterns are case-insensitive path globs. The "*" key in field maps applies
// to every table.
type Config struct {
	AllowTables []string            `mapstructure:"allow_tables"`
	DenyTables  []string            `mapstructure:"deny_tables"`
	AllowFields map[string][]string `mapstructure:"allow_fields"`
	DenyFields  map[string][]string `mapstructure:"deny_fields"`
}

// Empty reports whether the config filters nothing.
func (c Config) Empty() bool {
	return len(c.AllowTables) == 0 && len(c.DenyTables) == 0 &&
		len(c.AllowFields) == 0 && len(c.DenyFields) == 0
}

// Apply returns the tables that pass the filters. Missing allow lists default
// to allow-all; deny rules always win. Relations referencing a filtered-out
// table are pruned so emitted output never names an excluded table.
func Apply(tables []inference.Table, cfg Config) []inference.Table {
	if cfg.Empty() {
		return tables
	}

	kept := make([]inference.Table, 0, len(tables))
	keptNames := make(map[string]bool, len(tables))
	for _, table := range tables {
		if !tableAllowed(table.Name, cfg.AllowTables, cfg.DenyTables) {
			continue
		}
		kept = append(kept, table)
		keptNames[table.Name] = true
	}

	for i := range kept {
		table := &kept[i]
		table.Fields = filterFields(table.Name, table.Fields, cfg)
		table.Relations = pruneRelations(table.Relations, keptNames)
	}
	return kept
}

func filterFields(tableName string, fields []inference.Field, cfg Config) []inference.Field {
	filtered := make([]inference.Field, 0, len(fields))
	for _, f := range fields {
		if fieldAllowed(tableName, f.Name, cfg.AllowFields, cfg.DenyFields) {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

// pruneRelations drops relation records pointing at tables the filter
// removed. ManyToMany junction names are left alone: junction tables are
// never emitted as tables, so there is nothing to dangle.
func pruneRelations(rels inference.Relations, keptNames map[string]bool) inference.Relations {
	belongsTo := make([]inference.BelongsToRelation, 0, len(rels.BelongsTo))
	for _, r := range rels.BelongsTo {
		if keptNames[r.ReferencesTable] {
			belongsTo = append(belongsTo, r)
		}
	}

	hasMany := make([]inference.HasManyRelation, 0, len(rels.HasMany))
	for _, r := range rels.HasMany {
		if keptNames[r.ReferencedByTable] {
			hasMany = append(hasMany, r)
		}
	}

	manyToMany := make([]inference.ManyToManyRelation, 0, len(rels.ManyToMany))
	for _, r := range rels.ManyToMany {
		if keptNames[r.RightTable] {
			manyToMany = append(manyToMany, r)
		}
	}

	return inference.Relations{
		BelongsTo:  belongsTo,
		HasOne:     rels.HasOne,
		HasMany:    hasMany,
		ManyToMany: manyToMany,
	}
}

func tableAllowed(table string, allow, deny []string) bool {
	if matchesAny(table, deny) {
		return false
	}
	if len(allow) == 0 {
		return true
	}
	return matchesAny(table, allow)
}

func fieldAllowed(table, field string, allow, deny map[string][]string) bool {
	if matchesAny(field, mergePatterns(deny, table)) {
		return false
	}
	allowPatterns := mergePatterns(allow, table)
	if len(allowPatterns) == 0 {
		return true
	}
	return matchesAny(field, allowPatterns)
}

func mergePatterns(patterns map[string][]string, table string) []string {
	if patterns == nil {
		return nil
	}
	combined := append([]string{}, patterns["*"]...)
	combined = append(combined, patterns[table]...)
	// Table keys are matched case-insensitively like everything else.
	for key, extra := range patterns {
		if key != "*" && key != table && strings.EqualFold(key, table) {
			combined = append(combined, extra...)
		}
	}
	return combined
}

func matchesAny(value string, patterns []string) bool {
	value = strings.ToLower(value)
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		// matching should be case-insensitive
		ok, err := path.Match(strings.ToLower(pattern), value)
		if err != nil {
			continue
		}
		if ok {
			return true
		}
	}
	return false
}
