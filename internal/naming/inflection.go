package naming

import (
	"strings"

	"github.com/jinzhu/inflection"
)

func init() {
	// The library's Latin-plural rule singularizes "schemata" to
	// "schematum"; Postgres-facing schemas need schema <-> schemata to
	// round-trip.
	inflection.AddIrregular("schema", "schemata")
}

// Pluralize converts a singular word to its plural form.
// Checks custom overrides first, then falls back to the inflection library.
// Casing of the first letter is preserved so both type names ("Person" ->
// "People") and field names ("person" -> "people") round-trip.
func (n *Namer) Pluralize(word string) string {
	if override, ok := n.config.PluralOverrides[word]; ok {
		return override
	}
	return matchLeadingCase(word, inflection.Plural(word))
}

// Singularize converts a plural word to its singular form.
// Checks custom overrides first, then falls back to the inflection library.
func (n *Namer) Singularize(word string) string {
	if override, ok := n.config.SingularOverrides[word]; ok {
		return override
	}
	return matchLeadingCase(word, inflection.Singular(word))
}

// matchLeadingCase fixes up inflection results whose first letter changed
// case relative to the input ("People" -> "person" must become "Person").
func matchLeadingCase(original, inflected string) string {
	if original == "" || inflected == "" {
		return inflected
	}
	if original[0] >= 'A' && original[0] <= 'Z' {
		return strings.ToUpper(inflected[:1]) + inflected[1:]
	}
	return strings.ToLower(inflected[:1]) + inflected[1:]
}
