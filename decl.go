package shapefmt

import (
	"fmt"
	"strings"
)

// defaultName is the placeholder identifier used when a declaration name is
// omitted.
const defaultName = "Generated"

// typeTable maps scalar tags to a target language's declared types. Array
// tags unwrap recursively and rewrap with the target's sequence syntax.
type typeTable struct {
	scalars  map[TypeTag]string
	array    func(inner string) string
	fallback string
}

func (tt typeTable) lookup(tag TypeTag) string {
	if inner, ok := tag.Elem(); ok {
		return tt.array(tt.lookup(inner))
	}
	if s, ok := tt.scalars[tag]; ok {
		return s
	}
	return tt.fallback
}

// genericTypes passes tags through unchanged. Used by the targets that
// speak the generic tag vocabulary (schema summary, UML blocks).
var genericTypes = typeTable{
	scalars: map[TypeTag]string{
		TagString: "string",
		TagNumber: "number",
		TagBool:   "boolean",
		TagObject: "object",
	},
	array:    func(inner string) string { return inner + "[]" },
	fallback: "any",
}

// declTarget parameterizes the single-record field-list renderer: one open
// line, one line per field, one close line. Nested objects map to the
// target's generic object type and are never expanded into further
// declarations.
type declTarget struct {
	open  func(name string) string
	line  func(i int, f Field, typ string) string
	close string
	types typeTable
}

func renderDecl(v any, name string, t declTarget) string {
	if name == "" {
		name = defaultName
	}
	var b strings.Builder
	b.WriteString(t.open(name))
	for i, f := range fieldsOf(representative(v)) {
		b.WriteString(t.line(i, f, t.types.lookup(f.Tag)))
	}
	b.WriteString(t.close)
	return strings.TrimSuffix(b.String(), "\n")
}

// ToSchemaSummary renders one "name: tag" line per field of the
// representative record, using the generic tag vocabulary.
func ToSchemaSummary(v any) string {
	var b strings.Builder
	for _, f := range Fields(v) {
		fmt.Fprintf(&b, "%s: %s\n", f.Name, genericTypes.lookup(f.Tag))
	}
	return strings.TrimSuffix(b.String(), "\n")
}
