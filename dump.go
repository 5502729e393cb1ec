package shapefmt

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ToJSONPretty renders the whole structure as indented JSON, recursing over
// arbitrary nesting. Record field order is preserved; plain maps sort their
// keys.
func ToJSONPretty(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	return string(b)
}

// ToJSONL renders one compact JSON object per record per line.
func ToJSONL(v any) string {
	recs := normalize(v)
	lines := make([]string, 0, len(recs))
	for _, r := range recs {
		b, err := json.Marshal(r)
		if err != nil {
			continue
		}
		lines = append(lines, string(b))
	}
	return strings.Join(lines, "\n")
}

// ToPHPArray renders the whole structure as a PHP array literal, recursing
// over arbitrary nesting with two-space indentation.
func ToPHPArray(v any) string {
	var b strings.Builder
	phpValue(&b, v, 0)
	return b.String()
}

func phpValue(b *strings.Builder, v any, depth int) {
	ind := strings.Repeat("  ", depth)
	switch x := v.(type) {
	case nil:
		b.WriteString("null")
	case string:
		b.WriteString("'" + escPHP(x) + "'")
	case *Record:
		if x == nil {
			b.WriteString("null")
			return
		}
		phpEntries(b, x, depth, ind)
	case Record:
		phpEntries(b, &x, depth, ind)
	case map[string]any:
		phpEntries(b, recordFromMap(x), depth, ind)
	case []any:
		phpList(b, x, depth, ind)
	case []*Record, []Record, []map[string]any:
		items := normalize(x)
		list := make([]any, len(items))
		for i, r := range items {
			list[i] = r
		}
		phpList(b, list, depth, ind)
	default:
		b.WriteString(fmt.Sprint(x))
	}
}

func phpEntries(b *strings.Builder, r *Record, depth int, ind string) {
	if r.Len() == 0 {
		b.WriteString("array()")
		return
	}
	b.WriteString("array(\n")
	for _, k := range r.keys {
		b.WriteString(ind + "  '" + escPHP(k) + "' => ")
		phpValue(b, r.vals[k], depth+1)
		b.WriteString(",\n")
	}
	b.WriteString(ind + ")")
}

func phpList(b *strings.Builder, items []any, depth int, ind string) {
	if len(items) == 0 {
		b.WriteString("array()")
		return
	}
	b.WriteString("array(\n")
	for _, item := range items {
		b.WriteString(ind + "  ")
		phpValue(b, item, depth+1)
		b.WriteString(",\n")
	}
	b.WriteString(ind + ")")
}

func escPHP(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "'", `\'`)
}
