package shapefmt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Record is an insertion-ordered mapping of field names to values. Values
// may be strings, numbers, booleans, nil, nested records, or slices of any
// of these. Formatters never mutate a record.
type Record struct {
	keys []string
	vals map[string]any
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{vals: map[string]any{}}
}

// Set adds or replaces a field and returns the record for chaining.
// First-insertion order is preserved; setting an existing key keeps its
// original position.
func (r *Record) Set(key string, v any) *Record {
	if r.vals == nil {
		r.vals = map[string]any{}
	}
	if _, ok := r.vals[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.vals[key] = v
	return r
}

// Get returns the value of a field and whether it is present.
func (r *Record) Get(key string) (any, bool) {
	v, ok := r.vals[key]
	return v, ok
}

// Keys returns the field names in insertion order. The returned slice is a
// copy.
func (r *Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of fields.
func (r *Record) Len() int { return len(r.keys) }

// Map returns the fields as a plain map. The returned map is a copy; field
// order is not carried over.
func (r *Record) Map() map[string]any {
	m := make(map[string]any, len(r.keys))
	for _, k := range r.keys {
		m[k] = r.vals[k]
	}
	return m
}

// MarshalJSON emits the record as a JSON object in insertion order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(r.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// normalize turns any accepted input into a record sequence. A slice input
// is aliased where possible, not copied. nil and unrecognized inputs yield
// an empty sequence; formatting then degrades to empty output rather than
// failing.
func normalize(v any) []*Record {
	switch x := v.(type) {
	case nil:
		return nil
	case *Record:
		if x == nil {
			return nil
		}
		return []*Record{x}
	case Record:
		return []*Record{&x}
	case []*Record:
		return x
	case []Record:
		out := make([]*Record, len(x))
		for i := range x {
			out[i] = &x[i]
		}
		return out
	case map[string]any:
		return []*Record{recordFromMap(x)}
	case []map[string]any:
		out := make([]*Record, len(x))
		for i := range x {
			out[i] = recordFromMap(x[i])
		}
		return out
	case []any:
		var out []*Record
		for _, e := range x {
			out = append(out, normalize(e)...)
		}
		return out
	default:
		return nil
	}
}

// recordFromMap builds a record from a plain map. Go maps have no insertion
// order, so keys are sorted to keep output deterministic.
func recordFromMap(m map[string]any) *Record {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	r := NewRecord()
	for _, k := range keys {
		r.Set(k, m[k])
	}
	return r
}

// representative returns the first record of the normalized sequence, or an
// empty record when the sequence is empty. Field-list formatters only ever
// look at this one record's shape.
func representative(v any) *Record {
	recs := normalize(v)
	if len(recs) == 0 || recs[0] == nil {
		return NewRecord()
	}
	return recs[0]
}

// keyUnion returns the field names appearing in any record, first-seen
// order, duplicates collapsed. Tabular formatters use this as the header.
func keyUnion(recs []*Record) []string {
	var keys []string
	seen := map[string]bool{}
	for _, r := range recs {
		if r == nil {
			continue
		}
		for _, k := range r.keys {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	return keys
}

// rowFor renders one tabular row against the key union. Missing fields
// render as empty cells, never as a null literal.
func rowFor(r *Record, keys []string) []string {
	row := make([]string, len(keys))
	if r == nil {
		return row
	}
	for i, k := range keys {
		if v, ok := r.vals[k]; ok {
			row[i] = cellString(v)
		}
	}
	return row
}

// cellString renders a value for a single cell or literal position. Nested
// structures render as compact JSON so a cell stays single-valued.
func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case *Record, Record, map[string]any, []any:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	default:
		return fmt.Sprint(x)
	}
}
