package shapefmt

import (
	"bytes"
	"encoding/csv"
	"strings"
)

// ToCSV renders the record set as CSV: a key-union header row followed by
// one row per record. Fields containing the delimiter, double quotes, or
// newlines are wrapped in double quotes with inner quotes doubled. Missing
// fields render as empty cells. An empty record set renders as an empty
// string.
func ToCSV(v any) string {
	recs := normalize(v)
	keys := keyUnion(recs)
	if len(keys) == 0 {
		return ""
	}
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	// Writes to a bytes.Buffer cannot fail.
	_ = cw.Write(keys)
	for _, r := range recs {
		_ = cw.Write(rowFor(r, keys))
	}
	cw.Flush()
	return strings.TrimSuffix(buf.String(), "\n")
}
