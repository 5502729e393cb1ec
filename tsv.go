package shapefmt

import "strings"

// ToTSV renders the record set as tab-separated values with a key-union
// header row. No quoting is applied; cells containing tabs are emitted
// as-is.
func ToTSV(v any) string {
	recs := normalize(v)
	keys := keyUnion(recs)
	if len(keys) == 0 {
		return ""
	}
	lines := make([]string, 0, len(recs)+1)
	lines = append(lines, strings.Join(keys, "\t"))
	for _, r := range recs {
		lines = append(lines, strings.Join(rowFor(r, keys), "\t"))
	}
	return strings.Join(lines, "\n")
}
