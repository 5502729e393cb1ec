package shapefmt

import (
	"fmt"
	"strings"
)

// ToBashExports renders one export statement per field of the
// representative record. Values are single-quoted; an embedded single quote
// becomes '"'"' (close quote, double-quoted single quote, reopen) so the
// value survives the shell.
func ToBashExports(v any) string {
	var b strings.Builder
	for _, f := range Fields(v) {
		fmt.Fprintf(&b, "export %s='%s'\n", f.Name, escBash(cellString(f.Sample)))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func escBash(s string) string {
	return strings.ReplaceAll(s, "'", `'"'"'`)
}

// ToProperties renders one key=value line per field of the representative
// record. Values are emitted verbatim without escaping.
func ToProperties(v any) string {
	var b strings.Builder
	for _, f := range Fields(v) {
		fmt.Fprintf(&b, "%s=%s\n", f.Name, cellString(f.Sample))
	}
	return strings.TrimSuffix(b.String(), "\n")
}
