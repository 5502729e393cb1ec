package shapefmt

import (
	"fmt"
	"html"
	"strings"
)

// ToHTMLTable renders the record set as an HTML table with thead and tbody
// sections. Header and cell text is HTML-escaped.
func ToHTMLTable(v any) string {
	recs := normalize(v)
	keys := keyUnion(recs)
	if len(keys) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("<table>\n")
	b.WriteString("  <thead>\n")
	b.WriteString("    <tr>\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "      <th>%s</th>\n", html.EscapeString(k))
	}
	b.WriteString("    </tr>\n")
	b.WriteString("  </thead>\n")
	b.WriteString("  <tbody>\n")
	for _, r := range recs {
		b.WriteString("    <tr>\n")
		for _, cell := range rowFor(r, keys) {
			fmt.Fprintf(&b, "      <td>%s</td>\n", html.EscapeString(cell))
		}
		b.WriteString("    </tr>\n")
	}
	b.WriteString("  </tbody>\n")
	b.WriteString("</table>")
	return b.String()
}
