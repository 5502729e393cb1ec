package shapefmt

import (
	"net/url"
	"strings"
)

// ToQueryString renders the representative record as a URL query string
// with a leading question mark. Keys and values are percent-encoded
// independently, in insertion order.
func ToQueryString(v any) string {
	enc := formEncode(v)
	if enc == "" {
		return ""
	}
	return "?" + enc
}

// ToFormEncoded renders the representative record as an
// application/x-www-form-urlencoded body, in insertion order.
func ToFormEncoded(v any) string {
	return formEncode(v)
}

func formEncode(v any) string {
	fields := Fields(v)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, url.QueryEscape(f.Name)+"="+url.QueryEscape(cellString(f.Sample)))
	}
	return strings.Join(parts, "&")
}
