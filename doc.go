// Package shapefmt converts records into textual notations by sampling
// their shape.
//
// A [Record] is an insertion-ordered mapping of field names to values.
// Every formatter accepts a single record or a sequence of records (also
// plain maps, with keys sorted for determinism), infers a coarse [TypeTag]
// per field from one sample value, and renders a string. All formatters are
// pure, total functions: malformed or empty input degrades to empty output
// rather than failing.
//
// # Families
//
// Tabular formats union field names across all records into an ordered
// header and emit one row per record:
//
//	shapefmt.ToCSV(recs)
//	shapefmt.ToMarkdownTable(recs)
//	shapefmt.ToHTMLTable(recs)
//	shapefmt.ToTSV(recs)
//	shapefmt.ToTable(recs)
//
// Field-list formats use only the representative (first) record and emit
// one line per field. Declaration generators take an optional name, with a
// fixed placeholder when empty:
//
//	shapefmt.ToTSInterface(rec, "User")
//	shapefmt.ToGoStruct(rec, "User")
//	shapefmt.ToProtoMessage(rec, "User")
//	shapefmt.ToBashExports(rec)
//	shapefmt.ToQueryString(rec)
//
// SQL formats emit one INSERT statement per record, columns taken from
// each record's own keys:
//
//	shapefmt.ToSQLInsert(recs, "users")
//
// Pass-through dumps serialize the whole structure recursively:
//
//	shapefmt.ToYAML(rec)
//	shapefmt.ToJSONPretty(rec)
//	shapefmt.ToPHPArray(rec)
//
// # Type Inference
//
// [Infer] maps one sample value to a tag in {string, number, boolean,
// object, any} plus "[]"-suffixed array tags. The tag comes from a single
// sample's runtime kind; types are never unified across records, so a
// field that changes type between records yields whatever the chosen
// sample happened to be. Declaration generators map the generic tag to a
// concrete declared type through a static per-target lookup table.
//
// # Format Selection
//
// Use [ParseFormat] to convert a flag string into a [Format] and [Render],
// [Write], or [Marshal] to dispatch. [GoTemplate] builds a parameterized
// format that renders each record through a Go [text/template]:
//
//	f, err := shapefmt.ParseFormat("markdown")
//	out, err := shapefmt.Render(f, recs, shapefmt.Options{})
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrInvalidTemplate] — invalid go-template syntax
package shapefmt
