package shapefmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// Format represents an output notation.
type Format string

const (
	CSV            Format = "csv"
	TSV            Format = "tsv"
	MarkdownTable  Format = "markdown"
	HTMLTable      Format = "html"
	Table          Format = "table"
	TSInterface    Format = "ts"
	GoStruct       Format = "go"
	RustStruct     Format = "rust"
	CSharpClass    Format = "csharp"
	JavaClass      Format = "java"
	PythonClass    Format = "python"
	DartClass      Format = "dart"
	ProtoMessage   Format = "proto"
	PlantUML       Format = "plantuml"
	MermaidClass   Format = "mermaid"
	SchemaSummary  Format = "schema"
	Properties     Format = "properties"
	BashExports    Format = "bash"
	QueryString    Format = "query"
	FormEncoded    Format = "form"
	SQLInsert      Format = "sql"
	MySQLInsert    Format = "mysql"
	PostgresInsert Format = "postgres"
	SQLiteInsert   Format = "sqlite"
	YAML           Format = "yaml"
	JSONPretty     Format = "json"
	JSONL          Format = "jsonl"
	PHPArray       Format = "php"
)

const goTemplatePrefix = "go-template="

var formats = []Format{
	CSV, TSV, MarkdownTable, HTMLTable, Table,
	TSInterface, GoStruct, RustStruct, CSharpClass, JavaClass,
	PythonClass, DartClass, ProtoMessage, PlantUML, MermaidClass,
	SchemaSummary, Properties, BashExports, QueryString, FormEncoded,
	SQLInsert, MySQLInsert, PostgresInsert, SQLiteInsert,
	YAML, JSONPretty, JSONL, PHPArray,
}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each record through a Go
// text/template. Record fields are addressable as template keys.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Options carries the optional declaration name and SQL table name. Zero
// values fall back to fixed placeholders.
type Options struct {
	Name  string
	Table string
}

// Render formats v in format f. Every static format is total over its
// input domain; only unknown formats and invalid templates return errors.
func Render(f Format, v any, opts Options) (string, error) {
	switch f {
	case CSV:
		return ToCSV(v), nil
	case TSV:
		return ToTSV(v), nil
	case MarkdownTable:
		return ToMarkdownTable(v), nil
	case HTMLTable:
		return ToHTMLTable(v), nil
	case Table:
		return ToTable(v), nil
	case TSInterface:
		return ToTSInterface(v, opts.Name), nil
	case GoStruct:
		return ToGoStruct(v, opts.Name), nil
	case RustStruct:
		return ToRustStruct(v, opts.Name), nil
	case CSharpClass:
		return ToCSharpClass(v, opts.Name), nil
	case JavaClass:
		return ToJavaClass(v, opts.Name), nil
	case PythonClass:
		return ToPythonClass(v, opts.Name), nil
	case DartClass:
		return ToDartClass(v, opts.Name), nil
	case ProtoMessage:
		return ToProtoMessage(v, opts.Name), nil
	case PlantUML:
		return ToPlantUML(v, opts.Name), nil
	case MermaidClass:
		return ToMermaidClass(v, opts.Name), nil
	case SchemaSummary:
		return ToSchemaSummary(v), nil
	case Properties:
		return ToProperties(v), nil
	case BashExports:
		return ToBashExports(v), nil
	case QueryString:
		return ToQueryString(v), nil
	case FormEncoded:
		return ToFormEncoded(v), nil
	case SQLInsert:
		return ToSQLInsert(v, opts.Table), nil
	case MySQLInsert:
		return ToMySQLInsert(v, opts.Table), nil
	case PostgresInsert:
		return ToPostgresInsert(v, opts.Table), nil
	case SQLiteInsert:
		return ToSQLiteInsert(v, opts.Table), nil
	case YAML:
		return ToYAML(v), nil
	case JSONPretty:
		return ToJSONPretty(v), nil
	case JSONL:
		return ToJSONL(v), nil
	case PHPArray:
		return ToPHPArray(v), nil
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			var buf bytes.Buffer
			if err := writeGoTemplate(&buf, tmpl, normalize(v)); err != nil {
				return "", err
			}
			return strings.TrimSuffix(buf.String(), "\n"), nil
		}
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Write renders v in format f and writes it to w with a trailing newline.
func Write(w io.Writer, f Format, v any, opts Options) error {
	s, err := Render(f, v, opts)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

// Marshal renders v in format f and returns the bytes, including the
// trailing newline that Write emits.
func Marshal(f Format, v any, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, v, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
