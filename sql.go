package shapefmt

import (
	"fmt"
	"strings"
)

// defaultTable is the placeholder table name used when the argument is
// omitted.
const defaultTable = "my_table"

// Dialect is the identifier quoting policy for SQL output. The shipped
// dialects currently share identical behavior; the seam exists so quoting
// can diverge per dialect without touching the renderer.
type Dialect struct {
	QuoteIdent func(string) string
}

var (
	// MySQL, Postgres, and SQLite intentionally emit byte-identical
	// output today. Do not diverge them without a dialect requirement.
	MySQL    = Dialect{QuoteIdent: bareIdent}
	Postgres = Dialect{QuoteIdent: bareIdent}
	SQLite   = Dialect{QuoteIdent: bareIdent}
)

func bareIdent(s string) string { return s }

// ToSQLInsert renders one INSERT statement per record. Columns come from
// each record's own keys, so heterogeneous records produce statements with
// differing column lists. String values have single quotes doubled; nil
// renders as unquoted NULL; numbers and booleans render unquoted. An empty
// table name falls back to a placeholder.
func ToSQLInsert(v any, table string) string {
	return sqlInserts(v, table, SQLite)
}

// ToMySQLInsert renders INSERT statements with the MySQL dialect policy.
func ToMySQLInsert(v any, table string) string {
	return sqlInserts(v, table, MySQL)
}

// ToPostgresInsert renders INSERT statements with the Postgres dialect
// policy.
func ToPostgresInsert(v any, table string) string {
	return sqlInserts(v, table, Postgres)
}

// ToSQLiteInsert renders INSERT statements with the SQLite dialect policy.
func ToSQLiteInsert(v any, table string) string {
	return sqlInserts(v, table, SQLite)
}

func sqlInserts(v any, table string, d Dialect) string {
	if table == "" {
		table = defaultTable
	}
	recs := normalize(v)
	stmts := make([]string, 0, len(recs))
	for _, r := range recs {
		if r == nil {
			continue
		}
		cols := make([]string, 0, r.Len())
		vals := make([]string, 0, r.Len())
		for _, k := range r.keys {
			cols = append(cols, d.QuoteIdent(k))
			vals = append(vals, sqlLiteral(r.vals[k]))
		}
		stmts = append(stmts, fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
			d.QuoteIdent(table), strings.Join(cols, ","), strings.Join(vals, ",")))
	}
	return strings.Join(stmts, "\n")
}

func sqlLiteral(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case string:
		return "'" + strings.ReplaceAll(x, "'", "''") + "'"
	case *Record, Record, map[string]any, []any:
		return "'" + strings.ReplaceAll(cellString(x), "'", "''") + "'"
	default:
		return fmt.Sprint(x)
	}
}
