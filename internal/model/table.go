package model

import "strings"

// SourceKind classifies a raw table as one of the three recognized exports.
type SourceKind string

const (
	KindPaid         SourceKind = "paid"
	KindPayable      SourceKind = "payable"
	KindReceivable   SourceKind = "receivable"
	KindUnrecognized SourceKind = "unrecognized"
)

// RawTable is an ingested tabular source: ordered headers plus string-valued
// rows. It is immutable once built by a loader.
type RawTable struct {
	Source  string // file or paste identifier
	Columns []string
	Rows    []map[string]string
}

// Column returns the first header containing marker, or "" when absent.
// Source headers vary in decoration (units, whitespace, export suffixes), so
// lookups are by substring rather than exact name.
func (t RawTable) Column(marker string) string {
	for _, c := range t.Columns {
		if strings.Contains(c, marker) {
			return c
		}
	}
	return ""
}

// Cell returns the raw cell under the first header containing marker.
func (t RawTable) Cell(row map[string]string, marker string) string {
	col := t.Column(marker)
	if col == "" {
		return ""
	}
	return row[col]
}

// TableDiagnostic reports how one table fared through resolution and
// classification.
type TableDiagnostic struct {
	Source   string
	Kind     SourceKind
	Warnings []string
}
