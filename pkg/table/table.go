// Package table turns a batch of Alertmanager alerts into the tabular
// form the table panel renders: a typed column list plus fixed-width
// rows. The schema is data-driven; backends expose arbitrary label and
// annotation taxonomies, so the column set is derived from the batch
// itself.
package table

import (
	"github.com/renzsickle/grafana-prometheus-alertmanager-datasource/pkg/alertmanager"
)

// Column types understood by the table panel.
const (
	TypeTime   = "time"
	TypeNumber = "number"
	TypeString = "string"
)

// Fixed column names. Time and SeverityValue always lead the schema;
// the two status columns always close it.
const (
	ColTime       = "Time"
	ColSeverity   = "SeverityValue"
	ColStatus     = "alertstatus"
	ColStatusCode = "alertstatus_code"
)

// Column is one named, typed table column.
type Column struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// RowValues is one row of cell values, aligned positionally to the
// column list of the table it belongs to.
type RowValues []interface{}

// Table is the result of transforming one query's alert batch. RefID
// tags the table with the originating query and has no effect on the
// transformation.
type Table struct {
	RefID   string      `json:"refId"`
	Columns []Column    `json:"columns"`
	Rows    []RowValues `json:"rows"`
}

// Transform builds the table for one alert batch. The schema is
// derived from the whole batch before any row is built: row width must
// be the union of attributes across all records, so a row extracted
// against anything narrower could misalign.
func Transform(refID string, alerts []alertmanager.Alert) *Table {
	columns := DeriveColumns(alerts)
	rows := make([]RowValues, 0, len(alerts))
	for _, alert := range alerts {
		rows = append(rows, ExtractRow(columns, alert))
	}
	return &Table{RefID: refID, Columns: columns, Rows: rows}
}
