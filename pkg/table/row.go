package table

import (
	"github.com/renzsickle/grafana-prometheus-alertmanager-datasource/pkg/alertmanager"
)

// ExtractRow builds one row aligned to columns. The first cell is the
// alert's raw startsAt string, the second its severity rank. Every
// attribute cell resolves through the annotation value when present
// and non-empty, then the label value, then the empty string, so rows
// keep uniform width no matter which attributes an alert carries.
func ExtractRow(columns []Column, alert alertmanager.Alert) RowValues {
	row := make(RowValues, 0, len(columns))
	row = append(row, alert.StartsAt)
	row = append(row, SeverityRank(alert.Labels.Get("severity")))
	for _, column := range columns[2:] {
		if value := alert.Annotations.Get(column.Text); value != "" {
			row = append(row, value)
			continue
		}
		row = append(row, alert.Labels.Get(column.Text))
	}
	return row
}
