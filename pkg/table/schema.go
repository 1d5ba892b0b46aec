package table

import (
	"github.com/renzsickle/grafana-prometheus-alertmanager-datasource/pkg/alertmanager"
)

// DeriveColumns scans a batch and produces its column list: the two
// fixed leading columns, then one string column per distinct
// annotation key, then per distinct label key, then the two status
// columns. Within each group, names appear in record order then
// document key order, deduplicated keeping the first occurrence.
//
// An empty batch yields only the two fixed columns.
func DeriveColumns(alerts []alertmanager.Alert) []Column {
	columns := []Column{
		{Text: ColTime, Type: TypeTime},
		{Text: ColSeverity, Type: TypeNumber},
	}
	if len(alerts) == 0 {
		return columns
	}

	var names []string
	for _, alert := range alerts {
		names = append(names, alert.Annotations.Keys()...)
	}
	for _, alert := range alerts {
		names = append(names, alert.Labels.Keys()...)
	}
	names = append(names, ColStatus, ColStatusCode)

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		columns = append(columns, Column{Text: name, Type: TypeString})
	}

	return columns
}
