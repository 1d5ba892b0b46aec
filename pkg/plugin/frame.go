package plugin

import (
	"fmt"
	"time"

	"github.com/grafana/grafana-plugin-sdk-go/data"

	"github.com/renzsickle/grafana-prometheus-alertmanager-datasource/pkg/table"
)

// frameFromTable converts an alert table into a data frame. The raw
// startsAt strings are parsed here, at the rendering edge; the table
// core treats timestamps as opaque.
func frameFromTable(t *table.Table) (*data.Frame, error) {
	fields := make([]*data.Field, 0, len(t.Columns))
	for i, column := range t.Columns {
		switch column.Type {
		case table.TypeTime:
			values := make([]time.Time, len(t.Rows))
			for j, row := range t.Rows {
				s, _ := row[i].(string)
				ts, err := time.Parse(time.RFC3339Nano, s)
				if err != nil {
					return nil, fmt.Errorf("row %d: parsing timestamp %q: %w", j, s, err)
				}
				values[j] = ts
			}
			fields = append(fields, data.NewField(column.Text, nil, values))
		case table.TypeNumber:
			values := make([]int64, len(t.Rows))
			for j, row := range t.Rows {
				rank, _ := row[i].(int)
				values[j] = int64(rank)
			}
			fields = append(fields, data.NewField(column.Text, nil, values))
		default:
			values := make([]string, len(t.Rows))
			for j, row := range t.Rows {
				values[j], _ = row[i].(string)
			}
			fields = append(fields, data.NewField(column.Text, nil, values))
		}
	}

	frame := data.NewFrame("alerts", fields...)
	frame.RefID = t.RefID
	frame.Meta = &data.FrameMeta{PreferredVisualization: data.VisTypeTable}
	return frame, nil
}
