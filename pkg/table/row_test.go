package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renzsickle/grafana-prometheus-alertmanager-datasource/pkg/alertmanager"
)

func TestExtractRowAlignsToSchema(t *testing.T) {
	alerts := []alertmanager.Alert{
		{
			StartsAt:    "2024-05-01T10:00:00Z",
			Labels:      labelSet("alertname", "HighCPU", "severity", "warning"),
			Annotations: labelSet("summary", "cpu is high"),
		},
		{
			StartsAt: "2024-05-01T11:00:00Z",
			Labels:   labelSet("alertname", "DiskFull", "instance", "db-1"),
		},
	}
	columns := DeriveColumns(alerts)

	for _, alert := range alerts {
		row := ExtractRow(columns, alert)
		assert.Len(t, row, len(columns))
	}

	row := ExtractRow(columns, alerts[0])
	assert.Equal(t, "2024-05-01T10:00:00Z", row[0])
	assert.Equal(t, SeverityWarning, row[1])
}

func TestExtractRowAnnotationPrecedence(t *testing.T) {
	alert := alertmanager.Alert{
		Labels:      labelSet("x", "B"),
		Annotations: labelSet("x", "A"),
	}
	columns := DeriveColumns([]alertmanager.Alert{alert})

	row := ExtractRow(columns, alert)

	require.Equal(t, "x", columns[2].Text)
	assert.Equal(t, "A", row[2])
}

func TestExtractRowEmptyAnnotationFallsToLabel(t *testing.T) {
	alert := alertmanager.Alert{
		Labels:      labelSet("x", "B"),
		Annotations: labelSet("x", ""),
	}
	columns := DeriveColumns([]alertmanager.Alert{alert})

	row := ExtractRow(columns, alert)
	assert.Equal(t, "B", row[2])
}

func TestExtractRowMissingAttributeIsEmpty(t *testing.T) {
	alerts := []alertmanager.Alert{
		{Labels: labelSet("y", "present")},
		{Labels: labelSet("z", "other")},
	}
	columns := DeriveColumns(alerts)
	require.Equal(t, "y", columns[2].Text)

	row := ExtractRow(columns, alerts[1])
	assert.Equal(t, "", row[2])
}

func TestExtractRowMissingSeverity(t *testing.T) {
	alert := alertmanager.Alert{Labels: labelSet("alertname", "NoSeverity")}
	columns := DeriveColumns([]alertmanager.Alert{alert})

	row := ExtractRow(columns, alert)
	assert.Equal(t, SeverityUnknown, row[1])
}
