package alertmanager

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelSetKeepsDocumentOrder(t *testing.T) {
	var ls LabelSet
	err := json.Unmarshal([]byte(`{"zebra":"1","alpha":"2","mike":"3"}`), &ls)

	require.NoError(t, err)
	assert.Equal(t, []string{"zebra", "alpha", "mike"}, ls.Keys())
	assert.Equal(t, "2", ls.Get("alpha"))
}

func TestLabelSetRoundTrip(t *testing.T) {
	in := `{"b":"1","a":"2"}`
	var ls LabelSet
	require.NoError(t, json.Unmarshal([]byte(in), &ls))

	out, err := json.Marshal(ls)
	require.NoError(t, err)
	assert.Equal(t, in, string(out))
}

func TestLabelSetNullAndAbsent(t *testing.T) {
	var ls LabelSet
	require.NoError(t, json.Unmarshal([]byte(`null`), &ls))
	assert.Equal(t, 0, ls.Len())

	assert.Equal(t, "", ls.Get("missing"))
	assert.False(t, ls.Has("missing"))
}

func TestLabelSetRejectsNonObject(t *testing.T) {
	var ls LabelSet
	assert.Error(t, json.Unmarshal([]byte(`["a"]`), &ls))
}

func TestLabelSetSetKeepsPosition(t *testing.T) {
	var ls LabelSet
	ls.Set("a", "1")
	ls.Set("b", "2")
	ls.Set("a", "updated")

	assert.Equal(t, []string{"a", "b"}, ls.Keys())
	assert.Equal(t, "updated", ls.Get("a"))
}

func TestAlertUnmarshal(t *testing.T) {
	raw := `{
		"startsAt": "2024-05-01T10:00:00.000Z",
		"endsAt": "0001-01-01T00:00:00.000Z",
		"fingerprint": "c4bba2b0ae2e8c8f",
		"status": {"state": "active"},
		"labels": {"alertname": "HighCPU", "severity": "critical"},
		"annotations": {"summary": "cpu is high"}
	}`

	var alert Alert
	require.NoError(t, json.Unmarshal([]byte(raw), &alert))

	assert.Equal(t, "2024-05-01T10:00:00.000Z", alert.StartsAt)
	assert.Equal(t, StateActive, alert.Status.State)
	assert.Equal(t, []string{"alertname", "severity"}, alert.Labels.Keys())
	assert.Equal(t, "cpu is high", alert.Annotations.Get("summary"))
}

func TestTagStatus(t *testing.T) {
	tests := []struct {
		state string
		code  string
	}{
		{StateActive, "1"},
		{StateSuppressed, "2"},
		{StateUnprocessed, "3"},
		{"bogus", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			alert := Alert{Status: AlertStatus{State: tt.state}}
			alert.Labels.Set("alertname", "X")

			alert.TagStatus()

			assert.Equal(t, tt.state, alert.Labels.Get("alertstatus"))
			assert.Equal(t, tt.code, alert.Labels.Get("alertstatus_code"))
			// Status labels come after the alert's own labels.
			assert.Equal(t, []string{"alertname", "alertstatus", "alertstatus_code"}, alert.Labels.Keys())
		})
	}
}
