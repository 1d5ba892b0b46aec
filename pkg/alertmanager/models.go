package alertmanager

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Alert states reported by the v2 API.
const (
	StateActive      = "active"
	StateSuppressed  = "suppressed"
	StateUnprocessed = "unprocessed"
)

// Status codes attached to each alert as the alertstatus_code label.
var stateCodes = map[string]string{
	StateActive:      "1",
	StateSuppressed:  "2",
	StateUnprocessed: "3",
}

// LabelSet is a string-to-string mapping that remembers the key order
// of the JSON document it was decoded from. Table schemas are derived
// from key order, and iterating a plain Go map would reorder columns
// between refreshes.
type LabelSet struct {
	keys   []string
	values map[string]string
}

// Set adds or updates a key. The position of an existing key is kept.
func (ls *LabelSet) Set(key, value string) {
	if ls.values == nil {
		ls.values = map[string]string{}
	}
	if _, ok := ls.values[key]; !ok {
		ls.keys = append(ls.keys, key)
	}
	ls.values[key] = value
}

// Get returns the value for key, or the empty string when absent.
func (ls LabelSet) Get(key string) string {
	return ls.values[key]
}

// Has reports whether key is present.
func (ls LabelSet) Has(key string) bool {
	_, ok := ls.values[key]
	return ok
}

// Keys returns the keys in document order.
func (ls LabelSet) Keys() []string {
	return ls.keys
}

func (ls LabelSet) Len() int {
	return len(ls.keys)
}

// UnmarshalJSON decodes a JSON object one token at a time so the
// document's key order survives.
func (ls *LabelSet) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("label set: expected object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("label set: expected string key, got %v", keyTok)
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("label set: key %q: %w", key, err)
		}
		ls.Set(key, value)
	}
	_, err = dec.Token()
	return err
}

// MarshalJSON writes the set back out in document order.
func (ls LabelSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range ls.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(ls.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// AlertStatus is the state block of a v2 alert.
type AlertStatus struct {
	State       string   `json:"state"`
	SilencedBy  []string `json:"silencedBy,omitempty"`
	InhibitedBy []string `json:"inhibitedBy,omitempty"`
}

// Alert is one alert instance as listed by /api/v2/alerts. StartsAt is
// kept as the raw timestamp string; parsing happens in the rendering
// layer, the table core passes it through untouched.
type Alert struct {
	StartsAt     string      `json:"startsAt"`
	EndsAt       string      `json:"endsAt,omitempty"`
	UpdatedAt    string      `json:"updatedAt,omitempty"`
	GeneratorURL string      `json:"generatorURL,omitempty"`
	Fingerprint  string      `json:"fingerprint,omitempty"`
	Status       AlertStatus `json:"status"`
	Labels       LabelSet    `json:"labels"`
	Annotations  LabelSet    `json:"annotations"`
}

// TagStatus copies the alert's state into its label set so the status
// shows up through the ordinary label lookup as the alertstatus and
// alertstatus_code table columns.
func (a *Alert) TagStatus() {
	code, ok := stateCodes[a.Status.State]
	if !ok {
		code = "0"
	}
	a.Labels.Set("alertstatus", a.Status.State)
	a.Labels.Set("alertstatus_code", code)
}
