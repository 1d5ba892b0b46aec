package alertmanager

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/renzsickle/grafana-prometheus-alertmanager-datasource/pkg/variable"
)

// Matcher is one structured label matcher from the query editor. Value
// holds the selected template variable value, a single string or a
// list, and Multi/IncludeAll mirror the variable's options so the
// value gets the right escaping.
type Matcher struct {
	Label      string      `json:"label"`
	Op         string      `json:"op,omitempty"`
	Value      interface{} `json:"value"`
	Multi      bool        `json:"multi,omitempty"`
	IncludeAll bool        `json:"includeAll,omitempty"`
}

func (m Matcher) expr() string {
	op := m.Op
	if op == "" {
		op = "="
	}
	value := variable.Interpolate(m.Value, m.Multi, m.IncludeAll)
	s, ok := value.(string)
	if !ok {
		s = fmt.Sprint(value)
	}
	return m.Label + op + `"` + s + `"`
}

// Filter is the query model for one alert list query. Expr carries a
// comma-separated matcher list written by hand in the editor; Matchers
// carries the structured form built from template variables. Callers
// unmarshal over a Filter{Active: true} so an omitted active toggle
// keeps its default.
type Filter struct {
	Expr      string    `json:"expr"`
	Matchers  []Matcher `json:"matchers,omitempty"`
	Receiver  string    `json:"receiver,omitempty"`
	Active    bool      `json:"active"`
	Silenced  bool      `json:"silenced"`
	Inhibited bool      `json:"inhibited"`
}

// QueryParams renders the filter as /api/v2/alerts query parameters.
// Every matcher, hand-written or structured, becomes one filter param.
func (f Filter) QueryParams() url.Values {
	params := url.Values{}
	for _, matcher := range splitMatchers(f.Expr) {
		params.Add("filter", matcher)
	}
	for _, matcher := range f.Matchers {
		params.Add("filter", matcher.expr())
	}
	params.Set("active", strconv.FormatBool(f.Active))
	params.Set("silenced", strconv.FormatBool(f.Silenced))
	params.Set("inhibited", strconv.FormatBool(f.Inhibited))
	if f.Receiver != "" {
		params.Set("receiver", f.Receiver)
	}
	return params
}

// splitMatchers splits a comma-separated matcher list. Commas inside
// double-quoted label values do not split; a backslash escapes the
// next character inside quotes.
func splitMatchers(expr string) []string {
	var (
		matchers []string
		current  strings.Builder
		quoted   bool
		escaped  bool
	)
	for _, r := range expr {
		switch {
		case escaped:
			escaped = false
		case quoted && r == '\\':
			escaped = true
		case r == '"':
			quoted = !quoted
		case r == ',' && !quoted:
			if m := strings.TrimSpace(current.String()); m != "" {
				matchers = append(matchers, m)
			}
			current.Reset()
			continue
		}
		current.WriteRune(r)
	}
	if m := strings.TrimSpace(current.String()); m != "" {
		matchers = append(matchers, m)
	}
	return matchers
}
