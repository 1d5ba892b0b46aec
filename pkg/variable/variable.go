// Package variable renders template variable selections into strings
// safe to embed in Alertmanager matcher expressions.
package variable

import "strings"

// literalReplacer neutralises the characters that break a literal
// string matcher.
var literalReplacer = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
)

// alternationReplacer additionally neutralises every character with
// special meaning inside a regex, since alternation output is spliced
// straight into a regex group.
var alternationReplacer = strings.NewReplacer(
	`\`, `\\`,
	`$`, `\$`,
	`^`, `\^`,
	`*`, `\*`,
	`{`, `\{`,
	`}`, `\}`,
	`[`, `\[`,
	`]`, `\]`,
	`'`, `\'`,
	`+`, `\+`,
	`?`, `\?`,
	`(`, `\(`,
	`)`, `\)`,
	`|`, `\|`,
)

// Interpolate renders one variable selection. A variable with neither
// multi nor "include all" enabled carries a single value and is
// escaped for literal matching. Any other variable may expand to
// several values: each candidate is escaped for regex alternation, a
// lone candidate is returned bare, several are joined with | inside a
// (...) group.
//
// Non-string values pass through unchanged. So does a slice reaching
// the single-value branch; the templating layer guarantees that branch
// never actually carries a list. TODO: confirm that guarantee holds
// for repeated variables and escape per element here if it does not.
func Interpolate(value interface{}, multi, includeAll bool) interface{} {
	if !multi && !includeAll {
		s, ok := value.(string)
		if !ok {
			return value
		}
		return literalReplacer.Replace(s)
	}

	candidates, ok := candidateStrings(value)
	if !ok {
		return value
	}
	escaped := make([]string, len(candidates))
	for i, candidate := range candidates {
		escaped[i] = alternationReplacer.Replace(candidate)
	}
	if len(escaped) == 1 {
		return escaped[0]
	}
	return "(" + strings.Join(escaped, "|") + ")"
}

func candidateStrings(value interface{}) ([]string, bool) {
	switch v := value.(type) {
	case string:
		return []string{v}, true
	case []string:
		return v, true
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}
