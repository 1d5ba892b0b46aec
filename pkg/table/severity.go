package table

// Severity ranks, lower is more urgent. Unknown and missing severity
// labels rank last so they still sort and plot.
const (
	SeverityCritical = 1
	SeverityWarning  = 2
	SeverityInfo     = 3
	SeverityUnknown  = 4
)

var severityRanks = map[string]int{
	"critical": SeverityCritical,
	"warning":  SeverityWarning,
	"info":     SeverityInfo,
}

// SeverityRank maps a severity label value to its numeric rank. Total
// over strings; anything unrecognised falls through to SeverityUnknown.
func SeverityRank(severity string) int {
	if rank, ok := severityRanks[severity]; ok {
		return rank
	}
	return SeverityUnknown
}
