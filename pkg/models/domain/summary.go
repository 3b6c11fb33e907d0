package domain

// PeriodResult bundles everything computed for one period: the eleven base
// indicators, their compliance statuses, and the weighted management index.
type PeriodResult struct {
	Period           Period
	Results          []IndicatorResult
	Statuses         []ComplianceStatus
	ManagementIndex  IndicatorResult
	ManagementStatus ComplianceStatus
}

// Result returns the period's result for code, if present.
func (p PeriodResult) Result(code Code) (IndicatorResult, bool) {
	if code == CodeIGTotal {
		return p.ManagementIndex, true
	}
	for _, r := range p.Results {
		if r.Code == code {
			return r, true
		}
	}
	return IndicatorResult{}, false
}

// RollupKind distinguishes the aggregate rows of the reactive report.
type RollupKind string

const (
	RollupQuarter RollupKind = "quarter"
	RollupAnnual  RollupKind = "annual"
)

// Rollup is a reactive-indicator aggregate over several periods: the inputs
// are summed and the indices recomputed over the sums.
type Rollup struct {
	Kind     RollupKind
	Label    string
	Lesions  float64
	LostDays float64
	Hours    float64
	IF       IndicatorResult
	IG       IndicatorResult
	TR       IndicatorResult
}

// Stats are aggregate figures over the valid periods of a reporting year.
type Stats struct {
	TotalLesions          float64
	TotalLostDays         float64
	TotalHours            float64
	MeanIF                float64
	MeanIG                float64
	MeanTR                float64
	MeanManagementIndex   float64
	PeriodsMeetingGoal    int
	PeriodsWithoutLesions int
}

// Trend classifies the direction of the management index across the year.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// AnnualSummary is the engine's sole output surface: ordered per-period
// results, reactive rollups, aggregate statistics and the trend. InputHash
// identifies the (records, config) pair the summary was computed from so
// callers can cache by it.
type AnnualSummary struct {
	Year      int
	Periods   []PeriodResult
	Rollups   []Rollup
	Stats     Stats
	Trend     Trend
	InputHash string
}
