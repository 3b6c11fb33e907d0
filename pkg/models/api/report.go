package api

// IndicatorResult is one computed indicator value for one period.
type IndicatorResult struct {
	Code   string  `json:"code"`
	Period string  `json:"period"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit"`
	Flag   string  `json:"flag,omitempty"`
}

// ComplianceStatus reports a result against its configured goal. Margin is
// value minus goal, signed, regardless of whether higher or lower is better.
type ComplianceStatus struct {
	Code   string  `json:"code"`
	Period string  `json:"period"`
	Meets  bool    `json:"meets"`
	Goal   float64 `json:"goal"`
	Margin float64 `json:"margin"`
}

type PeriodSummary struct {
	Period           string             `json:"period"`
	Results          []IndicatorResult  `json:"results"`
	Statuses         []ComplianceStatus `json:"statuses"`
	ManagementIndex  IndicatorResult    `json:"management_index"`
	ManagementStatus ComplianceStatus   `json:"management_status"`
}

type Rollup struct {
	Kind     string          `json:"kind"`
	Label    string          `json:"label"`
	Lesions  float64         `json:"lesions"`
	LostDays float64         `json:"lost_days"`
	Hours    float64         `json:"hours"`
	IF       IndicatorResult `json:"if"`
	IG       IndicatorResult `json:"ig"`
	TR       IndicatorResult `json:"tr"`
}

type Stats struct {
	TotalLesions          float64 `json:"total_lesions"`
	TotalLostDays         float64 `json:"total_lost_days"`
	TotalHours            float64 `json:"total_hours"`
	MeanIF                float64 `json:"mean_if"`
	MeanIG                float64 `json:"mean_ig"`
	MeanTR                float64 `json:"mean_tr"`
	MeanManagementIndex   float64 `json:"mean_management_index"`
	PeriodsMeetingGoal    int     `json:"periods_meeting_goal"`
	PeriodsWithoutLesions int     `json:"periods_without_lesions"`
}

type AnnualSummary struct {
	Year      int             `json:"year"`
	Periods   []PeriodSummary `json:"periods"`
	Rollups   []Rollup        `json:"rollups"`
	Stats     Stats           `json:"stats"`
	Trend     string          `json:"trend"`
	InputHash string          `json:"input_hash"`
}

type YearList struct {
	Years []int `json:"years"`
}

type IndicatorSeries struct {
	Year   int               `json:"year"`
	Code   string            `json:"code"`
	Points []IndicatorResult `json:"points"`
}
