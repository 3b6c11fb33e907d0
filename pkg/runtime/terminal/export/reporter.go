package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/seg-tools/sso-atlas/pkg/models/domain"
	"github.com/seg-tools/sso-atlas/pkg/services/validator"
)

type TableConfig struct {
	CodeWidth   int
	ValueWidth  int
	UnitWidth   int
	GoalWidth   int
	StatusWidth int
	MarginWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		CodeWidth:   10,
		ValueWidth:  14,
		UnitWidth:   12,
		GoalWidth:   8,
		StatusWidth: 8,
		MarginWidth: 10,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

type indicatorRow struct {
	Code   string
	Value  string
	Unit   string
	Goal   string
	Status string
	Margin string
}

type periodView struct {
	Label string
	Rows  []indicatorRow
}

type rollupView struct {
	Label    string
	Lesions  string
	LostDays string
	Hours    string
	IF       string
	IG       string
	TR       string
}

type summaryView struct {
	Year     int
	Trend    string
	Periods  []periodView
	Rollups  []rollupView
	Stats    domain.Stats
	Warnings []string
	Excluded []string
}

// Handle renders the annual summary as an aligned text report, including
// the validation warnings and any periods excluded from the run.
func (c *Reporter) Handle(summary *domain.AnnualSummary, vres validator.Result) error {
	funcMap := template.FuncMap{
		"formatRow": func(code, value, unit, goal, status, margin string) string {
			return fmt.Sprintf("| %-*s | %-*s | %-*s | %-*s | %-*s | %-*s |",
				c.config.CodeWidth, code,
				c.config.ValueWidth, value,
				c.config.UnitWidth, unit,
				c.config.GoalWidth, goal,
				c.config.StatusWidth, status,
				c.config.MarginWidth, margin)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.CodeWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2),
				strings.Repeat("-", c.config.UnitWidth+2),
				strings.Repeat("-", c.config.GoalWidth+2),
				strings.Repeat("-", c.config.StatusWidth+2),
				strings.Repeat("-", c.config.MarginWidth+2))
		},
	}

	tmpl := `
IESS CD 513 Indicator Report: {{.Year}}
Trend: {{.Trend}}
{{range .Excluded}}
EXCLUDED: {{.}}{{end}}{{range .Warnings}}
WARNING: {{.}}{{end}}
{{range .Periods}}
=== {{.Label}} ===
{{separator}}
{{formatRow "Indicator" "Value" "Unit" "Goal" "Status" "Margin"}}
{{separator}}
{{range .Rows}}{{formatRow .Code .Value .Unit .Goal .Status .Margin}}
{{end}}{{separator}}
{{end}}
=== Reactive rollups ===
{{range .Rollups}}
{{.Label}}: lesions={{.Lesions}} lost_days={{.LostDays}} hours={{.Hours}} IF={{.IF}} IG={{.IG}} TR={{.TR}}{{end}}

=== Year statistics ===

Total lesions:          {{printf "%.0f" .Stats.TotalLesions}}
Total lost days:        {{printf "%.0f" .Stats.TotalLostDays}}
Total hours:            {{printf "%.2f" .Stats.TotalHours}}
Mean IF:                {{printf "%.2f" .Stats.MeanIF}}
Mean IG:                {{printf "%.2f" .Stats.MeanIG}}
Mean TR:                {{printf "%.2f" .Stats.MeanTR}}
Mean management index:  {{printf "%.2f" .Stats.MeanManagementIndex}}
Periods meeting goal:   {{.Stats.PeriodsMeetingGoal}}
Periods without lesion: {{.Stats.PeriodsWithoutLesions}}
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, buildView(summary, vres))
}

func buildView(summary *domain.AnnualSummary, vres validator.Result) summaryView {
	view := summaryView{
		Year:  summary.Year,
		Trend: string(summary.Trend),
		Stats: summary.Stats,
	}

	for _, fe := range vres.Errors {
		view.Excluded = append(view.Excluded, fe.Error())
	}
	for _, fe := range vres.Warnings {
		view.Warnings = append(view.Warnings, fe.Error())
	}

	for _, p := range summary.Periods {
		pv := periodView{Label: p.Period.String()}
		for _, r := range p.Results {
			pv.Rows = append(pv.Rows, buildRow(r, statusFor(p.Statuses, r.Code)))
		}
		pv.Rows = append(pv.Rows, buildRow(p.ManagementIndex, &p.ManagementStatus))
		view.Periods = append(view.Periods, pv)
	}

	for _, r := range summary.Rollups {
		view.Rollups = append(view.Rollups, rollupView{
			Label:    r.Label,
			Lesions:  fmt.Sprintf("%.0f", r.Lesions),
			LostDays: fmt.Sprintf("%.0f", r.LostDays),
			Hours:    fmt.Sprintf("%.2f", r.Hours),
			IF:       formatValue(r.IF),
			IG:       formatValue(r.IG),
			TR:       formatValue(r.TR),
		})
	}

	return view
}

func buildRow(r domain.IndicatorResult, status *domain.ComplianceStatus) indicatorRow {
	row := indicatorRow{
		Code:  string(r.Code),
		Value: formatValue(r),
		Unit:  r.Unit,
	}
	if status != nil {
		row.Goal = fmt.Sprintf("%.1f", status.Goal)
		row.Margin = fmt.Sprintf("%+.2f", status.Margin)
		if status.Meets {
			row.Status = "meets"
		} else {
			row.Status = "missed"
		}
	}
	return row
}

func statusFor(statuses []domain.ComplianceStatus, code domain.Code) *domain.ComplianceStatus {
	for i := range statuses {
		if statuses[i].Code == code {
			return &statuses[i]
		}
	}
	return nil
}

func formatValue(r domain.IndicatorResult) string {
	if r.Flag != domain.FlagNone {
		return fmt.Sprintf("%.2f (%s)", r.Value, r.Flag)
	}
	return fmt.Sprintf("%.2f", r.Value)
}
