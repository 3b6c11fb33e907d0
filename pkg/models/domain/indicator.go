package domain

// Code identifies one of the IESS CD 513 indicators.
type Code string

const (
	// Reactive indicators.
	CodeIF Code = "IF" // frequency index
	CodeIG Code = "IG" // severity index
	CodeTR Code = "TR" // risk rate

	// Proactive indicators.
	CodeIART  Code = "IART"  // task risk analyses
	CodeOPAS  Code = "OPAS"  // planned observations
	CodeIDPS  Code = "IDPS"  // periodic safety dialogues
	CodeIDS   Code = "IDS"   // safety demand
	CodeIENTS Code = "IENTS" // safety training
	CodeIOSEA Code = "IOSEA" // standardized service orders
	CodeICAI  Code = "ICAI"  // accident/incident control
	CodeIEF   Code = "IEF"   // audit effectiveness

	// CodeIGTotal is the weighted management index derived from the
	// proactive indicators (IEF excluded).
	CodeIGTotal Code = "IG_TOTAL"
)

// ReactiveCodes lists the incident-severity indicators in report order.
func ReactiveCodes() []Code {
	return []Code{CodeIF, CodeIG, CodeTR}
}

// ProactiveCodes lists the prevention-activity indicators in report order.
func ProactiveCodes() []Code {
	return []Code{CodeIART, CodeOPAS, CodeIDPS, CodeIDS, CodeIENTS, CodeIOSEA, CodeICAI, CodeIEF}
}

// AllCodes lists the eleven base indicators in report order. The management
// index is derived and not part of this set.
func AllCodes() []Code {
	return append(ReactiveCodes(), ProactiveCodes()...)
}

// Flag marks a result whose value carries an edge-case meaning instead of a
// plain measurement.
type Flag string

const (
	FlagNone        Flag = ""
	FlagUndefined   Flag = "undefined"    // ratio against a zero denominator
	FlagNoData      Flag = "no_data"      // weighted average over an empty weight set
	FlagNoIncidents Flag = "no_incidents" // risk rate with zero lesions
)

// IndicatorResult is one computed indicator value for one period.
type IndicatorResult struct {
	Code   Code
	Period Period
	Value  float64
	Unit   string
	Flag   Flag
}

// ComplianceStatus is the outcome of comparing a result against its goal.
// Margin is always Value - Goal, signed, regardless of polarity.
type ComplianceStatus struct {
	Code   Code
	Period Period
	Meets  bool
	Goal   float64
	Margin float64
}
