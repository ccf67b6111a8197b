// Package eligibility holds per-intent preconditions evaluated before a procedure is returned
package eligibility

// Reason tags why a rule stopped a request
type Reason string

const (
	ReasonNone       Reason = ""
	ReasonAgeMissing Reason = "age_missing"
	ReasonAgeBelow   Reason = "age_below_min"
	ReasonAgeAbove   Reason = "age_above_max"
)

// Guidance messages for the driving license gate
const (
	MsgDrivingAgeMissing = "Please provide your age to get information about obtaining a driving license."
	MsgDrivingAgeBelow   = "You must be at least 18 years old to apply for a driving license in India."
	MsgDrivingAgeAbove   = "You seem to be too old to apply for a driving license."
)

// DrivingLicenseID is the intent gated by default
const DrivingLicenseID = "driving_license"

// Verdict is either proceed or a guidance message for the user
type Verdict struct {
	Proceed bool
	Message string
	Reason  Reason
}

// Proceed lets the request continue to the procedure lookup
var Proceed = Verdict{Proceed: true}

// Guide stops the request with message
func Guide(r Reason, message string) Verdict { return Verdict{Message: message, Reason: r} }

// Rule validates the extracted age for one intent
// known is false when no age token was found in the query
type Rule interface {
	Evaluate(age int, known bool) Verdict
}

// RuleFunc adapts a function to Rule
type RuleFunc func(age int, known bool) Verdict

// Evaluate implements Rule
func (f RuleFunc) Evaluate(age int, known bool) Verdict { return f(age, known) }

// AgeRange requires an age within [Min, Max], both inclusive
type AgeRange struct {
	Min, Max                  int
	Missing, TooYoung, TooOld string
}

// Evaluate implements Rule
func (a AgeRange) Evaluate(age int, known bool) Verdict {
	switch {
	case !known:
		return Guide(ReasonAgeMissing, a.Missing)
	case age < a.Min:
		return Guide(ReasonAgeBelow, a.TooYoung)
	case age > a.Max:
		return Guide(ReasonAgeAbove, a.TooOld)
	}
	return Proceed
}

// DrivingLicense is the 18..100 gate for driving licences
func DrivingLicense() AgeRange {
	return AgeRange{
		Min:      18,
		Max:      100,
		Missing:  MsgDrivingAgeMissing,
		TooYoung: MsgDrivingAgeBelow,
		TooOld:   MsgDrivingAgeAbove,
	}
}

// Table maps intent ids to their rule; intents without an entry always proceed
type Table map[string]Rule

// Defaults returns the stock table
func Defaults() Table {
	return Table{DrivingLicenseID: DrivingLicense()}
}

// For returns the rule gating id
func (t Table) For(id string) (Rule, bool) {
	r, ok := t[id]
	return r, ok && r != nil
}

// Evaluate runs the rule for id; ungated intents proceed
func (t Table) Evaluate(id string, age int, known bool) Verdict {
	r, ok := t.For(id)
	if !ok {
		return Proceed
	}
	return r.Evaluate(age, known)
}
