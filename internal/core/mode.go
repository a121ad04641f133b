package core

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects the prompt template and output framing for a request.
type Mode string

const (
	ModeChat            Mode = "chat"
	ModeSymptomAnalysis Mode = "symptom_analysis"
	ModeTreatmentPlan   Mode = "treatment_plan"
)

// ErrUnknownMode is returned for a mode outside the three supported ones.
var ErrUnknownMode = errors.New("unknown mode")

// Modes lists the supported modes in the order the UI shows them.
var Modes = []Mode{ModeChat, ModeSymptomAnalysis, ModeTreatmentPlan}

// ParseMode maps a mode name or one of its URL aliases to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "chat":
		return ModeChat, nil
	case "symptom_analysis", "symptoms":
		return ModeSymptomAnalysis, nil
	case "treatment_plan", "treatment":
		return ModeTreatmentPlan, nil
	}
	return "", ErrUnknownMode
}

// Genders are the choices offered by the treatment plan form.  The server
// does not enforce them.
var Genders = []string{"Male", "Female", "Other", "Prefer not to say"}

// Request carries the form fields for one call.  Only the fields belonging to
// Mode are read.
type Request struct {
	Mode      Mode
	Question  string
	Symptoms  string
	Condition string
	Age       int
	Gender    string
	History   string
}

// primary returns the field that must be non-empty for the mode.
func (r Request) primary() string {
	switch r.Mode {
	case ModeChat:
		return r.Question
	case ModeSymptomAnalysis:
		return r.Symptoms
	case ModeTreatmentPlan:
		return r.Condition
	}
	return ""
}

// Empty reports whether the primary field is blank.
func (r Request) Empty() bool {
	return strings.TrimSpace(r.primary()) == ""
}

// Summary is a one-line description of the form input, used for history.
func (r Request) Summary() string {
	if r.Mode == ModeTreatmentPlan {
		return fmt.Sprintf("Condition: %s, Age: %d, Gender: %s, History: %s", r.Condition, r.Age, r.Gender, r.History)
	}
	return strings.TrimSpace(r.primary())
}
