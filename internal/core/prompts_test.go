package core

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	got, err := BuildPrompt(Request{Mode: ModeTreatmentPlan, Condition: "diabetes", Age: 45, Gender: "Male", History: "None"})
	if err != nil {
		t.Fatal(err)
	}
	want := "Generate personalized treatment suggestions for the following patient information:\n" +
		"Condition: diabetes\nAge: 45\nGender: Male\nMedical History: None\n\n" +
		"Include home remedies and general medication guidelines. Always emphasize consulting healthcare professionals."
	if got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}

	got, _ = BuildPrompt(Request{Mode: ModeSymptomAnalysis, Symptoms: "fever, cough"})
	if !strings.HasPrefix(got, "Based on the following symptoms: fever, cough, provide possible medical conditions") {
		t.Errorf("symptom prompt %q", got)
	}

	got, _ = BuildPrompt(Request{Mode: ModeChat, Question: "Is coffee healthy?"})
	if !strings.HasPrefix(got, "As a healthcare assistant, please answer this health-related question: Is coffee healthy?\n\n") {
		t.Errorf("chat prompt %q", got)
	}

	if _, err := BuildPrompt(Request{Mode: "other"}); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
}

func TestEveryModeHasThreeCandidates(t *testing.T) {
	for _, m := range Modes {
		if n := len(CannedResponses[m]); n != 3 {
			t.Errorf("%s has %d canned responses", m, n)
		}
		if _, ok := Prompts[m]; !ok {
			t.Errorf("%s has no prompt template", m)
		}
	}
}

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{
		"chat":             ModeChat,
		"symptoms":         ModeSymptomAnalysis,
		"symptom_analysis": ModeSymptomAnalysis,
		"Treatment":        ModeTreatmentPlan,
		"treatment_plan":   ModeTreatmentPlan,
	}
	for in, want := range cases {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseMode("analytics"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("analytics should not parse")
	}
}

func TestRequestSummary(t *testing.T) {
	r := Request{Mode: ModeTreatmentPlan, Condition: "asthma", Age: 30, Gender: "Other", History: "None"}
	if got := r.Summary(); got != "Condition: asthma, Age: 30, Gender: Other, History: None" {
		t.Errorf("got %q", got)
	}
	r = Request{Mode: ModeChat, Question: "  hi  "}
	if got := r.Summary(); got != "hi" {
		t.Errorf("got %q", got)
	}
}

func TestCalculateBMI(t *testing.T) {
	res, err := CalculateBMI(180, 90)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(res.Value-27.78) > 0.01 || res.Category != "Overweight" {
		t.Errorf("got %+v", res)
	}
	for _, bad := range [][2]float64{{0, 70}, {170, 0}, {-1, 60}} {
		if _, err := CalculateBMI(bad[0], bad[1]); !errors.Is(err, ErrInvalidMeasurement) {
			t.Errorf("CalculateBMI(%v) err = %v", bad, err)
		}
	}
}

func TestBMICategory(t *testing.T) {
	cases := []struct {
		bmi  float64
		want string
	}{
		{16, "Underweight"},
		{18.49, "Underweight"},
		{18.5, "Normal weight"},
		{24.99, "Normal weight"},
		{25, "Overweight"},
		{29.9, "Overweight"},
		{30, "Obese"},
	}
	for _, tc := range cases {
		if got := BMICategory(tc.bmi); got != tc.want {
			t.Errorf("BMICategory(%v) = %q, want %q", tc.bmi, got, tc.want)
		}
	}
}
