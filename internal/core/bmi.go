package core

import "errors"

// ErrInvalidMeasurement is returned for a non-positive height or weight.
var ErrInvalidMeasurement = errors.New("height and weight must be positive")

// BMIResult is the analytics tab's calculator output.
type BMIResult struct {
	Value    float64 `json:"value"`
	Category string  `json:"category"`
}

// CalculateBMI computes weight / height² with height in centimetres and
// weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) (BMIResult, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return BMIResult{}, ErrInvalidMeasurement
	}
	m := heightCm / 100
	bmi := weightKg / (m * m)
	return BMIResult{Value: bmi, Category: BMICategory(bmi)}, nil
}

// BMICategory buckets a BMI value.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	}
	return "Obese"
}
