package pkg

import "time"

// RespondRequest is the JSON body accepted by POST /api/{mode}.  Only the
// fields used by the mode in the URL are read.
type RespondRequest struct {
	Question  string `json:"question,omitempty"`
	Symptoms  string `json:"symptoms,omitempty"`
	Condition string `json:"condition,omitempty"`
	Age       int    `json:"age,omitempty"`
	Gender    string `json:"gender,omitempty"`
	History   string `json:"medical_history,omitempty"`
}

// RespondResponse carries the display string and the static guidance for
// the mode.
type RespondResponse struct {
	RequestID string   `json:"request_id"`
	Mode      string   `json:"mode"`
	Response  string   `json:"response"`
	Guidance  []string `json:"guidance,omitempty"`
}

// BMIRequest is the body of POST /api/bmi.
type BMIRequest struct {
	HeightCm float64 `json:"height_cm"`
	WeightKg float64 `json:"weight_kg"`
}

// BMIResponse is the calculator result.
type BMIResponse struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
}

// Consultation is one stored question and answer.  Input is a one-line
// summary of the form fields, not the generator prompt.
type Consultation struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Mode      string    `json:"mode"`
	Input     string    `json:"input"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryResponse is returned by GET /api/history.
type HistoryResponse struct {
	Enabled       bool           `json:"enabled"`
	Consultations []Consultation `json:"consultations"`
}
