package core

import "fmt"

// prompts.go holds every piece of fixed text the responder produces: the
// generator prompts, the empty-input messages, the banner and disclaimer
// framing and the canned paragraphs used by the simulated generator.

const (
	// EmptyQuestionMessage is returned when the chat question is blank.
	EmptyQuestionMessage = "Please enter a health question to get started."

	// EmptySymptomsMessage is returned when no symptoms were entered.
	EmptySymptomsMessage = "Please enter your symptoms to get an analysis."

	// EmptyConditionMessage is returned when the treatment form has no
	// condition.
	EmptyConditionMessage = "Please enter a medical condition to generate a treatment plan."

	ChatBanner    = "🩺 **HealthAI Response:**"
	SymptomBanner = "🔍 **Symptom Analysis:**"

	ChatDisclaimer      = "⚠️ **Remember**: This is for educational purposes only. Always consult healthcare professionals for medical advice."
	SymptomDisclaimer   = "⚠️ **Important**: This analysis is not a medical diagnosis. Please consult a healthcare professional for proper evaluation."
	TreatmentDisclaimer = "⚠️ **Disclaimer**: This is general guidance only. Your actual treatment should be determined by qualified healthcare professionals."

	// NoAnswerBody replaces a model completion that was empty once the
	// echoed prompt was removed.
	NoAnswerBody = "The assistant could not produce an answer for this request. Please rephrase it and try again."
)

// PromptFunc renders the generator prompt for a request.
type PromptFunc func(Request) string

// Prompts maps every mode to its template.
var Prompts = map[Mode]PromptFunc{
	ModeChat:            chatPrompt,
	ModeSymptomAnalysis: symptomPrompt,
	ModeTreatmentPlan:   treatmentPrompt,
}

func chatPrompt(r Request) string {
	return fmt.Sprintf("As a healthcare assistant, please answer this health-related question: %s\n\n"+
		"Provide helpful information while emphasizing the importance of consulting healthcare professionals for medical advice.",
		r.Question)
}

func symptomPrompt(r Request) string {
	return fmt.Sprintf("Based on the following symptoms: %s, provide possible medical conditions and general medication suggestions. "+
		"Always emphasize the importance of consulting a healthcare professional for proper diagnosis and treatment.",
		r.Symptoms)
}

func treatmentPrompt(r Request) string {
	return fmt.Sprintf("Generate personalized treatment suggestions for the following patient information:\n"+
		"Condition: %s\nAge: %d\nGender: %s\nMedical History: %s\n\n"+
		"Include home remedies and general medication guidelines. Always emphasize consulting healthcare professionals.",
		r.Condition, r.Age, r.Gender, r.History)
}

// BuildPrompt renders the prompt for r.Mode.
func BuildPrompt(r Request) (string, error) {
	fn, ok := Prompts[r.Mode]
	if !ok {
		return "", ErrUnknownMode
	}
	return fn(r), nil
}

// EmptyMessage is the prompt-for-input text shown for a blank request.
func EmptyMessage(m Mode) string {
	switch m {
	case ModeSymptomAnalysis:
		return EmptySymptomsMessage
	case ModeTreatmentPlan:
		return EmptyConditionMessage
	}
	return EmptyQuestionMessage
}

// Banner is the header line placed above the generated text.
func Banner(r Request) string {
	switch r.Mode {
	case ModeSymptomAnalysis:
		return SymptomBanner
	case ModeTreatmentPlan:
		return fmt.Sprintf("📋 **Treatment Plan for %s:**", r.Condition)
	}
	return ChatBanner
}

// Disclaimer is the closing line placed below the generated text.
func Disclaimer(m Mode) string {
	switch m {
	case ModeSymptomAnalysis:
		return SymptomDisclaimer
	case ModeTreatmentPlan:
		return TreatmentDisclaimer
	}
	return ChatDisclaimer
}

// Frame wraps body with the banner and disclaimer of the request's mode.
func Frame(r Request, body string) string {
	if body == "" {
		body = NoAnswerBody
	}
	return Banner(r) + "\n\n" + body + "\n\n" + Disclaimer(r.Mode)
}

// CannedResponses are the paragraphs the simulated generator chooses from.
var CannedResponses = map[Mode][]string{
	ModeChat: {
		"Based on current medical knowledge, here are some general insights about your question. However, please consult with a healthcare professional for personalized advice.",
		"This is an important health topic. While I can provide general information, it's crucial to speak with a qualified healthcare provider for specific guidance.",
		"Thank you for your question about health. Remember that this information is educational and should not replace professional medical advice.",
	},
	ModeSymptomAnalysis: {
		"Based on the symptoms you've described, there could be several possible conditions. It's important to consult with a healthcare professional for proper diagnosis and treatment. Some general recommendations include rest, hydration, and monitoring your symptoms.",
		"The symptoms you've mentioned could indicate various conditions ranging from minor to more serious. Please seek medical attention, especially if symptoms persist or worsen. In the meantime, consider basic comfort measures and avoid self-medication.",
		"These symptoms warrant professional medical evaluation. While waiting for your appointment, monitor any changes and seek immediate care if symptoms become severe. General wellness practices like adequate rest and nutrition may help.",
	},
	ModeTreatmentPlan: {
		"Here's a general treatment approach for this condition: 1) Follow prescribed medications as directed, 2) Maintain a healthy lifestyle with proper diet and exercise, 3) Regular monitoring and follow-ups, 4) Stress management techniques. Always consult your healthcare provider for personalized treatment plans.",
		"Treatment recommendations typically include: Medical management under professional supervision, lifestyle modifications, regular health monitoring, and preventive measures. Each patient's treatment should be individualized based on their specific needs and medical history.",
		"A comprehensive treatment plan usually involves: 1) Professional medical care and prescribed treatments, 2) Lifestyle adjustments including diet and exercise, 3) Regular health assessments, 4) Patient education and self-management strategies. Work closely with your healthcare team.",
	},
}

// Guidance lists the static advice shown beneath a result.  Chat has none.
var Guidance = map[Mode][]string{
	ModeSymptomAnalysis: {
		"Monitor symptoms closely and keep a symptom diary",
		"Maintain proper hydration and rest",
		"Consider scheduling an appointment with your healthcare provider",
		"Avoid self-medication without professional guidance",
		"Seek immediate medical attention if symptoms worsen",
	},
	ModeTreatmentPlan: {
		"Regular monitoring and follow-up appointments",
		"Lifestyle modifications as recommended",
		"Medication compliance if prescribed",
		"Proper nutrition and hydration",
		"Appropriate exercise and physical activity",
		"Stress management and mental health support",
	},
}
