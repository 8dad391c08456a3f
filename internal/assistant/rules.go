package assistant

import (
	"context"
	"fmt"
	"strings"
)

const Disclaimer = "\n\n⚠️ **Medical Disclaimer**: This information is for educational purposes only and should not replace professional medical advice."

// Rule answers a message containing any of its keywords.
type Rule struct {
	Keywords []string
	Response string
}

func (r Rule) matches(lowerMessage string) bool {
	for _, k := range r.Keywords {
		if strings.Contains(lowerMessage, k) {
			return true
		}
	}
	return false
}

// RuleResponder evaluates its rules top to bottom; the first match wins.
type RuleResponder struct {
	rules    []Rule
	fallback func(message string) string
}

func NewRuleResponder(rules []Rule, fallback func(message string) string) *RuleResponder {
	return &RuleResponder{rules: rules, fallback: fallback}
}

// NewKeywordResponder answers with the portal's symptom and help texts.
func NewKeywordResponder() *RuleResponder {
	return NewRuleResponder(keywordRules, func(string) string { return defaultResponse })
}

// NewFallbackResponder answers common condition questions and otherwise
// echoes the question back, always with the medical disclaimer.
func NewFallbackResponder() *RuleResponder {
	return NewRuleResponder(fallbackRules, func(message string) string {
		return fmt.Sprintf("I understand you're asking about \"%s\". While I can provide general medical information, I recommend consulting with a healthcare professional for specific medical advice. You can also try rephrasing your question or ask about common conditions like diabetes, hypertension, or imaging procedures.", message) + Disclaimer
	})
}

func (r *RuleResponder) Match(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range r.rules {
		if rule.matches(lower) {
			return rule.Response
		}
	}
	return r.fallback(message)
}

func (r *RuleResponder) Respond(ctx context.Context, history []Message, message string) (string, error) {
	return r.Match(message), nil
}

const defaultResponse = "I'm here to help with your medical questions! I can assist with:\n\n• Symptom assessment\n• Appointment scheduling\n• Medication information\n• General health advice\n• Emergency guidance\n\nWhat would you like to know about?"

var keywordRules = []Rule{
	{
		Keywords: []string{"headache", "head pain"},
		Response: "Headaches can have various causes including stress, dehydration, or underlying medical conditions. I recommend:\n\n• Rest in a quiet, dark room\n• Stay hydrated\n• Consider over-the-counter pain relievers\n• If severe or persistent, consult a healthcare provider\n\nWhen should you seek immediate medical attention for a headache?",
	},
	{
		Keywords: []string{"fever", "temperature"},
		Response: "Fever is often a sign of infection. Here's what you should know:\n\n• Normal body temperature is around 98.6°F (37°C)\n• Fever above 103°F (39.4°C) may require medical attention\n• Stay hydrated and rest\n• Monitor for other symptoms\n\nWhat's your current temperature and are you experiencing any other symptoms?",
	},
	{
		Keywords: []string{"cough", "cold"},
		Response: "Cough and cold symptoms are common. Here are some recommendations:\n\n• Rest and stay hydrated\n• Use honey for cough relief (adults only)\n• Consider over-the-counter medications\n• Monitor for worsening symptoms\n\nHow long have you been experiencing these symptoms?",
	},
	{
		Keywords: []string{"pain", "hurt"},
		Response: "Pain can indicate various conditions. To better assist you:\n\n• Where is the pain located?\n• How severe is it (1-10 scale)?\n• When did it start?\n• What makes it better or worse?\n\nThis information will help determine if you need immediate medical attention.",
	},
	{
		Keywords: []string{"appointment", "schedule"},
		Response: "I can help you with appointment scheduling! Here are your options:\n\n• Use the Appointments section to schedule online\n• Call our office during business hours\n• Request a callback from our staff\n\nWhat type of appointment are you looking to schedule?",
	},
	{
		Keywords: []string{"medication", "medicine", "prescription"},
		Response: "For medication-related questions:\n\n• Always consult with your healthcare provider\n• Don't stop prescribed medications without medical advice\n• Report any side effects immediately\n• Keep an updated medication list\n\nWhat specific medication question do you have?",
	},
	{
		Keywords: []string{"emergency", "urgent"},
		Response: "🚨 If this is a medical emergency, please:\n\n• Call emergency services (911) immediately\n• Go to the nearest emergency room\n• Don't wait for online consultation\n\nFor urgent but non-emergency care, we can help schedule a same-day appointment.",
	},
	{
		Keywords: []string{"healthy", "wellness", "prevention"},
		Response: "Great question about health and wellness! Here are some general tips:\n\n• Maintain a balanced diet\n• Exercise regularly (150 minutes/week)\n• Get adequate sleep (7-9 hours)\n• Stay hydrated\n• Manage stress\n• Regular check-ups\n\nWhat specific aspect of health would you like to discuss?",
	},
	{
		Keywords: []string{"thank", "thanks"},
		Response: "You're very welcome! I'm here to help with any medical questions or concerns you may have. Feel free to ask anything about symptoms, appointments, medications, or general health advice.",
	},
}

var fallbackRules = []Rule{
	{
		Keywords: []string{"diabetes", "diabetic"},
		Response: "Diabetes is a chronic condition that affects how your body processes glucose. Common symptoms include increased thirst, frequent urination, and fatigue. There are two main types: Type 1 (insulin-dependent) and Type 2 (often lifestyle-related). Treatment typically involves diet, exercise, and medication. Always consult with your healthcare provider for personalized advice." + Disclaimer,
	},
	{
		Keywords: []string{"hypertension", "high blood pressure"},
		Response: "Hypertension (high blood pressure) is a common condition that can lead to serious health problems. It's often called the \"silent killer\" because it may not show symptoms. Treatment includes lifestyle changes (diet, exercise, stress management) and medications. Regular monitoring is important." + Disclaimer,
	},
	{
		Keywords: []string{"mri", "ct scan"},
		Response: "MRI (Magnetic Resonance Imaging) and CT (Computed Tomography) scans are different imaging techniques. MRI uses magnetic fields and radio waves to create detailed images of soft tissues, while CT uses X-rays for cross-sectional images. MRI is better for soft tissue, CT is faster and better for bone imaging." + Disclaimer,
	},
	{
		Keywords: []string{"antibiotic", "side effect"},
		Response: "Common side effects of antibiotics include nausea, diarrhea, stomach upset, and allergic reactions. Some may cause photosensitivity or interact with other medications. It's important to complete the full course as prescribed and report any severe side effects to your doctor." + Disclaimer,
	},
}
