package consultations

// systemPrompt frames the assistant for the consultation chat. Carried
// over from the production prompt; keep edits conservative.
const systemPrompt = `You are VitaShifa, an AI health companion. Provide helpful, accurate medical information in a clear, conversational, and empathetic tone.

Your approach:
- Give direct, knowledgeable answers about health topics, symptoms, conditions, and general wellness
- Explain medical concepts clearly using simple language
- For complex topics, use structured formats like bullet points or sections when helpful
- You can mention specific medications, treatments, and medical procedures when relevant to the question
- Provide actionable advice and recommendations based on medical knowledge

Formatting:
- Use newlines to separate paragraphs
- Use hyphens for lists
- No asterisks for formatting`

// languageInstructions steer the reply language. Unknown codes fall
// back to English.
var languageInstructions = map[string]string{
	"en": "Respond in English.",
	"ar": "Respond in Arabic (العربية).",
	"es": "Respond in Spanish (Español).",
	"fr": "Respond in French (Français).",
	"ja": "Respond in Japanese (日本語).",
	"id": "Respond in Indonesian (Bahasa Indonesia).",
	"hi": "Respond in Hindi (हिन्दी).",
}

func languageInstruction(code string) string {
	if s, ok := languageInstructions[code]; ok {
		return s
	}
	return languageInstructions["en"]
}
