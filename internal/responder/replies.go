package responder

// Fixed reply and prompt text. Kept as data in one place so the texts can
// change without touching the orchestration flow.

const (
	promptForInputReply = "Please enter a question about the Somnair device or support."

	greetingReply = "Hello! I can help with the Somnair sleep therapy device and support: " +
		"setup, usage, troubleshooting, and appointments. What would you like to know?"

	outOfScopeReply = "I can help with the Somnair sleep therapy device and support only " +
		"(setup, usage, troubleshooting, appointments). For other topics, please contact your clinician."

	apologyReply = "Sorry, I can't answer that right now. For urgent questions about the " +
		"Somnair device, please contact support on 0800 555 0199."

	systemPrompt = "You are an assistant for the Somnair sleep therapy device and related service ONLY.\n" +
		"Answer strictly using the provided CONTEXT. If the answer is not in CONTEXT, reply:\n" +
		"\"I can help with the Somnair device and support only. For other topics, please contact your clinician.\"\n" +
		"NEVER provide medical advice, diagnosis, or treatment instructions. Keep answers to 1-3 sentences.\n" +
		"At the end, include short bracket citations like [1], [2] that correspond to the provided context items."

	// noContextSentinel stands in for the context block when retrieval came
	// back empty, so the generator declines instead of improvising.
	noContextSentinel = "NO RELEVANT CONTEXT FOUND"
)

// noContextMarkers are the phrases by which we recognize that the generator
// itself found nothing usable. Substring matching on model output is fragile
// against phrasing drift; every such phrase must live in this table.
var noContextMarkers = []string{
	"no relevant context",
	"not in the context",
	"contact your clinician",
}
