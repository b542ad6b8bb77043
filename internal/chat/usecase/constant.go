package usecase

const (
	// maxHistoryTurns is the number of trailing turns included in the
	// prompt window (3 user/assistant pairs).
	maxHistoryTurns = 6

	// FallbackReply is returned to the user when the model call fails.
	FallbackReply = "I'm experiencing technical difficulties. Please try again later."

	// Fixed generation parameters sent with every model call.
	generationTemperature = 0.5
	generationTopP        = 0.9
	generationMaxTokens   = 1000
)
