package chat

// TurnInput carries one user utterance. SessionID is optional; a fresh id
// is generated when it is empty.
type TurnInput struct {
	Message   string
	SessionID string
}

// TurnOutput is the result of one conversation turn.
type TurnOutput struct {
	Reply     string
	SessionID string
	Timestamp string // RFC3339
}
