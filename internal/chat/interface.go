package chat

import "context"

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// HandleTurn runs one conversation turn: loads the session, builds the
	// prompt, calls the model, appends the user/assistant pair, and saves.
	HandleTurn(ctx context.Context, input TurnInput) (TurnOutput, error)
}
