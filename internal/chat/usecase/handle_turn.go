package usecase

import (
	"context"
	"time"

	"ai-chat-service/internal/chat"
	"ai-chat-service/internal/model"
	"ai-chat-service/pkg/gemini"
)

// HandleTurn runs one conversation turn as a single linear pipeline.
//
// Store and model failures are absorbed here: a failed read degrades to an
// empty session, a failed model call degrades to FallbackReply, and a failed
// save is logged and swallowed. The only error returned to the caller is
// input validation. The user/assistant pair is appended on every path, so
// the conversation keeps its even length even when the model call fails.
func (uc *implUseCase) HandleTurn(ctx context.Context, input chat.TurnInput) (chat.TurnOutput, error) {
	if input.Message == "" {
		return chat.TurnOutput{}, chat.ErrEmptyMessage
	}

	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = uc.newID()
	}

	uc.l.Infof(ctx, "HandleTurn: session=%s message_len=%d", sessionID, len(input.Message))

	session, err := uc.repo.GetSession(ctx, sessionID)
	if err != nil {
		uc.l.Errorf(ctx, "HandleTurn: failed to load session %s, continuing with empty history: %v", sessionID, err)
		session = model.Session{SessionID: sessionID}
	}

	prompt := BuildPrompt(input.Message, session.Conversation)
	uc.l.Debugf(ctx, "HandleTurn: generated prompt: %s", prompt)

	reply := FallbackReply
	resp, err := uc.llm.GenerateContent(ctx, &gemini.Request{
		Prompt:          prompt,
		Temperature:     generationTemperature,
		TopP:            generationTopP,
		MaxOutputTokens: generationMaxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "HandleTurn: model call failed, using fallback reply: %v", err)
	} else {
		reply = resp.Text
	}

	conversation := append(session.Conversation,
		model.Turn{Role: model.RoleUser, Content: input.Message},
		model.Turn{Role: model.RoleAssistant, Content: reply},
	)

	if err := uc.repo.SaveSession(ctx, sessionID, conversation); err != nil {
		// Degrade silently: this turn still succeeds, the next one just
		// won't see it persisted.
		uc.l.Errorf(ctx, "HandleTurn: failed to save session %s: %v", sessionID, err)
	}

	return chat.TurnOutput{
		Reply:     reply,
		SessionID: sessionID,
		Timestamp: uc.now().Format(time.RFC3339),
	}, nil
}
