package usecase

import (
	"strings"

	"ai-chat-service/internal/model"
)

// systemPreamble anchors every prompt. The trailing "Conversation history:"
// line is continued by the rendered window.
const systemPreamble = "You are a helpful AI assistant. Provide clear, concise, and helpful responses.\n\nConversation history:"

const emptyHistoryText = "\n\nNo previous conversation."

// BuildPrompt renders the full model prompt from the new user message and
// the conversation history. Only the last maxHistoryTurns turns are
// included, oldest first. Pure function: no side effects, no failure mode.
func BuildPrompt(userMessage string, history []model.Turn) string {
	window := history
	if len(window) > maxHistoryTurns {
		window = window[len(window)-maxHistoryTurns:]
	}

	var sb strings.Builder
	sb.WriteString(systemPreamble)

	if len(window) == 0 {
		sb.WriteString(emptyHistoryText)
	} else {
		for _, turn := range window {
			label := "Assistant"
			if turn.Role == model.RoleUser {
				label = "Human"
			}
			sb.WriteString("\n\n")
			sb.WriteString(label)
			sb.WriteString(": ")
			sb.WriteString(turn.Content)
		}
	}

	sb.WriteString("\n\nHuman: ")
	sb.WriteString(userMessage)
	sb.WriteString("\n\nAssistant:")

	return sb.String()
}
