package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"ai-chat-service/internal/model"
)

// The stored record layout is consumed by existing data; keys and role
// values must stay exactly sessionId/conversation/lastUpdated and
// user/assistant.
func TestSessionRecordLayout(t *testing.T) {
	s := model.Session{
		SessionID: "s1",
		Conversation: []model.Turn{
			{Role: model.RoleUser, Content: "Hello"},
			{Role: model.RoleAssistant, Content: "Hi there"},
		},
		LastUpdated: time.Date(2026, 2, 23, 10, 0, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var record map[string]json.RawMessage
	if err := json.Unmarshal(raw, &record); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{"sessionId", "conversation", "lastUpdated"} {
		if _, ok := record[key]; !ok {
			t.Errorf("record missing key %q", key)
		}
	}

	var turns []map[string]string
	if err := json.Unmarshal(record["conversation"], &turns); err != nil {
		t.Fatalf("unmarshal conversation: %v", err)
	}
	if turns[0]["role"] != "user" || turns[1]["role"] != "assistant" {
		t.Errorf("unexpected role values: %v", turns)
	}

	var lastUpdated string
	if err := json.Unmarshal(record["lastUpdated"], &lastUpdated); err != nil {
		t.Fatalf("unmarshal lastUpdated: %v", err)
	}
	if _, err := time.Parse(time.RFC3339, lastUpdated); err != nil {
		t.Errorf("lastUpdated not RFC3339: %q", lastUpdated)
	}
}
