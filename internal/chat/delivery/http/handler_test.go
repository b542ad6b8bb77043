package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"ai-chat-service/internal/chat"
	chatHTTP "ai-chat-service/internal/chat/delivery/http"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}

type mockUseCase struct {
	output    chat.TurnOutput
	err       error
	lastInput chat.TurnInput
}

func (m *mockUseCase) HandleTurn(ctx context.Context, input chat.TurnInput) (chat.TurnOutput, error) {
	m.lastInput = input
	if m.err != nil {
		return chat.TurnOutput{}, m.err
	}
	if input.Message == "" {
		return chat.TurnOutput{}, chat.ErrEmptyMessage
	}
	return m.output, nil
}

func newTestRouter(uc chat.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := chatHTTP.New(&mockLogger{}, uc)
	r.POST("/chat", h.HandleChat)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHandleChatSuccess(t *testing.T) {
	uc := &mockUseCase{output: chat.TurnOutput{
		Reply:     "Hi there",
		SessionID: "s1",
		Timestamp: "2026-02-23T10:00:00Z",
	}}
	r := newTestRouter(uc)

	w := postJSON(t, r, `{"message": "Hello", "session_id": "s1"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp chatHTTP.ChatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Response != "Hi there" || resp.SessionID != "s1" || resp.Timestamp == "" {
		t.Errorf("unexpected response: %+v", resp)
	}

	if uc.lastInput.Message != "Hello" || uc.lastInput.SessionID != "s1" {
		t.Errorf("use case received wrong input: %+v", uc.lastInput)
	}
}

func TestHandleChatEmptyMessage(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	w := postJSON(t, r, `{"session_id": "s1"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["error"] == "" {
		t.Error("expected error field in body")
	}
}

func TestHandleChatMalformedBody(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	w := postJSON(t, r, `{not json`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestHandleChatUnexpectedError(t *testing.T) {
	r := newTestRouter(&mockUseCase{err: errors.New("boom")})

	w := postJSON(t, r, `{"message": "Hello"}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["error"] != "boom" {
		t.Errorf("expected error message surfaced, got %q", body["error"])
	}
}
