package usecase

import (
	"context"

	"ai-chat-service/internal/model"
	"ai-chat-service/pkg/gemini"
)

// Mock logger for testing
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

// Mock Gemini client that records the last request it received.
type mockGeminiClient struct {
	response    *gemini.Response
	err         error
	lastRequest *gemini.Request
	calls       int
}

func (m *mockGeminiClient) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	m.lastRequest = req
	m.calls++
	return m.response, m.err
}

func (m *mockGeminiClient) Model() string {
	return "gemini-test"
}

// Mock session repository backed by a plain map, with injectable errors.
type mockSessionRepo struct {
	sessions  map[string][]model.Turn
	getErr    error
	saveErr   error
	saveCalls int
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{sessions: make(map[string][]model.Turn)}
}

func (m *mockSessionRepo) GetSession(ctx context.Context, sessionID string) (model.Session, error) {
	if m.getErr != nil {
		return model.Session{SessionID: sessionID}, m.getErr
	}
	return model.Session{
		SessionID:    sessionID,
		Conversation: m.sessions[sessionID],
	}, nil
}

func (m *mockSessionRepo) SaveSession(ctx context.Context, sessionID string, conversation []model.Turn) error {
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.sessions[sessionID] = conversation
	return nil
}
