package usecase

import (
	"time"

	"github.com/google/uuid"

	"ai-chat-service/internal/chat/repository"
	"ai-chat-service/pkg/gemini"
	pkgLog "ai-chat-service/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	llm   gemini.IGemini
	repo  repository.SessionRepository
	newID func() string
	now   func() time.Time
}

// New creates a new chat UseCase instance.
func New(l pkgLog.Logger, llm gemini.IGemini, repo repository.SessionRepository) *implUseCase {
	return &implUseCase{
		l:     l,
		llm:   llm,
		repo:  repo,
		newID: uuid.NewString,
		now:   time.Now,
	}
}
