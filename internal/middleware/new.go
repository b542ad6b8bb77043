package middleware

import (
	pkgLog "ai-chat-service/pkg/log"
)

type Middleware struct {
	l pkgLog.Logger
}

func New(l pkgLog.Logger) Middleware {
	return Middleware{l: l}
}
