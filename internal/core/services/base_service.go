package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/ledger_posting_app/internal/middleware"
)

// EventPublisher receives product analytics events.
// *utils.PosthogClientWrapper satisfies it.
type EventPublisher interface {
	Enqueue(distinctId string, event string, properties map[string]any)
}

// BaseService provides common functionality for all services
type BaseService struct {
	Events EventPublisher
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Publish sends an analytics event if a publisher is configured.
func (s *BaseService) Publish(distinctID, event string, properties map[string]any) {
	if s.Events == nil {
		return
	}
	s.Events.Enqueue(distinctID, event, properties)
}
