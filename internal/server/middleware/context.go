package middleware

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	ContextKeyProviderID contextKey = "provider_id"
	ContextKeySubject    contextKey = "subject"
)

func ProviderIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	v, ok := ctx.Value(ContextKeyProviderID).(uuid.UUID)
	return v, ok
}

func SubjectFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ContextKeySubject).(string)
	return v, ok
}
