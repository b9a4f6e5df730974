package v1

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/agendahub/agendahub/internal/domain"
	"github.com/agendahub/agendahub/internal/server/middleware"
)

// providerFromContext pulls the authenticated provider out of the request
// context. The auth middleware puts it there; a miss means a misrouted
// request, not a bug in the handler.
func providerFromContext(ctx context.Context) (uuid.UUID, error) {
	pid, ok := middleware.ProviderIDFromContext(ctx)
	if !ok || pid == uuid.Nil {
		return uuid.Nil, huma.Error403Forbidden("missing provider context")
	}
	return pid, nil
}

// translateError maps domain validation errors onto their HTTP status and
// everything else onto a 500 with a stable message.
func translateError(action string, err error) error {
	var derr *domain.Error
	if errors.As(err, &derr) {
		return huma.NewError(derr.Status, derr.Error())
	}
	return huma.Error500InternalServerError("failed to "+action, err)
}
