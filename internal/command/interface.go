package command

import (
	"context"

	"jarvis-backend/internal/model"
)

// Router maps a resolved intent to its action handler, validates required
// slots and normalizes the handler's outcome. Never propagates an error; all
// failures surface as ActionResult statuses.
type Router interface {
	Route(ctx context.Context, it model.Intent, userID string, uc model.UserContext) model.ActionResult
}
