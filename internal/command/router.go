package command

import (
	"context"

	"jarvis-backend/internal/flights"
	"jarvis-backend/internal/model"
	"jarvis-backend/internal/scheduler"
	pkgLog "jarvis-backend/pkg/log"
)

type handler func(ctx context.Context, it model.Intent, userID string, uc model.UserContext) model.ActionResult

type router struct {
	l         pkgLog.Logger
	engine    scheduler.Engine
	flightSvc flights.Service
	table     map[model.IntentKind]handler
}

// New creates the command router with its dispatch table.
func New(l pkgLog.Logger, engine scheduler.Engine, flightSvc flights.Service) Router {
	r := &router{
		l:         l,
		engine:    engine,
		flightSvc: flightSvc,
	}
	r.table = map[model.IntentKind]handler{
		model.IntentSetAlarm:      r.handleSetAlarm,
		model.IntentDeleteAlarm:   r.handleDeleteAlarm,
		model.IntentSearchFlights: r.handleSearchFlights,
		model.IntentGetWeather:    r.handleGetWeather,
	}
	return r
}

func (r *router) Route(ctx context.Context, it model.Intent, userID string, uc model.UserContext) model.ActionResult {
	h, ok := r.table[it.Kind]
	if !ok {
		return model.ActionResult{
			Status:  model.ActionUnimplemented,
			Message: "I'm not sure how to help with that yet.",
		}
	}

	result := h(ctx, it, userID, uc)
	r.l.Infof(ctx, "command router: %s -> %s", it.Kind, result.Status)
	return result
}
