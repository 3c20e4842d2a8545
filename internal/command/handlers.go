package command

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jarvis-backend/internal/flights"
	"jarvis-backend/internal/model"
	"jarvis-backend/internal/scheduler"
	"jarvis-backend/pkg/clocktime"
)

func (r *router) handleSetAlarm(ctx context.Context, it model.Intent, userID string, uc model.UserContext) model.ActionResult {
	timeSlot := it.Slots["time"]
	if timeSlot == "" {
		return model.ActionResult{
			Status:  model.ActionMissingSlots,
			Message: "I need a time to set the alarm. When would you like to wake up?",
		}
	}

	timezone := uc.Preferences[model.PrefTimezone]
	if timezone == "" {
		timezone = "UTC"
	}
	parser, err := clocktime.NewParser(timezone)
	if err != nil {
		r.l.Warnf(ctx, "set alarm: invalid timezone %q for %s, using UTC", timezone, userID)
		parser, _ = clocktime.NewParser("UTC")
	}

	trigger, err := parser.NextOccurrence(timeSlot, time.Now())
	if err != nil {
		return model.ActionResult{
			Status:  model.ActionError,
			Message: "I couldn't understand that time format. Please try again.",
		}
	}

	display := trigger.In(parser.Location()).Format("3:04 PM")
	job, err := r.engine.Schedule(ctx, scheduler.ScheduleInput{
		UserID:      userID,
		TriggerTime: trigger,
		Payload: model.JobPayload{
			Kind:  "alarm",
			Title: "Alarm",
			Body:  fmt.Sprintf("It's %s. Time to wake up!", display),
			Data:  map[string]string{"tone": uc.Preferences[model.PrefAlarmTone]},
		},
	})
	if err != nil {
		r.l.Errorf(ctx, "set alarm: scheduling for %s failed: %v", userID, err)
		return model.ActionResult{
			Status:  model.ActionError,
			Message: "Failed to set alarm. Please try again.",
		}
	}

	return model.ActionResult{
		Status:  model.ActionSuccess,
		Message: fmt.Sprintf("Alarm set for %s", display),
		Data: map[string]any{
			"alarm_id":   job.ID,
			"alarm_time": job.TriggerTimeUTC.Format(time.RFC3339),
		},
	}
}

func (r *router) handleDeleteAlarm(ctx context.Context, it model.Intent, userID string, uc model.UserContext) model.ActionResult {
	jobs, err := r.engine.ListForUser(ctx, userID)
	if err != nil {
		r.l.Errorf(ctx, "delete alarm: listing jobs for %s failed: %v", userID, err)
		return model.ActionResult{
			Status:  model.ActionError,
			Message: "Failed to delete alarm.",
		}
	}

	// Most recently created pending alarm wins.
	var recent *model.ScheduledJob
	for i := range jobs {
		job := jobs[i]
		if job.Status != model.JobScheduled || job.Payload.Kind != "alarm" {
			continue
		}
		if recent == nil || job.CreatedAt.After(recent.CreatedAt) {
			recent = &jobs[i]
		}
	}
	if recent == nil {
		return model.ActionResult{
			Status:  model.ActionNotFound,
			Message: "You don't have any active alarms.",
		}
	}

	if err := r.engine.Cancel(ctx, recent.ID); err != nil {
		r.l.Errorf(ctx, "delete alarm: cancelling %s failed: %v", recent.ID, err)
		return model.ActionResult{
			Status:  model.ActionError,
			Message: "Failed to delete alarm.",
		}
	}

	return model.ActionResult{
		Status:  model.ActionSuccess,
		Message: "Alarm deleted successfully.",
		Data:    map[string]any{"alarm_id": recent.ID},
	}
}

func (r *router) handleSearchFlights(ctx context.Context, it model.Intent, userID string, uc model.UserContext) model.ActionResult {
	// Validate together so the user learns about every missing field at once.
	var missing []string
	if it.Slots["source"] == "" {
		missing = append(missing, "source city")
	}
	if it.Slots["destination"] == "" {
		missing = append(missing, "destination city")
	}
	if it.Slots["date"] == "" {
		missing = append(missing, "travel date")
	}
	if len(missing) > 0 {
		return model.ActionResult{
			Status:  model.ActionMissingSlots,
			Message: "I need the following information: " + strings.Join(missing, ", "),
		}
	}

	result, err := r.flightSvc.Search(ctx, flights.SearchInput{
		Source:      it.Slots["source"],
		Destination: it.Slots["destination"],
		Date:        it.Slots["date"],
		TimeWindow:  it.Slots["time_window"],
		Preferences: uc.IntentSpecific,
	})
	if err != nil {
		if errors.Is(err, flights.ErrUnparsableDate) {
			return model.ActionResult{
				Status:  model.ActionError,
				Message: "I couldn't understand that date format.",
			}
		}
		r.l.Errorf(ctx, "search flights: %v", err)
		return model.ActionResult{
			Status:  model.ActionError,
			Message: "Failed to search flights. Please try again.",
		}
	}

	return model.ActionResult{
		Status: model.ActionSuccess,
		Data: map[string]any{
			"flights":     result.Flights,
			"count":       result.Count,
			"source":      result.Source,
			"destination": result.Destination,
			"date":        result.Date,
		},
	}
}

func (r *router) handleGetWeather(ctx context.Context, it model.Intent, userID string, uc model.UserContext) model.ActionResult {
	return model.ActionResult{
		Status:  model.ActionUnimplemented,
		Message: "Weather service coming soon!",
	}
}
