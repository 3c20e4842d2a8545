package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"jarvis-backend/internal/scheduler"
	"jarvis-backend/pkg/response"
)

// Schedule godoc
// @Summary     Schedule a push reminder
// @Description Schedules a push notification at a future time. Timestamps
// @Description without an offset are treated as UTC. Reusing reminder_id reschedules.
// @Tags        Reminders
// @Accept      json
// @Produce     json
// @Param       body body scheduleReq true "Reminder"
// @Success     200 {object} scheduleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/reminders [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	var req scheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	job, err := h.uc.Schedule(ctx, input)
	if err != nil {
		if errors.Is(err, scheduler.ErrInvalidTime) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "uc.Schedule: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, scheduleResp{Reminder: newJobResp(job)})
}

// Cancel godoc
// @Summary     Cancel a reminder
// @Description Cancellation is idempotent; unknown ids still succeed.
// @Tags        Reminders
// @Produce     json
// @Param       id path string true "Reminder ID"
// @Success     200 {object} response.Resp
// @Router      /api/v1/reminders/{id} [DELETE]
func (h *handler) Cancel(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Cancel(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Cancel: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, nil)
}

// ListForUser godoc
// @Summary     List a user's reminders
// @Description Returns all of the user's jobs ordered by trigger time.
// @Tags        Reminders
// @Produce     json
// @Param       user_id path string true "User ID"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users/{user_id}/reminders [GET]
func (h *handler) ListForUser(c *gin.Context) {
	ctx := c.Request.Context()

	jobs, err := h.uc.ListForUser(ctx, c.Param("user_id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListForUser: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newListResp(jobs))
}

// RegisterDevice godoc
// @Summary     Register a device for push delivery
// @Description Stores the user's FCM token. A new registration replaces the prior token.
// @Tags        Devices
// @Accept      json
// @Produce     json
// @Param       body body registerDeviceReq true "Device"
// @Success     200 {object} registerDeviceResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/devices [POST]
func (h *handler) RegisterDevice(c *gin.Context) {
	ctx := c.Request.Context()

	var req registerDeviceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	registrationID, err := h.uc.RegisterDevice(ctx, req.toRegistration())
	if err != nil {
		h.l.Errorf(ctx, "uc.RegisterDevice: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, registerDeviceResp{RegistrationID: registrationID})
}
