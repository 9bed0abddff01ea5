package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/youthopia-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/youthopia-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/youthopia-api/internal/catalog"
	"github.com/vietanh2810/youthopia-api/internal/domain"
	"github.com/vietanh2810/youthopia-api/internal/pkg/qrcode"
)

var (
	errCodeFormat   = &domain.ValidationError{Reason: qrcode.ReasonInvalidFormat}
	errCodeMismatch = &domain.ValidationError{Reason: "code_mismatch"}
)

type PassportService interface {
	CurrentUser() (domain.User, bool)
	Events() []domain.UserEvent
	Summary() (domain.UserSummary, bool)
	RegisterForEvent(ctx context.Context, eventID string) error
	CompleteEvent(ctx context.Context, eventID string) error
	SubmitFeedback(ctx context.Context, eventID, feedback string) error
	Spin(ctx context.Context) (domain.SpinResult, error)
}

type NotificationCenter interface {
	LastNotification() *domain.Notification
	ClearLastNotification()
	LastEarnedAchievements() []domain.Achievement
	ClearLastEarnedAchievements()
}

type PassportHandler struct {
	svc   PassportService
	notes NotificationCenter
}

func NewPassportHandler(svc PassportService, notes NotificationCenter) *PassportHandler {
	return &PassportHandler{
		svc:   svc,
		notes: notes,
	}
}

// eventFromPath resolves :eventID against the catalog and renders a 404 when it is unknown.
func eventFromPath(ctx *gin.Context) (domain.Event, bool) {
	eventID := ctx.Param("eventID")
	event, ok := catalog.FindEvent(eventID)
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
		return domain.Event{}, false
	}

	return event, true
}

func (h *PassportHandler) renderCurrentUser(ctx *gin.Context, status int) {
	user, ok := h.svc.CurrentUser()
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errors.New("not logged in")))
		return
	}

	ctx.JSON(status, user)
}

// HandleGetEvents godoc
// @Summary      List the event catalog
// @Tags         events
// @Produce      json
// @Success      200  {array}   domain.CatalogEvent
// @Router       /events [get]
func HandleGetEvents(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, catalog.CatalogEvents())
}

// HandleGetMe godoc
// @Summary      Get the logged in participant
// @Tags         passport
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  response.Err
// @Router       /me [get]
// @Security BearerAuth
func (h *PassportHandler) HandleGetMe(ctx *gin.Context) {
	h.renderCurrentUser(ctx, http.StatusOK)
}

// HandleGetMyEvents godoc
// @Summary      List the participant's events with progress
// @Tags         passport
// @Produce      json
// @Success      200  {array}   domain.UserEvent
// @Failure      401  {object}  response.Err
// @Router       /me/events [get]
// @Security BearerAuth
func (h *PassportHandler) HandleGetMyEvents(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.svc.Events())
}

// HandleGetSummary godoc
// @Summary      Get the shareable passport summary
// @Tags         passport
// @Produce      json
// @Success      200  {object}  domain.UserSummary
// @Failure      401  {object}  response.Err
// @Router       /me/summary [get]
// @Security BearerAuth
func (h *PassportHandler) HandleGetSummary(ctx *gin.Context) {
	summary, ok := h.svc.Summary()
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errors.New("not logged in")))
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

// HandleRegisterForEvent godoc
// @Summary      Register for an event
// @Description  Credits the registration bonus once. Registering again changes nothing.
// @Tags         passport
// @Produce      json
// @Param        eventID  path      string  true  "Event ID"
// @Success      200      {object}  domain.User
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /me/events/{eventID}/register [post]
// @Security BearerAuth
func (h *PassportHandler) HandleRegisterForEvent(ctx *gin.Context) {
	event, ok := eventFromPath(ctx)
	if !ok {
		return
	}

	if err := h.svc.RegisterForEvent(ctx.Request.Context(), event.ID); err != nil {
		response.RenderErr(ctx, response.ErrFromDomain("v1.HandleRegisterForEvent -> h.svc.RegisterForEvent", err))
		return
	}

	h.renderCurrentUser(ctx, http.StatusOK)
}

// HandleCompleteEvent godoc
// @Summary      Complete an event with its QR code
// @Description  The scanned code must name the event in the path.
// @Tags         passport
// @Produce      json
// @Param        eventID  path      string  true  "Event ID"
// @Param        request  body      request.CompleteEventRequest true "request body"
// @Success      200      {object}  domain.User
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /me/events/{eventID}/complete [post]
// @Security BearerAuth
func (h *PassportHandler) HandleCompleteEvent(ctx *gin.Context) {
	event, ok := eventFromPath(ctx)
	if !ok {
		return
	}

	var req request.CompleteEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	code, err := qrcode.Parse(req.Code)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromDomain("v1.HandleCompleteEvent -> qrcode.Parse", errCodeFormat))
		return
	}
	if code.EventID != event.ID {
		response.RenderErr(ctx, response.ErrFromDomain("v1.HandleCompleteEvent", errCodeMismatch))
		return
	}

	if err = h.svc.CompleteEvent(ctx.Request.Context(), event.ID); err != nil {
		response.RenderErr(ctx, response.ErrFromDomain("v1.HandleCompleteEvent -> h.svc.CompleteEvent", err))
		return
	}

	h.renderCurrentUser(ctx, http.StatusOK)
}

// HandleSubmitFeedback godoc
// @Summary      Leave feedback on an event
// @Tags         passport
// @Produce      json
// @Param        eventID  path      string  true  "Event ID"
// @Param        request  body      request.FeedbackRequest true "request body"
// @Success      200      {object}  domain.User
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /me/events/{eventID}/feedback [post]
// @Security BearerAuth
func (h *PassportHandler) HandleSubmitFeedback(ctx *gin.Context) {
	event, ok := eventFromPath(ctx)
	if !ok {
		return
	}

	var req request.FeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.SubmitFeedback(ctx.Request.Context(), event.ID, req.Feedback); err != nil {
		response.RenderErr(ctx, response.ErrFromDomain("v1.HandleSubmitFeedback -> h.svc.SubmitFeedback", err))
		return
	}

	h.renderCurrentUser(ctx, http.StatusOK)
}

// HandleSpin godoc
// @Summary      Spin the prize wheel
// @Description  Consumes one spin and credits the prize. Without spins nothing changes and spun is false.
// @Tags         passport
// @Produce      json
// @Success      200  {object}  domain.SpinResult
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /me/spin [post]
// @Security BearerAuth
func (h *PassportHandler) HandleSpin(ctx *gin.Context) {
	result, err := h.svc.Spin(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleSpin -> h.svc.Spin -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// HandleGetNotifications godoc
// @Summary      Get the latest notification and newly earned achievements
// @Tags         passport
// @Produce      json
// @Success      200  {object}  response.NotificationsResponse
// @Router       /me/notifications [get]
// @Security BearerAuth
func (h *PassportHandler) HandleGetNotifications(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.NotificationsResponse{
		Notification: h.notes.LastNotification(),
		Achievements: h.notes.LastEarnedAchievements(),
	})
}

// HandleClearNotification godoc
// @Summary      Dismiss the latest notification
// @Tags         passport
// @Success      204
// @Router       /me/notifications [delete]
// @Security BearerAuth
func (h *PassportHandler) HandleClearNotification(ctx *gin.Context) {
	h.notes.ClearLastNotification()
	ctx.Status(http.StatusNoContent)
}

// HandleClearAchievements godoc
// @Summary      Dismiss the newly earned achievements
// @Tags         passport
// @Success      204
// @Router       /me/achievements/recent [delete]
// @Security BearerAuth
func (h *PassportHandler) HandleClearAchievements(ctx *gin.Context) {
	h.notes.ClearLastEarnedAchievements()
	ctx.Status(http.StatusNoContent)
}
