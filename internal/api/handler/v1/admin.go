package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/youthopia-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/youthopia-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/youthopia-api/internal/catalog"
	"github.com/vietanh2810/youthopia-api/internal/domain"
	"github.com/vietanh2810/youthopia-api/internal/pkg/qrcode"
)

type AdminService interface {
	DashboardStats() domain.DashboardStats
	AllUsers() []domain.User
	AllFeedback() []domain.FeedbackEntry
	UpdateUserStatus(ctx context.Context, contact string, active bool) error
}

type AdminHandler struct {
	svc AdminService
}

func NewAdminHandler(svc AdminService) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

// HandleGetDashboard godoc
// @Summary      Aggregate program statistics
// @Tags         admin
// @Produce      json
// @Success      200  {object}  domain.DashboardStats
// @Failure      401  {object}  response.Err
// @Router       /admin/dashboard [get]
// @Security BearerAuth
func (h *AdminHandler) HandleGetDashboard(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.svc.DashboardStats())
}

// HandleGetUsers godoc
// @Summary      List every participant
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      401  {object}  response.Err
// @Router       /admin/users [get]
// @Security BearerAuth
func (h *AdminHandler) HandleGetUsers(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.svc.AllUsers())
}

// HandleUpdateUserStatus godoc
// @Summary      Activate or deactivate a participant
// @Tags         admin
// @Produce      json
// @Param        contact  path      string  true  "Contact number"
// @Param        request  body      request.UserStatusRequest true "request body"
// @Success      204
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /admin/users/{contact}/status [patch]
// @Security BearerAuth
func (h *AdminHandler) HandleUpdateUserStatus(ctx *gin.Context) {
	var req request.UserStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	err := h.svc.UpdateUserStatus(ctx.Request.Context(), ctx.Param("contact"), *req.Active)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromDomain("v1.HandleUpdateUserStatus -> h.svc.UpdateUserStatus", err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGetFeedback godoc
// @Summary      All feedback left by participants
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.FeedbackEntry
// @Failure      401  {object}  response.Err
// @Router       /admin/feedback [get]
// @Security BearerAuth
func (h *AdminHandler) HandleGetFeedback(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.svc.AllFeedback())
}

// HandleGetEvents godoc
// @Summary      Event catalog with phases
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.CatalogEvent
// @Failure      401  {object}  response.Err
// @Router       /admin/events [get]
// @Security BearerAuth
func (h *AdminHandler) HandleGetEvents(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, catalog.CatalogEvents())
}

// HandleGenerateQR godoc
// @Summary      Generate a completion code for an event
// @Tags         admin
// @Produce      json
// @Param        request  body      request.GenerateQRRequest true "request body"
// @Success      200      {object}  response.QRCodeResponse
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Router       /admin/qr/generate [post]
// @Security BearerAuth
func (h *AdminHandler) HandleGenerateQR(ctx *gin.Context) {
	var req request.GenerateQRRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if _, ok := catalog.FindEvent(req.EventID); !ok {
		response.RenderErr(ctx, response.ErrNotFound("event", "ID", req.EventID))
		return
	}

	ctx.JSON(http.StatusOK, response.QRCodeResponse{Code: qrcode.Generate(req.EventID, req.Data)})
}

// HandleValidateQR godoc
// @Summary      Check a scanned code against the catalog
// @Tags         admin
// @Produce      json
// @Param        request  body      request.ValidateQRRequest true "request body"
// @Success      200      {object}  qrcode.Validation
// @Failure      400      {object}  response.Err
// @Router       /admin/qr/validate [post]
// @Security BearerAuth
func (h *AdminHandler) HandleValidateQR(ctx *gin.Context) {
	var req request.ValidateQRRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ctx.JSON(http.StatusOK, qrcode.Validate(req.Code, eventName))
}

func eventName(eventID string) (string, bool) {
	event, ok := catalog.FindEvent(eventID)
	return event.Name, ok
}
