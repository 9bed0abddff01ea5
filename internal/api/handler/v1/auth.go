package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/youthopia-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/youthopia-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/youthopia-api/internal/config"
	"github.com/vietanh2810/youthopia-api/internal/domain"
	"github.com/vietanh2810/youthopia-api/internal/pkg/jwthelper"
	"github.com/vietanh2810/youthopia-api/internal/pkg/photostore"
)

type AuthService interface {
	Register(ctx context.Context, details domain.Registration) (domain.User, error)
	Login(ctx context.Context, contact, password string) error
	Logout(ctx context.Context) error
	CheckUserExists(contact string) bool
	ResetPassword(ctx context.Context, contact, newPassword string) error
	AdminLogin(ctx context.Context, contact, password string) error
	AdminLogout(ctx context.Context) error
	CurrentUser() (domain.User, bool)
	Admin() (domain.AdminUser, bool)
}

type PhotoUploader interface {
	Upload(ctx context.Context, photo string) (string, error)
}

type AuthHandler struct {
	conf   *config.APIConfig
	svc    AuthService
	photos PhotoUploader
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService, photos PhotoUploader) *AuthHandler {
	return &AuthHandler{
		conf:   conf,
		svc:    svc,
		photos: photos,
	}
}

func (h *AuthHandler) token(ctx *gin.Context, subject string, role jwthelper.Role) (string, error) {
	return jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), subject, role, h.conf.TokenTTL, ctx.Request.UserAgent())
}

// HandleRegister godoc
// @Summary      Register a new participant
// @Description  Creates the passport, credits the welcome bonus and logs the participant in
// @Tags         auth
// @Produce      json
// @Param        request   body      request.RegisterRequest true "request body"
// @Success      201      {object}   response.LoginResponse
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/register [post]
func (h *AuthHandler) HandleRegister(ctx *gin.Context) {
	var req request.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	photo, err := h.photos.Upload(ctx.Request.Context(), req.Photo)
	if err != nil {
		if errors.Is(err, photostore.ErrInvalidDataURI) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}
		err = fmt.Errorf("v1.HandleRegister -> h.photos.Upload -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	user, err := h.svc.Register(ctx.Request.Context(), domain.Registration{
		Contact:  req.Contact,
		FullName: req.FullName,
		Class:    req.Class,
		Stream:   req.Stream,
		Password: req.Password,
		Photo:    photo,
	})
	if err != nil {
		response.RenderErr(ctx, response.ErrFromDomain("v1.HandleRegister -> h.svc.Register", err))
		return
	}

	token, err := h.token(ctx, user.Contact, jwthelper.RoleUser)
	if err != nil {
		err = fmt.Errorf("v1.HandleRegister -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.LoginResponse{
		Token: token,
		User:  user,
	})
}

// HandleLogin godoc
// @Summary      Login a participant
// @Tags         auth
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.Login(ctx.Request.Context(), req.Contact, req.Password); err != nil {
		response.RenderErr(ctx, response.ErrFromDomain("v1.HandleLogin -> h.svc.Login", err))

		return
	}

	user, ok := h.svc.CurrentUser()
	if !ok {
		err := errors.New("v1.HandleLogin -> h.svc.CurrentUser -> session missing after login")
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	token, err := h.token(ctx, user.Contact, jwthelper.RoleUser)
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token: token,
		User:  user,
	})
}

// HandleLogout godoc
// @Summary      Logout the current participant
// @Tags         auth
// @Produce      json
// @Success      200      {object}   response.MessageResponse
// @Failure      500      {object}   response.Err
// @Router       /auth/logout [post]
func (h *AuthHandler) HandleLogout(ctx *gin.Context) {
	if err := h.svc.Logout(ctx.Request.Context()); err != nil {
		response.RenderErr(ctx, response.ErrFromDomain("v1.HandleLogout -> h.svc.Logout", err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "logged out"})
}

// HandleUserExists godoc
// @Summary      Check whether a contact number is registered
// @Tags         auth
// @Produce      json
// @Param        contact  path      string  true  "Contact number"
// @Success      200      {object}  response.ExistsResponse
// @Router       /auth/exists/{contact} [get]
func (h *AuthHandler) HandleUserExists(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.ExistsResponse{
		Exists: h.svc.CheckUserExists(ctx.Param("contact")),
	})
}

// HandleResetPassword godoc
// @Summary      Reset a participant password
// @Tags         auth
// @Produce      json
// @Param        request   body      request.ResetPasswordRequest true "request body"
// @Success      200      {object}   response.MessageResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/reset-password [post]
func (h *AuthHandler) HandleResetPassword(ctx *gin.Context) {
	var req request.ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.ResetPassword(ctx.Request.Context(), req.Contact, req.Password); err != nil {
		response.RenderErr(ctx, response.ErrFromDomain("v1.HandleResetPassword -> h.svc.ResetPassword", err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "password updated"})
}

// HandleAdminLogin godoc
// @Summary      Login the administrator
// @Tags         admin
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.AdminLoginResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/login [post]
func (h *AuthHandler) HandleAdminLogin(ctx *gin.Context) {
	var req request.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.AdminLogin(ctx.Request.Context(), req.Contact, req.Password); err != nil {
		response.RenderErr(ctx, response.ErrFromDomain("v1.HandleAdminLogin -> h.svc.AdminLogin", err))
		return
	}

	admin, _ := h.svc.Admin()
	token, err := h.token(ctx, admin.Username, jwthelper.RoleAdmin)
	if err != nil {
		err = fmt.Errorf("v1.HandleAdminLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.AdminLoginResponse{
		Token: token,
		Admin: admin,
	})
}

// HandleAdminLogout godoc
// @Summary      Logout the administrator
// @Tags         admin
// @Produce      json
// @Success      200      {object}   response.MessageResponse
// @Failure      500      {object}   response.Err
// @Router       /admin/logout [post]
func (h *AuthHandler) HandleAdminLogout(ctx *gin.Context) {
	if err := h.svc.AdminLogout(ctx.Request.Context()); err != nil {
		response.RenderErr(ctx, response.ErrFromDomain("v1.HandleAdminLogout -> h.svc.AdminLogout", err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "logged out"})
}
