package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vietanh2810/youthopia-api/internal/domain"
)

type Err struct {
	Err            error  `json:"-"`
	HTTPStatusCode int    `json:"-"`
	StatusText     string `json:"status_text"`
	Reason         string `json:"reason,omitempty"`
	ErrorMsg       string `json:"error_msg,omitempty"`
}

func (e *Err) Error() string {
	return e.ErrorMsg
}

func RenderErr(ctx *gin.Context, err *Err) {
	ctx.AbortWithStatusJSON(err.HTTPStatusCode, err)
}

func newErr(status int, err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: status,
		StatusText:     http.StatusText(status),
		ErrorMsg:       err.Error(),
	}
}

func ErrBadRequest(err error) *Err {
	return newErr(http.StatusBadRequest, err)
}

func ErrConflict(err error) *Err {
	return newErr(http.StatusConflict, err)
}

func ErrNotFound(resource, field string, value any) *Err {
	return newErr(http.StatusNotFound, fmt.Errorf("%s with %s %v not found", resource, field, value))
}

func ErrWrongCredentials(err error) *Err {
	return newErr(http.StatusUnauthorized, err)
}

func ErrUnauthorized(err error) *Err {
	return newErr(http.StatusUnauthorized, err)
}

func ErrPermissionDenied(err error) *Err {
	return newErr(http.StatusForbidden, err)
}

// ErrInternalServerError logs the cause and hides it from the client.
func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		StatusText:     http.StatusText(http.StatusInternalServerError),
		ErrorMsg:       "something went wrong, please try again later",
	}
}

// ErrFromDomain maps ledger errors onto HTTP statuses. op names the failing
// call chain for the log line of unexpected errors.
func ErrFromDomain(op string, err error) *Err {
	var (
		authErr       *domain.AuthError
		validationErr *domain.ValidationError
		notFoundErr   *domain.NotFoundError
	)

	switch {
	case errors.Is(err, domain.ErrDuplicateContact):
		e := ErrConflict(err)
		e.Reason = domain.ErrDuplicateContact.Reason
		return e
	case errors.As(err, &authErr):
		e := ErrWrongCredentials(err)
		e.Reason = authErr.Reason
		return e
	case errors.As(err, &validationErr):
		e := ErrBadRequest(err)
		e.Reason = validationErr.Reason
		return e
	case errors.As(err, &notFoundErr):
		e := newErr(http.StatusNotFound, err)
		e.Reason = notFoundErr.Reason
		return e
	default:
		return ErrInternalServerError(fmt.Errorf("%s -> %w", op, err))
	}
}
