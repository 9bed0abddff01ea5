package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/youthopia-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/youthopia-api/internal/domain"
	"github.com/vietanh2810/youthopia-api/internal/pkg/jwthelper"
)

const (
	// ContextKeySubject holds the verified token subject: a contact number or the admin username.
	ContextKeySubject = "subject"

	tokenQueryParam = "token"
)

var (
	errMissingToken = errors.New("missing bearer token")
	errWrongRole    = errors.New("token does not grant access to this resource")
	errSessionEnded = errors.New("session has ended, please log in again")
)

// Sessions reports the ledger's live sessions. A token is only honoured while
// the session it was issued for is still the current one.
type Sessions interface {
	CurrentUser() (domain.User, bool)
	Admin() (domain.AdminUser, bool)
}

type Authenticator struct {
	signingKey []byte
	sessions   Sessions
}

func NewAuthenticator(signingKey string, sessions Sessions) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
		sessions:   sessions,
	}
}

// VerifyJWT admits user tokens whose subject is the logged-in contact.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return a.verify(jwthelper.RoleUser, func(subject string) bool {
		u, ok := a.sessions.CurrentUser()
		return ok && u.Contact == subject
	})
}

func (a *Authenticator) VerifyAdminJWT() gin.HandlerFunc {
	return a.verify(jwthelper.RoleAdmin, func(subject string) bool {
		admin, ok := a.sessions.Admin()
		return ok && admin.Username == subject
	})
}

func (a *Authenticator) verify(role jwthelper.Role, live func(subject string) bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := extractToken(ctx)
		if tokenString == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, tokenString)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))
			return
		}
		if claims.Role != role {
			response.RenderErr(ctx, response.ErrPermissionDenied(errWrongRole))
			return
		}
		if !live(claims.Subject) {
			response.RenderErr(ctx, response.ErrUnauthorized(errSessionEnded))
			return
		}

		ctx.Set(ContextKeySubject, claims.Subject)
		ctx.Next()
	}
}

// extractToken reads the Authorization header, falling back to the token
// query parameter for WebSocket upgrades where browsers cannot set headers.
func extractToken(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}

	return ctx.Query(tokenQueryParam)
}
