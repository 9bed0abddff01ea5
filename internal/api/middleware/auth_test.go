package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/youthopia-api/internal/domain"
	"github.com/vietanh2810/youthopia-api/internal/pkg/jwthelper"
)

const testKey = "test-signing-key"

type fakeSessions struct {
	contact string
	admin   string
}

func (f fakeSessions) CurrentUser() (domain.User, bool) {
	return domain.User{Contact: f.contact}, f.contact != ""
}

func (f fakeSessions) Admin() (domain.AdminUser, bool) {
	return domain.AdminUser{Username: f.admin}, f.admin != ""
}

func newRouter(sessions Sessions) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	a := NewAuthenticator(testKey, sessions)

	handler := func(ctx *gin.Context) {
		ctx.String(http.StatusOK, ctx.GetString(ContextKeySubject))
	}
	r.GET("/me", a.VerifyJWT(), handler)
	r.GET("/admin", a.VerifyAdminJWT(), handler)

	return r
}

func token(t *testing.T, subject string, role jwthelper.Role) string {
	t.Helper()
	tok, err := jwthelper.GenerateToken([]byte(testKey), subject, role, time.Hour, "")
	require.NoError(t, err)
	return tok
}

func TestAuthenticator(t *testing.T) {
	r := newRouter(fakeSessions{contact: "9999999999", admin: "Admin"})

	tests := []struct {
		name       string
		path       string
		header     string
		query      string
		wantStatus int
		wantBody   string
	}{
		{name: "user ok", path: "/me", header: "Bearer " + token(t, "9999999999", jwthelper.RoleUser), wantStatus: http.StatusOK, wantBody: "9999999999"},
		{name: "user via query", path: "/me", query: token(t, "9999999999", jwthelper.RoleUser), wantStatus: http.StatusOK},
		{name: "missing token", path: "/me", wantStatus: http.StatusUnauthorized},
		{name: "stale session", path: "/me", header: "Bearer " + token(t, "1111111111", jwthelper.RoleUser), wantStatus: http.StatusUnauthorized},
		{name: "admin token on user route", path: "/me", header: "Bearer " + token(t, "Admin", jwthelper.RoleAdmin), wantStatus: http.StatusForbidden},
		{name: "admin ok", path: "/admin", header: "Bearer " + token(t, "Admin", jwthelper.RoleAdmin), wantStatus: http.StatusOK, wantBody: "Admin"},
		{name: "user token on admin route", path: "/admin", header: "Bearer " + token(t, "9999999999", jwthelper.RoleUser), wantStatus: http.StatusForbidden},
		{name: "garbage", path: "/admin", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := tt.path
			if tt.query != "" {
				target += "?token=" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestAuthenticator_AdminLoggedOut(t *testing.T) {
	r := newRouter(fakeSessions{})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, "Admin", jwthelper.RoleAdmin))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
