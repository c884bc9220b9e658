package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mercuryins/pas-service/internal/model"
)

type stubTokenParser struct {
	principal model.Principal
	err       error
}

func (s stubTokenParser) Parse(raw string) (model.Principal, error) {
	return s.principal, s.err
}

func newTestRouter(parser TokenParser, roles ...model.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/", Auth(parser))
	if len(roles) > 0 {
		group.Use(RequireRoles(roles...))
	}
	group.GET("/ping", func(c *gin.Context) {
		principal, ok := MustPrincipal(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "principal not set"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": principal.UserID})
	})
	return router
}

func TestAuth(t *testing.T) {
	principal := model.Principal{UserID: uuid.New(), Role: model.RoleCustomer}

	t.Run("valid token passes through", func(t *testing.T) {
		router := newTestRouter(stubTokenParser{principal: principal})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		router := newTestRouter(stubTokenParser{principal: principal})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		router := newTestRouter(stubTokenParser{err: errors.New("expired")})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer stale-token")
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRoles(t *testing.T) {
	t.Run("allowed role", func(t *testing.T) {
		parser := stubTokenParser{principal: model.Principal{UserID: uuid.New(), Role: model.RoleAgent}}
		router := newTestRouter(parser, model.RoleAgent, model.RoleAdmin)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("forbidden role", func(t *testing.T) {
		parser := stubTokenParser{principal: model.Principal{UserID: uuid.New(), Role: model.RoleCustomer}}
		router := newTestRouter(parser, model.RoleAgent, model.RoleAdmin)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
