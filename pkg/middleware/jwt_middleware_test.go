package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"wedplan/internal/models/db_models"
)

func rolesRouter(gate gin.HandlerFunc, user *db_models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", func(c *gin.Context) {
		if user != nil {
			c.Set(CtxUserKey, user)
		}
		c.Next()
	}, gate, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequireRolesAllows(t *testing.T) {
	r := rolesRouter(
		RequireRoles(db_models.RoleAdmin, db_models.RoleManager),
		&db_models.User{Role: db_models.RoleManager},
	)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRolesForbidsLowerRole(t *testing.T) {
	r := rolesRouter(
		RequireRoles(db_models.RoleAdmin),
		&db_models.User{Role: db_models.RoleUser},
	)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRolesWithoutUser(t *testing.T) {
	r := rolesRouter(RequireRoles(db_models.RoleAdmin), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
