package controllers

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"wedplan/internal/infra"
	"wedplan/internal/models/db_models"
	"wedplan/internal/models/request_models"
	"wedplan/internal/repositories"
	"wedplan/internal/services"
	"wedplan/pkg/middleware"
)

func newLookupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))
	return db
}

func newLookupRouter(db *gorm.DB, caller *db_models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	repo := repositories.NewLookupRepository[db_models.EventType](db)
	svc := services.NewLookupService(repo, "event type", func(req request_models.CreateLookupRequest) *db_models.EventType {
		return &db_models.EventType{LookupFields: db_models.LookupFields{Name: req.Name, IsActive: true}}
	})
	ctrl := NewLookupController(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.CtxUserKey, caller)
		c.Next()
	})
	readWrite := middleware.RequireRoles(db_models.RoleAdmin, db_models.RoleManager)
	remove := middleware.RequireRoles(db_models.RoleAdmin)
	ctrl.RegisterRoutes(r.Group("/event-types"), readWrite, remove)
	return r
}

func TestLookupRoutesManagerAccess(t *testing.T) {
	db := newLookupTestDB(t)
	r := newLookupRouter(db, &db_models.User{Role: db_models.RoleManager})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/event-types", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// Deletes are not part of the manager's gate.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/event-types/1", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLookupRoutesStaffCannotRead(t *testing.T) {
	db := newLookupTestDB(t)
	r := newLookupRouter(db, &db_models.User{Role: db_models.RoleUser})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/event-types", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLookupRoutesAdminCanDelete(t *testing.T) {
	db := newLookupTestDB(t)
	entry := &db_models.EventType{LookupFields: db_models.LookupFields{Name: "Roka", IsActive: true}}
	require.NoError(t, db.Create(entry).Error)

	r := newLookupRouter(db, &db_models.User{Role: db_models.RoleAdmin})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/event-types/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
