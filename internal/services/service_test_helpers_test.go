package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"wedplan/internal/infra"
	"wedplan/internal/models/db_models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))
	return db
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func seedTestGuest(t *testing.T, db *gorm.DB, phone string) *db_models.Guest {
	t.Helper()
	guest := &db_models.Guest{
		FirstName: "Ravi",
		LastName:  "Sharma",
		Phone:     phone,
		Side:      db_models.SideGroom,
		AgeGroup:  db_models.AgeAdult,
	}
	require.NoError(t, db.Create(guest).Error)
	return guest
}

func seedTestEvent(t *testing.T, db *gorm.DB, name string) *db_models.Event {
	t.Helper()
	eventType := &db_models.EventType{LookupFields: db_models.LookupFields{Name: name + " type", IsActive: true}}
	require.NoError(t, db.Create(eventType).Error)
	event := &db_models.Event{
		Name:        name,
		EventTypeID: eventType.ID,
		EventDate:   time.Date(2026, 12, 5, 0, 0, 0, 0, time.UTC),
		Status:      db_models.EventUpcoming,
	}
	require.NoError(t, db.Create(event).Error)
	return event
}

func seedTestUser(t *testing.T, db *gorm.DB, email string, role db_models.UserRole) *db_models.User {
	t.Helper()
	user := &db_models.User{
		Email:          email,
		HashedPassword: "x",
		Role:           role,
		IsActive:       true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
