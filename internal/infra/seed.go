package infra

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"wedplan/config"
	"wedplan/internal/models/db_models"
	"wedplan/pkg/utils"
)

// Migrate creates or updates every table the application owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.User{},
		&db_models.EventType{},
		&db_models.VendorCategory{},
		&db_models.DietaryPreference{},
		&db_models.GiftType{},
		&db_models.RelationType{},
		&db_models.FamilyGroup{},
		&db_models.Guest{},
		&db_models.Event{},
		&db_models.Invitation{},
		&db_models.Vendor{},
		&db_models.VendorServiceItem{},
		&db_models.BudgetCategory{},
		&db_models.Expense{},
		&db_models.Task{},
		&db_models.Gift{},
		&db_models.MediaAttachment{},
	)
}

var (
	eventTypeNames         = []string{"Engagement", "Mehendi", "Haldi", "Sangeet", "Wedding Ceremony", "Reception"}
	vendorCategoryNames    = []string{"Photographer", "Caterer", "Decorator", "DJ", "Makeup Artist", "Pandit", "Venue", "Transport"}
	dietaryPreferenceNames = []string{"Veg", "Non-Veg", "Jain", "Vegan"}
	giftTypeNames          = []string{"Cash", "Gold", "Silver", "Item"}
	relationTypeNames      = []string{"Father", "Mother", "Brother", "Sister", "Mama", "Mausi", "Bua", "Chacha", "Friend", "Colleague"}
	familyGroupNames       = []string{"Immediate Family", "Extended Family", "Friends", "Colleagues", "Neighbours"}
)

// Seed fills the lookup tables and makes sure at least one admin
// account exists. Lookup tables are only seeded when empty so manual
// edits survive restarts.
func Seed(db *gorm.DB, cfg *config.Config, logger zerolog.Logger) error {
	if err := seedLookup(db, logger, "event_types", eventTypeNames, func(f db_models.LookupFields) db_models.EventType {
		return db_models.EventType{LookupFields: f}
	}); err != nil {
		return err
	}
	if err := seedLookup(db, logger, "vendor_categories", vendorCategoryNames, func(f db_models.LookupFields) db_models.VendorCategory {
		return db_models.VendorCategory{LookupFields: f}
	}); err != nil {
		return err
	}
	if err := seedLookup(db, logger, "dietary_preferences", dietaryPreferenceNames, func(f db_models.LookupFields) db_models.DietaryPreference {
		return db_models.DietaryPreference{LookupFields: f}
	}); err != nil {
		return err
	}
	if err := seedLookup(db, logger, "gift_types", giftTypeNames, func(f db_models.LookupFields) db_models.GiftType {
		return db_models.GiftType{LookupFields: f}
	}); err != nil {
		return err
	}
	if err := seedLookup(db, logger, "relation_types", relationTypeNames, func(f db_models.LookupFields) db_models.RelationType {
		return db_models.RelationType{LookupFields: f}
	}); err != nil {
		return err
	}
	if err := seedLookup(db, logger, "family_groups", familyGroupNames, func(f db_models.LookupFields) db_models.FamilyGroup {
		return db_models.FamilyGroup{LookupFields: f}
	}); err != nil {
		return err
	}

	return seedFirstAdmin(db, cfg, logger)
}

// seedLookup inserts the default rows for one reference table through
// the model layer, so timestamps and defaults are handled by gorm.
func seedLookup[T any](db *gorm.DB, logger zerolog.Logger, table string, names []string, build func(db_models.LookupFields) T) error {
	var count int64
	if err := db.Model(new(T)).Count(&count).Error; err != nil {
		return fmt.Errorf("count %s: %w", table, err)
	}
	if count > 0 {
		return nil
	}

	rows := make([]T, 0, len(names))
	for _, name := range names {
		rows = append(rows, build(db_models.LookupFields{Name: name, IsActive: true}))
	}
	if err := db.Create(&rows).Error; err != nil {
		return fmt.Errorf("seed %s: %w", table, err)
	}
	logger.Info().Str("table", table).Int("rows", len(rows)).Msg("lookup table seeded")
	return nil
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config, logger zerolog.Logger) error {
	var count int64
	if err := db.Model(&db_models.User{}).
		Where("role = ? AND is_deleted = ?", db_models.RoleAdmin, false).
		Count(&count).Error; err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := utils.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := &db_models.User{
		Email:          cfg.FirstAdminEmail,
		HashedPassword: hashed,
		Role:           db_models.RoleAdmin,
		IsActive:       true,
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("create first admin: %w", err)
	}
	logger.Info().Str("email", cfg.FirstAdminEmail).Msg("first admin account created")
	return nil
}
