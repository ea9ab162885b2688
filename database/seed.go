package database

import (
	"pharmacy-pos-backend/config"
	"pharmacy-pos-backend/models"
	"pharmacy-pos-backend/utils"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedInitialAdmin creates the configured superuser when ADMIN_PASSWORD is set
// and no user with that username exists yet.
func SeedInitialAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminPassword == "" {
		log.Debug("ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var existing models.User
	err := db.Where("username = ?", cfg.AdminUsername).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrap(err, "failed to look up admin user")
	}

	hashedPassword, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash admin password")
	}

	admin := models.User{
		Username:    cfg.AdminUsername,
		Email:       cfg.AdminEmail,
		Password:    hashedPassword,
		IsStaff:     true,
		IsSuperuser: true,
		IsActive:    true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return errors.Wrapf(err, "failed to create admin user %s", cfg.AdminUsername)
	}

	log.WithField("username", admin.Username).Info("Seeded initial admin user")
	return nil
}
