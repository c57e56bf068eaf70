// Package setting provides CRUD operations for the settings key/value table.
package setting

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/StockWatch-Admin/StockWatch-Admin/internal/db/models"
)

const (
	keyQueryPattern      = "key = ?"
	categoryQueryPattern = "category = ?"
)

var (
	// ErrSettingNotFound is returned when a setting is not found.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrSettingKeyEmpty is returned when attempting to read/write a setting with an empty key.
	ErrSettingKeyEmpty = errors.New("setting key cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a setting by its key.
func Get(db *gorm.DB, key string) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if key == "" {
		return nil, ErrSettingKeyEmpty
	}

	var setting models.Setting
	result := db.Where(keyQueryPattern, key).First(&setting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, result.Error
	}

	return &setting, nil
}

// GetAll retrieves all settings from the database.
func GetAll(db *gorm.DB) ([]models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var settings []models.Setting
	result := db.Find(&settings)
	if result.Error != nil {
		return nil, result.Error
	}

	return settings, nil
}

// GetByCategory retrieves all settings with the given category.
func GetByCategory(db *gorm.DB, category string) ([]models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var settings []models.Setting
	result := db.Where(categoryQueryPattern, category).Find(&settings)
	if result.Error != nil {
		return nil, result.Error
	}

	return settings, nil
}

// Set creates or updates a setting by key (upsert operation).
// Value, flag, category, description and timestamp are all overwritten.
// The read-check-then-write runs inside one transaction.
func Set(db *gorm.DB, s models.Setting) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if s.Key == "" {
		return nil, ErrSettingKeyEmpty
	}

	s.UpdatedAt = time.Now()

	err := db.Transaction(func(tx *gorm.DB) error {
		var existing models.Setting
		result := tx.Where(keyQueryPattern, s.Key).First(&existing)

		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return tx.Create(&s).Error
		}
		if result.Error != nil {
			return result.Error
		}

		existing.Value = s.Value
		existing.IsEncrypted = s.IsEncrypted
		existing.Category = s.Category
		existing.Description = s.Description
		existing.UpdatedAt = s.UpdatedAt

		return tx.Save(&existing).Error
	})
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// Delete deletes a setting by key.
func Delete(db *gorm.DB, key string) error {
	if db == nil {
		return ErrDBNil
	}
	if key == "" {
		return ErrSettingKeyEmpty
	}

	result := db.Where(keyQueryPattern, key).Delete(&models.Setting{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSettingNotFound
	}

	return nil
}
