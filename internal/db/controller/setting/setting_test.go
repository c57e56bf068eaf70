package setting

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/StockWatch-Admin/StockWatch-Admin/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	// Migrate the schema
	err = db.AutoMigrate(&models.Setting{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

// seedSettings inserts test data into the database.
func seedSettings(t *testing.T, db *gorm.DB, settings []models.Setting) {
	t.Helper()
	for _, setting := range settings {
		err := db.Create(&setting).Error
		require.NoError(t, err, "failed to seed test data")
	}
}

func TestGet(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		settingKey    string
		seedData      []models.Setting
		expectedError error
		expectedValue string
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			settingKey:    "test",
			expectedError: ErrDBNil,
		},
		{
			name:          "empty key",
			dbParam:       db,
			settingKey:    "",
			expectedError: ErrSettingKeyEmpty,
		},
		{
			name:          "setting not found",
			dbParam:       db,
			settingKey:    "nonexistent",
			expectedError: ErrSettingNotFound,
		},
		{
			name:       "successful get",
			dbParam:    db,
			settingKey: "gemini_model",
			seedData: []models.Setting{
				{Key: "gemini_model", Value: "gemini-2.0-flash", Category: "api_keys"},
			},
			expectedValue: "gemini-2.0-flash",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Clean database for each test
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM settings")
			}

			if tc.seedData != nil {
				seedSettings(t, tc.dbParam, tc.seedData)
			}

			setting, err := Get(tc.dbParam, tc.settingKey)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, setting)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, setting)
				assert.Equal(t, tc.settingKey, setting.Key)
				assert.Equal(t, tc.expectedValue, setting.Value)
			}
		})
	}
}

func TestGetAll(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		seedData      []models.Setting
		expectedError error
		expectedCount int
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			expectedError: ErrDBNil,
		},
		{
			name:          "empty database",
			dbParam:       db,
			expectedCount: 0,
		},
		{
			name:    "multiple settings",
			dbParam: db,
			seedData: []models.Setting{
				{Key: "stock_list", Value: "600519,000858", Category: "stocks"},
				{Key: "email_sender", Value: "ops@example.com", Category: "email"},
				{Key: "schedule_time", Value: "09:00,15:30", Category: "schedule"},
			},
			expectedCount: 3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM settings")
			}

			if tc.seedData != nil {
				seedSettings(t, tc.dbParam, tc.seedData)
			}

			settings, err := GetAll(tc.dbParam)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, settings)
			} else {
				require.NoError(t, err)
				assert.Len(t, settings, tc.expectedCount)
			}
		})
	}
}

func TestGetByCategory(t *testing.T) {
	db := setupTestDB(t)

	seedSettings(t, db, []models.Setting{
		{Key: "stock_list", Value: "600519", Category: "stocks"},
		{Key: "email_sender", Value: "ops@example.com", Category: "email"},
		{Key: "email_receivers", Value: "team@example.com", Category: "email"},
	})

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		category      string
		expectedError error
		expectedCount int
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			category:      "email",
			expectedError: ErrDBNil,
		},
		{
			name:          "matching category",
			dbParam:       db,
			category:      "email",
			expectedCount: 2,
		},
		{
			name:          "no matches",
			dbParam:       db,
			category:      "schedule",
			expectedCount: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			settings, err := GetByCategory(tc.dbParam, tc.category)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				assert.Len(t, settings, tc.expectedCount)
			}
		})
	}
}

func TestSet(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		setting       models.Setting
		seedData      []models.Setting
		expectedError error
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			setting:       models.Setting{Key: "test", Value: "value"},
			expectedError: ErrDBNil,
		},
		{
			name:          "empty key",
			dbParam:       db,
			setting:       models.Setting{Key: "", Value: "value"},
			expectedError: ErrSettingKeyEmpty,
		},
		{
			name:    "create new setting",
			dbParam: db,
			setting: models.Setting{Key: "stock_list", Value: "600519", Category: "stocks"},
		},
		{
			name:    "update existing setting",
			dbParam: db,
			setting: models.Setting{Key: "stock_list", Value: "600519,000858", Category: "stocks", Description: "watchlist"},
			seedData: []models.Setting{
				{Key: "stock_list", Value: "600519", Category: "general"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM settings")
			}

			if tc.seedData != nil {
				seedSettings(t, tc.dbParam, tc.seedData)
			}

			setting, err := Set(tc.dbParam, tc.setting)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, setting)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, setting)
				assert.False(t, setting.UpdatedAt.IsZero(), "UpdatedAt must be set on write")

				// Verify the setting was created or updated in the database
				var dbSetting models.Setting
				err = tc.dbParam.Where("key = ?", tc.setting.Key).First(&dbSetting).Error
				require.NoError(t, err)
				assert.Equal(t, tc.setting.Value, dbSetting.Value)
				assert.Equal(t, tc.setting.Category, dbSetting.Category)
				assert.Equal(t, tc.setting.Description, dbSetting.Description)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		settingKey    string
		seedData      []models.Setting
		expectedError error
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			settingKey:    "test",
			expectedError: ErrDBNil,
		},
		{
			name:          "empty key",
			dbParam:       db,
			settingKey:    "",
			expectedError: ErrSettingKeyEmpty,
		},
		{
			name:          "setting not found",
			dbParam:       db,
			settingKey:    "nonexistent",
			expectedError: ErrSettingNotFound,
		},
		{
			name:       "successful delete",
			dbParam:    db,
			settingKey: "stock_list",
			seedData: []models.Setting{
				{Key: "stock_list", Value: "600519", Category: "stocks"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM settings")
			}

			if tc.seedData != nil {
				seedSettings(t, tc.dbParam, tc.seedData)
			}

			err := Delete(tc.dbParam, tc.settingKey)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)

				// Verify the setting was deleted
				var count int64
				tc.dbParam.Model(&models.Setting{}).Where("key = ?", tc.settingKey).Count(&count)
				assert.Zero(t, count)
			}
		})
	}
}

func TestIntegration(t *testing.T) {
	db := setupTestDB(t)

	// Create a setting
	created, err := Set(db, models.Setting{Key: "tushare_token", Value: "tok-1", IsEncrypted: true, Category: "api_keys"})
	require.NoError(t, err)
	require.NotNil(t, created)

	// Get it back
	retrieved, err := Get(db, "tushare_token")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", retrieved.Value)
	assert.True(t, retrieved.IsEncrypted)

	// Upsert overwrites value and flag
	_, err = Set(db, models.Setting{Key: "tushare_token", Value: "tok-2", IsEncrypted: false, Category: "api_keys"})
	require.NoError(t, err)

	retrieved, err = Get(db, "tushare_token")
	require.NoError(t, err)
	assert.Equal(t, "tok-2", retrieved.Value)
	assert.False(t, retrieved.IsEncrypted)

	// Second key, filtered listing
	_, err = Set(db, models.Setting{Key: "stock_list", Value: "600519", Category: "stocks"})
	require.NoError(t, err)

	apiSettings, err := GetByCategory(db, "api_keys")
	require.NoError(t, err)
	assert.Len(t, apiSettings, 1)

	all, err := GetAll(db)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Delete removes the record entirely
	err = Delete(db, "tushare_token")
	require.NoError(t, err)

	_, err = Get(db, "tushare_token")
	require.ErrorIs(t, err, ErrSettingNotFound)
}
