package secrets

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/StockWatch-Admin/StockWatch-Admin/internal/db/controller/setting"
	"github.com/StockWatch-Admin/StockWatch-Admin/internal/db/models"
)

// Store is the secret-aware configuration store. It classifies keys,
// encrypts sensitive values and persists them through the settings table.
// The cipher key is derived once at construction and shared read-only
// afterwards, so Store is safe for concurrent use.
type Store struct {
	db       *gorm.DB
	cipher   *Cipher
	degraded bool
}

// NewStore creates a Store bound to db. identifier is the stable storage
// location used as key derivation salt; it must not change across
// restarts of the same deployment. If cipher setup fails the store keeps
// working but stores and returns sensitive values as plaintext.
func NewStore(db *gorm.DB, identifier string) *Store {
	if identifier == "" {
		log.Warn().Msg("empty store identifier: derived key is not unique per deployment")
	}

	c, err := NewCipher(DeriveKey(identifier))
	if err != nil {
		log.Warn().Err(err).Msg("cipher setup failed, sensitive settings degrade to plaintext")
		c = nil
	}

	return &Store{db: db, cipher: c, degraded: c == nil}
}

// Degraded reports whether the store runs without working encryption.
// Deployments that prefer confidentiality over availability can check
// this at startup and refuse to serve.
func (s *Store) Degraded() bool {
	return s.degraded
}

// Get returns the value for key and whether it exists. Encrypted records
// are decrypted before returning. Storage faults are logged and reported
// as absent: callers treat a failed read like a missing setting and fall
// back to their default.
func (s *Store) Get(key string) (string, bool) {
	record, err := setting.Get(s.db, key)
	if err != nil {
		if !errors.Is(err, setting.ErrSettingNotFound) {
			log.Error().Err(err).Str("key", key).Msg("failed to read setting")
		}
		return "", false
	}

	return s.decode(record), true
}

// GetAll returns all settings as a key to value mapping, optionally
// filtered by category (empty category means no filter). Each encrypted
// value is decrypted individually; one broken token resolves to an empty
// string without affecting the rest of the mapping.
func (s *Store) GetAll(category string) map[string]string {
	var (
		records []models.Setting
		err     error
	)

	if category == "" {
		records, err = setting.GetAll(s.db)
	} else {
		records, err = setting.GetByCategory(s.db, category)
	}

	if err != nil {
		log.Error().Err(err).Str("category", category).Msg("failed to read settings")
		return map[string]string{}
	}

	values := make(map[string]string, len(records))
	for i := range records {
		values[records[i].Key] = s.decode(&records[i])
	}

	return values
}

// Set persists value under key. An empty value deletes the setting, so
// no empty-string records are retained. Sensitive keys are encrypted
// before the upsert. Storage faults are logged and reported as false.
func (s *Store) Set(key, value, category, description string) bool {
	if value == "" {
		return s.Delete(key)
	}

	sensitive := IsSensitive(key) && !s.degraded

	stored := value
	if sensitive {
		stored = s.cipher.Encrypt(value)
	}

	_, err := setting.Set(s.db, models.Setting{
		Key:         key,
		Value:       stored,
		IsEncrypted: sensitive,
		Category:    category,
		Description: description,
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to save setting")
		return false
	}

	log.Debug().Str("key", key).Msg("setting saved")

	return true
}

// SetBatch applies Set to every entry under the given category. A failed
// write does not abort the remaining entries; the result is true only if
// every write succeeded.
func (s *Store) SetBatch(values map[string]string, category string) bool {
	ok := true
	for key, value := range values {
		if !s.Set(key, value, category, "") {
			ok = false
		}
	}

	return ok
}

// Delete removes the setting for key. Absence is not an error.
func (s *Store) Delete(key string) bool {
	err := setting.Delete(s.db, key)
	if err != nil && !errors.Is(err, setting.ErrSettingNotFound) {
		log.Error().Err(err).Str("key", key).Msg("failed to delete setting")
		return false
	}

	if err == nil {
		log.Debug().Str("key", key).Msg("setting deleted")
	}

	return true
}

// Exists reports whether Get would return a value for key.
func (s *Store) Exists(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// decode returns the usable value of a stored record, decrypting when
// the record is flagged encrypted.
func (s *Store) decode(record *models.Setting) string {
	if !record.IsEncrypted || record.Value == "" {
		return record.Value
	}

	if s.degraded {
		log.Warn().Str("key", record.Key).Msg("encrypted setting unreadable without cipher")
		return ""
	}

	return s.cipher.Decrypt(record.Value)
}
