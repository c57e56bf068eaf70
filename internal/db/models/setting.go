// Package models contains database model definitions.
package models

import "time"

// Setting represents a configuration setting stored in the database.
// Value is opaque: plaintext or a cipher token depending on IsEncrypted.
// IsEncrypted is authoritative for decrypt-on-read and is never inferred
// from the shape of Value.
type Setting struct {
	Key         string `gorm:"primaryKey"`
	Value       string
	IsEncrypted bool
	Category    string `gorm:"index"`
	Description string
	UpdatedAt   time.Time
}
