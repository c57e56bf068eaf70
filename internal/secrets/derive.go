package secrets

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// keyDerivationIterations slows brute-force key search if the
	// storage identifier leaks.
	keyDerivationIterations = 100000

	// keySize matches AES-256.
	keySize = 32
)

// keyDerivationSecret is the fixed application-wide derivation password.
// The per-deployment component is the storage identifier used as salt.
var keyDerivationSecret = []byte("stockwatch-analysis-secret")

// DeriveKey derives the symmetric encryption key from a stable storage
// identifier (e.g. the database file path). The same identifier always
// yields the same key, so previously encrypted settings stay readable
// across restarts. An empty identifier still derives deterministically
// but is not unique per deployment; callers should treat it as a
// misconfiguration.
func DeriveKey(identifier string) []byte {
	return pbkdf2.Key(keyDerivationSecret, []byte(identifier), keyDerivationIterations, keySize, sha256.New)
}
