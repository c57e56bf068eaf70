package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"time"

	"github.com/rs/zerolog/log"
)

// tokenVersion identifies the cipher token layout:
// version byte, 8 byte big-endian unix timestamp, nonce, GCM ciphertext.
// The header is authenticated as additional data.
const tokenVersion = 0x01

const tokenHeaderSize = 1 + 8

// Cipher encrypts and decrypts single setting values with AES-256-GCM.
// A nil Cipher passes values through unchanged, which keeps the store
// usable in degraded plaintext mode.
type Cipher struct {
	aead cipher.AEAD
}

// NewCipher creates a Cipher from a derived 32 byte key.
func NewCipher(key []byte) (*Cipher, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &Cipher{aead: aead}, nil
}

// Encrypt returns the printable cipher token for plaintext.
// Empty input and a nil cipher pass through unchanged. Any failure to
// assemble a token falls back to returning the plaintext, so a crypto
// hiccup degrades confidentiality but never loses the value.
func (c *Cipher) Encrypt(plaintext string) string {
	if c == nil || c.aead == nil || plaintext == "" {
		return plaintext
	}

	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		log.Warn().Err(err).Msg("encrypt failed, storing value as plaintext")
		return plaintext
	}

	header := make([]byte, 0, tokenHeaderSize+len(nonce))
	header = append(header, tokenVersion)
	header = binary.BigEndian.AppendUint64(header, uint64(time.Now().Unix())) //nolint:gosec
	header = append(header, nonce...)

	sealed := c.aead.Seal(nil, nonce, []byte(plaintext), header[:tokenHeaderSize])

	return base64.URLEncoding.EncodeToString(append(header, sealed...))
}

// Decrypt returns the plaintext for a cipher token.
// Empty input and a nil cipher pass through unchanged. A token that fails
// authentication (wrong key, corrupted or tampered data, wrong format)
// yields an empty string: one broken field must not block reading the
// rest of the configuration.
func (c *Cipher) Decrypt(token string) string {
	if c == nil || c.aead == nil || token == "" {
		return token
	}

	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		log.Warn().Msg("decrypt failed: value is not a cipher token")
		return ""
	}

	nonceSize := c.aead.NonceSize()
	if len(raw) < tokenHeaderSize+nonceSize+c.aead.Overhead() || raw[0] != tokenVersion {
		log.Warn().Msg("decrypt failed: malformed cipher token")
		return ""
	}

	nonce := raw[tokenHeaderSize : tokenHeaderSize+nonceSize]

	plaintext, err := c.aead.Open(nil, nonce, raw[tokenHeaderSize+nonceSize:], raw[:tokenHeaderSize])
	if err != nil {
		log.Warn().Msg("decrypt failed: key mismatch or corrupted data")
		return ""
	}

	return string(plaintext)
}
