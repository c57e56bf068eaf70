package secrets

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCipher(t *testing.T, identifier string) *Cipher {
	t.Helper()

	c, err := NewCipher(DeriveKey(identifier))
	require.NoError(t, err)

	return c
}

func TestCipherRoundTrip(t *testing.T) {
	c := testCipher(t, "./data/stockwatch.db")

	values := []string{
		"a",
		"sk-0123456789abcdef",
		"multiple words with spaces",
		"非 ASCII 值",
	}

	for _, v := range values {
		token := c.Encrypt(v)
		assert.NotEqual(t, v, token, "token must differ from plaintext")
		assert.Equal(t, v, c.Decrypt(token))
	}
}

func TestCipherTokenIsFresh(t *testing.T) {
	c := testCipher(t, "./data/stockwatch.db")

	// embedded nonce makes tokens differ between calls
	assert.NotEqual(t, c.Encrypt("same value"), c.Encrypt("same value"))
}

func TestCipherEmptyPassThrough(t *testing.T) {
	c := testCipher(t, "./data/stockwatch.db")

	assert.Equal(t, "", c.Encrypt(""))
	assert.Equal(t, "", c.Decrypt(""))
}

func TestNilCipherPassThrough(t *testing.T) {
	var c *Cipher

	assert.Equal(t, "plain", c.Encrypt("plain"))
	assert.Equal(t, "whatever", c.Decrypt("whatever"))
}

func TestCipherWrongKey(t *testing.T) {
	a := testCipher(t, "./data/deployment-a.db")
	b := testCipher(t, "./data/deployment-b.db")

	token := a.Encrypt("tushare-token-value")

	assert.Equal(t, "", b.Decrypt(token), "wrong key must fail authentication, not crash")
}

func TestCipherTamperedToken(t *testing.T) {
	c := testCipher(t, "./data/stockwatch.db")

	token := c.Encrypt("secret value")

	raw, err := base64.URLEncoding.DecodeString(token)
	require.NoError(t, err)

	// flip one ciphertext bit
	raw[len(raw)-1] ^= 0x01
	tampered := base64.URLEncoding.EncodeToString(raw)

	assert.Equal(t, "", c.Decrypt(tampered))
}

func TestCipherMalformedToken(t *testing.T) {
	c := testCipher(t, "./data/stockwatch.db")

	assert.Equal(t, "", c.Decrypt("not base64 at all!"))
	assert.Equal(t, "", c.Decrypt(base64.URLEncoding.EncodeToString([]byte("too short"))))
}

func TestNewCipherRejectsBadKey(t *testing.T) {
	_, err := NewCipher([]byte("short"))
	require.Error(t, err)
}
