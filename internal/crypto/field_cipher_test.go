package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldCipher_RoundTrip(t *testing.T) {
	c := NewFieldCipher(NewKeyRing("master"))

	tests := []struct {
		name  string
		plain string
	}{
		{name: "ascii", plain: "hunter2"},
		{name: "exact block of utf16", plain: "12345678"},
		{name: "cyrillic", plain: "секретный пароль"},
		{name: "emoji", plain: "p@ss🔑word"},
		{name: "long", plain: string(bytes.Repeat([]byte("x"), 1000))},
		{name: "embedded nul", plain: "a\x00b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := c.Encrypt(tt.plain)
			require.NoError(t, err)
			require.NotEmpty(t, token)
			assert.NotContains(t, token, tt.plain)

			got, err := c.Decrypt(token)
			require.NoError(t, err)
			assert.Equal(t, tt.plain, got)
		})
	}
}

func TestFieldCipher_RejectsInvalidUTF8(t *testing.T) {
	c := NewFieldCipher(NewKeyRing("master"))

	for _, plain := range []string{"\xff\xfe", "ok\xc3", "пароль\x80"} {
		token, err := c.Encrypt(plain)
		assert.ErrorIs(t, err, ErrInvalidPlaintext, "%q", plain)
		assert.Empty(t, token, "%q", plain)
	}
}

func TestFieldCipher_EmptyValues(t *testing.T) {
	ring := NewKeyRing("master")
	c := NewFieldCipher(ring)

	token, err := c.Encrypt("")
	require.NoError(t, err)
	assert.Empty(t, token)

	plain, err := c.Decrypt("")
	require.NoError(t, err)
	assert.Empty(t, plain)

	// empty values short-circuit before the key is needed
	ring.Close()
	_, err = c.Encrypt("")
	require.NoError(t, err)
}

func TestFieldCipher_FreshIVPerCall(t *testing.T) {
	c := NewFieldCipher(NewKeyRing("master"))

	t1, err := c.Encrypt("same value")
	require.NoError(t, err)
	t2, err := c.Encrypt("same value")
	require.NoError(t, err)

	assert.NotEqual(t, t1, t2)

	b1, _ := base64.StdEncoding.DecodeString(t1)
	b2, _ := base64.StdEncoding.DecodeString(t2)
	assert.NotEqual(t, b1[:aes.BlockSize], b2[:aes.BlockSize], "IVs must differ")

	p1, err := c.Decrypt(t1)
	require.NoError(t, err)
	p2, err := c.Decrypt(t2)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
}

// The token layout must stay readable by vaults written with earlier
// releases: base64(iv || AES-CBC(PKCS#7(UTF-16LE))).
func TestFieldCipher_DecryptsKnownLayout(t *testing.T) {
	key := DeriveKey(DefaultMasterPassphrase)
	iv := bytes.Repeat([]byte{0x01}, aes.BlockSize)

	// "abc" as UTF-16LE plus 10 bytes of PKCS#7 padding
	plain := append([]byte{'a', 0, 'b', 0, 'c', 0}, bytes.Repeat([]byte{10}, 10)...)

	block, err := aes.NewCipher(key)
	require.NoError(t, err)
	ct := make([]byte, len(plain))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ct, plain)

	token := base64.StdEncoding.EncodeToString(append(iv, ct...))

	got, err := NewFieldCipher(NewDefaultKeyRing()).Decrypt(token)
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
}

func TestFieldCipher_MalformedTokens(t *testing.T) {
	c := NewFieldCipher(NewKeyRing("master"))

	key := DeriveKey("master")
	block, err := aes.NewCipher(key)
	require.NoError(t, err)
	iv := make([]byte, aes.BlockSize)
	badPadding := make([]byte, aes.BlockSize) // last byte 0 is never valid padding
	ct := make([]byte, aes.BlockSize)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ct, badPadding)

	tests := []struct {
		name  string
		token string
	}{
		{name: "not base64", token: "%%% not base64 %%%"},
		{name: "iv only", token: base64.StdEncoding.EncodeToString(make([]byte, aes.BlockSize))},
		{name: "partial block", token: base64.StdEncoding.EncodeToString(make([]byte, aes.BlockSize+7))},
		{name: "bad padding", token: base64.StdEncoding.EncodeToString(append(iv, ct...))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decrypt(tt.token)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrCipher)
		})
	}
}

func TestFieldCipher_ChangedPassphrase(t *testing.T) {
	ring := NewKeyRing("first passphrase")
	c := NewFieldCipher(ring)

	token, err := c.Encrypt("top secret value")
	require.NoError(t, err)

	ring.SetPassphrase("second passphrase")

	// Without an authentication tag a wrong key either fails the padding
	// check or yields garbage; it must never yield the original value.
	got, err := c.Decrypt(token)
	if err == nil {
		assert.NotEqual(t, "top secret value", got)
	} else {
		assert.ErrorIs(t, err, ErrCipher)
	}
}

func TestFieldCipher_ClosedKeyRing(t *testing.T) {
	ring := NewKeyRing("master")
	c := NewFieldCipher(ring)

	token, err := c.Encrypt("value")
	require.NoError(t, err)

	ring.Close()

	_, err = c.Encrypt("value")
	assert.ErrorIs(t, err, ErrKeyRingClosed)

	_, err = c.Decrypt(token)
	assert.ErrorIs(t, err, ErrKeyRingClosed)
}
