package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/field_cipher_mock.go -package=mock

// FieldCipher encrypts and decrypts a single text field of a vault record.
// It never knows about storage: callers pass clear text in and store the
// returned token as is.
//
// Token format:
//
//	token = base64( IV (16 bytes) || AES-256-CBC(PKCS#7(UTF-16LE(plaintext))) )
type FieldCipher interface {
	// Encrypt returns the token for plaintext. An empty plaintext yields an
	// empty token without touching the key. Every call uses a fresh random IV,
	// so encrypting the same value twice produces two different tokens.
	Encrypt(plaintext string) (string, error)

	// Decrypt reverses Encrypt. An empty token yields an empty string.
	// A malformed token (bad base64, truncated IV, broken padding) returns an
	// error wrapping [ErrCipher]. There is no authentication tag: a token
	// produced under another key may decrypt to garbage instead of failing.
	Decrypt(token string) (string, error)
}
