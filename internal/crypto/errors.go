package crypto

import "errors"

var (
	// ErrCipher is returned when a token cannot be decrypted with the current
	// key: corrupt data, truncated IV, or a changed master passphrase.
	ErrCipher = errors.New("invalid or corrupt ciphertext")

	// ErrInvalidPlaintext is returned by Encrypt for text that is not valid
	// UTF-8 and so could not be decrypted back unchanged.
	ErrInvalidPlaintext = errors.New("plaintext is not valid UTF-8")

	// ErrKeyRingClosed is returned when the key ring was torn down with
	// [KeyRing.Close] and a field operation still tries to use it.
	ErrKeyRingClosed = errors.New("key ring is closed")
)
