// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// Key derivation parameters. The salt is a compile-time constant shared by
// every installation: existing vaults can only be read back with exactly
// these values.
const (
	kdfSalt       = "PasswordManagerSalt2024"
	kdfIterations = 10000

	// KeySize is the length of the derived key in bytes (AES-256).
	KeySize = 32
)

// DefaultMasterPassphrase is used until the application supplies its own via
// [KeyRing.SetPassphrase].
const DefaultMasterPassphrase = "YourSecureMasterPassword123!"

// DeriveKey turns passphrase into a 256-bit key with PBKDF2-HMAC-SHA256.
// The passphrase is taken as UTF-8 bytes. The result is deterministic: the
// same passphrase always produces the same key.
func DeriveKey(passphrase string) []byte {
	return pbkdf2.Key([]byte(passphrase), []byte(kdfSalt), kdfIterations, KeySize, sha256.New)
}
