// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package passwords

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Character sets used by [Generate].
const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits    = "0123456789"
	Special   = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// DefaultLength is the length the account form asks for.
const DefaultLength = 16

// Alphabet returns the characters [Generate] draws from.
func Alphabet(includeSpecial bool) string {
	chars := Lowercase + Uppercase + Digits
	if includeSpecial {
		chars += Special
	}
	return chars
}

// Generate returns a password of length characters, each drawn
// independently and uniformly from [Alphabet] using crypto/rand.
// It fails with [ErrInvalidLength] when length < 1.
func Generate(length int, includeSpecial bool) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}

	chars := Alphabet(includeSpecial)
	n := big.NewInt(int64(len(chars)))

	password := make([]byte, length)
	for i := range password {
		idx, err := rand.Int(rand.Reader, n)
		if err != nil {
			return "", fmt.Errorf("read random index: %w", err)
		}
		password[i] = chars[idx.Int64()]
	}

	return string(password), nil
}
