// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// fieldEncoding is the byte representation of plaintext inside a token.
// Vault files written by earlier releases store UTF-16LE without a BOM.
var fieldEncoding = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// aesCBCFieldCipher is the private implementation of [FieldCipher].
type aesCBCFieldCipher struct {
	keys *KeyRing
}

// NewFieldCipher returns a [FieldCipher] that takes its key from keys on
// every call, so a passphrase change is picked up immediately.
func NewFieldCipher(keys *KeyRing) FieldCipher {
	return &aesCBCFieldCipher{keys: keys}
}

// Encrypt implements [FieldCipher].
func (c *aesCBCFieldCipher) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}
	// the encoder would replace invalid bytes with U+FFFD
	if !utf8.ValidString(plaintext) {
		return "", ErrInvalidPlaintext
	}

	key, err := c.keys.Key()
	if err != nil {
		return "", err
	}
	defer zero(key)

	// 1. Encode as UTF-16LE and pad to the block size
	encoded, err := fieldEncoding.NewEncoder().Bytes([]byte(plaintext))
	if err != nil {
		return "", fmt.Errorf("encode plaintext: %w", err)
	}
	padded := pkcs7Pad(encoded, aes.BlockSize)

	// 2. Build AES-CBC with a fresh IV
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	iv := make([]byte, aes.BlockSize)
	if _, err = io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	// 3. Encrypt: iv || ciphertext
	blob := make([]byte, aes.BlockSize+len(padded))
	copy(blob, iv)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(blob[aes.BlockSize:], padded)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [FieldCipher].
func (c *aesCBCFieldCipher) Decrypt(token string) (string, error) {
	if token == "" {
		return "", nil
	}

	// 1. Decode base64 blob
	blob, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrCipher, err)
	}

	// 2. Split iv and ciphertext
	if len(blob) < 2*aes.BlockSize {
		return "", fmt.Errorf("%w: token too short", ErrCipher)
	}
	iv, ciphertext := blob[:aes.BlockSize], blob[aes.BlockSize:]
	if len(ciphertext)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: ciphertext is not a multiple of the block size", ErrCipher)
	}

	key, err := c.keys.Key()
	if err != nil {
		return "", err
	}
	defer zero(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	// 3. Decrypt and strip padding
	plain := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ciphertext)

	unpadded, err := pkcs7Unpad(plain, aes.BlockSize)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCipher, err)
	}

	// 4. Decode UTF-16LE back to a Go string
	decoded, err := fieldEncoding.NewDecoder().Bytes(unpadded)
	if err != nil {
		return "", fmt.Errorf("%w: decode plaintext: %w", ErrCipher, err)
	}

	return string(decoded), nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("invalid padded length %d", len(data))
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, fmt.Errorf("invalid padding size %d", n)
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("invalid padding byte")
		}
	}

	return data[:len(data)-n], nil
}
