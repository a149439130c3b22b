// Package utils holds small helpers shared by the storage and UI layers.
package utils

import "github.com/google/uuid"

// UUIDGenerator produces unique, time-ordered identifiers used as file names
// for imported icons.
type UUIDGenerator struct{}

// NewUUIDGenerator returns a ready to use [UUIDGenerator].
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random UUIDv4 if the
// clock-based generator fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// FileName returns a fresh unique file name that keeps ext (".png",
// ".ico", ...). ext may be empty.
func (g *UUIDGenerator) FileName(ext string) string {
	return g.Generate() + ext
}
