package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/passwords"
)

func TestPasswordService_Generate(t *testing.T) {
	svc := NewPasswordService()

	p, err := svc.Generate(passwords.DefaultLength, true)
	require.NoError(t, err)
	assert.Len(t, p, passwords.DefaultLength)

	_, err = svc.Generate(0, false)
	assert.ErrorIs(t, err, passwords.ErrInvalidLength)
}

func TestPasswordService_Strength(t *testing.T) {
	svc := NewPasswordService()

	tests := []struct {
		password string
		score    int
		rating   passwords.Strength
	}{
		{password: "", score: 0, rating: passwords.VeryWeak},
		{password: "abcdefgh", score: 35, rating: passwords.VeryWeak},
		{password: "Abcdefgh1!", score: 70, rating: passwords.Good},
		{password: "Abcdefghijk1", score: 80, rating: passwords.Strong},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			score, rating := svc.Strength(tt.password)
			assert.Equal(t, tt.score, score)
			assert.Equal(t, tt.rating, rating)
		})
	}
}
