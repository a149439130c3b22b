package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/passwords"
)

type passwordService struct{}

func NewPasswordService() PasswordService {
	return &passwordService{}
}

func (s *passwordService) Generate(length int, includeSpecial bool) (string, error) {
	return passwords.Generate(length, includeSpecial)
}

// Strength returns the heuristic score of password and its rating band.
func (s *passwordService) Strength(password string) (int, passwords.Strength) {
	score := passwords.EstimateStrength(password)
	return score, passwords.Rate(score)
}
