// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

type accountService struct {
	accountRepository store.AccountRepository
	cipher            crypto.FieldCipher

	logger *logger.Logger
}

// NewAccountService builds the core AccountService. It does not validate
// input; wrap it with NewAccountValidationService for that.
func NewAccountService(accountRepository store.AccountRepository, cipher crypto.FieldCipher, logger *logger.Logger) AccountService {
	return &accountService{
		accountRepository: accountRepository,
		cipher:            cipher,
		logger:            logger,
	}
}

func (s *accountService) Create(ctx context.Context, in models.AccountInput) (int64, error) {
	account, err := s.buildAccount(in)
	if err != nil {
		return 0, err
	}

	id, err := s.accountRepository.Add(ctx, account)
	if err != nil {
		return 0, mapStoreError(err)
	}

	logger.FromContext(ctx).Info().Int64("id", id).Msg("account created")
	return id, nil
}

func (s *accountService) Update(ctx context.Context, id int64, in models.AccountInput) (bool, error) {
	account, err := s.buildAccount(in)
	if err != nil {
		return false, err
	}
	account.ID = id

	found, err := s.accountRepository.Update(ctx, account)
	if err != nil {
		return false, mapStoreError(err)
	}
	return found, nil
}

func (s *accountService) Delete(ctx context.Context, id int64) (bool, error) {
	found, err := s.accountRepository.Delete(ctx, id)
	if err != nil {
		return false, mapStoreError(err)
	}

	if found {
		logger.FromContext(ctx).Info().Int64("id", id).Msg("account deleted")
	}
	return found, nil
}

func (s *accountService) ToggleFavorite(ctx context.Context, id int64) (bool, error) {
	account, err := s.accountRepository.GetByID(ctx, id)
	if errors.Is(err, store.ErrAccountNotFound) {
		return false, nil
	}
	if err != nil {
		return false, mapStoreError(err)
	}

	account.IsFavorite = !account.IsFavorite

	found, err := s.accountRepository.Update(ctx, account)
	if err != nil {
		return false, mapStoreError(err)
	}
	return found, nil
}

func (s *accountService) Get(ctx context.Context, id int64) (models.Account, bool) {
	account, err := s.accountRepository.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrAccountNotFound) {
			logger.FromContext(ctx).Warn().Err(err).
				Str("func", "accountService.Get").
				Int64("id", id).
				Msg("reading account failed, treating as missing")
		}
		return models.Account{}, false
	}
	return account, true
}

func (s *accountService) List(ctx context.Context, filter models.AccountFilter) []models.Account {
	var (
		accounts []models.Account
		err      error
	)

	switch filter.Kind {
	case models.FilterFavorites:
		accounts, err = s.accountRepository.ListFavorites(ctx)
	case models.FilterCategory:
		accounts, err = s.accountRepository.ListByCategory(ctx, filter.Category)
	default:
		accounts, err = s.accountRepository.ListAll(ctx)
	}

	return s.lenient(ctx, "accountService.List", accounts, err)
}

func (s *accountService) Search(ctx context.Context, term string) []models.Account {
	accounts, err := s.accountRepository.Search(ctx, strings.TrimSpace(term))
	return s.lenient(ctx, "accountService.Search", accounts, err)
}

func (s *accountService) CategoryNames(ctx context.Context) []string {
	names, err := s.accountRepository.CategoryNames(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "accountService.CategoryNames").
			Msg("reading category names failed, returning none")
		return []string{}
	}
	return names
}

func (s *accountService) RevealPassword(account models.Account) (string, error) {
	password, err := s.cipher.Decrypt(account.PasswordCipher)
	if err != nil {
		if errors.Is(err, crypto.ErrCipher) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", ErrCipher, err)
	}
	return password, nil
}

func (s *accountService) DisplayPassword(account models.Account) string {
	password, err := s.RevealPassword(account)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("func", "accountService.DisplayPassword").
			Int64("id", account.ID).
			Msg("password cannot be decrypted, showing it empty")
		return ""
	}
	return password
}

// buildAccount trims the text fields of in and encrypts its password. The
// password itself is kept as typed.
func (s *accountService) buildAccount(in models.AccountInput) (models.Account, error) {
	token, err := s.cipher.Encrypt(in.Password)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: encrypting password: %w", ErrCipher, err)
	}

	return models.Account{
		Title:          strings.TrimSpace(in.Title),
		Username:       strings.TrimSpace(in.Username),
		PasswordCipher: token,
		Email:          strings.TrimSpace(in.Email),
		Website:        strings.TrimSpace(in.Website),
		Notes:          strings.TrimSpace(in.Notes),
		Category:       strings.TrimSpace(in.Category),
		IconPath:       strings.TrimSpace(in.IconPath),
		IsFavorite:     in.IsFavorite,
	}, nil
}

func (s *accountService) lenient(ctx context.Context, caller string, accounts []models.Account, err error) []models.Account {
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", caller).
			Msg("reading accounts failed, returning none")
		return []models.Account{}
	}
	if accounts == nil {
		return []models.Account{}
	}
	return accounts
}
