// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
)

// User-facing texts for the error kinds the services return.
const (
	MsgEmptyTitle        = "Введите название аккаунта"
	MsgEmptyUsername     = "Введите логин"
	MsgEmptyPassword     = "Введите пароль"
	MsgEmptyCategoryName = "Введите название категории"
	MsgDuplicateCategory = "Категория с таким названием уже существует"
	MsgCipher            = "Не удалось расшифровать пароль"
	MsgInvalidPassword   = "Пароль содержит недопустимые символы"
	MsgCipherOnEdit      = "Сохранённый пароль не удалось расшифровать, введите новый"
	MsgStorage           = "Ошибка при сохранении"
	MsgIconImport        = "Не удалось скопировать иконку"
	MsgAccountGone       = "Запись не найдена"
)

// humanizeError turns a service error into a message for the status line.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, validators.ErrEmptyTitle):
		return MsgEmptyTitle
	case errors.Is(err, validators.ErrEmptyUsername):
		return MsgEmptyUsername
	case errors.Is(err, validators.ErrEmptyPassword):
		return MsgEmptyPassword
	case errors.Is(err, validators.ErrEmptyCategoryName):
		return MsgEmptyCategoryName
	case errors.Is(err, service.ErrDuplicateName):
		return MsgDuplicateCategory
	case errors.Is(err, crypto.ErrInvalidPlaintext):
		return MsgInvalidPassword
	case errors.Is(err, service.ErrCipher):
		return MsgCipher
	case errors.Is(err, service.ErrStorage):
		return MsgStorage
	case errors.Is(err, errIconImport):
		return MsgIconImport
	case errors.Is(err, errAccountGone):
		return MsgAccountGone
	default:
		return err.Error()
	}
}

var (
	// errAccountGone is reported when the edited account was deleted meanwhile.
	errAccountGone = errors.New("account not found")
	errIconImport  = errors.New("icon import failed")
)
