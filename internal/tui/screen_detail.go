package tui

import (
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m vaultModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	account := m.detail

	switch {
	case key.Matches(keyMsg, keys.esc), keyMsg.String() == "q":
		m.screen = screenList
		m.reveal = false
	case key.Matches(keyMsg, keys.reveal):
		m.reveal = !m.reveal
	case key.Matches(keyMsg, keys.copy):
		return m, m.cmdCopyPassword(account)
	case key.Matches(keyMsg, keys.copyUser):
		return m, m.cmdCopyUsername(account)
	case key.Matches(keyMsg, keys.favorite):
		return m, m.cmdToggleFavorite(account.ID)
	case key.Matches(keyMsg, keys.edit):
		return m.openEditForm(account)
	case key.Matches(keyMsg, keys.delete):
		m.confirm = &confirmModel{message: account.Title, onYes: m.cmdDeleteAccount(account)}
	}
	return m, nil
}

func (m vaultModel) viewDetail() string {
	account := m.detail

	password := maskedPassword
	if m.reveal {
		password = valueOrDash(m.services.Accounts.DisplayPassword(account))
	}

	rows := [][2]string{
		{"Название", account.Title},
		{"Логин", account.Username},
		{"Пароль", password},
		{"Email", account.Email},
		{"Сайт", account.Website},
		{"Категория", account.Category},
		{"Иконка", m.iconLabel(account)},
		{"Избранное", yesNo(account.IsFavorite)},
		{"Создано", account.CreatedAt.Local().Format("02.01.2006 15:04")},
		{"Изменено", account.ModifiedAt.Local().Format("02.01.2006 15:04")},
	}

	var b strings.Builder
	b.WriteString("Поле       │ Значение\n")
	b.WriteString("───────────┼──────────────────────────────────────────\n")
	for _, row := range rows {
		b.WriteString(padRight(row[0], 11))
		b.WriteString("│ ")
		b.WriteString(valueOrDash(row[1]))
		b.WriteString("\n")
	}
	b.WriteString("\nЗаметки:\n")
	b.WriteString(valueOrDash(account.Notes))

	return renderPage(
		"ЗАПИСЬ: "+fitText(account.Title, 40),
		b.String(),
		"space показать пароль  c копировать пароль  u копировать логин  * избранное  e изменить  d удалить  esc назад",
		m.status,
	)
}

// iconLabel shows the icon path, flagging files that went missing on disk.
func (m vaultModel) iconLabel(account models.Account) string {
	if account.IconPath == "" {
		return ""
	}
	if !m.services.Icons.Exists(account.IconPath) {
		return account.IconPath + " (файл не найден)"
	}
	return account.IconPath
}

func yesNo(v bool) string {
	if v {
		return "да"
	}
	return "нет"
}

func padRight(v string, width int) string {
	n := len([]rune(v))
	if n >= width {
		return v
	}
	return v + strings.Repeat(" ", width-n)
}
