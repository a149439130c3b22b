package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/passwords"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Focus order of the account form. Text inputs come first and share their
// index with accountForm.inputs.
const (
	fieldTitle = iota
	fieldUsername
	fieldPassword
	fieldEmail
	fieldWebsite
	fieldCategory
	fieldIcon
	fieldNotes
	fieldFavorite
	fieldCount
)

const textInputCount = fieldNotes

var fieldLabels = [textInputCount]string{
	"Название",
	"Логин",
	"Пароль",
	"Email",
	"Сайт",
	"Категория",
	"Иконка",
}

type accountForm struct {
	// editID is zero while creating.
	editID       int64
	previousIcon string

	inputs       []textinput.Model
	notes        textarea.Model
	favorite     bool
	showPassword bool
	focus        int

	err    string
	saving bool
}

func newAccountForm() accountForm {
	inputs := make([]textinput.Model, textInputCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[fieldPassword].EchoMode = textinput.EchoPassword
	inputs[fieldPassword].EchoCharacter = '•'
	inputs[fieldIcon].Placeholder = "/path/to/icon.png"
	inputs[fieldTitle].Focus()

	notes := textarea.New()
	notes.Placeholder = "Заметки (необязательно)"
	notes.SetWidth(54)
	notes.SetHeight(4)

	return accountForm{inputs: inputs, notes: notes}
}

// fill loads an existing account together with its decrypted password.
func (f *accountForm) fill(account models.Account, password string) {
	f.editID = account.ID
	f.previousIcon = account.IconPath
	f.inputs[fieldTitle].SetValue(account.Title)
	f.inputs[fieldUsername].SetValue(account.Username)
	f.inputs[fieldPassword].SetValue(password)
	f.inputs[fieldEmail].SetValue(account.Email)
	f.inputs[fieldWebsite].SetValue(account.Website)
	f.inputs[fieldCategory].SetValue(account.Category)
	f.inputs[fieldIcon].SetValue(account.IconPath)
	f.notes.SetValue(account.Notes)
	f.favorite = account.IsFavorite
}

func (f accountForm) toInput() models.AccountInput {
	return models.AccountInput{
		Title:      f.inputs[fieldTitle].Value(),
		Username:   f.inputs[fieldUsername].Value(),
		Password:   f.inputs[fieldPassword].Value(),
		Email:      f.inputs[fieldEmail].Value(),
		Website:    f.inputs[fieldWebsite].Value(),
		Notes:      f.notes.Value(),
		Category:   f.inputs[fieldCategory].Value(),
		IconPath:   strings.TrimSpace(f.inputs[fieldIcon].Value()),
		IsFavorite: f.favorite,
	}
}

func (f *accountForm) setFocus(i int) tea.Cmd {
	i = (i%fieldCount + fieldCount) % fieldCount

	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	f.notes.Blur()
	f.focus = i

	switch {
	case i < textInputCount:
		return f.inputs[i].Focus()
	case i == fieldNotes:
		return f.notes.Focus()
	}
	return nil
}

func (f *accountForm) togglePasswordVisibility() {
	f.showPassword = !f.showPassword
	if f.showPassword {
		f.inputs[fieldPassword].EchoMode = textinput.EchoNormal
	} else {
		f.inputs[fieldPassword].EchoMode = textinput.EchoPassword
	}
}

// nextCategory replaces the category input with the known name following
// the current one.
func (f *accountForm) nextCategory(names []string) {
	if len(names) == 0 {
		return
	}
	current := f.inputs[fieldCategory].Value()
	next := names[0]
	for i, name := range names {
		if name == current && i+1 < len(names) {
			next = names[i+1]
			break
		}
	}
	f.inputs[fieldCategory].SetValue(next)
	f.inputs[fieldCategory].CursorEnd()
}

func (m vaultModel) openNewForm() (tea.Model, tea.Cmd) {
	m.form = newAccountForm()
	if m.filter.Kind == models.FilterCategory {
		m.form.inputs[fieldCategory].SetValue(m.filter.Category)
	}
	m.screen = screenForm
	return m, textinput.Blink
}

// openEditForm prefills the form. A password that no longer decrypts is
// left empty and the user is asked to type a new one.
func (m vaultModel) openEditForm(account models.Account) (tea.Model, tea.Cmd) {
	m.form = newAccountForm()

	password, err := m.services.Accounts.RevealPassword(account)
	if err != nil {
		m.form.err = MsgCipherOnEdit
	}
	m.form.fill(account, password)
	m.screen = screenForm
	return m, textinput.Blink
}

func (m vaultModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case accountSavedMsg:
		m.form.saving = false
		if msg.err != nil {
			m.form.err = humanizeError(msg.err)
			return m, nil
		}
		m.screen = screenList
		var status tea.Cmd
		m, status = m.setStatus("Запись сохранена")
		return m, tea.Batch(status, m.cmdLoadAccounts())

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.screen = screenList
			return m, nil
		case key.Matches(msg, keys.tab):
			cmd := m.form.setFocus(m.form.focus + 1)
			return m, cmd
		case key.Matches(msg, keys.backtab):
			cmd := m.form.setFocus(m.form.focus - 1)
			return m, cmd
		case key.Matches(msg, keys.save):
			if m.form.saving {
				return m, nil
			}
			m.form.saving = true
			m.form.err = ""
			return m, m.cmdSaveAccount(m.form.editID, m.form.previousIcon, m.form.toInput())
		case key.Matches(msg, keys.generate):
			password, err := m.services.Passwords.Generate(passwords.DefaultLength, true)
			if err != nil {
				m.form.err = humanizeError(err)
				return m, nil
			}
			m.form.inputs[fieldPassword].SetValue(password)
			if !m.form.showPassword {
				m.form.togglePasswordVisibility()
			}
			return m, nil
		case key.Matches(msg, keys.showPass):
			m.form.togglePasswordVisibility()
			return m, nil
		case msg.String() == "ctrl+t":
			m.form.nextCategory(m.categories)
			return m, nil
		case m.form.focus == fieldFavorite && (msg.String() == " " || msg.String() == "enter"):
			m.form.favorite = !m.form.favorite
			return m, nil
		case msg.String() == "enter" && m.form.focus < textInputCount:
			cmd := m.form.setFocus(m.form.focus + 1)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	switch {
	case m.form.focus < textInputCount:
		m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	case m.form.focus == fieldNotes:
		m.form.notes, cmd = m.form.notes.Update(msg)
	}
	return m, cmd
}

func (m vaultModel) viewForm() string {
	title := "НОВАЯ ЗАПИСЬ"
	if m.form.editID != 0 {
		title = "РЕДАКТИРОВАНИЕ: " + fitText(m.form.inputs[fieldTitle].Value(), 40)
	}

	var b strings.Builder
	for i, input := range m.form.inputs {
		label := padRight(fieldLabels[i]+":", 11)
		if m.form.focus == i {
			label = selectedStyle.Render(label)
		}
		b.WriteString(label + "[" + input.View() + "]\n")
		if i == fieldPassword {
			b.WriteString(padRight("", 11) + m.strengthLine(input.Value()) + "\n")
		}
		if i == fieldCategory && len(m.categories) > 0 {
			b.WriteString(padRight("", 11) + helpStyle.Render(fitText(strings.Join(m.categories, ", "), 54)) + "\n")
		}
	}

	notesLabel := "Заметки:"
	if m.form.focus == fieldNotes {
		notesLabel = selectedStyle.Render(notesLabel)
	}
	b.WriteString(notesLabel + "\n" + m.form.notes.View() + "\n")

	favorite := "[ ] Избранное"
	if m.form.favorite {
		favorite = "[x] Избранное"
	}
	if m.form.focus == fieldFavorite {
		favorite = selectedStyle.Render(favorite)
	}
	b.WriteString(favorite)

	if m.form.err != "" {
		b.WriteString("\n\n" + errorStyle.Render(m.form.err))
	}
	if m.form.saving {
		b.WriteString("\n\nСохранение...")
	}

	return renderPage(
		title,
		b.String(),
		"tab/shift+tab поле  ctrl+g сгенерировать пароль  ctrl+r показать пароль  ctrl+t категория\n"+
			"  space избранное  ctrl+s сохранить  esc отмена",
		m.status,
	)
}

// strengthLine renders the live strength estimate of the typed password.
func (m vaultModel) strengthLine(password string) string {
	if password == "" {
		return helpStyle.Render("Надёжность: -")
	}
	score, rating := m.services.Passwords.Strength(password)
	label := strengthLabel(rating)
	style := strengthStyles[0]
	if int(rating) >= 0 && int(rating) < len(strengthStyles) {
		style = strengthStyles[rating]
	}
	return style.Render(fmt.Sprintf("Надёжность: %s (%d/100)", label, score))
}

func strengthLabel(s passwords.Strength) string {
	switch s {
	case passwords.Strong:
		return "надёжный"
	case passwords.Good:
		return "хороший"
	case passwords.Weak:
		return "слабый"
	default:
		return "очень слабый"
	}
}
