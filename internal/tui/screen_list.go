package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m vaultModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.searching {
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	if m.searching {
		return m.updateSearch(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(keyMsg, keys.down):
		if m.selected < len(m.accounts)-1 {
			m.selected++
		}
	case key.Matches(keyMsg, keys.enter):
		if account, ok := m.current(); ok {
			m.screen = screenDetail
			m.detail = account
			m.reveal = false
		}
	case key.Matches(keyMsg, keys.newItem):
		return m.openNewForm()
	case key.Matches(keyMsg, keys.edit):
		if account, ok := m.current(); ok {
			return m.openEditForm(account)
		}
	case key.Matches(keyMsg, keys.delete):
		if account, ok := m.current(); ok {
			m.confirm = &confirmModel{message: account.Title, onYes: m.cmdDeleteAccount(account)}
		}
	case key.Matches(keyMsg, keys.copy):
		if account, ok := m.current(); ok {
			return m, m.cmdCopyPassword(account)
		}
	case key.Matches(keyMsg, keys.copyUser):
		if account, ok := m.current(); ok {
			return m, m.cmdCopyUsername(account)
		}
	case key.Matches(keyMsg, keys.favorite):
		if account, ok := m.current(); ok {
			return m, m.cmdToggleFavorite(account.ID)
		}
	case key.Matches(keyMsg, keys.filter):
		m.filter = nextFilter(m.filter, m.categories)
		m.selected = 0
		return m, m.cmdLoadAccounts()
	case key.Matches(keyMsg, keys.search):
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(keyMsg, keys.categories):
		m.screen = screenCategories
		m.categoryList = newCategoryPage()
		return m, m.cmdLoadCategories()
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
	}

	return m, nil
}

// updateSearch feeds keys to the search box and re-runs the search on every
// change.
func (m vaultModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.selected = 0
		return m, m.cmdLoadAccounts()
	case "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == before {
		return m, cmd
	}
	m.selected = 0
	return m, tea.Batch(cmd, m.cmdLoadAccounts())
}

func (m vaultModel) viewList() string {
	var b strings.Builder

	if m.searching || m.search.Value() != "" {
		b.WriteString("Поиск: " + m.search.View() + "\n\n")
	} else {
		b.WriteString("Фильтр: " + filterLabel(m.filter) + "\n\n")
	}

	if len(m.accounts) == 0 {
		b.WriteString("Записей нет")
	}
	for i, account := range m.accounts {
		star := " "
		if account.IsFavorite {
			star = "★"
		}
		line := fmt.Sprintf("%s %-30s %-24s %s",
			star,
			fitText(account.Title, 30),
			fitText(account.Username, 24),
			fitText(account.Category, 16),
		)
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		if i < len(m.accounts)-1 {
			b.WriteString("\n")
		}
	}

	hotKeys := "↑/↓ выбор  enter открыть  n новая  e изменить  d удалить  c пароль  u логин  * избранное\n" +
		"  / поиск  f фильтр  g категории  v о программе  q выход"
	if m.searching {
		hotKeys = "enter готово  esc сбросить поиск"
	}

	return renderPage(fmt.Sprintf("ЗАПИСИ (%d)", len(m.accounts)), b.String(), hotKeys, m.status)
}

// nextFilter cycles All -> Favorites -> each category -> All.
func nextFilter(current models.AccountFilter, categories []string) models.AccountFilter {
	switch current.Kind {
	case models.FilterAll:
		return models.AccountFilter{Kind: models.FilterFavorites}
	case models.FilterFavorites:
		if len(categories) == 0 {
			return models.AccountFilter{Kind: models.FilterAll}
		}
		return models.AccountFilter{Kind: models.FilterCategory, Category: categories[0]}
	default:
		for i, name := range categories {
			if name == current.Category && i+1 < len(categories) {
				return models.AccountFilter{Kind: models.FilterCategory, Category: categories[i+1]}
			}
		}
		return models.AccountFilter{Kind: models.FilterAll}
	}
}

// keepFilter falls back to All when the filtered category disappeared.
func keepFilter(current models.AccountFilter, categories []string) models.AccountFilter {
	if current.Kind != models.FilterCategory {
		return current
	}
	for _, name := range categories {
		if name == current.Category {
			return current
		}
	}
	return models.AccountFilter{Kind: models.FilterAll}
}

func filterLabel(f models.AccountFilter) string {
	switch f.Kind {
	case models.FilterFavorites:
		return "Избранное"
	case models.FilterCategory:
		return "Категория «" + f.Category + "»"
	default:
		return "Все"
	}
}
