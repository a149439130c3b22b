package tui

import (
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type categoryPage struct {
	categories []models.Category
	selected   int

	// editing is true while the name/icon inputs are shown. The name of an
	// existing category cannot be changed; only its icon can.
	editing bool
	edited  models.Category
	name    textinput.Model
	icon    textinput.Model
	onIcon  bool
	err     string
	saving  bool
}

func newCategoryPage() categoryPage {
	name := textinput.New()
	name.Placeholder = "Название категории"
	name.Width = 40

	icon := textinput.New()
	icon.Placeholder = "/path/to/icon.png (необязательно)"
	icon.Width = 40

	return categoryPage{name: name, icon: icon}
}

func (p categoryPage) current() (models.Category, bool) {
	if p.selected < 0 || p.selected >= len(p.categories) {
		return models.Category{}, false
	}
	return p.categories[p.selected], true
}

func (p *categoryPage) startEditing(category models.Category) tea.Cmd {
	p.editing = true
	p.edited = category
	p.err = ""
	p.name.SetValue(category.Name)
	p.icon.SetValue(category.IconPath)
	p.icon.CursorEnd()

	if category.ID != 0 {
		return p.focusIcon(true)
	}
	return p.focusIcon(false)
}

func (p *categoryPage) focusIcon(onIcon bool) tea.Cmd {
	p.onIcon = onIcon
	if onIcon {
		p.name.Blur()
		return p.icon.Focus()
	}
	p.icon.Blur()
	return p.name.Focus()
}

func (p *categoryPage) stopEditing() {
	p.editing = false
	p.saving = false
	p.err = ""
	p.name.Blur()
	p.icon.Blur()
}

func (m vaultModel) updateCategories(msg tea.Msg) (tea.Model, tea.Cmd) {
	page := &m.categoryList

	switch msg := msg.(type) {
	case categoriesLoadedMsg:
		page.categories = msg.categories
		if page.selected >= len(page.categories) {
			page.selected = max(len(page.categories)-1, 0)
		}
		return m, nil

	case categorySavedMsg:
		page.saving = false
		if msg.err != nil {
			page.err = humanizeError(msg.err)
			return m, nil
		}
		page.stopEditing()
		var status tea.Cmd
		m, status = m.setStatus("Категория сохранена")
		return m, tea.Batch(status, m.cmdLoadCategories())

	case categoryDeletedMsg:
		if msg.err != nil {
			return m.showError(msg.err)
		}
		var status tea.Cmd
		m, status = m.setStatus("Категория удалена")
		return m, tea.Batch(status, m.cmdLoadCategories())

	case tea.KeyMsg:
		if page.editing {
			return m.updateCategoryInputs(msg)
		}

		switch {
		case key.Matches(msg, keys.esc), msg.String() == "q":
			m.screen = screenList
			return m, m.cmdLoadAccounts()
		case key.Matches(msg, keys.up):
			if page.selected > 0 {
				page.selected--
			}
		case key.Matches(msg, keys.down):
			if page.selected < len(page.categories)-1 {
				page.selected++
			}
		case key.Matches(msg, keys.newItem):
			cmd := page.startEditing(models.Category{})
			return m, cmd
		case key.Matches(msg, keys.edit), key.Matches(msg, keys.enter):
			if category, ok := page.current(); ok {
				cmd := page.startEditing(category)
				return m, cmd
			}
		case key.Matches(msg, keys.delete):
			if category, ok := page.current(); ok {
				m.confirm = &confirmModel{
					message: category.Name,
					warning: "Записи этой категории останутся без категории.",
					onYes:   m.cmdDeleteCategory(category),
				}
			}
		}
		return m, nil
	}

	if page.editing {
		cmd := page.updateFocused(msg)
		return m, cmd
	}
	return m, nil
}

func (m vaultModel) updateCategoryInputs(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	page := &m.categoryList

	switch msg.String() {
	case "esc":
		page.stopEditing()
		return m, nil
	case "tab", "shift+tab":
		if page.edited.ID == 0 {
			cmd := page.focusIcon(!page.onIcon)
			return m, cmd
		}
		return m, nil
	case "enter":
		if page.saving {
			return m, nil
		}
		page.saving = true
		page.err = ""

		category := page.edited
		category.Name = page.name.Value()
		category.IconPath = strings.TrimSpace(page.icon.Value())
		return m, m.cmdSaveCategory(category, page.edited.IconPath)
	}

	cmd := page.updateFocused(msg)
	return m, cmd
}

func (p *categoryPage) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if p.onIcon {
		p.icon, cmd = p.icon.Update(msg)
	} else {
		p.name, cmd = p.name.Update(msg)
	}
	return cmd
}

func (m vaultModel) viewCategories() string {
	page := m.categoryList

	var b strings.Builder
	if len(page.categories) == 0 {
		b.WriteString("Категорий нет")
	}
	for i, category := range page.categories {
		line := fitText(category.Name, 40)
		if category.IconPath != "" {
			line += helpStyle.Render("  (иконка)")
		}
		if i == page.selected {
			b.WriteString(selectedStyle.Render("> ") + line)
		} else {
			b.WriteString("  " + line)
		}
		if i < len(page.categories)-1 {
			b.WriteString("\n")
		}
	}

	hotKeys := "↑/↓ выбор  n новая  e иконка  d удалить  esc назад"
	if page.editing {
		b.WriteString("\n\n")
		if page.edited.ID == 0 {
			b.WriteString("Название: [" + page.name.View() + "]\n")
			hotKeys = "tab поле  enter сохранить  esc отмена"
		} else {
			b.WriteString("Категория: " + page.edited.Name + "\n")
			hotKeys = "enter сохранить  esc отмена"
		}
		b.WriteString("Иконка:   [" + page.icon.View() + "]")
	}
	if page.err != "" {
		b.WriteString("\n\n" + errorStyle.Render(page.err))
	}

	return renderPage("КАТЕГОРИИ", b.String(), hotKeys, m.status)
}
