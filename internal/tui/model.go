package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenForm
	screenCategories
)

const statusTTL = 2 * time.Second

type vaultModel struct {
	ctx       context.Context
	services  *service.Services
	buildInfo models.AppBuildInfo

	screen screen
	width  int
	height int

	accounts   []models.Account
	selected   int
	filter     models.AccountFilter
	categories []string
	search     textinput.Model
	searching  bool

	// detail is the account shown on the detail screen.
	detail models.Account
	reveal bool

	form accountForm

	categoryList categoryPage

	confirm       *confirmModel
	errOverlay    *errorOverlayModel
	showBuildInfo bool

	status string
	// statusSeq drops clearStatusMsg ticks that belong to an older status.
	statusSeq int
}

func newVaultModel(ctx context.Context, services *service.Services, buildInfo models.AppBuildInfo) vaultModel {
	search := textinput.New()
	search.Placeholder = "Поиск"
	search.Width = 40

	return vaultModel{
		ctx:          ctx,
		services:     services,
		buildInfo:    buildInfo,
		search:       search,
		categoryList: newCategoryPage(),
	}
}

func (m vaultModel) Init() tea.Cmd {
	return m.cmdLoadAccounts()
}

func (m vaultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.errOverlay != nil {
			if msg.String() == "enter" || msg.String() == "esc" {
				m.errOverlay = nil
			}
			return m, nil
		}
		if m.confirm != nil {
			return m.updateConfirm(msg)
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc, keys.buildInfo) {
				m.showBuildInfo = false
			}
			return m, nil
		}

	case accountsLoadedMsg:
		m.accounts = msg.accounts
		m.categories = msg.categoryNames
		m.clampSelection()
		if next := keepFilter(m.filter, m.categories); next != m.filter {
			m.filter = next
			return m, m.cmdLoadAccounts()
		}
		return m, nil

	case clearStatusMsg:
		if int(msg) == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			return m.showError(msg.err)
		}
		return m.setStatus("Скопировано: " + msg.what)

	case favoriteToggledMsg:
		if msg.err != nil {
			return m.showError(msg.err)
		}
		if m.detail.ID == msg.id {
			m.detail.IsFavorite = !m.detail.IsFavorite
		}
		return m, m.cmdLoadAccounts()

	case accountDeletedMsg:
		if msg.err != nil {
			return m.showError(msg.err)
		}
		m.screen = screenList
		m.reveal = false
		var status tea.Cmd
		m, status = m.setStatus("Запись удалена")
		return m, tea.Batch(status, m.cmdLoadAccounts())
	}

	switch m.screen {
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenCategories:
		return m.updateCategories(msg)
	default:
		return m.updateList(msg)
	}
}

func (m vaultModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		cmd := m.confirm.onYes
		m.confirm = nil
		return m, cmd
	case key.Matches(msg, keys.no):
		m.confirm = nil
	}
	return m, nil
}

func (m vaultModel) View() string {
	if m.errOverlay != nil {
		return appStyle.Render(m.errOverlay.View())
	}
	if m.confirm != nil {
		return appStyle.Render(m.confirm.View())
	}
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	switch m.screen {
	case screenDetail:
		return appStyle.Render(m.viewDetail())
	case screenForm:
		return appStyle.Render(m.viewForm())
	case screenCategories:
		return appStyle.Render(m.viewCategories())
	default:
		return appStyle.Render(m.viewList())
	}
}

func (m vaultModel) setStatus(status string) (vaultModel, tea.Cmd) {
	m.status = status
	m.statusSeq++
	seq := m.statusSeq
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg(seq) })
}

func (m vaultModel) showError(err error) (tea.Model, tea.Cmd) {
	m.errOverlay = &errorOverlayModel{message: humanizeError(err)}
	return m, nil
}

func (m *vaultModel) clampSelection() {
	if m.selected >= len(m.accounts) {
		m.selected = len(m.accounts) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m vaultModel) current() (models.Account, bool) {
	if len(m.accounts) == 0 || m.selected >= len(m.accounts) {
		return models.Account{}, false
	}
	return m.accounts[m.selected], true
}
