package tui

import tea "github.com/charmbracelet/bubbletea"

// confirmModel asks a yes/no question; onYes runs only on "y".
type confirmModel struct {
	message string
	warning string
	onYes   tea.Cmd
}

func (m confirmModel) View() string {
	content := "Удалить \"" + m.message + "\"?\n\n"
	if m.warning != "" {
		content += m.warning + "\n\n"
	}
	content += "y да    n нет"
	return overlayBoxStyle.Render(content)
}
