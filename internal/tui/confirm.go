package tui

type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmDeleteItem
	confirmUnSync
)

type confirmModel struct {
	message string
	action  confirmAction
}

func (m confirmModel) View() string {
	content := m.message + "\n\n"
	content += "y да    n нет"
	return overlayBoxStyle.Render(content)
}
