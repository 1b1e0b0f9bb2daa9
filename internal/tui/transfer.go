package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultExportPath = "homestock-export.json"
	defaultBackupPath = "homestock-backup.json"
)

func (m *mainLoopModel) startExport() {
	input := textinput.New()
	input.Placeholder = defaultExportPath
	input.Width = 54
	input.Focus()

	m.pathInput = input
	m.exportFull = false
	m.transferBusy = false
	m.errMsg = ""
	m.screen = screenExport
}

func (m mainLoopModel) updateExport(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.screen = screenList
			m.errMsg = ""
			return m, nil
		case "tab":
			m.exportFull = !m.exportFull
			return m, nil
		case "enter":
			if m.transferBusy {
				return m, nil
			}
			path := strings.TrimSpace(m.pathInput.Value())
			if path == "" {
				path = defaultExportPath
				if m.exportFull {
					path = defaultBackupPath
				}
			}
			m.errMsg = ""
			m.transferBusy = true
			return m, m.cmdExport(path, m.exportFull)
		}
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

func (m mainLoopModel) viewExport() string {
	mode := "список (без истории)"
	if m.exportFull {
		mode = "полная копия (история, категории, настройки)"
	}

	out := "Режим : " + mode + "  [tab: переключить]\n"
	out += "Файл  : [ " + m.pathInput.View() + " ]\n"
	if m.transferBusy {
		out += "\nЭкспорт...\n"
	}
	if m.errMsg != "" {
		out += "\nОшибка: " + m.errMsg + "\n"
	}

	return renderPage("ЭКСПОРТ", strings.TrimRight(out, "\n"), "tab: режим │ enter: экспортировать │ esc: назад")
}

func (m *mainLoopModel) startImport() {
	input := textinput.New()
	input.Placeholder = "/путь/к/файлу.json"
	input.Width = 54
	input.Focus()

	m.pathInput = input
	m.transferBusy = false
	m.errMsg = ""
	m.screen = screenImport
}

func (m mainLoopModel) updateImport(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.screen = screenList
			m.errMsg = ""
			return m, nil
		case "enter":
			if m.transferBusy {
				return m, nil
			}
			path := strings.TrimSpace(m.pathInput.Value())
			if path == "" {
				m.errMsg = "Укажите путь к файлу"
				return m, nil
			}
			m.errMsg = ""
			m.transferBusy = true
			return m, m.cmdImport(path)
		}
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

func (m mainLoopModel) viewImport() string {
	out := "Формат определяется автоматически:\n"
	out += "массив — список покупок, объект — полная копия.\n\n"
	out += "Файл : [ " + m.pathInput.View() + " ]\n"
	if m.transferBusy {
		out += "\nИмпорт...\n"
	}
	if m.errMsg != "" {
		out += "\nОшибка: " + m.errMsg + "\n"
	}

	return renderPage("ИМПОРТ", strings.TrimRight(out, "\n"), "enter: импортировать │ esc: назад")
}
