package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// lowStockThreshold marks items that are about to run out in the list view.
const lowStockThreshold = 1

func (m mainLoopModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.filtering {
		switch keyMsg.String() {
		case "esc":
			m.filtering = false
			m.filter.Blur()
			m.filter.SetValue("")
			m.query = ""
			m.loading = true
			return m, m.cmdLoadItems()
		case "enter":
			m.filtering = false
			m.filter.Blur()
			m.query = strings.TrimSpace(m.filter.Value())
			m.loading = true
			return m, m.cmdLoadItems()
		}

		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "q":
		m.quitByUser = true
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "/":
		m.filtering = true
		m.filter.SetValue(m.query)
		m.filter.Focus()
		return m, nil
	case "a":
		m.startAdd()
		return m, nil
	case "+":
		item, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdSetStock(item.ID, item.Stock+1)
	case "-":
		item, ok := m.current()
		if !ok || item.Stock == 0 {
			return m, nil
		}
		return m, m.cmdSetStock(item.ID, item.Stock-1)
	case "e":
		item, ok := m.current()
		if !ok {
			return m, nil
		}
		m.startSetStock(item)
		return m, nil
	case "enter":
		if _, ok := m.current(); !ok {
			return m, nil
		}
		m.screen = screenDetail
		return m, nil
	case "ctrl+d":
		item, ok := m.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm = confirmModel{message: "Удалить \"" + item.Name + "\"?", action: confirmDeleteItem}
		m.pendingDelete = item.ID
		return m, nil
	case "s":
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdSyncNow())
	case "g":
		m.screen = screenSync
		m.showToken = false
		m.pairingToken = ""
		return m, m.cmdLoadSyncStatus()
	case "x":
		m.startExport()
		return m, nil
	case "i":
		m.startImport()
		return m, nil
	case "v":
		m.showBuildInfo = true
		return m, nil
	}

	return m, nil
}

func (m mainLoopModel) viewList() string {
	out := ""

	if m.filtering {
		out += "Поиск: [ " + m.filter.View() + " ]\n\n"
	} else if m.query != "" {
		out += "Фильтр: " + m.query + "  (/: изменить)\n\n"
	}

	if m.loading {
		out += "Загрузка списка...\n"
		return renderPage("ДОМАШНИЕ ЗАПАСЫ", strings.TrimRight(out, "\n"), listHotKeys)
	}

	if m.errMsg != "" {
		out += "Ошибка: " + m.errMsg + "\n"
	}
	if m.status != "" {
		out += "Статус: " + m.status + "\n"
	}
	if m.syncing {
		out += m.spinner.View() + " Синхронизация...\n"
	}
	if out != "" {
		out += "\n"
	}

	if len(m.items) == 0 {
		out += "Записей нет. Нажмите a, чтобы добавить первую.\n"
	} else {
		out += "№   │ Наименование             │ Категория       │ Ост. │ Посл. заказ\n"
		out += "────┼──────────────────────────┼─────────────────┼──────┼────────────\n"
		for i, item := range m.items {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}

			line := fmt.Sprintf(
				"%s %-2d│ %-24s │ %-15s │ %4d │ %s",
				cursor,
				i+1,
				fitText(item.Name, 24),
				fitText(item.Category, 15),
				item.Stock,
				dateOrDash(item.LastOrdered),
			)
			if item.Stock <= lowStockThreshold {
				line = lowStockStyle.Render(line)
			}
			out += line + "\n"
		}
	}

	return renderPage("ДОМАШНИЕ ЗАПАСЫ", strings.TrimRight(out, "\n"), listHotKeys)
}

const listHotKeys = "a: добавить │ +/-: остаток │ e: задать │ enter: открыть │ ctrl+d: уд. │ /: поиск │ s: синхр. │ g: настройки синхр. │ x: экспорт │ i: импорт │ q: выход"
