package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m mainLoopModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.screen = screenList
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
	case "ctrl+d":
		item, ok := m.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm = confirmModel{message: "Удалить \"" + item.Name + "\"?", action: confirmDeleteItem}
		m.pendingDelete = item.ID
	}

	return m, nil
}

func (m mainLoopModel) viewDetail() string {
	item, ok := m.current()
	if !ok {
		return renderPage("ПРОСМОТР ЗАПИСИ", "Запись не найдена", "esc: назад")
	}

	var b strings.Builder
	b.WriteString("[ ОСНОВНОЕ ]\n")
	b.WriteString("Название    : " + item.Name + "\n")
	b.WriteString("Категория   : " + item.Category + "\n")
	b.WriteString(fmt.Sprintf("Остаток     : %d\n", item.Stock))
	b.WriteString("Посл. заказ : " + dateOrDash(item.LastOrdered) + "\n\n")

	b.WriteString("[ ИСТОРИЯ ]\n")
	if len(item.History) == 0 {
		b.WriteString("(пусто)\n")
	} else {
		b.WriteString("Дата             │ Изм. │ Было │ Стало │ Операция\n")
		b.WriteString("─────────────────┼──────┼──────┼───────┼───────────\n")
		// Newest entries first, history is stored oldest-first.
		for i := len(item.History) - 1; i >= 0; i-- {
			h := item.History[i]
			b.WriteString(fmt.Sprintf(
				"%s │ %4s │ %4d │ %5d │ %s\n",
				h.Timestamp.Format("02.01.2006 15:04"),
				formatChange(h.Change),
				h.PreviousStock,
				h.NewStock,
				actionLabel(h.Action),
			))
		}
	}

	if m.status != "" {
		b.WriteString("\nСтатус: " + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nОшибка: " + m.errMsg + "\n")
	}

	return renderPage(
		"ЗАПИСЬ: "+item.Name,
		strings.TrimRight(b.String(), "\n"),
		"+/-: остаток │ e: задать остаток │ ctrl+d: удалить │ esc: назад",
	)
}
