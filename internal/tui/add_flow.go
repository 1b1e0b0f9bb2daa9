package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkarneev/homestock/models"
)

func (m *mainLoopModel) startAdd() {
	name := textinput.New()
	name.Placeholder = "Название"
	name.Width = 40
	name.Focus()

	stock := textinput.New()
	stock.Placeholder = "Количество (0)"
	stock.Width = 40

	category := textinput.New()
	category.Placeholder = "Категория (можно пусто)"
	category.Width = 40

	m.addInputs = []textinput.Model{name, stock, category}
	m.addFocus = 0
	m.addSaving = false
	m.errMsg = ""
	m.screen = screenAdd
}

func (m mainLoopModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.screen = screenList
			m.errMsg = ""
			return m, nil
		case "tab":
			m.addInputs[m.addFocus].Blur()
			m.addFocus = (m.addFocus + 1) % len(m.addInputs)
			m.addInputs[m.addFocus].Focus()
			return m, nil
		case "shift+tab":
			m.addInputs[m.addFocus].Blur()
			m.addFocus = (m.addFocus - 1 + len(m.addInputs)) % len(m.addInputs)
			m.addInputs[m.addFocus].Focus()
			return m, nil
		case "enter":
			if m.addSaving {
				return m, nil
			}

			name := strings.TrimSpace(m.addInputs[0].Value())
			if name == "" {
				m.errMsg = "Название обязательно"
				return m, nil
			}

			stock := 0
			if raw := strings.TrimSpace(m.addInputs[1].Value()); raw != "" {
				parsed, err := strconv.Atoi(raw)
				if err != nil || parsed < 0 {
					m.errMsg = "Количество должно быть целым числом не меньше нуля"
					return m, nil
				}
				stock = parsed
			}

			category := strings.TrimSpace(m.addInputs[2].Value())
			if category == "" {
				category = "Other"
			}

			m.errMsg = ""
			m.addSaving = true
			return m, m.cmdAddItem(name, stock, category)
		}
	}

	var cmd tea.Cmd
	m.addInputs[m.addFocus], cmd = m.addInputs[m.addFocus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) viewAdd() string {
	out := "Название   : [ " + m.addInputs[0].View() + " ]\n"
	out += "Количество : [ " + m.addInputs[1].View() + " ]\n"
	out += "Категория  : [ " + m.addInputs[2].View() + " ]\n"
	if m.errMsg != "" {
		out += "\nОшибка: " + m.errMsg + "\n"
	}
	if m.addSaving {
		out += "\nСохранение...\n"
	}

	return renderPage(
		"НОВАЯ ЗАПИСЬ",
		strings.TrimRight(out, "\n"),
		"tab: след. поле │ shift+tab: пред. поле │ enter: сохранить │ esc: отмена",
	)
}

func (m *mainLoopModel) startSetStock(item models.StockItem) {
	input := textinput.New()
	input.Placeholder = "новое количество"
	input.Width = 20
	input.SetValue(strconv.Itoa(item.Stock))
	input.Focus()

	m.stockInput = input
	m.stockItemID = item.ID
	m.stockItemName = item.Name
	m.errMsg = ""
	m.screen = screenSetStock
}

func (m mainLoopModel) updateSetStock(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.screen = screenList
			m.errMsg = ""
			return m, nil
		case "enter":
			raw := strings.TrimSpace(m.stockInput.Value())
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				m.errMsg = "Количество должно быть целым числом не меньше нуля"
				return m, nil
			}
			m.errMsg = ""
			return m, m.cmdSetStock(m.stockItemID, parsed)
		}
	}

	var cmd tea.Cmd
	m.stockInput, cmd = m.stockInput.Update(msg)
	return m, cmd
}

func (m mainLoopModel) viewSetStock() string {
	out := "Товар      : " + m.stockItemName + "\n"
	out += "Количество : [ " + m.stockInput.View() + " ]\n"
	if m.errMsg != "" {
		out += "\nОшибка: " + m.errMsg + "\n"
	}

	return renderPage("ЗАДАТЬ ОСТАТОК", strings.TrimRight(out, "\n"), "enter: сохранить │ esc: отмена")
}
