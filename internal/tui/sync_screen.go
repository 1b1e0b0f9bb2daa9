// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karneev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m mainLoopModel) updateSync(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.screen = screenList
		m.showToken = false
		m.pairingToken = ""
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadItems()
	case "g":
		if m.syncStatus.Configured() {
			m.errMsg = "Синхронизация уже настроена. Сначала отключите её (u)."
			return m, nil
		}
		m.syncing = true
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdGenerateSync())
	case "j":
		if m.syncStatus.Configured() {
			m.errMsg = "Синхронизация уже настроена. Сначала отключите её (u)."
			return m, nil
		}
		m.startJoin()
		return m, nil
	case "s":
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdSyncNow())
	case "u":
		if !m.syncStatus.Configured() {
			return m, nil
		}
		m.showConfirm = true
		m.confirm = confirmModel{
			message: "Отключить синхронизацию на этом устройстве?",
			action:  confirmUnSync,
		}
		return m, nil
	case "t":
		m.showToken = !m.showToken
		return m, nil
	case "c":
		if m.syncStatus.Token == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.syncStatus.Token)
	case "p":
		return m, m.cmdGeneratePairingToken()
	case "k":
		if m.pairingToken == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.pairingToken)
	}

	return m, nil
}

func (m mainLoopModel) viewSync() string {
	var b strings.Builder

	b.WriteString("[ СОСТОЯНИЕ ]\n")
	if m.syncStatus.Configured() {
		b.WriteString("Синхронизация : настроена\n")
		b.WriteString("Токен         : " + maskToken(m.syncStatus.Token, m.showToken) + "  [t: показать]\n")
		b.WriteString("Файл          : " + m.syncStatus.Filename + "\n")
	} else {
		b.WriteString("Синхронизация : не настроена\n")
	}
	b.WriteString("Локальная     : " + timeOrDash(m.syncStatus.LastLocalSync) + "\n")
	b.WriteString("Удалённая     : " + timeOrDash(m.syncStatus.LastRemoteSync) + "\n\n")

	b.WriteString("[ УСТРОЙСТВО ]\n")
	b.WriteString("Имя           : " + m.device.Name + "\n")
	b.WriteString("ID            : " + m.device.ID + "\n\n")

	b.WriteString("[ ГРУППА ]\n")
	if m.group.ID == "" || len(m.group.Devices) == 0 {
		b.WriteString("(нет устройств)\n")
	} else {
		b.WriteString(fmt.Sprintf("%s, устройств: %d\n", m.group.Name, len(m.group.Devices)))
		for _, d := range m.group.Devices {
			b.WriteString("  • " + d.Name + "\n")
		}
	}

	if m.pairingToken != "" {
		b.WriteString("\n[ СОПРЯЖЕНИЕ ]\n")
		b.WriteString("Токен действителен 24 часа:\n")
		b.WriteString(m.pairingToken + "\n")
	}

	if m.syncing {
		b.WriteString("\n" + m.spinner.View() + " Выполняется...\n")
	}
	if m.status != "" {
		b.WriteString("\nСтатус: " + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nОшибка: " + m.errMsg + "\n")
	}

	return renderPage(
		"СИНХРОНИЗАЦИЯ",
		strings.TrimRight(b.String(), "\n"),
		"g: создать │ j: подключиться │ s: синхр. │ u: отключить │ c: коп. токен │ p: сопряжение │ k: коп. сопряжение │ esc: назад",
	)
}

func (m *mainLoopModel) startJoin() {
	input := textinput.New()
	input.Placeholder = "токен синхронизации"
	input.Width = 40
	input.Focus()

	m.joinInput = input
	m.errMsg = ""
	m.screen = screenJoin
}

func (m mainLoopModel) updateJoin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.screen = screenSync
			m.errMsg = ""
			return m, nil
		case "enter":
			if m.joining {
				return m, nil
			}
			token := strings.TrimSpace(m.joinInput.Value())
			if token == "" {
				m.errMsg = "Введите токен"
				return m, nil
			}
			m.errMsg = ""
			m.joining = true
			return m, tea.Batch(m.spinner.Tick, m.cmdJoinSync(token))
		}
	}

	var cmd tea.Cmd
	m.joinInput, cmd = m.joinInput.Update(msg)
	return m, cmd
}

func (m mainLoopModel) viewJoin() string {
	out := "Введите токен с другого устройства.\n"
	out += "Внимание: локальные данные будут заменены данными группы.\n\n"
	out += "Токен : [ " + m.joinInput.View() + " ]\n"
	if m.joining {
		out += "\n" + m.spinner.View() + " Подключение...\n"
	}
	if m.errMsg != "" {
		out += "\nОшибка: " + m.errMsg + "\n"
	}

	return renderPage("ПОДКЛЮЧЕНИЕ К ГРУППЕ", strings.TrimRight(out, "\n"), "enter: подключиться │ esc: назад")
}
