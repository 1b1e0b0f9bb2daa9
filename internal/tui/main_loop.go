// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karneev

package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkarneev/homestock/internal/service"
	"github.com/mkarneev/homestock/models"
)

type screenID int

const (
	screenList screenID = iota
	screenDetail
	screenAdd
	screenSetStock
	screenSync
	screenJoin
	screenExport
	screenImport
)

type mainLoopModel struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.BuildInfo

	screen screenID

	items   []models.StockItem
	idx     int
	loading bool
	status  string
	errMsg  string

	filter    textinput.Model
	filtering bool
	query     string

	syncing bool
	spinner spinner.Model

	addInputs []textinput.Model
	addFocus  int
	addSaving bool

	stockInput    textinput.Model
	stockItemID   string
	stockItemName string

	syncStatus   models.SyncStatus
	device       models.Device
	group        models.SyncGroup
	showToken    bool
	pairingToken string

	joinInput textinput.Model
	joining   bool

	exportFull   bool
	pathInput    textinput.Model
	transferBusy bool

	showConfirm   bool
	confirm       confirmModel
	pendingDelete string

	showBuildInfo bool

	quitByUser bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, buildInfo models.BuildInfo) mainLoopModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	filter := textinput.New()
	filter.Placeholder = "поиск по названию или категории"
	filter.Width = 40

	return mainLoopModel{
		ctx:       ctx,
		services:  services,
		buildInfo: buildInfo,
		spinner:   s,
		filter:    filter,
		loading:   true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadItems()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.items
		if m.idx >= len(m.items) {
			m.idx = len(m.items) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case itemSavedMsg:
		m.addSaving = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "Сохранено"
		// Stock adjustments from the detail screen keep it open.
		if m.screen == screenAdd || m.screen == screenSetStock {
			m.screen = screenList
		}
		m.loading = true
		return m, tea.Batch(m.cmdLoadItems(), cmdClearStatus())

	case itemDeletedMsg:
		m.pendingDelete = ""
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка удаления: %v", msg.err)
			return m, nil
		}
		m.status = "Запись удалена"
		m.screen = screenList
		m.loading = true
		return m, tea.Batch(m.cmdLoadItems(), cmdClearStatus())

	case syncResultMsg:
		return m.applySyncResult(msg)

	case syncStatusMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.syncStatus = msg.status
		m.device = msg.device
		m.group = msg.group
		return m, nil

	case pairingTokenMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.pairingToken = msg.token
		return m, nil

	case transferDoneMsg:
		m.transferBusy = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка: %v", msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.verb
		m.screen = screenList
		m.loading = true
		return m, tea.Batch(m.cmdLoadItems(), cmdClearStatus())

	case copiedMsg:
		m.status = "Скопировано!"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if m.syncing || m.joining {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m, nil
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey && keyMsg.String() == "ctrl+c" {
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if isKey && keyMsg.String() == "esc" {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.showConfirm {
		return m.updateConfirm(msg)
	}

	switch m.screen {
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenAdd:
		return m.updateAdd(msg)
	case screenSetStock:
		return m.updateSetStock(msg)
	case screenSync:
		return m.updateSync(msg)
	case screenJoin:
		return m.updateJoin(msg)
	case screenExport:
		return m.updateExport(msg)
	case screenImport:
		return m.updateImport(msg)
	}

	return m, nil
}

func (m mainLoopModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	var page string
	switch m.screen {
	case screenList:
		page = m.viewList()
	case screenDetail:
		page = m.viewDetail()
	case screenAdd:
		page = m.viewAdd()
	case screenSetStock:
		page = m.viewSetStock()
	case screenSync:
		page = m.viewSync()
	case screenJoin:
		page = m.viewJoin()
	case screenExport:
		page = m.viewExport()
	case screenImport:
		page = m.viewImport()
	}

	if m.showConfirm {
		page += "\n\n" + m.confirm.View()
	}
	return page
}

func (m mainLoopModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y":
		action := m.confirm.action
		m.showConfirm = false
		m.confirm = confirmModel{}
		switch action {
		case confirmDeleteItem:
			if m.pendingDelete == "" {
				return m, nil
			}
			return m, m.cmdDeleteItem(m.pendingDelete)
		case confirmUnSync:
			return m, m.cmdUnSync()
		}
	case "n", "esc":
		m.showConfirm = false
		m.confirm = confirmModel{}
		m.pendingDelete = ""
	}
	return m, nil
}

func (m mainLoopModel) applySyncResult(msg syncResultMsg) (tea.Model, tea.Cmd) {
	m.syncing = false
	m.joining = false

	if !msg.result.Success {
		m.errMsg = msg.result.Error
		return m, nil
	}
	m.errMsg = ""

	switch msg.op {
	case opGenerate:
		m.status = "Синхронизация настроена. Токен: " + msg.result.Token
	case opJoin:
		m.status = "Подключено к группе синхронизации"
		m.screen = screenSync
		m.loading = true
		return m, tea.Batch(m.cmdLoadItems(), m.cmdLoadSyncStatus())
	case opSyncNow:
		m.status = "Синхронизация завершена"
	case opUnSync:
		m.status = "Синхронизация отключена"
	}

	return m, m.cmdLoadSyncStatus()
}

func (m mainLoopModel) current() (models.StockItem, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.StockItem{}, false
	}
	return m.items[m.idx], true
}

func (m mainLoopModel) cmdLoadItems() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Inventory
	query := m.query
	return func() tea.Msg {
		items, err := svc.Search(ctx, query)
		return listLoadedMsg{items: items, err: err}
	}
}

func (m mainLoopModel) cmdAddItem(name string, stock int, category string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Inventory
	return func() tea.Msg {
		_, err := svc.AddItem(ctx, name, stock, category)
		return itemSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdSetStock(id string, newStock int) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Inventory
	return func() tea.Msg {
		_, err := svc.UpdateStock(ctx, id, newStock, "")
		return itemSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDeleteItem(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Inventory
	return func() tea.Msg {
		err := svc.DeleteItem(ctx, id)
		return itemDeletedMsg{err: err}
	}
}

func (m mainLoopModel) cmdLoadSyncStatus() tea.Cmd {
	ctx := m.ctx
	syncSvc := m.services.Sync
	devSvc := m.services.Devices
	return func() tea.Msg {
		status, err := syncSvc.Status(ctx)
		if err != nil {
			return syncStatusMsg{err: err}
		}
		device, err := devSvc.GetDeviceInfo(ctx)
		if err != nil {
			return syncStatusMsg{err: err}
		}
		group, err := devSvc.GetSyncGroup(ctx)
		if err != nil {
			return syncStatusMsg{err: err}
		}
		return syncStatusMsg{status: status, device: device, group: group}
	}
}

func (m mainLoopModel) cmdGenerateSync() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Sync
	return func() tea.Msg {
		return syncResultMsg{op: opGenerate, result: svc.GenerateSync(ctx)}
	}
}

func (m mainLoopModel) cmdJoinSync(token string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Sync
	return func() tea.Msg {
		return syncResultMsg{op: opJoin, result: svc.JoinSync(ctx, token)}
	}
}

func (m mainLoopModel) cmdSyncNow() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Sync
	return func() tea.Msg {
		return syncResultMsg{op: opSyncNow, result: svc.SyncNow(ctx)}
	}
}

func (m mainLoopModel) cmdUnSync() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Sync
	return func() tea.Msg {
		return syncResultMsg{op: opUnSync, result: svc.UnSync(ctx)}
	}
}

func (m mainLoopModel) cmdGeneratePairingToken() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Devices
	return func() tea.Msg {
		token, err := svc.GeneratePairingToken(ctx)
		return pairingTokenMsg{token: token, err: err}
	}
}

func (m mainLoopModel) cmdExport(path string, full bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Inventory
	return func() tea.Msg {
		var (
			payload []byte
			err     error
		)
		if full {
			payload, err = svc.ExportFullData(ctx)
		} else {
			payload, err = svc.ExportData(ctx)
		}
		if err != nil {
			return transferDoneMsg{err: err}
		}
		if err = os.WriteFile(path, payload, 0o600); err != nil {
			return transferDoneMsg{err: err}
		}
		return transferDoneMsg{verb: "Экспортировано в " + path}
	}
}

func (m mainLoopModel) cmdImport(path string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Inventory
	return func() tea.Msg {
		payload, err := os.ReadFile(path)
		if err != nil {
			return transferDoneMsg{err: err}
		}

		// A bare array is a shopping-list export, an object is a full backup.
		trimmed := strings.TrimSpace(string(payload))
		if strings.HasPrefix(trimmed, "[") {
			err = svc.ImportData(ctx, payload)
		} else {
			err = svc.ImportFullData(ctx, payload)
		}
		if err != nil {
			return transferDoneMsg{err: err}
		}
		return transferDoneMsg{verb: "Импортировано из " + path}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return transferDoneMsg{err: fmt.Errorf("копирование в буфер: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
