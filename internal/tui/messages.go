package tui

import "github.com/mkarneev/homestock/models"

type listLoadedMsg struct {
	items []models.StockItem
	err   error
}

type itemSavedMsg struct {
	err error
}

type itemDeletedMsg struct {
	err error
}

type syncResultMsg struct {
	op     syncOp
	result models.SyncResult
}

type syncStatusMsg struct {
	status models.SyncStatus
	device models.Device
	group  models.SyncGroup
	err    error
}

type pairingTokenMsg struct {
	token string
	err   error
}

type transferDoneMsg struct {
	verb string
	err  error
}

type copiedMsg struct{}

type clearStatusMsg struct{}

type syncOp int

const (
	opGenerate syncOp = iota
	opJoin
	opSyncNow
	opUnSync
)
