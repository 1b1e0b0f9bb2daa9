package service

import (
	"github.com/mkarneev/homestock/internal/adapter"
	"github.com/mkarneev/homestock/internal/crypto"
	"github.com/mkarneev/homestock/internal/store"
)

type ClientServices struct {
	Vault      crypto.VaultService
	Devices    DeviceService
	Sync       SyncService
	Inventory  InventoryService
	StatusPoll StatusPollJob
}

func NewClientServices(storages *store.ClientStorages, blobs adapter.BlobClient) *ClientServices {
	vault := crypto.NewVaultService()
	devices := NewDeviceService(storages.Settings, vault)
	syncSvc := NewSyncService(storages, blobs, vault, devices)
	inventory := NewInventoryService(storages.Items, storages.Categories, storages.Snapshot, devices, syncSvc)

	return &ClientServices{
		Vault:      vault,
		Devices:    devices,
		Sync:       syncSvc,
		Inventory:  inventory,
		StatusPoll: NewStatusPollJob(syncSvc),
	}
}
