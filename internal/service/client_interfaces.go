package service

import (
	"context"
	"time"

	"github.com/mkarneev/homestock/models"
)

// InventoryService is the client-side contract for everyday stock keeping.
// It orchestrates the local store so the UI never touches SQL, and owns the
// input validation the store deliberately does not perform.
type InventoryService interface {
	// AddItem creates a new item with a fresh id and a single "set" history
	// entry recording the initial stock. Returns ErrNameRequired if name is
	// blank.
	AddItem(ctx context.Context, name string, initialStock int, category string) (models.StockItem, error)

	// UpdateStock sets the item's stock to newStock, appends a history
	// entry, and bumps lastOrdered when stock increased. An empty action is
	// derived from the sign of the change. Returns store.ErrItemNotFound if
	// the id is absent.
	UpdateStock(ctx context.Context, id string, newStock int, action string) (models.StockItem, error)

	// DeleteItem removes the item and its history. Deleting an absent id is
	// a no-op.
	DeleteItem(ctx context.Context, id string) error

	Get(ctx context.Context, id string) (models.StockItem, error)
	GetAll(ctx context.Context) ([]models.StockItem, error)

	// Search returns items whose name or category contains query,
	// case-insensitively. A blank query returns everything.
	Search(ctx context.Context, query string) ([]models.StockItem, error)

	AddCategory(ctx context.Context, name string) error
	DeleteCategory(ctx context.Context, name string) error
	GetAllCategories(ctx context.Context) ([]models.Category, error)

	// ExportData serializes all items to a JSON array with history
	// force-emptied. Lightweight export for sharing a shopping list, not a
	// backup.
	ExportData(ctx context.Context) ([]byte, error)

	// ExportFullData serializes items with history, categories, device info
	// and sync metadata into one backup document.
	ExportFullData(ctx context.Context) ([]byte, error)

	// ImportData parses a JSON array of items and upserts each by id,
	// replacing existing records wholesale. Histories are taken as-is from
	// the payload, not merged.
	ImportData(ctx context.Context, payload []byte) error

	// ImportFullData restores a full backup document: clears and
	// repopulates items and categories, and re-associates the embedded sync
	// group when present. Fails with store.ErrInvalidFormat unless both
	// "items" and "categories" keys are present.
	ImportFullData(ctx context.Context, payload []byte) error
}

// SyncService orchestrates cross-device data exchange through the remote
// blob store. All operations return a SyncResult instead of raising, so the
// UI can render failures uniformly.
type SyncService interface {
	// GenerateSync creates a new token, encrypts a snapshot under it,
	// uploads the blob, and persists the sync configuration. The token is
	// carried in the result for display to the user.
	GenerateSync(ctx context.Context) models.SyncResult

	// JoinSync downloads and decrypts the blob derived from token, replaces
	// local items and categories wholesale, and persists the configuration.
	// On any failure the local configuration is left untouched.
	JoinSync(ctx context.Context, token string) models.SyncResult

	// SyncNow re-snapshots local data and overwrites the configured remote
	// blob. Timestamps are updated only on success.
	SyncNow(ctx context.Context) models.SyncResult

	// UnSync clears the local configuration only. The remote blob and local
	// items are untouched.
	UnSync(ctx context.Context) models.SyncResult

	// Status returns the persisted sync configuration and timestamps.
	Status(ctx context.Context) (models.SyncStatus, error)

	// CheckRemoteStatus records the remote blob's uploadedAt as the remote
	// last-sync marker. A no-op when sync is not configured.
	CheckRemoteStatus(ctx context.Context) error
}

// DeviceService persists the stable per-installation identity and the local
// sync-group membership cache.
type DeviceService interface {
	// GetDeviceID returns the persistent device id, generating and storing
	// one on first call. Without a settings store it returns a placeholder.
	GetDeviceID(ctx context.Context) string

	// GetDeviceInfo lazily creates the device record and updates its
	// last-seen timestamp on every read.
	GetDeviceInfo(ctx context.Context) (models.Device, error)

	AddToSyncGroup(ctx context.Context, device models.Device) error
	RemoveFromSyncGroup(ctx context.Context, deviceID string) error

	// IsInSyncGroup reports whether this device's id appears in the cached
	// group list. The cache is not authoritative; possession of the sync
	// token is what grants access.
	IsInSyncGroup(ctx context.Context) (bool, error)

	// ReplaceSyncGroup overwrites the cached group wholesale, used when
	// restoring a full backup.
	ReplaceSyncGroup(ctx context.Context, group models.SyncGroup) error

	GetSyncGroup(ctx context.Context) (models.SyncGroup, error)

	// GeneratePairingToken issues a signed token binding this device id,
	// valid for 24 hours, for QR-code or manual-entry pairing.
	GeneratePairingToken(ctx context.Context) (string, error)

	// ValidatePairingToken checks signature and expiry and returns the
	// embedded device id.
	ValidatePairingToken(ctx context.Context, token string) (string, error)
}

// StatusPollJob is the background worker that periodically refreshes the
// remote last-sync marker while sync is configured.
type StatusPollJob interface {
	// Start launches the polling goroutine. A non-positive interval falls
	// back to 15 minutes. Any previously running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the goroutine and blocks until it has exited. Safe to
	// call when the job is not running.
	Stop()
}
