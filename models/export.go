package models

import "time"

// FullExportVersion is written into every full export document.
const FullExportVersion = "1.0"

// FullExport is the complete backup document: items with their history,
// categories, device info and sync metadata. Suitable for full
// restore including re-association with an existing sync group.
type FullExport struct {
	Version    string      `json:"version"`
	Timestamp  time.Time   `json:"timestamp"`
	DeviceInfo *Device     `json:"deviceInfo,omitempty"`
	SyncStatus *SyncStatus `json:"syncStatus,omitempty"`
	SyncGroup  *SyncGroup  `json:"syncGroup,omitempty"`
	Items      []StockItem `json:"items"`
	Categories []Category  `json:"categories"`
}
