package models

import "time"

// SyncSnapshot is a full point-in-time copy of items and categories prepared
// for transmission. It is produced on demand and never mutated after
// creation. LastModified is epoch milliseconds, matching the wire format.
type SyncSnapshot struct {
	Items        []StockItem `json:"items"`
	Categories   []Category  `json:"categories"`
	LastModified int64       `json:"lastModified"`
	DeviceID     string      `json:"deviceId"`
}

// NewSyncSnapshot builds a snapshot stamped with the current time.
func NewSyncSnapshot(items []StockItem, categories []Category, deviceID string) SyncSnapshot {
	return SyncSnapshot{
		Items:        items,
		Categories:   categories,
		LastModified: time.Now().UnixMilli(),
		DeviceID:     deviceID,
	}
}

// ModifiedAt returns LastModified as a time.Time.
func (s SyncSnapshot) ModifiedAt() time.Time {
	return time.UnixMilli(s.LastModified)
}
