package models

import "time"

// SyncStatus is the persisted local sync configuration. A device is
// configured for sync iff Token and Filename are both set.
type SyncStatus struct {
	Token          string     `json:"token,omitempty"`
	Filename       string     `json:"filename,omitempty"`
	LastLocalSync  *time.Time `json:"lastLocalSync,omitempty"`
	LastRemoteSync *time.Time `json:"lastRemoteSync,omitempty"`
}

// Configured reports whether sync has been set up on this device.
func (s SyncStatus) Configured() bool {
	return s.Token != "" && s.Filename != ""
}

// SyncResult is the uniform outcome of a sync operation. Sync operations
// never raise to the UI layer; callers inspect the result instead.
type SyncResult struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OkSyncResult returns a successful result carrying an optional token.
func OkSyncResult(token string) SyncResult {
	return SyncResult{Success: true, Token: token}
}

// FailedSyncResult returns a failed result with a short human-readable
// error message.
func FailedSyncResult(msg string) SyncResult {
	return SyncResult{Success: false, Error: msg}
}
