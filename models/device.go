package models

import "time"

// Device describes one installation of the app. The ID is generated once and
// persists until the local store is reset.
type Device struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Platform   string    `json:"platform"`
	CreatedAt  time.Time `json:"createdAt"`
	LastSeenAt time.Time `json:"lastSeenAt"`
}

// SyncGroup is a locally cached membership list of devices sharing one sync
// token. It is not authoritative: the ability to decrypt the shared blob is
// governed solely by possession of the token.
type SyncGroup struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Devices   []Device  `json:"devices"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
