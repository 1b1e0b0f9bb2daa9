// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karneev

package crypto

import "github.com/mkarneev/homestock/models"

// VaultService encrypts and decrypts JSON-serializable payloads keyed by a
// user-supplied password (the sync token).
//
// The primary path derives a 256-bit key with PBKDF2-SHA256 and seals the
// payload with AES-256-GCM. The legacy path is an unauthenticated stream
// cipher kept only so envelopes written by old installations remain
// readable; it must never become the default write path.
type VaultService interface {
	// Encrypt serializes data to JSON and seals it under password via the
	// primary (authenticated) path with a fresh salt and nonce.
	Encrypt(data any, password string) (models.Envelope, error)

	// Decrypt opens env with password and unmarshals the plaintext into
	// target (a non-nil pointer). The cipher scheme is dispatched from the
	// envelope's tag; wrong password, tampering, or malformed plaintext all
	// surface as [ErrDecryptionFailed].
	Decrypt(env models.Envelope, password string, target any) error

	// EncryptLegacy seals data under the legacy stream cipher. Retained for
	// compatibility tooling and tests only.
	EncryptLegacy(data any, password string) (models.Envelope, error)

	// CreateHash returns the base64-encoded SHA-256 digest of the JSON
	// serialization of data, for integrity/checksum use.
	CreateHash(data any) (string, error)

	// GenerateSecureKey returns 256 bits of CSPRNG randomness,
	// base64-encoded, for standalone key material.
	GenerateSecureKey() (string, error)
}
