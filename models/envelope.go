// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karneev

package models

// CipherScheme identifies how an Envelope was produced. The scheme is fixed
// at parse time from the envelope fields and dispatched explicitly, rather
// than inferred deep inside the decrypt path.
type CipherScheme int

const (
	// SchemeUnknown marks an envelope that failed shape validation.
	SchemeUnknown CipherScheme = iota

	// SchemeAuthenticated is the primary path: PBKDF2-derived key and
	// AES-256-GCM. The salt field is present.
	SchemeAuthenticated

	// SchemeLegacy is the fallback stream-cipher path kept only for reading
	// envelopes written before authenticated encryption was introduced. It
	// carries no salt and cannot detect tampering.
	SchemeLegacy
)

// Envelope is the serialized container of ciphertext plus the parameters
// needed to decrypt it. All fields are base64-encoded. An absent salt marks
// the legacy scheme.
type Envelope struct {
	EncryptedData string `json:"encryptedData"`
	IV            string `json:"iv"`
	Salt          string `json:"salt,omitempty"`
}

// Scheme classifies the envelope. Envelopes missing ciphertext or IV are
// SchemeUnknown and must be rejected by callers.
func (e Envelope) Scheme() CipherScheme {
	if e.EncryptedData == "" || e.IV == "" {
		return SchemeUnknown
	}
	if e.Salt == "" {
		return SchemeLegacy
	}
	return SchemeAuthenticated
}
