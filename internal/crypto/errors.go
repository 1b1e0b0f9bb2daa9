package crypto

import "errors"

// Sentinel errors returned by the vault service. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrDecryptionFailed is returned when an envelope cannot be opened:
	// wrong password, corrupted ciphertext (authentication-tag mismatch on
	// the primary path), or plaintext that fails to parse as JSON.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidEnvelope is returned when an envelope fails shape
	// validation before any cryptographic work is attempted.
	ErrInvalidEnvelope = errors.New("invalid envelope")
)
