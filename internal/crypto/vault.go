// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karneev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/pbkdf2"

	"github.com/mkarneev/homestock/models"
)

// vaultService is the private implementation of [VaultService].
type vaultService struct {
	// PBKDF2 tuning parameters. Stored in the struct so tests can lower the
	// iteration count without weakening the production default.
	iterations int
	saltLen    int
	keyLen     int
}

// NewVaultService constructs a [VaultService] with the production
// parameters:
//   - PBKDF2-SHA256 with 100 000 iterations
//   - 16-byte random salt
//   - 32-byte (256-bit) derived key
func NewVaultService() VaultService {
	return &vaultService{
		iterations: 100_000,
		saltLen:    16,
		keyLen:     32, // 256 bits
	}
}

// deriveKey stretches password and salt into an AES-256 key.
func (v *vaultService) deriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, v.iterations, v.keyLen, sha256.New)
}

// legacyKey derives the legacy stream-cipher key. The old scheme had no
// salt, so the key is a plain digest of the password.
func legacyKey(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return sum[:]
}

// Encrypt implements [VaultService]. The output envelope carries the
// ciphertext, the GCM nonce as iv, and the PBKDF2 salt, all base64-encoded.
func (v *vaultService) Encrypt(data any, password string) (models.Envelope, error) {
	// 1. Serialize to JSON
	plaintext, err := json.Marshal(data)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("marshal data: %w", err)
	}

	// 2. Fresh salt, derived key
	salt := make([]byte, v.saltLen)
	if _, err = io.ReadFull(rand.Reader, salt); err != nil {
		return models.Envelope{}, fmt.Errorf("generate salt: %w", err)
	}
	key := v.deriveKey(password, salt)

	// 3. Build AES-GCM cipher
	block, err := aes.NewCipher(key)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("create gcm: %w", err)
	}

	// 4. Fresh random nonce
	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return models.Envelope{}, fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)

	return models.Envelope{
		EncryptedData: base64.StdEncoding.EncodeToString(ciphertext),
		IV:            base64.StdEncoding.EncodeToString(nonce),
		Salt:          base64.StdEncoding.EncodeToString(salt),
	}, nil
}

// Decrypt implements [VaultService]. Dispatch is explicit on the envelope's
// scheme tag: authenticated envelopes re-derive the key from the carried
// salt, legacy envelopes fall back to the unauthenticated stream cipher.
// Cross-scheme decryption is never attempted.
func (v *vaultService) Decrypt(env models.Envelope, password string, target any) error {
	var (
		plaintext []byte
		err       error
	)

	switch env.Scheme() {
	case models.SchemeAuthenticated:
		plaintext, err = v.openAuthenticated(env, password)
	case models.SchemeLegacy:
		plaintext, err = v.openLegacy(env, password)
	default:
		return ErrInvalidEnvelope
	}
	if err != nil {
		return err
	}

	// Parse failure is indistinguishable from a wrong key on the legacy
	// path, so both schemes report it as a decryption failure.
	if err = json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("%w: unmarshal plaintext: %w", ErrDecryptionFailed, err)
	}

	return nil
}

func (v *vaultService) openAuthenticated(env models.Envelope, password string) ([]byte, error) {
	ciphertext, nonce, salt, err := decodeEnvelope(env)
	if err != nil {
		return nil, err
	}

	key := v.deriveKey(password, salt)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, ErrInvalidEnvelope
	}

	// An auth-tag mismatch here almost always means the wrong sync token.
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return plaintext, nil
}

func (v *vaultService) openLegacy(env models.Envelope, password string) ([]byte, error) {
	ciphertext, nonce, _, err := decodeEnvelope(env)
	if err != nil {
		return nil, err
	}
	if len(nonce) != chacha20.NonceSize {
		return nil, ErrInvalidEnvelope
	}

	stream, err := chacha20.NewUnauthenticatedCipher(legacyKey(password), nonce)
	if err != nil {
		return nil, fmt.Errorf("create legacy cipher: %w", err)
	}

	plaintext := make([]byte, len(ciphertext))
	stream.XORKeyStream(plaintext, ciphertext)

	return plaintext, nil
}

// EncryptLegacy implements [VaultService]. The envelope carries no salt,
// which is what tags it as legacy on the read side.
func (v *vaultService) EncryptLegacy(data any, password string) (models.Envelope, error) {
	plaintext, err := json.Marshal(data)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("marshal data: %w", err)
	}

	nonce := make([]byte, chacha20.NonceSize)
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return models.Envelope{}, fmt.Errorf("generate nonce: %w", err)
	}

	stream, err := chacha20.NewUnauthenticatedCipher(legacyKey(password), nonce)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("create legacy cipher: %w", err)
	}

	ciphertext := make([]byte, len(plaintext))
	stream.XORKeyStream(ciphertext, plaintext)

	return models.Envelope{
		EncryptedData: base64.StdEncoding.EncodeToString(ciphertext),
		IV:            base64.StdEncoding.EncodeToString(nonce),
	}, nil
}

// CreateHash implements [VaultService].
func (v *vaultService) CreateHash(data any) (string, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("marshal data: %w", err)
	}
	sum := sha256.Sum256(payload)
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

// GenerateSecureKey implements [VaultService].
func (v *vaultService) GenerateSecureKey() (string, error) {
	key := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", fmt.Errorf("generate key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

// decodeEnvelope base64-decodes the three envelope fields. A missing salt
// yields a nil salt slice, which only the legacy path accepts.
func decodeEnvelope(env models.Envelope) (ciphertext, iv, salt []byte, err error) {
	ciphertext, err = base64.StdEncoding.DecodeString(env.EncryptedData)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: decode ciphertext: %w", ErrInvalidEnvelope, err)
	}

	iv, err = base64.StdEncoding.DecodeString(env.IV)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: decode iv: %w", ErrInvalidEnvelope, err)
	}

	if env.Salt != "" {
		salt, err = base64.StdEncoding.DecodeString(env.Salt)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("%w: decode salt: %w", ErrInvalidEnvelope, err)
		}
	}

	return ciphertext, iv, salt, nil
}
