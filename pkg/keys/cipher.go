// Package keys encrypts wallet private keys at rest.
package keys

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const masterKeySize = 32

// KeyCipher encrypts and decrypts private key material bound to a wallet label.
type KeyCipher interface {
	Encrypt(label string, plaintext []byte) (string, error)
	Decrypt(label string, encrypted string) ([]byte, error)
}

// MasterKeyCipher derives a per-label AES-256-GCM key from a master key using HKDF-SHA256.
// A ciphertext written for one label cannot be opened under another.
type MasterKeyCipher struct {
	masterKey []byte
}

// NewMasterKeyCipher creates a cipher bound to masterKey.
func NewMasterKeyCipher(masterKey []byte) (*MasterKeyCipher, error) {
	if len(masterKey) != masterKeySize {
		return nil, fmt.Errorf("master key must be %d bytes (AES-256)", masterKeySize)
	}
	return &MasterKeyCipher{masterKey: masterKey}, nil
}

func (c *MasterKeyCipher) aead(label string) (cipher.AEAD, error) {
	dataKey := make([]byte, masterKeySize)
	r := hkdf.New(sha256.New, c.masterKey, nil, []byte("wallet-credential:"+label))
	if _, err := io.ReadFull(r, dataKey); err != nil {
		return nil, fmt.Errorf("failed to derive data key: %w", err)
	}

	block, err := aes.NewCipher(dataKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return gcm, nil
}

// Encrypt returns base64(nonce || ciphertext || tag).
func (c *MasterKeyCipher) Encrypt(label string, plaintext []byte) (string, error) {
	gcm, err := c.aead(label)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := gcm.Seal(nonce, nonce, plaintext, []byte(label))
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt for the same label.
func (c *MasterKeyCipher) Decrypt(label string, encrypted string) ([]byte, error) {
	sealed, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64: %w", err)
	}

	gcm, err := c.aead(label)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(sealed) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := sealed[:nonceSize], sealed[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, []byte(label))
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}
	return plaintext, nil
}

// GenerateMasterKey generates a new random 32-byte master key.
func GenerateMasterKey() ([]byte, error) {
	key := make([]byte, masterKeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("failed to generate master key: %w", err)
	}
	return key, nil
}

// MasterKeyFromBase64 decodes a base64-encoded master key
func MasterKeyFromBase64(encoded string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode master key: %w", err)
	}
	if len(key) != masterKeySize {
		return nil, fmt.Errorf("master key must be %d bytes, got %d", masterKeySize, len(key))
	}
	return key, nil
}

// MasterKeyToBase64 encodes a master key as base64 for storage
func MasterKeyToBase64(key []byte) string {
	return base64.StdEncoding.EncodeToString(key)
}
