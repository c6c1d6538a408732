// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package config

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"
)

const (
	credentialSalt = "maintainarr-stored-credentials"
	credentialInfo = "credential-encryption-v1"

	// sealedPrefix marks values written by Seal so rows stored before
	// encryption was introduced are still readable.
	sealedPrefix = "enc:v1:"
)

var (
	// ErrEmptySecret is returned when no session secret is available.
	ErrEmptySecret = errors.New("session secret cannot be empty")

	// ErrDecryptionFailed is returned for tampered data or a changed secret.
	ErrDecryptionFailed = errors.New("decryption failed: invalid ciphertext or authentication tag")

	// ErrInvalidCiphertext is returned when the stored value is not valid base64
	// or is too short to hold a nonce and tag.
	ErrInvalidCiphertext = errors.New("invalid ciphertext format")
)

// CredentialEncryptor seals provider API keys and Plex tokens at rest with
// AES-256-GCM. The key is derived from SESSION_SECRET with HKDF-SHA256, so
// rotating the secret makes previously stored credentials unreadable.
type CredentialEncryptor struct {
	aead cipher.AEAD
}

// NewCredentialEncryptor derives the encryption key from secret.
func NewCredentialEncryptor(secret string) (*CredentialEncryptor, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	reader := hkdf.New(sha256.New, []byte(secret), []byte(credentialSalt), []byte(credentialInfo))
	key := make([]byte, 32)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("failed to derive encryption key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return &CredentialEncryptor{aead: aead}, nil
}

// Seal encrypts plaintext. The empty string stays empty.
func (e *CredentialEncryptor) Seal(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}
	nonce := make([]byte, e.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}
	sealed := e.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return sealedPrefix + base64.StdEncoding.EncodeToString(sealed), nil
}

// Open decrypts a value produced by Seal. Values without the sealed prefix
// are returned unchanged.
func (e *CredentialEncryptor) Open(stored string) (string, error) {
	if !strings.HasPrefix(stored, sealedPrefix) {
		return stored, nil
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(stored, sealedPrefix))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCiphertext, err)
	}
	nonceSize := e.aead.NonceSize()
	if len(data) < nonceSize+e.aead.Overhead() {
		return "", ErrInvalidCiphertext
	}
	plaintext, err := e.aead.Open(nil, data[:nonceSize], data[nonceSize:], nil)
	if err != nil {
		return "", ErrDecryptionFailed
	}
	return string(plaintext), nil
}
