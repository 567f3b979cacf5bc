// Package secret encrypts OAuth access tokens at rest.
//
// The cipher is AES-256-GCM with a random nonce prepended to each
// ciphertext. The AES key is derived from the configured secret with
// HKDF-SHA256 so the raw config value is never used as key material
// directly.
package secret

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const keySize = 32

// hkdfInfo binds derived keys to this usage; changing it invalidates
// every stored ciphertext.
const hkdfInfo = "nashir/social-token-v1"

// Cipher seals and opens small secrets such as OAuth access tokens.
type Cipher struct {
	aead cipher.AEAD
}

// NewCipher derives an AES-256 key from the secret and builds the AEAD.
// The secret must be at least 32 characters.
func NewCipher(secretKey string) (*Cipher, error) {
	if len(secretKey) < keySize {
		return nil, fmt.Errorf("encryption secret must be at least %d characters", keySize)
	}

	key := make([]byte, keySize)
	kdf := hkdf.New(sha256.New, []byte(secretKey), nil, []byte(hkdfInfo))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("init gcm: %w", err)
	}

	return &Cipher{aead: aead}, nil
}

// Seal encrypts the plaintext. The nonce is prepended to the returned
// ciphertext.
func (c *Cipher) Seal(plaintext string) ([]byte, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return c.aead.Seal(nonce, nonce, []byte(plaintext), nil), nil
}

// Open decrypts a ciphertext produced by Seal.
func (c *Cipher) Open(ciphertext []byte) (string, error) {
	if len(ciphertext) < c.aead.NonceSize() {
		return "", fmt.Errorf("ciphertext too short")
	}

	nonce, sealed := ciphertext[:c.aead.NonceSize()], ciphertext[c.aead.NonceSize():]
	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("decrypt: %w", err)
	}

	return string(plaintext), nil
}
