package netsuite

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// SecretStore decrypts credential blobs at rest into key/value maps.
type SecretStore interface {
	Decrypt(blob string) (map[string]string, error)
}

// ErrBadSecret covers every way a blob can fail to decrypt. Callers get no
// detail about which step failed.
var ErrBadSecret = errors.New("secret blob cannot be decrypted")

// aesSecretStore is AES-256-GCM over a base64 blob of nonce || ciphertext.
type aesSecretStore struct {
	aead cipher.AEAD
}

// NewSecretStore creates a store from a 32-byte key.
func NewSecretStore(key []byte) (SecretStore, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("secret key must be 32 bytes, got %d", len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &aesSecretStore{aead: aead}, nil
}

func (s *aesSecretStore) Decrypt(blob string) (map[string]string, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, ErrBadSecret
	}
	nonceSize := s.aead.NonceSize()
	if len(raw) < nonceSize {
		return nil, ErrBadSecret
	}
	plaintext, err := s.aead.Open(nil, raw[:nonceSize], raw[nonceSize:], nil)
	if err != nil {
		return nil, ErrBadSecret
	}
	var out map[string]string
	if err := json.Unmarshal(plaintext, &out); err != nil {
		return nil, ErrBadSecret
	}
	return out, nil
}

// EncryptCredentials seals a credential map into a blob the store can
// decrypt. Used by provisioning tooling and tests.
func EncryptCredentials(key []byte, creds map[string]string) (string, error) {
	if len(key) != 32 {
		return "", fmt.Errorf("secret key must be 32 bytes, got %d", len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}
	plaintext, err := json.Marshal(creds)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	sealed := aead.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}
