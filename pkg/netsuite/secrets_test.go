package netsuite

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecretStore_RoundTrip(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, 32)
	creds := map[string]string{
		"account_id":   "TSTDRV123",
		"token_id":     "tok-1",
		"token_secret": "shh",
	}

	blob, err := EncryptCredentials(key, creds)
	require.NoError(t, err)

	store, err := NewSecretStore(key)
	require.NoError(t, err)

	got, err := store.Decrypt(blob)
	require.NoError(t, err)
	assert.Equal(t, creds, got)
}

func TestSecretStore_RejectsBadBlobs(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, 32)
	store, err := NewSecretStore(key)
	require.NoError(t, err)

	blob, err := EncryptCredentials(key, map[string]string{"k": "v"})
	require.NoError(t, err)

	tests := []struct {
		name string
		blob string
	}{
		{"not base64", "%%%not-base64%%%"},
		{"too short for nonce", base64.StdEncoding.EncodeToString([]byte("tiny"))},
		{"tampered ciphertext", blob[:len(blob)-8] + "AAAAAAA="},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Decrypt(tt.blob)
			require.ErrorIs(t, err, ErrBadSecret)
		})
	}
}

func TestSecretStore_WrongKeyFailsClosed(t *testing.T) {
	blob, err := EncryptCredentials(bytes.Repeat([]byte{0x42}, 32), map[string]string{"k": "v"})
	require.NoError(t, err)

	store, err := NewSecretStore(bytes.Repeat([]byte{0x43}, 32))
	require.NoError(t, err)

	_, err = store.Decrypt(blob)
	require.ErrorIs(t, err, ErrBadSecret)
}

func TestSecretStore_RequiresAES256Key(t *testing.T) {
	_, err := NewSecretStore([]byte("short"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "32 bytes")

	_, err = EncryptCredentials([]byte("short"), map[string]string{"k": "v"})
	require.Error(t, err)
}
