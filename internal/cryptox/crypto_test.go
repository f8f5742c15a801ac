package cryptox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	c, err := NewCodec([]byte("passphrase"), []byte("fixed-salt"))
	require.NoError(t, err)
	return c
}

func TestDeriveKey_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt")

	key1 := DeriveKey(password, salt)
	key2 := DeriveKey(password, salt)

	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}
	if len(key1) != 32 {
		t.Errorf("expected 32-byte key, got %d", len(key1))
	}
}

func TestDeriveKey_DifferentInputs(t *testing.T) {
	password := []byte("secret-password")

	key1 := DeriveKey(password, []byte("salt-1"))
	key2 := DeriveKey(password, []byte("salt-2"))

	if bytes.Equal(key1, key2) {
		t.Errorf("expected different results for different salts, got same")
	}
}

func TestVerifyPassword(t *testing.T) {
	salt := []byte("0123456789abcdef")
	hash := HashPassword("hunter2", salt)

	assert.True(t, VerifyPassword("hunter2", salt, hash))
	assert.False(t, VerifyPassword("hunter3", salt, hash))
	assert.False(t, VerifyPassword("hunter2", []byte("other-salt"), hash))
}

func TestNewCodec_MissingKeyMaterial(t *testing.T) {
	_, err := NewCodec(nil, []byte("salt"))
	assert.ErrorIs(t, err, ErrNoKeyMaterial)

	_, err = NewCodec([]byte("pass"), nil)
	assert.ErrorIs(t, err, ErrNoKeyMaterial)
}

func TestCodec_RoundTrip(t *testing.T) {
	c := newTestCodec(t)

	tests := []struct {
		name string
		in   any
		want any
	}{
		{"object", map[string]any{"coffee": "mocha", "cups": 2}, map[string]any{"coffee": "mocha", "cups": float64(2)}},
		{"nested", map[string]any{"a": []any{"x", map[string]any{"b": true}}}, map[string]any{"a": []any{"x", map[string]any{"b": true}}}},
		{"array", []any{1, "two", nil}, []any{float64(1), "two", nil}},
		{"json string", "hello", "hello"},
		{"empty object", map[string]any{}, map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := c.Encrypt(tt.in)
			require.NoError(t, err)

			got, err := c.Decrypt(enc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCodec_Deterministic(t *testing.T) {
	c := newTestCodec(t)

	a, err := c.Encrypt(map[string]any{"k": "v"})
	require.NoError(t, err)
	b, err := c.Encrypt(map[string]any{"k": "v"})
	require.NoError(t, err)
	assert.Equal(t, a, b)

	other, err := NewCodec([]byte("other"), []byte("fixed-salt"))
	require.NoError(t, err)
	d, err := other.Encrypt(map[string]any{"k": "v"})
	require.NoError(t, err)
	assert.NotEqual(t, a, d)
}

func TestCodec_RawBytesAndLegacyStrings(t *testing.T) {
	c := newTestCodec(t)

	enc, err := c.Encrypt([]byte("plain legacy note"))
	require.NoError(t, err)

	got, err := c.Decrypt(enc)
	require.NoError(t, err)
	assert.Equal(t, "plain legacy note", got)
}

func TestCodec_DecryptErrors(t *testing.T) {
	c := newTestCodec(t)

	_, err := c.Decrypt("not-hex")
	assert.ErrorIs(t, err, ErrBadCiphertext)

	_, err = c.Decrypt("")
	assert.ErrorIs(t, err, ErrBadCiphertext)

	_, err = c.Decrypt("abcd")
	assert.ErrorIs(t, err, ErrBadCiphertext)
}

func TestUnpad(t *testing.T) {
	_, err := unpad([]byte{1, 2, 3, 0}, 16)
	assert.ErrorIs(t, err, ErrBadPadding)

	_, err = unpad([]byte{1, 2, 3, 2}, 16)
	assert.ErrorIs(t, err, ErrBadPadding)

	got, err := unpad([]byte{1, 2, 2, 2}, 16)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, got)

	assert.Len(t, pad(nil, 16), 16)
}
