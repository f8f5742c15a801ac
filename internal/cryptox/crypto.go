// Package cryptox holds the payload codec and the key-derivation helpers
// used by the server.
package cryptox

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

var (
	ErrNoKeyMaterial = errors.New("encryption key material is not configured")
	ErrBadCiphertext = errors.New("malformed ciphertext")
	ErrBadPadding    = errors.New("invalid padding")
)

// DeriveKey stretches a secret into a 32-byte key with argon2id.
func DeriveKey(secret []byte, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, 32)
}

// HashPassword returns the argon2id hash stored for a user password.
func HashPassword(password string, salt []byte) []byte {
	return DeriveKey([]byte(password), salt)
}

// VerifyPassword reports whether password hashes to want under salt.
func VerifyPassword(password string, salt []byte, want []byte) bool {
	got := HashPassword(password, salt)
	return subtle.ConstantTimeCompare(got, want) == 1
}

// Codec encrypts document payloads with AES-256-CBC under a fixed key and a
// fixed IV, so equal plaintexts produce equal ciphertexts.
//
// The scheme carries no authentication tag; tampered ciphertext is only
// detected if it breaks the padding.
type Codec struct {
	block cipher.Block
	iv    []byte
}

// NewCodec derives the key and IV from passphrase and salt. Missing key
// material is reported as ErrNoKeyMaterial and is meant to stop startup.
func NewCodec(passphrase, salt []byte) (*Codec, error) {
	if len(passphrase) == 0 || len(salt) == 0 {
		return nil, ErrNoKeyMaterial
	}

	key := DeriveKey(passphrase, salt)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}

	sum := sha256.Sum256(key)
	return &Codec{block: block, iv: sum[:aes.BlockSize]}, nil
}

// Encrypt serializes content to JSON (raw []byte is used as is) and returns
// the ciphertext as lowercase hex.
func (c *Codec) Encrypt(content any) (string, error) {
	var plaintext []byte
	switch v := content.(type) {
	case []byte:
		plaintext = v
	default:
		b, err := json.Marshal(content)
		if err != nil {
			return "", fmt.Errorf("marshal payload: %w", err)
		}
		plaintext = b
	}

	padded := pad(plaintext, aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(c.block, c.iv).CryptBlocks(out, padded)

	return hex.EncodeToString(out), nil
}

// Decrypt reverses Encrypt. Plaintext that is not valid JSON is returned
// as a string.
func (c *Codec) Decrypt(ciphertext string) (any, error) {
	raw, err := hex.DecodeString(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCiphertext, err)
	}
	if len(raw) == 0 || len(raw)%aes.BlockSize != 0 {
		return nil, ErrBadCiphertext
	}

	out := make([]byte, len(raw))
	cipher.NewCBCDecrypter(c.block, c.iv).CryptBlocks(out, raw)

	plaintext, err := unpad(out, aes.BlockSize)
	if err != nil {
		return nil, err
	}

	var v any
	if err := json.Unmarshal(plaintext, &v); err != nil {
		return string(plaintext), nil
	}
	return v, nil
}

func pad(b []byte, size int) []byte {
	n := size - len(b)%size
	return append(bytes.Clone(b), bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(b []byte, size int) ([]byte, error) {
	if len(b) == 0 {
		return nil, ErrBadPadding
	}
	n := int(b[len(b)-1])
	if n == 0 || n > size || n > len(b) {
		return nil, ErrBadPadding
	}
	for _, p := range b[len(b)-n:] {
		if int(p) != n {
			return nil, ErrBadPadding
		}
	}
	return b[:len(b)-n], nil
}
