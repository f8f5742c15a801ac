// Package identity derives content addresses for stored records.
package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DomainRecord prefixes every record hash. The version suffix leaves room
// for a future algorithm change.
const DomainRecord = "docledger/record/v1"

// Meta is the part of a record's metadata that takes part in its identity.
// Nonce distinguishes two writes of otherwise identical content.
type Meta struct {
	OriginalName string    `json:"originalName"`
	MimeType     string    `json:"mimeType"`
	DateAdded    time.Time `json:"dateAdded"`
	Nonce        string    `json:"nonce"`
}

type hashInput struct {
	Ciphertext string `json:"ciphertext"`
	Meta
}

// NewNonce returns a random per-write nonce.
func NewNonce() string {
	return uuid.NewString()
}

// DeriveGUID hashes ciphertext together with meta. It is pure: equal
// inputs give equal guids.
func DeriveGUID(ciphertext string, meta Meta) (string, error) {
	meta.DateAdded = meta.DateAdded.UTC()

	// struct field order fixes the key order of the encoding
	data, err := json.Marshal(hashInput{Ciphertext: ciphertext, Meta: meta})
	if err != nil {
		return "", fmt.Errorf("derive guid: %w", err)
	}

	return hashWithDomain(DomainRecord, data), nil
}

// hashWithDomain computes SHA256(domain + 0x00 + data) as hex.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
