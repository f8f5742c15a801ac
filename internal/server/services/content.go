package services

import (
	"fmt"
	"maps"
	"time"

	"github.com/dmitrijs2005/docledger/internal/common"
	"github.com/dmitrijs2005/docledger/internal/cryptox"
	"github.com/dmitrijs2005/docledger/internal/identity"
	"github.com/dmitrijs2005/docledger/internal/server/models"
)

const (
	// DateAddedField is stamped into every stored JSON object.
	DateAddedField = "_dateAdded"

	defaultMimeType = "application/json"
)

// sealer turns plain content into a stored record: it stamps, encrypts and
// addresses it.
type sealer struct {
	codec *cryptox.Codec
	now   func() time.Time
}

// Postgres keeps microseconds; memory mode does the same so both order alike.
func (s *sealer) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func (s *sealer) seal(content any, at time.Time) (*models.DataRecord, *models.Asset, error) {
	ciphertext, err := s.codec.Encrypt(stamp(content, at))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: encrypt: %v", common.ErrorInternal, err)
	}

	name, mime := describe(content)
	guid, err := identity.DeriveGUID(ciphertext, identity.Meta{
		OriginalName: name,
		MimeType:     mime,
		DateAdded:    at,
		Nonce:        identity.NewNonce(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	record := &models.DataRecord{GUID: guid, Data: ciphertext}
	asset := &models.Asset{
		GUID:            guid,
		OriginalName:    name,
		MimeType:        mime,
		LastChangedAt:   at,
		Active:          true,
		AuthorizedUsers: []string{},
		FirstVersion:    guid,
	}
	return record, asset, nil
}

func (s *sealer) open(r *models.DataRecord) (any, error) {
	content, err := s.codec.Decrypt(r.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: decrypt %s: %v", common.ErrorInternal, r.GUID, err)
	}
	return content, nil
}

// stamp returns a copy of a JSON object with the server time added.
// Other values are stored as they are.
func stamp(content any, at time.Time) any {
	obj, ok := content.(map[string]any)
	if !ok {
		return content
	}
	out := maps.Clone(obj)
	if out == nil {
		out = map[string]any{}
	}
	out[DateAddedField] = at.Format(time.RFC3339Nano)
	return out
}

// describe reads the optional file name and mime type of the content.
func describe(content any) (string, string) {
	obj, _ := content.(map[string]any)
	name, _ := obj["originalName"].(string)
	mime, _ := obj["mimeType"].(string)
	if mime == "" {
		mime = defaultMimeType
	}
	return name, mime
}

// annotate copies version details into a trace entry.
func annotate(content any, v models.VersionInfo) any {
	obj, ok := content.(map[string]any)
	switch {
	case !ok:
		obj = map[string]any{"value": content}
	case obj == nil:
		obj = map[string]any{}
	default:
		obj = maps.Clone(obj)
	}
	obj["lastChangedAt"] = v.LastChangedAt
	obj["lastChangedBy"] = v.LastChangedBy
	return obj
}
