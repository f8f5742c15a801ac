// Package models defines server-side data models persisted in the database.
package models

import (
	"slices"
	"time"
)

// Asset describes the provenance and access list of one stored version.
// LastVersion and SourceOfPublish are empty when unset.
type Asset struct {
	GUID            string    `json:"guid"`
	OriginalName    string    `json:"originalName,omitempty"`
	MimeType        string    `json:"mimeType,omitempty"`
	Owner           string    `json:"owner"`
	LastChangedBy   string    `json:"lastChangedBy"`
	LastChangedAt   time.Time `json:"lastChangedAt"`
	Active          bool      `json:"active"`
	AuthorizedUsers []string  `json:"authorizedUsers"`
	LastVersion     string    `json:"lastVersion,omitempty"`
	FirstVersion    string    `json:"firstVersion"`
	SourceOfPublish string    `json:"sourceOfPublish,omitempty"`
}

// IsFirstVersion reports whether the asset starts its lineage.
func (a *Asset) IsFirstVersion() bool {
	return a.LastVersion == ""
}

// IsPublishSource reports whether the asset is a canonical published copy.
func (a *Asset) IsPublishSource() bool {
	return a.SourceOfPublish != "" && a.SourceOfPublish == a.GUID
}

// Clone returns a deep copy.
func (a *Asset) Clone() *Asset {
	c := *a
	c.AuthorizedUsers = slices.Clone(a.AuthorizedUsers)
	return &c
}

// VersionInfo is one hop of a version chain.
type VersionInfo struct {
	GUID          string    `json:"guid"`
	LastChangedAt time.Time `json:"lastChangedAt"`
	LastChangedBy string    `json:"lastChangedBy"`
}
