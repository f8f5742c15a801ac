package models

// DataRecord is the immutable encrypted payload of one version.
type DataRecord struct {
	GUID string `json:"guid"`
	Data string `json:"data"`
}
