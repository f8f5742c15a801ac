package models

// Document is a decrypted version as returned to callers.
type Document struct {
	GUID    string `json:"guid"`
	Content any    `json:"content"`
}

// PublishedItem is one document of a publish group.
type PublishedItem struct {
	GUID    string `json:"guid"`
	Owner   string `json:"owner"`
	Content any    `json:"content"`
}

// PublishedGroup is a published source with the latest copy of every
// recipient.
type PublishedGroup struct {
	Source    PublishedItem   `json:"source"`
	Published []PublishedItem `json:"published"`
}
