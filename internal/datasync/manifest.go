// Package datasync keeps the local reference data (page texts, glossary
// tables, word boxes) fresh against a remote versioned manifest. Updates are
// all or nothing: the locally recorded version only advances after every
// listed file downloaded and verified, and readers keep seeing the previous
// version until the new one is committed.
package datasync

// Manifest is the remote update descriptor. Version is monotonic; the
// client never downgrades.
type Manifest struct {
	Version   int            `json:"version"`
	UpdatedAt string         `json:"updatedAt"`
	Files     []ManifestFile `json:"files"`
}

// ManifestFile is one downloadable reference-data file. SHA256 is the
// optional hex digest of the body; when present the download is rejected on
// mismatch.
type ManifestFile struct {
	Key    string `json:"key"`
	URL    string `json:"url"`
	SHA256 string `json:"sha256,omitempty"`
}

// StoredFile is a downloaded, verified file ready to commit.
type StoredFile struct {
	Key    string
	Body   []byte
	SHA256 string
}
