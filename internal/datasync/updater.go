package datasync

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
)

// UpdateResult reports the outcome of a sync attempt.
type UpdateResult struct {
	Applied     bool
	FromVersion int
	ToVersion   int
	Files       []string
}

// Updater compares the remote manifest against the local version and applies
// newer data atomically.
type Updater struct {
	fetcher     Fetcher
	store       Store
	manifestURL string
}

// NewUpdater creates an Updater.
func NewUpdater(fetcher Fetcher, store Store, manifestURL string) *Updater {
	return &Updater{
		fetcher:     fetcher,
		store:       store,
		manifestURL: manifestURL,
	}
}

// Check fetches the manifest and reports whether newer data is available,
// without downloading any content file.
func (u *Updater) Check(ctx context.Context) (*UpdateResult, error) {
	manifest, err := u.fetcher.FetchManifest(ctx, u.manifestURL)
	if err != nil {
		return nil, fmt.Errorf("fetcher.FetchManifest() > %w", err)
	}

	local, err := u.store.Version(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.Version() > %w", err)
	}

	result := &UpdateResult{
		Applied:     false,
		FromVersion: local,
		ToVersion:   manifest.Version,
	}
	for _, file := range manifest.Files {
		result.Files = append(result.Files, file.Key)
	}
	return result, nil
}

// CheckAndUpdate fetches the manifest and, when its version is newer than
// the local one, downloads and verifies every listed file before committing
// them together with the new version. On any failure nothing is committed
// and the previous data stays intact.
func (u *Updater) CheckAndUpdate(ctx context.Context) (*UpdateResult, error) {
	manifest, err := u.fetcher.FetchManifest(ctx, u.manifestURL)
	if err != nil {
		return nil, fmt.Errorf("fetcher.FetchManifest() > %w", err)
	}

	local, err := u.store.Version(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.Version() > %w", err)
	}

	result := &UpdateResult{
		FromVersion: local,
		ToVersion:   manifest.Version,
	}
	if manifest.Version <= local {
		slog.Debug("reference data up to date", "local", local, "remote", manifest.Version)
		result.ToVersion = local
		return result, nil
	}

	stored := make([]StoredFile, 0, len(manifest.Files))
	for _, file := range manifest.Files {
		body, err := u.fetcher.FetchFile(ctx, file.URL)
		if err != nil {
			return nil, fmt.Errorf("fetcher.FetchFile(%s) > %w", file.Key, err)
		}
		if err := verifyDigest(file, body); err != nil {
			return nil, err
		}
		stored = append(stored, StoredFile{
			Key:    file.Key,
			Body:   body,
			SHA256: file.SHA256,
		})
		result.Files = append(result.Files, file.Key)
	}

	if err := u.store.Commit(ctx, manifest.Version, stored); err != nil {
		return nil, fmt.Errorf("store.Commit() > %w", err)
	}

	slog.Info("reference data updated",
		"from", local, "to", manifest.Version, "files", len(stored))
	result.Applied = true
	return result, nil
}

func verifyDigest(file ManifestFile, body []byte) error {
	if file.SHA256 == "" {
		return nil
	}
	sum := sha256.Sum256(body)
	got := hex.EncodeToString(sum[:])
	if !strings.EqualFold(got, file.SHA256) {
		return fmt.Errorf("sha256 mismatch for %s: manifest %s, got %s", file.Key, file.SHA256, got)
	}
	return nil
}
