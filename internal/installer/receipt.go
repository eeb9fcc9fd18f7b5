package installer

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"time"
)

// Receipt records what an install placed on disk. It is advisory:
// uninstall always removes the whole target directory, and a missing or
// corrupt receipt never blocks install or uninstall.
type Receipt struct {
	Version       string          `json:"version"`
	Skill         string          `json:"skill"`
	Agent         string          `json:"agent"`
	BundleVersion string          `json:"bundle_version,omitempty"`
	Source        string          `json:"source"`
	InstalledAt   time.Time       `json:"installed_at,omitempty"`
	Files         []InstalledFile `json:"files,omitempty"`
}

// InstalledFile is one file placed into the target directory.
type InstalledFile struct {
	Path string `json:"path"` // relative to the target directory
	Hash string `json:"hash"` // sha256 hex of the content at install time
}

// Installed reports whether the receipt describes a completed install.
func (r *Receipt) Installed() bool {
	return !r.InstalledAt.IsZero()
}

// Find returns the entry for a relative path, or nil.
func (r *Receipt) Find(rel string) *InstalledFile {
	for i := range r.Files {
		if r.Files[i].Path == rel {
			return &r.Files[i]
		}
	}
	return nil
}

// LoadReceipt loads the receipt from disk. A missing file yields an
// empty receipt, not an error.
func LoadReceipt(path string) (*Receipt, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Receipt{Version: "1"}, nil
		}
		return nil, err
	}

	var receipt Receipt
	if err := json.Unmarshal(data, &receipt); err != nil {
		return nil, err
	}

	return &receipt, nil
}

// SaveReceipt writes the receipt to disk.
func SaveReceipt(path string, r *Receipt) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ClearReceipt removes the receipt file. Removing an absent receipt is a no-op.
func ClearReceipt(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// HashBytes returns the sha256 hex digest of content.
func HashBytes(content []byte) string {
	h := sha256.Sum256(content)
	return hex.EncodeToString(h[:])
}

// HashFile returns the sha256 hex digest of a file's content.
func HashFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return HashBytes(data), nil
}
