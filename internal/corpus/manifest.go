package corpus

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/DaehanKim/lassl/internal/parallel"
)

// ManifestFileName is the manifest's name inside a corpus directory.
const ManifestFileName = "corpus_manifest.json"

// Common manifest errors.
var (
	ErrChecksumMismatch = errors.New("checksum mismatch: corpus file changed since manifest was written")
	ErrManifestMissing  = errors.New("corpus manifest not found")
	ErrFileMissing      = errors.New("corpus file listed in manifest is missing")
)

// Manifest records the content hashes of every file in a corpus directory,
// so a serialized corpus can be verified before a training run starts.
type Manifest struct {
	CorpusType Type              `json:"corpus_type"`
	Files      map[string]string `json:"files"` // relative path -> SHA-256 hex
}

// BuildManifest hashes every corpus file under dir.
func BuildManifest(dir string, corpusType Type) (*Manifest, error) {
	files, err := Files(dir, corpusType)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s (%s)", ErrEmptyCorpus, dir, corpusType)
	}

	sums, err := parallel.MapErr(len(files), func(i int) (string, error) {
		return hashFile(files[i])
	}, parallel.DefaultConfig())
	if err != nil {
		return nil, err
	}

	m := &Manifest{CorpusType: corpusType, Files: make(map[string]string, len(files))}
	for i, path := range files {
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return nil, err
		}
		m.Files[filepath.ToSlash(rel)] = sums[i]
	}
	return m, nil
}

// Write stores the manifest inside the corpus directory.
func (m *Manifest) Write(dir string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, ManifestFileName), data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// ReadManifest loads the manifest from a corpus directory.
func ReadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrManifestMissing, dir)
		}
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}

// VerifyManifest re-hashes the corpus and compares against the stored
// manifest. The first missing or changed file is reported.
func VerifyManifest(dir string) error {
	m, err := ReadManifest(dir)
	if err != nil {
		return err
	}

	for rel, want := range m.Files {
		got, err := hashFile(filepath.Join(dir, filepath.FromSlash(rel)))
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("%w: %s", ErrFileMissing, rel)
			}
			return err
		}
		if got != want {
			return fmt.Errorf("%w: %s", ErrChecksumMismatch, rel)
		}
	}
	return nil
}

// hashFile computes the SHA-256 of a file without loading it into memory.
func hashFile(path string) (string, error) {
	//nolint:gosec // Hashing user-specified corpus files is intentional.
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
