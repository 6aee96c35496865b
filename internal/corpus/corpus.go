// Package corpus reads, samples, and verifies pretraining corpora.
package corpus

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/DaehanKim/lassl/internal/parallel"
)

// Common errors.
var (
	ErrUnknownCorpusType = errors.New("unknown corpus type")
	ErrEmptyCorpus       = errors.New("corpus directory contains no corpus files")
)

// Type identifies the on-disk layout of a corpus directory.
type Type string

// Supported corpus layouts.
const (
	// SentText: plain text, one sentence per line.
	SentText Type = "sent_text"
	// DocuText: plain text, one document per blank-line-separated paragraph.
	DocuText Type = "docu_text"
	// SentJSON: JSON lines, each record holds one sentence in its "text" field.
	SentJSON Type = "sent_json"
	// DocuJSON: JSON lines, each record holds one document in its "text" field.
	DocuJSON Type = "docu_json"
)

// Valid reports whether t names a supported corpus layout.
func (t Type) Valid() bool {
	switch t {
	case SentText, DocuText, SentJSON, DocuJSON:
		return true
	default:
		return false
	}
}

// Types lists every supported corpus layout.
func Types() []Type {
	return []Type{DocuText, DocuJSON, SentText, SentJSON}
}

// jsonRecord is one line of a sent_json or docu_json corpus.
type jsonRecord struct {
	Text string `json:"text"`
}

// Files returns the corpus files under dir, sorted by path.
//
// Text layouts read .txt files; JSON layouts read .json and .jsonl files.
// Other files (READMEs, manifests) are ignored.
func Files(dir string, corpusType Type) ([]string, error) {
	if !corpusType.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCorpusType, corpusType)
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		// The manifest lives alongside JSON corpora; it is never a document.
		if d.Name() == ManifestFileName {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		switch corpusType {
		case SentText, DocuText:
			if ext == ".txt" {
				files = append(files, path)
			}
		case SentJSON, DocuJSON:
			if ext == ".json" || ext == ".jsonl" {
				files = append(files, path)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan corpus directory: %w", err)
	}

	sort.Strings(files)
	return files, nil
}

// Load reads every document from a corpus directory.
//
// Documents are returned in deterministic order: files sorted by path, then
// file order within each file. For "sent" layouts each sample is a single
// sentence; for "docu" layouts each sample is a whole document.
//
// Example:
//
//	docs, err := corpus.Load("corpora/wiki", corpus.SentText)
func Load(dir string, corpusType Type) ([]string, error) {
	files, err := Files(dir, corpusType)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s (%s)", ErrEmptyCorpus, dir, corpusType)
	}

	// Files parse independently, so scan them in parallel.
	perFile, err := parallel.MapErr(len(files), func(i int) ([]string, error) {
		return loadFile(files[i], corpusType)
	}, parallel.DefaultConfig())
	if err != nil {
		return nil, err
	}

	var docs []string
	for _, fileDocs := range perFile {
		docs = append(docs, fileDocs...)
	}
	return docs, nil
}

// loadFile parses a single corpus file.
func loadFile(path string, corpusType Type) ([]string, error) {
	//nolint:gosec // Reading user-specified corpus files is intentional.
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var docs []string
	var paragraph []string

	flush := func() {
		if len(paragraph) > 0 {
			docs = append(docs, strings.Join(paragraph, "\n"))
			paragraph = paragraph[:0]
		}
	}

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		switch corpusType {
		case SentText:
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				docs = append(docs, trimmed)
			}
		case DocuText:
			if strings.TrimSpace(line) == "" {
				flush()
			} else {
				paragraph = append(paragraph, line)
			}
		case SentJSON, DocuJSON:
			if strings.TrimSpace(line) == "" {
				continue
			}
			var rec jsonRecord
			if err := json.Unmarshal([]byte(line), &rec); err != nil {
				return nil, fmt.Errorf("%s:%d: invalid JSON record: %w", path, lineNo, err)
			}
			if rec.Text != "" {
				docs = append(docs, rec.Text)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	flush()

	return docs, nil
}

// maxLineBytes bounds a single corpus line; 16MB covers whole documents in
// docu_json corpora.
const maxLineBytes = 16 * 1024 * 1024
