package tokenizer

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// tokenizerJSON is the saved tokenizer layout, a subset of the widely used
// tokenizer.json structure.
type tokenizerJSON struct {
	Model struct {
		Type   string           `json:"type"`
		Vocab  map[string]int32 `json:"vocab"`
		Merges []string         `json:"merges"`
	} `json:"model"`
	AddedTokens []addedToken `json:"added_tokens"`
}

type addedToken struct {
	ID      int32  `json:"id"`
	Content string `json:"content"`
	Special bool   `json:"special"`
}

// Save writes the tokenizer to a tokenizer.json file.
func (b *BPETokenizer) Save(path string) error {
	var out tokenizerJSON
	out.Model.Type = "BPE"
	out.Model.Vocab = b.vocab
	out.Model.Merges = make([]string, len(b.merges))
	for i, m := range b.merges {
		out.Model.Merges[i] = m.first + " " + m.second
	}

	for token, id := range b.specialTokens {
		out.AddedTokens = append(out.AddedTokens, addedToken{ID: id, Content: token, Special: true})
	}
	sort.Slice(out.AddedTokens, func(i, j int) bool {
		return out.AddedTokens[i].ID < out.AddedTokens[j].ID
	})

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write tokenizer: %w", err)
	}
	return nil
}

// Load reads a tokenizer saved by Save.
func Load(path string) (*BPETokenizer, error) {
	//nolint:gosec // Loading a tokenizer from a user-specified path is intentional.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tokenizer: %w", err)
	}

	var in tokenizerJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("failed to parse tokenizer: %w", err)
	}
	if in.Model.Type != "BPE" {
		return nil, fmt.Errorf("unsupported tokenizer model type %q", in.Model.Type)
	}

	merges := make([]pair, 0, len(in.Model.Merges))
	for _, mergeStr := range in.Model.Merges {
		parts := strings.Fields(mergeStr)
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed merge rule %q", mergeStr)
		}
		merges = append(merges, pair{parts[0], parts[1]})
	}

	special := make(map[string]int32)
	for _, tok := range in.AddedTokens {
		if tok.Special {
			special[tok.Content] = tok.ID
		}
	}

	return newBPETokenizer(in.Model.Vocab, merges, special), nil
}
