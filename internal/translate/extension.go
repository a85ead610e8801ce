package translate

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Pack is a dictionary extension loaded from disk. Packs let users add
// regional or personal vocabularies without rebuilding the binary.
type Pack struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Entries     []Entry `json:"entries"`
	Path        string  `json:"-"`
}

// LoadPacks scans dir for *.json pack files and parses them. A missing
// directory yields no packs and no error. Unreadable or malformed files
// are skipped so one broken pack cannot block the rest. Packs are
// returned in file-name order, which is also the order they should be
// merged in: later packs win on tag collisions.
func LoadPacks(dir string) ([]Pack, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, nil // No extension directory, nothing to load
	}
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var packs []Pack
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}

		path := filepath.Join(dir, f.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			continue // Skip packs we can't read
		}

		var pack Pack
		if err := json.Unmarshal(data, &pack); err != nil {
			continue // Skip packs with invalid JSON
		}
		if pack.Name == "" {
			pack.Name = strings.TrimSuffix(f.Name(), ".json")
		}
		pack.Path = path
		packs = append(packs, pack)
	}

	sort.Slice(packs, func(i, j int) bool { return packs[i].Path < packs[j].Path })
	return packs, nil
}
