// Package catalog loads a chart of accounts from YAML or JSON files. This
// is the caller-side adapter feeding the engine; the engine itself only ever
// sees the resulting slice and never caches it.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/finbooks/entry-suggest/internal/domain"
)

// LoadFile reads a chart of accounts from path. The format is chosen by
// extension: .json for JSON, anything else is parsed as YAML.
func LoadFile(path string) ([]domain.Account, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	var accounts []domain.Account
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &accounts)
	} else {
		err = yaml.Unmarshal(data, &accounts)
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}

	if err := Validate(accounts); err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return accounts, nil
}

// Validate checks catalog shape: every account needs an id, a name, and one
// of the five known types; ids must be unique.
func Validate(accounts []domain.Account) error {
	seen := make(map[string]bool, len(accounts))
	for i, a := range accounts {
		if a.ID == "" {
			return fmt.Errorf("account %d: missing id", i)
		}
		if a.Name == "" {
			return fmt.Errorf("account %q: missing name", a.ID)
		}
		if !a.Type.Valid() {
			return fmt.Errorf("account %q: unknown type %q", a.ID, a.Type)
		}
		if seen[a.ID] {
			return fmt.Errorf("account %q: duplicate id", a.ID)
		}
		seen[a.ID] = true
	}
	return nil
}
