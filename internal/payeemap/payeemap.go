// Package payeemap loads the read-only payee-to-account mapping table.
package payeemap

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a payee-to-account mapping from a YAML file. The mapping is
// loaded once before any import run and treated as immutable afterwards. A
// missing file is not an error: extraction proceeds with an empty map and
// every outflow falls back to the uncategorized-expense account.
func Load(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("payee mapping not found, using empty map", "path", path)
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading payee mapping: %w", err)
	}

	var mapping map[string]string
	if err := yaml.Unmarshal(data, &mapping); err != nil {
		return nil, fmt.Errorf("parsing payee mapping: %w", err)
	}
	if mapping == nil {
		mapping = map[string]string{}
	}
	return mapping, nil
}

// Save writes a mapping to a YAML file. Used by init to scaffold a starter
// table; the pipeline itself never writes.
func Save(path string, mapping map[string]string) error {
	data, err := yaml.Marshal(mapping)
	if err != nil {
		return fmt.Errorf("marshaling payee mapping: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing payee mapping: %w", err)
	}
	return nil
}
