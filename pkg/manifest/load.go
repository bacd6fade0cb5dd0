package manifest

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads and validates a manifest document. Validation fails fast,
// before any file is touched: the document must carry a schema_version
// marker, an operations list, and config.mode.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	// Check for required keys first so missing fields are reported as
	// such rather than silently zero-valued
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if _, ok := keys["schema_version"]; !ok {
		return nil, fmt.Errorf("manifest missing schema_version field")
	}
	if _, ok := keys["operations"]; !ok {
		return nil, fmt.Errorf("manifest missing operations field")
	}
	rawConfig, ok := keys["config"]
	if !ok {
		return nil, fmt.Errorf("manifest missing config field")
	}
	var configKeys map[string]json.RawMessage
	if err := json.Unmarshal(rawConfig, &configKeys); err != nil {
		return nil, fmt.Errorf("failed to parse manifest config: %w", err)
	}
	if _, ok := configKeys["mode"]; !ok {
		return nil, fmt.Errorf("manifest missing config.mode field")
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	return &doc, nil
}
