package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// parseJSON reads a [StructuredConfig] from the JSON file at jsonFilePath.
// A JSON file cannot point at another JSON file.
func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	cfg := &StructuredConfig{}
	if err := json.NewDecoder(jsonFile).Decode(cfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}
	cfg.JSONFilePath = ""

	return cfg, nil
}
