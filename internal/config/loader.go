package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const catchFile = "catch.yaml"

// Source names used when the configuration did not come from a file.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Load loads the catch configuration and validates it.
// Search order: customPath -> ~/.arcade/configs/catch.yaml -> ./configs/catch.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file only needs the keys it changes.
func Load(customPath string) (CatchConfig, error) {
	cfg, _, err := LoadWithSource(customPath)
	return cfg, err
}

// LoadWithSource is Load that also reports where the configuration came from:
// a file path, SourceEmbedded or SourceBuiltin.
func LoadWithSource(customPath string) (CatchConfig, string, error) {
	cfg, source, err := locate(customPath)
	if err != nil {
		return cfg, source, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, source, fmt.Errorf("invalid catch config from %s: %w", source, err)
	}
	return cfg, source, nil
}

// locate returns the first configuration that parses. An explicit path must
// exist and parse; the well-known locations are skipped when they do not.
func locate(customPath string) (CatchConfig, string, error) {
	if customPath != "" {
		cfg, err := readFile(customPath)
		return cfg, customPath, err
	}

	for _, path := range searchPaths() {
		if cfg, err := readFile(path); err == nil {
			return cfg, path, nil
		}
	}

	if cfg, err := Parse(defaultCatchYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultCatchConfig(), SourceBuiltin, nil
}

// searchPaths lists the well-known config locations, most specific first.
func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".arcade", "configs", catchFile))
	}
	return append(paths, filepath.Join("configs", catchFile))
}

func readFile(path string) (CatchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultCatchConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over DefaultCatchConfig. It does not validate.
func Parse(data []byte) (CatchConfig, error) {
	cfg := DefaultCatchConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultCatchConfig(), err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg CatchConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}
