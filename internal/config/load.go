package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"bennypowers.dev/swatchnorm/internal/log"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

var configExtensions = []string{".yaml", ".yml", ".json"}

// Find returns the path of the first config file present under rootDir,
// or "" if there is none.
func Find(rootDir string) (string, error) {
	for _, ext := range configExtensions {
		path := filepath.Join(rootDir, ConfigDir, ConfigBaseName+ext)
		info, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if info.IsDir() {
			continue
		}
		return path, nil
	}
	return "", nil
}

// Load reads the config file under rootDir. A missing file yields Default().
func Load(rootDir string) (*Config, error) {
	path, err := Find(rootDir)
	if err != nil {
		return nil, err
	}
	if path == "" {
		log.Debug("No config file under %s, using defaults", rootDir)
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates one config file. The format follows the
// extension; JSON files may contain comments and trailing commas.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: config path under the working directory
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	cfg.Check.Files = nil

	switch filepath.Ext(path) {
	case ".json":
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", path)
	}

	if err := NewValidator().Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	log.Debug("Loaded config from %s", path)
	return cfg, nil
}
