// .stringskit.yaml configuration file support.
//
// When a .stringskit.yaml file exists in the module root, its settings
// override the conventional Resources/<lang>.lproj layout defaults.

package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional per-module config file name.
const ConfigFileName = ".stringskit.yaml"

// Config is the .stringskit.yaml schema.
type Config struct {
	// PrimaryLanguage is the reference language tag (default "en").
	PrimaryLanguage string `yaml:"primary_language,omitempty"`
	// ResourcesDir is the directory holding *.lproj dirs (default "Resources").
	ResourcesDir string `yaml:"resources_dir,omitempty"`
	// TableName is the string-table file name (default "Localizable.strings").
	TableName string `yaml:"table_name,omitempty"`
	// Languages restricts validation to the listed tags. The primary
	// language is always included.
	Languages []string `yaml:"languages,omitempty"`
	// Strict makes validate exit non-zero when the headline issue
	// count is positive. Report content is unaffected.
	Strict bool `yaml:"strict,omitempty"`
}

// LoadConfig loads .stringskit.yaml from the given directory.
// Returns nil if no config file exists.
func LoadConfig(root string) (*Config, error) {
	path := filepath.Join(root, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}
