// Package config loads the optional foldersheets.yaml defaults file. Every
// value can be overridden on the command line; the file just keeps the
// credentials path, spreadsheet and folder out of shell history.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the defaults for the import and push commands.
type Config struct {
	Workdir     string      `yaml:"workdir"`
	Credentials string      `yaml:"credentials"`
	Spreadsheet Spreadsheet `yaml:"spreadsheet"`
	Drive       Drive       `yaml:"drive"`
}

// Spreadsheet identifies the worksheet holding the tabular folder tree.
type Spreadsheet struct {
	URL       string `yaml:"url"`
	Worksheet string `yaml:"worksheet"`
}

// Drive identifies the remote top-level folder.
type Drive struct {
	Folder string `yaml:"folder"`
}

// Load reads and parses the configuration file. A missing file is not an
// error - the zero Config applies and flags must supply everything.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := &Config{}
			cfg.applyDefaults()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.expandEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) expandEnv() {
	c.Workdir = os.ExpandEnv(c.Workdir)
	c.Credentials = os.ExpandEnv(c.Credentials)
	c.Spreadsheet.URL = os.ExpandEnv(c.Spreadsheet.URL)
	c.Drive.Folder = os.ExpandEnv(c.Drive.Folder)
}

func (c *Config) applyDefaults() {
	if c.Spreadsheet.Worksheet == "" {
		c.Spreadsheet.Worksheet = "Folders"
	}
}

// Validate rejects values that would only fail later with a less useful
// error.
func (c *Config) Validate() error {
	if url := strings.TrimSpace(c.Spreadsheet.URL); url != "" {
		if !strings.HasPrefix(url, "https://docs.google.com/spreadsheets/") {
			return fmt.Errorf("spreadsheet.url does not look like a Google Sheets URL: %s", url)
		}
	}

	return nil
}
