// Package config loads the settings of the rename phase from a YAML file
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"

	"github.com/NickyBoy89/java2go-rename/naming"
	"github.com/NickyBoy89/java2go-rename/rename"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Suffixes are the strings appended to renamed identifiers
type Suffixes struct {
	ShadowSeparator string `yaml:"shadow_separator"`
	MethodCollision string `yaml:"method_collision"`
	Argument        string `yaml:"argument"`
}

// Config represents a java2go-rename configuration file
type Config struct {
	// How field names are spelled when they are compared to variable names,
	// either "go" or "verbatim"
	Spelling string `yaml:"spelling"`
	// The format of the report, "text", "json", or "yaml"
	Format   string   `yaml:"format"`
	LogLevel string   `yaml:"log_level"`
	Suffixes Suffixes `yaml:"suffixes"`
}

var formats = []string{"text", "json", "yaml"}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		Spelling: "go",
		Format:   "text",
		LogLevel: "info",
		Suffixes: Suffixes{
			ShadowSeparator: rename.DefaultSuffixes.ShadowSeparator,
			MethodCollision: rename.DefaultSuffixes.MethodCollision,
			Argument:        rename.DefaultSuffixes.Argument,
		},
	}
}

// Load reads the configuration at the given path. Settings that the file does
// not mention keep their default values, and an empty path returns the
// defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML into the configuration, overwriting only the settings
// that are present. Unknown keys are an error
func Parse(data []byte, cfg *Config) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing config: %w", err)
	}
	return nil
}

// Validate checks that every setting has a usable value
func (c Config) Validate() error {
	if _, err := naming.ByName(c.Spelling); err != nil {
		return err
	}

	var knownFormat bool
	for _, format := range formats {
		if c.Format == format {
			knownFormat = true
		}
	}
	if !knownFormat {
		return fmt.Errorf("unknown format %q, expected one of %v", c.Format, formats)
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	suffixes := []struct {
		name, value string
	}{
		{"shadow_separator", c.Suffixes.ShadowSeparator},
		{"method_collision", c.Suffixes.MethodCollision},
		{"argument", c.Suffixes.Argument},
	}
	for _, suffix := range suffixes {
		if err := validateSuffix(suffix.value); err != nil {
			return fmt.Errorf("suffix %s: %w", suffix.name, err)
		}
	}
	return nil
}

// A suffix has to keep the renamed identifier valid in both Java and Go
func validateSuffix(suffix string) error {
	if suffix == "" {
		return errors.New("must not be empty")
	}
	for _, char := range suffix {
		if char != '_' && !unicode.IsLetter(char) && !unicode.IsDigit(char) {
			return fmt.Errorf("%q is not valid in an identifier", char)
		}
	}
	return nil
}

// RenameSuffixes converts the suffixes into the form the rename pass uses
func (c Config) RenameSuffixes() rename.Suffixes {
	return rename.Suffixes{
		ShadowSeparator: c.Suffixes.ShadowSeparator,
		MethodCollision: c.Suffixes.MethodCollision,
		Argument:        c.Suffixes.Argument,
	}
}
