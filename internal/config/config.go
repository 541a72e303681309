package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/assetkit/internal/foundation/errors"
)

// CurrentVersion is the only configuration schema version understood by this build.
const CurrentVersion = "1"

// Config represents the assetkit configuration.
type Config struct {
	Version string        `yaml:"version"`
	Extract ExtractConfig `yaml:"extract"`
	Vocab   VocabConfig   `yaml:"vocab"`
}

// ExtractConfig lists the sections carved out of combined assets.
type ExtractConfig struct {
	Sections []Section `yaml:"sections"`
}

// Section describes one marker-delimited region copied into a standalone file.
type Section struct {
	Name         string `yaml:"name"`
	Source       string `yaml:"source"`
	Output       string `yaml:"output"`
	StartMarker  string `yaml:"start_marker"`
	AnchorMarker string `yaml:"anchor_marker,omitempty"` // must follow the start marker
	EndMarker    string `yaml:"end_marker,omitempty"`    // last occurrence, exclusive; empty means end of document
	Template     string `yaml:"template"`                // built-in preamble/epilogue set
}

// VocabConfig configures the vocabulary index builder.
type VocabConfig struct {
	SourceDir string `yaml:"source_dir"`
	IndexDir  string `yaml:"index_dir,omitempty"` // defaults to <source_dir>/index
	Banks     []Bank `yaml:"banks"`
}

// Bank maps a bank identifier to its ordered source files.
type Bank struct {
	ID    string   `yaml:"id"`
	Files []string `yaml:"files"`
}

// BankByID returns the configured bank with the given id.
func (v *VocabConfig) BankByID(id string) (Bank, bool) {
	for _, b := range v.Banks {
		if b.ID == id {
			return b, true
		}
	}
	return Bank{}, false
}

// SectionByName returns the configured section with the given name.
func (e *ExtractConfig) SectionByName(name string) (Section, bool) {
	for _, s := range e.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// Load loads configuration from configPath. A missing file is not an error: the
// built-in defaults reproduce the reference asset layout.
func Load(configPath string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	// #nosec G304 - configPath is an operator-supplied CLI flag
	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("Configuration file not found, using defaults", "path", configPath)
		cfg := Default()
		return cfg, nil
	}
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to read config file").
			Fatal().
			WithContext("path", configPath).
			Build()
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML configuration data, expands environment variables in path
// fields, applies defaults and validates the result. Markers are kept verbatim.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, ferrors.WrapError(err, ferrors.CategoryValidation, "failed to unmarshal config").Fatal().Build()
	}

	if cfg.Version == "" {
		cfg.Version = CurrentVersion
	}
	if cfg.Version != CurrentVersion {
		return nil, ferrors.ValidationError(fmt.Sprintf("unsupported configuration version: %s (expected %s)", cfg.Version, CurrentVersion)).Build()
	}

	expandPaths(&cfg)
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryValidation, "configuration validation failed").Fatal().Build()
	}
	return &cfg, nil
}

func expandPaths(cfg *Config) {
	for i := range cfg.Extract.Sections {
		s := &cfg.Extract.Sections[i]
		s.Source = os.ExpandEnv(s.Source)
		s.Output = os.ExpandEnv(s.Output)
	}
	cfg.Vocab.SourceDir = os.ExpandEnv(cfg.Vocab.SourceDir)
	cfg.Vocab.IndexDir = os.ExpandEnv(cfg.Vocab.IndexDir)
}

// Init writes the default configuration to configPath.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).
			Build()
	}

	data, err := Marshal(Default())
	if err != nil {
		return err
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil { // #nosec G306 -- config is not secret
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write config file").
			WithContext("path", configPath).
			Build()
	}
	return nil
}

// Marshal renders cfg as YAML with a short header.
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("# assetkit configuration\n")
	buf.WriteString("# Paths are relative to the working directory; ${VAR} references in source, output, source_dir and index_dir are expanded.\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryInternal, "failed to marshal config").Build()
	}
	if err := enc.Close(); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryInternal, "failed to marshal config").Build()
	}
	return buf.Bytes(), nil
}
