package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// SourceEmbedded is reported by Load when no config file was found.
const SourceEmbedded = "embedded defaults"

// ParseFormat converts a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("config: unknown format %q (want yaml or toml)", name)
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("config: %s has no extension, cannot tell yaml from toml", path)
	}
	return ParseFormat(ext)
}

// Load loads the block breaker configuration and reports where it came from.
// Search order: customPath -> ~/.blockbreaker/blockbreaker.{yaml,toml} ->
// ./configs/blockbreaker.{yaml,toml} -> embedded default.
// Only an explicit customPath produces an error; broken files found on the
// search path are skipped with a warning on logger, which may be nil.
func Load(customPath string, logger *log.Logger) (Config, string, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := LoadFile(path)
		if err != nil {
			logger.Warn("skipping config file", "path", path, "error", err)
			continue
		}
		return cfg, path, nil
	}

	cfg, err := Decode(defaultYAML, FormatYAML)
	if err != nil {
		return DefaultConfig(), "built-in defaults", nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// LoadFile reads and validates a single config file.
func LoadFile(path string) (Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return DefaultConfig(), err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Decode(data, format)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("config: invalid %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses data on top of DefaultConfig, so files only need to list overrides.
// Unknown keys are rejected.
func Decode(data []byte, format Format) (Config, error) {
	cfg := DefaultConfig()

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, err
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return cfg, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			sort.Strings(keys)
			return cfg, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
		}
	default:
		return cfg, fmt.Errorf("config: unknown format %q", format)
	}
	return cfg, nil
}

// Encode writes cfg in the given format.
func Encode(w io.Writer, cfg Config, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("config: encode yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(cfg); err != nil {
			return fmt.Errorf("config: encode toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("config: unknown format %q", format)
	}
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if dir := userConfigDir(); dir != "" {
		paths = append(paths,
			filepath.Join(dir, "blockbreaker.yaml"),
			filepath.Join(dir, "blockbreaker.toml"),
		)
	}
	return append(paths,
		filepath.Join("configs", "blockbreaker.yaml"),
		filepath.Join("configs", "blockbreaker.toml"),
	)
}

// userConfigDir returns ~/.blockbreaker, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockbreaker")
}
