// Package config loads preset files that seed a preprocessing
// context: an initial macro table and the exec permission.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for preset operations.
var (
	ErrEmptyPresetName  = errors.New("preset name cannot be empty")
	ErrPresetNotFound   = errors.New("preset file not found")
	ErrPresetParse      = errors.New("failed to parse preset")
	ErrPresetTooLarge   = errors.New("preset file exceeds maximum size")
	ErrInvalidMacroName = errors.New("invalid macro name")
)

// MaxPresetSize bounds a preset file (1 MiB); presets are small
// hand-written YAML, anything bigger is a mistake.
const MaxPresetSize = 1 << 20

// configDirName is the subdirectory of the user config directory
// searched for presets referenced by name.
const configDirName = "go-gpp"

// Preset is the on-disk YAML shape:
//
//	macros:
//	  VERSION: 1.2.3
//	  DEBUG: ""
//	allowExec: false
type Preset struct {
	// Macros seeds the context's macro table.
	Macros map[string]string `yaml:"macros"`
	// AllowExec enables the #exec command family. The CLI's
	// --allow-exec flag ORs with this.
	AllowExec bool `yaml:"allowExec"`
}

// Load reads a preset from a file path or preset name. A string
// containing a path separator is treated as a path; otherwise it is a
// name searched as NAME.yaml / NAME.yml in the current directory and
// then in the user config directory under go-gpp/. Unknown YAML keys
// are rejected.
func Load(nameOrPath string) (*Preset, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyPresetName
	}

	path := nameOrPath
	if !isFilePath(nameOrPath) {
		resolved, err := resolvePresetPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		path = resolved
	}

	data, err := os.ReadFile(path) // #nosec G304 -- preset path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, path)
		}
		return nil, fmt.Errorf("reading preset file: %w", err)
	}
	if len(data) > MaxPresetSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrPresetTooLarge, len(data), MaxPresetSize)
	}

	var p Preset
	if err := yaml.UnmarshalWithOptions(data, &p, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPresetParse, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks macro names. Values are unrestricted; names must be
// non-empty and free of whitespace so they can stand as words in text.
func (p *Preset) Validate() error {
	for name := range p.Macros {
		if name == "" || strings.ContainsAny(name, " \t\n") {
			return fmt.Errorf("%w: %q", ErrInvalidMacroName, name)
		}
	}
	return nil
}

// isFilePath returns true if the string looks like a file path rather
// than a preset name.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolvePresetPath searches for a preset by name, trying .yaml then
// .yml in the current directory, then the user config directory.
func resolvePresetPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	tried := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		local := name + ext
		if fileExists(local) {
			return local, nil
		}
		tried = append(tried, local)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, configDirName, name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			tried = append(tried, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrPresetNotFound, strings.Join(tried, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
