// Package config loads tagcheck settings from defaults, an optional JSON file
// and TAGCHECK_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	apperrors "github.com/ariel-frischer/tagcheck/internal/errors"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultFileName is the config file looked up in the project root.
const DefaultFileName = ".tagcheck.json"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "TAGCHECK_"

// Configuration represents the tagcheck settings.
// Keys follow the same lower-camel-case contract the tool enforces.
type Configuration struct {
	Verbose     bool   `koanf:"verbose" json:"verbose" yaml:"verbose"`
	CheckFields bool   `koanf:"checkFields" json:"checkFields" yaml:"checkFields"`
	Debug       bool   `koanf:"debug" json:"debug" yaml:"debug"`
	NoColor     bool   `koanf:"noColor" json:"noColor" yaml:"noColor"`
	TagKey      string `koanf:"tagKey" json:"tagKey" yaml:"tagKey" validate:"required,oneof=json yaml"`

	Tags TagsConfig `koanf:"tags" json:"tags" yaml:"tags"`
	Keys KeysConfig `koanf:"keys" json:"keys" yaml:"keys"`
}

// TagsConfig selects the source files scanned for struct tags.
type TagsConfig struct {
	Extensions  []string `koanf:"extensions" json:"extensions" yaml:"extensions" validate:"required,min=1,dive,startswith=."`
	ExcludeDirs []string `koanf:"excludeDirs" json:"excludeDirs" yaml:"excludeDirs" validate:"dive,required,excludesall=/\\"`
}

// KeysConfig selects the YAML documents whose keys are validated.
type KeysConfig struct {
	Extensions   []string `koanf:"extensions" json:"extensions" yaml:"extensions" validate:"required,min=1,dive,startswith=."`
	ExcludeDirs  []string `koanf:"excludeDirs" json:"excludeDirs" yaml:"excludeDirs" validate:"dive,required,excludesall=/\\"`
	ExcludeFiles []string `koanf:"excludeFiles" json:"excludeFiles" yaml:"excludeFiles" validate:"dive,required,excludesall=/\\"`
}

// Load loads configuration from defaults, the JSON file at path and the environment.
// Priority: Environment variables > config file > defaults.
// A missing file is ignored unless mustExist is set. The result is not
// validated: callers apply command-line overrides first, then call Validate.
func Load(path string, mustExist bool) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			if err := k.Load(file.Provider(path), json.Parser()); err != nil {
				return nil, apperrors.ConfigLoadFailed(path, err)
			}
		case mustExist || !os.IsNotExist(err):
			return nil, apperrors.ConfigLoadFailed(path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, apperrors.ConfigLoadFailed("environment", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, apperrors.ConfigLoadFailed(path, fmt.Errorf("decoding: %w", err))
	}
	return &cfg, nil
}

// Validate checks cfg against its struct rules.
func Validate(cfg *Configuration) error {
	if err := validator.New().Struct(cfg); err != nil {
		return apperrors.ConfigInvalid(err)
	}
	return nil
}

// envTransform converts environment variable names to config keys.
// A double underscore separates nesting levels.
// Example: TAGCHECK_CHECK_FIELDS -> checkFields, TAGCHECK_KEYS__EXCLUDE_FILES -> keys.excludeFiles
func envTransform(s string) string {
	parts := strings.Split(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__")
	for i, part := range parts {
		parts[i] = lowerCamel(part)
	}
	return strings.Join(parts, ".")
}

func lowerCamel(snake string) string {
	words := strings.Split(snake, "_")
	var b strings.Builder
	for i, w := range words {
		if w == "" {
			continue
		}
		if i == 0 || b.Len() == 0 {
			b.WriteString(w)
			continue
		}
		b.WriteString(strings.ToUpper(w[:1]) + w[1:])
	}
	return b.String()
}
