package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/isaacfidler/cratedig/pkg/errors"
	"github.com/isaacfidler/cratedig/pkg/logging"
)

// UserConfigFile is the name of the optional user configuration file.
const UserConfigFile = "cratedig.toml"

// Load builds the effective configuration: embedded defaults, then the
// user's config file if one exists.
func Load() (*Config, error) {
	return LoadFrom(UserConfigPath())
}

// LoadFrom builds the effective configuration using an explicit user config
// path. The file is optional; the embedded defaults alone are a complete
// configuration.
func LoadFrom(userConfigPath string) (*Config, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load embedded defaults")
	}

	if userConfigPath != "" {
		if _, err := os.Stat(userConfigPath); err == nil {
			if err := k.Load(file.Provider(userConfigPath), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse,
					"failed to parse config file %s", userConfigPath)
			}
			logger.Debug().Str("path", userConfigPath).Msg("Loaded user config")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	logger.Debug().
		Int("oneShotCategories", len(cfg.Classify.OneShots)).
		Int("loopCategories", len(cfg.Classify.Loops)).
		Int("genreGroups", len(cfg.Classify.Genres)).
		Msg("Configuration loaded")

	return &cfg, nil
}

// UserConfigPath returns the location of the optional user config file.
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "cratedig", UserConfigFile)
}

func validate(cfg *Config) error {
	switch cfg.Classify.UnmatchedKind {
	case UnmatchedOneShot, UnmatchedUnclassified:
	default:
		return errors.Newf(errors.ErrConfigValid,
			"classify.unmatched_kind must be %q or %q, got %q",
			UnmatchedOneShot, UnmatchedUnclassified, cfg.Classify.UnmatchedKind)
	}

	if len(cfg.Classify.Extensions) == 0 {
		return errors.New(errors.ErrConfigValid, "classify.extensions must not be empty")
	}

	for _, rule := range append(append([]CategoryRule{}, cfg.Classify.OneShots...), cfg.Classify.Loops...) {
		if rule.Name == "" {
			return errors.New(errors.ErrConfigValid, "category rule with empty name")
		}
		if len(rule.Patterns) == 0 {
			return errors.Newf(errors.ErrConfigValid, "category %s has no patterns", rule.Name)
		}
	}

	for _, group := range cfg.Classify.Genres {
		if group.Group == "" {
			return errors.New(errors.ErrConfigValid, "genre group with empty name")
		}
		for _, entry := range group.Entries {
			if entry.Name == "" || len(entry.Patterns) == 0 {
				return errors.Newf(errors.ErrConfigValid,
					"genre entry in group %s is incomplete", group.Group)
			}
		}
	}

	return nil
}
