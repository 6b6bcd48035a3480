package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"minimax/meta"
	"minimax/searcher"
)

const (
	ModeExperiment = "experiment"
	ModeMatch      = "match"

	GameSequence = "sequence"
	GameLetters  = "letters"
	GameRepeat   = "repeat"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Mode       string `mapstructure:"mode"`
	Game       string `mapstructure:"game"`
	Plies      int    `mapstructure:"plies"`
	MaxPlies   int    `mapstructure:"max_plies"`
	Games      int    `mapstructure:"games"`
	MaxTurns   int    `mapstructure:"max_turns"`
	RootPolicy string `mapstructure:"root_policy"`
	LogLevel   string `mapstructure:"log_level"`
	OutputDir  string `mapstructure:"output_dir"`
	Word       string `mapstructure:"word"`
	Seed       uint64 `mapstructure:"seed"`
}

func defaults(v *viper.Viper) {
	v.SetDefault("mode", ModeExperiment)
	v.SetDefault("game", GameSequence)
	v.SetDefault("plies", meta.DEFAULT_PLIES)
	v.SetDefault("max_plies", meta.MAX_PLIES)
	v.SetDefault("games", meta.GAMES)
	v.SetDefault("max_turns", meta.MAX_TURNS)
	v.SetDefault("root_policy", searcher.TolerateTerminalRoot.String())
	v.SetDefault("log_level", zerolog.InfoLevel.String())
	v.SetDefault("output_dir", meta.OUTPUT_DIR)
	v.SetDefault("word", meta.WORD)
	v.SetDefault("seed", 1)
}

// Load reads the configuration from the defaults, then the YAML file at path
// if one is given, then MINIMAX_* environment variables.
func Load(path string) (Config, error) {
	v := viper.New()
	defaults(v)

	v.SetEnvPrefix("minimax")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "failed to read config %s", path)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode config")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	switch {
	case c.Mode != ModeExperiment && c.Mode != ModeMatch:
		return errors.Wrapf(ErrInvalid, "unknown mode %q", c.Mode)
	case c.Game != GameSequence && c.Game != GameLetters && c.Game != GameRepeat:
		return errors.Wrapf(ErrInvalid, "unknown game %q", c.Game)
	case c.Plies < 1:
		return errors.Wrapf(ErrInvalid, "plies must be positive, got %d", c.Plies)
	case c.MaxPlies < 1:
		return errors.Wrapf(ErrInvalid, "max plies must be positive, got %d", c.MaxPlies)
	case c.Games < 1:
		return errors.Wrapf(ErrInvalid, "games must be positive, got %d", c.Games)
	case c.MaxTurns < 1:
		return errors.Wrapf(ErrInvalid, "max turns must be positive, got %d", c.MaxTurns)
	case c.Game == GameLetters && strings.TrimSpace(c.Word) == "":
		return errors.Wrap(ErrInvalid, "the letter game needs a word")
	}
	if _, ok := searcher.ParseRootPolicy(c.RootPolicy); !ok {
		return errors.Wrapf(ErrInvalid, "unknown root policy %q", c.RootPolicy)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(ErrInvalid, "unknown log level %q", c.LogLevel)
	}
	return nil
}

// Policy returns the parsed root policy. Only valid after Validate.
func (c Config) Policy() searcher.RootPolicy {
	policy, _ := searcher.ParseRootPolicy(c.RootPolicy)
	return policy
}

func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
