// Package config loads visgraph command settings from defaults, an optional
// TOML or YAML file, VISGRAPH_* environment variables and bound flags, in
// increasing order of precedence.
package config

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/katalvlaran/visgraph/visibility"
)

// EnvPrefix prefixes every environment override, e.g. VISGRAPH_GRAPH_TYPE.
const EnvPrefix = "VISGRAPH"

// Config is the full command configuration.
type Config struct {
	Graph  GraphConfig  `mapstructure:"graph" toml:"graph" yaml:"graph"`
	Output OutputConfig `mapstructure:"output" toml:"output" yaml:"output"`
	Log    LogConfig    `mapstructure:"log" toml:"log" yaml:"log"`
}

// GraphConfig mirrors visibility.Config in token form.
type GraphConfig struct {
	Type            string   `mapstructure:"type" toml:"type" yaml:"type"`
	Alpha           float64  `mapstructure:"alpha" toml:"alpha" yaml:"alpha"`
	Directed        string   `mapstructure:"directed" toml:"directed" yaml:"directed"`
	Weighted        string   `mapstructure:"weighted" toml:"weighted" yaml:"weighted"`
	MinWeight       *float64 `mapstructure:"min_weight" toml:"min_weight,omitempty" yaml:"min_weight,omitempty"`
	MaxWeight       *float64 `mapstructure:"max_weight" toml:"max_weight,omitempty" yaml:"max_weight,omitempty"`
	PenetrableLimit int      `mapstructure:"penetrable_limit" toml:"penetrable_limit" yaml:"penetrable_limit"`
	DualPerspective bool     `mapstructure:"dual_perspective" toml:"dual_perspective" yaml:"dual_perspective"`
	Concurrent      bool     `mapstructure:"concurrent" toml:"concurrent" yaml:"concurrent"`
}

// OutputConfig selects what the build command prints and how.
type OutputConfig struct {
	Mode   string `mapstructure:"mode" toml:"mode" yaml:"mode"`
	Format string `mapstructure:"format" toml:"format" yaml:"format"`
}

// LogConfig controls the command logger.
type LogConfig struct {
	JSON      bool `mapstructure:"json" toml:"json" yaml:"json"`
	Verbosity int  `mapstructure:"verbosity" toml:"verbosity" yaml:"verbosity"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("graph.type", "natural")
	v.SetDefault("graph.alpha", 1.0)
	v.SetDefault("graph.directed", "")
	v.SetDefault("graph.weighted", "")
	v.SetDefault("graph.penetrable_limit", 0)
	v.SetDefault("graph.dual_perspective", false)
	v.SetDefault("graph.concurrent", false)

	v.SetDefault("output.mode", "el")
	v.SetDefault("output.format", "text")

	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)
}

// Default returns the configuration produced by SetDefaults alone.
func Default() Config {
	return Config{
		Graph:  GraphConfig{Type: "natural", Alpha: 1.0},
		Output: OutputConfig{Mode: "el", Format: "text"},
	}
}

// NewViper returns a viper instance with defaults and environment binding.
// A non-empty file is read as the config file; its type follows the extension.
func NewViper(file string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	// Keys without a default are unknown to AutomaticEnv until bound.
	for _, key := range []string{"graph.min_weight", "graph.max_weight"} {
		if err := v.BindEnv(key); err != nil {
			return nil, errors.Wrapf(err, "bind env %s", key)
		}
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", file)
		}
	}

	return v, nil
}

// Load decodes the merged settings of v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	return &cfg, nil
}

// Visibility resolves the graph section into a validated visibility.Config.
// Errors wrap visibility.ErrConfiguration.
func (g GraphConfig) Visibility() (visibility.Config, error) {
	family, err := visibility.ParseFamily(g.Type, g.Alpha)
	if err != nil {
		return visibility.Config{}, err
	}
	dir, err := visibility.ParseDirection(g.Directed)
	if err != nil {
		return visibility.Config{}, err
	}
	weight, err := visibility.ParseWeightKind(g.Weighted)
	if err != nil {
		return visibility.Config{}, err
	}

	opts := []visibility.Option{
		visibility.WithDirection(dir),
		visibility.WithWeight(weight),
		visibility.WithPenetrableLimit(g.PenetrableLimit),
		visibility.WithDualPerspective(g.DualPerspective),
		visibility.WithConcurrentPasses(g.Concurrent),
	}
	if g.MinWeight != nil {
		opts = append(opts, visibility.WithMinWeight(*g.MinWeight))
	}
	if g.MaxWeight != nil {
		opts = append(opts, visibility.WithMaxWeight(*g.MaxWeight))
	}

	return visibility.NewConfig(family, opts...)
}

// WriteTOML encodes cfg as TOML.
func WriteTOML(w io.Writer, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	_, err = w.Write(data)

	return errors.Wrap(err, "write config")
}
