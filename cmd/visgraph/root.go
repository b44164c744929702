package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/visgraph/internal/config"
	"github.com/katalvlaran/visgraph/internal/logging"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	configFile string
	v          *viper.Viper
	log        *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "visgraph",
		Short: "Visibility graphs from time series",
		Long: `visgraph maps a time series to its natural, horizontal or circular
visibility graph and prints the edge list or degree statistics.

Settings come from defaults, an optional --config file (TOML or YAML),
VISGRAPH_* environment variables and flags, in that order of precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "Config file (toml or yaml)")
	pf.CountP("verbose", "v", "Increase log verbosity (-v, -vv)")
	pf.Bool("log-json", false, "Emit logs as JSON")

	root.AddCommand(
		newBuildCmd(a),
		newGenerateCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)

	return root
}

// setup loads the settings and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	v, err := config.NewViper(a.configFile)
	if err != nil {
		return err
	}
	a.v = v

	if err := a.bind(cmd.Flags(), map[string]string{
		"verbose":  "log.verbosity",
		"log-json": "log.json",
	}); err != nil {
		return err
	}
	a.log = logging.New(v.GetBool("log.json"), v.GetInt("log.verbosity"))
	a.log.Debug("settings loaded", zap.String("config_file", v.ConfigFileUsed()))

	return nil
}

// bind attaches flags to viper keys; flags win only when set explicitly.
func (a *app) bind(fs *pflag.FlagSet, keys map[string]string) error {
	for name, key := range keys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := a.v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "bind flag --%s", name)
		}
	}

	return nil
}

// load decodes the merged settings.
func (a *app) load() (*config.Config, error) {
	return config.Load(a.v)
}
