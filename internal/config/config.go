package config

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"ytpick/internal/dirs"
)

// EnvPrefix is prepended to every environment override, e.g. YTPICK_OUTPUT.
const EnvPrefix = "YTPICK"

// Keys bound to flags. Flag names and config keys are the same.
var (
	flagKeys       = []string{"output", "console", "playlist"}
	persistentKeys = []string{"verbose", "dl-binary"}
)

// lookupFlag finds name among the command's own, persistent and inherited flags.
func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f
	}
	if f := cmd.PersistentFlags().Lookup(name); f != nil {
		return f
	}
	return cmd.InheritedFlags().Lookup(name)
}

// Settings are the resolved values after flag, env and file precedence.
type Settings struct {
	Output   string
	Console  bool
	Playlist bool
	Verbose  bool
	DLBinary string
}

// Load wires a fresh Viper with the config path, env and the flags of root,
// and returns the resolved settings. A missing config file is not an error.
func Load(root *cobra.Command) (Settings, error) {
	v := viper.New()
	if err := initWith(v, root, ""); err != nil {
		return Settings{}, err
	}
	return fromViper(v), nil
}

func fromViper(v *viper.Viper) Settings {
	return Settings{
		Output:   v.GetString("output"),
		Console:  v.GetBool("console"),
		Playlist: v.GetBool("playlist"),
		Verbose:  v.GetBool("verbose"),
		DLBinary: v.GetString("dl-binary"),
	}
}

func initWith(v *viper.Viper, root *cobra.Command, cfgDir string) error {
	if cfgDir == "" {
		if d, err := dirs.ConfigDir(); err == nil {
			cfgDir = d
		}
	}
	if cfgDir != "" {
		v.AddConfigPath(cfgDir)
	}
	v.SetConfigName("config") // config.{yaml|yml|json|toml}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, k := range append(flagKeys, persistentKeys...) {
		if f := lookupFlag(root, k); f != nil {
			if err := v.BindPFlag(k, f); err != nil {
				return err
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}
	return nil
}
