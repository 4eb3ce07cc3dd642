// Config loading for the madlib CLI.
package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/storyforge/madlib/internal/paths"
	"github.com/storyforge/madlib/internal/story"
)

const (
	// Config keys.
	cfgKeySeed        = "seed"
	cfgKeyPlaceholder = "placeholder"
	cfgKeyBankPath    = "bank_path"
)

// cfg holds the loaded configuration, set by initConfig before any
// command runs.
var cfg *viper.Viper

// initConfig resolves and reads the optional config file. A missing file
// is not an error and nothing is created; the defaults stand.
func initConfig(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	path, err := paths.ResolveConfigFile(flagConfig)
	if err != nil {
		return fmt.Errorf("resolve config file: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeySeed, int64(0))
	v.SetDefault(cfgKeyPlaceholder, story.DefaultPlaceholder)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	cfg = v
	return nil
}

// engineOptions builds story.Options from the loaded config.
func engineOptions() story.Options {
	if cfg == nil {
		return story.Options{}
	}
	return story.Options{
		Seed:        cfg.GetInt64(cfgKeySeed),
		Placeholder: cfg.GetString(cfgKeyPlaceholder),
	}
}
