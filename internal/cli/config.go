package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix is prepended to every flag name to form its environment variable
const envPrefix = "UNIQUEPICK"

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds CLI configuration
type Config struct {
	Output    string
	LogFormat string
	Verbose   bool

	// play command
	Players int
	Names   []string
	Bots    []string
	Rounds  int
	Reveal  bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Output:    FormatText,
		LogFormat: FormatText,
	}
}

func (c *Config) validate() error {
	formats := []string{FormatText, FormatJSON}
	if !slices.Contains(formats, c.Output) {
		return fmt.Errorf("invalid --output %q (must be text or json)", c.Output)
	}
	if !slices.Contains(formats, c.LogFormat) {
		return fmt.Errorf("invalid --log-format %q (must be text or json)", c.LogFormat)
	}
	if c.Players < 0 {
		return fmt.Errorf("invalid --players %d (must not be negative)", c.Players)
	}
	if c.Rounds < 0 {
		return fmt.Errorf("invalid --rounds %d (must not be negative)", c.Rounds)
	}
	return nil
}

// newViper returns a viper instance reading UNIQUEPICK_* environment variables
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// bindEnv lets every flag in fs default from its environment variable.
// Flags set on the command line still win.
func bindEnv(v *viper.Viper, fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, v.GetString(f.Name))
		}
	})
}
