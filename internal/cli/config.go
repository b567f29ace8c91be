package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridpath/pkg/errors"
)

const (
	defaultSize      = 40
	defaultCellWidth = 2
	defaultStepDelay = 15 * time.Millisecond
	configFileName   = "config.toml"
)

// Config holds the settings read from config.toml. Command flags override
// individual values.
type Config struct {
	Size        int      `toml:"size"`
	CellWidth   int      `toml:"cell_width"`
	StepDelay   duration `toml:"step_delay"`
	Diagnostics bool     `toml:"diagnostics"`
}

// duration decodes TOML strings such as "15ms" with time.ParseDuration.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func defaultConfig() Config {
	return Config{
		Size:      defaultSize,
		CellWidth: defaultCellWidth,
		StepDelay: duration{defaultStepDelay},
	}
}

// validate checks every value against the limits in pkg/errors.
func (c Config) validate() error {
	if err := errors.ValidateDimension(c.Size); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "size: %s", errors.UserMessage(err))
	}
	if err := errors.ValidateCellWidth(c.CellWidth); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "cell_width: %s", errors.UserMessage(err))
	}
	if err := errors.ValidateStepDelay(c.StepDelay.Duration); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "step_delay: %s", errors.UserMessage(err))
	}
	return nil
}

// configDir returns the config directory using XDG standard (~/.config/gridpath/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// loadConfig reads the config file at path on top of the defaults. An
// empty path means the XDG location, where a missing file is not an error.
// An explicit path must exist.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, configFileName)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// boardFlags are the config overrides shared by play and solve.
type boardFlags struct {
	size      int
	cellWidth int
	delay     time.Duration
}

func (f *boardFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.size, "size", "n", defaultSize, "grid dimension (cells per side)")
	cmd.Flags().IntVar(&f.cellWidth, "cell-width", defaultCellWidth, "terminal columns per cell")
	cmd.Flags().DurationVar(&f.delay, "delay", defaultStepDelay, "pause between two search steps")
}

// apply overrides cfg with the flags the user actually set.
func (f *boardFlags) apply(cmd *cobra.Command, cfg Config) (Config, error) {
	if cmd.Flags().Changed("size") {
		cfg.Size = f.size
	}
	if cmd.Flags().Changed("cell-width") {
		cfg.CellWidth = f.cellWidth
	}
	if cmd.Flags().Changed("delay") {
		cfg.StepDelay = duration{f.delay}
	}
	if err := cfg.validate(); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "%s", errors.UserMessage(err))
	}
	return cfg, nil
}
