package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/history-timeline/internal/app"
	"github.com/atomicstack/history-timeline/internal/catalog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

// ErrHelp is returned when the caller asked for usage instead of a run.
var ErrHelp = errors.New("help requested")

const (
	appName   = "history-timeline"
	envPrefix = "HISTORY_TIMELINE_"

	defaultCompactWidth  = 80
	defaultAlignDelay    = 100 * time.Millisecond
	defaultFrameInterval = 16 * time.Millisecond
)

// Config captures runtime configuration for the application.
type Config struct {
	App        app.Config
	Logging    Logging
	ConfigFile string
	Flags      map[string]string
	Args       []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Values resolve
// as flag, then environment, then config file, then default.
func LoadArgs(args []string, environ []string) (Config, error) {
	cmd := newCommand()
	ran := false
	cmd.RunE = func(*cobra.Command, []string) error {
		ran = true
		return nil
	}
	cmd.SetArgs(append([]string{}, args...))
	if err := cmd.Execute(); err != nil {
		return Config{}, err
	}
	if !ran {
		return Config{}, ErrHelp
	}

	fs := cmd.Flags()
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}
	applyEnv(v, fs, parseEnv(environ))

	configFile := strings.TrimSpace(v.GetString("config"))
	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	category, err := catalog.ParseCategory(v.GetString("category"))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			CatalogPath:   v.GetString("catalog"),
			Category:      category,
			Width:         v.GetInt("width"),
			Height:        v.GetInt("height"),
			ShowFooter:    v.GetBool("footer"),
			CompactWidth:  v.GetInt("compact-width"),
			AlignDelay:    v.GetDuration("align-delay"),
			FrameInterval: v.GetDuration("frame-interval"),
			Watch:         v.GetBool("watch"),
		},
		Logging: Logging{
			FilePath: v.GetString("log-file"),
			Trace:    v.GetBool("trace"),
		},
		ConfigFile: configFile,
		Flags:      make(map[string]string),
		Args:       append([]string(nil), args...),
	}
	fs.VisitAll(func(f *pflag.Flag) {
		cfg.Flags[f.Name] = v.GetString(f.Name)
	})
	return cfg, nil
}

// Usage returns the command help text.
func Usage() string {
	return newCommand().UsageString()
}

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Browse a history timeline by age and by event",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.SetOut(new(strings.Builder))
	cmd.SetErr(new(strings.Builder))

	f := cmd.Flags()
	f.String("catalog", "", "path to a YAML or JSON event catalog (default: embedded data set)")
	f.String("category", string(catalog.All), "initial category tab")
	f.Int("width", 0, "desired viewport width in cells (0 uses terminal width)")
	f.Int("height", 0, "desired viewport height in rows (0 uses terminal height)")
	f.Bool("footer", false, "enable footer hint row (disabled by default)")
	f.Int("compact-width", defaultCompactWidth, "terminal width below which the compact layout is used")
	f.Duration("align-delay", defaultAlignDelay, "delay before aligning to the first event after a category change")
	f.Duration("frame-interval", defaultFrameInterval, "interval between smooth scroll frames")
	f.Bool("watch", false, "reload the catalog file when it changes")
	f.Bool("trace", false, "enable verbose JSON trace logging")
	f.String("log-file", "", "path to the log file")
	f.String("config", "", "path to a YAML config file")
	return cmd
}

// applyEnv overlays HISTORY_TIMELINE_* variables for flags not set on the
// command line. Unparseable values are ignored.
func applyEnv(v *viper.Viper, fs *pflag.FlagSet, env map[string]string) {
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			return
		}
		raw, ok := env[envName(f.Name)]
		if !ok || strings.TrimSpace(raw) == "" {
			return
		}
		switch f.Value.Type() {
		case "int":
			if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
				v.Set(f.Name, n)
			}
		case "bool":
			if b, err := strconv.ParseBool(strings.TrimSpace(raw)); err == nil {
				v.Set(f.Name, b)
			}
		case "duration":
			if d, err := time.ParseDuration(strings.TrimSpace(raw)); err == nil {
				v.Set(f.Name, d)
			}
		default:
			v.Set(f.Name, raw)
		}
	})
}

func envName(flag string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if errors.Is(err, ErrHelp) {
		fmt.Fprint(os.Stdout, Usage())
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks numeric ranges and reports every problem at once.
func Validate(cfg Config) error {
	var err error
	if cfg.App.Width < 0 {
		err = multierr.Append(err, fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width))
	}
	if cfg.App.Height < 0 {
		err = multierr.Append(err, fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height))
	}
	if cfg.App.CompactWidth < 0 {
		err = multierr.Append(err, fmt.Errorf("compact-width must be >= 0 (got %d)", cfg.App.CompactWidth))
	}
	if cfg.App.AlignDelay < 0 {
		err = multierr.Append(err, fmt.Errorf("align-delay must be >= 0 (got %s)", cfg.App.AlignDelay))
	}
	if cfg.App.FrameInterval <= 0 {
		err = multierr.Append(err, fmt.Errorf("frame-interval must be > 0 (got %s)", cfg.App.FrameInterval))
	}
	if !cfg.App.Category.Valid() {
		err = multierr.Append(err, fmt.Errorf("%w: %q", catalog.ErrUnknownCategory, cfg.App.Category))
	}
	return err
}
