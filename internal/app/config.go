package app

import (
	"flag"
	"fmt"
	"io"

	"agelife/internal/frontend"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the command-line parameters for the application. Every
// field except ConfigFile and PrintConfig may also come from a YAML file;
// flags given on the command line win over the file.
type Config struct {
	Frontend    string `mapstructure:"frontend" yaml:"frontend"`
	Scale       int    `mapstructure:"scale" yaml:"scale"`
	TPS         int    `mapstructure:"tps" yaml:"tps"`
	Seed        int64  `mapstructure:"seed" yaml:"seed"`
	Generations int    `mapstructure:"generations" yaml:"generations"`
	LogLevel    string `mapstructure:"log_level" yaml:"log_level"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file,omitempty"`

	ConfigFile  string `mapstructure:"-" yaml:"-"`
	PrintConfig bool   `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Frontend:    "term",
		Scale:       20,
		TPS:         60,
		Generations: 50,
		LogLevel:    "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Frontend, "frontend", c.Frontend, "user interface: term, ebiten or headless")
	fs.IntVar(&c.Scale, "scale", c.Scale, "cell size in pixels (ebiten)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second (ebiten)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomize; 0 seeds from the clock")
	fs.IntVar(&c.Generations, "generations", c.Generations, "generations to play (headless)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "append logs to this file instead of stderr")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "optional YAML config file")
	fs.BoolVar(&c.PrintConfig, "print-config", c.PrintConfig, "print the effective config as YAML and exit")
}

// Load merges ConfigFile, when set, underneath the flags already parsed into fs.
func (c *Config) Load(fs *flag.FlagSet) error {
	if c.ConfigFile == "" {
		return nil
	}
	explicit := map[string]string{}
	fs.Visit(func(f *flag.Flag) {
		explicit[f.Name] = f.Value.String()
	})

	vp := viper.New()
	vp.SetConfigFile(c.ConfigFile)
	vp.SetConfigType("yaml")
	if err := vp.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", c.ConfigFile, err)
	}
	if err := vp.Unmarshal(c); err != nil {
		return fmt.Errorf("decode config %s: %w", c.ConfigFile, err)
	}

	for name, value := range explicit {
		if err := fs.Set(name, value); err != nil {
			return fmt.Errorf("reapply flag -%s: %w", name, err)
		}
	}
	return nil
}

// Validate rejects settings no front end can work with.
func (c *Config) Validate() error {
	if c.Frontend == "" {
		return fmt.Errorf("frontend must be set")
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.Generations < 0 {
		return fmt.Errorf("generations must not be negative, got %d", c.Generations)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return nil
}

// WriteYAML dumps the effective configuration.
func (c *Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}

// Options converts the configuration into front end options.
func (c *Config) Options(logger *log.Logger, out io.Writer) frontend.Options {
	return frontend.Options{
		Scale:       c.Scale,
		TPS:         c.TPS,
		Generations: c.Generations,
		Logger:      logger,
		Out:         out,
	}
}
