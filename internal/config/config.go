// Package config gathers the command-line and config-file options of the
// automata tools.
package config

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/gfxprim/automata/internal/core"
	"github.com/gfxprim/automata/internal/sims/elementary"
)

// Options represents every tunable of a run, its export and its viewer.
type Options struct {
	Width      int    `mapstructure:"width" yaml:"width"`
	Height     int    `mapstructure:"height" yaml:"height"`
	Init       string `mapstructure:"init" yaml:"init"`
	Random     bool   `mapstructure:"random" yaml:"random"`
	Seed       int64  `mapstructure:"seed" yaml:"seed"`
	Rules      string `mapstructure:"rules" yaml:"rules"`
	MetaRule   int    `mapstructure:"meta-rule" yaml:"meta-rule"`
	Meta       bool   `mapstructure:"meta" yaml:"meta"`
	Reversible bool   `mapstructure:"reversible" yaml:"reversible"`
	Workers    int    `mapstructure:"workers" yaml:"workers"`
	Scale      int    `mapstructure:"scale" yaml:"scale"`
	OutWidth   int    `mapstructure:"out-width" yaml:"out-width"`
	OutHeight  int    `mapstructure:"out-height" yaml:"out-height"`
	Output     string `mapstructure:"output" yaml:"output"`
	TPS        int    `mapstructure:"tps" yaml:"tps"`
}

// Defaults returns the options used when neither flags nor a config file
// say otherwise.
func Defaults() Options {
	d := elementary.DefaultConfig()
	return Options{
		Width:  d.Width,
		Height: d.Height,
		Seed:   42,
		Rules:  d.Rules.String(),
		Scale:  1,
		Output: "1dca.png",
		TPS:    60,
	}
}

// Bind registers the options as flags on fs with the defaults of o.
func (o *Options) Bind(fs *pflag.FlagSet) {
	fs.IntVarP(&o.Width, "width", "W", o.Width, "row width in 64-cell words")
	fs.IntVarP(&o.Height, "height", "H", o.Height, "number of generations, including the initial row")
	fs.StringVar(&o.Init, "init", o.Init, "initial row as raw bytes; empty seeds a single centered cell")
	fs.BoolVar(&o.Random, "random", o.Random, "seed the initial row randomly")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "seed for --random")
	fs.StringVarP(&o.Rules, "rules", "r", o.Rules, "rule codes 0-255 separated by commas or semicolons")
	fs.IntVar(&o.MetaRule, "meta-rule", o.MetaRule, "meta-rule code 0-255")
	fs.BoolVar(&o.Meta, "meta", o.Meta, "select rules with the meta-rule")
	fs.BoolVar(&o.Reversible, "reversible", o.Reversible, "use the second-order reversible update")
	fs.IntVar(&o.Workers, "workers", o.Workers, "goroutines stepping each row (0 or 1 is serial)")
	fs.IntVar(&o.Scale, "scale", o.Scale, "integer pixel scale of the output")
	fs.IntVar(&o.OutWidth, "out-width", o.OutWidth, "sampled width in pixels before scaling (0 is one pixel per cell)")
	fs.IntVar(&o.OutHeight, "out-height", o.OutHeight, "sampled height in pixels before scaling (0 is one pixel per row)")
	fs.StringVarP(&o.Output, "output", "o", o.Output, "output image path")
	fs.IntVar(&o.TPS, "tps", o.TPS, "rows revealed per second in the viewer")
}

// Load merges the flags in fs over the YAML file at path and the defaults.
// Flags that were set explicitly win over the file. An empty path skips
// the file.
func Load(fs *pflag.FlagSet, path string) (Options, error) {
	vp := viper.New()
	def := Defaults()
	for key, value := range defaultMap(def) {
		vp.SetDefault(key, value)
	}
	if fs != nil {
		if err := vp.BindPFlags(fs); err != nil {
			return Options{}, fmt.Errorf("bind flags: %w", err)
		}
	}
	if path != "" {
		vp.SetConfigFile(path)
		vp.SetConfigType("yaml")
		if err := vp.ReadInConfig(); err != nil {
			return Options{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var opts Options
	if err := vp.Unmarshal(&opts); err != nil {
		return Options{}, fmt.Errorf("decode config: %w", err)
	}
	return opts, nil
}

func defaultMap(o Options) map[string]any {
	var spec []byte
	var m map[string]any
	spec, _ = yaml.Marshal(o)
	_ = yaml.Unmarshal(spec, &m)
	return m
}

// Validate checks ranges that the simulator cannot check itself.
func (o Options) Validate() error {
	if o.MetaRule < 0 || o.MetaRule > 255 {
		return core.ConfigError("config", "meta-rule %d not in 0..255", o.MetaRule)
	}
	if o.Scale < 1 {
		return core.ConfigError("config", "scale must be at least 1, got %d", o.Scale)
	}
	if o.OutWidth < 0 || o.OutHeight < 0 {
		return core.ConfigError("config", "output size %dx%d is negative", o.OutWidth, o.OutHeight)
	}
	if o.Workers < 0 {
		return core.ConfigError("config", "workers must not be negative, got %d", o.Workers)
	}
	return nil
}

// SimConfig translates the options into a simulator configuration.
func (o Options) SimConfig() (elementary.Config, error) {
	if err := o.Validate(); err != nil {
		return elementary.Config{}, err
	}
	rules, err := elementary.ParseTable(o.Rules)
	if err != nil {
		return elementary.Config{}, err
	}
	return elementary.Config{
		Width:      o.Width,
		Height:     o.Height,
		Rules:      rules,
		Meta:       elementary.MetaRule{Code: uint8(o.MetaRule), Enabled: o.Meta},
		Reversible: o.Reversible,
		Workers:    o.Workers,
	}, nil
}

// NewSimulator builds a simulator with its initial condition applied.
func (o Options) NewSimulator() (*elementary.Simulator, error) {
	cfg, err := o.SimConfig()
	if err != nil {
		return nil, err
	}
	sim, err := elementary.New(cfg)
	if err != nil {
		return nil, err
	}
	if o.Random {
		sim.SeedRandom(o.Seed)
	} else {
		sim.SetInitialCondition([]byte(o.Init))
	}
	return sim, nil
}

// OutputSize returns the sampled raster size for a history of the given
// dimensions.
func (o Options) OutputSize(s core.Size) (int, int) {
	w, h := o.OutWidth, o.OutHeight
	if w == 0 {
		w = s.Cells()
	}
	if h == 0 {
		h = s.H
	}
	return w, h
}

// Dump writes the options as YAML.
func Dump(w io.Writer, o Options) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(o); err != nil {
		return err
	}
	return enc.Close()
}
