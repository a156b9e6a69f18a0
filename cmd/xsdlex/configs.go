package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"gopkg.in/yaml.v3"

	"github.com/jacoelho/rdfxsd"
)

type MainConfig struct {
	Config    string `cli:"name=config desc='YAML file with namespace, format and color keys; quote a namespace ending in a colon'"`
	Format    string `cli:"name=format aliases=f desc='report format: text, json, yaml'"`
	Color     string `cli:"name=color desc='colour text reports: auto, always, never'"`
	Namespace string `cli:"name=namespace aliases=ns desc='datatype namespace URI'"`
	Verbose   bool   `cli:"name=v desc='debug logging on stderr'"`

	Main *cli.Command

	resolved *settings
}

type CheckConfig struct {
	*MainConfig
	Type string `cli:"name=type aliases=t desc='datatype local name or URI'"`

	Check *cli.Command
}

type CanonConfig struct {
	*MainConfig
	Diff bool `cli:"name=diff desc='show a character diff from input to canonical form'"`

	Canon *cli.Command
}

type CompareConfig struct {
	*MainConfig

	Compare *cli.Command
}

type TypesConfig struct {
	*MainConfig

	Types *cli.Command
}

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"

	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// settings is the merged configuration: defaults, then the config file, then
// flags.
type settings struct {
	Namespace string `yaml:"namespace"`
	Format    string `yaml:"format"`
	Color     string `yaml:"color"`
}

func defaultSettings() settings {
	return settings{
		Namespace: rdfxsd.DefaultNamespace,
		Format:    formatText,
		Color:     colorAuto,
	}
}

func loadSettings(path string) (settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return settings{}, fmt.Errorf("read config %s: %w", path, err)
	}
	var s settings
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return settings{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	return s, nil
}

func (s settings) merge(over settings) settings {
	if over.Namespace != "" {
		s.Namespace = over.Namespace
	}
	if over.Format != "" {
		s.Format = over.Format
	}
	if over.Color != "" {
		s.Color = over.Color
	}
	return s
}

func (s settings) validate() error {
	switch s.Format {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("unknown format %q", s.Format)
	}
	switch s.Color {
	case colorAuto, colorAlways, colorNever:
	default:
		return fmt.Errorf("unknown color mode %q", s.Color)
	}
	return rdfxsd.NewRegistryOptions().WithNamespace(s.Namespace).Validate()
}

func (cfg *MainConfig) settings() (settings, error) {
	s := defaultSettings()
	if cfg.Config != "" {
		file, err := loadSettings(cfg.Config)
		if err != nil {
			return settings{}, err
		}
		s = s.merge(file)
	}
	s = s.merge(settings{Namespace: cfg.Namespace, Format: cfg.Format, Color: cfg.Color})
	if err := s.validate(); err != nil {
		return settings{}, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return s, nil
}

func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case colorAlways:
		return true
	case colorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// env holds what every subcommand needs once settings are resolved.
type env struct {
	settings settings
	logger   *slog.Logger
	space    *rdfxsd.StdURISpace
	registry *rdfxsd.Registry
	palette  palette
}

func newEnv(s settings, logger *slog.Logger, out io.Writer) (*env, error) {
	space := rdfxsd.NewURISpace()
	opts := rdfxsd.NewRegistryOptions().
		WithNamespace(s.Namespace).
		WithLogger(logger)
	reg, err := rdfxsd.NewRegistry(space, opts)
	if err != nil {
		return nil, err
	}
	return &env{
		settings: s,
		logger:   logger,
		space:    space,
		registry: reg,
		palette:  newPalette(colorEnabled(s.Color, out)),
	}, nil
}

// resolve merges and validates the settings once; later calls are no-ops.
func (cfg *MainConfig) resolve() error {
	if cfg.resolved != nil {
		return nil
	}
	s, err := cfg.settings()
	if err != nil {
		return err
	}
	cfg.resolved = &s
	return nil
}

func (cfg *MainConfig) env(out io.Writer) (*env, error) {
	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	return newEnv(*cfg.resolved, newLogger(os.Stderr, cfg.Verbose), out)
}

func (e *env) close() {
	if err := e.registry.Close(); err != nil {
		e.logger.Warn("close registry", "error", err)
	}
	if live := e.space.Live(); live != 0 {
		e.logger.Warn("identifiers leaked", "live", live)
	}
}
