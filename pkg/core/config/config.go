// ============================================================================
// debugger - Diagnostics facade
// ============================================================================
//
// Package:     config
// Description: Debugger settings from TOML/YAML files and the environment
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package config

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/msto63/debugger/pkg/core/console"
	"github.com/msto63/debugger/pkg/core/debugger"
)

// DefaultEnvPrefix is used by ApplyEnv when no prefix is given
const DefaultEnvPrefix = "DEBUGGER"

// Output names accepted in ConsoleSettings.Output
const (
	OutputStderr = "stderr"
	OutputStdout = "stdout"
	OutputSlog   = "slog"
)

// Format represents the settings file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto detects the format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Settings holds the debugger configuration
type Settings struct {
	// Enabled overrides the build-mode default when set
	Enabled *bool           `toml:"enabled" yaml:"enabled"`
	Level   string          `toml:"level" yaml:"level"`
	Console ConsoleSettings `toml:"console" yaml:"console"`
	Watch   WatchSettings   `toml:"watch" yaml:"watch"`
}

// ConsoleSettings selects and tunes the sink
type ConsoleSettings struct {
	Output     string `toml:"output" yaml:"output"`
	NoColor    bool   `toml:"no_color" yaml:"no_color"`
	Timestamps bool   `toml:"timestamps" yaml:"timestamps"`
	Stacks     bool   `toml:"stacks" yaml:"stacks"`
}

// WatchSettings tunes hot reloading
type WatchSettings struct {
	Debounce Duration `toml:"debounce" yaml:"debounce"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Default returns the settings used when no file is found
func Default() *Settings {
	s := &Settings{}
	s.applyDefaults()
	return s
}

// Load loads settings from a TOML or YAML file, chosen by extension
func Load(path string) (*Settings, error) {
	return LoadWithFormat(path, FormatAuto)
}

// LoadWithFormat loads settings from a file in the given format
func LoadWithFormat(path string, format Format) (*Settings, error) {
	path = os.ExpandEnv(path)
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("config file path cannot be empty")
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.Errorf("config file not found: %s", path)
	}

	if format == FormatAuto {
		format = detectFormat(path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	s, err := parse(content, format)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %s", path)
	}
	return s, nil
}

// LoadFromString parses inline settings
func LoadFromString(content string, format Format) (*Settings, error) {
	if format == FormatAuto {
		format = FormatTOML
	}
	return parse([]byte(content), format)
}

// Locate returns the first settings file found in the usual places:
// $DEBUGGER_CONFIG, ./configs/debugger.toml, ./debugger.toml, ./debugger.yaml,
// ~/.config/debugger/config.toml. It returns "" if there is none.
func Locate() string {
	if path := os.Getenv(DefaultEnvPrefix + "_CONFIG"); path != "" {
		return path
	}

	candidates := []string{
		"./configs/debugger.toml",
		"./debugger.toml",
		"./debugger.yaml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config/debugger/config.toml"))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// detectFormat determines the format from the file extension
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parse decodes content, applies defaults and validates
func parse(content []byte, format Format) (*Settings, error) {
	var s Settings

	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(content), &s); err != nil {
			return nil, errors.Wrap(err, "TOML parse error")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &s); err != nil {
			return nil, errors.Wrap(err, "YAML parse error")
		}
	default:
		return nil, errors.Errorf("unsupported format: %s", format)
	}

	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// applyDefaults sets default values for missing settings
func (s *Settings) applyDefaults() {
	if s.Level == "" {
		s.Level = debugger.DefaultLevel().String()
	}
	if s.Console.Output == "" {
		s.Console.Output = OutputStderr
	}
	if s.Watch.Debounce.Duration == 0 {
		s.Watch.Debounce.Duration = 100 * time.Millisecond
	}
}

// Validate checks the level name and the output name
func (s *Settings) Validate() error {
	if _, err := debugger.ParseLevel(s.Level); err != nil {
		return errors.Wrap(err, "invalid settings")
	}
	switch s.Console.Output {
	case OutputStderr, OutputStdout, OutputSlog:
	default:
		return errors.Errorf("invalid settings: unknown console output %q", s.Console.Output)
	}
	if s.Watch.Debounce.Duration < 0 {
		return errors.Errorf("invalid settings: negative debounce %s", s.Watch.Debounce.Duration)
	}
	return nil
}

// ApplyEnv overrides enabled and level from <PREFIX>_ENABLED and <PREFIX>_LEVEL
func (s *Settings) ApplyEnv(prefix string) error {
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}

	if value, ok := os.LookupEnv(prefix + "_ENABLED"); ok {
		enabled, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return errors.Wrapf(err, "invalid %s_ENABLED", prefix)
		}
		s.Enabled = &enabled
	}
	if value, ok := os.LookupEnv(prefix + "_LEVEL"); ok {
		if _, err := debugger.ParseLevel(value); err != nil {
			return errors.Wrapf(err, "invalid %s_LEVEL", prefix)
		}
		s.Level = value
	}
	return nil
}

// LogLevel returns the parsed threshold
func (s *Settings) LogLevel() (debugger.LogLevel, error) {
	return debugger.ParseLevel(s.Level)
}

// Apply pushes enabled and level onto d. Enabled is left alone when unset.
func (s *Settings) Apply(d *debugger.Debugger) error {
	level, err := s.LogLevel()
	if err != nil {
		return errors.Wrap(err, "invalid settings")
	}
	if s.Enabled != nil {
		d.SetEnabled(*s.Enabled)
	}
	d.SetLevel(level)
	return nil
}

// Sink builds the sink named by Console.Output on the process streams
func (s *Settings) Sink() (debugger.Sink, error) {
	return s.SinkTo(os.Stdout, os.Stderr)
}

// SinkTo builds the sink named by Console.Output, writing console lines to
// stdout or stderr as selected.
func (s *Settings) SinkTo(stdout, stderr io.Writer) (debugger.Sink, error) {
	switch s.Console.Output {
	case OutputSlog:
		return debugger.NewSlogSink(nil), nil
	case OutputStdout, OutputStderr, "":
		out := stderr
		if s.Console.Output == OutputStdout {
			out = stdout
		}
		return console.New(console.Options{
			Output:     out,
			NoColor:    s.Console.NoColor,
			Timestamps: s.Console.Timestamps,
			Stacks:     s.Console.Stacks,
		}), nil
	default:
		return nil, errors.Errorf("unknown console output %q", s.Console.Output)
	}
}

// NewDebugger builds a Debugger from s
func NewDebugger(s *Settings) (*debugger.Debugger, error) {
	if s == nil {
		s = Default()
	}
	sink, err := s.Sink()
	if err != nil {
		return nil, err
	}
	return NewDebuggerWithSink(s, sink)
}

// NewDebuggerWithSink builds a Debugger from s that writes to sink
func NewDebuggerWithSink(s *Settings, sink debugger.Sink) (*debugger.Debugger, error) {
	if s == nil {
		s = Default()
	}
	d := debugger.New(debugger.WithSink(sink))
	if err := s.Apply(d); err != nil {
		return nil, err
	}
	return d, nil
}
