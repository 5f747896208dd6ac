package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/jsconsole/core"
	"github.com/philipp01105/jsconsole/formatter"
	"github.com/philipp01105/jsconsole/handler"
	"github.com/philipp01105/jsconsole/logger"
)

// Sinks
const (
	SinkWriter = "writer"
	SinkZap    = "zap"
	SinkSlog   = "slog"
	SinkMemory = "memory"
)

// Formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config describes where console output goes and how it looks
type Config struct {
	// Output is "stdout", "stderr" or a file path
	Output string `toml:"output" yaml:"output"`
	// Format is "text" or "json"
	Format string `toml:"format" yaml:"format"`
	// Sink is "writer", "zap", "slog" or "memory"
	Sink            string `toml:"sink" yaml:"sink"`
	Color           bool   `toml:"color" yaml:"color"`
	ClearScreen     bool   `toml:"clear_screen" yaml:"clear_screen"`
	TimestampFormat string `toml:"timestamp_format" yaml:"timestamp_format"`
	DisableTime     bool   `toml:"disable_timestamp" yaml:"disable_timestamp"`
	MinSeverity     string `toml:"min_severity" yaml:"min_severity"`
	CoarseClock     bool   `toml:"coarse_clock" yaml:"coarse_clock"`
	// MemoryLimit bounds the memory sink (0 = unbounded)
	MemoryLimit int `toml:"memory_limit" yaml:"memory_limit"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.Output == "" {
		c.Output = "stdout"
	}
	if c.Format == "" {
		c.Format = FormatText
	}
	if c.Sink == "" {
		c.Sink = SinkWriter
	}
	if c.MinSeverity == "" {
		c.MinSeverity = "debug"
	}
}

// Load reads a configuration file. Files ending in .yaml or .yml are YAML,
// everything else TOML. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes data in the format implied by ext (".toml", ".yaml", ".yml")
func Parse(data []byte, ext string) (*Config, error) {
	var c Config
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, errors.Wrap(err, "unmarshaling yaml config")
		}
	default:
		if err := toml.Unmarshal(data, &c); err != nil {
			return nil, errors.Wrap(err, "unmarshaling toml config")
		}
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return errors.Errorf("unknown format %q", c.Format)
	}
	switch c.Sink {
	case SinkWriter, SinkZap, SinkSlog, SinkMemory:
	default:
		return errors.Errorf("unknown sink %q", c.Sink)
	}
	switch strings.ToLower(c.MinSeverity) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.Errorf("unknown min_severity %q", c.MinSeverity)
	}
	if c.MemoryLimit < 0 {
		return errors.New("memory_limit must not be negative")
	}
	return nil
}

// Severity returns the parsed minimum severity
func (c *Config) Severity() core.Severity {
	return core.ParseSeverity(c.MinSeverity)
}

// NewFormatter builds the entry formatter
func (c *Config) NewFormatter() formatter.Formatter {
	fc := formatter.Config{
		TimestampFormat:  c.TimestampFormat,
		DisableTimestamp: c.DisableTime,
		Color:            c.Color,
	}
	if c.Format == FormatJSON {
		return formatter.NewJSONFormatter(fc)
	}
	return formatter.NewTextFormatter(fc)
}

// NewHandler builds the handler for the configured sink. The returned
// closer releases the output file, if one was opened.
func (c *Config) NewHandler() (handler.Handler, func() error, error) {
	noop := func() error { return nil }

	switch c.Sink {
	case SinkMemory:
		return handler.NewMemoryHandler(c.MemoryLimit), noop, nil
	case SinkZap:
		zl, err := c.newZapLogger()
		if err != nil {
			return nil, nil, err
		}
		return handler.NewZapHandler(zl), noop, nil
	}

	w, closer, err := c.openOutput()
	if err != nil {
		return nil, nil, err
	}
	if c.Sink == SinkSlog {
		opts := &slog.HandlerOptions{Level: slog.LevelDebug}
		var sh slog.Handler
		if c.Format == FormatJSON {
			sh = slog.NewJSONHandler(w, opts)
		} else {
			sh = slog.NewTextHandler(w, opts)
		}
		return handler.NewSlogHandler(sh), closer, nil
	}
	return handler.NewWriterHandler(handler.WriterConfig{
		Writer:      w,
		Formatter:   c.NewFormatter(),
		ClearScreen: c.ClearScreen,
	}), closer, nil
}

// NewClientBuilder returns a logger.Builder preconfigured with the handler,
// severity filter and clock. The closer must run after the client is closed.
func (c *Config) NewClientBuilder() (*logger.Builder, func() error, error) {
	h, closer, err := c.NewHandler()
	if err != nil {
		return nil, nil, err
	}
	b := logger.NewBuilder().
		WithHandler(h).
		WithMinSeverity(c.Severity()).
		WithCoarseClock(c.CoarseClock)
	return b, closer, nil
}

func (c *Config) openOutput() (*os.File, func() error, error) {
	switch c.Output {
	case "stdout":
		return os.Stdout, func() error { return nil }, nil
	case "stderr":
		return os.Stderr, func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(c.Output), 0755); err != nil {
		return nil, nil, errors.Wrap(err, "creating output directory")
	}
	f, err := os.OpenFile(c.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, errors.Wrap(err, "opening output")
	}
	return f, f.Close, nil
}

func (c *Config) newZapLogger() (*zap.Logger, error) {
	encoding := "console"
	if c.Format == FormatJSON {
		encoding = "json"
	}
	zc := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapcore.DebugLevel),
		Encoding:         encoding,
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{c.Output},
		ErrorOutputPaths: []string{"stderr"},
	}
	if c.DisableTime {
		zc.EncoderConfig.TimeKey = ""
	}
	zl, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "building zap logger")
	}
	return zl, nil
}
