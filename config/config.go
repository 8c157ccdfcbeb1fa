// Package config loads the YAML settings used by the command line tool.
package config

import (
	"os"
	"strings"

	"envi-binreader/envi/efile"
	"envi-binreader/envi/etype"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// HeaderNaming is one of "auto", "replace" or "append".
	HeaderNaming string `yaml:"header_naming"`
	// ByteOrder is one of "header", "little", "big" or "native".
	ByteOrder  string `yaml:"byte_order"`
	StrictSize bool   `yaml:"strict_size"`
	// LogLevel is one of "debug", "info", "warn" or "error".
	LogLevel string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		HeaderNaming: "auto",
		ByteOrder:    "header",
		StrictSize:   false,
		LogLevel:     "warn",
	}
}

// Load reads path over the defaults. An empty path yields the defaults; a
// named file must exist.
func Load(path string) (Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}
	bs, err := os.ReadFile(path)
	if err != nil {
		err := errors.Wrapf(err, `config.Load error reading "%s"`, path)
		return config, err
	}
	if err := yaml.UnmarshalStrict(bs, &config); err != nil {
		err := errors.Wrapf(err, `config.Load error parsing "%s"`, path)
		return config, err
	}
	if err := config.Validate(); err != nil {
		err := errors.Wrapf(err, `config.Load error validating "%s"`, path)
		return config, err
	}
	return config, nil
}

var (
	namings = map[string]efile.HeaderNaming{
		"auto":    efile.NamingAuto,
		"replace": efile.NamingReplace,
		"append":  efile.NamingAppend,
	}
	byteOrders = map[string]etype.ByteOrder{
		"little": etype.ByteOrderLittle,
		"big":    etype.ByteOrderBig,
		"native": etype.ByteOrderNative,
	}
	levels = map[string]level.Option{
		"debug": level.AllowDebug(),
		"info":  level.AllowInfo(),
		"warn":  level.AllowWarn(),
		"error": level.AllowError(),
	}
)

func (r Config) Validate() error {
	if _, ok := namings[strings.ToLower(r.HeaderNaming)]; !ok {
		return errors.Errorf(`unknown header_naming "%s"`, r.HeaderNaming)
	}
	if _, ok := byteOrders[strings.ToLower(r.ByteOrder)]; !ok && !strings.EqualFold(r.ByteOrder, "header") {
		return errors.Errorf(`unknown byte_order "%s"`, r.ByteOrder)
	}
	if _, ok := levels[strings.ToLower(r.LogLevel)]; !ok {
		return errors.Errorf(`unknown log_level "%s"`, r.LogLevel)
	}
	return nil
}

// Logger builds a logfmt logger on stderr filtered by LogLevel.
func (r Config) Logger() log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	option, ok := levels[strings.ToLower(r.LogLevel)]
	if !ok {
		option = level.AllowWarn()
	}
	return level.NewFilter(logger, option)
}

// Options turns the configuration into efile options.
func (r Config) Options(logger log.Logger) []efile.Option {
	opts := []efile.Option{
		efile.WithHeaderNaming(namings[strings.ToLower(r.HeaderNaming)]),
		efile.WithLogger(logger),
	}
	if order, ok := byteOrders[strings.ToLower(r.ByteOrder)]; ok {
		opts = append(opts, efile.WithByteOrder(order))
	}
	if r.StrictSize {
		opts = append(opts, efile.WithStrictSize())
	}
	return opts
}
