package cli

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/viper"
)

const (
	envPrefix = "MOROSE"

	cfgKeyDirection = "direction"
	cfgKeyTrace     = "trace"

	directionTo   = "to"
	directionFrom = "from"
)

type config struct {
	direction string
	trace     string
}

// loadConfig reads settings from the environment (MOROSE_DIRECTION,
// MOROSE_TRACE) and, if given, from a YAML config file.
func loadConfig(configFile string) (*config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetDefault(cfgKeyDirection, directionTo)
	v.SetDefault(cfgKeyTrace, "error")
	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return &config{
		direction: strings.ToLower(strings.TrimSpace(v.GetString(cfgKeyDirection))),
		trace:     strings.ToLower(strings.TrimSpace(v.GetString(cfgKeyTrace))),
	}, nil
}

// setupTracing installs a Go-log tracer as the core tracer.
func setupTracing(level string) error {
	l := tracing.LevelError
	switch level {
	case "", "error":
	case "info":
		l = tracing.LevelInfo
	case "debug":
		l = tracing.LevelDebug
	default:
		return fmt.Errorf("unknown trace level %q", level)
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(l)
	return nil
}
