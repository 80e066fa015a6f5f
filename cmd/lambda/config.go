package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// config holds the toplevel's ambient settings. Precedence, highest to
// lowest: flags > LAMBDA_* env vars > config file > defaults.
type config struct {
	Wrapper        []string `koanf:"wrapper"`
	NoWrapper      bool     `koanf:"no_wrapper"`
	Prompt         string   `koanf:"prompt"`
	HistoryFile    string   `koanf:"history_file"`
	Verbosity      int      `koanf:"verbosity"`
	NonInteractive bool     `koanf:"non_interactive"`
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lambda_history")
}

// findConfigFile looks for lambda.yaml in the working directory, then
// under the user config directory. Returns "" when none exists.
func findConfigFile() string {
	if _, err := os.Stat("lambda.yaml"); err == nil {
		return "lambda.yaml"
	}
	if dir, err := os.UserConfigDir(); err == nil {
		candidate := filepath.Join(dir, "lambda", "lambda.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

func loadConfig(flags *pflag.FlagSet) (*config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"wrapper":         []string{"rlwrap", "ledit"},
		"no_wrapper":      false,
		"prompt":          "lambda> ",
		"history_file":    defaultHistoryFile(),
		"verbosity":       0,
		"non_interactive": false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// 3. Environment: LAMBDA_HISTORY_FILE -> history_file
	if err := k.Load(env.Provider("LAMBDA_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "LAMBDA_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags (highest priority)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			switch key {
			case "load", "version":
				// per-invocation flags, not configuration
				return "", nil
			case "wrapper":
				// --wrapper narrows the candidate list to one program
				v, _ := flags.GetString("wrapper")
				return key, []string{v}
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}
