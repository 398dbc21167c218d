// Config loading for the roster CLI.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/roster/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys in config.yaml.
	cfgKeyBackend  = "backend"
	cfgKeyDataDir  = "data_dir"
	cfgKeyLogLevel = "log_level"

	// Flags bound to config keys.
	flagBackend  = "backend"
	flagLogLevel = "log-level"

	// envPrefix prefixes environment overrides, e.g. ROSTER_BACKEND.
	envPrefix = "ROSTER"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Backend  string `yaml:"backend"`
	DataDir  string `yaml:"data_dir,omitempty"`
	LogLevel string `yaml:"log_level"`
}

// loadConfig reads config.yaml from configDir using Viper. It creates the
// directory and a default config.yaml on first run. Values resolve as
// changed flag > env (ROSTER_BACKEND, ROSTER_LOG_LEVEL) > config.yaml >
// built-in default. data_dir is read from the file only; its flag and env
// var are handled by paths.ResolveDataDir.
func loadConfig(configDir string, flags *pflag.FlagSet) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := writeConfigIfMissing(filepath.Join(configDir, configFileExt)); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendJSONL)
	v.SetDefault(cfgKeyLogLevel, types.LogLevelWarn)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	if err := v.BindEnv(cfgKeyBackend); err != nil {
		return nil, err
	}
	if err := v.BindEnv(cfgKeyLogLevel); err != nil {
		return nil, err
	}

	if flags != nil {
		if err := v.BindPFlag(cfgKeyBackend, flags.Lookup(flagBackend)); err != nil {
			return nil, fmt.Errorf("bind --%s: %w", flagBackend, err)
		}
		if err := v.BindPFlag(cfgKeyLogLevel, flags.Lookup(flagLogLevel)); err != nil {
			return nil, fmt.Errorf("bind --%s: %w", flagLogLevel, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns nil.
func writeConfigIfMissing(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return writeConfigFile(path, configFile{
		Backend:  types.BackendJSONL,
		LogLevel: types.LogLevelWarn,
	})
}

// writeConfigFile replaces config.yaml with cfg.
func writeConfigFile(path string, cfg configFile) error {
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, append([]byte("# roster configuration\n"), data...), 0o644)
}

// readConfigFile parses config.yaml without Viper.
func readConfigFile(path string) (configFile, error) {
	var cfg configFile
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// withDefaults fills keys missing from the file with the resolved values.
func (c configFile) withDefaults(resolved types.Config) configFile {
	if c.Backend == "" {
		c.Backend = resolved.Backend
	}
	if c.DataDir == "" {
		c.DataDir = resolved.DataDir
	}
	if c.LogLevel == "" {
		c.LogLevel = resolved.LogLevel
	}
	return c
}
