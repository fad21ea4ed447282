// Config loading for the saltuser CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/saltastro/saltuser/internal/paths"
	"github.com/saltastro/saltuser/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyDriver = "driver"
	cfgKeyDSN    = "dsn"

	// Environment variable overrides, checked below flags.
	envDriver = "SALTUSER_DRIVER"
	envDSN    = "SALTUSER_DSN"
)

// defaultConfigYAML is the content written to config.yaml by "saltuser init".
const defaultConfigYAML = `# saltuser configuration

# Database driver: mysql (production Science Database) or sqlite (local snapshot)
driver: mysql

# Connection string, e.g. user:password@tcp(sdb.salt.ac.za:3306)/sdb
# dsn:
`

// loadConfig resolves the config directory, reads config.yaml with
// Viper, and applies the flag > env > file > default precedence chain.
// A missing config.yaml is not an error.
func loadConfig() (types.Config, error) {
	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve config dir: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyDriver, types.DriverMySQL)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := types.Config{
		Driver: resolveSetting(flagDriver, envDriver, v.GetString(cfgKeyDriver)),
		DSN:    resolveSetting(flagDSN, envDSN, v.GetString(cfgKeyDSN)),
	}

	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

// resolveSetting applies the flag > env > config file precedence chain
// for a single setting.
func resolveSetting(flag, envName, fileValue string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv(envName); env != "" {
		return env
	}
	return fileValue
}

// writeDefaultConfig creates the config directory and a default
// config.yaml if the file does not exist. Returns the config file path.
func writeDefaultConfig() (string, error) {
	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}

	path := filepath.Join(configDir, configFileExt)
	if _, err := os.Stat(path); err == nil {
		// File already exists.
		return path, nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("stat config file: %w", err)
	}

	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); err != nil {
		return "", fmt.Errorf("write config file: %w", err)
	}
	return path, nil
}
