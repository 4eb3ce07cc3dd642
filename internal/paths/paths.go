// Package paths resolves the optional config file and word bank locations.
package paths

import (
	"os"
	"path/filepath"
)

// CWD-relative default file names.
const (
	DefaultConfigFileName = ".madlib.yaml"
	DefaultBankFileName   = "madlib.db"
)

// Environment variable names for path overrides.
const (
	EnvConfigFile = "MADLIB_CONFIG"
	EnvBankPath   = "MADLIB_BANK"
)

// ResolveConfigFile returns the config file path following the precedence
// chain: flag > MADLIB_CONFIG env > $(CWD)/.madlib.yaml.
func ResolveConfigFile(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigFile); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultConfigFileName), nil
}

// ResolveBankPath returns the word bank database path following the
// precedence chain: flag > config value > MADLIB_BANK env > $(CWD)/madlib.db.
func ResolveBankPath(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvBankPath); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultBankFileName), nil
}
