package config

import (
	"os"
	"path/filepath"
)

const (
	EnvConfig       = "UNIFAQ_CONFIG"
	EnvGroups       = "UNIFAQ_GROUPS"
	EnvInteractions = "UNIFAQ_INTERACTIONS"
	EnvAddr         = "UNIFAQ_ADDR"

	DefaultAddr = ":8080"
)

// Settings is the resolved configuration. Environment variables take
// precedence over the file, the file over the defaults.
type Settings struct {
	GroupsPath       string
	InteractionsPath string
	Addr             string
}

func Resolve(fileCfg FileConfig) Settings {
	s := Settings{
		GroupsPath:       filepath.Join(XDGDataHome(), "unifaq", "groups.json"),
		InteractionsPath: filepath.Join(XDGDataHome(), "unifaq", "interactions.json"),
		Addr:             DefaultAddr,
	}

	applyString(&s.GroupsPath, fileCfg.Data.Groups)
	applyString(&s.InteractionsPath, fileCfg.Data.Interactions)
	applyString(&s.Addr, fileCfg.Server.Addr)

	s.GroupsPath = getEnv(EnvGroups, s.GroupsPath)
	s.InteractionsPath = getEnv(EnvInteractions, s.InteractionsPath)
	s.Addr = getEnv(EnvAddr, s.Addr)

	return s
}

// Load reads the config file named by UNIFAQ_CONFIG, or the default path,
// and resolves it.
func Load() (Settings, error) {
	fileCfg, err := LoadConfig(getEnv(EnvConfig, DefaultConfigPath()))
	if err != nil {
		return Settings{}, err
	}
	return Resolve(fileCfg), nil
}

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "unifaq", "config.toml")
}

func applyString(target *string, value *string) {
	if value != nil && *value != "" {
		*target = *value
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
