package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pyforge-dev/pyforge/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyTemplatesDir = "templates_dir"
	KeySubdir       = "subdir"
	KeyPython       = "python"
	KeyDebug        = "debug"
)

// DefaultSubdir is the fixed subdirectory that holds requirement files.
const DefaultSubdir = "requirements"

// Settings is a resolved snapshot of the configuration.
type Settings struct {
	TemplatesDir string
	Subdir       string
	Python       string
	Debug        bool
}

// Keys returns the configuration keys understood by pyforge.
func Keys() []string {
	return []string{KeyTemplatesDir, KeySubdir, KeyPython, KeyDebug}
}

// Dir returns the path to the config directory (~/.pyforge/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the default config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load initializes Viper to read from the config file and environment.
// An empty path selects the default file under Dir().
func Load(path string) {
	if path == "" {
		path = FilePath()
	}
	viper.SetConfigFile(path)
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyTemplatesDir, filepath.Join(Dir(), "templates"))
	viper.SetDefault(KeySubdir, DefaultSubdir)
	viper.SetDefault(KeyPython, "python3")
	viper.SetDefault(KeyDebug, false)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Current returns the settings resolved from file, environment and defaults.
func Current() Settings {
	return Settings{
		TemplatesDir: expandHome(viper.GetString(KeyTemplatesDir)),
		Subdir:       viper.GetString(KeySubdir),
		Python:       viper.GetString(KeyPython),
		Debug:        viper.GetBool(KeyDebug),
	}
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !isKnownKey(key) {
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys(), ", "))
	}

	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = FilePath()
	}
	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	viper.Set(key, value)

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

func isKnownKey(key string) bool {
	for _, k := range Keys() {
		if k == key {
			return true
		}
	}
	return false
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
