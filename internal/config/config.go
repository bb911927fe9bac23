package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/cloudfn-labs/cloud-function-framework/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyBaseDir       = "base_dir"
	KeyFunctionName  = "function_name"
	KeyEntryPoint    = "entry_point"
	KeyPythonVersion = "python_version"
	KeyRegion        = "region"
	KeyHost          = "host"
	KeyPort          = "port"
	KeyDependency    = "dependency"
	KeyDeployCommand = "deploy_command"
)

// ErrUnknownKey is returned by Set for keys that are not settings.
var ErrUnknownKey = errors.New("unknown config key")

// Settings is the typed view of the configuration used by the scaffolder
// and the deploy command.
type Settings struct {
	BaseDir       string `yaml:"base_dir"`
	FunctionName  string `yaml:"function_name"`
	EntryPoint    string `yaml:"entry_point"`
	PythonVersion string `yaml:"python_version"`
	Region        string `yaml:"region"`
	Host          string `yaml:"host"`
	Port          int    `yaml:"port"`
	Dependency    string `yaml:"dependency"`
	DeployCommand string `yaml:"deploy_command"`
}

// Defaults returns the settings used when no config file or env override exists.
func Defaults() Settings {
	return Settings{
		BaseDir:       "",
		FunctionName:  "hello_world",
		EntryPoint:    "hello_world",
		PythonVersion: "3.10",
		Region:        "us-central1",
		Host:          "127.0.0.1",
		Port:          8080,
		Dependency:    "flask",
		DeployCommand: "gcloud",
	}
}

// Keys returns all known setting keys in a stable order.
func Keys() []string {
	return []string{
		KeyBaseDir, KeyFunctionName, KeyEntryPoint, KeyPythonVersion,
		KeyRegion, KeyHost, KeyPort, KeyDependency, KeyDeployCommand,
	}
}

// Dir returns the path to the config directory. CFF_HOME takes precedence
// over ~/.cloud-function-framework.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	d := Defaults()
	viper.SetDefault(KeyBaseDir, d.BaseDir)
	viper.SetDefault(KeyFunctionName, d.FunctionName)
	viper.SetDefault(KeyEntryPoint, d.EntryPoint)
	viper.SetDefault(KeyPythonVersion, d.PythonVersion)
	viper.SetDefault(KeyRegion, d.Region)
	viper.SetDefault(KeyHost, d.Host)
	viper.SetDefault(KeyPort, d.Port)
	viper.SetDefault(KeyDependency, d.Dependency)
	viper.SetDefault(KeyDeployCommand, d.DeployCommand)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Current returns the effective settings after defaults, file, and env.
func Current() Settings {
	return Settings{
		BaseDir:       viper.GetString(KeyBaseDir),
		FunctionName:  viper.GetString(KeyFunctionName),
		EntryPoint:    viper.GetString(KeyEntryPoint),
		PythonVersion: viper.GetString(KeyPythonVersion),
		Region:        viper.GetString(KeyRegion),
		Host:          viper.GetString(KeyHost),
		Port:          viper.GetInt(KeyPort),
		Dependency:    viper.GetString(KeyDependency),
		DeployCommand: viper.GetString(KeyDeployCommand),
	}
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !slices.Contains(Keys(), key) {
		return fmt.Errorf("%w %q", ErrUnknownKey, key)
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	if key == KeyPort {
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("port must be an integer, got %q", value)
		}
		viper.Set(key, port)
	} else {
		viper.Set(key, value)
	}

	configFile := FilePath()

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
