package config

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"eslap-workspace/internal/env"

	"github.com/spf13/viper"
)

/**
 * Server configuration parameters
 * @property {string} address - Server listening address (e.g. ":8900")
 * @property {string} mode - Gin mode (debug/release/test)
 */
type ServerConfig struct {
	Address string `mapstructure:"address"`
	Mode    string `mapstructure:"mode"`
}

/**
 * Logging configuration
 * @property {string} level - Log level (debug/info/warn/error)
 * @property {string} path - Log file path, or "console"
 */
type LogConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

/**
 * Workspace location
 * @property {string} path - Root directory of the workspace
 * @property {string} config_file - Stamps registry file, relative to the workspace root
 */
type WorkspaceConfig struct {
	Path       string `mapstructure:"path"`
	ConfigFile string `mapstructure:"config_file"`
}

/**
 * Generator settings
 * @property {string} engine - "builtin" (Go templates) or "command" (external generator)
 * @property {string} dir - Directory where builtin templates are looked up
 * @property {string} command - External generator executable
 * @property {[]string} args - External generator arguments, Go templates over Template/TargetDir/Params
 */
type TemplateConfig struct {
	Engine  string   `mapstructure:"engine"`
	Dir     string   `mapstructure:"dir"`
	Command string   `mapstructure:"command"`
	Args    []string `mapstructure:"args"`
}

type AdmissionConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

type AppConfig struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Workspace WorkspaceConfig `mapstructure:"workspace"`
	Template  TemplateConfig  `mapstructure:"template"`
	Admission AdmissionConfig `mapstructure:"admission"`
}

const (
	EngineBuiltin = "builtin"
	EngineCommand = "command"
)

var (
	appConfig AppConfig
	appLock   sync.RWMutex
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8900")
	v.SetDefault("server.mode", "release")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.path", "console")
	v.SetDefault("workspace.path", ".")
	v.SetDefault("workspace.config_file", "workspace.json")
	v.SetDefault("template.engine", EngineBuiltin)
	v.SetDefault("template.command", "yo")
	v.SetDefault("template.args", []string{"{{.Template}}", "--params", "{{.Params}}"})
	v.SetDefault("admission.timeout", 30*time.Second)
}

/**
 * Load application configuration from YAML file
 * @param {string} file - Explicit config file, empty to search config.yaml in "." and ~/.eslap
 * @returns {*AppConfig} Loaded configuration with defaults applied
 * @description
 * - A missing config.yaml is not an error, defaults are used
 * - ESLAP_* environment variables override file values (ESLAP_WORKSPACE_PATH, ...)
 */
func LoadConfig(file string) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("eslap")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(env.EslapDir)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return collectConfig(&cfg), nil
}

func collectConfig(cfg *AppConfig) *AppConfig {
	if cfg.Workspace.Path == "" {
		cfg.Workspace.Path = "."
	}
	return cfg
}

// TemplatesDir returns the directory where builtin templates are looked up.
func (c *AppConfig) TemplatesDir() string {
	if c.Template.Dir != "" {
		return c.Template.Dir
	}
	return filepath.Join(c.Workspace.Path, "templates")
}

// WorkspaceFile returns the path of the stamps registry file.
func (c *AppConfig) WorkspaceFile() string {
	if filepath.IsAbs(c.Workspace.ConfigFile) {
		return c.Workspace.ConfigFile
	}
	return filepath.Join(c.Workspace.Path, c.Workspace.ConfigFile)
}

// SetApp installs the configuration returned by App.
func SetApp(cfg *AppConfig) {
	appLock.Lock()
	defer appLock.Unlock()
	appConfig = *cfg
}

func App() *AppConfig {
	appLock.RLock()
	defer appLock.RUnlock()
	cfg := appConfig
	return &cfg
}
