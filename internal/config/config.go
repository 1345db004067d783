package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const FileName = "config.toml"

// Config holds application configuration.
type Config struct {
	Shell  ShellConfig  `mapstructure:"shell"`
	Loop   LoopConfig   `mapstructure:"loop"`
	Paths  PathsConfig  `mapstructure:"paths"`
	Log    LogConfig    `mapstructure:"log"`
	Engine EngineConfig `mapstructure:"engine"`
}

// ShellConfig sizes the prompt line, history and scrollback.
type ShellConfig struct {
	HistorySize int `mapstructure:"history_size"`
	MaxLineLen  int `mapstructure:"max_line_len"`
	Scrollback  int `mapstructure:"scrollback"`
}

// LoopConfig sets the frame cadence.
type LoopConfig struct {
	FPS int `mapstructure:"fps"`
}

// PathsConfig holds the folders the commands work with.
type PathsConfig struct {
	UserData   string `mapstructure:"userdata"`
	Cartridges string `mapstructure:"cartridges"`
	Temp       string `mapstructure:"temp"`
}

type LogConfig struct {
	File string `mapstructure:"file"`
}

type EngineConfig struct {
	Entry string `mapstructure:"entry"`
}

// Load reads <configDir>/config.toml if present and applies env overrides
// with prefix LUAG_. LUAG_CONFIG names an explicit file instead, which must
// exist.
func Load(configDir string) (Config, error) {
	v := viper.New()

	v.SetDefault("shell.history_size", 1024)
	v.SetDefault("shell.max_line_len", 127)
	v.SetDefault("shell.scrollback", 256)
	v.SetDefault("loop.fps", 30)
	v.SetDefault("paths.userdata", "userdata")
	v.SetDefault("paths.cartridges", ".")
	v.SetDefault("paths.temp", "")
	v.SetDefault("log.file", "")
	v.SetDefault("engine.entry", "scripts/main.lua")

	v.SetConfigType("toml")

	if cfgPath := os.Getenv("LUAG_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(configDir)
		v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
	}

	v.SetEnvPrefix("LUAG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Log.File == "" {
		c.Log.File = filepath.Join(configDir, "luag.log")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	switch {
	case c.Shell.HistorySize <= 0:
		return fmt.Errorf("config: shell.history_size must be positive, got %d", c.Shell.HistorySize)
	case c.Shell.MaxLineLen <= 0:
		return fmt.Errorf("config: shell.max_line_len must be positive, got %d", c.Shell.MaxLineLen)
	case c.Shell.Scrollback <= 0:
		return fmt.Errorf("config: shell.scrollback must be positive, got %d", c.Shell.Scrollback)
	case c.Loop.FPS <= 0:
		return fmt.Errorf("config: loop.fps must be positive, got %d", c.Loop.FPS)
	case strings.TrimSpace(c.Paths.UserData) == "":
		return errors.New("config: paths.userdata is empty")
	case strings.TrimSpace(c.Engine.Entry) == "":
		return errors.New("config: engine.entry is empty")
	}
	return nil
}
