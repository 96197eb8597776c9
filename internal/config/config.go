package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Data     DataConfig     `mapstructure:"data"`
	Database DatabaseConfig `mapstructure:"database"`
	UI       UIConfig       `mapstructure:"ui"`
	Browser  BrowserConfig  `mapstructure:"browser"`
	Keys     KeyConfig      `mapstructure:"keys"`
	Log      LogConfig      `mapstructure:"log"`
}

// DataConfig describes where the catalog comes from and how it is read.
type DataConfig struct {
	Source      string        `mapstructure:"source"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
	UserAgent   string        `mapstructure:"user_agent"`
	Locale      string        `mapstructure:"locale"`
}

type DatabaseConfig struct {
	Path    string        `mapstructure:"path"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type UIConfig struct {
	Light      UIColors `mapstructure:"light"`
	Dark       UIColors `mapstructure:"dark"`
	TagPalette []string `mapstructure:"tag_palette"`
	CardWidth  int      `mapstructure:"card_width"`
}

type UIColors struct {
	Primary   string `mapstructure:"primary"`
	Secondary string `mapstructure:"secondary"`
	Accent    string `mapstructure:"accent"`
	Surface   string `mapstructure:"surface"`
	Text      string `mapstructure:"text"`
	Muted     string `mapstructure:"muted"`
	Error     string `mapstructure:"error"`
	Success   string `mapstructure:"success"`
}

// BrowserConfig lists the commands tried, in order, to open entry links.
type BrowserConfig struct {
	Darwin        []string `mapstructure:"darwin"`
	Linux         []string `mapstructure:"linux"`
	Windows       []string `mapstructure:"windows"`
	DefaultOpener string   `mapstructure:"default_opener"`
}

type KeyConfig struct {
	Modifier string      `mapstructure:"modifier"`
	Bindings KeyBindings `mapstructure:"bindings"`
}

type KeyBindings struct {
	Quit   string `mapstructure:"quit"`
	Search string `mapstructure:"search"`
	Sort   string `mapstructure:"sort"`
	Theme  string `mapstructure:"theme"`
	Open   string `mapstructure:"open"`
	Detail string `mapstructure:"detail"`
	Top    string `mapstructure:"top"`
	Back   string `mapstructure:"back"`
	Help   string `mapstructure:"help"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

func defaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	dbPath := filepath.Join(homeDir, ".devtec", "prefs.db")

	return &Config{
		Data: DataConfig{
			Source:      "data.json",
			HTTPTimeout: 30 * time.Second,
			UserAgent:   "devtec/1.0 (https://github.com/pders01/devtec)",
			Locale:      "pt-BR",
		},
		Database: DatabaseConfig{
			Path:    dbPath,
			Timeout: 1 * time.Second,
		},
		UI: UIConfig{
			Light: UIColors{
				Primary:   "#7C3AED",
				Secondary: "#0E7490",
				Accent:    "#DB2777",
				Surface:   "#F1F5F9",
				Text:      "#1E293B",
				Muted:     "#64748B",
				Error:     "#DC2626",
				Success:   "#16A34A",
			},
			Dark: UIColors{
				Primary:   "#A78BFA",
				Secondary: "#4ECDC4",
				Accent:    "#95E1D3",
				Surface:   "#16213E",
				Text:      "#EAEAEA",
				Muted:     "#94A3B8",
				Error:     "#F87171",
				Success:   "#4ADE80",
			},
			TagPalette: []string{"#FF6B6B", "#FFA86B", "#FFE66D", "#4ECDC4", "#A78BFA"},
			CardWidth:  80,
		},
		Browser: BrowserConfig{
			Darwin:        []string{"open"},
			Linux:         []string{"xdg-open", "sensible-browser", "firefox"},
			Windows:       []string{"rundll32"},
			DefaultOpener: getDefaultOpener(),
		},
		Keys: KeyConfig{
			Modifier: "ctrl",
			Bindings: KeyBindings{
				Quit:   "q",
				Search: "f",
				Sort:   "s",
				Theme:  "t",
				Open:   "o",
				Detail: "e",
				Top:    "g",
				Back:   "esc",
				Help:   "?",
			},
		},
		Log: LogConfig{
			Level: "off",
			File:  filepath.Join(homeDir, ".devtec", "devtec.log"),
		},
	}
}

func getDefaultOpener() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "linux":
		return "xdg-open"
	case "windows":
		return "rundll32"
	default:
		return "open"
	}
}

func Load(configPath string) (*Config, error) {
	v := viper.New()

	cfg := defaultConfig()
	// Sections with env-bound keys take leaf defaults so an override
	// replaces one key, not the section.
	v.SetDefault("data.source", cfg.Data.Source)
	v.SetDefault("data.http_timeout", cfg.Data.HTTPTimeout)
	v.SetDefault("data.user_agent", cfg.Data.UserAgent)
	v.SetDefault("data.locale", cfg.Data.Locale)
	v.SetDefault("database.path", cfg.Database.Path)
	v.SetDefault("database.timeout", cfg.Database.Timeout)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("ui", cfg.UI)
	v.SetDefault("browser", cfg.Browser)
	v.SetDefault("keys", cfg.Keys)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		homeDir, _ := os.UserHomeDir()
		configDir := filepath.Join(homeDir, ".config", "devtec")

		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("DEVTEC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Nested keys need explicit binding for AutomaticEnv to see them.
	for _, key := range []string{"data.source", "data.locale", "database.path", "log.level", "log.file"} {
		_ = v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	expandPaths(&config)

	return &config, nil
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if len(path) >= 2 && path[:2] == "~/" {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}

	if !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}

	return path
}

// expandPaths expands the on-disk paths in the config. Remote data
// sources are left untouched.
func expandPaths(cfg *Config) {
	cfg.Database.Path = expandPath(cfg.Database.Path)
	cfg.Log.File = expandPath(cfg.Log.File)
	if !IsRemoteSource(cfg.Data.Source) {
		cfg.Data.Source = expandPath(cfg.Data.Source)
	}
}

// IsRemoteSource reports whether the data source is fetched over HTTP.
func IsRemoteSource(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func Save(config *Config, path string) error {
	v := viper.New()

	// Durations as strings keep the TOML readable
	dataCfg := map[string]interface{}{
		"source":       config.Data.Source,
		"http_timeout": config.Data.HTTPTimeout.String(),
		"user_agent":   config.Data.UserAgent,
		"locale":       config.Data.Locale,
	}

	dbCfg := map[string]interface{}{
		"path":    config.Database.Path,
		"timeout": config.Database.Timeout.String(),
	}

	// Multi-word fields are spelled out so the keys match the mapstructure tags
	uiCfg := map[string]interface{}{
		"light":       config.UI.Light,
		"dark":        config.UI.Dark,
		"tag_palette": config.UI.TagPalette,
		"card_width":  config.UI.CardWidth,
	}

	browserCfg := map[string]interface{}{
		"darwin":         config.Browser.Darwin,
		"linux":          config.Browser.Linux,
		"windows":        config.Browser.Windows,
		"default_opener": config.Browser.DefaultOpener,
	}

	logCfg := map[string]interface{}{
		"level": config.Log.Level,
		"file":  config.Log.File,
	}

	v.Set("data", dataCfg)
	v.Set("database", dbCfg)
	v.Set("ui", uiCfg)
	v.Set("browser", browserCfg)
	v.Set("keys", config.Keys)
	v.Set("log", logCfg)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return v.WriteConfigAs(path)
}

func GenerateDefaultConfig(path string) error {
	return Save(defaultConfig(), path)
}
