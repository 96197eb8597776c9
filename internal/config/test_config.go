package config

import "time"

// TestConfig returns a config suitable for testing
func TestConfig() *Config {
	return &Config{
		Data: DataConfig{
			Source:      "testdata/data.json",
			HTTPTimeout: 5 * time.Second,
			UserAgent:   "devtec-test/1.0",
			Locale:      "pt-BR",
		},
		Database: DatabaseConfig{
			Path:    "", // Tests open their own store in t.TempDir()
			Timeout: 1 * time.Second,
		},
		UI:      defaultConfig().UI,
		Browser: defaultConfig().Browser,
		Keys:    defaultConfig().Keys,
		Log:     LogConfig{Level: "off"},
	}
}
