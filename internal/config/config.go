package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the dictionary server
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Trie       TrieConfig       `mapstructure:"trie"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
}

// ServerConfig holds HTTP server related configuration
type ServerConfig struct {
	Host  string `mapstructure:"host"`
	Port  int    `mapstructure:"port"`
	Debug bool   `mapstructure:"debug"`
}

// TrieConfig holds prefix tree related configuration
type TrieConfig struct {
	AlphabetSize int `mapstructure:"alphabet_size"`
}

// DictionaryConfig holds word list related configuration
type DictionaryConfig struct {
	WordFile string `mapstructure:"word_file"`
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.debug", false)

	// Trie defaults
	v.SetDefault("trie.alphabet_size", 26)

	// Dictionary defaults
	v.SetDefault("dictionary.word_file", "")
}

// Addr returns the host:port the server should listen on
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
