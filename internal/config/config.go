// Package config loads the application configuration from YAML, filling in
// defaults for anything unset. API keys are never stored here; config names
// the environment variable that holds them.
package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// StoreConfig locates the persisted vector snapshot.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// DocumentConfig locates the source FAQ document for ingestion.
type DocumentConfig struct {
	Path string `yaml:"path"`
}

// ChunkerConfig configures how the document is split into chunks.
type ChunkerConfig struct {
	MaxChars int `yaml:"max_chars"`
}

// RetrieverConfig configures retrieval.
type RetrieverConfig struct {
	TopK int `yaml:"top_k"`
}

// ScopeConfig configures the fuzzy-match cutoff of the scope gate. Cutoff is
// a pointer so an explicit zero is distinguishable from an unset value.
type ScopeConfig struct {
	Cutoff *float64 `yaml:"cutoff"`
}

// OpenAIEmbedderConfig holds settings for the OpenAI-compatible embedder.
type OpenAIEmbedderConfig struct {
	BaseURL     string `yaml:"base_url"`
	APIKeyEnv   string `yaml:"api_key_env"`
	Model       string `yaml:"model"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// EmbedderConfig selects and configures the embedder implementation.
type EmbedderConfig struct {
	Type   string                `yaml:"type"`
	Dim    int                   `yaml:"dim,omitempty"`
	OpenAI *OpenAIEmbedderConfig `yaml:"openai,omitempty"`
}

// GeneratorConfig configures the chat-completion generator. Temperature is a
// pointer so an explicit zero is distinguishable from an unset value.
type GeneratorConfig struct {
	BaseURL     string   `yaml:"base_url"`
	APIKeyEnv   string   `yaml:"api_key_env"`
	Model       string   `yaml:"model"`
	Temperature *float64 `yaml:"temperature"`
	MaxTokens   int      `yaml:"max_tokens"`
	TimeoutSecs int      `yaml:"timeout_secs"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Server    ServerConfig    `yaml:"server"`
	Store     StoreConfig     `yaml:"store"`
	Document  DocumentConfig  `yaml:"document"`
	Chunker   ChunkerConfig   `yaml:"chunker"`
	Retriever RetrieverConfig `yaml:"retriever"`
	Scope     ScopeConfig     `yaml:"scope"`
	Embedder  EmbedderConfig  `yaml:"embedder"`
	Generator GeneratorConfig `yaml:"generator"`
}

// Load reads a config from path. If the file does not exist, returns
// defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{}
	applyConfigDefaults(cfg)
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Store.Path == "" {
		cfg.Store.Path = "data/store.json"
	}
	if cfg.Document.Path == "" {
		cfg.Document.Path = "data/faqs.md"
	}
	if cfg.Chunker.MaxChars == 0 {
		cfg.Chunker.MaxChars = 900
	}
	if cfg.Retriever.TopK == 0 {
		cfg.Retriever.TopK = 4
	}
	if cfg.Scope.Cutoff == nil {
		cfg.Scope.Cutoff = ptr(0.78)
	}
	if cfg.Embedder.Type == "" {
		cfg.Embedder.Type = "openai"
	}
	if cfg.Embedder.Type == "openai" {
		if cfg.Embedder.OpenAI == nil {
			cfg.Embedder.OpenAI = &OpenAIEmbedderConfig{}
		}
		o := cfg.Embedder.OpenAI
		if o.BaseURL == "" {
			o.BaseURL = "https://api.openai.com/v1"
		}
		if o.APIKeyEnv == "" {
			o.APIKeyEnv = "OPENAI_API_KEY"
		}
		if o.Model == "" {
			o.Model = "text-embedding-3-small"
		}
		if o.TimeoutSecs == 0 {
			o.TimeoutSecs = 30
		}
	}
	if cfg.Embedder.Type == "hashing" && cfg.Embedder.Dim == 0 {
		cfg.Embedder.Dim = 256
	}
	g := &cfg.Generator
	if g.BaseURL == "" {
		g.BaseURL = "https://api.openai.com/v1"
	}
	if g.APIKeyEnv == "" {
		g.APIKeyEnv = "OPENAI_API_KEY"
	}
	if g.Model == "" {
		g.Model = "gpt-4o-mini"
	}
	if g.Temperature == nil {
		g.Temperature = ptr(0.1)
	}
	if g.MaxTokens == 0 {
		g.MaxTokens = 220
	}
	if g.TimeoutSecs == 0 {
		g.TimeoutSecs = 60
	}
}

func ptr[T any](v T) *T { return &v }
