// Package embedding selects and constructs the configured Embedder backend.
// Concrete implementations live in the subpackages.
package embedding

import (
	"fmt"
	"time"

	"inquiry/internal/config"
	"inquiry/internal/domain"
	"inquiry/internal/embedding/hashing"
	"inquiry/internal/embedding/openai"
)

// FromConfig builds the embedder named by cfg.Embedder.Type. An empty type
// defaults to the OpenAI-compatible client.
func FromConfig(cfg *config.AppConfig) (domain.Embedder, error) {
	switch cfg.Embedder.Type {
	case "openai", "":
		o := cfg.Embedder.OpenAI
		if o == nil {
			o = &config.OpenAIEmbedderConfig{}
		}
		return openai.NewClient(openai.Config{
			BaseURL:   o.BaseURL,
			APIKeyEnv: o.APIKeyEnv,
			Model:     o.Model,
			Timeout:   time.Duration(o.TimeoutSecs) * time.Second,
		})
	case "hashing":
		return hashing.NewEmbedder(cfg.Embedder.Dim), nil
	default:
		return nil, fmt.Errorf("unknown embedder: %s", cfg.Embedder.Type)
	}
}
