package embedding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inquiry/internal/config"
)

func TestFromConfig_Hashing(t *testing.T) {
	cfg := &config.AppConfig{}
	cfg.Embedder.Type = "hashing"
	cfg.Embedder.Dim = 64

	emb, err := FromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "hashing", emb.Name())
	assert.Equal(t, "hashing-v1-64", emb.Model())
}

func TestFromConfig_OpenAI(t *testing.T) {
	t.Setenv("TEST_EMBED_KEY", "sk-test")
	cfg := &config.AppConfig{}
	cfg.Embedder.Type = "openai"
	cfg.Embedder.OpenAI = &config.OpenAIEmbedderConfig{
		APIKeyEnv: "TEST_EMBED_KEY",
		Model:     "text-embedding-3-small",
	}

	emb, err := FromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "openai", emb.Name())
	assert.Equal(t, "text-embedding-3-small", emb.Model())
}

func TestFromConfig_UnknownType(t *testing.T) {
	cfg := &config.AppConfig{}
	cfg.Embedder.Type = "quantum"

	_, err := FromConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quantum")
}
