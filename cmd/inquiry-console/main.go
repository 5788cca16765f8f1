package main

import (
	"flag"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"inquiry/internal/config"
	"inquiry/internal/embedding"
	"inquiry/internal/hints"
	llmopenai "inquiry/internal/llm/openai"
	"inquiry/internal/responder"
	"inquiry/internal/retriever"
	"inquiry/internal/scope"
	"inquiry/internal/tui"
	"inquiry/internal/vectorstore/filestore"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "config.yaml", "Path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	emb, err := embedding.FromConfig(cfg)
	if err != nil {
		logger.Fatal("embedder init failed", zap.Error(err))
	}

	gen, err := llmopenai.NewClient(llmopenai.Config{
		BaseURL:     cfg.Generator.BaseURL,
		APIKeyEnv:   cfg.Generator.APIKeyEnv,
		Model:       cfg.Generator.Model,
		Temperature: *cfg.Generator.Temperature,
		MaxTokens:   cfg.Generator.MaxTokens,
		Timeout:     time.Duration(cfg.Generator.TimeoutSecs) * time.Second,
	})
	if err != nil {
		logger.Fatal("generator init failed", zap.Error(err))
	}

	vocab := scope.DefaultVocabulary()
	vocab.Cutoff = *cfg.Scope.Cutoff
	resp := responder.New(
		scope.NewClassifier(vocab),
		retriever.New(filestore.New(cfg.Store.Path), emb),
		gen,
		hints.DefaultTable(),
		logger,
		cfg.Retriever.TopK,
	)

	if _, err := tea.NewProgram(tui.New(resp), tea.WithAltScreen()).Run(); err != nil {
		logger.Fatal("console stopped", zap.Error(err))
	}
}
