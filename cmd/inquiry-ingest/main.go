package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"inquiry/internal/chunker"
	"inquiry/internal/config"
	"inquiry/internal/embedding"
	"inquiry/internal/ingest"
	"inquiry/internal/summarizer"
	"inquiry/internal/vectorstore/filestore"
)

func main() {
	_ = godotenv.Load()

	var (
		cfgPath   string
		docPath   string
		storePath string
	)
	flag.StringVar(&cfgPath, "config", "config.yaml", "Path to YAML config file")
	flag.StringVar(&docPath, "doc", "", "Source document to ingest (overrides config)")
	flag.StringVar(&storePath, "store", "", "Snapshot file to write (overrides config)")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if docPath == "" {
		docPath = cfg.Document.Path
	}
	if storePath == "" {
		storePath = cfg.Store.Path
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

	ing := ingest.New(chunker.NewSplitter(cfg.Chunker.MaxChars), emb, filestore.New(storePath), logger)
	n, err := ing.Run(context.Background(), docPath)
	if err != nil {
		logger.Fatal("ingest failed", zap.Error(err))
	}

	fmt.Printf("Ingested %d chunks from %s into %s\n", n, docPath, storePath)
	if raw, err := os.ReadFile(docPath); err == nil {
		fmt.Println("\nDocument digest:")
		fmt.Println(summarizer.Digest(string(raw), 3))
	}
}
