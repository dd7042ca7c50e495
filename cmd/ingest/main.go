package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"portfolio-chat-be/internal/config"
	"portfolio-chat-be/internal/model"
	"portfolio-chat-be/internal/repository"
	"portfolio-chat-be/pkg/database"
	"portfolio-chat-be/pkg/embedding"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

// chunkInput mirrors one entry of the knowledge-base source file.
type chunkInput struct {
	Section  string                 `json:"section"`
	Content  string                 `json:"content"`
	Link     string                 `json:"link"`
	Metadata map[string]interface{} `json:"metadata"`
}

func main() {
	filePath := flag.String("file", "chunks.json", "JSON file with profile chunks to index")
	flag.Parse()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to DB: %v", err)
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Fatalf("Failed to enable pgvector extension: %v", err)
	}
	if err := db.AutoMigrate(&model.ProfileChunk{}); err != nil {
		log.Fatalf("Failed to migrate profile_chunks: %v", err)
	}

	data, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *filePath, err)
	}

	var inputs []chunkInput
	if err := json.Unmarshal(data, &inputs); err != nil {
		log.Fatalf("Failed to parse %s: %v", *filePath, err)
	}

	embedder := embedding.NewOpenAIProvider(cfg.Ai.OpenAIAPIKey, cfg.Ai.EmbeddingModel)
	repo := repository.NewProfileChunkRepository(db)
	ctx := context.Background()

	for i, in := range inputs {
		vector, err := embedder.Generate(ctx, in.Content)
		if err != nil {
			log.Fatalf("Embedding failed for chunk %d (%s): %v", i, in.Section, err)
		}

		meta := datatypes.JSON("{}")
		if in.Metadata != nil {
			if b, err := json.Marshal(in.Metadata); err == nil {
				meta = datatypes.JSON(b)
			}
		}

		chunk := &model.ProfileChunk{
			Id:        uuid.New(),
			Section:   in.Section,
			Content:   in.Content,
			Link:      in.Link,
			Metadata:  meta,
			Embedding: pgvector.NewVector(vector),
			CreatedAt: time.Now(),
		}
		if err := repo.Create(ctx, chunk); err != nil {
			log.Fatalf("Insert failed for chunk %d (%s): %v", i, in.Section, err)
		}
		log.Printf("Indexed chunk %d: %s", i+1, in.Section)
	}

	log.Printf("Done. Indexed %d chunks.", len(inputs))
}
