package repository

import (
	"context"
	"encoding/json"

	"portfolio-chat-be/internal/model"
	"portfolio-chat-be/pkg/store"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// ProfileChunkRepository is the vector-index surface: nearest-chunk search
// for the retrieval gate plus inserts for the ingest command.
type ProfileChunkRepository interface {
	Create(ctx context.Context, chunk *model.ProfileChunk) error
	SearchSimilar(ctx context.Context, vector []float32, topK int) ([]store.Chunk, error)
	Count(ctx context.Context) (int64, error)
}

type profileChunkRepository struct {
	db *gorm.DB
}

func NewProfileChunkRepository(db *gorm.DB) ProfileChunkRepository {
	return &profileChunkRepository{db: db}
}

func (r *profileChunkRepository) Create(ctx context.Context, chunk *model.ProfileChunk) error {
	return r.db.WithContext(ctx).Create(chunk).Error
}

// SearchSimilar returns the topK nearest chunks by cosine similarity,
// best-first. pgvector's <=> operator yields cosine distance, so the score
// reported to callers is 1 - (embedding <=> query).
func (r *profileChunkRepository) SearchSimilar(ctx context.Context, vector []float32, topK int) ([]store.Chunk, error) {
	if topK <= 0 {
		topK = 3
	}

	type row struct {
		model.ProfileChunk
		Similarity float64
	}
	var rows []row

	queryVector := pgvector.NewVector(vector)

	err := r.db.WithContext(ctx).
		Table("profile_chunks").
		Select("profile_chunks.*, 1 - (embedding <=> ?) as similarity", queryVector).
		Order("similarity DESC").
		Limit(topK).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	chunks := make([]store.Chunk, 0, len(rows))
	for _, m := range rows {
		var meta map[string]interface{}
		if len(m.Metadata) > 0 {
			// Malformed stored metadata degrades to an empty map rather than
			// failing the whole retrieval.
			_ = json.Unmarshal(m.Metadata, &meta)
		}
		chunks = append(chunks, store.Chunk{
			Section:  m.Section,
			Content:  m.Content,
			Link:     m.Link,
			Metadata: meta,
			Distance: m.Similarity,
		})
	}
	return chunks, nil
}

func (r *profileChunkRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ProfileChunk{}).Count(&count).Error
	return count, err
}
