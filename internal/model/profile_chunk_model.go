package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

// ProfileChunk is one pre-indexed passage of the knowledge base.
type ProfileChunk struct {
	Id        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Section   string          `gorm:"type:text;not null"`
	Content   string          `gorm:"type:text;not null"`
	Link      string          `gorm:"type:text"`
	Metadata  datatypes.JSON  `gorm:"type:jsonb"`
	Embedding pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt time.Time
}

func (ProfileChunk) TableName() string {
	return "profile_chunks"
}
