package contract

import (
	"context"

	"bevgenie-be/internal/entity"
	"bevgenie-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredKnowledgeChunk pairs a chunk with its hybrid-search similarity.
type ScoredKnowledgeChunk struct {
	Chunk      *entity.KnowledgeChunk
	Similarity float64
}

type KnowledgeRepository interface {
	Create(ctx context.Context, chunk *entity.KnowledgeChunk) error
	CreateBulk(ctx context.Context, chunks []*entity.KnowledgeChunk) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteBySourceType(ctx context.Context, sourceType string) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeChunk, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// HybridSearch blends pgvector cosine similarity with a lexical and a
	// persona-tag boost, filtered by threshold and ordered best first.
	HybridSearch(ctx context.Context, embedding []float32, query string, personaTags []string, limit int, threshold float64) ([]*ScoredKnowledgeChunk, error)
}
