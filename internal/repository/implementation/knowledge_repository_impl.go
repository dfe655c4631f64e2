package implementation

import (
	"context"
	"sort"
	"strings"

	"bevgenie-be/internal/entity"
	"bevgenie-be/internal/mapper"
	"bevgenie-be/internal/model"
	"bevgenie-be/internal/repository/contract"
	"bevgenie-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// Boosts applied on top of cosine similarity during hybrid re-ranking.
const (
	lexicalBoost = 0.10
	tagBoost     = 0.05
)

type KnowledgeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeMapper
}

func NewKnowledgeRepository(db *gorm.DB) contract.KnowledgeRepository {
	return &KnowledgeRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeMapper(),
	}
}

func (r *KnowledgeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *KnowledgeRepositoryImpl) Create(ctx context.Context, chunk *entity.KnowledgeChunk) error {
	m := r.mapper.ToModel(chunk)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*chunk = *r.mapper.ToEntity(m)
	return nil
}

func (r *KnowledgeRepositoryImpl) CreateBulk(ctx context.Context, chunks []*entity.KnowledgeChunk) error {
	if len(chunks) == 0 {
		return nil
	}
	models := make([]*model.KnowledgeChunk, len(chunks))
	for i, c := range chunks {
		models[i] = r.mapper.ToModel(c)
	}
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*chunks[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *KnowledgeRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.KnowledgeChunk{}, id).Error
}

func (r *KnowledgeRepositoryImpl) DeleteBySourceType(ctx context.Context, sourceType string) error {
	return r.db.WithContext(ctx).Where("source_type = ?", sourceType).Delete(&model.KnowledgeChunk{}).Error
}

func (r *KnowledgeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeChunk, error) {
	var models []*model.KnowledgeChunk
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.KnowledgeChunk, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *KnowledgeRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.KnowledgeChunk{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// HybridSearch fetches an over-sized candidate set by cosine similarity, then
// re-ranks in memory with lexical and persona-tag boosts. The threshold is
// applied to the raw vector similarity, not the boosted score, so boosts can
// reorder candidates but never admit ones the vector search rejected.
func (r *KnowledgeRepositoryImpl) HybridSearch(ctx context.Context, embedding []float32, query string, personaTags []string, limit int, threshold float64) ([]*contract.ScoredKnowledgeChunk, error) {
	if limit <= 0 {
		limit = 5
	}

	// Cosine distance in pgvector is 1 - cosine_similarity, so
	// 1 - (embedding_value <=> query_vector) recovers the similarity.
	type result struct {
		model.KnowledgeChunk
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)
	candidateLimit := limit * 3

	err := r.db.WithContext(ctx).
		Table("knowledge_chunks").
		Select("knowledge_chunks.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Where("deleted_at IS NULL").
		Where("1 - (embedding_value <=> ?) >= ?", queryVector, threshold).
		Order("similarity DESC").
		Limit(candidateLimit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	queryWords := strings.Fields(strings.ToLower(query))

	scored := make([]*contract.ScoredKnowledgeChunk, len(results))
	for i, res := range results {
		chunk := r.mapper.ToEntity(&res.KnowledgeChunk)
		scored[i] = &contract.ScoredKnowledgeChunk{
			Chunk:      chunk,
			Similarity: boostScore(res.Similarity, chunk.Content, chunk.Tags, queryWords, personaTags),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Similarity > scored[j].Similarity
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}

// boostScore applies the lexical and persona-tag boosts to a raw vector
// similarity. Boosts on a near-1 match can overflow the 0-1 scale the
// search contract promises, so the result is clamped.
func boostScore(similarity float64, content string, tags, queryWords, personaTags []string) float64 {
	score := similarity

	lowered := strings.ToLower(content)
	for _, w := range queryWords {
		if len(w) >= 4 && strings.Contains(lowered, w) {
			score += lexicalBoost
			break
		}
	}
	for _, tag := range tags {
		for _, pt := range personaTags {
			if strings.EqualFold(tag, pt) {
				score += tagBoost
			}
		}
	}

	if score > 1 {
		score = 1
	}
	return score
}
