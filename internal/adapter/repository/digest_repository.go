package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/summaro/internal/domain/entities"
	"github.com/johnquangdev/summaro/internal/domain/repositories"
	ucerrors "github.com/johnquangdev/summaro/internal/usecase/errors"
)

// digestRepository implements the DigestRepository interface
type digestRepository struct {
	db *gorm.DB
}

// NewDigestRepository creates a new digest history repository
func NewDigestRepository(db *gorm.DB) repositories.DigestRepository {
	return &digestRepository{db: db}
}

func (r *digestRepository) Create(ctx context.Context, record *entities.DigestRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *digestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.DigestRecord, error) {
	var rec entities.DigestRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ucerrors.ErrDigestNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *digestRepository) FindLatestByHash(ctx context.Context, hash string) (*entities.DigestRecord, error) {
	var rec entities.DigestRecord
	err := r.db.WithContext(ctx).
		Where("content_hash = ?", hash).
		Order("created_at DESC").
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ucerrors.ErrDigestNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *digestRepository) List(ctx context.Context, filters repositories.DigestFilters) ([]*entities.DigestRecord, int64, error) {
	var records []*entities.DigestRecord
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.DigestRecord{})
	if filters.Search != "" {
		pattern := fmt.Sprintf("%%%s%%", filters.Search)
		query = query.Where("original_name ILIKE ? OR summary ILIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// The transcript column can be large; listings do not need it.
	query = query.Omit("transcript").Order("created_at DESC")
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	err := query.Find(&records).Error
	return records, total, err
}
