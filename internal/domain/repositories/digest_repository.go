package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnquangdev/summaro/internal/domain/entities"
)

// DigestFilters narrows a history listing
type DigestFilters struct {
	Search string
	Limit  int
	Offset int
}

// DigestRepository defines persistence for processed upload history
type DigestRepository interface {
	// Create stores a new history entry
	Create(ctx context.Context, record *entities.DigestRecord) error

	// FindByID retrieves an entry by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.DigestRecord, error)

	// FindLatestByHash returns the newest entry for identical audio, if any
	FindLatestByHash(ctx context.Context, hash string) (*entities.DigestRecord, error)

	// List returns entries newest first along with the total count
	List(ctx context.Context, filters DigestFilters) ([]*entities.DigestRecord, int64, error)
}
