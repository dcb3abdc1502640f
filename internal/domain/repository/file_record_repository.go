package repository

import (
	"context"

	"dropvault/internal/domain/entity"
)

type FileRecordRepository interface {
	Create(ctx context.Context, record *entity.FileRecord) error
	GetByID(ctx context.Context, id string) (*entity.FileRecord, error)
	GetByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.FileRecord, int64, error)
	UpdateSummary(ctx context.Context, id string, status entity.SummaryStatus, summary string) error
	Delete(ctx context.Context, id string) error
}
