package usecase

import (
	"context"

	"dropvault/internal/domain/entity"
	"dropvault/internal/domain/repository"
	"dropvault/internal/domain/service"
	"dropvault/pkg/errors"
	"dropvault/pkg/logger"
)

// FileUseCase covers owner-scoped listing, deletion and the summary
// status accessor.
type FileUseCase struct {
	fileRepo repository.FileRecordRepository
	remover  service.ObjectRemover
}

// The remover is optional; without one, deletion removes metadata only and
// the stored object is orphaned, which is the accepted minimal behavior.
func NewFileUseCase(fileRepo repository.FileRecordRepository, remover service.ObjectRemover) *FileUseCase {
	return &FileUseCase{
		fileRepo: fileRepo,
		remover:  remover,
	}
}

func (u *FileUseCase) ListFiles(ctx context.Context, ownerID string, page, pageSize int) ([]*entity.FileRecord, int64, error) {
	if ownerID == "" {
		return nil, 0, errors.Unauthenticated("", nil)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	return u.fileRepo.GetByOwner(ctx, ownerID, pageSize, offset)
}

func (u *FileUseCase) DeleteFile(ctx context.Context, ownerID, fileID string) error {
	record, err := u.getOwnedRecord(ctx, ownerID, fileID)
	if err != nil {
		return err
	}

	// Blob removal is best effort; a failure here must not block metadata
	// deletion, so the error is only logged.
	if u.remover != nil {
		if err := u.remover.RemoveObject(ctx, record.StorageKey); err != nil {
			logger.Warn("Failed to remove stored object %s: %v", record.StorageKey, err)
		}
	}

	return u.fileRepo.Delete(ctx, fileID)
}

type SummaryInfo struct {
	Summary       string               `json:"summary,omitempty"`
	SummaryStatus entity.SummaryStatus `json:"summary_status,omitempty"`
}

func (u *FileUseCase) GetSummaryStatus(ctx context.Context, ownerID, fileID string) (*SummaryInfo, error) {
	record, err := u.getOwnedRecord(ctx, ownerID, fileID)
	if err != nil {
		return nil, err
	}

	return &SummaryInfo{
		Summary:       record.Summary,
		SummaryStatus: record.SummaryStatus,
	}, nil
}

// getOwnedRecord returns the record only when it exists and belongs to the
// caller. Both failure modes collapse into the same error so non-owners
// cannot learn whether a given id exists.
func (u *FileUseCase) getOwnedRecord(ctx context.Context, ownerID, fileID string) (*entity.FileRecord, error) {
	if ownerID == "" {
		return nil, errors.Unauthenticated("", nil)
	}

	record, err := u.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if record.OwnerID != ownerID {
		return nil, errors.NotFoundOrForbidden("File")
	}
	return record, nil
}
