package repository

import (
	"context"
	"sort"
	"sync"

	"dropvault/internal/domain/entity"
	"dropvault/internal/domain/repository"
	"dropvault/pkg/errors"
)

// memoryFileRecordRepository keeps records in a map guarded by a mutex.
// It backs tests and credential-less local development with the same
// semantics as the Firestore adapter, including newest-first listing.
type memoryFileRecordRepository struct {
	mu      sync.RWMutex
	records map[string]entity.FileRecord
}

func NewMemoryFileRecordRepository() repository.FileRecordRepository {
	return &memoryFileRecordRepository{
		records: make(map[string]entity.FileRecord),
	}
}

func (r *memoryFileRecordRepository) Create(ctx context.Context, record *entity.FileRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[record.ID] = *record
	return nil
}

func (r *memoryFileRecordRepository) GetByID(ctx context.Context, id string) (*entity.FileRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return nil, errors.NotFoundOrForbidden("File")
	}
	copied := record
	return &copied, nil
}

func (r *memoryFileRecordRepository) GetByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.FileRecord, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var owned []entity.FileRecord
	for _, record := range r.records {
		if record.OwnerID == ownerID {
			owned = append(owned, record)
		}
	}

	sort.Slice(owned, func(i, j int) bool {
		return owned[i].UploadedAt.After(owned[j].UploadedAt)
	})

	total := int64(len(owned))

	if offset > 0 {
		if offset >= len(owned) {
			return nil, total, nil
		}
		owned = owned[offset:]
	}
	if limit > 0 && limit < len(owned) {
		owned = owned[:limit]
	}

	records := make([]*entity.FileRecord, 0, len(owned))
	for i := range owned {
		copied := owned[i]
		records = append(records, &copied)
	}

	return records, total, nil
}

func (r *memoryFileRecordRepository) UpdateSummary(ctx context.Context, id string, summaryStatus entity.SummaryStatus, summary string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[id]
	if !ok {
		return errors.NotFoundOrForbidden("File")
	}

	record.SummaryStatus = summaryStatus
	record.Summary = summary
	r.records[id] = record
	return nil
}

func (r *memoryFileRecordRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return errors.NotFoundOrForbidden("File")
	}
	delete(r.records, id)
	return nil
}
