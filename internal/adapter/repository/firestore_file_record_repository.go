package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"dropvault/internal/domain/entity"
	"dropvault/internal/domain/repository"
	"dropvault/pkg/errors"
	"dropvault/pkg/logger"
)

const fileCollection = "files"

type firestoreFileRecordRepository struct {
	client *firestore.Client
}

func NewFirestoreFileRecordRepository(client *firestore.Client) repository.FileRecordRepository {
	return &firestoreFileRecordRepository{
		client: client,
	}
}

func (r *firestoreFileRecordRepository) Create(ctx context.Context, record *entity.FileRecord) error {
	_, err := r.client.Collection(fileCollection).Doc(record.ID).Set(ctx, record)
	if err != nil {
		return errors.Internal("Failed to create file record", err)
	}
	return nil
}

func (r *firestoreFileRecordRepository) GetByID(ctx context.Context, id string) (*entity.FileRecord, error) {
	doc, err := r.client.Collection(fileCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFoundOrForbidden("File")
		}
		return nil, errors.Internal("Failed to get file record", err)
	}

	var record entity.FileRecord
	if err := doc.DataTo(&record); err != nil {
		return nil, errors.Internal("Failed to parse file record", err)
	}

	return &record, nil
}

func (r *firestoreFileRecordRepository) GetByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.FileRecord, int64, error) {
	countDocs, err := r.client.Collection(fileCollection).Where("ownerId", "==", ownerID).Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count file records", err)
	}
	total := int64(len(countDocs))

	query := r.client.Collection(fileCollection).
		Where("ownerId", "==", ownerID).
		OrderBy("uploadedAt", firestore.Desc)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var records []*entity.FileRecord
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate file records", err)
		}

		var record entity.FileRecord
		if err := doc.DataTo(&record); err != nil {
			logger.Error("Failed to parse file record: %v", err)
			continue
		}
		records = append(records, &record)
	}

	return records, total, nil
}

func (r *firestoreFileRecordRepository) UpdateSummary(ctx context.Context, id string, summaryStatus entity.SummaryStatus, summary string) error {
	// The summary field is written unconditionally so a non-completed
	// transition clears any stale text from an earlier run.
	updates := []firestore.Update{
		{Path: "summaryStatus", Value: string(summaryStatus)},
		{Path: "summary", Value: summary},
	}

	_, err := r.client.Collection(fileCollection).Doc(id).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFoundOrForbidden("File")
		}
		return errors.Internal("Failed to update file summary", err)
	}
	return nil
}

func (r *firestoreFileRecordRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(fileCollection).Doc(id).Delete(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFoundOrForbidden("File")
		}
		return errors.Internal("Failed to delete file record", err)
	}
	return nil
}
