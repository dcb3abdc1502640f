package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"dropvault/internal/domain/entity"
	"dropvault/internal/domain/repository"
	"dropvault/internal/domain/service"
	"dropvault/pkg/config"
	"dropvault/pkg/errors"
	"dropvault/pkg/logger"
)

// UploadUseCase validates upload requests, resolves the active storage
// provider and issues an upload target. It never transfers bytes itself;
// the client performs the PUT against the returned target out-of-band.
type UploadUseCase struct {
	fileRepo   repository.FileRecordRepository
	storageCfg config.StorageConfig
	issuer     service.UploadTargetIssuer
}

// NewUploadUseCase takes the provider configuration explicitly so tests can
// inject any variant without touching the environment. The issuer is
// optional; without one, plain endpoint/bucket/key targets are returned.
func NewUploadUseCase(fileRepo repository.FileRecordRepository, storageCfg config.StorageConfig, issuer service.UploadTargetIssuer) *UploadUseCase {
	return &UploadUseCase{
		fileRepo:   fileRepo,
		storageCfg: storageCfg,
		issuer:     issuer,
	}
}

type UploadTicket struct {
	FileID       string `json:"file_id"`
	StorageKey   string `json:"storage_key"`
	UploadTarget string `json:"upload_target"`
	Provider     string `json:"provider"`
}

func (u *UploadUseCase) RequestUpload(ctx context.Context, ownerID, name string, size int64, contentType string) (*UploadTicket, error) {
	if ownerID == "" {
		return nil, errors.Unauthenticated("", nil)
	}
	if strings.TrimSpace(name) == "" {
		return nil, errors.Validation("File name is required", nil)
	}
	if size < 0 {
		return nil, errors.Validation("File size must not be negative", nil)
	}

	provider := u.storageCfg.ActiveProvider()

	if missing := u.storageCfg.MissingKeys(); len(missing) > 0 {
		message := fmt.Sprintf("Missing environment variables: %s. Please configure %s storage.", strings.Join(missing, ", "), provider)
		return nil, errors.Configuration(message, missing)
	}

	storageKey := newStorageKey(provider, name)

	target, err := u.issueTarget(ctx, storageKey, contentType)
	if err != nil {
		return nil, errors.Internal("Failed to issue upload target", err)
	}

	record := &entity.FileRecord{
		ID:              uuid.New().String(),
		OwnerID:         ownerID,
		Name:            name,
		Size:            size,
		ContentType:     contentType,
		StorageProvider: provider,
		StorageKey:      storageKey,
		UploadTarget:    target,
		UploadedAt:      time.Now(),
	}

	if err := u.fileRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	logger.Debug("Issued upload target for %s (owner %s, provider %s)", record.ID, ownerID, provider)

	return &UploadTicket{
		FileID:       record.ID,
		StorageKey:   storageKey,
		UploadTarget: target,
		Provider:     provider,
	}, nil
}

func (u *UploadUseCase) issueTarget(ctx context.Context, storageKey, contentType string) (string, error) {
	if u.issuer != nil {
		return u.issuer.IssueUploadTarget(ctx, storageKey, contentType)
	}
	endpoint, bucket := u.storageCfg.EndpointAndBucket()
	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(endpoint, "/"), bucket, storageKey), nil
}

// newStorageKey builds a provider-prefixed, time-ordered key keeping the
// original file name human-inspectable. The uuid fragment makes collisions
// negligible even for same-millisecond uploads of one name.
func newStorageKey(provider, filename string) string {
	return fmt.Sprintf("%s/%d-%s-%s", provider, time.Now().UnixMilli(), uuid.New().String()[:8], sanitizeFilename(filename))
}

// sanitizeFilename strips path components and any character outside
// [a-zA-Z0-9._-] so keys stay safe in URLs and provider consoles.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)

	var b strings.Builder
	for _, char := range name {
		if (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') || (char >= '0' && char <= '9') || char == '-' || char == '_' || char == '.' {
			b.WriteRune(char)
		} else {
			b.WriteRune('_')
		}
	}

	sanitized := strings.Trim(b.String(), "._")
	if sanitized == "" {
		return "file"
	}
	return sanitized
}
