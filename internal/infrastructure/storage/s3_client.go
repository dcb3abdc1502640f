package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"dropvault/pkg/config"
)

const uploadTargetTTL = 15 * time.Minute

// S3Client issues presigned PUT targets and removes objects for any
// S3-wire-compatible provider: Cloudflare R2, AWS S3 and MinIO all speak
// the same protocol, so one client covers the three variants.
type S3Client struct {
	client *minio.Client
	bucket string
}

func NewS3Client(cfg config.ObjectStoreConfig) (*S3Client, error) {
	endpoint, secure, err := splitEndpoint(cfg.Endpoint)
	if err != nil {
		return nil, err
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}

	return &S3Client{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

// IssueUploadTarget signs a time-limited PUT URL. Signing happens locally;
// no request reaches the provider until the client performs the transfer.
func (c *S3Client) IssueUploadTarget(ctx context.Context, storageKey, contentType string) (string, error) {
	u, err := c.client.PresignedPutObject(ctx, c.bucket, storageKey, uploadTargetTTL)
	if err != nil {
		return "", fmt.Errorf("presign upload target: %w", err)
	}
	return u.String(), nil
}

func (c *S3Client) RemoveObject(ctx context.Context, storageKey string) error {
	if err := c.client.RemoveObject(ctx, c.bucket, storageKey, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %s: %w", storageKey, err)
	}
	return nil
}

func splitEndpoint(raw string) (string, bool, error) {
	if !strings.Contains(raw, "://") {
		return raw, true, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", false, fmt.Errorf("parse endpoint %q: %w", raw, err)
	}
	return u.Host, u.Scheme != "http", nil
}
