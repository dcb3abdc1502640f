package storage

import (
	"context"
	"fmt"
	"net/http"
	"time"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"dropvault/pkg/config"
)

// GCSClient issues signed PUT targets and removes objects on Google Cloud
// Storage. Unlike the S3 variants it signs with the service account baked
// into the client rather than static keys.
type GCSClient struct {
	client *gcs.Client
	bucket string
}

func NewGCSClient(ctx context.Context, cfg config.GCPStorageConfig) (*GCSClient, error) {
	var opts []option.ClientOption
	if cfg.CredentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	}

	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("init gcs client: %w", err)
	}

	return &GCSClient{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

func (c *GCSClient) IssueUploadTarget(ctx context.Context, storageKey, contentType string) (string, error) {
	opts := &gcs.SignedURLOptions{
		Method:      http.MethodPut,
		ContentType: contentType,
		Expires:     time.Now().Add(uploadTargetTTL),
		Scheme:      gcs.SigningSchemeV4,
	}

	u, err := c.client.Bucket(c.bucket).SignedURL(storageKey, opts)
	if err != nil {
		return "", fmt.Errorf("sign upload target: %w", err)
	}
	return u, nil
}

func (c *GCSClient) RemoveObject(ctx context.Context, storageKey string) error {
	if err := c.client.Bucket(c.bucket).Object(storageKey).Delete(ctx); err != nil {
		return fmt.Errorf("remove object %s: %w", storageKey, err)
	}
	return nil
}

func (c *GCSClient) Close() error {
	return c.client.Close()
}
