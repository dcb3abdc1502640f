package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActiveProviderDefaultsToR2(t *testing.T) {
	assert.Equal(t, "r2", StorageConfig{}.ActiveProvider())
	assert.Equal(t, "r2", StorageConfig{Provider: "azure"}.ActiveProvider())
	assert.Equal(t, "gcp", StorageConfig{Provider: "gcp"}.ActiveProvider())
	assert.Equal(t, "minio", StorageConfig{Provider: "minio"}.ActiveProvider())
}

func TestMissingKeysReportsAllGaps(t *testing.T) {
	cfg := StorageConfig{Provider: "r2"}
	assert.Equal(t, []string{"R2_ENDPOINT", "R2_ACCESS_KEY_ID", "R2_SECRET_ACCESS_KEY", "R2_BUCKET"}, cfg.MissingKeys())

	cfg.R2.Endpoint = "https://account.r2.cloudflarestorage.com"
	cfg.R2.Bucket = "files"
	assert.Equal(t, []string{"R2_ACCESS_KEY_ID", "R2_SECRET_ACCESS_KEY"}, cfg.MissingKeys())
}

func TestMissingKeysPerProviderVariant(t *testing.T) {
	assert.Equal(t,
		[]string{"GCP_PROJECT_ID", "GCS_BUCKET", "GCP_CREDENTIALS_JSON"},
		StorageConfig{Provider: "gcp"}.MissingKeys())
	assert.Equal(t,
		[]string{"MINIO_ENDPOINT", "MINIO_ACCESS_KEY", "MINIO_SECRET_KEY", "MINIO_BUCKET"},
		StorageConfig{Provider: "minio"}.MissingKeys())
	assert.Equal(t,
		[]string{"S3_ENDPOINT", "S3_ACCESS_KEY_ID", "S3_SECRET_ACCESS_KEY", "S3_BUCKET"},
		StorageConfig{Provider: "s3"}.MissingKeys())
}

func TestMissingKeysEmptyWhenComplete(t *testing.T) {
	cfg := StorageConfig{
		Provider: "minio",
		MinIO: ObjectStoreConfig{
			Endpoint:  "http://localhost:9000",
			AccessKey: "minioadmin",
			SecretKey: "minioadmin",
			Bucket:    "files",
		},
	}
	assert.Empty(t, cfg.MissingKeys())
}

func TestEndpointAndBucket(t *testing.T) {
	cfg := StorageConfig{
		Provider: "gcp",
		GCP:      GCPStorageConfig{Bucket: "gcs-files"},
	}
	endpoint, bucket := cfg.EndpointAndBucket()
	assert.Equal(t, "https://storage.googleapis.com", endpoint)
	assert.Equal(t, "gcs-files", bucket)

	cfg = StorageConfig{
		Provider: "r2",
		R2:       ObjectStoreConfig{Endpoint: "https://account.r2.cloudflarestorage.com", Bucket: "r2-files"},
	}
	endpoint, bucket = cfg.EndpointAndBucket()
	assert.Equal(t, "https://account.r2.cloudflarestorage.com", endpoint)
	assert.Equal(t, "r2-files", bucket)
}
