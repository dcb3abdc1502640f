package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	FirebaseProject string
	Environment     string
	OpenAIKey       string
	OpenAIModel     string
	Storage         StorageConfig
}

// StorageConfig carries every recognized provider variant. The active
// provider is chosen here once and injected, never read from the
// environment at request time.
type StorageConfig struct {
	Provider string
	R2       ObjectStoreConfig
	S3       ObjectStoreConfig
	MinIO    ObjectStoreConfig
	GCP      GCPStorageConfig
}

type ObjectStoreConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
}

type GCPStorageConfig struct {
	ProjectID       string
	Bucket          string
	CredentialsJSON string
}

const DefaultProvider = "r2"

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		Environment:     getEnv("ENVIRONMENT", "development"),
		OpenAIKey:       getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		Storage: StorageConfig{
			Provider: getEnv("STORAGE_PROVIDER", DefaultProvider),
			R2: ObjectStoreConfig{
				Endpoint:  getEnv("R2_ENDPOINT", ""),
				AccessKey: getEnv("R2_ACCESS_KEY_ID", ""),
				SecretKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
				Bucket:    getEnv("R2_BUCKET", ""),
			},
			S3: ObjectStoreConfig{
				Endpoint:  getEnv("S3_ENDPOINT", ""),
				AccessKey: getEnv("S3_ACCESS_KEY_ID", ""),
				SecretKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
				Bucket:    getEnv("S3_BUCKET", ""),
			},
			MinIO: ObjectStoreConfig{
				Endpoint:  getEnv("MINIO_ENDPOINT", ""),
				AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
				SecretKey: getEnv("MINIO_SECRET_KEY", ""),
				Bucket:    getEnv("MINIO_BUCKET", ""),
			},
			GCP: GCPStorageConfig{
				ProjectID:       getEnv("GCP_PROJECT_ID", ""),
				Bucket:          getEnv("GCS_BUCKET", ""),
				CredentialsJSON: getEnv("GCP_CREDENTIALS_JSON", ""),
			},
		},
	}

	return config, nil
}

// ActiveProvider falls back to the default when the configured value is
// empty or unrecognized.
func (s StorageConfig) ActiveProvider() string {
	switch s.Provider {
	case "r2", "s3", "minio", "gcp":
		return s.Provider
	default:
		return DefaultProvider
	}
}

// MissingKeys returns the environment variable names that are required by
// the active provider but unset. All keys are checked before returning so
// the caller sees the full list, not just the first gap.
func (s StorageConfig) MissingKeys() []string {
	var missing []string

	check := func(name, value string) {
		if value == "" {
			missing = append(missing, name)
		}
	}

	switch s.ActiveProvider() {
	case "r2":
		check("R2_ENDPOINT", s.R2.Endpoint)
		check("R2_ACCESS_KEY_ID", s.R2.AccessKey)
		check("R2_SECRET_ACCESS_KEY", s.R2.SecretKey)
		check("R2_BUCKET", s.R2.Bucket)
	case "s3":
		check("S3_ENDPOINT", s.S3.Endpoint)
		check("S3_ACCESS_KEY_ID", s.S3.AccessKey)
		check("S3_SECRET_ACCESS_KEY", s.S3.SecretKey)
		check("S3_BUCKET", s.S3.Bucket)
	case "minio":
		check("MINIO_ENDPOINT", s.MinIO.Endpoint)
		check("MINIO_ACCESS_KEY", s.MinIO.AccessKey)
		check("MINIO_SECRET_KEY", s.MinIO.SecretKey)
		check("MINIO_BUCKET", s.MinIO.Bucket)
	case "gcp":
		check("GCP_PROJECT_ID", s.GCP.ProjectID)
		check("GCS_BUCKET", s.GCP.Bucket)
		check("GCP_CREDENTIALS_JSON", s.GCP.CredentialsJSON)
	}

	return missing
}

// Endpoint returns the active provider's endpoint and bucket for plain
// target construction. GCP uses the public storage host.
func (s StorageConfig) EndpointAndBucket() (string, string) {
	switch s.ActiveProvider() {
	case "s3":
		return s.S3.Endpoint, s.S3.Bucket
	case "minio":
		return s.MinIO.Endpoint, s.MinIO.Bucket
	case "gcp":
		return "https://storage.googleapis.com", s.GCP.Bucket
	default:
		return s.R2.Endpoint, s.R2.Bucket
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
