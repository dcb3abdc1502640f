package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"dropvault/internal/adapter/api"
	"dropvault/internal/adapter/api/handler"
	apimiddleware "dropvault/internal/adapter/api/middleware"
	"dropvault/internal/adapter/api/router"
	"dropvault/internal/adapter/repository"
	"dropvault/internal/domain/service"
	"dropvault/internal/infrastructure/pdf"
	"dropvault/internal/infrastructure/storage"
	"dropvault/internal/infrastructure/summarizer"
	"dropvault/internal/usecase"
	"dropvault/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	fileRepo := repository.NewFirestoreFileRecordRepository(firestoreClient)

	issuer, remover := buildStorageClients(ctx, cfg.Storage)

	uploadUseCase := usecase.NewUploadUseCase(fileRepo, cfg.Storage, issuer)
	fileUseCase := usecase.NewFileUseCase(fileRepo, remover)
	summaryUseCase := usecase.NewSummaryUseCase(
		fileRepo,
		storage.NewHTTPFetcher(),
		pdf.NewExtractor(),
		summarizer.NewClient(cfg.OpenAIKey, cfg.OpenAIModel),
		cfg.OpenAIKey != "",
	)

	handler.Setup(uploadUseCase, fileUseCase, summaryUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)

	router.Setup(e, authMiddleware)

	log.Printf("Starting server on port %s (storage provider: %s)...", cfg.ServerPort, cfg.Storage.ActiveProvider())
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}

// buildStorageClients wires the active provider's signing client when its
// configuration is complete. With gaps, both stay nil: requestUpload then
// reports the full missing list per request and deletes touch metadata only.
func buildStorageClients(ctx context.Context, storageCfg config.StorageConfig) (service.UploadTargetIssuer, service.ObjectRemover) {
	if len(storageCfg.MissingKeys()) > 0 {
		log.Printf("Storage provider %s not fully configured; upload targets will be unsigned", storageCfg.ActiveProvider())
		return nil, nil
	}

	switch storageCfg.ActiveProvider() {
	case "gcp":
		client, err := storage.NewGCSClient(ctx, storageCfg.GCP)
		if err != nil {
			log.Printf("Failed to initialize GCS client: %v", err)
			return nil, nil
		}
		return client, client
	case "s3":
		return buildS3(storageCfg.S3)
	case "minio":
		return buildS3(storageCfg.MinIO)
	default:
		return buildS3(storageCfg.R2)
	}
}

func buildS3(cfg config.ObjectStoreConfig) (service.UploadTargetIssuer, service.ObjectRemover) {
	client, err := storage.NewS3Client(cfg)
	if err != nil {
		log.Printf("Failed to initialize S3-compatible client: %v", err)
		return nil, nil
	}
	return client, client
}
