package handler

import (
	"dropvault/internal/usecase"
)

var (
	fileHandler    *FileHandler
	summaryHandler *SummaryHandler
	healthHandler  *HealthHandler
)

func Setup(
	uploadUseCase *usecase.UploadUseCase,
	fileUseCase *usecase.FileUseCase,
	summaryUseCase *usecase.SummaryUseCase,
) {
	fileHandler = NewFileHandler(uploadUseCase, fileUseCase)
	summaryHandler = NewSummaryHandler(summaryUseCase, fileUseCase)
	healthHandler = NewHealthHandler()
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

func GetSummaryHandler() *SummaryHandler {
	return summaryHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
