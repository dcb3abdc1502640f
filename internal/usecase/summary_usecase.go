package usecase

import (
	"context"
	"fmt"
	"strings"

	"dropvault/internal/domain/entity"
	"dropvault/internal/domain/repository"
	"dropvault/internal/domain/service"
	"dropvault/pkg/errors"
	"dropvault/pkg/logger"
)

// maxSummaryInputChars bounds the text handed to the external summarizer,
// respecting its input-size limits. Roughly 1000 tokens.
const maxSummaryInputChars = 4000

const truncationMarker = "... [content truncated]"

// SummaryUseCase runs the download -> extract -> truncate -> summarize ->
// persist pipeline for one file. Steps are strictly sequential; every
// failure past the processing transition persists a durable failed status
// before the error is returned. There is no retry and no memoization: each
// invocation re-runs the full pipeline.
type SummaryUseCase struct {
	fileRepo      repository.FileRecordRepository
	fetcher       service.ContentFetcher
	extractor     service.TextExtractor
	summarizer    service.Summarizer
	keyConfigured bool
}

func NewSummaryUseCase(
	fileRepo repository.FileRecordRepository,
	fetcher service.ContentFetcher,
	extractor service.TextExtractor,
	summarizer service.Summarizer,
	keyConfigured bool,
) *SummaryUseCase {
	return &SummaryUseCase{
		fileRepo:      fileRepo,
		fetcher:       fetcher,
		extractor:     extractor,
		summarizer:    summarizer,
		keyConfigured: keyConfigured,
	}
}

func (u *SummaryUseCase) Summarize(ctx context.Context, ownerID, fileID string) (string, error) {
	if ownerID == "" {
		return "", errors.Unauthenticated("", nil)
	}

	if !u.keyConfigured {
		return "", errors.Configuration(
			"OpenAI API key not configured. Please add OPENAI_API_KEY to your environment variables.",
			[]string{"OPENAI_API_KEY"},
		)
	}

	record, err := u.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		return "", err
	}
	if record.OwnerID != ownerID {
		return "", errors.NotFoundOrForbidden("File")
	}

	if !record.IsPDF() {
		return "", errors.Validation("Only PDF files can be summarized", nil)
	}

	// The processing state is persisted before any external call so
	// concurrent readers observe progress even if this run dies mid-flight.
	if err := u.fileRepo.UpdateSummary(ctx, fileID, entity.SummaryStatusProcessing, ""); err != nil {
		return "", err
	}

	data, err := u.fetcher.Fetch(ctx, record.UploadTarget)
	if err != nil {
		u.markFailed(ctx, fileID)
		return "", errors.Download(fmt.Sprintf("Could not download file from storage: %v", err), err)
	}

	text, err := u.extractor.Extract(data)
	if err != nil {
		u.markFailed(ctx, fileID)
		return "", errors.Extraction(fmt.Sprintf("Could not extract text from PDF: %v", err), err)
	}
	if strings.TrimSpace(text) == "" {
		u.markFailed(ctx, fileID)
		return "", errors.Extraction("No text content found in PDF", nil)
	}

	summary, err := u.summarizer.Summarize(ctx, truncate(text))
	if err != nil {
		u.markFailed(ctx, fileID)
		return "", errors.SummarizationApi(fmt.Sprintf("Failed to generate summary: %v", err), err)
	}

	if err := u.fileRepo.UpdateSummary(ctx, fileID, entity.SummaryStatusCompleted, summary); err != nil {
		return "", err
	}

	logger.Info("Summarized file %s for owner %s", fileID, ownerID)

	return summary, nil
}

func (u *SummaryUseCase) markFailed(ctx context.Context, fileID string) {
	if err := u.fileRepo.UpdateSummary(ctx, fileID, entity.SummaryStatusFailed, ""); err != nil {
		logger.Error("Failed to persist failed summary status for %s: %v", fileID, err)
	}
}

// truncate cuts the text at the character budget, appending a marker so
// readers of the summary know the input was cut.
func truncate(text string) string {
	if len(text) <= maxSummaryInputChars {
		return text
	}
	return text[:maxSummaryInputChars] + truncationMarker
}
