package handler

import (
	"github.com/labstack/echo/v4"

	"dropvault/internal/usecase"
	"dropvault/pkg/errors"
	"dropvault/pkg/logger"
	"dropvault/pkg/response"
)

type SummaryHandler struct {
	summaryUseCase *usecase.SummaryUseCase
	fileUseCase    *usecase.FileUseCase
}

func NewSummaryHandler(summaryUseCase *usecase.SummaryUseCase, fileUseCase *usecase.FileUseCase) *SummaryHandler {
	return &SummaryHandler{
		summaryUseCase: summaryUseCase,
		fileUseCase:    fileUseCase,
	}
}

// Summarize runs the full pipeline synchronously and returns the summary
// in the response. The caller waits for the external calls to finish.
func (h *SummaryHandler) Summarize(c echo.Context) error {
	fileID := c.Param("id")
	if fileID == "" {
		return response.Error(c, errors.Validation("File ID is required", nil))
	}

	userID := getUserIDFromContext(c)

	summary, err := h.summaryUseCase.Summarize(c.Request().Context(), userID, fileID)
	if err != nil {
		logger.Error("Summarization of %s failed: %v", fileID, err)
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"summary": summary,
	})
}

func (h *SummaryHandler) GetSummaryStatus(c echo.Context) error {
	fileID := c.Param("id")
	if fileID == "" {
		return response.Error(c, errors.Validation("File ID is required", nil))
	}

	userID := getUserIDFromContext(c)

	info, err := h.fileUseCase.GetSummaryStatus(c.Request().Context(), userID, fileID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, info)
}
