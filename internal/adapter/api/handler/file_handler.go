package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"dropvault/internal/usecase"
	"dropvault/pkg/errors"
	"dropvault/pkg/logger"
	"dropvault/pkg/response"
)

type FileHandler struct {
	uploadUseCase *usecase.UploadUseCase
	fileUseCase   *usecase.FileUseCase
}

func NewFileHandler(uploadUseCase *usecase.UploadUseCase, fileUseCase *usecase.FileUseCase) *FileHandler {
	return &FileHandler{
		uploadUseCase: uploadUseCase,
		fileUseCase:   fileUseCase,
	}
}

func getUserIDFromContext(c echo.Context) string {
	if uid, ok := c.Get("uid").(string); ok {
		return uid
	}
	return ""
}

type requestUploadInput struct {
	Name        string `json:"name" validate:"required"`
	Size        int64  `json:"size" validate:"gte=0"`
	ContentType string `json:"content_type"`
}

func (h *FileHandler) RequestUpload(c echo.Context) error {
	var req requestUploadInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.Validation("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := getUserIDFromContext(c)

	ticket, err := h.uploadUseCase.RequestUpload(c.Request().Context(), userID, req.Name, req.Size, req.ContentType)
	if err != nil {
		logger.Error("Upload request failed: %v", err)
		return response.Error(c, err)
	}

	return response.Created(c, ticket)
}

func (h *FileHandler) ListFiles(c echo.Context) error {
	userID := getUserIDFromContext(c)

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	files, total, err := h.fileUseCase.ListFiles(c.Request().Context(), userID, page, limit)
	if err != nil {
		logger.Error("Failed to list files: %v", err)
		return response.Error(c, err)
	}

	return response.Paginated(c, files, total, page, limit)
}

func (h *FileHandler) DeleteFile(c echo.Context) error {
	var req struct {
		ID string `json:"id" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.Validation("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := getUserIDFromContext(c)

	if err := h.fileUseCase.DeleteFile(c.Request().Context(), userID, req.ID); err != nil {
		logger.Error("Failed to delete file %s: %v", req.ID, err)
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "File deleted successfully",
	})
}
