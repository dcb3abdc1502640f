package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"dropvault/internal/adapter/api"
	"dropvault/internal/adapter/repository"
	"dropvault/internal/usecase"
	"dropvault/pkg/config"
	"dropvault/pkg/response"
)

type stubFetcher struct{}

func (stubFetcher) Fetch(ctx context.Context, target string) ([]byte, error) {
	return []byte("%PDF-1.4"), nil
}

type stubExtractor struct{}

func (stubExtractor) Extract(data []byte) (string, error) {
	return "Extracted text.", nil
}

type stubSummarizer struct{}

func (stubSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	return "The generated summary.", nil
}

func setupSummaryHandlers(t *testing.T) *echo.Echo {
	t.Helper()

	repo := repository.NewMemoryFileRecordRepository()
	storageCfg := config.StorageConfig{
		Provider: "r2",
		R2: config.ObjectStoreConfig{
			Endpoint:  "https://account.r2.cloudflarestorage.com",
			AccessKey: "k",
			SecretKey: "s",
			Bucket:    "b",
		},
	}

	uploadUseCase := usecase.NewUploadUseCase(repo, storageCfg, nil)
	fileUseCase := usecase.NewFileUseCase(repo, nil)
	summaryUseCase := usecase.NewSummaryUseCase(repo, stubFetcher{}, stubExtractor{}, stubSummarizer{}, true)

	Setup(uploadUseCase, fileUseCase, summaryUseCase)

	e := echo.New()
	e.Validator = api.NewValidator()
	return e
}

func uploadTestFile(t *testing.T, e *echo.Echo, uid, contentType string) string {
	t.Helper()

	c, rec := newAuthedContext(e, http.MethodPost, "/v1/files/upload-url",
		`{"name":"doc.pdf","size":1,"content_type":"`+contentType+`"}`, uid)
	assert.NoError(t, GetFileHandler().RequestUpload(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created response.Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	return created.Data.(map[string]interface{})["file_id"].(string)
}

func TestSummarizeHandler(t *testing.T) {
	e := setupSummaryHandlers(t)
	fileID := uploadTestFile(t, e, "user-1", "application/pdf")

	c, rec := newAuthedContext(e, http.MethodPost, "/v1/files/"+fileID+"/summarize", "", "user-1")
	c.SetParamNames("id")
	c.SetParamValues(fileID)

	assert.NoError(t, GetSummaryHandler().Summarize(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp response.Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "The generated summary.", resp.Data.(map[string]interface{})["summary"])

	// The persisted record must match what was returned.
	c, rec = newAuthedContext(e, http.MethodGet, "/v1/files/"+fileID+"/summary", "", "user-1")
	c.SetParamNames("id")
	c.SetParamValues(fileID)

	assert.NoError(t, GetSummaryHandler().GetSummaryStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	info := resp.Data.(map[string]interface{})
	assert.Equal(t, "completed", info["summary_status"])
	assert.Equal(t, "The generated summary.", info["summary"])
}

func TestSummarizeHandlerNonPDF(t *testing.T) {
	e := setupSummaryHandlers(t)
	fileID := uploadTestFile(t, e, "user-1", "image/png")

	c, rec := newAuthedContext(e, http.MethodPost, "/v1/files/"+fileID+"/summarize", "", "user-1")
	c.SetParamNames("id")
	c.SetParamValues(fileID)

	assert.NoError(t, GetSummaryHandler().Summarize(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp response.Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
}

func TestSummarizeHandlerForeignFile(t *testing.T) {
	e := setupSummaryHandlers(t)
	fileID := uploadTestFile(t, e, "user-1", "application/pdf")

	c, rec := newAuthedContext(e, http.MethodPost, "/v1/files/"+fileID+"/summarize", "", "user-2")
	c.SetParamNames("id")
	c.SetParamValues(fileID)

	assert.NoError(t, GetSummaryHandler().Summarize(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
