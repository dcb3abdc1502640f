package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"dropvault/internal/adapter/api"
	"dropvault/internal/adapter/repository"
	"dropvault/internal/usecase"
	"dropvault/pkg/config"
	"dropvault/pkg/response"
)

func setupTestHandlers(t *testing.T) *echo.Echo {
	t.Helper()

	repo := repository.NewMemoryFileRecordRepository()
	storageCfg := config.StorageConfig{
		Provider: "r2",
		R2: config.ObjectStoreConfig{
			Endpoint:  "https://account.r2.cloudflarestorage.com",
			AccessKey: "test-access-key",
			SecretKey: "test-secret-key",
			Bucket:    "test-bucket",
		},
	}

	uploadUseCase := usecase.NewUploadUseCase(repo, storageCfg, nil)
	fileUseCase := usecase.NewFileUseCase(repo, nil)
	summaryUseCase := usecase.NewSummaryUseCase(repo, nil, nil, nil, false)

	Setup(uploadUseCase, fileUseCase, summaryUseCase)

	e := echo.New()
	e.Validator = api.NewValidator()
	return e
}

func newAuthedContext(e *echo.Echo, method, path, body, uid string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if uid != "" {
		c.Set("uid", uid)
	}
	return c, rec
}

func TestRequestUploadHandler(t *testing.T) {
	e := setupTestHandlers(t)

	c, rec := newAuthedContext(e, http.MethodPost, "/v1/files/upload-url",
		`{"name":"report.pdf","size":2048,"content_type":"application/pdf"}`, "user-1")

	assert.NoError(t, GetFileHandler().RequestUpload(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp response.Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.NotEmpty(t, data["file_id"])
	assert.Equal(t, "r2", data["provider"])
	assert.Contains(t, data["upload_target"], "test-bucket")
}

func TestRequestUploadHandlerUnauthenticated(t *testing.T) {
	e := setupTestHandlers(t)

	c, rec := newAuthedContext(e, http.MethodPost, "/v1/files/upload-url",
		`{"name":"report.pdf","size":2048,"content_type":"application/pdf"}`, "")

	assert.NoError(t, GetFileHandler().RequestUpload(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp response.Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "UNAUTHENTICATED", resp.Error.Code)
}

func TestRequestUploadHandlerValidation(t *testing.T) {
	e := setupTestHandlers(t)

	c, rec := newAuthedContext(e, http.MethodPost, "/v1/files/upload-url",
		`{"size":2048}`, "user-1")

	assert.NoError(t, GetFileHandler().RequestUpload(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp response.Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
}

func TestListFilesHandlerScopedToOwner(t *testing.T) {
	e := setupTestHandlers(t)

	for _, owner := range []string{"user-1", "user-1", "user-2"} {
		c, rec := newAuthedContext(e, http.MethodPost, "/v1/files/upload-url",
			`{"name":"doc.pdf","size":1,"content_type":"application/pdf"}`, owner)
		assert.NoError(t, GetFileHandler().RequestUpload(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	}

	c, rec := newAuthedContext(e, http.MethodGet, "/v1/files", "", "user-1")
	assert.NoError(t, GetFileHandler().ListFiles(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp response.Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	page := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(2), page["total"])
	for _, item := range page["items"].([]interface{}) {
		assert.Equal(t, "user-1", item.(map[string]interface{})["owner_id"])
	}
}

func TestDeleteFileHandlerForeignFile(t *testing.T) {
	e := setupTestHandlers(t)

	c, rec := newAuthedContext(e, http.MethodPost, "/v1/files/upload-url",
		`{"name":"doc.pdf","size":1,"content_type":"application/pdf"}`, "user-1")
	assert.NoError(t, GetFileHandler().RequestUpload(c))

	var created response.Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	fileID := created.Data.(map[string]interface{})["file_id"].(string)

	c, rec = newAuthedContext(e, http.MethodPost, "/v1/files/delete",
		`{"id":"`+fileID+`"}`, "user-2")
	assert.NoError(t, GetFileHandler().DeleteFile(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp response.Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestHealthHandler(t *testing.T) {
	e := setupTestHandlers(t)

	c, rec := newAuthedContext(e, http.MethodGet, "/health", "", "")
	assert.NoError(t, GetHealthHandler().CheckHealth(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
