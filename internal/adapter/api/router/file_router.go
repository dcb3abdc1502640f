package router

import (
	"dropvault/internal/adapter/api/handler"
	"dropvault/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupFileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	fileHandler := handler.GetFileHandler()
	summaryHandler := handler.GetSummaryHandler()

	files := e.Group("/v1/files")
	files.Use(authMiddleware.Authenticate)

	files.POST("/upload-url", fileHandler.RequestUpload)
	files.GET("", fileHandler.ListFiles)
	files.POST("/delete", fileHandler.DeleteFile)

	files.POST("/:id/summarize", summaryHandler.Summarize)
	files.GET("/:id/summary", summaryHandler.GetSummaryStatus)
}
