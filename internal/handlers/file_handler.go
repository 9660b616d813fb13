package handlers

import (
	"bytes"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"agency_admin/internal/imageprocessor"
	"agency_admin/internal/logger"
	"agency_admin/internal/storage"
	"agency_admin/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type FileHandler struct {
	*BaseHandler
	store storage.Storage
}

func NewFileHandler(base *BaseHandler, store storage.Storage) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		store:       store,
	}
}

// ServeImage streams a stored portfolio image. When the file is gone a
// placeholder is drawn, persisted under the requested name and served,
// so the catalog never shows a broken image.
func (h *FileHandler) ServeImage(c *gin.Context) {
	filename := storage.SanitizeFilename(c.Param("filename"))
	if filename == "" || filename == "file" {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid filename"))
		return
	}

	ctx := c.Request.Context()

	exists, err := h.store.Exists(ctx, filename)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if !exists {
		placeholder, err := imageprocessor.GeneratePlaceholder(filename)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		if err := h.store.Save(ctx, filename, bytes.NewReader(placeholder.Bytes()), "image/png"); err != nil {
			logger.CtxWarn(ctx, "placeholder persist failed", "filename", filename, "error", err)
		}
		c.Data(http.StatusOK, "image/png", placeholder.Bytes())
		return
	}

	reader, err := h.store.Get(ctx, filename)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		logger.CtxWarn(ctx, "image stream interrupted", "filename", filename, "error", err)
	}
}
