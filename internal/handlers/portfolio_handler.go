package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"agency_admin/internal/services"
	"agency_admin/internal/services/dto"
	"agency_admin/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	*BaseHandler
	portfolioService services.PortfolioService
}

func NewPortfolioHandler(base *BaseHandler, portfolioService services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		BaseHandler:      base,
		portfolioService: portfolioService,
	}
}

func (h *PortfolioHandler) List(c *gin.Context) {
	items, err := h.portfolioService.List(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *PortfolioHandler) Get(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	item, err := h.portfolioService.Get(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// Create accepts a multipart form with title, description, category and
// an image file.
func (h *PortfolioHandler) Create(c *gin.Context) {
	var req dto.CreatePortfolioRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	file, err := formImage(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	item, err := h.portfolioService.Add(h.GetDB(c), &req, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// Update accepts the same multipart form; the image file is optional
// and the current one is kept when it is absent.
func (h *PortfolioHandler) Update(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdatePortfolioRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	file, err := formImage(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	item, err := h.portfolioService.Update(h.GetDB(c), id, &req, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *PortfolioHandler) Delete(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.portfolioService.Delete(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Portfolio item deleted"})
}

// formImage pulls the optional "image" part out of the multipart form.
// A missing part is not an error; a malformed form is.
func formImage(c *gin.Context) (*multipart.FileHeader, error) {
	file, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, apperrors.NewBadRequestError("Invalid multipart form: " + err.Error())
	}
	return file, nil
}
