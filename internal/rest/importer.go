package rest

import (
	"context"
	"io"
	"net/http"
	"time"

	"fsmpAdvisor/domain"
	"fsmpAdvisor/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ImportService interface {
	ImportProductsCSV(ctx context.Context, r io.Reader) (int, error)
	ImportNutritionCSV(ctx context.Context, r io.Reader) (int, error)
	ImportLabelDocument(ctx context.Context, registrationNumber, text string) (*domain.Product, error)
}

type ImportHandler struct {
	importService ImportService
	validator     *validator.Validate
	timeout       time.Duration
}

func NewImportHandler(importService ImportService) *ImportHandler {
	return &ImportHandler{
		importService: importService,
		validator:     validator.New(),
		// Bulk imports get more room than the interactive endpoints.
		timeout: 60 * time.Second,
	}
}

type ImportLabelRequest struct {
	RegistrationNumber string `json:"registration_number" validate:"required"`
	Text               string `json:"text" validate:"required"`
}

func (h *ImportHandler) openUpload(c echo.Context) (io.ReadCloser, error) {
	file, err := c.FormFile("file")
	if err != nil {
		return nil, err
	}
	return file.Open()
}

// ImportProducts ingests a product CSV uploaded as multipart field "file".
func (h *ImportHandler) ImportProducts(c echo.Context) error {
	src, err := h.openUpload(c)
	if err != nil {
		logger.Error("Failed to read uploaded file", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "file upload is required"})
	}
	defer src.Close()

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	imported, err := h.importService.ImportProductsCSV(ctx, src)
	if err != nil {
		logger.Error("Failed to import products", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "product import finished",
		"imported": imported,
	})
}

// ImportNutrition ingests a nutrition CSV uploaded as multipart field "file".
func (h *ImportHandler) ImportNutrition(c echo.Context) error {
	src, err := h.openUpload(c)
	if err != nil {
		logger.Error("Failed to read uploaded file", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "file upload is required"})
	}
	defer src.Close()

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	imported, err := h.importService.ImportNutritionCSV(ctx, src)
	if err != nil {
		logger.Error("Failed to import nutrition profiles", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "nutrition import finished",
		"imported": imported,
	})
}

// ImportLabel parses a raw label document for one registration number.
func (h *ImportHandler) ImportLabel(c echo.Context) error {
	var req ImportLabelRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate label import request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product, err := h.importService.ImportLabelDocument(ctx, req.RegistrationNumber, req.Text)
	if err != nil {
		logger.Error("Failed to import label document", err)
		if err.Error() == "registration number is required" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "label import finished",
		"product": product,
	})
}
