package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"fsmpAdvisor/domain"
	"fsmpAdvisor/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

type ProductService interface {
	GetAllProducts(ctx context.Context) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id uint64) (*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uint64) error
	GetNutrition(ctx context.Context, registrationNumber string) (*domain.NutritionProfile, error)
	UpsertNutrition(ctx context.Context, profile *domain.NutritionProfile) error
}

type ProductHandler struct {
	productService ProductService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewProductHandler(productService ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type CreateProductRequest struct {
	RegistrationNumber string `json:"registration_number" validate:"required"`
	ProductName        string `json:"product_name" validate:"required"`
	Manufacturer       string `json:"manufacturer"`
	Category           string `json:"category"`
	PhysicalState      string `json:"physical_state"`
	EligibilityText    string `json:"eligibility_text"`
}

type UpdateProductRequest struct {
	RegistrationNumber string `json:"registration_number" validate:"required"`
	ProductName        string `json:"product_name" validate:"required"`
	Manufacturer       string `json:"manufacturer"`
	Category           string `json:"category"`
	PhysicalState      string `json:"physical_state"`
	EligibilityText    string `json:"eligibility_text"`
}

type NutritionRequest struct {
	EnergyKJ      float64 `json:"energy_kj" validate:"gte=0"`
	FatG          float64 `json:"fat_g" validate:"gte=0"`
	CarbohydrateG float64 `json:"carbohydrate_g" validate:"gte=0"`
	ProteinG      float64 `json:"protein_g" validate:"gte=0"`
	SodiumMG      float64 `json:"sodium_mg" validate:"gte=0"`
	ChlorideMG    float64 `json:"chloride_mg" validate:"gte=0"`
	PotassiumMG   float64 `json:"potassium_mg" validate:"gte=0"`
	PhosphorusMG  float64 `json:"phosphorus_mg" validate:"gte=0"`
}

func (h *ProductHandler) GetAllProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.productService.GetAllProducts(ctx)
	if err != nil {
		logger.Error("Failed to find all products", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully get all products",
		"products": products,
	})
}

func (h *ProductHandler) GetProductByID(c echo.Context) error {
	productIdStr := c.Param("id")

	productId, err := strconv.ParseUint(productIdStr, 10, 64)
	if err != nil {
		logger.Error("Invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product, err := h.productService.GetProductByID(ctx, productId)
	if err != nil {
		if err.Error() == "product not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully find product by id",
		"product": product,
	})
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate product request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product := &domain.Product{
		RegistrationNumber: req.RegistrationNumber,
		ProductName:        req.ProductName,
		Manufacturer:       req.Manufacturer,
		Category:           req.Category,
		PhysicalState:      req.PhysicalState,
		EligibilityText:    req.EligibilityText,
	}

	newProduct, err := h.productService.CreateProduct(ctx, product)
	if err != nil {
		logger.Error("Failed to create product", err)
		if err.Error() == "registration number is required" ||
			err.Error() == "product name is required" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "product successfully created",
		"product": newProduct,
	})
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	productIdStr := c.Param("id")

	productId, err := strconv.ParseUint(productIdStr, 10, 64)
	if err != nil {
		logger.Error("Invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate product request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product := &domain.Product{
		ID:                 productId,
		RegistrationNumber: req.RegistrationNumber,
		ProductName:        req.ProductName,
		Manufacturer:       req.Manufacturer,
		Category:           req.Category,
		PhysicalState:      req.PhysicalState,
		EligibilityText:    req.EligibilityText,
	}

	updatedProduct, err := h.productService.UpdateProduct(ctx, product)
	if err != nil {
		logger.Error("Failed to update product", err)
		if err.Error() == "product not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if err.Error() == "product ID is required" ||
			err.Error() == "registration number is required" ||
			err.Error() == "product name is required" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully update product",
		"product": updatedProduct,
	})
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	productIdStr := c.Param("id")

	productId, err := strconv.ParseUint(productIdStr, 10, 64)
	if err != nil {
		logger.Error("Invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.productService.DeleteProduct(ctx, productId); err != nil {
		logger.Error("Failed to delete product", err)
		if err.Error() == "product not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully delete product",
	})
}

func (h *ProductHandler) GetNutrition(c echo.Context) error {
	registrationNumber := c.Param("registration_number")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	profile, err := h.productService.GetNutrition(ctx, registrationNumber)
	if err != nil {
		if err.Error() == "nutrition profile not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "successfully find nutrition profile",
		"nutrition": profile,
	})
}

func (h *ProductHandler) UpsertNutrition(c echo.Context) error {
	registrationNumber := c.Param("registration_number")

	var req NutritionRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate nutrition request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	profile := &domain.NutritionProfile{
		RegistrationNumber: registrationNumber,
		EnergyKJ:           req.EnergyKJ,
		FatG:               req.FatG,
		CarbohydrateG:      req.CarbohydrateG,
		ProteinG:           req.ProteinG,
		SodiumMG:           req.SodiumMG,
		ChlorideMG:         req.ChlorideMG,
		PotassiumMG:        req.PotassiumMG,
		PhosphorusMG:       req.PhosphorusMG,
	}

	if err := h.productService.UpsertNutrition(ctx, profile); err != nil {
		logger.Error("Failed to upsert nutrition profile", err)
		if err.Error() == "registration number is required" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "successfully save nutrition profile",
		"nutrition": profile,
	})
}
