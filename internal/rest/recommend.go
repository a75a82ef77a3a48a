package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"fsmpAdvisor/domain"
	"fsmpAdvisor/pkg/logger"
	"fsmpAdvisor/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type RecommenderService interface {
	Recommend(ctx context.Context, description string, limit int) ([]domain.Recommendation, error)
	DebugRecommend(ctx context.Context, description string, limit int) ([]domain.Evaluation, error)
	RecentEvents(ctx context.Context, limit int) ([]domain.RecommendationEvent, error)
}

type RecommendHandler struct {
	recommenderService RecommenderService
	validator          *validator.Validate
	timeout            time.Duration
}

func NewRecommendHandler(recommenderService RecommenderService) *RecommendHandler {
	return &RecommendHandler{
		recommenderService: recommenderService,
		validator:          validator.New(),
		timeout:            10 * time.Second,
	}
}

type RecommendRequest struct {
	Description string `json:"description" validate:"required"`
	N           int    `json:"n" validate:"gte=0"`
}

// Recommend ranks the catalog against a free-text consumer description.
func (h *RecommendHandler) Recommend(c echo.Context) error {
	start := time.Now()

	var req RecommendRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate recommend request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recommendations, err := h.recommenderService.Recommend(ctx, req.Description, req.N)
	if err != nil {
		logger.Error("Failed to build recommendations", err)
		if err.Error() == "description is required" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.RecommendRequests.Inc()
	metrics.RecommendLatency.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recommendations))
}

// DebugRecommend returns every evaluation, including products that failed
// the essential conditions, with their full score breakdown.
func (h *RecommendHandler) DebugRecommend(c echo.Context) error {
	var req RecommendRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate recommend request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	evaluations, err := h.recommenderService.DebugRecommend(ctx, req.Description, req.N)
	if err != nil {
		logger.Error("Failed to build debug evaluations", err)
		if err.Error() == "description is required" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(evaluations))
}

// RecentEvents lists the newest recommendation audit records.
func (h *RecommendHandler) RecentEvents(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid limit"})
		}
		limit = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	events, err := h.recommenderService.RecentEvents(ctx, limit)
	if err != nil {
		logger.Error("Failed to list recommendation events", err)
		if err.Error() == "event store is not configured" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(events))
}
