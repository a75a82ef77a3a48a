package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"fsmpAdvisor/domain"
	"fsmpAdvisor/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type StatsService interface {
	ApprovalTrends(ctx context.Context) ([]domain.YearlyApprovals, error)
	CategoryCounts(ctx context.Context) (*domain.CategoryReport, error)
	PopulationSplit(ctx context.Context) ([]domain.PopulationSourceCount, error)
	NutrientDistribution(ctx context.Context) (*domain.DistributionReport, error)
	PhraseFrequency(ctx context.Context, n int) ([]domain.PhraseCount, error)
}

type StatsHandler struct {
	statsService StatsService
	timeout      time.Duration
}

func NewStatsHandler(statsService StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		timeout:      10 * time.Second,
	}
}

func (h *StatsHandler) ApprovalTrends(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	trends, err := h.statsService.ApprovalTrends(ctx)
	if err != nil {
		logger.Error("Failed to compute approval trends", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(trends))
}

func (h *StatsHandler) CategoryCounts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	report, err := h.statsService.CategoryCounts(ctx)
	if err != nil {
		logger.Error("Failed to compute category counts", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(report))
}

func (h *StatsHandler) PopulationSplit(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	split, err := h.statsService.PopulationSplit(ctx)
	if err != nil {
		logger.Error("Failed to compute population split", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(split))
}

func (h *StatsHandler) NutrientDistribution(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	report, err := h.statsService.NutrientDistribution(ctx)
	if err != nil {
		logger.Error("Failed to compute nutrient distribution", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(report))
}

func (h *StatsHandler) PhraseFrequency(c echo.Context) error {
	n := 20
	if raw := c.QueryParam("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid n"})
		}
		n = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	freq, err := h.statsService.PhraseFrequency(ctx, n)
	if err != nil {
		logger.Error("Failed to compute phrase frequency", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(freq))
}
