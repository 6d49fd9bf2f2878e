package controller

import (
	"net/http"
	"strconv"

	"github.com/datlq-dev/quizhub/internal/dto"
	"github.com/datlq-dev/quizhub/internal/middleware"
	"github.com/datlq-dev/quizhub/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AnalyticsController struct {
	analyticsService service.AnalyticsService
}

func NewAnalyticsController(analyticsService service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService}
}

// GetOverview godoc
// @Summary Overall analytics for the caller
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AnalyticsOverviewDTO
// @Router /api/analytics [get]
func (c *AnalyticsController) GetOverview(ctx *gin.Context) {
	resp, err := c.analyticsService.GetOverview(middleware.UserID(ctx))
	if err != nil {
		log.Error().Err(err).Msg("GetOverview: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetPerformanceGraph godoc
// @Summary Per-day performance within a lookback window
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param period query int false "Lookback window in days" default(30)
// @Success 200 {object} dto.PerformanceGraphDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/analytics/graph [get]
func (c *AnalyticsController) GetPerformanceGraph(ctx *gin.Context) {
	periodDays := 0
	if periodStr := ctx.Query("period"); periodStr != "" {
		val, err := strconv.Atoi(periodStr)
		if err != nil || val <= 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid period"})
			return
		}
		periodDays = val
	}

	resp, err := c.analyticsService.GetPerformanceGraph(middleware.UserID(ctx), periodDays)
	if err != nil {
		log.Error().Err(err).Msg("GetPerformanceGraph: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetSubjectBreakdown godoc
// @Summary Performance grouped by quiz title
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SubjectBreakdownDTO
// @Router /api/analytics/subjects [get]
func (c *AnalyticsController) GetSubjectBreakdown(ctx *gin.Context) {
	resp, err := c.analyticsService.GetSubjectBreakdown(middleware.UserID(ctx))
	if err != nil {
		log.Error().Err(err).Msg("GetSubjectBreakdown: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
