package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shwefx/money_changer_app/internal/apperrors"
	portssvc "github.com/shwefx/money_changer_app/internal/core/ports/services"
	"github.com/shwefx/money_changer_app/internal/dto"
	"github.com/shwefx/money_changer_app/internal/middleware"
)

// reportingHandler handles HTTP requests for report rollups.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/daily", h.dailyReport)
		reports.GET("/range", h.rangeReport)
		reports.GET("/monthly", h.monthlyReport)
		reports.GET("/yearly", h.yearlyReport)
	}
}

// dailyReport godoc
// @Summary Daily transaction summary
// @Tags reports
// @Produce json
// @Param date query string true "Business date (YYYY-MM-DD)"
// @Success 200 {object} dto.DailyReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reports/daily [get]
func (h *reportingHandler) dailyReport(c *gin.Context) {
	date, ok := dateFromQuery(c)
	if !ok {
		return
	}

	report, err := h.reportingService.DailyReport(c.Request.Context(), date)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to build daily report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build daily report"})
		return
	}
	c.JSON(http.StatusOK, dto.ToDailyReportResponse(report))
}

// rangeReport godoc
// @Summary Range summary with profit/loss
// @Description Transaction totals over an inclusive range plus profit/loss from days closed within it.
// @Tags reports
// @Produce json
// @Param start query string true "Start date (YYYY-MM-DD)"
// @Param end query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.RangeReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reports/range [get]
func (h *reportingHandler) rangeReport(c *gin.Context) {
	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid start date, expected YYYY-MM-DD"})
		return
	}
	end, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid end date, expected YYYY-MM-DD"})
		return
	}

	report, err := h.reportingService.RangeReport(c.Request.Context(), start, end)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to build range report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build range report"})
		return
	}
	c.JSON(http.StatusOK, dto.ToRangeReportResponse(report))
}

// monthlyReport godoc
// @Summary Monthly rollup for one year
// @Tags reports
// @Produce json
// @Param year query int true "Year (e.g. 2025)"
// @Success 200 {array} dto.PeriodSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reports/monthly [get]
func (h *reportingHandler) monthlyReport(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid year"})
		return
	}

	summaries, err := h.reportingService.MonthlyReport(c.Request.Context(), year)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to build monthly report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build monthly report"})
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodSummaryResponses(summaries))
}

// yearlyReport godoc
// @Summary Yearly rollup over all data
// @Tags reports
// @Produce json
// @Success 200 {array} dto.PeriodSummaryResponse
// @Failure 500 {object} ErrorResponse
// @Router /reports/yearly [get]
func (h *reportingHandler) yearlyReport(c *gin.Context) {
	summaries, err := h.reportingService.YearlyReport(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to build yearly report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build yearly report"})
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodSummaryResponses(summaries))
}
