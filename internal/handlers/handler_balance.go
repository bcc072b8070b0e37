package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shwefx/money_changer_app/internal/apperrors"
	portssvc "github.com/shwefx/money_changer_app/internal/core/ports/services"
	"github.com/shwefx/money_changer_app/internal/dto"
	"github.com/shwefx/money_changer_app/internal/middleware"
)

// balanceHandler handles HTTP requests for the balance engine.
type balanceHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

// newBalanceHandler creates a new balanceHandler.
func newBalanceHandler(bs portssvc.BalanceSvcFacade) *balanceHandler {
	return &balanceHandler{
		balanceService: bs,
	}
}

// RegisterBalanceRoutes registers balance engine routes. Day reopen and the
// FX sub-ledger are admin-only.
func RegisterBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade) {
	h := newBalanceHandler(balanceService)

	balances := rg.Group("/balances")
	{
		balances.GET("", h.getBalance)
		balances.POST("/open", h.setOpening)
		balances.POST("/close", h.closeDay)

		admin := balances.Group("", middleware.RequireRole(middleware.RoleAdmin))
		{
			admin.POST("/reopen", h.reopenDay)
			admin.POST("/open-fx", h.openFx)
			admin.POST("/close-fx", h.closeFx)
			admin.DELETE("/fx", h.deleteFx)
		}
	}
}

func dateFromQuery(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "date query parameter is required"})
		return time.Time{}, false
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}

// getBalance godoc
// @Summary Reconciliation view for a date
// @Description Returns the stored balance, transaction totals, suggested closings and FX lines for one business date.
// @Tags balances
// @Produce json
// @Param date query string true "Business date (YYYY-MM-DD)"
// @Success 200 {object} dto.BalanceSnapshotResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /balances [get]
func (h *balanceHandler) getBalance(c *gin.Context) {
	date, ok := dateFromQuery(c)
	if !ok {
		return
	}

	snapshot, err := h.balanceService.GetBalance(c.Request.Context(), date)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to load balance snapshot", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load balance"})
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSnapshotResponse(snapshot))
}

// setOpening godoc
// @Summary Set the opening balance
// @Description Creates or overwrites the opening balance of an open business date.
// @Tags balances
// @Accept json
// @Produce json
// @Param balance body dto.OpenBalanceRequest true "Date and opening amount"
// @Success 200 {object} dto.DailyBalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /balances/open [post]
func (h *balanceHandler) setOpening(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.OpenBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	date, _ := time.Parse("2006-01-02", req.Date)

	balance, err := h.balanceService.SetOpening(c.Request.Context(), date, *req.OpeningBalanceMMK)
	if err != nil {
		if errors.Is(err, apperrors.ErrDayClosed) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Business day is closed"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to set opening balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to set opening balance"})
		return
	}

	logger.Info("Opening balance set", slog.String("date", req.Date))
	c.JSON(http.StatusOK, dto.ToDailyBalanceResponse(balance))
}

// closeDay godoc
// @Summary Close a business date
// @Description Stores the counted closing balance and locks the day against ledger mutation.
// @Tags balances
// @Accept json
// @Produce json
// @Param balance body dto.CloseBalanceRequest true "Date and closing amount"
// @Success 200 {object} dto.DailyBalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /balances/close [post]
func (h *balanceHandler) closeDay(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CloseBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	date, _ := time.Parse("2006-01-02", req.Date)

	balance, err := h.balanceService.CloseDay(c.Request.Context(), date, *req.ClosingBalanceMMK)
	if err != nil {
		if errors.Is(err, apperrors.ErrPrereqMissing) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No opening balance set for this date"})
			return
		}
		logger.Error("Failed to close day", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to close day"})
		return
	}

	logger.Info("Day closed", slog.String("date", req.Date))
	c.JSON(http.StatusOK, dto.ToDailyBalanceResponse(balance))
}

// reopenDay godoc
// @Summary Reopen a closed business date
// @Description Clears the closed state so the day's ledger can be corrected (admin only).
// @Tags balances
// @Accept json
// @Produce json
// @Param balance body dto.ReopenBalanceRequest true "Date"
// @Success 200 {object} dto.DailyBalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /balances/reopen [post]
func (h *balanceHandler) reopenDay(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ReopenBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	date, _ := time.Parse("2006-01-02", req.Date)

	balance, err := h.balanceService.ReopenDay(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No balance record for this date"})
			return
		}
		logger.Error("Failed to reopen day", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to reopen day"})
		return
	}

	logger.Info("Day reopened", slog.String("date", req.Date))
	c.JSON(http.StatusOK, dto.ToDailyBalanceResponse(balance))
}

// openFx godoc
// @Summary Set an FX opening amount
// @Description Creates or overwrites the opening amount of one foreign-currency till (admin only).
// @Tags balances
// @Accept json
// @Produce json
// @Param fx body dto.OpenFxRequest true "Date, currency and opening amount"
// @Success 200 {object} dto.FxBalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /balances/open-fx [post]
func (h *balanceHandler) openFx(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.OpenFxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	date, _ := time.Parse("2006-01-02", req.Date)

	fx, err := h.balanceService.OpenFx(c.Request.Context(), date, req.Currency, *req.OpeningAmount)
	if err != nil {
		h.writeFxError(c, logger, err, "Failed to set fx opening")
		return
	}

	logger.Info("FX opening set", slog.String("date", req.Date), slog.String("currency", req.Currency))
	c.JSON(http.StatusOK, dto.ToFxBalanceResponse(fx))
}

// closeFx godoc
// @Summary Set an FX closing amount
// @Description Stores the counted closing amount of one foreign-currency till (admin only).
// @Tags balances
// @Accept json
// @Produce json
// @Param fx body dto.CloseFxRequest true "Date, currency and closing amount"
// @Success 200 {object} dto.FxBalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /balances/close-fx [post]
func (h *balanceHandler) closeFx(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CloseFxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	date, _ := time.Parse("2006-01-02", req.Date)

	fx, err := h.balanceService.CloseFx(c.Request.Context(), date, req.Currency, *req.ClosingAmount)
	if err != nil {
		h.writeFxError(c, logger, err, "Failed to set fx closing")
		return
	}

	logger.Info("FX closing set", slog.String("date", req.Date), slog.String("currency", req.Currency))
	c.JSON(http.StatusOK, dto.ToFxBalanceResponse(fx))
}

// deleteFx godoc
// @Summary Delete an FX row
// @Description Removes one foreign-currency till row from an open day (admin only).
// @Tags balances
// @Produce json
// @Param date query string true "Business date (YYYY-MM-DD)"
// @Param currency query string true "Currency code"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /balances/fx [delete]
func (h *balanceHandler) deleteFx(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date, ok := dateFromQuery(c)
	if !ok {
		return
	}
	currency := c.Query("currency")
	if currency == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "currency query parameter is required"})
		return
	}

	err := h.balanceService.DeleteFx(c.Request.Context(), date, currency)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "FX balance not found"})
		case errors.Is(err, apperrors.ErrDayClosed):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Business day is closed"})
		default:
			logger.Error("Failed to delete fx balance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete fx balance"})
		}
		return
	}

	logger.Info("FX balance deleted", slog.String("currency", currency))
	c.Status(http.StatusNoContent)
}

func (h *balanceHandler) writeFxError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrDayClosed):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Business day is closed"})
	case errors.Is(err, apperrors.ErrPrereqMissing):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Required prior state is missing for this date"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnknownCurrency):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Currency not found or inactive"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}
