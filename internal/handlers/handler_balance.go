package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wekesamabwi/theboat_backend/internal/core/ports"
	"github.com/wekesamabwi/theboat_backend/internal/dto"
	"github.com/wekesamabwi/theboat_backend/internal/middleware"
)

// BalanceHandler handles reads and writes of the trading balance.
type BalanceHandler struct {
	balanceService ports.BalanceService
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(balanceService ports.BalanceService) *BalanceHandler {
	return &BalanceHandler{balanceService: balanceService}
}

// registerBalanceRoutes sets up the authenticated balance routes.
func registerBalanceRoutes(rg *gin.RouterGroup, balanceService ports.BalanceService) {
	h := NewBalanceHandler(balanceService)

	balance := rg.Group("/balance")
	{
		balance.GET("", h.GetBalance)
		balance.PUT("", h.UpdateBalance)
	}
}

// GetBalance returns the stored balance, 0.0 before the first write.
func (h *BalanceHandler) GetBalance(c *gin.Context) {
	amount, err := h.balanceService.GetBalance(c.Request.Context())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to get balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get balance"})
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{Amount: amount})
}

// UpdateBalance replaces the stored balance.
func (h *BalanceHandler) UpdateBalance(c *gin.Context) {
	var req dto.UpdateBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: amount is required and must be >= 0"})
		return
	}

	if err := h.balanceService.SetBalance(c.Request.Context(), *req.Amount); err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to set balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to set balance"})
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{Amount: *req.Amount})
}
