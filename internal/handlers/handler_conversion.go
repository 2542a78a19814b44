package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wekesamabwi/theboat_backend/internal/apperrors"
	"github.com/wekesamabwi/theboat_backend/internal/core/ports"
	"github.com/wekesamabwi/theboat_backend/internal/dto"
	"github.com/wekesamabwi/theboat_backend/internal/middleware"
)

const defaultConversionPageSize = 50

// ConversionHandler handles conversion requests and ledger queries.
type ConversionHandler struct {
	converterService ports.ConverterService
	ledgerService    ports.LedgerService
}

// NewConversionHandler creates a new ConversionHandler.
func NewConversionHandler(converterService ports.ConverterService, ledgerService ports.LedgerService) *ConversionHandler {
	return &ConversionHandler{
		converterService: converterService,
		ledgerService:    ledgerService,
	}
}

// registerConversionRoutes sets up the authenticated conversion routes.
func registerConversionRoutes(rg *gin.RouterGroup, converterService ports.ConverterService, ledgerService ports.LedgerService) {
	h := NewConversionHandler(converterService, ledgerService)

	conversions := rg.Group("/conversions")
	{
		conversions.POST("", h.Convert)
		conversions.GET("", h.ListConversions)
	}
}

// Convert computes a conversion and returns it; the ledger record is
// written in the background.
func (h *ConversionHandler) Convert(c *gin.Context) {
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: fromCurrency and toCurrency must be supported currency codes"})
		return
	}

	result, err := h.converterService.Convert(c.Request.Context(), req.Amount, req.FromCurrency, req.ToCurrency)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Conversion failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to convert"})
		return
	}

	c.JSON(http.StatusOK, dto.ToConvertResponse(*result))
}

// ListConversions returns one reverse-chronological page of the ledger.
func (h *ConversionHandler) ListConversions(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultConversionPageSize)))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid limit parameter"})
		return
	}

	resp, err := h.ledgerService.ListConversions(c.Request.Context(), limit, c.Query("nextToken"))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid nextToken parameter"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list conversions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list conversions"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
