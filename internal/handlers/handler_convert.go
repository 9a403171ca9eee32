package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openpurse/walletd/internal/apperrors"
	portssvc "github.com/openpurse/walletd/internal/core/ports/services"
	"github.com/openpurse/walletd/internal/dto"
	"github.com/openpurse/walletd/internal/middleware"
)

// convertHandler handles HTTP requests for currency conversion.
type convertHandler struct {
	converterService portssvc.ConverterSvcFacade
}

// newConvertHandler creates a new convertHandler.
func newConvertHandler(cs portssvc.ConverterSvcFacade) *convertHandler {
	return &convertHandler{
		converterService: cs,
	}
}

// RegisterConvertRoutes registers the conversion route.
func RegisterConvertRoutes(rg *gin.RouterGroup, converterService portssvc.ConverterSvcFacade) {
	h := newConvertHandler(converterService)
	rg.POST("/convert", h.convert)
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Converts an amount from one registered currency to another, pivoting through the reference currency with half-to-even rounding
// @Tags convert
// @Accept  json
// @Produce  json
// @Param   conversion body dto.ConvertRequest true "Conversion details"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Unknown currency"
// @Failure 422 {object} map[string]string "Result not representable"
// @Router /convert [post]
func (h *convertHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	logger = logger.With(
		slog.String("from_currency", req.FromCurrency),
		slog.String("to_currency", req.ToCurrency),
	)
	logger.Info("Received request to convert", slog.String("amount", req.Amount.String()))

	converted, err := h.converterService.Convert(req.Amount, req.FromCurrency, req.ToCurrency)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnknownCurrency):
			logger.Warn("Unknown currency in conversion", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrConversionOverflow), errors.Is(err, apperrors.ErrConversionImprecise):
			logger.Warn("Conversion not representable", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to convert in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert amount"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ConvertResponse{
		Amount:       converted,
		CurrencyCode: req.ToCurrency,
	})
}
