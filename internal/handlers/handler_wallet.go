package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openpurse/walletd/internal/apperrors"
	"github.com/openpurse/walletd/internal/core/domain"
	portssvc "github.com/openpurse/walletd/internal/core/ports/services"
	"github.com/openpurse/walletd/internal/dto"
	"github.com/openpurse/walletd/internal/middleware"
)

// walletHandler handles HTTP requests against the wallet ledger.
type walletHandler struct {
	walletService    portssvc.WalletSvcFacade
	converterService portssvc.ConverterSvcFacade
}

// newWalletHandler creates a new walletHandler.
func newWalletHandler(ws portssvc.WalletSvcFacade, cs portssvc.ConverterSvcFacade) *walletHandler {
	return &walletHandler{
		walletService:    ws,
		converterService: cs,
	}
}

// RegisterWalletRoutes registers wallet routes. The mutating routes take an
// extra rate-limiting middleware.
func RegisterWalletRoutes(rg *gin.RouterGroup, walletService portssvc.WalletSvcFacade, converterService portssvc.ConverterSvcFacade, sendLimiter gin.HandlerFunc) {
	h := newWalletHandler(walletService, converterService)

	rg.GET("/balance", h.getBalance)
	rg.POST("/send", sendLimiter, h.send)
	rg.POST("/request", sendLimiter, h.requestFunds)
}

// getBalance godoc
// @Summary Get the wallet balance
// @Description Returns the committed and available balance in reference units
// @Tags wallet
// @Produce  json
// @Success 200 {object} dto.BalanceResponse
// @Router /balance [get]
func (h *walletHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to get balance")

	c.JSON(http.StatusOK, dto.BalanceResponse{
		Balance:      h.walletService.CurrentBalance(),
		Available:    h.walletService.AvailableBalance(),
		CurrencyCode: h.converterService.ReferenceCurrency().CurrencyCode,
	})
}

// send godoc
// @Summary Send funds
// @Description Converts the amount to reference units, authorizes it against the balance and executes the transfer
// @Tags wallet
// @Accept  json
// @Produce  json
// @Param   send body dto.SendRequest true "Send details"
// @Success 200 {object} dto.SendResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Unknown currency or user"
// @Failure 422 {object} dto.SendResponse "Insufficient funds"
// @Failure 502 {object} dto.SendResponse "Transfer failed"
// @Router /send [post]
func (h *walletHandler) send(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for send", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	logger = logger.With(slog.String("currency", req.Currency))
	logger.Info("Received request to send funds", slog.String("amount", req.Amount.String()))

	referenceAmount, err := h.converterService.ToReference(req.Amount, req.Currency)
	if err != nil {
		h.renderConversionError(c, logger, err)
		return
	}

	toAddress, ok := h.resolveCounterparty(c, logger, req.ToUserID, req.ToAddress)
	if !ok {
		return
	}

	transfer, err := h.walletService.Send(c.Request.Context(), referenceAmount, toAddress, req.Note, req.IdempotencyKey)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInsufficientFunds):
			logger.Warn("Send rejected, insufficient funds")
			c.JSON(http.StatusUnprocessableEntity, dto.SendResponse{Status: dto.SendStatusInsufficientFunds})
		case errors.Is(err, apperrors.ErrTransferFailed):
			logger.Warn("Send not confirmed by transport", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, dto.SendResponse{Status: dto.SendStatusTransferFailed})
		default:
			logger.Error("Failed to send in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send funds"})
		}
		return
	}

	logger.Info("Send committed", slog.String("transfer_id", transfer.TransferID))
	c.JSON(http.StatusOK, dto.ToSendResponse(transfer, h.converterService.ReferenceCurrency().CurrencyCode))
}

// requestFunds godoc
// @Summary Request funds
// @Description Issues a payment request to the given counterparty; the balance is never mutated
// @Tags wallet
// @Accept  json
// @Produce  json
// @Param   request body dto.RequestFundsRequest true "Request details"
// @Success 200 {object} dto.RequestFundsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Unknown currency or user"
// @Failure 502 {object} dto.RequestFundsResponse "Request failed"
// @Router /request [post]
func (h *walletHandler) requestFunds(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RequestFundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	logger = logger.With(slog.String("currency", req.Currency))
	logger.Info("Received request for funds", slog.String("amount", req.Amount.String()))

	referenceAmount, err := h.converterService.ToReference(req.Amount, req.Currency)
	if err != nil {
		h.renderConversionError(c, logger, err)
		return
	}

	fromAddress, ok := h.resolveCounterparty(c, logger, req.FromUserID, req.FromAddress)
	if !ok {
		return
	}

	if err := h.walletService.RequestReceive(c.Request.Context(), referenceAmount, fromAddress, req.Note); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Request rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrRequestFailed):
			logger.Warn("Payment request not confirmed by transport", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, dto.RequestFundsResponse{Status: dto.RequestStatusFailed})
		default:
			logger.Error("Failed to request funds in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to request funds"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.RequestFundsResponse{Status: dto.RequestStatusOK})
}

// resolveCounterparty turns a userID/address pair (exactly one set, enforced
// by binding) into a payable address, rendering the error response itself on
// failure.
func (h *walletHandler) resolveCounterparty(c *gin.Context, logger *slog.Logger, userID, address string) (domain.Address, bool) {
	if userID == "" {
		return domain.Address(address), true
	}

	resolved, err := h.walletService.ResolveAddress(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownUser) {
			logger.Warn("Unknown user in directory", slog.String("user_id", userID))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to resolve address", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve address"})
		}
		return "", false
	}
	return resolved, true
}

// renderConversionError maps converter errors on the send/request path.
func (h *walletHandler) renderConversionError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrUnknownCurrency):
		logger.Warn("Unknown currency", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConversionOverflow), errors.Is(err, apperrors.ErrConversionImprecise):
		logger.Warn("Amount not representable in reference units", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		logger.Error("Failed to convert amount", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert amount"})
	}
}
