package dto

import (
	"github.com/openpurse/walletd/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceResponse reports the wallet balance in reference units.
type BalanceResponse struct {
	Balance      decimal.Decimal `json:"balance"`
	Available    decimal.Decimal `json:"available"`
	CurrencyCode string          `json:"currencyCode"`
}

// Send outcome statuses returned to the caller.
const (
	SendStatusCommitted         = "committed"
	SendStatusInsufficientFunds = "insufficient_funds"
	SendStatusTransferFailed    = "transfer_failed"
)

// SendRequest asks the wallet to transfer funds. Exactly one of ToUserID and
// ToAddress must be set; a user identifier is resolved through the address
// directory first. The amount is denominated in the given currency and is
// converted to reference units before authorization.
type SendRequest struct {
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Currency       string          `json:"currency" binding:"required,uppercase,len=3"`
	ToUserID       string          `json:"toUserID,omitempty" binding:"required_without=ToAddress,excluded_with=ToAddress"`
	ToAddress      string          `json:"toAddress,omitempty" binding:"required_without=ToUserID"`
	Note           string          `json:"note,omitempty"`
	IdempotencyKey string          `json:"idempotencyKey,omitempty"`
}

// SendResponse reports the outcome of a send. Amount is the spent amount in
// reference units; it is zero unless the transfer committed.
type SendResponse struct {
	Status       string          `json:"status"` // committed | insufficient_funds | transfer_failed
	TransferID   string          `json:"transferID,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode,omitempty"`
}

// ToSendResponse converts a committed domain.Transfer to a SendResponse DTO.
func ToSendResponse(transfer *domain.Transfer, referenceCode string) SendResponse {
	return SendResponse{
		Status:       SendStatusCommitted,
		TransferID:   transfer.TransferID,
		Amount:       transfer.Amount,
		CurrencyCode: referenceCode,
	}
}

// Request outcome statuses returned to the caller.
const (
	RequestStatusOK     = "ok"
	RequestStatusFailed = "failed"
)

// RequestFundsRequest asks an address to pay us. Exactly one of FromUserID and
// FromAddress must be set.
type RequestFundsRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Currency    string          `json:"currency" binding:"required,uppercase,len=3"`
	FromUserID  string          `json:"fromUserID,omitempty" binding:"required_without=FromAddress,excluded_with=FromAddress"`
	FromAddress string          `json:"fromAddress,omitempty" binding:"required_without=FromUserID"`
	Note        string          `json:"note,omitempty"`
}

// RequestFundsResponse reports the outcome of a payment request.
type RequestFundsResponse struct {
	Status string `json:"status"` // ok | failed
}
