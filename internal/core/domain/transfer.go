package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Address is a payable destination understood by the payment transport.
type Address string

// TransferStatus is the terminal state of a send.
type TransferStatus string

const (
	TransferCommitted TransferStatus = "COMMITTED"
	TransferFailed    TransferStatus = "FAILED"
)

// Transfer records the outcome of a single outgoing send. Amount is always in
// reference units.
type Transfer struct {
	TransferID  string          `json:"transferID"`
	Amount      decimal.Decimal `json:"amount"`
	ToAddress   Address         `json:"toAddress"`
	Note        string          `json:"note,omitempty"`
	Status      TransferStatus  `json:"status"`
	CompletedAt time.Time       `json:"completedAt"`
}
