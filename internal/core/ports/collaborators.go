package ports

import (
	"context"

	"github.com/openpurse/walletd/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddressDirectory resolves opaque user identifiers to payable addresses.
// Implementations may be backed by a static table, an address book, or a
// remote directory service. A miss is reported as apperrors.ErrNotFound.
type AddressDirectory interface {
	ResolveAddress(ctx context.Context, userID string) (domain.Address, error)
}

// PaymentTransport executes transfers against an external payment network.
// Transfer must return only once the outcome is known; the wallet commits its
// balance mutation solely on a nil error. Implementations are expected to
// honor ctx cancellation and deadlines.
type PaymentTransport interface {
	Transfer(ctx context.Context, amount decimal.Decimal, to domain.Address, note string) error
}

// PaymentRequestTransport issues payment requests to an external network.
// Requests never affect the local balance regardless of outcome.
type PaymentRequestTransport interface {
	RequestPayment(ctx context.Context, amount decimal.Decimal, from domain.Address, note string) error
}
