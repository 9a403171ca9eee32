package services

import (
	"context"

	"github.com/openpurse/walletd/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WalletReaderSvc defines read operations on the wallet ledger. All amounts
// are in reference units.
type WalletReaderSvc interface {
	// CurrentBalance returns the committed balance.
	CurrentBalance() decimal.Decimal

	// AvailableBalance returns the committed balance minus pending reservations.
	AvailableBalance() decimal.Decimal

	// CanSpend reports whether the amount could be authorized right now.
	// Negative amounts never pass; spending the exact available balance does.
	CanSpend(amount decimal.Decimal) bool
}

// AddressResolverSvc maps opaque user identifiers to payable addresses via the
// configured directory.
type AddressResolverSvc interface {
	ResolveAddress(ctx context.Context, userID string) (domain.Address, error)
}

// WalletWriterSvc defines the state-changing wallet operations.
type WalletWriterSvc interface {
	// Send authorizes, executes and commits an outgoing transfer. The balance
	// is decremented only after the transport confirms. idempotencyKey may be
	// empty; when set, a retried call replays the recorded committed outcome
	// instead of transferring again.
	Send(ctx context.Context, amount decimal.Decimal, to domain.Address, note string, idempotencyKey string) (*domain.Transfer, error)

	// RequestReceive issues a payment request to the given address. It never
	// mutates the balance.
	RequestReceive(ctx context.Context, amount decimal.Decimal, from domain.Address, note string) error
}

// WalletSvcFacade combines all wallet-related service interfaces.
type WalletSvcFacade interface {
	WalletReaderSvc
	AddressResolverSvc
	WalletWriterSvc
}
