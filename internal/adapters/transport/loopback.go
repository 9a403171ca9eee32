// Package transport provides PaymentTransport adapters.
package transport

import (
	"context"

	"github.com/openpurse/walletd/internal/core/domain"
	"github.com/openpurse/walletd/internal/core/ports"
	"github.com/shopspring/decimal"
)

// Loopback is an in-process transport that confirms every transfer and
// payment request immediately. Nothing leaves the process; it exists for demo
// and development wiring, with real broker adapters substituted in production.
type Loopback struct{}

// NewLoopback creates a new Loopback transport.
func NewLoopback() *Loopback {
	return &Loopback{}
}

// Transfer confirms the transfer unless the context is already done.
func (t *Loopback) Transfer(ctx context.Context, _ decimal.Decimal, _ domain.Address, _ string) error {
	return ctx.Err()
}

// RequestPayment confirms the request unless the context is already done.
func (t *Loopback) RequestPayment(ctx context.Context, _ decimal.Decimal, _ domain.Address, _ string) error {
	return ctx.Err()
}

var (
	_ ports.PaymentTransport        = (*Loopback)(nil)
	_ ports.PaymentRequestTransport = (*Loopback)(nil)
)
