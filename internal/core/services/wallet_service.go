package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/openpurse/walletd/internal/apperrors"
	"github.com/openpurse/walletd/internal/core/domain"
	"github.com/openpurse/walletd/internal/core/ports"
	"github.com/openpurse/walletd/internal/middleware"
	gocache "github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
)

// WalletService owns the ledger balance, in reference units, and gates every
// spend on it.
//
// Send follows authorize-attempt-commit: the amount is reserved under the
// lock, the transport call happens outside the lock, and the balance is
// decremented only once the transport confirms. A failed or timed-out transfer
// releases the reservation and leaves the balance untouched. The reservation
// is what keeps concurrent sends race-free: two sends cannot both authorize
// against a balance sufficient for only one of them.
//
// The balance only ever decreases. Crediting confirmed incoming funds is not
// handled here.
type WalletService struct {
	directory ports.AddressDirectory
	transport ports.PaymentTransport
	requests  ports.PaymentRequestTransport

	transferTimeout time.Duration

	mu       sync.Mutex
	balance  decimal.Decimal
	reserved decimal.Decimal

	// Committed transfers keyed by idempotency key, replayed on retry. Failed
	// sends are not recorded: they mutate nothing and are safe to repeat.
	committed *gocache.Cache
}

// WalletServiceConfig carries the dependencies and tunables for NewWalletService.
type WalletServiceConfig struct {
	InitialBalance  decimal.Decimal
	Directory       ports.AddressDirectory
	Transport       ports.PaymentTransport
	Requests        ports.PaymentRequestTransport
	TransferTimeout time.Duration
	IdempotencyTTL  time.Duration
}

// NewWalletService creates a new WalletService with the injected starting balance.
func NewWalletService(cfg WalletServiceConfig) *WalletService {
	return &WalletService{
		directory:       cfg.Directory,
		transport:       cfg.Transport,
		requests:        cfg.Requests,
		transferTimeout: cfg.TransferTimeout,
		balance:         cfg.InitialBalance,
		committed:       gocache.New(cfg.IdempotencyTTL, cfg.IdempotencyTTL),
	}
}

// CurrentBalance returns the committed balance.
func (s *WalletService) CurrentBalance() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balance
}

// AvailableBalance returns the committed balance minus pending reservations.
func (s *WalletService) AvailableBalance() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balance.Sub(s.reserved)
}

// CanSpend reports whether the amount could be authorized right now.
func (s *WalletService) CanSpend(amount decimal.Decimal) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canSpendLocked(amount)
}

func (s *WalletService) canSpendLocked(amount decimal.Decimal) bool {
	ok := true

	// Negative amount
	if amount.IsNegative() {
		ok = false
	}

	// More than the available balance. Spending exactly the available balance
	// is allowed.
	if amount.GreaterThan(s.balance.Sub(s.reserved)) {
		ok = false
	}

	return ok
}

// ResolveAddress looks up a payable address for the given user identifier via
// the configured directory.
func (s *WalletService) ResolveAddress(ctx context.Context, userID string) (domain.Address, error) {
	address, err := s.directory.ResolveAddress(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", apperrors.ErrUnknownUser, userID)
		}
		return "", fmt.Errorf("failed to resolve address for user %s: %w", userID, err)
	}
	return address, nil
}

// Send authorizes, executes and commits an outgoing transfer of the given
// amount in reference units. On apperrors.ErrInsufficientFunds the transport
// is never called; on apperrors.ErrTransferFailed the balance is unchanged.
func (s *WalletService) Send(ctx context.Context, amount decimal.Decimal, to domain.Address, note string, idempotencyKey string) (*domain.Transfer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if idempotencyKey != "" {
		if prior, found := s.committed.Get(idempotencyKey); found {
			transfer := prior.(*domain.Transfer)
			logger.Info("Replaying committed transfer for idempotency key",
				slog.String("idempotency_key", idempotencyKey),
				slog.String("transfer_id", transfer.TransferID))
			return transfer, nil
		}
	}

	// Authorize and reserve under the lock. The reservation holds the funds
	// for the duration of the transport call, which runs outside the lock.
	s.mu.Lock()
	if !s.canSpendLocked(amount) {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: cannot spend %s", apperrors.ErrInsufficientFunds, amount)
	}
	s.reserved = s.reserved.Add(amount)
	s.mu.Unlock()

	transferCtx, cancel := context.WithTimeout(ctx, s.transferTimeout)
	defer cancel()

	transferErr := s.transport.Transfer(transferCtx, amount, to, note)

	// Commit or roll back the reservation once the outcome is known.
	s.mu.Lock()
	s.reserved = s.reserved.Sub(amount)
	if transferErr == nil {
		s.balance = s.balance.Sub(amount)
	}
	s.mu.Unlock()

	if transferErr != nil {
		logger.Warn("Transfer not confirmed, balance unchanged",
			slog.String("to_address", string(to)),
			slog.String("error", transferErr.Error()))
		if errors.Is(transferErr, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: transport timed out after %s", apperrors.ErrTransferFailed, s.transferTimeout)
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTransferFailed, transferErr)
	}

	transfer := &domain.Transfer{
		TransferID:  uuid.NewString(),
		Amount:      amount,
		ToAddress:   to,
		Note:        note,
		Status:      domain.TransferCommitted,
		CompletedAt: time.Now(),
	}
	if idempotencyKey != "" {
		s.committed.SetDefault(idempotencyKey, transfer)
	}

	logger.Info("Transfer committed",
		slog.String("transfer_id", transfer.TransferID),
		slog.String("amount", amount.String()))
	return transfer, nil
}

// RequestReceive issues a payment request to the given address. The balance is
// never touched here: funds only arrive through confirmed incoming transfers,
// which are outside this service's scope.
func (s *WalletService) RequestReceive(ctx context.Context, amount decimal.Decimal, from domain.Address, note string) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: requested amount must not be negative", apperrors.ErrValidation)
	}

	requestCtx, cancel := context.WithTimeout(ctx, s.transferTimeout)
	defer cancel()

	if err := s.requests.RequestPayment(requestCtx, amount, from, note); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrRequestFailed, err)
	}
	return nil
}
