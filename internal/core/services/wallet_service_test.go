package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/openpurse/walletd/internal/apperrors"
	"github.com/openpurse/walletd/internal/core/domain"
	"github.com/openpurse/walletd/internal/core/ports"
	portssvc "github.com/openpurse/walletd/internal/core/ports/services"
	"github.com/openpurse/walletd/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AddressDirectory ---
type MockAddressDirectory struct {
	mock.Mock
}

func (m *MockAddressDirectory) ResolveAddress(ctx context.Context, userID string) (domain.Address, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Address), args.Error(1)
}

// --- Mock PaymentTransport ---
type MockPaymentTransport struct {
	mock.Mock
}

func (m *MockPaymentTransport) Transfer(ctx context.Context, amount decimal.Decimal, to domain.Address, note string) error {
	args := m.Called(ctx, amount, to, note)
	return args.Error(0)
}

// --- Mock PaymentRequestTransport ---
type MockRequestTransport struct {
	mock.Mock
}

func (m *MockRequestTransport) RequestPayment(ctx context.Context, amount decimal.Decimal, from domain.Address, note string) error {
	args := m.Called(ctx, amount, from, note)
	return args.Error(0)
}

var (
	_ ports.AddressDirectory        = (*MockAddressDirectory)(nil)
	_ ports.PaymentTransport        = (*MockPaymentTransport)(nil)
	_ ports.PaymentRequestTransport = (*MockRequestTransport)(nil)
)

const demoAddress = domain.Address("1DemoPayableAddress")

// --- Test Suite ---
type WalletServiceTestSuite struct {
	suite.Suite
	mockDirectory *MockAddressDirectory
	mockTransport *MockPaymentTransport
	mockRequests  *MockRequestTransport
	service       portssvc.WalletSvcFacade
}

func (suite *WalletServiceTestSuite) SetupTest() {
	suite.mockDirectory = new(MockAddressDirectory)
	suite.mockTransport = new(MockPaymentTransport)
	suite.mockRequests = new(MockRequestTransport)
	suite.service = services.NewWalletService(services.WalletServiceConfig{
		InitialBalance:  decimal.NewFromInt(100),
		Directory:       suite.mockDirectory,
		Transport:       suite.mockTransport,
		Requests:        suite.mockRequests,
		TransferTimeout: 250 * time.Millisecond,
		IdempotencyTTL:  time.Minute,
	})
}

// --- CanSpend ---

func (suite *WalletServiceTestSuite) TestCanSpend_NegativeAlwaysFalse() {
	suite.False(suite.service.CanSpend(decimal.NewFromInt(-1)))
	suite.False(suite.service.CanSpend(decimal.RequireFromString("-0.00000001")))
}

func (suite *WalletServiceTestSuite) TestCanSpend_BoundaryAtExactBalance() {
	suite.True(suite.service.CanSpend(decimal.NewFromInt(100)))
	suite.False(suite.service.CanSpend(decimal.RequireFromString("100.00000001")))
}

func (suite *WalletServiceTestSuite) TestCanSpend_ZeroAllowed() {
	suite.True(suite.service.CanSpend(decimal.Zero))
}

// --- Send ---

func (suite *WalletServiceTestSuite) TestSend_Committed() {
	ctx := context.Background()
	amount := decimal.NewFromInt(40)

	suite.mockTransport.On("Transfer", mock.Anything, amount, demoAddress, "lunch").Return(nil).Once()

	transfer, err := suite.service.Send(ctx, amount, demoAddress, "lunch", "")

	suite.Require().NoError(err)
	suite.Require().NotNil(transfer)
	suite.Equal(domain.TransferCommitted, transfer.Status)
	suite.NotEmpty(transfer.TransferID)
	suite.True(suite.service.CurrentBalance().Equal(decimal.NewFromInt(60)))
	suite.mockTransport.AssertExpectations(suite.T())
}

func (suite *WalletServiceTestSuite) TestSend_InsufficientFunds() {
	ctx := context.Background()

	transfer, err := suite.service.Send(ctx, decimal.NewFromInt(150), demoAddress, "", "")

	suite.Require().ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.Nil(transfer)
	suite.True(suite.service.CurrentBalance().Equal(decimal.NewFromInt(100)))
	// The transport is never reached when authorization fails.
	suite.mockTransport.AssertNotCalled(suite.T(), "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WalletServiceTestSuite) TestSend_NegativeAmountRejected() {
	ctx := context.Background()

	_, err := suite.service.Send(ctx, decimal.NewFromInt(-5), demoAddress, "", "")

	suite.Require().ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.True(suite.service.CurrentBalance().Equal(decimal.NewFromInt(100)))
}

func (suite *WalletServiceTestSuite) TestSend_TransportFailureLeavesBalance() {
	ctx := context.Background()
	amount := decimal.NewFromInt(50)

	suite.mockTransport.On("Transfer", mock.Anything, amount, demoAddress, "").Return(assert.AnError).Once()

	transfer, err := suite.service.Send(ctx, amount, demoAddress, "", "")

	suite.Require().ErrorIs(err, apperrors.ErrTransferFailed)
	suite.Nil(transfer)
	suite.True(suite.service.CurrentBalance().Equal(decimal.NewFromInt(100)))
	suite.True(suite.service.AvailableBalance().Equal(decimal.NewFromInt(100)), "reservation must be released")
	suite.mockTransport.AssertExpectations(suite.T())
}

func (suite *WalletServiceTestSuite) TestSend_TimeoutTreatedAsFailure() {
	ctx := context.Background()
	amount := decimal.NewFromInt(10)

	// The transport blocks until the send deadline fires.
	suite.mockTransport.On("Transfer", mock.Anything, amount, demoAddress, "").
		Return(context.DeadlineExceeded).
		Run(func(args mock.Arguments) {
			callCtx := args.Get(0).(context.Context)
			<-callCtx.Done()
		}).Once()

	transfer, err := suite.service.Send(ctx, amount, demoAddress, "", "")

	suite.Require().ErrorIs(err, apperrors.ErrTransferFailed)
	suite.Nil(transfer)
	suite.True(suite.service.CurrentBalance().Equal(decimal.NewFromInt(100)))
	suite.True(suite.service.AvailableBalance().Equal(decimal.NewFromInt(100)))
}

func (suite *WalletServiceTestSuite) TestSend_ConcurrentSpendsCannotDoubleSpend() {
	ctx := context.Background()
	amount := decimal.NewFromInt(60)

	// Both goroutines race for a balance sufficient for only one of them. The
	// transport is slow so the loser overlaps with the pending transfer.
	suite.mockTransport.On("Transfer", mock.Anything, amount, demoAddress, "").
		Return(nil).
		Run(func(args mock.Arguments) {
			time.Sleep(30 * time.Millisecond)
		}).
		Maybe()

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := suite.service.Send(ctx, amount, demoAddress, "", "")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	committed := 0
	for err := range results {
		if err == nil {
			committed++
		} else {
			suite.Require().ErrorIs(err, apperrors.ErrInsufficientFunds)
		}
	}

	suite.LessOrEqual(committed, 1, "at most one concurrent send may commit")
	finalBalance := suite.service.CurrentBalance()
	suite.False(finalBalance.IsNegative(), "balance must never go negative")
	if committed == 1 {
		suite.True(finalBalance.Equal(decimal.NewFromInt(40)), "got %s", finalBalance)
	} else {
		suite.True(finalBalance.Equal(decimal.NewFromInt(100)), "got %s", finalBalance)
	}
}

func (suite *WalletServiceTestSuite) TestSend_IdempotencyKeyReplaysCommit() {
	ctx := context.Background()
	amount := decimal.NewFromInt(25)

	suite.mockTransport.On("Transfer", mock.Anything, amount, demoAddress, "rent").Return(nil).Once()

	first, err := suite.service.Send(ctx, amount, demoAddress, "rent", "key-123")
	suite.Require().NoError(err)

	// The retry replays the recorded outcome: same transfer, no second
	// transport call, no second debit.
	second, err := suite.service.Send(ctx, amount, demoAddress, "rent", "key-123")
	suite.Require().NoError(err)
	suite.Equal(first.TransferID, second.TransferID)
	suite.True(suite.service.CurrentBalance().Equal(decimal.NewFromInt(75)))
	suite.mockTransport.AssertNumberOfCalls(suite.T(), "Transfer", 1)
}

func (suite *WalletServiceTestSuite) TestSend_FailedSendIsNotReplayed() {
	ctx := context.Background()
	amount := decimal.NewFromInt(25)

	suite.mockTransport.On("Transfer", mock.Anything, amount, demoAddress, "").Return(assert.AnError).Once()
	suite.mockTransport.On("Transfer", mock.Anything, amount, demoAddress, "").Return(nil).Once()

	_, err := suite.service.Send(ctx, amount, demoAddress, "", "key-456")
	suite.Require().ErrorIs(err, apperrors.ErrTransferFailed)

	// A retry after a failure executes for real.
	transfer, err := suite.service.Send(ctx, amount, demoAddress, "", "key-456")
	suite.Require().NoError(err)
	suite.Equal(domain.TransferCommitted, transfer.Status)
	suite.True(suite.service.CurrentBalance().Equal(decimal.NewFromInt(75)))
	suite.mockTransport.AssertNumberOfCalls(suite.T(), "Transfer", 2)
}

// --- ResolveAddress ---

func (suite *WalletServiceTestSuite) TestResolveAddress_Success() {
	ctx := context.Background()
	suite.mockDirectory.On("ResolveAddress", ctx, "alice").Return(demoAddress, nil).Once()

	address, err := suite.service.ResolveAddress(ctx, "alice")

	suite.Require().NoError(err)
	suite.Equal(demoAddress, address)
	suite.mockDirectory.AssertExpectations(suite.T())
}

func (suite *WalletServiceTestSuite) TestResolveAddress_UnknownUser() {
	ctx := context.Background()
	suite.mockDirectory.On("ResolveAddress", ctx, "nobody").Return(domain.Address(""), apperrors.ErrNotFound).Once()

	_, err := suite.service.ResolveAddress(ctx, "nobody")

	suite.Require().ErrorIs(err, apperrors.ErrUnknownUser)
}

// --- RequestReceive ---

func (suite *WalletServiceTestSuite) TestRequestReceive_NeverMutatesBalance() {
	ctx := context.Background()
	amount := decimal.NewFromInt(30)

	suite.mockRequests.On("RequestPayment", mock.Anything, amount, demoAddress, "invoice").Return(nil).Once()

	err := suite.service.RequestReceive(ctx, amount, demoAddress, "invoice")

	suite.Require().NoError(err)
	suite.True(suite.service.CurrentBalance().Equal(decimal.NewFromInt(100)))
}

func (suite *WalletServiceTestSuite) TestRequestReceive_FailureSurfaced() {
	ctx := context.Background()
	amount := decimal.NewFromInt(30)

	suite.mockRequests.On("RequestPayment", mock.Anything, amount, demoAddress, "").Return(assert.AnError).Once()

	err := suite.service.RequestReceive(ctx, amount, demoAddress, "")

	suite.Require().ErrorIs(err, apperrors.ErrRequestFailed)
	suite.True(suite.service.CurrentBalance().Equal(decimal.NewFromInt(100)))
}

func (suite *WalletServiceTestSuite) TestRequestReceive_NegativeRejected() {
	err := suite.service.RequestReceive(context.Background(), decimal.NewFromInt(-1), demoAddress, "")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockRequests.AssertNotCalled(suite.T(), "RequestPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWalletServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WalletServiceTestSuite))
}
