package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnknownCurrency indicates a currency code that is not in the registry.
var ErrUnknownCurrency = errors.New("unknown currency")

// ErrConversionOverflow indicates a conversion result outside the supported magnitude range.
var ErrConversionOverflow = errors.New("conversion overflow")

// ErrConversionImprecise indicates a conversion that cannot be represented at the
// target currency's subunit precision without vanishing.
var ErrConversionImprecise = errors.New("conversion loses precision")

// ErrUnknownUser indicates a user identifier the address directory cannot resolve.
var ErrUnknownUser = errors.New("unknown user")

// ErrInsufficientFunds indicates a spend that exceeds the available balance.
// It is an expected authorization outcome, not a fault; the balance is never
// mutated when it is returned.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrTransferFailed indicates the payment transport did not confirm the transfer.
// The balance is unchanged when it is returned. Transport timeouts surface as this error.
var ErrTransferFailed = errors.New("transfer failed")

// ErrRequestFailed indicates the payment request transport reported a failure.
var ErrRequestFailed = errors.New("payment request failed")
