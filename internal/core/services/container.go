package services

import (
	portssvc "github.com/openpurse/walletd/internal/core/ports/services"
)

// NewServiceContainer wires the concrete services into the container the
// handlers consume.
func NewServiceContainer(converter *ConverterService, wallet *WalletService) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Converter: converter,
		Wallet:    wallet,
	}
}

// Compile-time interface checks.
var (
	_ portssvc.ConverterSvcFacade = (*ConverterService)(nil)
	_ portssvc.WalletSvcFacade    = (*WalletService)(nil)
)
