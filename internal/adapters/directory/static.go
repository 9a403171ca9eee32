// Package directory provides AddressDirectory adapters.
package directory

import (
	"context"
	"fmt"

	"github.com/openpurse/walletd/internal/apperrors"
	"github.com/openpurse/walletd/internal/core/domain"
	"github.com/openpurse/walletd/internal/core/ports"
)

// Static is an AddressDirectory backed by a fixed table loaded at startup. It
// stands in for a real address book service; production deployments swap in a
// remote directory adapter behind the same port.
type Static struct {
	addresses map[string]domain.Address
}

// NewStatic builds a Static directory from user-identifier to address entries.
func NewStatic(entries map[string]string) *Static {
	addresses := make(map[string]domain.Address, len(entries))
	for userID, address := range entries {
		addresses[userID] = domain.Address(address)
	}
	return &Static{addresses: addresses}
}

// ResolveAddress returns the address on file for the given user identifier.
func (d *Static) ResolveAddress(_ context.Context, userID string) (domain.Address, error) {
	address, ok := d.addresses[userID]
	if !ok {
		return "", fmt.Errorf("%w: no address on file for user %s", apperrors.ErrNotFound, userID)
	}
	return address, nil
}

var _ ports.AddressDirectory = (*Static)(nil)
