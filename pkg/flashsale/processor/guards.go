package processor

import (
	"bytes"
	"crypto/ed25519"

	"github.com/pkg/errors"
)

var (
	ErrMissingSigner  = errors.New("missing required signer")
	ErrIllegalOwner   = errors.New("illegal account owner")
	ErrIllegalAddress = errors.New("illegal account address")
)

// requireSigner fails unless the account co-authorized the current
// transaction.
func requireSigner(account *Account) error {
	if !account.IsSigner {
		return ErrMissingSigner
	}
	return nil
}

// requireOwner fails unless the account is controlled by the expected
// program.
func requireOwner(account *Account, expected ed25519.PublicKey) error {
	if !bytes.Equal(account.Owner, expected) {
		return ErrIllegalOwner
	}
	return nil
}

// requireAddress pins the account to a known canonical or derived address.
func requireAddress(account *Account, expected ed25519.PublicKey) error {
	if !bytes.Equal(account.Key, expected) {
		return ErrIllegalAddress
	}
	return nil
}

// requireAddressIn pins the account to a member of an allow-list.
func requireAddressIn(account *Account, allowed ...ed25519.PublicKey) error {
	for _, candidate := range allowed {
		if bytes.Equal(account.Key, candidate) {
			return nil
		}
	}
	return ErrIllegalAddress
}
