package processor

import (
	"crypto/ed25519"

	"github.com/code-payments/flashsale-program/pkg/flashsale"
)

// Host is the handler's window onto the ledger execution environment: sysvar
// oracle lookups plus the external transfer services the lifecycle handlers
// call into. Implementations are trusted to be correct; any error they return
// is terminal for the current invocation and rolls back the whole transition.
//
// Calls that act on behalf of a program-derived address take the
// flashsale.DerivedAuthority capability in place of a signature.
type Host interface {
	// UnixTimestamp returns the clock sysvar's current ledger time.
	UnixTimestamp() int64

	// MinimumBalance returns the rent-exempt reserve for an account of the
	// given data size.
	MinimumBalance(size int) uint64

	// Transfer moves lamports between system accounts, authorized by the
	// sender's own transaction signature.
	Transfer(from, to ed25519.PublicKey, lamports uint64) error

	// CreateAccount materializes a funded account of the given size at the
	// derived address, owned by the supplied program.
	CreateAccount(funder, owner ed25519.PublicKey, lamports, size uint64, authority flashsale.DerivedAuthority) error

	// CreateAssociatedTokenAccount materializes the associated token account
	// for the derived wallet and mint, funded by the funder.
	CreateAssociatedTokenAccount(funder, mint, tokenProgram ed25519.PublicKey, authority flashsale.DerivedAuthority) error

	// TransferChecked moves tokens with mint and decimal verification,
	// authorized by the source owner's own transaction signature.
	TransferChecked(tokenProgram, source, mint, dest, owner ed25519.PublicKey, amount uint64, decimals uint8) error

	// TransferCheckedSigned moves tokens with mint and decimal verification
	// out of an account owned by a program-derived address.
	TransferCheckedSigned(tokenProgram, source, mint, dest ed25519.PublicKey, amount uint64, decimals uint8, authority flashsale.DerivedAuthority) error

	// AssignOwner reassigns a program-derived account to a new owning
	// program.
	AssignOwner(owner ed25519.PublicKey, authority flashsale.DerivedAuthority) error
}
