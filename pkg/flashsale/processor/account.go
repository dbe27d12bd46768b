package processor

import (
	"crypto/ed25519"
)

// Account is the invocation-scoped view of one ledger account. The host
// environment grants the handler exclusive access to every account in the
// list for the duration of the invocation, so mutations here are only
// observable once the whole transition commits.
type Account struct {
	Key      ed25519.PublicKey
	Lamports uint64
	Owner    ed25519.PublicKey
	Data     []byte

	IsSigner   bool
	IsWritable bool
}
