package processor

import (
	"crypto/ed25519"
	"math/bits"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/code-payments/flashsale-program/pkg/flashsale"
)

var (
	ErrInvalidInstruction = errors.New("invalid instruction")
	ErrNotEnoughAccounts  = errors.New("not enough accounts")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
)

// Processor executes the flash sale program's state transitions. Each
// invocation runs synchronously to completion; there are no retries and no
// partial writes observable by later calls (the host treats every invocation
// as a single all-or-nothing unit).
type Processor struct {
	log  *logrus.Entry
	host Host

	programID ed25519.PublicKey

	reclaimSaleAccounts bool
}

// Option configures optional processor behavior.
type Option func(*Processor)

// WithSaleAccountReclamation reassigns drained sale state accounts back to
// the system program on close, returning the slot to the base allocator. Off
// by default, matching the deployed program.
func WithSaleAccountReclamation() Option {
	return func(p *Processor) {
		p.reclaimSaleAccounts = true
	}
}

// NewProcessor returns a processor bound to the given host environment.
func NewProcessor(host Host, opts ...Option) *Processor {
	p := &Processor{
		log:       logrus.StandardLogger().WithField("type", "flashsale/processor"),
		host:      host,
		programID: flashsale.PROGRAM_ID,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Process decodes the leading opcode byte and routes to the matching
// lifecycle handler.
func (p *Processor) Process(accounts []*Account, data []byte) error {
	if len(data) == 0 {
		return ErrInvalidInstruction
	}

	switch flashsale.Command(data[0]) {
	case flashsale.CommandInitFlashSale:
		return p.initFlashSale(accounts, data)
	case flashsale.CommandCloseSale:
		return p.closeSale(accounts, data)
	case flashsale.CommandGetToken:
		return p.getToken(accounts, data)
	default:
		return ErrInvalidInstruction
	}
}

// checkedMul rejects 64-bit overflow instead of wrapping.
func checkedMul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, ErrArithmeticOverflow
	}
	return lo, nil
}
