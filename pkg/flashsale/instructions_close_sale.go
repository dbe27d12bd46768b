package flashsale

import (
	"crypto/ed25519"

	"github.com/code-payments/flashsale-program/pkg/solana"
)

type CloseSaleInstructionAccounts struct {
	Owner                ed25519.PublicKey
	ReceiverTokenAccount ed25519.PublicKey
	Mint                 ed25519.PublicKey
	DepositState         ed25519.PublicKey
	DepositTokenAccount  ed25519.PublicKey
	SaleState            ed25519.PublicKey
	TokenProgram         ed25519.PublicKey
}

// NewCloseSaleInstruction builds the instruction that dismantles a flash
// sale: the unsold escrow balance returns to the owner and the sale state
// account's lamports are swept back. It carries no arguments beyond the
// account list; everything else is re-derived from the stored record.
func NewCloseSaleInstruction(accounts *CloseSaleInstructionAccounts) solana.Instruction {
	return solana.NewInstruction(
		PROGRAM_ID,

		[]byte{byte(CommandCloseSale)},

		solana.NewAccountMeta(accounts.Owner, true),
		solana.NewAccountMeta(accounts.ReceiverTokenAccount, false),
		solana.NewAccountMeta(accounts.Mint, false),
		solana.NewAccountMeta(accounts.DepositState, false),
		solana.NewAccountMeta(accounts.DepositTokenAccount, false),
		solana.NewAccountMeta(accounts.SaleState, false),
		solana.NewReadonlyAccountMeta(SYSTEM_PROGRAM_ID, false),
		solana.NewReadonlyAccountMeta(accounts.TokenProgram, false),
		solana.NewReadonlyAccountMeta(SPL_ASSOCIATED_TOKEN_PROGRAM_ID, false),
		solana.NewReadonlyAccountMeta(SYSVAR_CLOCK_PUBKEY, false),
		solana.NewReadonlyAccountMeta(SYSVAR_RENT_PUBKEY, false),
	)
}

// CloseSaleInstructionFromBinary validates the raw payload for a close
// instruction.
func CloseSaleInstructionFromBinary(data []byte) error {
	if len(data) < 1 || Command(data[0]) != CommandCloseSale {
		return ErrInvalidInstructionData
	}
	return nil
}
