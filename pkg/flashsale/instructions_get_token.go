package flashsale

import (
	"crypto/ed25519"

	"github.com/code-payments/flashsale-program/pkg/solana"
	"github.com/code-payments/flashsale-program/pkg/solana/binary"
)

const (
	// opcode + amount + decimals
	getTokenInstructionSize = 1 + 8 + 1
)

type GetTokenInstructionArgs struct {
	Amount   uint64
	Decimals uint8
}

type GetTokenInstructionAccounts struct {
	Payer                ed25519.PublicKey
	ReceiverTokenAccount ed25519.PublicKey
	Mint                 ed25519.PublicKey
	DepositState         ed25519.PublicKey
	DepositTokenAccount  ed25519.PublicKey
	SaleOwner            ed25519.PublicKey
	SaleState            ed25519.PublicKey
	TokenProgram         ed25519.PublicKey
}

// NewGetTokenInstruction builds the instruction that redeems tokens from an
// open flash sale: the payer sends price*amount lamports to the sale owner and
// receives amount tokens out of the deposit escrow.
func NewGetTokenInstruction(
	accounts *GetTokenInstructionAccounts,
	args *GetTokenInstructionArgs,
) solana.Instruction {
	var offset int

	data := make([]byte, getTokenInstructionSize)

	binary.PutUint8(data, uint8(CommandGetToken), &offset)
	binary.PutUint64(data[offset:], args.Amount, &offset)
	binary.PutUint8(data[offset:], args.Decimals, &offset)

	return solana.NewInstruction(
		PROGRAM_ID,

		data,

		solana.NewAccountMeta(accounts.Payer, true),
		solana.NewAccountMeta(accounts.ReceiverTokenAccount, false),
		solana.NewAccountMeta(accounts.Mint, false),
		solana.NewAccountMeta(accounts.DepositState, false),
		solana.NewAccountMeta(accounts.DepositTokenAccount, false),
		solana.NewAccountMeta(accounts.SaleOwner, false),
		solana.NewAccountMeta(accounts.SaleState, false),
		solana.NewReadonlyAccountMeta(SYSTEM_PROGRAM_ID, false),
		solana.NewReadonlyAccountMeta(accounts.TokenProgram, false),
		solana.NewReadonlyAccountMeta(SPL_ASSOCIATED_TOKEN_PROGRAM_ID, false),
		solana.NewReadonlyAccountMeta(SYSVAR_CLOCK_PUBKEY, false),
		solana.NewReadonlyAccountMeta(SYSVAR_RENT_PUBKEY, false),
	)
}

// GetTokenInstructionFromBinary decodes the instruction arguments from the
// raw payload, opcode byte included.
func GetTokenInstructionFromBinary(data []byte) (*GetTokenInstructionArgs, error) {
	if len(data) < getTokenInstructionSize {
		return nil, ErrInvalidInstructionData
	}

	var offset int
	var opcode uint8
	binary.GetUint8(data, &opcode, &offset)
	if Command(opcode) != CommandGetToken {
		return nil, ErrInvalidInstructionData
	}

	var args GetTokenInstructionArgs
	binary.GetUint64(data[offset:], &args.Amount, &offset)
	binary.GetUint8(data[offset:], &args.Decimals, &offset)

	return &args, nil
}
