package flashsale

import (
	"crypto/ed25519"

	"github.com/code-payments/flashsale-program/pkg/solana"
	"github.com/code-payments/flashsale-program/pkg/solana/binary"
)

const (
	// opcode + initial_price + sale_duration + quantity + name length prefix
	initFlashSaleInstructionMinSize = 1 + 8 + 8 + 8 + 4
)

type InitFlashSaleInstructionArgs struct {
	InitialPrice uint64
	SaleDuration uint64
	Quantity     uint64
	ItemName     string
}

type InitFlashSaleInstructionAccounts struct {
	Owner               ed25519.PublicKey
	Mint                ed25519.PublicKey
	SourceTokenAccount  ed25519.PublicKey
	DepositState        ed25519.PublicKey
	DepositTokenAccount ed25519.PublicKey
	SaleState           ed25519.PublicKey
	TokenProgram        ed25519.PublicKey
}

// NewInitFlashSaleInstruction builds the instruction that opens a flash sale:
// it funds and creates the deposit custody accounts, creates and writes the
// sale state record, and escrows the quantity being sold.
func NewInitFlashSaleInstruction(
	accounts *InitFlashSaleInstructionAccounts,
	args *InitFlashSaleInstructionArgs,
) solana.Instruction {
	var offset int

	data := make([]byte, initFlashSaleInstructionMinSize+len(args.ItemName))

	binary.PutUint8(data, uint8(CommandInitFlashSale), &offset)
	binary.PutUint64(data[offset:], args.InitialPrice, &offset)
	binary.PutUint64(data[offset:], args.SaleDuration, &offset)
	binary.PutUint64(data[offset:], args.Quantity, &offset)
	binary.PutUint32(data[offset:], uint32(len(args.ItemName)), &offset)
	copy(data[offset:], args.ItemName)

	return solana.NewInstruction(
		PROGRAM_ID,

		data,

		solana.NewAccountMeta(accounts.Owner, true),
		solana.NewAccountMeta(accounts.Mint, false),
		solana.NewAccountMeta(accounts.SourceTokenAccount, false),
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

// InitFlashSaleInstructionFromBinary decodes the instruction arguments from
// the raw payload, opcode byte included.
func InitFlashSaleInstructionFromBinary(data []byte) (*InitFlashSaleInstructionArgs, error) {
	if len(data) < initFlashSaleInstructionMinSize {
		return nil, ErrInvalidInstructionData
	}

	var offset int
	var opcode uint8
	binary.GetUint8(data, &opcode, &offset)
	if Command(opcode) != CommandInitFlashSale {
		return nil, ErrInvalidInstructionData
	}

	var args InitFlashSaleInstructionArgs
	var nameLength uint32

	binary.GetUint64(data[offset:], &args.InitialPrice, &offset)
	binary.GetUint64(data[offset:], &args.SaleDuration, &offset)
	binary.GetUint64(data[offset:], &args.Quantity, &offset)
	binary.GetUint32(data[offset:], &nameLength, &offset)

	if nameLength > uint32(len(data)-offset) {
		return nil, ErrInvalidInstructionData
	}
	args.ItemName = string(data[offset : offset+int(nameLength)])

	return &args, nil
}
