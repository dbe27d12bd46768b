package processor

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/code-payments/flashsale-program/pkg/flashsale"
	"github.com/code-payments/flashsale-program/pkg/solana/token"
)

// Fixed bootstrap balance for the deposit wallet so it can carry the rent on
// its token account.
const depositBootstrapLamports = 10_000_000

// initFlashSale opens a sale: it derives and pins the two custody accounts,
// creates and funds them, persists the sale record, and escrows the quantity
// being sold from the owner's source account.
//
// Account references:
//   0. [WRITE, SIGNER] owner
//   1. [WRITE] mint
//   2. [WRITE] source token account
//   3. [WRITE] deposit state
//   4. [WRITE] deposit token account
//   5. [WRITE] sale state
//   6. [] system program
//   7. [] token program
func (p *Processor) initFlashSale(accounts []*Account, data []byte) error {
	log := p.log.WithField("method", "initFlashSale")

	if len(accounts) < 8 {
		return ErrNotEnoughAccounts
	}

	owner := accounts[0]
	mint := accounts[1]
	source := accounts[2]
	depositState := accounts[3]
	depositTokenAccount := accounts[4]
	saleState := accounts[5]
	systemProgram := accounts[6]
	tokenProgram := accounts[7]

	args, err := flashsale.InitFlashSaleInstructionFromBinary(data)
	if err != nil {
		return err
	}
	if len(args.ItemName) > flashsale.MaxNameLength {
		return errors.Wrap(ErrInvalidArgument, "item name exceeds budget")
	}

	if err := requireSigner(owner); err != nil {
		return err
	}
	if err := requireAddress(systemProgram, flashsale.SYSTEM_PROGRAM_ID); err != nil {
		return err
	}
	if err := requireAddressIn(tokenProgram, flashsale.SPL_TOKEN_PROGRAM_ID, flashsale.SPL_TOKEN_2022_PROGRAM_ID); err != nil {
		return err
	}

	depositAuthority, err := flashsale.DeriveDepositStateAuthority(&flashsale.GetDepositStateAddressArgs{
		ItemName: args.ItemName,
		Mint:     mint.Key,
		Owner:    owner.Key,
	})
	if err != nil {
		return errors.Wrap(err, "failed to derive deposit state address")
	}
	if err := requireAddress(depositState, depositAuthority.Address()); err != nil {
		return err
	}

	expectedDepositTokenAccount, err := token.GetAssociatedAccountForProgram(depositState.Key, mint.Key, tokenProgram.Key)
	if err != nil {
		return errors.Wrap(err, "failed to derive deposit token account address")
	}
	if err := requireAddress(depositTokenAccount, expectedDepositTokenAccount); err != nil {
		return err
	}

	saleAuthority, err := flashsale.DeriveSaleStateAuthority(&flashsale.GetSaleStateAddressArgs{
		ItemName: args.ItemName,
		Mint:     mint.Key,
		Owner:    owner.Key,
	})
	if err != nil {
		return errors.Wrap(err, "failed to derive sale state address")
	}
	if err := requireAddress(saleState, saleAuthority.Address()); err != nil {
		return err
	}

	var mintState token.Mint
	if !mintState.Unmarshal(mint.Data) {
		return errors.Wrap(flashsale.ErrInvalidAccountData, "invalid mint account")
	}

	if err := p.host.Transfer(owner.Key, depositState.Key, depositBootstrapLamports); err != nil {
		return errors.Wrap(err, "failed to fund deposit state")
	}

	if err := p.host.CreateAssociatedTokenAccount(owner.Key, mint.Key, tokenProgram.Key, depositAuthority); err != nil {
		return errors.Wrap(err, "failed to create deposit token account")
	}

	minimumBalance := p.host.MinimumBalance(flashsale.SaleAccountMaxSize)
	if err := p.host.CreateAccount(owner.Key, p.programID, minimumBalance, flashsale.SaleAccountMaxSize, saleAuthority); err != nil {
		return errors.Wrap(err, "failed to create sale state")
	}

	record := &flashsale.SaleAccount{
		ItemName:      args.ItemName,
		Price:         args.InitialPrice,
		InitTimestamp: p.host.UnixTimestamp(),
		Mint:          mint.Key,
		Owner:         owner.Key,
	}
	if err := record.MarshalTo(saleState.Data); err != nil {
		return errors.Wrap(err, "failed to write sale record")
	}

	if err := p.host.TransferChecked(tokenProgram.Key, source.Key, mint.Key, depositTokenAccount.Key, owner.Key, args.Quantity, mintState.Decimals); err != nil {
		return errors.Wrap(err, "failed to escrow tokens")
	}

	log.WithFields(logrus.Fields{
		"item_name": args.ItemName,
		"price":     args.InitialPrice,
		"quantity":  args.Quantity,
	}).Debug("opened flash sale")

	return nil
}
