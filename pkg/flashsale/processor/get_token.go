package processor

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/code-payments/flashsale-program/pkg/flashsale"
)

// getToken redeems tokens from an open sale. The lamport payment is issued
// before the escrow transfer so a payer without sufficient funds fails before
// any escrow balance moves; if the escrow transfer fails afterwards the host
// rolls back the whole transition, payment included.
//
// Account references:
//   0. [WRITE, SIGNER] payer
//   1. [WRITE] receiver token account
//   2. [WRITE] mint
//   3. [WRITE] deposit state
//   4. [WRITE] deposit token account
//   5. [WRITE] sale owner
//   6. [WRITE] sale state
//   7. [] system program
//   8. [] token program
func (p *Processor) getToken(accounts []*Account, data []byte) error {
	log := p.log.WithField("method", "getToken")

	if len(accounts) < 9 {
		return ErrNotEnoughAccounts
	}

	payer := accounts[0]
	receiverTokenAccount := accounts[1]
	mint := accounts[2]
	depositState := accounts[3]
	depositTokenAccount := accounts[4]
	saleOwner := accounts[5]
	saleState := accounts[6]
	systemProgram := accounts[7]
	tokenProgram := accounts[8]

	args, err := flashsale.GetTokenInstructionFromBinary(data)
	if err != nil {
		return err
	}

	var record flashsale.SaleAccount
	if err := record.Unmarshal(saleState.Data); err != nil {
		return err
	}

	if err := requireSigner(payer); err != nil {
		return err
	}
	if err := requireAddress(mint, record.Mint); err != nil {
		return err
	}
	if err := requireAddress(saleOwner, record.Owner); err != nil {
		return err
	}
	if err := requireOwner(saleState, p.programID); err != nil {
		return err
	}
	if err := requireAddress(systemProgram, flashsale.SYSTEM_PROGRAM_ID); err != nil {
		return err
	}
	if err := requireAddressIn(tokenProgram, flashsale.SPL_TOKEN_PROGRAM_ID, flashsale.SPL_TOKEN_2022_PROGRAM_ID); err != nil {
		return err
	}

	// The record's contents must place the sale state account at its own
	// canonical derived address.
	expectedSaleState, _, err := flashsale.GetSaleStateAddress(&flashsale.GetSaleStateAddressArgs{
		ItemName: record.ItemName,
		Mint:     record.Mint,
		Owner:    record.Owner,
	})
	if err != nil {
		return errors.Wrap(err, "failed to derive sale state address")
	}
	if err := requireAddress(saleState, expectedSaleState); err != nil {
		return err
	}

	depositAuthority, err := flashsale.DeriveDepositStateAuthority(&flashsale.GetDepositStateAddressArgs{
		ItemName: record.ItemName,
		Mint:     record.Mint,
		Owner:    record.Owner,
	})
	if err != nil {
		return errors.Wrap(err, "failed to derive deposit state address")
	}
	if err := requireAddress(depositState, depositAuthority.Address()); err != nil {
		return err
	}

	owed, err := checkedMul(record.Price, args.Amount)
	if err != nil {
		return err
	}

	if err := p.host.Transfer(payer.Key, saleOwner.Key, owed); err != nil {
		return errors.Wrap(err, "failed to pay sale owner")
	}

	if err := p.host.TransferCheckedSigned(tokenProgram.Key, depositTokenAccount.Key, mint.Key, receiverTokenAccount.Key, args.Amount, args.Decimals, depositAuthority); err != nil {
		return errors.Wrap(err, "failed to release escrowed tokens")
	}

	log.WithFields(logrus.Fields{
		"item_name": record.ItemName,
		"amount":    args.Amount,
		"paid":      owed,
	}).Debug("redeemed from flash sale")

	return nil
}
