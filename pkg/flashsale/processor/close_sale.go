package processor

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/code-payments/flashsale-program/pkg/flashsale"
	"github.com/code-payments/flashsale-program/pkg/solana/system"
	"github.com/code-payments/flashsale-program/pkg/solana/token"
)

// closeSale dismantles a sale: the deposit's entire remaining escrow balance
// returns to the owner, and the sale state account's lamports are swept back.
// Sweeping an already-drained sale account is a no-op. When reclamation is
// enabled the drained sale account is reassigned to the system program.
//
// Account references:
//   0. [WRITE, SIGNER] owner
//   1. [WRITE] receiver token account
//   2. [WRITE] mint
//   3. [WRITE] deposit state
//   4. [WRITE] deposit token account
//   5. [WRITE] sale state
//   6. [] system program
//   7. [] token program
func (p *Processor) closeSale(accounts []*Account, data []byte) error {
	log := p.log.WithField("method", "closeSale")

	if len(accounts) < 8 {
		return ErrNotEnoughAccounts
	}

	owner := accounts[0]
	receiverTokenAccount := accounts[1]
	mint := accounts[2]
	depositState := accounts[3]
	depositTokenAccount := accounts[4]
	saleState := accounts[5]
	systemProgram := accounts[6]
	tokenProgram := accounts[7]

	if err := flashsale.CloseSaleInstructionFromBinary(data); err != nil {
		return err
	}

	var record flashsale.SaleAccount
	if err := record.Unmarshal(saleState.Data); err != nil {
		return err
	}

	if err := requireSigner(owner); err != nil {
		return err
	}
	if err := requireAddress(mint, record.Mint); err != nil {
		return err
	}
	if err := requireAddress(owner, record.Owner); err != nil {
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

	saleAuthority, err := flashsale.DeriveSaleStateAuthority(&flashsale.GetSaleStateAddressArgs{
		ItemName: record.ItemName,
		Mint:     record.Mint,
		Owner:    record.Owner,
	})
	if err != nil {
		return errors.Wrap(err, "failed to derive sale state address")
	}
	if err := requireAddress(saleState, saleAuthority.Address()); err != nil {
		return err
	}

	var depositBalance token.Account
	if !depositBalance.Unmarshal(depositTokenAccount.Data) {
		return errors.Wrap(flashsale.ErrInvalidAccountData, "invalid deposit token account")
	}
	if err := requireAddress(mint, depositBalance.Mint); err != nil {
		return err
	}

	var mintState token.Mint
	if !mintState.Unmarshal(mint.Data) {
		return errors.Wrap(flashsale.ErrInvalidAccountData, "invalid mint account")
	}

	// Transferring zero is accepted silently by the token program, so an
	// already-empty deposit doesn't block the close.
	if err := p.host.TransferCheckedSigned(tokenProgram.Key, depositTokenAccount.Key, mint.Key, receiverTokenAccount.Key, depositBalance.Amount, mintState.Decimals, depositAuthority); err != nil {
		return errors.Wrap(err, "failed to return escrowed tokens")
	}

	// The program owns the sale state account, so its lamports move without
	// a system program call. Idempotent at zero.
	if lamports := saleState.Lamports; lamports > 0 {
		saleState.Lamports = 0
		owner.Lamports += lamports
	}

	if p.reclaimSaleAccounts {
		if err := p.host.AssignOwner(system.ProgramKey[:], saleAuthority); err != nil {
			return errors.Wrap(err, "failed to reclaim sale state")
		}
	}

	log.WithFields(logrus.Fields{
		"item_name": record.ItemName,
		"returned":  depositBalance.Amount,
	}).Debug("closed flash sale")

	return nil
}
