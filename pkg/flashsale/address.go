package flashsale

import (
	"crypto/ed25519"

	"github.com/code-payments/flashsale-program/pkg/solana"
)

var (
	saleStatePrefix    = []byte("sale")
	depositStatePrefix = []byte("deposit")
)

type GetSaleStateAddressArgs struct {
	ItemName string
	Mint     ed25519.PublicKey
	Owner    ed25519.PublicKey
}

type GetDepositStateAddressArgs struct {
	ItemName string
	Mint     ed25519.PublicKey
	Owner    ed25519.PublicKey
}

// GetSaleStateAddress derives the account holding the serialized SaleAccount
// record for the (item_name, mint, owner) triple.
func GetSaleStateAddress(args *GetSaleStateAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		saleStatePrefix,
		[]byte(args.ItemName),
		args.Mint,
		args.Owner,
	)
}

// GetDepositStateAddress derives the custody wallet whose associated token
// account escrows the tokens being sold. It is an address sibling of the sale
// state account, keyed by the same triple.
func GetDepositStateAddress(args *GetDepositStateAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		depositStatePrefix,
		[]byte(args.ItemName),
		args.Mint,
		args.Owner,
	)
}

// DerivedAuthority proves the holder may authorize actions on behalf of one
// program-derived address. It is only ever constructed here, from a full seed
// tuple plus the found bump, and is consumed by the external transfer calls
// that need the program's signature for that address.
type DerivedAuthority struct {
	address ed25519.PublicKey
	seeds   [][]byte
}

func (a DerivedAuthority) Address() ed25519.PublicKey {
	return a.address
}

// Seeds returns the seed tuple, bump included, in signing order.
func (a DerivedAuthority) Seeds() [][]byte {
	return a.seeds
}

// DeriveSaleStateAuthority derives the sale state address along with the
// signing authority for it.
func DeriveSaleStateAuthority(args *GetSaleStateAddressArgs) (DerivedAuthority, error) {
	address, bump, err := GetSaleStateAddress(args)
	if err != nil {
		return DerivedAuthority{}, err
	}

	return DerivedAuthority{
		address: address,
		seeds: [][]byte{
			saleStatePrefix,
			[]byte(args.ItemName),
			args.Mint,
			args.Owner,
			{bump},
		},
	}, nil
}

// DeriveDepositStateAuthority derives the deposit custody address along with
// the signing authority for it.
func DeriveDepositStateAuthority(args *GetDepositStateAddressArgs) (DerivedAuthority, error) {
	address, bump, err := GetDepositStateAddress(args)
	if err != nil {
		return DerivedAuthority{}, err
	}

	return DerivedAuthority{
		address: address,
		seeds: [][]byte{
			depositStatePrefix,
			[]byte(args.ItemName),
			args.Mint,
			args.Owner,
			{bump},
		},
	}, nil
}
