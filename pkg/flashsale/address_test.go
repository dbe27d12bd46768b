package flashsale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/flashsale-program/pkg/solana"
)

func TestGetStateAddresses(t *testing.T) {
	mint := generateKey(t)
	owner := generateKey(t)

	saleState, saleBump, err := GetSaleStateAddress(&GetSaleStateAddressArgs{
		ItemName: "limited-drop",
		Mint:     mint,
		Owner:    owner,
	})
	require.NoError(t, err)

	depositState, _, err := GetDepositStateAddress(&GetDepositStateAddressArgs{
		ItemName: "limited-drop",
		Mint:     mint,
		Owner:    owner,
	})
	require.NoError(t, err)

	// The two namespaces never collide for the same sale key.
	assert.NotEqual(t, saleState, depositState)

	// Derivation is a pure function of the key triple.
	again, againBump, err := GetSaleStateAddress(&GetSaleStateAddressArgs{
		ItemName: "limited-drop",
		Mint:     mint,
		Owner:    owner,
	})
	require.NoError(t, err)
	assert.Equal(t, saleState, again)
	assert.Equal(t, saleBump, againBump)

	// Any component of the triple changing moves the address.
	for _, modified := range []*GetSaleStateAddressArgs{
		{ItemName: "limited-drop-2", Mint: mint, Owner: owner},
		{ItemName: "limited-drop", Mint: generateKey(t), Owner: owner},
		{ItemName: "limited-drop", Mint: mint, Owner: generateKey(t)},
	} {
		other, _, err := GetSaleStateAddress(modified)
		require.NoError(t, err)
		assert.NotEqual(t, saleState, other)
	}
}

func TestDerivedAuthority_SeedsMatchAddress(t *testing.T) {
	mint := generateKey(t)
	owner := generateKey(t)

	saleAuthority, err := DeriveSaleStateAuthority(&GetSaleStateAddressArgs{
		ItemName: "limited-drop",
		Mint:     mint,
		Owner:    owner,
	})
	require.NoError(t, err)

	depositAuthority, err := DeriveDepositStateAuthority(&GetDepositStateAddressArgs{
		ItemName: "limited-drop",
		Mint:     mint,
		Owner:    owner,
	})
	require.NoError(t, err)

	// The seed tuple, bump included, must reconstruct the address exactly.
	for _, authority := range []DerivedAuthority{saleAuthority, depositAuthority} {
		reconstructed, err := solana.CreateProgramAddress(PROGRAM_ID, authority.Seeds()...)
		require.NoError(t, err)
		assert.Equal(t, authority.Address(), reconstructed)
	}
}
