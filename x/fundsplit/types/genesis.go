package types

import (
	"cosmossdk.io/core/address"
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisBalance is a single ledger entry.
type GenesisBalance struct {
	Address string   `json:"address"`
	Balance sdk.Coin `json:"balance"`
}

// GenesisState defines the fundsplit module's genesis state. When both
// totals are omitted, the balances count as deposits and nothing as withdrawn.
type GenesisState struct {
	Owner          string           `json:"owner"`
	Balances       []GenesisBalance `json:"balances"`
	TotalDeposited sdkmath.Int      `json:"total_deposited"`
	TotalWithdrawn sdkmath.Int      `json:"total_withdrawn"`
}

// NewGenesisState creates a new genesis state.
func NewGenesisState(owner string, balances []GenesisBalance) *GenesisState {
	return &GenesisState{Owner: owner, Balances: balances}
}

// DefaultGenesisState sets default fundsplit genesis state: owned by owner
// with an empty ledger.
func DefaultGenesisState(owner string) *GenesisState {
	gs := NewGenesisState(owner, []GenesisBalance{})
	gs.TotalDeposited = sdkmath.ZeroInt()
	gs.TotalWithdrawn = sdkmath.ZeroInt()
	return gs
}

// Totals returns the deposit and withdrawal counters to load. A nil total
// counts as zero, unless both are nil, in which case the deposits are the
// sum of the balances.
func (gs GenesisState) Totals() (deposited, withdrawn sdkmath.Int, err error) {
	sum := sdkmath.ZeroInt()
	for _, b := range gs.Balances {
		if b.Balance.Amount.IsNil() {
			continue
		}
		if sum, err = sum.SafeAdd(b.Balance.Amount); err != nil {
			return sdkmath.Int{}, sdkmath.Int{}, errorsmod.Wrapf(ErrInvalidGenesis, "sum of balances: %s", err)
		}
	}

	if gs.TotalDeposited.IsNil() && gs.TotalWithdrawn.IsNil() {
		return sum, sdkmath.ZeroInt(), nil
	}

	deposited, withdrawn = gs.TotalDeposited, gs.TotalWithdrawn
	if deposited.IsNil() {
		deposited = sdkmath.ZeroInt()
	}
	if withdrawn.IsNil() {
		withdrawn = sdkmath.ZeroInt()
	}
	if deposited.IsNegative() || withdrawn.IsNegative() {
		return sdkmath.Int{}, sdkmath.Int{}, errorsmod.Wrapf(
			ErrInvalidGenesis, "negative totals: deposited %s, withdrawn %s", deposited, withdrawn,
		)
	}
	if !deposited.Sub(withdrawn).Equal(sum) {
		return sdkmath.Int{}, sdkmath.Int{}, errorsmod.Wrapf(
			ErrInvalidGenesis, "deposited %s - withdrawn %s does not match balances %s", deposited, withdrawn, sum,
		)
	}
	return deposited, withdrawn, nil
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate(ac address.Codec, denom string) error {
	if _, err := ac.StringToBytes(gs.Owner); err != nil {
		return errorsmod.Wrapf(ErrInvalidGenesis, "owner %q: %s", gs.Owner, err)
	}

	seen := make(map[string]bool, len(gs.Balances))
	for _, b := range gs.Balances {
		bz, err := ac.StringToBytes(b.Address)
		if err != nil {
			return errorsmod.Wrapf(ErrInvalidGenesis, "balance address %q: %s", b.Address, err)
		}
		key := string(bz)
		if seen[key] {
			return errorsmod.Wrapf(ErrInvalidGenesis, "duplicate balance for %s", b.Address)
		}
		seen[key] = true

		if err := b.Balance.Validate(); err != nil {
			return errorsmod.Wrapf(ErrInvalidGenesis, "balance of %s: %s", b.Address, err)
		}
		if b.Balance.Denom != denom {
			return errorsmod.Wrapf(ErrInvalidGenesis, "balance of %s has denom %s, expected %s", b.Address, b.Balance.Denom, denom)
		}
		if !b.Balance.IsPositive() {
			return errorsmod.Wrapf(ErrInvalidGenesis, "zero balance stored for %s", b.Address)
		}
	}

	_, _, err := gs.Totals()
	return err
}
