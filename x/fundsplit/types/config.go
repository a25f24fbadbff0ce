package types

import (
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// DefaultDenom is the only token accepted for deposits and withdrawals
	DefaultDenom = "usei"

	// FeeNumerator and FeeDenominator define the protocol fee (2%). They are
	// fixed at build time and are not part of the mutable state.
	FeeNumerator   = 2
	FeeDenominator = 100
)

// Config is the immutable configuration a Keeper is constructed with.
type Config struct {
	Denom string `json:"denom"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{Denom: DefaultDenom}
}

// Validate performs a stateless validation of the configuration
func (c Config) Validate() error {
	if err := sdk.ValidateDenom(c.Denom); err != nil {
		return errorsmod.Wrapf(ErrInvalidConfig, "denom: %s", err)
	}
	return nil
}

// ZeroCoin returns an empty balance in the configured denom.
func (c Config) ZeroCoin() sdk.Coin {
	return sdk.NewCoin(c.Denom, sdkmath.ZeroInt())
}
