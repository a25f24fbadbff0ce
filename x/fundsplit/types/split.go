package types

import (
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

var (
	feeNumerator   = sdkmath.NewInt(FeeNumerator)
	feeDenominator = sdkmath.NewInt(FeeDenominator)
	two            = sdkmath.NewInt(2)
)

// SplitAmounts is the attribution of a single deposit. Fee, Share1 and
// Share2 always add up to Deposit.
type SplitAmounts struct {
	Deposit sdkmath.Int
	Fee     sdkmath.Int
	Share1  sdkmath.Int
	Share2  sdkmath.Int
}

// ComputeSplit computes the owner fee and both recipient shares of a deposit.
//
// All divisions truncate. The fee absorbs the remainder of the fee division
// and Share2 absorbs the remainder of the two-way split, so no unit is created
// or lost.
func ComputeSplit(deposit sdkmath.Int) (SplitAmounts, error) {
	if deposit.IsNil() || deposit.IsNegative() {
		return SplitAmounts{}, errorsmod.Wrapf(ErrInvalidTokenTransfer, "invalid deposit amount %s", deposit)
	}

	scaled, err := deposit.SafeMul(feeDenominator.Sub(feeNumerator))
	if err != nil {
		return SplitAmounts{}, errorsmod.Wrapf(ErrAmountOverflow, "deposit %s: %s", deposit, err)
	}

	net := scaled.Quo(feeDenominator)
	share1 := net.Quo(two)

	return SplitAmounts{
		Deposit: deposit,
		Fee:     deposit.Sub(net),
		Share1:  share1,
		Share2:  net.Sub(share1),
	}, nil
}

// Total returns the sum of every attributed part.
func (s SplitAmounts) Total() sdkmath.Int {
	return s.Fee.Add(s.Share1).Add(s.Share2)
}
