package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// WithdrawAmount selects how much of a ledger balance a withdrawal pays out.
// It is either WithdrawAll or WithdrawExact.
type WithdrawAmount interface {
	isWithdrawAmount()
	String() string
}

// WithdrawAll drains the whole balance of the caller.
type WithdrawAll struct{}

// WithdrawExact pays out exactly Coin.
type WithdrawExact struct {
	Coin sdk.Coin
}

var (
	_ WithdrawAmount = WithdrawAll{}
	_ WithdrawAmount = WithdrawExact{}
)

func (WithdrawAll) isWithdrawAmount()   {}
func (WithdrawExact) isWithdrawAmount() {}

func (WithdrawAll) String() string { return "all" }

func (w WithdrawExact) String() string { return w.Coin.String() }

// ParseWithdrawAmount parses the textual form used by the CLI. An empty
// string or "all" selects WithdrawAll.
func ParseWithdrawAmount(s string) (WithdrawAmount, error) {
	if s == "" || s == "all" {
		return WithdrawAll{}, nil
	}
	coin, err := sdk.ParseCoinNormalized(s)
	if err != nil {
		return nil, err
	}
	return WithdrawExact{Coin: coin}, nil
}
