package keeper_test

import (
	"errors"

	"github.com/stretchr/testify/mock"

	"github.com/xpladev/fundsplit/x/fundsplit/keeper"
	"github.com/xpladev/fundsplit/x/fundsplit/types"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

func coinsEqual(expected sdk.Coins) interface{} {
	return mock.MatchedBy(func(actual sdk.Coins) bool {
		return actual.Equal(expected)
	})
}

func (s *KeeperTestSuite) TestMsgServerSplit() {
	funds := sdk.NewCoins(sdk.NewInt64Coin(denom, 1000))
	sender := sdk.AccAddress("creator")

	testCases := []struct {
		name     string
		malleate func()
		msg      *types.MsgSplit
		expErr   bool
		expStore bool
	}{
		{
			"pass",
			func() {
				s.bankKeeper.On("SendCoinsFromAccountToModule", mock.Anything, sender, types.ModuleName, coinsEqual(funds)).Return(nil).Once()
			},
			types.NewMsgSplit(sender.String(), s.bob.String(), s.alice.String(), funds),
			false,
			true,
		},
		{
			"fail - bank escrow fails, ledger untouched",
			func() {
				s.bankKeeper.On("SendCoinsFromAccountToModule", mock.Anything, sender, types.ModuleName, coinsEqual(funds)).Return(errors.New("insufficient funds")).Once()
			},
			types.NewMsgSplit(sender.String(), s.bob.String(), s.alice.String(), funds),
			true,
			false,
		},
		{
			"fail - wrong denom, bank never called",
			func() {},
			types.NewMsgSplit(sender.String(), s.bob.String(), s.alice.String(), sdk.NewCoins(sdk.NewInt64Coin("BTC", 1000))),
			true,
			false,
		},
		{
			"fail - invalid sender",
			func() {},
			types.NewMsgSplit("creator", s.bob.String(), s.alice.String(), funds),
			true,
			false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			tc.malleate()
			msgServer := keeper.NewMsgServerImpl(s.keeper, s.bankKeeper)

			res, err := msgServer.Split(s.ctx, tc.msg)
			if tc.expErr {
				s.Require().Error(err)
				s.Require().Nil(res)
			} else {
				s.Require().NoError(err)
				s.Require().Equal(int64(20), res.Amounts.Fee.Int64())
			}

			if tc.expStore {
				s.requireBalance(s.bob, 490)
				s.requireBalance(s.alice, 490)
				s.requireBalance(s.owner, 20)
			} else {
				s.requireBalance(s.bob, 0)
				s.requireBalance(s.owner, 0)
				s.Require().True(s.keeper.GetTotalDeposited(s.ctx).IsZero())
			}
		})
	}
}

func (s *KeeperTestSuite) TestMsgServerWithdraw() {
	testCases := []struct {
		name       string
		malleate   func()
		msg        func() *types.MsgWithdraw
		expErr     bool
		expBalance int64
	}{
		{
			"pass - exact amount",
			func() {
				s.bankKeeper.On("SendCoinsFromModuleToAccount", mock.Anything, types.ModuleName, s.bob, coinsEqual(sdk.NewCoins(sdk.NewInt64Coin(denom, 400)))).Return(nil).Once()
			},
			func() *types.MsgWithdraw {
				return types.NewMsgWithdraw(s.bob.String(), types.WithdrawExact{Coin: sdk.NewInt64Coin(denom, 400)})
			},
			false,
			90,
		},
		{
			"pass - everything",
			func() {
				s.bankKeeper.On("SendCoinsFromModuleToAccount", mock.Anything, types.ModuleName, s.bob, coinsEqual(sdk.NewCoins(sdk.NewInt64Coin(denom, 490)))).Return(nil).Once()
			},
			func() *types.MsgWithdraw {
				return types.NewMsgWithdraw(s.bob.String(), types.WithdrawAll{})
			},
			false,
			0,
		},
		{
			"fail - payout fails, ledger untouched",
			func() {
				s.bankKeeper.On("SendCoinsFromModuleToAccount", mock.Anything, types.ModuleName, s.bob, mock.Anything).Return(errors.New("module account is broke")).Once()
			},
			func() *types.MsgWithdraw {
				return types.NewMsgWithdraw(s.bob.String(), types.WithdrawAll{})
			},
			true,
			490,
		},
		{
			"fail - exceeds balance",
			func() {},
			func() *types.MsgWithdraw {
				return types.NewMsgWithdraw(s.bob.String(), types.WithdrawExact{Coin: sdk.NewInt64Coin(denom, 1000)})
			},
			true,
			490,
		},
		{
			"fail - empty sender",
			func() {},
			func() *types.MsgWithdraw {
				return types.NewMsgWithdraw("", types.WithdrawAll{})
			},
			true,
			490,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.split(1000)
			tc.malleate()
			msgServer := keeper.NewMsgServerImpl(s.keeper, s.bankKeeper)

			res, err := msgServer.Withdraw(s.ctx, tc.msg())
			if tc.expErr {
				s.Require().Error(err)
				s.Require().Nil(res)
			} else {
				s.Require().NoError(err)
				s.Require().Equal(s.bob.String(), res.Transfer.ToAddress)
			}

			s.requireBalance(s.bob, tc.expBalance)
		})
	}
}
