package keeper_test

import (
	"github.com/xpladev/fundsplit/x/fundsplit/types"

	sdkmath "cosmossdk.io/math"
	"cosmossdk.io/store/prefix"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

func (s *KeeperTestSuite) TestCreditCreatesEntry() {
	_, found := s.keeper.GetBalance(s.ctx, s.bob)
	s.Require().False(found)

	s.Require().NoError(s.keeper.Credit(s.ctx, s.bob, sdkmath.NewInt(100)))
	s.Require().NoError(s.keeper.Credit(s.ctx, s.bob, sdkmath.NewInt(50)))

	balance, found := s.keeper.GetBalance(s.ctx, s.bob)
	s.Require().True(found)
	s.Require().Equal(int64(150), balance.Amount.Int64())
	s.Require().Equal(denom, balance.Denom)
}

func (s *KeeperTestSuite) TestCreditZeroIsNoop() {
	s.Require().NoError(s.keeper.Credit(s.ctx, s.bob, sdkmath.ZeroInt()))

	store := prefix.NewStore(s.ctx.KVStore(s.storeKey), types.BalancePrefix)
	s.Require().Nil(store.Get(types.BalanceKey(s.bob)))
	s.requireBalance(s.bob, 0)
}

func (s *KeeperTestSuite) TestDebit() {
	testCases := []struct {
		name       string
		credit     int64
		debit      int64
		expErr     error
		expBalance int64
		expDeleted bool
	}{
		{"partial", 100, 40, nil, 60, false},
		{"full debit deletes", 100, 100, nil, 0, true},
		{"overdraft rejected", 100, 101, types.ErrInsufficientBalance, 100, false},
		{"debit absent entry", 0, 1, types.ErrInsufficientBalance, 0, true},
		{"zero debit", 10, 0, nil, 10, false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.Require().NoError(s.keeper.Credit(s.ctx, s.bob, sdkmath.NewInt(tc.credit)))

			err := s.keeper.Debit(s.ctx, s.bob, sdkmath.NewInt(tc.debit))
			if tc.expErr != nil {
				s.Require().ErrorIs(err, tc.expErr)
			} else {
				s.Require().NoError(err)
			}

			s.requireBalance(s.bob, tc.expBalance)
			_, found := s.keeper.GetBalance(s.ctx, s.bob)
			s.Require().Equal(!tc.expDeleted, found)
		})
	}
}

func (s *KeeperTestSuite) TestIterateBalances() {
	addrs := []sdk.AccAddress{}
	sum := sdkmath.ZeroInt()

	for i := 1; i < 10; i++ {
		addr := sdk.AccAddress([]byte{byte(i)})
		addrs = append(addrs, addr)

		amt := sdkmath.NewInt(int64(i))
		sum = sum.Add(amt)
		s.Require().NoError(s.keeper.Credit(s.ctx, addr, amt))
	}

	seenAddrs := []sdk.AccAddress{}
	s.keeper.IterateBalances(s.ctx, func(addr sdk.AccAddress, balance sdk.Coin) bool {
		seenAddrs = append(seenAddrs, addr)

		// Balance is same as first address byte
		s.Require().Equal(int64(addr.Bytes()[0]), balance.Amount.Int64())
		return false
	})
	s.Require().ElementsMatch(addrs, seenAddrs, "all addresses should be seen")

	s.Require().True(sum.Equal(s.keeper.GetTotalBalance(s.ctx).Amount))
	s.Require().Len(s.keeper.GetAllBalances(s.ctx), len(addrs))

	count := 0
	s.keeper.IterateBalances(s.ctx, func(sdk.AccAddress, sdk.Coin) bool {
		count++
		return true
	})
	s.Require().Equal(1, count, "iteration stops when the callback returns true")
}
