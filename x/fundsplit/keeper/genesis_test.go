package keeper_test

import (
	"github.com/xpladev/fundsplit/x/fundsplit/keeper"
	"github.com/xpladev/fundsplit/x/fundsplit/types"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

func (s *KeeperTestSuite) TestExportImportGenesis() {
	s.split(1000)
	_, err := s.keeper.Withdraw(s.ctx, s.bob.String(), types.WithdrawExact{Coin: sdk.NewInt64Coin(denom, 400)})
	s.Require().NoError(err)

	exported := s.keeper.ExportGenesis(s.ctx)
	s.Require().Equal(s.owner.String(), exported.Owner)
	s.Require().Len(exported.Balances, 3)
	s.Require().Equal(int64(1000), exported.TotalDeposited.Int64())
	s.Require().Equal(int64(400), exported.TotalWithdrawn.Int64())

	s.SetupTest()
	s.ctx.KVStore(s.storeKey).Delete(types.OwnerKey)
	s.keeper.InitGenesis(s.ctx, *exported)

	s.requireBalance(s.bob, 90)
	s.requireBalance(s.alice, 490)
	s.requireBalance(s.owner, 20)
	s.Require().Equal(int64(1000), s.keeper.GetTotalDeposited(s.ctx).Int64())
	s.Require().Equal(int64(400), s.keeper.GetTotalWithdrawn(s.ctx).Int64())

	_, broken := keeper.AllInvariants(s.keeper, nil)(s.ctx)
	s.Require().False(broken)
}

func (s *KeeperTestSuite) TestInitGenesisInvalid() {
	s.ctx.KVStore(s.storeKey).Delete(types.OwnerKey)

	s.Require().Panics(func() {
		s.keeper.InitGenesis(s.ctx, *types.NewGenesisState(s.owner.String(), []types.GenesisBalance{
			{Address: s.bob.String(), Balance: sdk.NewInt64Coin("BTC", 10)},
		}))
	})
}

func (s *KeeperTestSuite) TestInitGenesisOwnerAlreadySet() {
	s.Require().Panics(func() {
		s.keeper.InitGenesis(s.ctx, *types.DefaultGenesisState(s.owner.String()))
	})
}

func (s *KeeperTestSuite) TestInitGenesisWithoutTotals() {
	s.ctx.KVStore(s.storeKey).Delete(types.OwnerKey)

	s.keeper.InitGenesis(s.ctx, *types.NewGenesisState(s.owner.String(), []types.GenesisBalance{
		{Address: s.bob.String(), Balance: sdk.NewInt64Coin(denom, 90)},
	}))

	s.Require().Equal(int64(90), s.keeper.GetTotalDeposited(s.ctx).Int64())
	s.Require().True(s.keeper.GetTotalWithdrawn(s.ctx).IsZero())
}
