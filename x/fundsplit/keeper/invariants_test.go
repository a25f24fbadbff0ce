package keeper_test

import (
	"github.com/stretchr/testify/mock"

	"github.com/xpladev/fundsplit/x/fundsplit/keeper"
	"github.com/xpladev/fundsplit/x/fundsplit/types"

	sdkmath "cosmossdk.io/math"
	"cosmossdk.io/store/prefix"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

type invariantRegistry struct {
	routes []string
}

func (r *invariantRegistry) RegisterRoute(moduleName, route string, _ sdk.Invariant) {
	r.routes = append(r.routes, moduleName+"/"+route)
}

func (s *KeeperTestSuite) TestRegisterInvariants() {
	ir := &invariantRegistry{}
	keeper.RegisterInvariants(ir, s.keeper, s.bankKeeper)
	s.Require().Equal([]string{
		"fundsplit/nonzero-balances",
		"fundsplit/conservation",
		"fundsplit/module-account",
	}, ir.routes)

	ir = &invariantRegistry{}
	keeper.RegisterInvariants(ir, s.keeper, nil)
	s.Require().Len(ir.routes, 2)
}

func (s *KeeperTestSuite) TestConservationInvariant() {
	inv := keeper.ConservationInvariant(s.keeper)

	_, broken := inv(s.ctx)
	s.Require().False(broken)

	for i := int64(1); i <= 50; i++ {
		s.split(i * 37)
	}
	_, err := s.keeper.Withdraw(s.ctx, s.bob.String(), types.WithdrawExact{Coin: sdk.NewInt64Coin(denom, 100)})
	s.Require().NoError(err)
	_, err = s.keeper.Withdraw(s.ctx, s.owner.String(), types.WithdrawAll{})
	s.Require().NoError(err)

	_, broken = inv(s.ctx)
	s.Require().False(broken)

	// value created out of thin air breaks conservation
	s.Require().NoError(s.keeper.Credit(s.ctx, s.alice, sdkmath.NewInt(1)))
	msg, broken := inv(s.ctx)
	s.Require().True(broken, msg)
}

func (s *KeeperTestSuite) TestNonZeroBalancesInvariant() {
	s.split(1000)
	inv := keeper.NonZeroBalancesInvariant(s.keeper)

	_, broken := inv(s.ctx)
	s.Require().False(broken)

	// write a zero entry bypassing the ledger
	zero := sdk.NewInt64Coin(denom, 0)
	store := prefix.NewStore(s.ctx.KVStore(s.storeKey), types.BalancePrefix)
	bz, err := zero.Marshal()
	s.Require().NoError(err)
	store.Set(types.BalanceKey(sdk.AccAddress("carol")), bz)

	msg, broken := inv(s.ctx)
	s.Require().True(broken, msg)
}

func (s *KeeperTestSuite) TestModuleAccountInvariant() {
	s.split(1000)
	inv := keeper.ModuleAccountInvariant(s.keeper, s.bankKeeper)

	s.bankKeeper.On("GetBalance", mock.Anything, types.ModuleAddress, denom).Return(sdk.NewInt64Coin(denom, 1000)).Once()
	_, broken := inv(s.ctx)
	s.Require().False(broken)

	s.bankKeeper.On("GetBalance", mock.Anything, types.ModuleAddress, denom).Return(sdk.NewInt64Coin(denom, 999)).Once()
	_, broken = inv(s.ctx)
	s.Require().True(broken)
}

func (s *KeeperTestSuite) TestAllInvariants() {
	s.split(1000)
	_, broken := keeper.AllInvariants(s.keeper, nil)(s.ctx)
	s.Require().False(broken)
}
