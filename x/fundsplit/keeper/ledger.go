package keeper

import (
	"github.com/xpladev/fundsplit/x/fundsplit/types"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	"cosmossdk.io/store/prefix"
	storetypes "cosmossdk.io/store/types"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GetBalance returns the stored balance of addr. The second return value is
// false when the account has no entry, which covers both never credited and
// fully withdrawn accounts.
func (k Keeper) GetBalance(ctx sdk.Context, addr sdk.AccAddress) (sdk.Coin, bool) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.BalancePrefix)
	bz := store.Get(types.BalanceKey(addr))
	if len(bz) == 0 {
		return sdk.Coin{}, false
	}

	var balance sdk.Coin
	k.cdc.MustUnmarshal(bz, &balance)
	return balance, true
}

// Balance returns the balance of addr, or a zero coin of the configured denom
// if there is no entry.
func (k Keeper) Balance(ctx sdk.Context, addr sdk.AccAddress) sdk.Coin {
	balance, found := k.GetBalance(ctx, addr)
	if !found {
		return k.config.ZeroCoin()
	}
	return balance
}

// setBalance stores amount for addr. A zero amount deletes the entry.
func (k Keeper) setBalance(ctx sdk.Context, addr sdk.AccAddress, amount sdkmath.Int) {
	if amount.IsNegative() {
		panic(errorsmod.Wrapf(types.ErrInsufficientBalance, "negative balance %s for %s", amount, addr))
	}

	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.BalancePrefix)
	if amount.IsZero() {
		store.Delete(types.BalanceKey(addr))
		return
	}

	balance := sdk.NewCoin(k.config.Denom, amount)
	store.Set(types.BalanceKey(addr), k.cdc.MustMarshal(&balance))
}

// ledgerCredit is a pending increase of a single ledger entry.
type ledgerCredit struct {
	addr   sdk.AccAddress
	amount sdkmath.Int
}

// credit increases the balance of addr, creating the entry if needed.
// Crediting zero leaves the store untouched.
func (k Keeper) credit(ctx sdk.Context, addr sdk.AccAddress, amount sdkmath.Int) error {
	return k.applyCredits(ctx, nil, sdkmath.ZeroInt(), ledgerCredit{addr, amount})
}

// applyCredits adds every credit to the ledger and total to the counter
// stored under counterKey, if any. All sums are computed before the first
// write, so an overflow returns ErrAmountOverflow with the store unchanged.
func (k Keeper) applyCredits(ctx sdk.Context, counterKey []byte, total sdkmath.Int, credits ...ledgerCredit) error {
	var (
		order    []string
		addrs    = map[string]sdk.AccAddress{}
		balances = map[string]sdkmath.Int{}
	)

	for _, c := range credits {
		if c.amount.IsZero() {
			continue
		}
		key := string(c.addr)
		current, ok := balances[key]
		if !ok {
			current = k.Balance(ctx, c.addr).Amount
			order = append(order, key)
			addrs[key] = c.addr
		}
		next, err := current.SafeAdd(c.amount)
		if err != nil {
			return errorsmod.Wrapf(types.ErrAmountOverflow, "balance of %s: %s", c.addr, err)
		}
		balances[key] = next
	}

	var counter sdkmath.Int
	if counterKey != nil {
		var err error
		if counter, err = k.nextCounter(ctx, counterKey, total); err != nil {
			return err
		}
	}

	for _, key := range order {
		k.setBalance(ctx, addrs[key], balances[key])
	}
	if counterKey != nil {
		k.setCounter(ctx, counterKey, counter)
	}
	return nil
}

// debit decreases the balance of addr and removes the entry once it reaches
// zero. Callers check the balance first; an overdraft is rejected without
// touching the store.
func (k Keeper) debit(ctx sdk.Context, addr sdk.AccAddress, amount sdkmath.Int) error {
	current := k.Balance(ctx, addr).Amount
	if amount.GT(current) {
		return errorsmod.Wrapf(types.ErrInsufficientBalance, "debit %s exceeds balance %s", amount, current)
	}
	k.setBalance(ctx, addr, current.Sub(amount))
	return nil
}

// IterateBalances iterates over every ledger entry.
func (k Keeper) IterateBalances(ctx sdk.Context, cb func(addr sdk.AccAddress, balance sdk.Coin) (stop bool)) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.BalancePrefix)
	iterator := storetypes.KVStorePrefixIterator(store, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var balance sdk.Coin
		k.cdc.MustUnmarshal(iterator.Value(), &balance)

		if cb(sdk.AccAddress(iterator.Key()), balance) {
			break
		}
	}
}

// GetAllBalances returns every ledger entry.
func (k Keeper) GetAllBalances(ctx sdk.Context) []types.GenesisBalance {
	balances := []types.GenesisBalance{}

	k.IterateBalances(ctx, func(addr sdk.AccAddress, balance sdk.Coin) bool {
		balances = append(balances, types.GenesisBalance{
			Address: k.formatAddress(addr),
			Balance: balance,
		})
		return false
	})

	return balances
}

// GetTotalBalance returns the sum of every ledger entry.
func (k Keeper) GetTotalBalance(ctx sdk.Context) sdk.Coin {
	total := sdkmath.ZeroInt()

	k.IterateBalances(ctx, func(_ sdk.AccAddress, balance sdk.Coin) bool {
		total = total.Add(balance.Amount)
		return false
	})

	return sdk.NewCoin(k.config.Denom, total)
}

// GetTotalDeposited returns the cumulative amount received through Split.
func (k Keeper) GetTotalDeposited(ctx sdk.Context) sdkmath.Int {
	return k.getCounter(ctx, types.TotalDepositedKey)
}

// GetTotalWithdrawn returns the cumulative amount paid out through Withdraw.
func (k Keeper) GetTotalWithdrawn(ctx sdk.Context) sdkmath.Int {
	return k.getCounter(ctx, types.TotalWithdrawnKey)
}

func (k Keeper) getCounter(ctx sdk.Context, key []byte) sdkmath.Int {
	bz := ctx.KVStore(k.storeKey).Get(key)
	if len(bz) == 0 {
		return sdkmath.ZeroInt()
	}

	var value sdkmath.Int
	if err := value.Unmarshal(bz); err != nil {
		panic(err)
	}
	return value
}

// nextCounter returns the counter under key increased by amount.
func (k Keeper) nextCounter(ctx sdk.Context, key []byte, amount sdkmath.Int) (sdkmath.Int, error) {
	value, err := k.getCounter(ctx, key).SafeAdd(amount)
	if err != nil {
		return sdkmath.Int{}, errorsmod.Wrapf(types.ErrAmountOverflow, "counter %X: %s", key, err)
	}
	return value, nil
}

func (k Keeper) setCounter(ctx sdk.Context, key []byte, value sdkmath.Int) {
	bz, err := value.Marshal()
	if err != nil {
		panic(err)
	}
	ctx.KVStore(k.storeKey).Set(key, bz)
}
