package server

import (
	"fmt"
	"path/filepath"

	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	cmttime "github.com/cometbft/cometbft/types/time"
	dbm "github.com/cosmos/cosmos-db"

	"github.com/xpladev/fundsplit/x/fundsplit/keeper"
	"github.com/xpladev/fundsplit/x/fundsplit/types"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"

	"github.com/cosmos/cosmos-sdk/codec"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Node is a single-writer ledger backed by a commit multistore. Every command
// opens a node, executes one state transition against Context and commits it
// as a new version.
type Node struct {
	logger log.Logger
	db     dbm.DB
	cms        storetypes.CommitMultiStore
	keeper     keeper.Keeper
	invariants *invariantRegistry
	ctx        sdk.Context
}

// OpenNode opens (or creates) the ledger database described by cfg.
func OpenNode(cfg Config, logger log.Logger) (*Node, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	db, err := dbm.NewDB(types.ModuleName, dbm.BackendType(cfg.DBBackend), filepath.Join(cfg.Home, "data"))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.DBBackend, err)
	}

	key := storetypes.NewKVStoreKey(types.StoreKey)
	cms := store.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())
	cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, nil)
	if err := cms.LoadLatestVersion(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to load ledger store: %w", err)
	}

	cdc := codec.NewProtoCodec(codectypes.NewInterfaceRegistry())
	k := keeper.NewKeeper(cdc, key, addresscodec.NewBech32Codec(cfg.Bech32Prefix), cfg.ModuleConfig())

	// no bank module: deposits are attributed, not escrowed
	invariants := &invariantRegistry{}
	keeper.RegisterInvariants(invariants, k, nil)

	header := cmtproto.Header{
		Height: cms.LastCommitID().Version + 1,
		Time:   cmttime.Now(),
	}

	logger.Debug("ledger opened", "home", cfg.Home, "backend", cfg.DBBackend, "height", header.Height)

	return &Node{
		logger:     logger,
		db:         db,
		cms:        cms,
		keeper:     k,
		invariants: invariants,
		ctx:        sdk.NewContext(cms, header, false, logger),
	}, nil
}

// Context returns the context of the pending state transition.
func (n *Node) Context() sdk.Context {
	return n.ctx
}

// Keeper returns the fundsplit keeper bound to the node store.
func (n *Node) Keeper() keeper.Keeper {
	return n.keeper
}

// CheckInvariants asserts every registered invariant against the pending
// state.
func (n *Node) CheckInvariants() error {
	return n.invariants.assert(n.ctx)
}

// Commit persists the pending state transition.
func (n *Node) Commit() error {
	if err := n.invariants.assert(n.ctx); err != nil {
		return fmt.Errorf("refusing to commit broken ledger: %w", err)
	}

	id := n.cms.Commit()
	n.logger.Debug("ledger committed", "version", id.Version, "hash", fmt.Sprintf("%X", id.Hash))
	return nil
}

// Close releases the database. Uncommitted writes are discarded.
func (n *Node) Close() error {
	return n.db.Close()
}
