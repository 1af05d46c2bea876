package keeper

import (
	"errors"
	"math/big"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/summitlabs/wtoken/permit"
	"github.com/summitlabs/wtoken/types"
)

// Keeper is the operational surface of the wrapper token: a non-rebasing
// share ledger over a rebasing underlying asset. The asset itself is an
// injected capability and remains the single source of truth for the vault's
// holdings and for pause/ban policy.
type Keeper struct {
	schema collections.Schema

	name         string
	symbol       string
	chainID      *big.Int
	address      common.Address
	assetAddress common.Address

	AssetKeeper      types.RebasingAssetKeeper
	AccessController types.AccessController

	recoverer       permit.SignerRecoverer
	domainSeparator common.Hash

	Shares      collections.Map[[]byte, math.Int]
	TotalShares collections.Item[math.Int]
	Allowances  collections.Map[collections.Pair[[]byte, []byte], math.Int]
	NonceStore  collections.Map[[]byte, uint64]
	Paused      collections.Item[bool]
	Initialized collections.Item[bool]
	Version     collections.Item[uint64]
}

// NewKeeper wires the wrapper token over its store and capabilities. name and
// chainID feed the typed-data domain; address is the vault's own identity
// (asset custodian and verifying contract); assetAddress identifies the
// wrapped token.
func NewKeeper(
	storeService store.KVStoreService,
	name, symbol string,
	chainID *big.Int,
	address, assetAddress common.Address,
	assetKeeper types.RebasingAssetKeeper,
	accessController types.AccessController,
	recoverer permit.SignerRecoverer,
) *Keeper {
	builder := collections.NewSchemaBuilder(storeService)

	keeper := &Keeper{
		name:             name,
		symbol:           symbol,
		chainID:          chainID,
		address:          address,
		assetAddress:     assetAddress,
		AssetKeeper:      assetKeeper,
		AccessController: accessController,
		recoverer:        recoverer,
		domainSeparator:  permit.DomainSeparator(name, types.DomainVersion, chainID, address),
		Shares:           collections.NewMap(builder, types.SharesKeyPrefix, types.SharesName, collections.BytesKey, sdk.IntValue),
		TotalShares:      collections.NewItem(builder, types.TotalSharesKeyPrefix, types.TotalSharesName, sdk.IntValue),
		Allowances: collections.NewMap(builder, types.AllowancesKeyPrefix, types.AllowancesName,
			collections.PairKeyCodec(collections.BytesKey, collections.BytesKey), sdk.IntValue),
		NonceStore:  collections.NewMap(builder, types.NoncesKeyPrefix, types.NoncesName, collections.BytesKey, collections.Uint64Value),
		Paused:      collections.NewItem(builder, types.PausedKeyPrefix, types.PausedName, collections.BoolValue),
		Initialized: collections.NewItem(builder, types.InitializedKeyPrefix, types.InitializedName, collections.BoolValue),
		Version:     collections.NewItem(builder, types.VersionKeyPrefix, types.VersionName, collections.Uint64Value),
	}

	schema, err := builder.Build()
	if err != nil {
		panic(err)
	}

	keeper.schema = schema
	return keeper
}

// Name returns the token name.
func (k Keeper) Name() string { return k.name }

// Symbol returns the token symbol.
func (k Keeper) Symbol() string { return k.symbol }

// Decimals returns the fixed decimal precision of the share token.
func (k Keeper) Decimals() uint8 { return types.Decimals }

// Asset returns the address of the wrapped rebasing token.
func (k Keeper) Asset() common.Address { return k.assetAddress }

// Address returns the vault's own address.
func (k Keeper) Address() common.Address { return k.address }

// GetShares returns the share balance of addr, zero if absent.
func (k Keeper) GetShares(ctx sdk.Context, addr common.Address) (math.Int, error) {
	shares, err := k.Shares.Get(ctx, addr.Bytes())
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt(), nil
		}
		return math.Int{}, err
	}
	return shares, nil
}

// GetTotalShares returns the total share supply, zero before initialization.
func (k Keeper) GetTotalShares(ctx sdk.Context) (math.Int, error) {
	total, err := k.TotalShares.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt(), nil
		}
		return math.Int{}, err
	}
	return total, nil
}

// GetAllowance returns the allowance owner has granted to spender, zero if
// absent.
func (k Keeper) GetAllowance(ctx sdk.Context, owner, spender common.Address) (math.Int, error) {
	allowance, err := k.Allowances.Get(ctx, collections.Join(owner.Bytes(), spender.Bytes()))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt(), nil
		}
		return math.Int{}, err
	}
	return allowance, nil
}

// GetNonce returns owner's permit nonce, zero until the first permit.
func (k Keeper) GetNonce(ctx sdk.Context, owner common.Address) (uint64, error) {
	nonce, err := k.NonceStore.Get(ctx, owner.Bytes())
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return nonce, nil
}

// getLocalPaused returns the local pause flag, false before initialization.
func (k Keeper) getLocalPaused(ctx sdk.Context) (bool, error) {
	paused, err := k.Paused.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return paused, nil
}

func (k Keeper) emitEvent(ctx sdk.Context, event sdk.Event) {
	ctx.EventManager().EmitEvent(event)
}

// getLogger returns a logger with wrapper token module context.
func (k Keeper) getLogger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}
