package types

import (
	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
)

// RebasingAssetKeeper is the read/transfer surface the vault needs from the
// wrapped rebasing asset. The asset is the single source of truth for the
// vault's holdings and for pause/ban policy; the vault holds no local copy
// of either and queries them fresh on every gated call.
type RebasingAssetKeeper interface {
	// GetBalance returns the asset balance held by addr.
	GetBalance(ctx sdk.Context, addr common.Address) (math.Int, error)

	// SendAssets moves amount from one holder to another. The caller is
	// trusted to only move balances it controls.
	SendAssets(ctx sdk.Context, from, to common.Address, amount math.Int) error

	// SendAssetsWithAllowance moves amount from `from` to `to`, consuming the
	// allowance `from` previously granted to spender on the asset side.
	SendAssetsWithAllowance(ctx sdk.Context, spender, from, to common.Address, amount math.Int) error

	// IsPaused reports the asset's own pause flag.
	IsPaused(ctx sdk.Context) (bool, error)

	// IsBanned reports whether addr is in the asset's ban set.
	IsBanned(ctx sdk.Context, addr common.Address) (bool, error)
}

// AccessController is the role-check capability consumed by the vault. Role
// storage and grant bookkeeping live behind this interface; the vault only
// requires capability checks and the one-shot admin seeding performed during
// initialization.
type AccessController interface {
	// HasRole reports whether account holds role.
	HasRole(ctx sdk.Context, role string, account common.Address) (bool, error)

	// RequireRole returns ErrUnauthorized, carrying the account and role,
	// when account does not hold role.
	RequireRole(ctx sdk.Context, role string, account common.Address) error

	// GrantInitialAdmin assigns the admin role to the designated address.
	// Called exactly once, by the vault initializer.
	GrantInitialAdmin(ctx sdk.Context, account common.Address) error
}
