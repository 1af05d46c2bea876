package keeper

import (
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/summitlabs/wtoken/types"
)

// Init performs the one-shot setup of a fresh vault: it seeds the storage
// schema version and the zero ledger, and grants admin to the given account.
// A second call fails regardless of caller.
func (k Keeper) Init(ctx sdk.Context, admin common.Address) error {
	initialized, err := k.Initialized.Get(ctx)
	if err != nil && !errors.Is(err, collections.ErrNotFound) {
		return err
	}
	if initialized {
		return errorsmod.Wrap(types.ErrAlreadyInitialized, "init may only run once")
	}

	if err := k.Initialized.Set(ctx, true); err != nil {
		return err
	}
	if err := k.Version.Set(ctx, 1); err != nil {
		return err
	}
	if err := k.Paused.Set(ctx, false); err != nil {
		return err
	}
	if err := k.TotalShares.Set(ctx, math.ZeroInt()); err != nil {
		return err
	}
	if err := k.AccessController.GrantInitialAdmin(ctx, admin); err != nil {
		return err
	}

	k.getLogger(ctx).Info("vault initialized", "admin", admin.Hex(), "asset", k.assetAddress.Hex())
	k.emitEvent(ctx, types.NewEventInitialized(admin))
	return nil
}

// Pause sets the vault's local pause flag. Requires the pause role.
func (k Keeper) Pause(ctx sdk.Context, caller common.Address) error {
	if err := k.AccessController.RequireRole(ctx, types.RolePause, caller); err != nil {
		return err
	}
	if err := k.Paused.Set(ctx, true); err != nil {
		return err
	}
	k.getLogger(ctx).Info("vault paused", "by", caller.Hex())
	k.emitEvent(ctx, types.NewEventPaused(caller))
	return nil
}

// Unpause clears the vault's local pause flag. Requires the pause role. The
// wrapped asset's own pause flag is outside the vault's control and may keep
// transfers blocked.
func (k Keeper) Unpause(ctx sdk.Context, caller common.Address) error {
	if err := k.AccessController.RequireRole(ctx, types.RolePause, caller); err != nil {
		return err
	}
	if err := k.Paused.Set(ctx, false); err != nil {
		return err
	}
	k.getLogger(ctx).Info("vault unpaused", "by", caller.Hex())
	k.emitEvent(ctx, types.NewEventUnpaused(caller))
	return nil
}

// AuthorizeUpgrade gates code replacement on the upgrade role. The state
// change itself is carried out by the migration machinery; this is the
// permission check and audit record.
func (k Keeper) AuthorizeUpgrade(ctx sdk.Context, caller common.Address) error {
	if err := k.AccessController.RequireRole(ctx, types.RoleUpgrade, caller); err != nil {
		return err
	}
	k.getLogger(ctx).Info("upgrade authorized", "by", caller.Hex())
	k.emitEvent(ctx, types.NewEventUpgradeAuthorized(caller))
	return nil
}
