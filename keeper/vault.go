package keeper

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/summitlabs/wtoken/conversion"
	"github.com/summitlabs/wtoken/types"
)

// TotalAssets returns the asset balance the vault currently holds. It is a
// live read against the wrapped asset, never a stored figure.
func (k Keeper) TotalAssets(ctx sdk.Context) (math.Int, error) {
	return k.AssetKeeper.GetBalance(ctx, k.address)
}

// IsPaused reports the combined pause state: the local flag ORed with the
// wrapped asset's own flag, both read fresh.
func (k Keeper) IsPaused(ctx sdk.Context) (bool, error) {
	local, err := k.getLocalPaused(ctx)
	if err != nil {
		return false, err
	}
	if local {
		return true, nil
	}
	return k.AssetKeeper.IsPaused(ctx)
}

// ConvertToShares quotes the shares corresponding to assets at the current
// rate, rounded down.
func (k Keeper) ConvertToShares(ctx sdk.Context, assets math.Int) (math.Int, error) {
	return k.convert(ctx, assets, conversion.RoundDown, conversion.SharesFromAssets)
}

// ConvertToAssets quotes the assets corresponding to shares at the current
// rate, rounded down.
func (k Keeper) ConvertToAssets(ctx sdk.Context, shares math.Int) (math.Int, error) {
	totalShares, err := k.GetTotalShares(ctx)
	if err != nil {
		return math.Int{}, err
	}
	totalAssets, err := k.TotalAssets(ctx)
	if err != nil {
		return math.Int{}, err
	}
	return conversion.AssetsFromShares(shares, totalShares, totalAssets, conversion.RoundDown)
}

// PreviewDeposit quotes the shares minted for a deposit of assets, rounded
// down.
func (k Keeper) PreviewDeposit(ctx sdk.Context, assets math.Int) (math.Int, error) {
	return k.ConvertToShares(ctx, assets)
}

// PreviewMint quotes the assets required to mint exactly shares, rounded up.
func (k Keeper) PreviewMint(ctx sdk.Context, shares math.Int) (math.Int, error) {
	totalShares, err := k.GetTotalShares(ctx)
	if err != nil {
		return math.Int{}, err
	}
	totalAssets, err := k.TotalAssets(ctx)
	if err != nil {
		return math.Int{}, err
	}
	return conversion.AssetsFromShares(shares, totalShares, totalAssets, conversion.RoundUp)
}

// PreviewWithdraw quotes the shares burned to withdraw exactly assets,
// rounded up.
func (k Keeper) PreviewWithdraw(ctx sdk.Context, assets math.Int) (math.Int, error) {
	return k.convert(ctx, assets, conversion.RoundUp, conversion.SharesFromAssets)
}

// PreviewRedeem quotes the assets returned for redeeming shares, rounded
// down.
func (k Keeper) PreviewRedeem(ctx sdk.Context, shares math.Int) (math.Int, error) {
	return k.ConvertToAssets(ctx, shares)
}

// MaxDeposit returns the deposit bound for receiver: unlimited unless the
// combined pause state is set, in which case zero.
func (k Keeper) MaxDeposit(ctx sdk.Context, _ common.Address) (math.Int, error) {
	paused, err := k.IsPaused(ctx)
	if err != nil {
		return math.Int{}, err
	}
	if paused {
		return math.ZeroInt(), nil
	}
	return types.MaxAmount, nil
}

// MaxMint returns the mint bound for receiver: unlimited unless paused.
func (k Keeper) MaxMint(ctx sdk.Context, receiver common.Address) (math.Int, error) {
	return k.MaxDeposit(ctx, receiver)
}

// MaxWithdraw returns the asset-equivalent of owner's share balance, zero
// while paused.
func (k Keeper) MaxWithdraw(ctx sdk.Context, owner common.Address) (math.Int, error) {
	paused, err := k.IsPaused(ctx)
	if err != nil {
		return math.Int{}, err
	}
	if paused {
		return math.ZeroInt(), nil
	}
	balance, err := k.GetShares(ctx, owner)
	if err != nil {
		return math.Int{}, err
	}
	return k.ConvertToAssets(ctx, balance)
}

// MaxRedeem returns owner's share balance, zero while paused.
func (k Keeper) MaxRedeem(ctx sdk.Context, owner common.Address) (math.Int, error) {
	paused, err := k.IsPaused(ctx)
	if err != nil {
		return math.Int{}, err
	}
	if paused {
		return math.ZeroInt(), nil
	}
	return k.GetShares(ctx, owner)
}

// Deposit pulls assets from the caller through the wrapped asset and credits
// the receiver with the corresponding shares. The share quote is computed
// against the totals before the pull, and the local mint happens after the
// pull so a nested re-entry cannot be double-counted.
func (k Keeper) Deposit(ctx sdk.Context, caller common.Address, assets math.Int, receiver common.Address) (math.Int, error) {
	if assets.IsNil() || assets.IsNegative() {
		return math.Int{}, errorsmod.Wrap(types.ErrInvalidAmount, "deposit amount must be non-negative")
	}

	max, err := k.MaxDeposit(ctx, receiver)
	if err != nil {
		return math.Int{}, err
	}
	if assets.GT(max) {
		return math.Int{}, errorsmod.Wrapf(types.ErrExceedsMaxDeposit, "assets %s, max %s", assets, max)
	}
	if err := k.checkBans(ctx, caller, receiver); err != nil {
		return math.Int{}, err
	}

	shares, err := k.PreviewDeposit(ctx, assets)
	if err != nil {
		return math.Int{}, err
	}

	if err := k.AssetKeeper.SendAssetsWithAllowance(ctx, k.address, caller, k.address, assets); err != nil {
		return math.Int{}, err
	}
	if err := k.mintShares(ctx, receiver, shares); err != nil {
		return math.Int{}, err
	}

	k.emitEvent(ctx, types.NewEventDeposit(caller, receiver, assets, shares))
	return shares, nil
}

// Mint credits the receiver with exactly shares, pulling the rounded-up
// asset cost from the caller.
func (k Keeper) Mint(ctx sdk.Context, caller common.Address, shares math.Int, receiver common.Address) (math.Int, error) {
	if shares.IsNil() || shares.IsNegative() {
		return math.Int{}, errorsmod.Wrap(types.ErrInvalidAmount, "mint amount must be non-negative")
	}

	max, err := k.MaxMint(ctx, receiver)
	if err != nil {
		return math.Int{}, err
	}
	if shares.GT(max) {
		return math.Int{}, errorsmod.Wrapf(types.ErrExceedsMaxMint, "shares %s, max %s", shares, max)
	}
	if err := k.checkBans(ctx, caller, receiver); err != nil {
		return math.Int{}, err
	}

	assets, err := k.PreviewMint(ctx, shares)
	if err != nil {
		return math.Int{}, err
	}

	if err := k.AssetKeeper.SendAssetsWithAllowance(ctx, k.address, caller, k.address, assets); err != nil {
		return math.Int{}, err
	}
	if err := k.mintShares(ctx, receiver, shares); err != nil {
		return math.Int{}, err
	}

	k.emitEvent(ctx, types.NewEventDeposit(caller, receiver, assets, shares))
	return assets, nil
}

// Withdraw burns the rounded-up share cost from owner and pushes exactly
// assets to the receiver. When the caller is not the owner, the caller's
// share allowance is consumed. The burn is committed before the outbound
// asset transfer.
func (k Keeper) Withdraw(ctx sdk.Context, caller common.Address, assets math.Int, owner, receiver common.Address) (math.Int, error) {
	if assets.IsNil() || assets.IsNegative() {
		return math.Int{}, errorsmod.Wrap(types.ErrInvalidAmount, "withdraw amount must be non-negative")
	}

	max, err := k.MaxWithdraw(ctx, owner)
	if err != nil {
		return math.Int{}, err
	}
	if assets.GT(max) {
		return math.Int{}, errorsmod.Wrapf(types.ErrExceedsMaxWithdraw, "assets %s, max %s", assets, max)
	}
	if err := k.checkBans(ctx, owner, receiver); err != nil {
		return math.Int{}, err
	}

	shares, err := k.PreviewWithdraw(ctx, assets)
	if err != nil {
		return math.Int{}, err
	}

	if caller != owner {
		if err := k.checkCallerBan(ctx, caller); err != nil {
			return math.Int{}, err
		}
		if err := k.spendAllowance(ctx, owner, caller, shares); err != nil {
			return math.Int{}, err
		}
	}
	if err := k.burnShares(ctx, owner, shares); err != nil {
		return math.Int{}, err
	}
	if err := k.AssetKeeper.SendAssets(ctx, k.address, receiver, assets); err != nil {
		return math.Int{}, err
	}

	k.emitEvent(ctx, types.NewEventWithdraw(caller, receiver, owner, assets, shares))
	return shares, nil
}

// Redeem burns exactly shares from owner and pushes the rounded-down asset
// value to the receiver.
func (k Keeper) Redeem(ctx sdk.Context, caller common.Address, shares math.Int, owner, receiver common.Address) (math.Int, error) {
	if shares.IsNil() || shares.IsNegative() {
		return math.Int{}, errorsmod.Wrap(types.ErrInvalidAmount, "redeem amount must be non-negative")
	}

	max, err := k.MaxRedeem(ctx, owner)
	if err != nil {
		return math.Int{}, err
	}
	if shares.GT(max) {
		return math.Int{}, errorsmod.Wrapf(types.ErrExceedsMaxRedeem, "shares %s, max %s", shares, max)
	}
	if err := k.checkBans(ctx, owner, receiver); err != nil {
		return math.Int{}, err
	}

	assets, err := k.PreviewRedeem(ctx, shares)
	if err != nil {
		return math.Int{}, err
	}

	if caller != owner {
		if err := k.checkCallerBan(ctx, caller); err != nil {
			return math.Int{}, err
		}
		if err := k.spendAllowance(ctx, owner, caller, shares); err != nil {
			return math.Int{}, err
		}
	}
	if err := k.burnShares(ctx, owner, shares); err != nil {
		return math.Int{}, err
	}
	if err := k.AssetKeeper.SendAssets(ctx, k.address, receiver, assets); err != nil {
		return math.Int{}, err
	}

	k.emitEvent(ctx, types.NewEventWithdraw(caller, receiver, owner, assets, shares))
	return assets, nil
}

// convert is the shared totals plumbing for asset→share quotes.
func (k Keeper) convert(
	ctx sdk.Context,
	amount math.Int,
	rounding conversion.Rounding,
	fn func(amount, totalAssets, totalShares math.Int, rounding conversion.Rounding) (math.Int, error),
) (math.Int, error) {
	totalAssets, err := k.TotalAssets(ctx)
	if err != nil {
		return math.Int{}, err
	}
	totalShares, err := k.GetTotalShares(ctx)
	if err != nil {
		return math.Int{}, err
	}
	return fn(amount, totalAssets, totalShares, rounding)
}
