package keeper

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/summitlabs/wtoken/permit"
	"github.com/summitlabs/wtoken/types"
)

// DomainSeparator returns the typed-data domain hash the vault signs under.
// It is fixed at construction from {name, version, chainID, vault address}.
func (k Keeper) DomainSeparator() common.Hash {
	return k.domainSeparator
}

// Nonces returns owner's current permit nonce.
func (k Keeper) Nonces(ctx sdk.Context, owner common.Address) (uint64, error) {
	return k.GetNonce(ctx, owner)
}

// Permit sets the allowance owner grants to spender from a signed typed-data
// message instead of a direct call. The signature binds owner, spender,
// value, owner's current nonce, and the deadline; the nonce is consumed on
// success so a permit authorizes exactly one state change.
func (k Keeper) Permit(
	ctx sdk.Context,
	owner, spender common.Address,
	value math.Int,
	deadline uint64,
	sig permit.Signature,
) error {
	if value.IsNil() || value.IsNegative() {
		return errorsmod.Wrap(types.ErrInvalidAmount, "permit value must be non-negative")
	}

	now := ctx.BlockTime().Unix()
	if now < 0 || uint64(now) > deadline {
		return errorsmod.Wrapf(types.ErrExpiredDeadline, "deadline %d, block time %d", deadline, now)
	}

	nonce, err := k.GetNonce(ctx, owner)
	if err != nil {
		return err
	}

	digest := permit.Digest(k.domainSeparator, permit.PermitStructHash(owner, spender, value, nonce, deadline))
	signer, err := k.recoverer.RecoverSigner(digest, sig)
	if err != nil {
		return errorsmod.Wrapf(types.ErrInvalidSignature, "owner %s, spender %s: %v", owner.Hex(), spender.Hex(), err)
	}
	if signer != owner {
		return errorsmod.Wrapf(types.ErrInvalidSignature, "owner %s, spender %s: recovered %s", owner.Hex(), spender.Hex(), signer.Hex())
	}

	if err := k.NonceStore.Set(ctx, owner.Bytes(), nonce+1); err != nil {
		return err
	}
	return k.setAllowance(ctx, owner, spender, value)
}
