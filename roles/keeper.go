// Package roles provides the role store consumed by the vault through the
// AccessController capability. The vault core never touches role storage
// directly; it only asks whether an account holds a role.
package roles

import (
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/summitlabs/wtoken/types"
)

// Grant is a single role assignment, used for genesis import/export.
type Grant struct {
	Role    string `json:"role"`
	Address string `json:"address"`
}

// Keeper stores role grants as a (role, account) key set.
type Keeper struct {
	schema collections.Schema

	Grants collections.KeySet[collections.Pair[string, []byte]]
}

// NewKeeper builds a role keeper over the given store service.
func NewKeeper(storeService store.KVStoreService) *Keeper {
	builder := collections.NewSchemaBuilder(storeService)

	keeper := &Keeper{
		Grants: collections.NewKeySet(builder, types.RolesKeyPrefix, types.RolesName,
			collections.PairKeyCodec(collections.StringKey, collections.BytesKey)),
	}

	schema, err := builder.Build()
	if err != nil {
		panic(err)
	}

	keeper.schema = schema
	return keeper
}

var _ types.AccessController = (*Keeper)(nil)

// HasRole reports whether account holds role.
func (k *Keeper) HasRole(ctx sdk.Context, role string, account common.Address) (bool, error) {
	return k.Grants.Has(ctx, collections.Join(role, account.Bytes()))
}

// RequireRole returns ErrUnauthorized, carrying the account and role, when
// account does not hold role.
func (k *Keeper) RequireRole(ctx sdk.Context, role string, account common.Address) error {
	has, err := k.HasRole(ctx, role, account)
	if err != nil {
		return err
	}
	if !has {
		return errorsmod.Wrapf(types.ErrUnauthorized, "account %s is missing role %q", account.Hex(), role)
	}
	return nil
}

// GrantInitialAdmin assigns the admin role without a granter check. Only the
// vault initializer calls this, and only once; the exactly-once guarantee is
// enforced by the vault's initialization flag.
func (k *Keeper) GrantInitialAdmin(ctx sdk.Context, account common.Address) error {
	return k.Grants.Set(ctx, collections.Join(types.RoleAdmin, account.Bytes()))
}

// GrantRole assigns role to account. The granter must hold the admin role.
func (k *Keeper) GrantRole(ctx sdk.Context, granter common.Address, role string, account common.Address) error {
	if err := validRole(role); err != nil {
		return err
	}
	if err := k.RequireRole(ctx, types.RoleAdmin, granter); err != nil {
		return err
	}
	if err := k.Grants.Set(ctx, collections.Join(role, account.Bytes())); err != nil {
		return err
	}
	k.emitEvent(ctx, NewEventRoleGranted(role, account, granter))
	return nil
}

// RevokeRole removes role from account. The granter must hold the admin role.
func (k *Keeper) RevokeRole(ctx sdk.Context, granter common.Address, role string, account common.Address) error {
	if err := validRole(role); err != nil {
		return err
	}
	if err := k.RequireRole(ctx, types.RoleAdmin, granter); err != nil {
		return err
	}
	if err := k.Grants.Remove(ctx, collections.Join(role, account.Bytes())); err != nil {
		return err
	}
	k.emitEvent(ctx, NewEventRoleRevoked(role, account, granter))
	return nil
}

// InitGenesis loads role grants from genesis.
func (k *Keeper) InitGenesis(ctx sdk.Context, grants []Grant) error {
	for _, g := range grants {
		if err := validRole(g.Role); err != nil {
			return err
		}
		if !common.IsHexAddress(g.Address) {
			return fmt.Errorf("invalid grant address %q", g.Address)
		}
		if err := k.Grants.Set(ctx, collections.Join(g.Role, common.HexToAddress(g.Address).Bytes())); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis returns all role grants.
func (k *Keeper) ExportGenesis(ctx sdk.Context) ([]Grant, error) {
	grants := []Grant{}
	err := k.Grants.Walk(ctx, nil, func(key collections.Pair[string, []byte]) (stop bool, err error) {
		grants = append(grants, Grant{
			Role:    key.K1(),
			Address: common.BytesToAddress(key.K2()).Hex(),
		})
		return false, nil
	})
	return grants, err
}

func (k *Keeper) emitEvent(ctx sdk.Context, event sdk.Event) {
	ctx.EventManager().EmitEvent(event)
}

func validRole(role string) error {
	switch role {
	case types.RoleAdmin, types.RolePause, types.RoleUpgrade:
		return nil
	}
	return fmt.Errorf("unknown role %q", role)
}
