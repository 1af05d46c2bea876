package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Migrator handles in-place store migrations between storage schema
// versions.
type Migrator struct {
	keeper *Keeper
}

// NewMigrator returns a Migrator for the given keeper.
func NewMigrator(k *Keeper) Migrator {
	return Migrator{keeper: k}
}

// Migrate1to2 migrates the store from version 1 to version 2. The layout is
// unchanged; only the recorded version moves.
func (m Migrator) Migrate1to2(ctx sdk.Context) error {
	version, err := m.keeper.Version.Get(ctx)
	if err != nil {
		return err
	}
	if version != 1 {
		return fmt.Errorf("cannot migrate from version %d to 2", version)
	}

	if err := m.keeper.Version.Set(ctx, 2); err != nil {
		return err
	}
	m.keeper.getLogger(ctx).Info("store migrated", "from", 1, "to", 2)
	return nil
}
