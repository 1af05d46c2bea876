package types

import (
	"math/big"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
)

const (
	// ModuleName defines the module name
	ModuleName = "wtoken"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// Decimals is the fixed decimal precision of the share token.
	Decimals = 18

	// DomainVersion is the typed-data domain version used for permits.
	DomainVersion = "1"
)

// Role identifiers consumed through the AccessController capability.
const (
	// RoleAdmin manages role grants. It is assigned exactly once, during
	// initialization, to the designated admin address.
	RoleAdmin = "admin"
	// RolePause gates Pause and Unpause.
	RolePause = "pause"
	// RoleUpgrade gates AuthorizeUpgrade.
	RoleUpgrade = "upgrade"
)

var (
	// SharesKeyPrefix is the prefix for per-holder share balances.
	SharesKeyPrefix = collections.NewPrefix(0)
	// SharesName is a human-readable name for the shares collection.
	SharesName = "shares"
	// TotalSharesKeyPrefix is the prefix for the total share supply item.
	TotalSharesKeyPrefix = collections.NewPrefix(1)
	// TotalSharesName is a human-readable name for the total shares item.
	TotalSharesName = "total_shares"
	// AllowancesKeyPrefix is the prefix for (owner, spender) allowances.
	AllowancesKeyPrefix = collections.NewPrefix(2)
	// AllowancesName is a human-readable name for the allowances collection.
	AllowancesName = "allowances"
	// NoncesKeyPrefix is the prefix for per-holder permit nonces.
	NoncesKeyPrefix = collections.NewPrefix(3)
	// NoncesName is a human-readable name for the nonces collection.
	NoncesName = "nonces"
	// PausedKeyPrefix is the prefix for the local pause flag item.
	PausedKeyPrefix = collections.NewPrefix(4)
	// PausedName is a human-readable name for the paused item.
	PausedName = "paused"
	// InitializedKeyPrefix is the prefix for the one-shot initialization flag.
	InitializedKeyPrefix = collections.NewPrefix(5)
	// InitializedName is a human-readable name for the initialized item.
	InitializedName = "initialized"
	// VersionKeyPrefix is the prefix for the logic version item.
	VersionKeyPrefix = collections.NewPrefix(6)
	// VersionName is a human-readable name for the version item.
	VersionName = "version"

	// RolesKeyPrefix is the prefix for the role grant set (roles keeper).
	RolesKeyPrefix = collections.NewPrefix(16)
	// RolesName is a human-readable name for the roles collection.
	RolesName = "roles"
)

// MaxAmount is the largest representable share or asset amount (2^256 - 1).
// MaxDeposit and MaxMint report this bound while the vault is unpaused.
var MaxAmount = math.NewIntFromBigInt(maxUint256())

func maxUint256() *big.Int {
	max := new(big.Int).Lsh(big.NewInt(1), 256)
	return max.Sub(max, big.NewInt(1))
}
