package types

import (
	"fmt"

	"cosmossdk.io/math"

	"github.com/ethereum/go-ethereum/common"
)

// GenesisState holds the full persisted state of a wrapper token instance.
// Addresses are 0x-prefixed hex. TotalShares is not stored; InitGenesis
// recomputes it as the sum of balances so the supply invariant holds by
// construction.
type GenesisState struct {
	Balances   []Balance   `json:"balances"`
	Allowances []Allowance `json:"allowances"`
	Nonces     []Nonce     `json:"nonces"`
	Paused     bool        `json:"paused"`
	Version    uint64      `json:"version"`
}

// Balance is a holder's share balance.
type Balance struct {
	Address string   `json:"address"`
	Amount  math.Int `json:"amount"`
}

// Allowance is an (owner, spender) approval.
type Allowance struct {
	Owner   string   `json:"owner"`
	Spender string   `json:"spender"`
	Amount  math.Int `json:"amount"`
}

// Nonce is a holder's permit nonce.
type Nonce struct {
	Address string `json:"address"`
	Nonce   uint64 `json:"nonce"`
}

// DefaultGenesisState returns the default genesis state
func DefaultGenesisState() *GenesisState {
	return &GenesisState{Version: 1}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	seenBalance := make(map[string]bool, len(gs.Balances))
	for i, b := range gs.Balances {
		if !common.IsHexAddress(b.Address) {
			return fmt.Errorf("invalid balance address at index %d: %q", i, b.Address)
		}
		if b.Amount.IsNil() || b.Amount.IsNegative() {
			return fmt.Errorf("invalid balance amount for %s", b.Address)
		}
		key := common.HexToAddress(b.Address).Hex()
		if seenBalance[key] {
			return fmt.Errorf("duplicate balance entry for %s", key)
		}
		seenBalance[key] = true
	}

	seenAllowance := make(map[string]bool, len(gs.Allowances))
	for i, a := range gs.Allowances {
		if !common.IsHexAddress(a.Owner) || !common.IsHexAddress(a.Spender) {
			return fmt.Errorf("invalid allowance addresses at index %d", i)
		}
		if a.Amount.IsNil() || a.Amount.IsNegative() {
			return fmt.Errorf("invalid allowance amount for owner %s spender %s", a.Owner, a.Spender)
		}
		key := common.HexToAddress(a.Owner).Hex() + "/" + common.HexToAddress(a.Spender).Hex()
		if seenAllowance[key] {
			return fmt.Errorf("duplicate allowance entry for %s", key)
		}
		seenAllowance[key] = true
	}

	seenNonce := make(map[string]bool, len(gs.Nonces))
	for i, n := range gs.Nonces {
		if !common.IsHexAddress(n.Address) {
			return fmt.Errorf("invalid nonce address at index %d: %q", i, n.Address)
		}
		key := common.HexToAddress(n.Address).Hex()
		if seenNonce[key] {
			return fmt.Errorf("duplicate nonce entry for %s", key)
		}
		seenNonce[key] = true
	}

	if gs.Version == 0 {
		return fmt.Errorf("version must be at least 1")
	}

	return nil
}
