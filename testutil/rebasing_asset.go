// Package testutil provides in-memory doubles for the external capabilities
// the vault consumes in tests.
package testutil

import (
	"fmt"

	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/summitlabs/wtoken/types"
)

const secondsPerYear = 31_536_000

// RebasingAsset is an in-memory rebasing token. Holdings are tracked as
// internal credits; a holder's balance is floor(credits × multiplier), and
// both legs of a transfer convert the amount to credits with the same floor,
// so transfers conserve credits. Raising the multiplier grows every balance
// without touching credits.
type RebasingAsset struct {
	credits    map[common.Address]math.Int
	allowances map[common.Address]map[common.Address]math.Int
	banned     map[common.Address]bool
	paused     bool
	multiplier math.LegacyDec
}

var _ types.RebasingAssetKeeper = (*RebasingAsset)(nil)

// NewRebasingAsset returns an asset with multiplier 1 and no holdings.
func NewRebasingAsset() *RebasingAsset {
	return &RebasingAsset{
		credits:    make(map[common.Address]math.Int),
		allowances: make(map[common.Address]map[common.Address]math.Int),
		banned:     make(map[common.Address]bool),
		multiplier: math.LegacyOneDec(),
	}
}

// GetBalance returns floor(credits × multiplier) for addr.
func (a *RebasingAsset) GetBalance(_ sdk.Context, addr common.Address) (math.Int, error) {
	return a.multiplier.MulInt(a.creditsOf(addr)).TruncateInt(), nil
}

// SendAssets moves amount between holders, converting to credits at the
// current multiplier.
func (a *RebasingAsset) SendAssets(_ sdk.Context, from, to common.Address, amount math.Int) error {
	return a.send(from, to, amount)
}

// SendAssetsWithAllowance moves amount from `from` to `to`, consuming the
// allowance granted to spender.
func (a *RebasingAsset) SendAssetsWithAllowance(_ sdk.Context, spender, from, to common.Address, amount math.Int) error {
	allowed := a.allowanceOf(from, spender)
	if allowed.LT(amount) {
		return fmt.Errorf("asset allowance of %s for spender %s is less than %s", allowed, spender.Hex(), amount)
	}
	if err := a.send(from, to, amount); err != nil {
		return err
	}
	a.setAllowance(from, spender, allowed.Sub(amount))
	return nil
}

// IsPaused reports the asset's own pause flag.
func (a *RebasingAsset) IsPaused(_ sdk.Context) (bool, error) {
	return a.paused, nil
}

// IsBanned reports ban-set membership.
func (a *RebasingAsset) IsBanned(_ sdk.Context, addr common.Address) (bool, error) {
	return a.banned[addr], nil
}

// Mint credits addr with amount at the current multiplier.
func (a *RebasingAsset) Mint(addr common.Address, amount math.Int) {
	a.credits[addr] = a.creditsOf(addr).Add(a.creditsFor(amount))
}

// Approve sets the asset-side allowance owner grants to spender.
func (a *RebasingAsset) Approve(owner, spender common.Address, amount math.Int) {
	a.setAllowance(owner, spender, amount)
}

// SetPaused flips the asset's own pause flag.
func (a *RebasingAsset) SetPaused(paused bool) {
	a.paused = paused
}

// SetBanned adds or removes addr from the ban set.
func (a *RebasingAsset) SetBanned(addr common.Address, banned bool) {
	a.banned[addr] = banned
}

// Multiplier returns the current value-accrual factor.
func (a *RebasingAsset) Multiplier() math.LegacyDec {
	return a.multiplier
}

// SetMultiplier replaces the value-accrual factor. The factor must be
// positive.
func (a *RebasingAsset) SetMultiplier(m math.LegacyDec) error {
	if !m.IsPositive() {
		return fmt.Errorf("multiplier must be positive, got %s", m)
	}
	a.multiplier = m
	return nil
}

// AccrueYield grows the multiplier by e^(rate × seconds/year), using a
// deterministic Maclaurin expansion of e^x.
func (a *RebasingAsset) AccrueYield(rate string, seconds int64) error {
	r, err := math.LegacyNewDecFromStr(rate)
	if err != nil {
		return err
	}
	t := math.LegacyNewDec(seconds).QuoInt64(secondsPerYear)
	a.multiplier = a.multiplier.Mul(expDec(r.Mul(t), 18))
	return nil
}

func (a *RebasingAsset) send(from, to common.Address, amount math.Int) error {
	if amount.IsNegative() {
		return fmt.Errorf("negative transfer amount %s", amount)
	}
	if a.paused {
		return fmt.Errorf("asset transfers are paused")
	}
	if a.banned[from] {
		return fmt.Errorf("sender %s is banned", from.Hex())
	}
	if a.banned[to] {
		return fmt.Errorf("receiver %s is banned", to.Hex())
	}

	balance := a.multiplier.MulInt(a.creditsOf(from)).TruncateInt()
	if balance.LT(amount) {
		return fmt.Errorf("balance %s is less than transfer amount %s", balance, amount)
	}

	credits := a.creditsFor(amount)
	a.credits[from] = a.creditsOf(from).Sub(credits)
	a.credits[to] = a.creditsOf(to).Add(credits)
	return nil
}

// creditsFor converts an asset amount to credits: floor(amount / multiplier).
func (a *RebasingAsset) creditsFor(amount math.Int) math.Int {
	return math.LegacyNewDecFromInt(amount).QuoTruncate(a.multiplier).TruncateInt()
}

func (a *RebasingAsset) creditsOf(addr common.Address) math.Int {
	if c, ok := a.credits[addr]; ok {
		return c
	}
	return math.ZeroInt()
}

func (a *RebasingAsset) allowanceOf(owner, spender common.Address) math.Int {
	if m, ok := a.allowances[owner]; ok {
		if v, ok := m[spender]; ok {
			return v
		}
	}
	return math.ZeroInt()
}

func (a *RebasingAsset) setAllowance(owner, spender common.Address, amount math.Int) {
	if _, ok := a.allowances[owner]; !ok {
		a.allowances[owner] = make(map[common.Address]math.Int)
	}
	a.allowances[owner][spender] = amount
}

// expDec computes e^x by Maclaurin series up to `terms` terms. Deterministic
// for a fixed term count.
func expDec(x math.LegacyDec, terms int) math.LegacyDec {
	result := math.LegacyOneDec()
	power := math.LegacyOneDec()
	factorial := math.LegacyOneDec()

	for i := 1; i <= terms; i++ {
		power = power.Mul(x)
		factorial = factorial.MulInt64(int64(i))
		result = result.Add(power.Quo(factorial))
	}

	return result
}
