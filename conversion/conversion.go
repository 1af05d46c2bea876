// Package conversion holds the pure share/asset conversion math. Every
// rounding choice favors the vault: the accumulated sub-unit residue can only
// grow the vault's surplus, never create a shortfall.
package conversion

import (
	"fmt"

	"cosmossdk.io/math"
)

// Rounding selects the direction applied when a conversion does not divide
// evenly.
type Rounding int

const (
	// RoundDown truncates toward zero (floor for non-negative values).
	RoundDown Rounding = iota
	// RoundUp adds one whenever the division leaves a remainder.
	RoundUp
)

// SharesFromAssets returns the share amount corresponding to a given asset
// amount.
//
// Formula (integer):
//
//	if totalShares > 0 and totalAssets > 0:
//	    shares = assets * totalShares / totalAssets   (rounded per `rounding`)
//	else:
//	    shares = assets                               (1:1 bootstrap rate)
//
// Deposit previews round down (the depositor receives no more shares than
// earned); withdraw previews round up (the vault never burns fewer shares
// than the assets paid out are worth).
func SharesFromAssets(assets, totalAssets, totalShares math.Int, rounding Rounding) (math.Int, error) {
	if err := validate(assets, totalAssets, totalShares); err != nil {
		return math.Int{}, err
	}

	if !totalShares.IsPositive() || !totalAssets.IsPositive() {
		return assets, nil
	}

	return mulDiv(assets, totalShares, totalAssets, rounding), nil
}

// AssetsFromShares returns the asset amount corresponding to a given share
// amount.
//
// Formula (integer):
//
//	if totalShares > 0:
//	    assets = shares * totalAssets / totalShares   (rounded per `rounding`)
//	else:
//	    assets = shares                               (1:1 bootstrap rate)
//
// Redeem previews round down (the vault never pays out more than the shares
// are worth); mint previews round up (the depositor never underpays for the
// requested shares).
func AssetsFromShares(shares, totalShares, totalAssets math.Int, rounding Rounding) (math.Int, error) {
	if err := validate(shares, totalAssets, totalShares); err != nil {
		return math.Int{}, err
	}

	if !totalShares.IsPositive() {
		return shares, nil
	}

	return mulDiv(shares, totalAssets, totalShares, rounding), nil
}

// mulDiv computes a * b / d with the requested rounding. d must be positive.
func mulDiv(a, b, d math.Int, rounding Rounding) math.Int {
	num := a.Mul(b)
	quo := num.Quo(d)
	if rounding == RoundUp && !num.Mod(d).IsZero() {
		quo = quo.Add(math.OneInt())
	}
	return quo
}

func validate(amount, totalAssets, totalShares math.Int) error {
	if amount.IsNil() || totalAssets.IsNil() || totalShares.IsNil() {
		return fmt.Errorf("invalid input: nil values not allowed")
	}
	if amount.IsNegative() || totalAssets.IsNegative() || totalShares.IsNegative() {
		return fmt.Errorf("invalid input: negative values not allowed")
	}
	return nil
}
