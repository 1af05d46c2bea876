package keeper_test

import (
	"cosmossdk.io/math"

	"github.com/summitlabs/wtoken/types"
)

func (s *TestSuite) TestDepositMintsSharesAtParRate() {
	s.fund(alice, 1_000_000)

	shares, err := s.k.Deposit(s.ctx, alice, math.NewInt(500_000), alice)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(500_000), shares, "bootstrap deposits are 1:1")

	balance, err := s.k.BalanceOf(s.ctx, alice)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(500_000), balance)

	total, err := s.k.TotalAssets(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(500_000), total)
}

func (s *TestSuite) TestDepositToOtherReceiver() {
	s.fund(alice, 1_000)

	shares, err := s.k.Deposit(s.ctx, alice, math.NewInt(1_000), bob)
	s.Require().NoError(err)

	balance, err := s.k.BalanceOf(s.ctx, bob)
	s.Require().NoError(err)
	s.Require().Equal(shares, balance)

	balance, err = s.k.BalanceOf(s.ctx, alice)
	s.Require().NoError(err)
	s.Require().True(balance.IsZero())
}

func (s *TestSuite) TestDepositRedeemRoundTripWithoutYield() {
	s.fund(alice, 1_000_000)

	shares, err := s.k.Deposit(s.ctx, alice, math.NewInt(1_000_000), alice)
	s.Require().NoError(err)

	assets, err := s.k.Redeem(s.ctx, alice, shares, alice, alice)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(1_000_000), assets, "round trip without yield loses nothing")

	balance, err := s.asset.GetBalance(s.ctx, alice)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(1_000_000), balance)

	supply, err := s.k.TotalSupply(s.ctx)
	s.Require().NoError(err)
	s.Require().True(supply.IsZero())
}

func (s *TestSuite) TestYieldAccruesToShareValue() {
	// 1337 whole tokens at 18 decimals.
	deposited := math.NewIntWithDecimal(1_337, 18)
	s.asset.Mint(alice, deposited)
	s.asset.Approve(alice, vaultAddr, types.MaxAmount)

	shares, err := s.k.Deposit(s.ctx, alice, deposited, alice)
	s.Require().NoError(err)
	s.Require().Equal(deposited, shares)

	s.Require().NoError(s.asset.SetMultiplier(math.LegacyMustNewDecFromStr("1.0001")))

	// 1337 * 1.0001 = 1337.1337 whole tokens, exact in base units.
	expected, ok := math.NewIntFromString("1337133700000000000000")
	s.Require().True(ok)

	total, err := s.k.TotalAssets(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(expected, total)

	assets, err := s.k.Redeem(s.ctx, alice, shares, alice, alice)
	s.Require().NoError(err)
	s.Require().Equal(expected, assets, "full redemption returns the accrued value exactly")

	balance, err := s.asset.GetBalance(s.ctx, alice)
	s.Require().NoError(err)
	s.Require().Equal(expected, balance)
}

func (s *TestSuite) TestLargeYieldGrowsRedeemableAssets() {
	s.fund(alice, 1_000_000)

	shares, err := s.k.Deposit(s.ctx, alice, math.NewInt(1_000_000), alice)
	s.Require().NoError(err)

	s.Require().NoError(s.asset.SetMultiplier(math.LegacyMustNewDecFromStr("1.1")))

	redeemable, err := s.k.PreviewRedeem(s.ctx, shares)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(1_100_000), redeemable)
}

func (s *TestSuite) TestUnitDepositImmediateWithdrawLeavesNothing() {
	s.fund(alice, 1)

	_, err := s.k.Deposit(s.ctx, alice, math.NewInt(1), alice)
	s.Require().NoError(err)

	_, err = s.k.Withdraw(s.ctx, alice, math.NewInt(1), alice, alice)
	s.Require().NoError(err)

	total, err := s.k.TotalAssets(s.ctx)
	s.Require().NoError(err)
	s.Require().True(total.IsZero(), "no residue without yield")
}

func (s *TestSuite) TestDustStaysInVault() {
	s.fund(alice, 1)

	shares, err := s.k.Deposit(s.ctx, alice, math.NewInt(1), alice)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(1), shares)

	s.Require().NoError(s.asset.SetMultiplier(math.LegacyMustNewDecFromStr("1.1")))

	assets, err := s.k.Redeem(s.ctx, alice, shares, alice, alice)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(1), assets)

	supply, err := s.k.TotalSupply(s.ctx)
	s.Require().NoError(err)
	s.Require().True(supply.IsZero())

	// The sub-unit residue cannot leave the vault: the single credit's
	// fractional value remains behind after the full redemption.
	total, err := s.k.TotalAssets(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(1), total)
}

func (s *TestSuite) TestPreviewMintRoundsUp() {
	s.fund(alice, 10)
	_, err := s.k.Deposit(s.ctx, alice, math.NewInt(10), alice)
	s.Require().NoError(err)

	// 3 shares at 11 assets / 10 shares is 3.3 assets, rounded up to 4.
	s.Require().NoError(s.asset.SetMultiplier(math.LegacyMustNewDecFromStr("1.1")))
	cost, err := s.k.PreviewMint(s.ctx, math.NewInt(3))
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(4), cost)

	// The deposit preview of the same figure rounds the other way.
	shares, err := s.k.PreviewDeposit(s.ctx, math.NewInt(3))
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(2), shares)
}

func (s *TestSuite) TestMintChargesPreviewedAssets() {
	s.fund(alice, 100)
	_, err := s.k.Deposit(s.ctx, alice, math.NewInt(10), alice)
	s.Require().NoError(err)
	s.Require().NoError(s.asset.SetMultiplier(math.LegacyMustNewDecFromStr("1.1")))

	cost, err := s.k.PreviewMint(s.ctx, math.NewInt(3))
	s.Require().NoError(err)

	paid, err := s.k.Mint(s.ctx, alice, math.NewInt(3), alice)
	s.Require().NoError(err)
	s.Require().Equal(cost, paid)

	balance, err := s.k.BalanceOf(s.ctx, alice)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(13), balance)
}

func (s *TestSuite) TestWithdrawBurnsPreviewedShares() {
	s.fund(alice, 10)
	_, err := s.k.Deposit(s.ctx, alice, math.NewInt(10), alice)
	s.Require().NoError(err)
	s.Require().NoError(s.asset.SetMultiplier(math.LegacyMustNewDecFromStr("1.1")))

	// Withdrawing 5 assets at 11 assets / 10 shares costs ceil(50/11) = 5
	// shares.
	burned, err := s.k.Withdraw(s.ctx, alice, math.NewInt(5), alice, alice)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(5), burned)

	balance, err := s.k.BalanceOf(s.ctx, alice)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(5), balance)
}

func (s *TestSuite) TestWithdrawOnBehalfSpendsShareAllowance() {
	s.fund(alice, 1_000)
	_, err := s.k.Deposit(s.ctx, alice, math.NewInt(1_000), alice)
	s.Require().NoError(err)

	_, err = s.k.Withdraw(s.ctx, bob, math.NewInt(100), alice, carol)
	s.Require().ErrorIs(err, types.ErrInsufficientAllowance)

	s.Require().NoError(s.k.Approve(s.ctx, alice, bob, math.NewInt(100)))
	burned, err := s.k.Withdraw(s.ctx, bob, math.NewInt(100), alice, carol)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(100), burned)

	remaining, err := s.k.Allowance(s.ctx, alice, bob)
	s.Require().NoError(err)
	s.Require().True(remaining.IsZero())

	balance, err := s.asset.GetBalance(s.ctx, carol)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(100), balance)
}

func (s *TestSuite) TestRedeemOnBehalf() {
	s.fund(alice, 1_000)
	_, err := s.k.Deposit(s.ctx, alice, math.NewInt(1_000), alice)
	s.Require().NoError(err)
	s.Require().NoError(s.k.Approve(s.ctx, alice, bob, math.NewInt(250)))

	assets, err := s.k.Redeem(s.ctx, bob, math.NewInt(250), alice, bob)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(250), assets)

	_, err = s.k.Redeem(s.ctx, bob, math.NewInt(1), alice, bob)
	s.Require().ErrorIs(err, types.ErrInsufficientAllowance)
}

func (s *TestSuite) TestMaxBoundsReflectPause() {
	s.fund(alice, 1_000)
	_, err := s.k.Deposit(s.ctx, alice, math.NewInt(1_000), alice)
	s.Require().NoError(err)

	maxDeposit, err := s.k.MaxDeposit(s.ctx, alice)
	s.Require().NoError(err)
	s.Require().Equal(types.MaxAmount, maxDeposit)

	maxWithdraw, err := s.k.MaxWithdraw(s.ctx, alice)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(1_000), maxWithdraw)

	maxRedeem, err := s.k.MaxRedeem(s.ctx, alice)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(1_000), maxRedeem)

	s.Require().NoError(s.k.Pause(s.ctx, admin))

	for name, fn := range map[string]func() (math.Int, error){
		"MaxDeposit":  func() (math.Int, error) { return s.k.MaxDeposit(s.ctx, alice) },
		"MaxMint":     func() (math.Int, error) { return s.k.MaxMint(s.ctx, alice) },
		"MaxWithdraw": func() (math.Int, error) { return s.k.MaxWithdraw(s.ctx, alice) },
		"MaxRedeem":   func() (math.Int, error) { return s.k.MaxRedeem(s.ctx, alice) },
	} {
		max, err := fn()
		s.Require().NoError(err, name)
		s.Require().True(max.IsZero(), "%s must be zero while paused", name)
	}
}

func (s *TestSuite) TestDepositBlockedWhilePaused() {
	s.fund(alice, 1_000)
	s.Require().NoError(s.k.Pause(s.ctx, admin))

	_, err := s.k.Deposit(s.ctx, alice, math.NewInt(1), alice)
	s.Require().ErrorIs(err, types.ErrExceedsMaxDeposit)

	_, err = s.k.Mint(s.ctx, alice, math.NewInt(1), alice)
	s.Require().ErrorIs(err, types.ErrExceedsMaxMint)
}

func (s *TestSuite) TestWithdrawBlockedWhilePaused() {
	s.fund(alice, 1_000)
	_, err := s.k.Deposit(s.ctx, alice, math.NewInt(1_000), alice)
	s.Require().NoError(err)

	s.Require().NoError(s.k.Pause(s.ctx, admin))

	_, err = s.k.Withdraw(s.ctx, alice, math.NewInt(1), alice, alice)
	s.Require().ErrorIs(err, types.ErrExceedsMaxWithdraw)

	_, err = s.k.Redeem(s.ctx, alice, math.NewInt(1), alice, alice)
	s.Require().ErrorIs(err, types.ErrExceedsMaxRedeem)
}

func (s *TestSuite) TestAssetPausePropagates() {
	s.fund(alice, 1_000)
	s.asset.SetPaused(true)

	paused, err := s.k.IsPaused(s.ctx)
	s.Require().NoError(err)
	s.Require().True(paused)

	_, err = s.k.Deposit(s.ctx, alice, math.NewInt(1), alice)
	s.Require().ErrorIs(err, types.ErrExceedsMaxDeposit)

	s.asset.SetPaused(false)
	_, err = s.k.Deposit(s.ctx, alice, math.NewInt(1), alice)
	s.Require().NoError(err)
}

func (s *TestSuite) TestDepositBannedParties() {
	s.fund(alice, 1_000)

	s.asset.SetBanned(alice, true)
	_, err := s.k.Deposit(s.ctx, alice, math.NewInt(1), alice)
	s.Require().ErrorIs(err, types.ErrBlockedSender)
	s.asset.SetBanned(alice, false)

	s.asset.SetBanned(bob, true)
	_, err = s.k.Deposit(s.ctx, alice, math.NewInt(1), bob)
	s.Require().ErrorIs(err, types.ErrBlockedReceiver)
}

func (s *TestSuite) TestWithdrawBannedParties() {
	s.fund(alice, 1_000)
	_, err := s.k.Deposit(s.ctx, alice, math.NewInt(1_000), alice)
	s.Require().NoError(err)

	s.asset.SetBanned(alice, true)
	_, err = s.k.Withdraw(s.ctx, alice, math.NewInt(1), alice, alice)
	s.Require().ErrorIs(err, types.ErrBlockedSender)
	s.asset.SetBanned(alice, false)

	s.asset.SetBanned(bob, true)
	_, err = s.k.Redeem(s.ctx, alice, math.NewInt(1), alice, bob)
	s.Require().ErrorIs(err, types.ErrBlockedReceiver)

	// Lifting the ban restores access with state intact.
	s.asset.SetBanned(bob, false)
	_, err = s.k.Redeem(s.ctx, alice, math.NewInt(1), alice, bob)
	s.Require().NoError(err)
}

func (s *TestSuite) TestWithdrawOnBehalfByBannedCaller() {
	s.fund(alice, 1_000)
	_, err := s.k.Deposit(s.ctx, alice, math.NewInt(1_000), alice)
	s.Require().NoError(err)
	s.Require().NoError(s.k.Approve(s.ctx, alice, bob, math.NewInt(500)))

	s.asset.SetBanned(bob, true)

	_, err = s.k.Withdraw(s.ctx, bob, math.NewInt(100), alice, carol)
	s.Require().ErrorIs(err, types.ErrBlockedSender)
	s.Require().ErrorContains(err, bob.Hex())

	_, err = s.k.Redeem(s.ctx, bob, math.NewInt(100), alice, carol)
	s.Require().ErrorIs(err, types.ErrBlockedSender)

	// The failed attempts consumed no allowance.
	allowance, err := s.k.Allowance(s.ctx, alice, bob)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(500), allowance)

	s.asset.SetBanned(bob, false)
	_, err = s.k.Withdraw(s.ctx, bob, math.NewInt(100), alice, carol)
	s.Require().NoError(err)
}

func (s *TestSuite) TestDepositRejectsNegative() {
	s.fund(alice, 1_000)

	_, err := s.k.Deposit(s.ctx, alice, math.NewInt(-1), alice)
	s.Require().ErrorIs(err, types.ErrInvalidAmount)

	_, err = s.k.Withdraw(s.ctx, alice, math.NewInt(-1), alice, alice)
	s.Require().ErrorIs(err, types.ErrInvalidAmount)
}

func (s *TestSuite) TestDepositEmitsEvents() {
	s.fund(alice, 1_000)
	s.resetEvents()

	_, err := s.k.Deposit(s.ctx, alice, math.NewInt(1_000), bob)
	s.Require().NoError(err)

	event, found := s.findEvent(types.EventTypeDeposit)
	s.Require().True(found)
	s.Require().Equal(alice.Hex(), event.Attributes[0].Value)
	s.Require().Equal(bob.Hex(), event.Attributes[1].Value)
	s.Require().Equal("1000", event.Attributes[2].Value)
	s.Require().Equal("1000", event.Attributes[3].Value)
}

func (s *TestSuite) TestWithdrawEmitsEvents() {
	s.fund(alice, 1_000)
	_, err := s.k.Deposit(s.ctx, alice, math.NewInt(1_000), alice)
	s.Require().NoError(err)
	s.resetEvents()

	_, err = s.k.Withdraw(s.ctx, alice, math.NewInt(400), alice, bob)
	s.Require().NoError(err)

	event, found := s.findEvent(types.EventTypeWithdraw)
	s.Require().True(found)
	s.Require().Equal(alice.Hex(), event.Attributes[0].Value)
	s.Require().Equal(bob.Hex(), event.Attributes[1].Value)
	s.Require().Equal(alice.Hex(), event.Attributes[2].Value)
}

func (s *TestSuite) TestConvertRoundTripNeverGains() {
	s.fund(alice, 10)
	_, err := s.k.Deposit(s.ctx, alice, math.NewInt(10), alice)
	s.Require().NoError(err)
	s.Require().NoError(s.asset.SetMultiplier(math.LegacyMustNewDecFromStr("1.3")))

	for _, amount := range []int64{1, 2, 3, 5, 7, 10} {
		shares, err := s.k.ConvertToShares(s.ctx, math.NewInt(amount))
		s.Require().NoError(err)
		back, err := s.k.ConvertToAssets(s.ctx, shares)
		s.Require().NoError(err)
		s.Require().True(back.LTE(math.NewInt(amount)),
			"converting %d assets to shares and back yielded %s", amount, back)
	}
}
