package types

import "cosmossdk.io/errors"

var (
	ErrInvalidRequest = errors.Register(ModuleName, 2, "invalid request")

	// ErrTransfersPaused is returned for any share movement attempted while
	// the combined pause flag (local OR wrapped asset) is set.
	ErrTransfersPaused = errors.Register(ModuleName, 3, "transfers paused")

	// ErrBlockedSender is returned when the sending party is in the wrapped
	// asset's ban set.
	ErrBlockedSender = errors.Register(ModuleName, 4, "blocked sender")

	// ErrBlockedReceiver is returned when the receiving party is in the
	// wrapped asset's ban set.
	ErrBlockedReceiver = errors.Register(ModuleName, 5, "blocked receiver")

	// ErrInvalidSignature is returned when a permit signature is malformed
	// or was not produced by the stated owner.
	ErrInvalidSignature = errors.Register(ModuleName, 6, "invalid signature")

	// ErrExpiredDeadline is returned when a permit is redeemed after its
	// deadline has passed.
	ErrExpiredDeadline = errors.Register(ModuleName, 7, "expired deadline")

	// ErrUnauthorized is returned when an account lacks the role required
	// for an administrative operation.
	ErrUnauthorized = errors.Register(ModuleName, 8, "unauthorized")

	// ErrAlreadyInitialized is returned on any initialization attempt after
	// the first; the condition is permanent for the instance.
	ErrAlreadyInitialized = errors.Register(ModuleName, 9, "already initialized")

	ErrInsufficientShares    = errors.Register(ModuleName, 10, "insufficient shares")
	ErrInsufficientAllowance = errors.Register(ModuleName, 11, "insufficient allowance")
	ErrExceedsMaxDeposit     = errors.Register(ModuleName, 12, "deposit exceeds max")
	ErrExceedsMaxMint        = errors.Register(ModuleName, 13, "mint exceeds max")
	ErrExceedsMaxWithdraw    = errors.Register(ModuleName, 14, "withdraw exceeds max")
	ErrExceedsMaxRedeem      = errors.Register(ModuleName, 15, "redeem exceeds max")
	ErrInvalidAmount         = errors.Register(ModuleName, 16, "invalid amount")
)
