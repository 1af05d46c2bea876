package types

import (
	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
)

const (
	EventTypeDeposit           = "deposit"
	EventTypeWithdraw          = "withdraw"
	EventTypeTransfer          = "transfer"
	EventTypeApproval          = "approval"
	EventTypePaused            = "paused"
	EventTypeUnpaused          = "unpaused"
	EventTypeInitialized       = "initialized"
	EventTypeUpgradeAuthorized = "upgrade_authorized"

	AttributeKeyCaller   = "caller"
	AttributeKeyOwner    = "owner"
	AttributeKeyReceiver = "receiver"
	AttributeKeyAssets   = "assets"
	AttributeKeyShares   = "shares"
	AttributeKeyFrom     = "from"
	AttributeKeyTo       = "to"
	AttributeKeyAmount   = "amount"
	AttributeKeySpender  = "spender"
	AttributeKeyValue    = "value"
	AttributeKeyAccount  = "account"
	AttributeKeyAdmin    = "admin"
)

// NewEventDeposit records assets pulled in and shares credited.
func NewEventDeposit(caller, receiver common.Address, assets, shares math.Int) sdk.Event {
	return sdk.NewEvent(EventTypeDeposit,
		sdk.NewAttribute(AttributeKeyCaller, caller.Hex()),
		sdk.NewAttribute(AttributeKeyReceiver, receiver.Hex()),
		sdk.NewAttribute(AttributeKeyAssets, assets.String()),
		sdk.NewAttribute(AttributeKeyShares, shares.String()),
	)
}

// NewEventWithdraw records shares burned and assets pushed out.
func NewEventWithdraw(caller, receiver, owner common.Address, assets, shares math.Int) sdk.Event {
	return sdk.NewEvent(EventTypeWithdraw,
		sdk.NewAttribute(AttributeKeyCaller, caller.Hex()),
		sdk.NewAttribute(AttributeKeyReceiver, receiver.Hex()),
		sdk.NewAttribute(AttributeKeyOwner, owner.Hex()),
		sdk.NewAttribute(AttributeKeyAssets, assets.String()),
		sdk.NewAttribute(AttributeKeyShares, shares.String()),
	)
}

// NewEventTransfer records a share movement between holders.
func NewEventTransfer(from, to common.Address, amount math.Int) sdk.Event {
	return sdk.NewEvent(EventTypeTransfer,
		sdk.NewAttribute(AttributeKeyFrom, from.Hex()),
		sdk.NewAttribute(AttributeKeyTo, to.Hex()),
		sdk.NewAttribute(AttributeKeyAmount, amount.String()),
	)
}

// NewEventApproval records an allowance being set, directly or via permit.
func NewEventApproval(owner, spender common.Address, value math.Int) sdk.Event {
	return sdk.NewEvent(EventTypeApproval,
		sdk.NewAttribute(AttributeKeyOwner, owner.Hex()),
		sdk.NewAttribute(AttributeKeySpender, spender.Hex()),
		sdk.NewAttribute(AttributeKeyValue, value.String()),
	)
}

// NewEventPaused records the local pause flag being set.
func NewEventPaused(account common.Address) sdk.Event {
	return sdk.NewEvent(EventTypePaused,
		sdk.NewAttribute(AttributeKeyAccount, account.Hex()),
	)
}

// NewEventUnpaused records the local pause flag being cleared.
func NewEventUnpaused(account common.Address) sdk.Event {
	return sdk.NewEvent(EventTypeUnpaused,
		sdk.NewAttribute(AttributeKeyAccount, account.Hex()),
	)
}

// NewEventInitialized records the one-shot initialization and its admin.
func NewEventInitialized(admin common.Address) sdk.Event {
	return sdk.NewEvent(EventTypeInitialized,
		sdk.NewAttribute(AttributeKeyAdmin, admin.Hex()),
	)
}

// NewEventUpgradeAuthorized records a successful upgrade authorization.
func NewEventUpgradeAuthorized(account common.Address) sdk.Event {
	return sdk.NewEvent(EventTypeUpgradeAuthorized,
		sdk.NewAttribute(AttributeKeyAccount, account.Hex()),
	)
}
