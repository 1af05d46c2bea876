package roles

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
)

const (
	EventTypeRoleGranted = "role_granted"
	EventTypeRoleRevoked = "role_revoked"

	AttributeKeyRole    = "role"
	AttributeKeyAccount = "account"
	AttributeKeyGranter = "granter"
)

// NewEventRoleGranted records a role being assigned to an account.
func NewEventRoleGranted(role string, account, granter common.Address) sdk.Event {
	return sdk.NewEvent(EventTypeRoleGranted,
		sdk.NewAttribute(AttributeKeyRole, role),
		sdk.NewAttribute(AttributeKeyAccount, account.Hex()),
		sdk.NewAttribute(AttributeKeyGranter, granter.Hex()),
	)
}

// NewEventRoleRevoked records a role being removed from an account.
func NewEventRoleRevoked(role string, account, granter common.Address) sdk.Event {
	return sdk.NewEvent(EventTypeRoleRevoked,
		sdk.NewAttribute(AttributeKeyRole, role),
		sdk.NewAttribute(AttributeKeyAccount, account.Hex()),
		sdk.NewAttribute(AttributeKeyGranter, granter.Hex()),
	)
}
