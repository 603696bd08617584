package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	// Key store
	ErrKeyNotFound        = fmt.Errorf("key not found")
	ErrKeyAlreadyRedeemed = fmt.Errorf("key already redeemed")
	ErrKeyExpired         = fmt.Errorf("key expired")
	ErrDurationRequired   = fmt.Errorf("duration is required for timed license keys")

	// Slot ledger
	ErrSlotAlreadyActive   = fmt.Errorf("user already has an active slot")
	ErrNoActiveSlot        = fmt.Errorf("user has no active slot")
	ErrSlotNotFound        = fmt.Errorf("no slot record for user")
	ErrNotASlotChannel     = fmt.Errorf("channel is not a registered slot channel")
	ErrChannelAlreadyBound = fmt.Errorf("channel is already bound to an active slot")
	ErrInsufficientPings   = fmt.Errorf("no pings of this type remaining")
	ErrNotSlotOwner        = fmt.Errorf("channel does not belong to this user's slot")

	// Admin registry
	ErrAlreadyAdmin    = fmt.Errorf("user is already an admin")
	ErrNotAdmin        = fmt.Errorf("user is not an admin")
	ErrNotPrimaryAdmin = fmt.Errorf("only the primary admin may manage admins")

	// Redemption compensation
	ErrOrphanedChannel = fmt.Errorf("channel was provisioned but the slot record could not be persisted")
)
