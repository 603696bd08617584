package domain

import "time"

// RedemptionOutcome is what the command shell renders after a successful
// redeem: either a freshly provisioned slot or a credited ping counter.
type RedemptionOutcome struct {
	Key  Key
	Slot *SlotRecord // set for license kinds

	PingKind       PingKind // set for ping kinds
	PingsRemaining int
}

// KeyDelivery reports a directly issued key. Delivered is false when the
// direct message could not be sent; the key is still valid.
type KeyDelivery struct {
	Key       Key
	Delivered bool
}

// Termination reports an administrative slot termination. The channel is
// removed later, at DeleteAt, by the deletion sweeper.
type Termination struct {
	Record        SlotRecord
	DeleteAt      time.Time
	OwnerNotified bool
}

// PendingDeletion is a durable order to remove a channel once its grace
// period has elapsed. Persisting it keeps the 8 hour timer restart-safe.
type PendingDeletion struct {
	ID         string
	ChannelRef string
	UserID     string
	Reason     string
	DueAt      time.Time
}
