package domain

import (
	"fmt"
	"time"
)

type PingKind string

const (
	PingEveryone PingKind = "everyone"
	PingHere     PingKind = "here"
)

func (p PingKind) Valid() bool {
	return p == PingEveryone || p == PingHere
}

// SlotRecord tracks one user's slot entitlement. A record is created on the
// first successful license redemption and kept as history afterwards; it is
// deactivated, never deleted.
type SlotRecord struct {
	UserID       string
	Username     string
	Active       bool
	KeyCode      string // the license key that opened this slot
	ChannelRef   string
	ChannelName  string
	GuildID      string
	CreatedAt    time.Time
	DurationDays int
	ExpiresAt    *time.Time // nil means lifetime

	EveryonePings int
	HerePings     int

	Terminated        bool
	TerminationReason string
	TerminatedBy      string
	TerminatedAt      *time.Time
}

// Pings returns the remaining counter for the given ping kind.
func (s SlotRecord) Pings(kind PingKind) int {
	if kind == PingEveryone {
		return s.EveryonePings
	}
	return s.HerePings
}

// TimeRemaining renders the time left until expiry, or "Lifetime" /
// "Expired" for the boundary cases.
func (s SlotRecord) TimeRemaining(now time.Time) string {
	if s.ExpiresAt == nil {
		return "Lifetime"
	}
	delta := s.ExpiresAt.Sub(now)
	if delta <= 0 {
		return "Expired"
	}
	days := int(delta.Hours()) / 24
	hours := int(delta.Hours()) % 24
	minutes := int(delta.Minutes()) % 60
	return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
}

// AdminEntry grants privileged operations to a user, in addition to the
// single primary admin configured at startup.
type AdminEntry struct {
	UserID  string
	AddedBy string
	AddedAt time.Time
}
