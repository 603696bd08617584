// Package domain contains core concepts of the slot system.
// No storage, network, or UI logic should be added here.
package domain

import "time"

type KeyKind string

const (
	KindTimedLicense    KeyKind = "license"
	KindLifetimeLicense KeyKind = "lifetime_license"
	KindEveryonePing    KeyKind = "everyone_ping"
	KindHerePing        KeyKind = "here_ping"
)

// IsLicense reports whether redeeming this kind grants a slot channel.
func (k KeyKind) IsLicense() bool {
	return k == KindTimedLicense || k == KindLifetimeLicense
}

// IsPing reports whether redeeming this kind credits a ping counter.
func (k KeyKind) IsPing() bool {
	return k == KindEveryonePing || k == KindHerePing
}

// Ping maps a ping key kind to the counter it credits.
func (k KeyKind) Ping() (PingKind, bool) {
	switch k {
	case KindEveryonePing:
		return PingEveryone, true
	case KindHerePing:
		return PingHere, true
	}
	return "", false
}

func (k KeyKind) Valid() bool {
	return k.IsLicense() || k.IsPing()
}

// Key is a single-use credential. Once redeemed it is kept forever as an
// audit record, never deleted.
type Key struct {
	Code         string
	Kind         KeyKind
	DurationDays int // only meaningful for timed licenses
	ExpiresAt    *time.Time
	IssuedAt     time.Time
	IssuedBy     string
	SentTo       string // user the key was delivered to directly, if any
	Redeemed     bool
	RedeemedBy   *string
	RedeemedAt   *time.Time
}

// Expired reports whether the key can no longer be redeemed.
// Keys without an expiry (lifetime licenses, ping keys) never expire.
func (k Key) Expired(now time.Time) bool {
	return k.ExpiresAt != nil && !k.ExpiresAt.After(now)
}
