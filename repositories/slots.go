//go:generate go run go.uber.org/mock/mockgen -source=slots.go -destination=../mocks/mock_slot_repository.go -package=mocks
package repositories

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"slot-lab/domain"
	"slot-lab/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

type ISlotRepository interface {
	// Get returns the slot record for a user, active or not,
	// or ErrSlotNotFound.
	Get(userID string) (domain.SlotRecord, error)

	// HasActive reports whether the user currently holds an active slot.
	HasActive(userID string) (bool, error)

	// FindByChannel maps a channel ref back to its owning record,
	// or ErrNotASlotChannel.
	FindByChannel(channelRef string) (domain.SlotRecord, error)

	// Create registers a fresh active slot. Fails with ErrSlotAlreadyActive
	// if the user's existing record is still active, and with
	// ErrChannelAlreadyBound if another active slot owns the channel.
	Create(record domain.SlotRecord) (domain.SlotRecord, error)

	// ConsumePing decrements the counter for the kind and returns the new
	// value. The counter never goes below zero: at zero the call fails with
	// ErrInsufficientPings.
	ConsumePing(userID string, kind domain.PingKind) (int, error)

	// Terminate deactivates the record and stamps the termination metadata.
	// The record itself is kept as history.
	Terminate(userID, reason, terminatedBy string) (domain.SlotRecord, error)
}

type SlotRepository struct {
	db  *badger.DB
	log *slog.Logger
	now func() time.Time
}

func NewSlotRepository(db *badger.DB, log *slog.Logger) *SlotRepository {
	return &SlotRepository{db: db, log: log, now: time.Now}
}

// diskSlot is the stored representation of a slot record.
type diskSlot struct {
	UserID       string     `json:"user_id"`
	Username     string     `json:"username,omitempty"`
	Active       bool       `json:"active"`
	KeyRedeemed  string     `json:"key_redeemed"`
	ChannelRef   string     `json:"slot_channel_id"`
	ChannelName  string     `json:"slot_channel_name,omitempty"`
	GuildID      string     `json:"guild_id,omitempty"`
	RedeemedAt   time.Time  `json:"redeemed_at"`
	DurationDays int        `json:"duration_days,omitempty"`
	Expiry       *time.Time `json:"expiry,omitempty"`

	EveryonePings int `json:"everyone_pings"`
	HerePings     int `json:"here_pings"`

	Terminated        bool       `json:"terminated,omitempty"`
	TerminationReason string     `json:"termination_reason,omitempty"`
	TerminatedBy      string     `json:"terminated_by,omitempty"`
	TerminatedAt      *time.Time `json:"terminated_at,omitempty"`
}

func toDiskSlot(s domain.SlotRecord) diskSlot {
	return diskSlot{
		UserID:            s.UserID,
		Username:          s.Username,
		Active:            s.Active,
		KeyRedeemed:       s.KeyCode,
		ChannelRef:        s.ChannelRef,
		ChannelName:       s.ChannelName,
		GuildID:           s.GuildID,
		RedeemedAt:        s.CreatedAt,
		DurationDays:      s.DurationDays,
		Expiry:            s.ExpiresAt,
		EveryonePings:     s.EveryonePings,
		HerePings:         s.HerePings,
		Terminated:        s.Terminated,
		TerminationReason: s.TerminationReason,
		TerminatedBy:      s.TerminatedBy,
		TerminatedAt:      s.TerminatedAt,
	}
}

func fromDiskSlot(d diskSlot) domain.SlotRecord {
	return domain.SlotRecord{
		UserID:            d.UserID,
		Username:          d.Username,
		Active:            d.Active,
		KeyCode:           d.KeyRedeemed,
		ChannelRef:        d.ChannelRef,
		ChannelName:       d.ChannelName,
		GuildID:           d.GuildID,
		CreatedAt:         d.RedeemedAt,
		DurationDays:      d.DurationDays,
		ExpiresAt:         d.Expiry,
		EveryonePings:     d.EveryonePings,
		HerePings:         d.HerePings,
		Terminated:        d.Terminated,
		TerminationReason: d.TerminationReason,
		TerminatedBy:      d.TerminatedBy,
		TerminatedAt:      d.TerminatedAt,
	}
}

func (r *SlotRepository) Get(userID string) (domain.SlotRecord, error) {
	var d diskSlot
	err := r.db.View(func(txn *badger.Txn) error {
		return getSlot(txn, userID, &d)
	})
	if err != nil {
		return domain.SlotRecord{}, err
	}
	return fromDiskSlot(d), nil
}

func (r *SlotRepository) HasActive(userID string) (bool, error) {
	rec, err := r.Get(userID)
	if stderrors.Is(err, errors.ErrSlotNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return rec.Active, nil
}

func (r *SlotRepository) FindByChannel(channelRef string) (domain.SlotRecord, error) {
	var d diskSlot
	err := r.db.View(func(txn *badger.Txn) error {
		userID, err := channelOwner(txn, channelRef)
		if err != nil {
			return err
		}
		return getSlot(txn, userID, &d)
	})
	if err != nil {
		return domain.SlotRecord{}, err
	}
	return fromDiskSlot(d), nil
}

func (r *SlotRepository) Create(record domain.SlotRecord) (domain.SlotRecord, error) {
	record.Active = true
	record.Terminated = false
	record.TerminationReason = ""
	record.TerminatedBy = ""
	record.TerminatedAt = nil
	if record.CreatedAt.IsZero() {
		record.CreatedAt = r.now().UTC()
	}

	err := update(r.db, func(txn *badger.Txn) error {
		return createSlot(txn, record)
	})
	if err != nil {
		return domain.SlotRecord{}, err
	}
	r.log.Info("Slot created", "user", record.UserID, "channel", record.ChannelRef)
	return record, nil
}

func (r *SlotRepository) ConsumePing(userID string, kind domain.PingKind) (int, error) {
	if !kind.Valid() {
		return 0, fmt.Errorf("unknown ping kind %q", kind)
	}
	var remaining int
	err := update(r.db, func(txn *badger.Txn) error {
		var d diskSlot
		if err := getSlot(txn, userID, &d); err != nil {
			return err
		}
		if !d.Active {
			return errors.ErrNoActiveSlot
		}
		counter := &d.EveryonePings
		if kind == domain.PingHere {
			counter = &d.HerePings
		}
		if *counter <= 0 {
			return errors.ErrInsufficientPings
		}
		*counter--
		remaining = *counter
		return setJSON(txn, slotPrefix+userID, d)
	})
	if stderrors.Is(err, errors.ErrSlotNotFound) {
		return 0, errors.ErrNoActiveSlot
	}
	if err != nil {
		return 0, err
	}
	return remaining, nil
}

func (r *SlotRepository) Terminate(userID, reason, terminatedBy string) (domain.SlotRecord, error) {
	var out diskSlot
	err := update(r.db, func(txn *badger.Txn) error {
		var d diskSlot
		if err := getSlot(txn, userID, &d); err != nil {
			return err
		}
		d.Active = false
		d.Terminated = true
		d.TerminationReason = reason
		d.TerminatedBy = terminatedBy
		d.TerminatedAt = lo.ToPtr(r.now().UTC())
		out = d
		return setJSON(txn, slotPrefix+userID, d)
	})
	if err != nil {
		return domain.SlotRecord{}, err
	}
	r.log.Info("Slot terminated", "user", userID, "by", terminatedBy, "reason", reason)
	return fromDiskSlot(out), nil
}

// --- transaction-level helpers shared with the redemption repository ---

func getSlot(txn *badger.Txn, userID string, out *diskSlot) error {
	err := getJSON(txn, slotPrefix+userID, out)
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return errors.ErrSlotNotFound
	}
	return err
}

// channelOwner resolves the channel index entry to a user ID.
func channelOwner(txn *badger.Txn, channelRef string) (string, error) {
	item, err := txn.Get([]byte(channelIndex + channelRef))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return "", errors.ErrNotASlotChannel
	}
	if err != nil {
		return "", err
	}
	var userID string
	err = item.Value(func(val []byte) error {
		userID = string(val)
		return nil
	})
	return userID, err
}

// createSlot enforces the one-active-slot-per-user and one-slot-per-channel
// invariants, then writes the record and its channel index entry. A record
// left behind by a past termination or expiry is overwritten; slot history
// lives on in the audit trail of redeemed keys.
func createSlot(txn *badger.Txn, record domain.SlotRecord) error {
	var existing diskSlot
	err := getSlot(txn, record.UserID, &existing)
	if err == nil && existing.Active {
		return errors.ErrSlotAlreadyActive
	}
	if err != nil && !stderrors.Is(err, errors.ErrSlotNotFound) {
		return err
	}
	hadPrior := err == nil

	owner, err := channelOwner(txn, record.ChannelRef)
	if err == nil && owner != record.UserID {
		return errors.ErrChannelAlreadyBound
	}
	if err != nil && !stderrors.Is(err, errors.ErrNotASlotChannel) {
		return err
	}

	// A replaced inactive record keeps no claim on its old channel: the
	// stale index entry would point staff commands on the old channel at
	// the fresh slot.
	if hadPrior && existing.ChannelRef != "" && existing.ChannelRef != record.ChannelRef {
		if err := txn.Delete([]byte(channelIndex + existing.ChannelRef)); err != nil {
			return err
		}
	}

	if err := setJSON(txn, slotPrefix+record.UserID, toDiskSlot(record)); err != nil {
		return err
	}
	return txn.Set([]byte(channelIndex+record.ChannelRef), []byte(record.UserID))
}

// creditPing increments a ping counter inside the caller's transaction and
// returns the new value. The slot must be active.
func creditPing(txn *badger.Txn, userID string, kind domain.PingKind) (int, error) {
	var d diskSlot
	err := getSlot(txn, userID, &d)
	if stderrors.Is(err, errors.ErrSlotNotFound) {
		return 0, errors.ErrNoActiveSlot
	}
	if err != nil {
		return 0, err
	}
	if !d.Active {
		return 0, errors.ErrNoActiveSlot
	}
	counter := &d.EveryonePings
	if kind == domain.PingHere {
		counter = &d.HerePings
	}
	*counter++
	if err := setJSON(txn, slotPrefix+userID, d); err != nil {
		return 0, err
	}
	return *counter, nil
}
