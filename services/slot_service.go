package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"slot-lab/contract"
	"slot-lab/domain"
	"slot-lab/errors"
	"slot-lab/repositories"
)

// DeletionGracePeriod is how long a terminated slot channel stays up,
// read-only, before the sweeper removes it.
const DeletionGracePeriod = 8 * time.Hour

type ISlotService interface {
	// ConsumePing spends one ping of the given kind. The call must
	// originate from the user's own slot channel.
	ConsumePing(ctx context.Context, userID string, kind domain.PingKind, channelRef string) (int, error)

	// Stats returns the user's slot record for display inside their own
	// slot channel.
	Stats(ctx context.Context, userID, channelRef string) (domain.SlotRecord, error)

	// Terminate revokes the owner's access, deactivates the record and
	// schedules the channel deletion. Returns immediately; the deletion
	// happens later, performed by the sweeper.
	Terminate(ctx context.Context, channelRef, reason, actingAdmin string) (domain.Termination, error)
}

type SlotService struct {
	slots     repositories.ISlotRepository
	deletions repositories.IDeletionRepository
	provider  contract.ChannelProvider
	messenger contract.Messenger
	log       *slog.Logger
	grace     time.Duration
	now       func() time.Time
}

func NewSlotService(
	slots repositories.ISlotRepository,
	deletions repositories.IDeletionRepository,
	provider contract.ChannelProvider,
	messenger contract.Messenger,
	log *slog.Logger,
) *SlotService {
	return &SlotService{
		slots:     slots,
		deletions: deletions,
		provider:  provider,
		messenger: messenger,
		log:       log,
		grace:     DeletionGracePeriod,
		now:       time.Now,
	}
}

func (s *SlotService) ConsumePing(_ context.Context, userID string, kind domain.PingKind, channelRef string) (int, error) {
	if err := s.requireOwnChannel(userID, channelRef); err != nil {
		return 0, err
	}
	return s.slots.ConsumePing(userID, kind)
}

func (s *SlotService) Stats(_ context.Context, userID, channelRef string) (domain.SlotRecord, error) {
	if err := s.requireOwnChannel(userID, channelRef); err != nil {
		return domain.SlotRecord{}, err
	}
	return s.slots.Get(userID)
}

// requireOwnChannel guards the slot-local commands: the record must be
// active and the command must run inside the owner's channel.
func (s *SlotService) requireOwnChannel(userID, channelRef string) error {
	record, err := s.slots.Get(userID)
	if err != nil {
		return errors.ErrNoActiveSlot
	}
	if !record.Active {
		return errors.ErrNoActiveSlot
	}
	if record.ChannelRef != channelRef {
		return errors.ErrNotSlotOwner
	}
	return nil
}

func (s *SlotService) Terminate(ctx context.Context, channelRef, reason, actingAdmin string) (domain.Termination, error) {
	record, err := s.slots.FindByChannel(channelRef)
	if err != nil {
		return domain.Termination{}, err
	}

	// Lock the owner out first. Nothing is persisted yet, so a failure
	// here leaves the slot untouched.
	if err := s.provider.RevokeAccess(ctx, channelRef, record.UserID); err != nil {
		return domain.Termination{}, fmt.Errorf("revoking channel access: %w", err)
	}

	terminated, err := s.slots.Terminate(record.UserID, reason, actingAdmin)
	if err != nil {
		return domain.Termination{}, err
	}

	deleteAt := s.now().UTC().Add(s.grace)
	if _, err := s.deletions.Schedule(channelRef, record.UserID, reason, deleteAt); err != nil {
		return domain.Termination{}, fmt.Errorf("scheduling channel deletion: %w", err)
	}

	notified := true
	message := fmt.Sprintf(
		"Your slot has been terminated by staff. Reason: %s. The channel will be removed at %s.",
		reason, deleteAt.Format("2006-01-02 15:04 UTC"),
	)
	if err := s.messenger.SendDirect(ctx, record.UserID, message); err != nil {
		s.log.Warn("Termination DM failed", "user", record.UserID, "error", err)
		notified = false
	}

	return domain.Termination{
		Record:        terminated,
		DeleteAt:      deleteAt,
		OwnerNotified: notified,
	}, nil
}
