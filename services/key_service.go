package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"slot-lab/contract"
	"slot-lab/domain"
	"slot-lab/errors"
	"slot-lab/repositories"
)

type IKeyService interface {
	Generate(ctx context.Context, req GenerateRequest) ([]domain.Key, error)
	SendKeyDirect(ctx context.Context, req SendKeyRequest) (domain.KeyDelivery, error)
	Redeem(ctx context.Context, req RedeemRequest) (domain.RedemptionOutcome, error)
}

// KeyService orchestrates key issuance and redemption. Authorization is the
// shell's job (one IsAuthorized check before any privileged call); this
// service assumes the issuer is already vetted.
type KeyService struct {
	keys       repositories.IKeyRepository
	redemption repositories.IRedemptionRepository
	provider   contract.ChannelProvider
	messenger  contract.Messenger
	log        *slog.Logger
}

func NewKeyService(
	keys repositories.IKeyRepository,
	redemption repositories.IRedemptionRepository,
	provider contract.ChannelProvider,
	messenger contract.Messenger,
	log *slog.Logger,
) IKeyService {
	return &KeyService{
		keys:       keys,
		redemption: redemption,
		provider:   provider,
		messenger:  messenger,
		log:        log,
	}
}

func (s *KeyService) Generate(_ context.Context, req GenerateRequest) ([]domain.Key, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid generate request: %w", err)
	}
	return s.keys.Generate(req.Kind, req.Count, req.Duration, req.Issuer)
}

func (s *KeyService) SendKeyDirect(ctx context.Context, req SendKeyRequest) (domain.KeyDelivery, error) {
	if err := validate.Struct(req); err != nil {
		return domain.KeyDelivery{}, fmt.Errorf("invalid send key request: %w", err)
	}

	key, err := s.keys.GenerateDirect(req.TargetUser, req.Duration, req.Issuer)
	if err != nil {
		return domain.KeyDelivery{}, err
	}

	message := fmt.Sprintf(
		"Your license key %s is valid for %d day(s), until %s. Redeem it to activate your slot.",
		key.Code, key.DurationDays, key.ExpiresAt.Format("2006-01-02 15:04 UTC"),
	)
	if err := s.messenger.SendDirect(ctx, req.TargetUser, message); err != nil {
		// The key exists and is valid either way; report the delivery
		// failure as a degraded success.
		s.log.Warn("Key issued but DM failed", "code", key.Code, "target", req.TargetUser, "error", err)
		return domain.KeyDelivery{Key: key, Delivered: false}, nil
	}
	return domain.KeyDelivery{Key: key, Delivered: true}, nil
}

func (s *KeyService) Redeem(ctx context.Context, req RedeemRequest) (domain.RedemptionOutcome, error) {
	if err := validate.Struct(req); err != nil {
		return domain.RedemptionOutcome{}, fmt.Errorf("invalid redeem request: %w", err)
	}

	key, err := s.keys.Get(req.Code)
	if err != nil {
		return domain.RedemptionOutcome{}, err
	}

	if key.Kind.IsPing() {
		redeemed, kind, remaining, err := s.redemption.RedeemForPing(req.Code, req.UserID)
		if err != nil {
			return domain.RedemptionOutcome{}, err
		}
		return domain.RedemptionOutcome{
			Key:            redeemed,
			PingKind:       kind,
			PingsRemaining: remaining,
		}, nil
	}

	return s.redeemLicense(ctx, key, req)
}

// redeemLicense provisions the slot channel before the key is marked
// redeemed. The external call happens outside any store transaction; the
// final bind re-validates everything atomically, and a failed bind tears
// the fresh channel back down so neither a burned key nor an orphaned
// channel is left behind.
func (s *KeyService) redeemLicense(ctx context.Context, key domain.Key, req RedeemRequest) (domain.RedemptionOutcome, error) {
	if _, err := s.redemption.CheckLicenseRedeemable(req.Code, req.UserID); err != nil {
		return domain.RedemptionOutcome{}, err
	}

	channelName := slotChannelName(req.Username, req.UserID)
	channelRef, err := s.provider.CreateSlotChannel(ctx, contract.ChannelSpec{
		Name:    channelName,
		GuildID: req.GuildID,
		OwnerID: req.UserID,
	})
	if err != nil {
		return domain.RedemptionOutcome{}, fmt.Errorf("channel provisioning failed: %w", err)
	}

	redeemed, record, err := s.redemption.BindSlot(req.Code, domain.SlotRecord{
		UserID:       req.UserID,
		Username:     req.Username,
		ChannelRef:   channelRef,
		ChannelName:  channelName,
		GuildID:      req.GuildID,
		DurationDays: key.DurationDays,
		ExpiresAt:    key.ExpiresAt,
	})
	if err != nil {
		// Compensate: a concurrent redeem won, or the ledger write failed.
		// Take the channel down again so it does not dangle unowned.
		if delErr := s.provider.DeleteChannel(ctx, channelRef); delErr != nil {
			s.log.Error("Compensation failed, channel orphaned", "channel", channelRef, "error", delErr)
			return domain.RedemptionOutcome{}, fmt.Errorf("%w: %v (bind: %v)", errors.ErrOrphanedChannel, delErr, err)
		}
		return domain.RedemptionOutcome{}, err
	}

	return domain.RedemptionOutcome{Key: redeemed, Slot: &record}, nil
}

// slotChannelName derives the channel name the way the platform shell
// displays it: lowercase owner name, spaces dashed, "-slot" suffix.
func slotChannelName(username, userID string) string {
	name := strings.ToLower(strings.TrimSpace(username))
	name = strings.ReplaceAll(name, " ", "-")
	if name == "" {
		name = userID
	}
	return name + "-slot"
}
