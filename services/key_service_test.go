package services

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"slot-lab/contract"
	"slot-lab/domain"
	"slot-lab/errors"
	"slot-lab/mocks"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type keyServiceFixture struct {
	keys       *mocks.MockIKeyRepository
	redemption *mocks.MockIRedemptionRepository
	provider   *mocks.MockChannelProvider
	messenger  *mocks.MockMessenger
	service    IKeyService
}

func newKeyServiceFixture(t *testing.T) keyServiceFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := keyServiceFixture{
		keys:       mocks.NewMockIKeyRepository(ctrl),
		redemption: mocks.NewMockIRedemptionRepository(ctrl),
		provider:   mocks.NewMockChannelProvider(ctrl),
		messenger:  mocks.NewMockMessenger(ctrl),
	}
	f.service = NewKeyService(f.keys, f.redemption, f.provider, f.messenger, slog.Default())
	return f
}

func TestKeyService_Generate(t *testing.T) {
	req := require.New(t)
	f := newKeyServiceFixture(t)

	want := []domain.Key{{Code: "SLOT-ABCD1234", Kind: domain.KindTimedLicense}}
	f.keys.EXPECT().Generate(domain.KindTimedLicense, 5, 7, "admin-1").Return(want, nil)

	keys, err := f.service.Generate(context.Background(), GenerateRequest{
		Kind:     domain.KindTimedLicense,
		Count:    5,
		Duration: 7,
		Issuer:   "admin-1",
	})
	req.NoError(err)
	req.Equal(want, keys)
}

func TestKeyService_Generate_InvalidRequest(t *testing.T) {
	f := newKeyServiceFixture(t)

	// No repository call may happen for a request that fails validation
	cases := map[string]GenerateRequest{
		"missing kind":   {Count: 1, Issuer: "admin-1"},
		"zero count":     {Kind: domain.KindHerePing, Issuer: "admin-1"},
		"missing issuer": {Kind: domain.KindHerePing, Count: 1},
	}
	for name, request := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.service.Generate(context.Background(), request)
			require.Error(t, err)
		})
	}
}

func TestKeyService_SendKeyDirect(t *testing.T) {
	req := require.New(t)
	f := newKeyServiceFixture(t)

	key := domain.Key{
		Code:         "SLOT-ABCD1234",
		Kind:         domain.KindTimedLicense,
		DurationDays: 14,
		ExpiresAt:    lo.ToPtr(time.Now().AddDate(0, 0, 14)),
	}
	f.keys.EXPECT().GenerateDirect("user-42", 14, "admin-1").Return(key, nil)
	f.messenger.EXPECT().SendDirect(gomock.Any(), "user-42", gomock.Any()).Return(nil)

	delivery, err := f.service.SendKeyDirect(context.Background(), SendKeyRequest{
		TargetUser: "user-42",
		Duration:   14,
		Issuer:     "admin-1",
	})
	req.NoError(err)
	req.True(delivery.Delivered)
	req.Equal(key.Code, delivery.Key.Code)
}

func TestKeyService_SendKeyDirect_DMFailureIsDegradedSuccess(t *testing.T) {
	req := require.New(t)
	f := newKeyServiceFixture(t)

	key := domain.Key{
		Code:         "SLOT-ABCD1234",
		Kind:         domain.KindTimedLicense,
		DurationDays: 14,
		ExpiresAt:    lo.ToPtr(time.Now().AddDate(0, 0, 14)),
	}
	f.keys.EXPECT().GenerateDirect("user-42", 14, "admin-1").Return(key, nil)
	f.messenger.EXPECT().SendDirect(gomock.Any(), "user-42", gomock.Any()).
		Return(fmt.Errorf("DMs closed"))

	delivery, err := f.service.SendKeyDirect(context.Background(), SendKeyRequest{
		TargetUser: "user-42",
		Duration:   14,
		Issuer:     "admin-1",
	})
	req.NoError(err, "the key is minted either way")
	req.False(delivery.Delivered)
	req.Equal(key.Code, delivery.Key.Code)
}

func TestKeyService_Redeem_PingKey(t *testing.T) {
	req := require.New(t)
	f := newKeyServiceFixture(t)

	key := domain.Key{Code: "SLOT-ABCD1234", Kind: domain.KindEveryonePing}
	redeemed := key
	redeemed.Redeemed = true

	f.keys.EXPECT().Get(key.Code).Return(key, nil)
	f.redemption.EXPECT().RedeemForPing(key.Code, "u1").
		Return(redeemed, domain.PingEveryone, 3, nil)

	outcome, err := f.service.Redeem(context.Background(), RedeemRequest{
		Code:   key.Code,
		UserID: "u1",
	})
	req.NoError(err)
	req.Nil(outcome.Slot)
	req.Equal(domain.PingEveryone, outcome.PingKind)
	req.Equal(3, outcome.PingsRemaining)
}

func TestKeyService_Redeem_License(t *testing.T) {
	req := require.New(t)
	f := newKeyServiceFixture(t)

	expiry := lo.ToPtr(time.Now().AddDate(0, 0, 7))
	key := domain.Key{
		Code:         "SLOT-ABCD1234",
		Kind:         domain.KindTimedLicense,
		DurationDays: 7,
		ExpiresAt:    expiry,
	}
	redeemed := key
	redeemed.Redeemed = true
	bound := domain.SlotRecord{UserID: "u1", ChannelRef: "chan-1", Active: true}

	f.keys.EXPECT().Get(key.Code).Return(key, nil)
	f.redemption.EXPECT().CheckLicenseRedeemable(key.Code, "u1").Return(key, nil)
	f.provider.EXPECT().
		CreateSlotChannel(gomock.Any(), contract.ChannelSpec{
			Name:    "big-dog-slot",
			GuildID: "guild-1",
			OwnerID: "u1",
		}).
		Return("chan-1", nil)
	f.redemption.EXPECT().
		BindSlot(key.Code, domain.SlotRecord{
			UserID:       "u1",
			Username:     "Big Dog",
			ChannelRef:   "chan-1",
			ChannelName:  "big-dog-slot",
			GuildID:      "guild-1",
			DurationDays: 7,
			ExpiresAt:    expiry,
		}).
		Return(redeemed, bound, nil)

	outcome, err := f.service.Redeem(context.Background(), RedeemRequest{
		Code:     key.Code,
		UserID:   "u1",
		Username: "Big Dog",
		GuildID:  "guild-1",
	})
	req.NoError(err)
	req.NotNil(outcome.Slot)
	req.Equal("chan-1", outcome.Slot.ChannelRef)
	req.True(outcome.Key.Redeemed)
}

func TestKeyService_Redeem_NoChannelWhenPrecheckFails(t *testing.T) {
	req := require.New(t)
	f := newKeyServiceFixture(t)

	key := domain.Key{Code: "SLOT-ABCD1234", Kind: domain.KindLifetimeLicense}
	f.keys.EXPECT().Get(key.Code).Return(key, nil)
	f.redemption.EXPECT().CheckLicenseRedeemable(key.Code, "u1").
		Return(domain.Key{}, errors.ErrSlotAlreadyActive)
	// CreateSlotChannel must never be reached

	_, err := f.service.Redeem(context.Background(), RedeemRequest{Code: key.Code, UserID: "u1"})
	req.ErrorIs(err, errors.ErrSlotAlreadyActive)
}

func TestKeyService_Redeem_FailedBindTearsChannelDown(t *testing.T) {
	req := require.New(t)
	f := newKeyServiceFixture(t)

	key := domain.Key{Code: "SLOT-ABCD1234", Kind: domain.KindLifetimeLicense}
	f.keys.EXPECT().Get(key.Code).Return(key, nil)
	f.redemption.EXPECT().CheckLicenseRedeemable(key.Code, "u1").Return(key, nil)
	f.provider.EXPECT().CreateSlotChannel(gomock.Any(), gomock.Any()).Return("chan-1", nil)
	f.redemption.EXPECT().BindSlot(key.Code, gomock.Any()).
		Return(domain.Key{}, domain.SlotRecord{}, errors.ErrKeyAlreadyRedeemed)
	f.provider.EXPECT().DeleteChannel(gomock.Any(), "chan-1").Return(nil)

	_, err := f.service.Redeem(context.Background(), RedeemRequest{Code: key.Code, UserID: "u1"})
	req.ErrorIs(err, errors.ErrKeyAlreadyRedeemed)
}

func TestKeyService_Redeem_FailedCompensationIsFlagged(t *testing.T) {
	req := require.New(t)
	f := newKeyServiceFixture(t)

	key := domain.Key{Code: "SLOT-ABCD1234", Kind: domain.KindLifetimeLicense}
	f.keys.EXPECT().Get(key.Code).Return(key, nil)
	f.redemption.EXPECT().CheckLicenseRedeemable(key.Code, "u1").Return(key, nil)
	f.provider.EXPECT().CreateSlotChannel(gomock.Any(), gomock.Any()).Return("chan-1", nil)
	f.redemption.EXPECT().BindSlot(key.Code, gomock.Any()).
		Return(domain.Key{}, domain.SlotRecord{}, fmt.Errorf("store offline"))
	f.provider.EXPECT().DeleteChannel(gomock.Any(), "chan-1").
		Return(fmt.Errorf("adapter unreachable"))

	_, err := f.service.Redeem(context.Background(), RedeemRequest{Code: key.Code, UserID: "u1"})
	req.ErrorIs(err, errors.ErrOrphanedChannel)
}

func TestSlotChannelName(t *testing.T) {
	req := require.New(t)

	req.Equal("big-dog-slot", slotChannelName("Big Dog", "u1"))
	req.Equal("mika-slot", slotChannelName("  Mika ", "u1"))
	req.Equal("u1-slot", slotChannelName("", "u1"))
}
