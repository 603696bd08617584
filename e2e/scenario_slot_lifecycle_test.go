package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"slot-lab/domain"
	"slot-lab/errors"
	"slot-lab/services"
)

type testSlotLifecycleSuite struct {
	BaseSuite
}

func TestSlotLifecycleSuite(t *testing.T) {
	suite.Run(t, &testSlotLifecycleSuite{})
}

// The full journey of one slot holder: keys are minted and delivered, a
// license opens a channel, pings are credited and spent, staff terminates,
// and the sweeper eventually removes the channel.
func (s *testSlotLifecycleSuite) TestFullSlotLifecycle() {
	ctx := context.Background()
	const (
		holder = "user-1"
		guild  = "guild-1"
	)
	var (
		licenseCode string
		pingCode    string
		channelRef  string
	)

	s.Run("Step 0: primary admin passes the authorization gate", func() {
		s.Step("Authorization")
		ok, err := s.AdminService.IsAuthorized(s.Config.PrimaryAdmin)
		s.Require().NoError(err)
		s.Require().True(ok)

		ok, err = s.AdminService.IsAuthorized(holder)
		s.Require().NoError(err)
		s.Require().False(ok, "a regular user must not pass the gate")
	})

	s.Run("Step 1: mint a license and a ping credit", func() {
		s.Step("Key generation")
		licenses, err := s.KeyService.Generate(ctx, services.GenerateRequest{
			Kind:     domain.KindTimedLicense,
			Count:    1,
			Duration: 7,
			Issuer:   s.Config.PrimaryAdmin,
		})
		s.Require().NoError(err)
		licenseCode = licenses[0].Code
		s.Require().Contains(licenseCode, s.Config.KeyTag+"-")

		pings, err := s.KeyService.Generate(ctx, services.GenerateRequest{
			Kind:   domain.KindEveryonePing,
			Count:  1,
			Issuer: s.Config.PrimaryAdmin,
		})
		s.Require().NoError(err)
		pingCode = pings[0].Code
	})

	s.Run("Step 2: deliver a key by direct message", func() {
		s.Step("Direct delivery")
		delivery, err := s.KeyService.SendKeyDirect(ctx, services.SendKeyRequest{
			TargetUser: "user-2",
			Duration:   14,
			Issuer:     s.Config.PrimaryAdmin,
		})
		s.Require().NoError(err)
		s.Require().True(delivery.Delivered)

		dms := s.Adapter.DirectMessagesTo("user-2")
		s.Require().Len(dms, 1)
		s.Require().Contains(dms[0], delivery.Key.Code)
	})

	s.Run("Step 3: redeem the license and receive a channel", func() {
		s.Step("License redemption")
		outcome, err := s.KeyService.Redeem(ctx, services.RedeemRequest{
			Code:     licenseCode,
			UserID:   holder,
			Username: "Holder One",
			GuildID:  guild,
		})
		s.Require().NoError(err)
		s.Require().NotNil(outcome.Slot)
		channelRef = outcome.Slot.ChannelRef

		state, exists := s.Adapter.Channel(channelRef)
		s.Require().True(exists, "the adapter must hold the provisioned channel")
		s.Require().Equal("holder-one-slot", state.Name)
		s.Require().Equal(holder, state.OwnerID)

		_, err = s.KeyService.Redeem(ctx, services.RedeemRequest{Code: licenseCode, UserID: holder})
		s.Require().ErrorIs(err, errors.ErrKeyAlreadyRedeemed)
	})

	s.Run("Step 4: redeem a ping credit and spend it", func() {
		s.Step("Ping lifecycle")
		outcome, err := s.KeyService.Redeem(ctx, services.RedeemRequest{
			Code:   pingCode,
			UserID: holder,
		})
		s.Require().NoError(err)
		s.Require().Equal(domain.PingEveryone, outcome.PingKind)
		s.Require().Equal(1, outcome.PingsRemaining)

		_, err = s.SlotService.ConsumePing(ctx, holder, domain.PingEveryone, "chan-elsewhere")
		s.Require().ErrorIs(err, errors.ErrNotSlotOwner, "pings only fire from the holder's own channel")

		remaining, err := s.SlotService.ConsumePing(ctx, holder, domain.PingEveryone, channelRef)
		s.Require().NoError(err)
		s.Require().Zero(remaining)

		_, err = s.SlotService.ConsumePing(ctx, holder, domain.PingEveryone, channelRef)
		s.Require().ErrorIs(err, errors.ErrInsufficientPings)
	})

	s.Run("Step 5: stats reflect the slot state", func() {
		s.Step("Stats")
		record, err := s.SlotService.Stats(ctx, holder, channelRef)
		s.Require().NoError(err)
		s.Require().True(record.Active)
		s.Require().Zero(record.EveryonePings)
		s.Require().NotNil(record.ExpiresAt)
	})

	s.Run("Step 6: staff terminates the slot", func() {
		s.Step("Termination")
		result, err := s.SlotService.Terminate(ctx, channelRef, "rule violation", s.Config.PrimaryAdmin)
		s.Require().NoError(err)
		s.Require().True(result.Record.Terminated)
		s.Require().True(result.OwnerNotified)
		s.Require().WithinDuration(time.Now().Add(services.DeletionGracePeriod), result.DeleteAt, time.Minute)

		state, exists := s.Adapter.Channel(channelRef)
		s.Require().True(exists, "the channel survives the grace period")
		s.Require().True(state.Revoked, "but the owner is locked out immediately")

		dms := s.Adapter.DirectMessagesTo(holder)
		s.Require().NotEmpty(dms)
		s.Require().Contains(dms[len(dms)-1], "rule violation")
	})

	s.Run("Step 7: the sweeper removes the channel once due", func() {
		s.Step("Deferred deletion")
		// Nothing is due during the grace period
		s.Sweeper.Sweep(ctx)
		s.Require().Equal(1, s.Adapter.ChannelCount())

		// Simulate the grace period elapsing with an already-due order
		_, err := s.Deletions.Schedule(channelRef, holder, "rule violation", time.Now().Add(-time.Second))
		s.Require().NoError(err)
		s.Sweeper.Sweep(ctx)

		_, exists := s.Adapter.Channel(channelRef)
		s.Require().False(exists, "the channel is gone after the sweep")

		// A later firing of the original order is a harmless no-op
		due, err := s.Deletions.Due(time.Now())
		s.Require().NoError(err)
		s.Require().Empty(due)
	})
}

func (s *testSlotLifecycleSuite) TestAdminLifecycle() {
	s.Step("Admin registry")

	_, err := s.AdminService.Add("mod-1", "mod-2")
	s.Require().ErrorIs(err, errors.ErrNotPrimaryAdmin)

	entry, err := s.AdminService.Add("mod-1", s.Config.PrimaryAdmin)
	s.Require().NoError(err)
	s.Require().Equal("mod-1", entry.UserID)

	ok, err := s.AdminService.IsAuthorized("mod-1")
	s.Require().NoError(err)
	s.Require().True(ok)

	entries, err := s.AdminService.List()
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Require().Equal("mod-1", entries[0].UserID)
	s.Require().Equal(s.Config.PrimaryAdmin, entries[0].AddedBy)

	s.Require().NoError(s.AdminService.Remove("mod-1", s.Config.PrimaryAdmin))
	ok, err = s.AdminService.IsAuthorized("mod-1")
	s.Require().NoError(err)
	s.Require().False(ok)
}
