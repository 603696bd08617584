package services

import (
	"testing"
	"time"

	"slot-lab/domain"
	"slot-lab/errors"
	"slot-lab/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const primaryAdmin = "primary-1"

func newAdminServiceFixture(t *testing.T) (*mocks.MockIAdminRepository, IAdminService) {
	t.Helper()
	admins := mocks.NewMockIAdminRepository(gomock.NewController(t))
	return admins, NewAdminService(admins, primaryAdmin)
}

func TestAdminService_IsAuthorized(t *testing.T) {
	req := require.New(t)
	admins, service := newAdminServiceFixture(t)

	// The primary admin never touches the store
	ok, err := service.IsAuthorized(primaryAdmin)
	req.NoError(err)
	req.True(ok)

	admins.EXPECT().IsAdmin("u1").Return(true, nil)
	ok, err = service.IsAuthorized("u1")
	req.NoError(err)
	req.True(ok)

	admins.EXPECT().IsAdmin("u2").Return(false, nil)
	ok, err = service.IsAuthorized("u2")
	req.NoError(err)
	req.False(ok)
}

func TestAdminService_Add(t *testing.T) {
	req := require.New(t)
	admins, service := newAdminServiceFixture(t)

	entry := domain.AdminEntry{UserID: "u1", AddedBy: primaryAdmin, AddedAt: time.Now()}
	admins.EXPECT().Add("u1", primaryAdmin).Return(entry, nil)

	got, err := service.Add("u1", primaryAdmin)
	req.NoError(err)
	req.Equal(entry, got)

	t.Run("a regular admin cannot grant the capability", func(t *testing.T) {
		_, err := service.Add("u2", "u1")
		require.ErrorIs(t, err, errors.ErrNotPrimaryAdmin)
	})
}

func TestAdminService_List(t *testing.T) {
	req := require.New(t)
	admins, service := newAdminServiceFixture(t)

	entries := []domain.AdminEntry{
		{UserID: "u1", AddedBy: primaryAdmin, AddedAt: time.Now()},
		{UserID: "u2", AddedBy: primaryAdmin, AddedAt: time.Now()},
	}
	admins.EXPECT().List().Return(entries, nil)

	got, err := service.List()
	req.NoError(err)
	req.Equal(entries, got)
}

func TestAdminService_Remove(t *testing.T) {
	req := require.New(t)
	admins, service := newAdminServiceFixture(t)

	admins.EXPECT().Remove("u1").Return(nil)
	req.NoError(service.Remove("u1", primaryAdmin))

	t.Run("a regular admin cannot revoke the capability", func(t *testing.T) {
		require.ErrorIs(t, service.Remove("u2", "u1"), errors.ErrNotPrimaryAdmin)
	})
}
