package repositories

import (
	"log/slog"
	"testing"
	"time"

	"slot-lab/domain"
	"slot-lab/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestKeyRepository_Generate(t *testing.T) {
	db := openTestDB(t)
	repo := NewKeyRepository(db, slog.Default(), "SLOT")

	t.Run("timed licenses carry duration and expiry", func(t *testing.T) {
		req := require.New(t)
		keys, err := repo.Generate(domain.KindTimedLicense, 3, 7, "admin-1")
		req.NoError(err)
		req.Len(keys, 3)
		for _, k := range keys {
			req.Equal(domain.KindTimedLicense, k.Kind)
			req.Equal(7, k.DurationDays)
			req.NotNil(k.ExpiresAt)
			req.WithinDuration(k.IssuedAt.AddDate(0, 0, 7), *k.ExpiresAt, time.Second)
			req.False(k.Redeemed)
			req.Equal("admin-1", k.IssuedBy)
		}
	})

	t.Run("ping keys never carry an expiry", func(t *testing.T) {
		req := require.New(t)
		keys, err := repo.Generate(domain.KindEveryonePing, 2, 0, "admin-1")
		req.NoError(err)
		req.Len(keys, 2)
		for _, k := range keys {
			req.Nil(k.ExpiresAt)
			req.Zero(k.DurationDays)
		}
	})

	t.Run("lifetime licenses ignore duration", func(t *testing.T) {
		req := require.New(t)
		keys, err := repo.Generate(domain.KindLifetimeLicense, 1, 30, "admin-1")
		req.NoError(err)
		req.Nil(keys[0].ExpiresAt)
		req.Zero(keys[0].DurationDays)
	})

	t.Run("timed license without duration is rejected", func(t *testing.T) {
		_, err := repo.Generate(domain.KindTimedLicense, 1, 0, "admin-1")
		require.ErrorIs(t, err, errors.ErrDurationRequired)
	})

	t.Run("count below one is rejected", func(t *testing.T) {
		_, err := repo.Generate(domain.KindHerePing, 0, 0, "admin-1")
		require.Error(t, err)
	})

	t.Run("unknown kind is rejected", func(t *testing.T) {
		_, err := repo.Generate(domain.KeyKind("bogus"), 1, 0, "admin-1")
		require.Error(t, err)
	})
}

func TestKeyRepository_CodesAreUnique(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repo := NewKeyRepository(db, slog.Default(), "SLOT")

	// Batched so no single transaction grows unbounded
	seen := make(map[string]struct{}, 10_000)
	for i := 0; i < 10; i++ {
		keys, err := repo.Generate(domain.KindHerePing, 1_000, 0, "admin-1")
		req.NoError(err)
		for _, k := range keys {
			_, dup := seen[k.Code]
			req.False(dup, "duplicate code %s", k.Code)
			seen[k.Code] = struct{}{}
		}
	}
	req.Len(seen, 10_000)
}

func TestKeyRepository_GenerateDirect(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repo := NewKeyRepository(db, slog.Default(), "SLOT")

	key, err := repo.GenerateDirect("user-42", 14, "admin-1")
	req.NoError(err)
	req.Equal(domain.KindTimedLicense, key.Kind)
	req.Equal("user-42", key.SentTo)
	req.Equal(14, key.DurationDays)
	req.NotNil(key.ExpiresAt)

	stored, err := repo.Get(key.Code)
	req.NoError(err)
	req.Equal(key.Code, stored.Code)
	req.Equal("user-42", stored.SentTo)
}

func TestKeyRepository_Get_NotFound(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repo := NewKeyRepository(db, slog.Default(), "SLOT")

	_, err := repo.Get("SLOT-XXXX0000")
	req.ErrorIs(err, errors.ErrKeyNotFound)
}
