//go:generate go run go.uber.org/mock/mockgen -source=admins.go -destination=../mocks/mock_admin_repository.go -package=mocks
package repositories

import (
	stderrors "errors"
	"log/slog"
	"time"

	"slot-lab/domain"
	"slot-lab/errors"

	"github.com/dgraph-io/badger/v4"
)

type IAdminRepository interface {
	// Add grants the admin capability. Fails with ErrAlreadyAdmin.
	Add(userID, addedBy string) (domain.AdminEntry, error)

	// Remove revokes the admin capability. Fails with ErrNotAdmin.
	Remove(userID string) error

	// IsAdmin reports membership in the dynamic admin set. The primary
	// admin is handled above this repository; it is not stored here.
	IsAdmin(userID string) (bool, error)

	List() ([]domain.AdminEntry, error)
}

type AdminRepository struct {
	db  *badger.DB
	log *slog.Logger
	now func() time.Time
}

func NewAdminRepository(db *badger.DB, log *slog.Logger) *AdminRepository {
	return &AdminRepository{db: db, log: log, now: time.Now}
}

type diskAdmin struct {
	UserID  string    `json:"user_id"`
	AddedBy string    `json:"added_by"`
	AddedAt time.Time `json:"added_at"`
}

func (r *AdminRepository) Add(userID, addedBy string) (domain.AdminEntry, error) {
	entry := domain.AdminEntry{UserID: userID, AddedBy: addedBy, AddedAt: r.now().UTC()}
	err := update(r.db, func(txn *badger.Txn) error {
		taken, err := exists(txn, adminPrefix+userID)
		if err != nil {
			return err
		}
		if taken {
			return errors.ErrAlreadyAdmin
		}
		return setJSON(txn, adminPrefix+userID, diskAdmin{
			UserID:  entry.UserID,
			AddedBy: entry.AddedBy,
			AddedAt: entry.AddedAt,
		})
	})
	if err != nil {
		return domain.AdminEntry{}, err
	}
	r.log.Info("Admin added", "user", userID, "by", addedBy)
	return entry, nil
}

func (r *AdminRepository) Remove(userID string) error {
	err := update(r.db, func(txn *badger.Txn) error {
		taken, err := exists(txn, adminPrefix+userID)
		if err != nil {
			return err
		}
		if !taken {
			return errors.ErrNotAdmin
		}
		return txn.Delete([]byte(adminPrefix + userID))
	})
	if err != nil {
		return err
	}
	r.log.Info("Admin removed", "user", userID)
	return nil
}

func (r *AdminRepository) IsAdmin(userID string) (bool, error) {
	var found bool
	err := r.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(adminPrefix + userID))
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	return found, err
}

func (r *AdminRepository) List() ([]domain.AdminEntry, error) {
	var entries []domain.AdminEntry
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(adminPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var d diskAdmin
			err := it.Item().Value(func(val []byte) error {
				return unmarshalJSON(val, &d)
			})
			if err != nil {
				return err
			}
			entries = append(entries, domain.AdminEntry(d))
		}
		return nil
	})
	return entries, err
}
