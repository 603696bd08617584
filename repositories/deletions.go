//go:generate go run go.uber.org/mock/mockgen -source=deletions.go -destination=../mocks/mock_deletion_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"time"

	"slot-lab/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// IDeletionRepository stores pending channel deletions. Keys are ordered by
// due time (19-digit zero padding keeps lexicographic and chronological
// order aligned), so a sweep is a bounded prefix scan that stops at the
// first record that is not due yet. Records survive restarts; the 8 hour
// grace period never depends on a live goroutine.
type IDeletionRepository interface {
	// Schedule persists a deletion order and assigns it a unique ID.
	Schedule(channelRef, userID, reason string, dueAt time.Time) (domain.PendingDeletion, error)

	// Due returns every order whose due time has passed.
	Due(now time.Time) ([]domain.PendingDeletion, error)

	// Complete removes a finished order along with the channel index entry
	// of the deleted channel.
	Complete(d domain.PendingDeletion) error
}

type DeletionRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewDeletionRepository(db *badger.DB, log *slog.Logger) *DeletionRepository {
	return &DeletionRepository{db: db, log: log}
}

type diskDeletion struct {
	ID         string    `json:"id"`
	ChannelRef string    `json:"channel_ref"`
	UserID     string    `json:"user_id"`
	Reason     string    `json:"reason,omitempty"`
	DueAt      time.Time `json:"due_at"`
}

func deletionKey(dueAt time.Time, id string) string {
	return fmt.Sprintf("%s%019d:%s", deletionPrefix, dueAt.UnixNano(), id)
}

func (r *DeletionRepository) Schedule(channelRef, userID, reason string, dueAt time.Time) (domain.PendingDeletion, error) {
	d := domain.PendingDeletion{
		ID:         uuid.New().String(),
		ChannelRef: channelRef,
		UserID:     userID,
		Reason:     reason,
		DueAt:      dueAt.UTC(),
	}
	err := update(r.db, func(txn *badger.Txn) error {
		return setJSON(txn, deletionKey(d.DueAt, d.ID), diskDeletion(d))
	})
	if err != nil {
		return domain.PendingDeletion{}, err
	}
	r.log.Info("Channel deletion scheduled", "channel", channelRef, "due", d.DueAt)
	return d, nil
}

func (r *DeletionRepository) Due(now time.Time) ([]domain.PendingDeletion, error) {
	var due []domain.PendingDeletion
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(deletionPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var d diskDeletion
			err := it.Item().Value(func(val []byte) error {
				return unmarshalJSON(val, &d)
			})
			if err != nil {
				return err
			}
			if d.DueAt.After(now) {
				// Keys are time-ordered: nothing further is due either
				return nil
			}
			due = append(due, domain.PendingDeletion(d))
		}
		return nil
	})
	return due, err
}

func (r *DeletionRepository) Complete(d domain.PendingDeletion) error {
	return update(r.db, func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(deletionKey(d.DueAt, d.ID))); err != nil {
			return err
		}
		return txn.Delete([]byte(channelIndex + d.ChannelRef))
	})
}
