//go:generate go run go.uber.org/mock/mockgen -source=redemption.go -destination=../mocks/mock_redemption_repository.go -package=mocks
package repositories

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"slot-lab/domain"
	"slot-lab/errors"

	"github.com/dgraph-io/badger/v4"
)

// IRedemptionRepository performs the redeem-and-grant step as one atomic
// unit, so a key is never left burned without its entitlement. License
// redemptions are split in two because channel provisioning is an external
// call that must not run inside a store transaction: the service validates,
// provisions the channel, then binds key and slot together atomically.
type IRedemptionRepository interface {
	// RedeemForPing marks the key redeemed and credits the matching ping
	// counter in a single transaction. Returns the redeemed key and the new
	// counter value.
	RedeemForPing(code, userID string) (domain.Key, domain.PingKind, int, error)

	// CheckLicenseRedeemable validates a license key and the user's slot
	// state without mutating anything. Used before provisioning a channel.
	CheckLicenseRedeemable(code, userID string) (domain.Key, error)

	// BindSlot marks the key redeemed and creates the slot record in a
	// single transaction. All redemption and ledger preconditions are
	// re-checked; if any fails, neither write happens.
	BindSlot(code string, record domain.SlotRecord) (domain.Key, domain.SlotRecord, error)
}

type RedemptionRepository struct {
	db  *badger.DB
	log *slog.Logger
	now func() time.Time
}

func NewRedemptionRepository(db *badger.DB, log *slog.Logger) *RedemptionRepository {
	return &RedemptionRepository{db: db, log: log, now: time.Now}
}

func (r *RedemptionRepository) RedeemForPing(code, userID string) (domain.Key, domain.PingKind, int, error) {
	var (
		redeemed  diskKey
		pingKind  domain.PingKind
		remaining int
	)
	now := r.now().UTC()
	err := update(r.db, func(txn *badger.Txn) error {
		d, err := validateForRedemption(txn, code, now)
		if err != nil {
			return err
		}
		kind, ok := domain.KeyKind(d.Type).Ping()
		if !ok {
			return fmt.Errorf("key %s is not a ping key (kind %q)", code, d.Type)
		}
		pingKind = kind

		// Credit first: if the user has no active slot this aborts the
		// transaction and the key stays unredeemed.
		remaining, err = creditPing(txn, userID, kind)
		if err != nil {
			return err
		}
		redeemed, err = markRedeemed(txn, d, userID, now)
		return err
	})
	if err != nil {
		return domain.Key{}, "", 0, err
	}
	r.log.Info("Ping key redeemed", "code", code, "user", userID, "kind", pingKind, "remaining", remaining)
	return fromDiskKey(redeemed), pingKind, remaining, nil
}

func (r *RedemptionRepository) CheckLicenseRedeemable(code, userID string) (domain.Key, error) {
	var d diskKey
	now := r.now().UTC()
	err := r.db.View(func(txn *badger.Txn) error {
		key, err := validateForRedemption(txn, code, now)
		if err != nil {
			return err
		}
		if !domain.KeyKind(key.Type).IsLicense() {
			return fmt.Errorf("key %s is not a license key (kind %q)", code, key.Type)
		}
		var existing diskSlot
		err = getSlot(txn, userID, &existing)
		if err == nil && existing.Active {
			return errors.ErrSlotAlreadyActive
		}
		if err != nil && !stderrors.Is(err, errors.ErrSlotNotFound) {
			return err
		}
		d = key
		return nil
	})
	if err != nil {
		return domain.Key{}, err
	}
	return fromDiskKey(d), nil
}

func (r *RedemptionRepository) BindSlot(code string, record domain.SlotRecord) (domain.Key, domain.SlotRecord, error) {
	var redeemed diskKey
	now := r.now().UTC()
	record.Active = true
	record.KeyCode = code
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}

	err := update(r.db, func(txn *badger.Txn) error {
		d, err := validateForRedemption(txn, code, now)
		if err != nil {
			return err
		}
		if err := createSlot(txn, record); err != nil {
			return err
		}
		redeemed, err = markRedeemed(txn, d, record.UserID, now)
		return err
	})
	if err != nil {
		return domain.Key{}, domain.SlotRecord{}, err
	}
	r.log.Info("License key redeemed", "code", code, "user", record.UserID, "channel", record.ChannelRef)
	return fromDiskKey(redeemed), record, nil
}
