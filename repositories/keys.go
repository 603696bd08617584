//go:generate go run go.uber.org/mock/mockgen -source=keys.go -destination=../mocks/mock_key_repository.go -package=mocks
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

// generateMaxRetries bounds the collision-retry loop. The code space is
// ~4.5 billion, so hitting this means the entropy source is broken.
const generateMaxRetries = 100

type IKeyRepository interface {
	// Generate mints count keys of the given kind in a single transaction:
	// either all of them become visible or none.
	Generate(kind domain.KeyKind, count, durationDays int, issuer string) ([]domain.Key, error)

	// GenerateDirect mints one timed license earmarked for a target user.
	GenerateDirect(target string, durationDays int, issuer string) (domain.Key, error)

	// Get returns the key for a code, or ErrKeyNotFound.
	Get(code string) (domain.Key, error)
}

type KeyRepository struct {
	db      *badger.DB
	log     *slog.Logger
	codeTag string // product tag prefixed to every generated code
	now     func() time.Time
}

func NewKeyRepository(db *badger.DB, log *slog.Logger, codeTag string) *KeyRepository {
	return &KeyRepository{db: db, log: log, codeTag: codeTag, now: time.Now}
}

// diskKey is the stored representation of a key record.
type diskKey struct {
	Code         string     `json:"code"`
	Type         string     `json:"type"`
	DurationDays int        `json:"duration_days,omitempty"`
	Expiry       *time.Time `json:"expiry,omitempty"`
	GeneratedAt  time.Time  `json:"generated_at"`
	GeneratedBy  string     `json:"generated_by"`
	SentTo       string     `json:"sent_to,omitempty"`
	Redeemed     bool       `json:"redeemed"`
	RedeemedBy   *string    `json:"redeemed_by,omitempty"`
	RedeemedAt   *time.Time `json:"redeemed_at,omitempty"`
}

func toDiskKey(k domain.Key) diskKey {
	return diskKey{
		Code:         k.Code,
		Type:         string(k.Kind),
		DurationDays: k.DurationDays,
		Expiry:       k.ExpiresAt,
		GeneratedAt:  k.IssuedAt,
		GeneratedBy:  k.IssuedBy,
		SentTo:       k.SentTo,
		Redeemed:     k.Redeemed,
		RedeemedBy:   k.RedeemedBy,
		RedeemedAt:   k.RedeemedAt,
	}
}

func fromDiskKey(d diskKey) domain.Key {
	return domain.Key{
		Code:         d.Code,
		Kind:         domain.KeyKind(d.Type),
		DurationDays: d.DurationDays,
		ExpiresAt:    d.Expiry,
		IssuedAt:     d.GeneratedAt,
		IssuedBy:     d.GeneratedBy,
		SentTo:       d.SentTo,
		Redeemed:     d.Redeemed,
		RedeemedBy:   d.RedeemedBy,
		RedeemedAt:   d.RedeemedAt,
	}
}

func (r *KeyRepository) Generate(kind domain.KeyKind, count, durationDays int, issuer string) ([]domain.Key, error) {
	return r.generate(kind, count, durationDays, issuer, "")
}

func (r *KeyRepository) GenerateDirect(target string, durationDays int, issuer string) (domain.Key, error) {
	keys, err := r.generate(domain.KindTimedLicense, 1, durationDays, issuer, target)
	if err != nil {
		return domain.Key{}, err
	}
	return keys[0], nil
}

func (r *KeyRepository) generate(kind domain.KeyKind, count, durationDays int, issuer, sentTo string) ([]domain.Key, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown key kind %q", kind)
	}
	if count < 1 {
		return nil, fmt.Errorf("count must be at least 1, got %d", count)
	}
	if kind == domain.KindTimedLicense && durationDays <= 0 {
		return nil, errors.ErrDurationRequired
	}
	if kind != domain.KindTimedLicense {
		durationDays = 0
	}

	now := r.now().UTC()
	var expiry *time.Time
	if kind == domain.KindTimedLicense {
		expiry = lo.ToPtr(now.AddDate(0, 0, durationDays))
	}

	var keys []domain.Key
	// Single transaction: codes are checked against every key ever issued
	// and the whole batch is written atomically.
	err := update(r.db, func(txn *badger.Txn) error {
		keys = keys[:0]
		minted := make(map[string]struct{}, count)
		for i := 0; i < count; i++ {
			code, err := r.nextCode(txn, minted)
			if err != nil {
				return err
			}
			minted[code] = struct{}{}
			key := domain.Key{
				Code:         code,
				Kind:         kind,
				DurationDays: durationDays,
				ExpiresAt:    expiry,
				IssuedAt:     now,
				IssuedBy:     issuer,
				SentTo:       sentTo,
			}
			if err := setJSON(txn, keyPrefix+code, toDiskKey(key)); err != nil {
				return err
			}
			keys = append(keys, key)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("generate %d %s key(s): %w", count, kind, err)
	}

	r.log.Info("Generated keys", "kind", kind, "count", count, "issuer", issuer)
	return keys, nil
}

// nextCode draws candidate codes until one collides with neither the store
// nor the batch being minted.
func (r *KeyRepository) nextCode(txn *badger.Txn, minted map[string]struct{}) (string, error) {
	for attempt := 0; attempt < generateMaxRetries; attempt++ {
		code, err := domain.GenerateCode(r.codeTag)
		if err != nil {
			return "", err
		}
		if _, dup := minted[code]; dup {
			continue
		}
		taken, err := exists(txn, keyPrefix+code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
		r.log.Warn("Key code collision, retrying", "code", code)
	}
	return "", fmt.Errorf("could not draw a unique key code after %d attempts", generateMaxRetries)
}

func (r *KeyRepository) Get(code string) (domain.Key, error) {
	var d diskKey
	err := r.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, keyPrefix+code, &d)
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Key{}, errors.ErrKeyNotFound
	}
	if err != nil {
		return domain.Key{}, err
	}
	return fromDiskKey(d), nil
}

// validateForRedemption applies the redemption checks in their fixed order:
// unknown code, already redeemed, expired.
func validateForRedemption(txn *badger.Txn, code string, now time.Time) (diskKey, error) {
	var d diskKey
	err := getJSON(txn, keyPrefix+code, &d)
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return diskKey{}, errors.ErrKeyNotFound
	}
	if err != nil {
		return diskKey{}, err
	}
	if d.Redeemed {
		return diskKey{}, errors.ErrKeyAlreadyRedeemed
	}
	if fromDiskKey(d).Expired(now) {
		return diskKey{}, errors.ErrKeyExpired
	}
	return d, nil
}

// markRedeemed flips the one-way redeemed flag inside the caller's
// transaction. The caller is responsible for prior validation.
func markRedeemed(txn *badger.Txn, d diskKey, userID string, at time.Time) (diskKey, error) {
	d.Redeemed = true
	d.RedeemedBy = lo.ToPtr(userID)
	d.RedeemedAt = lo.ToPtr(at)
	return d, setJSON(txn, keyPrefix+d.Code, d)
}
