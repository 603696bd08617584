package repositories

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// Key layout in BadgerDB. One record per entity, JSON encoded, addressable
// by its natural key. "idx:" entries are secondary indexes, never records.
const (
	keyPrefix      = "key:"
	slotPrefix     = "slot:"
	adminPrefix    = "admin:"
	deletionPrefix = "del:"
	channelIndex   = "idx:channel:"
)

// update runs fn in a read-write transaction. Badger detects conflicting
// concurrent transactions (SSI); the loser is re-run against the committed
// state so it surfaces the right precondition error (AlreadyRedeemed,
// InsufficientPings, ...) instead of a raw conflict. Transactions here are
// short and touch few entries, so the retry loop terminates quickly.
func update(db *badger.DB, fn func(txn *badger.Txn) error) error {
	for {
		err := db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
}

func getJSON(txn *badger.Txn, key string, out any) error {
	item, err := txn.Get([]byte(key))
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, out)
	})
}

func setJSON(txn *badger.Txn, key string, in any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return txn.Set([]byte(key), data)
}

func unmarshalJSON(val []byte, out any) error {
	return json.Unmarshal(val, out)
}

func exists(txn *badger.Txn, key string) (bool, error) {
	_, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
