// Command badger_inspect dumps the slot store for operators: keys, slot
// records, admins or pending deletions, rendered as a table. Read-only;
// safe to run while the daemon holds the database lock.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
)

func main() {
	_ = godotenv.Load()

	dbPath := flag.String("db", os.Getenv("BADGER_FILEPATH"), "Path to badger DB")
	prefix := flag.String("prefix", "key:", "Prefix to scan (key: slot: admin: del:)")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Status", "User", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()

			// Secondary indexes hold raw refs, not records
			if strings.HasPrefix(string(item.Key()), "idx:") {
				continue
			}

			err := item.Value(func(v []byte) error {
				var record map[string]any
				if err := json.Unmarshal(v, &record); err != nil {
					fmt.Printf("Error unmarshaling key %s: %v\n", string(item.Key()), err)
					return nil
				}
				table.Append(toRow(string(item.Key()), record))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func toRow(rawKey string, record map[string]any) []string {
	switch {
	case strings.HasPrefix(rawKey, "key:"):
		status := color.Green.Render("VALID")
		if truthy(record["redeemed"]) {
			status = color.Red.Render("REDEEMED")
		}
		detail := str(record["type"])
		if expiry := str(record["expiry"]); expiry != "" {
			detail += " expires " + expiry
		}
		return []string{rawKey, status, str(record["redeemed_by"]), detail}

	case strings.HasPrefix(rawKey, "slot:"):
		status := color.Red.Render("INACTIVE")
		if truthy(record["active"]) {
			status = color.Green.Render("ACTIVE")
		}
		if truthy(record["terminated"]) {
			status = color.Red.Render("TERMINATED")
		}
		detail := fmt.Sprintf("channel=%s everyone=%v here=%v",
			str(record["slot_channel_id"]), record["everyone_pings"], record["here_pings"])
		return []string{rawKey, status, str(record["user_id"]), detail}

	case strings.HasPrefix(rawKey, "del:"):
		due := str(record["due_at"])
		status := color.Yellow.Render("PENDING")
		if t, err := time.Parse(time.RFC3339, due); err == nil && t.Before(time.Now()) {
			status = color.Red.Render("DUE")
		}
		return []string{rawKey, status, str(record["user_id"]), "channel=" + str(record["channel_ref"]) + " due " + due}

	default:
		return []string{rawKey, "", str(record["user_id"]), "added_by=" + str(record["added_by"])}
	}
}

func str(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

func truthy(v any) bool {
	b, ok := v.(bool)
	return ok && b
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true).
		WithValueLogFileSize(10 * 1024 * 1024)

	return badger.Open(opts)
}
