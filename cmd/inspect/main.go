// Command inspect dumps the messenger keyspace as tables from a read-only
// Badger handle, usable while the daemon holds the write lock.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"messenger/domain"
	"messenger/internal"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
)

func main() {
	prefix := flag.String("prefix", "msg:", "key prefix to scan (msg:, chat:, user:, expire:)")
	limit := flag.Int("limit", 100, "maximum rows to print")
	flag.Parse()

	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// BypassLockGuard allows opening while the daemon holds the lock.
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.ERROR)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	header := color.New(color.BgBlack, color.FgGreen).
		Sprintf(" messenger inspect | prefix %q ", *prefix)
	fmt.Println(header)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Type", "Detail"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	count := 0
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes) && count < *limit; it.Next() {
			item := it.Item()
			key := string(item.Key())
			err := item.Value(func(val []byte) error {
				table.Append(rowFor(key, val))
				return nil
			})
			if err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Scan failed: %v", err)
	}

	table.Render()
	fmt.Printf("%d rows\n", count)
}

func rowFor(key string, val []byte) []string {
	row := internal.DefaultMapper(key, val)

	var message domain.Message
	if row.Type == "MSG" && json.Unmarshal(val, &message) == nil {
		detail := fmt.Sprintf("from=%s chat=%s permanent=%t at=%s",
			short(message.SenderID.String()), short(message.ChatID.String()),
			message.Permanent, message.At.Format(time.RFC3339))
		return []string{row.Key, row.Type, detail}
	}

	var chat domain.Chat
	if row.Type == "CHAT" && json.Unmarshal(val, &chat) == nil {
		return []string{row.Key, row.Type, fmt.Sprintf("%d members", len(chat.Members))}
	}

	var user domain.User
	if row.Type == "USER" && json.Unmarshal(val, &user) == nil {
		detail := fmt.Sprintf("%s (%s %s), %d contacts",
			user.Username, user.FirstName, user.Surname, len(user.Contacts))
		return []string{row.Key, row.Type, detail}
	}

	return []string{row.Key, row.Type, row.Detail}
}

func short(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
