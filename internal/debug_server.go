package internal

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

//go:embed inspect.html
var templatesFS embed.FS

type InspectRow struct {
	Key    string
	Type   string
	Detail string
}

type RowMapper func(key string, val []byte) InspectRow
type StatsProvider func() map[string]any

// StartDebugServer exposes a read-only HTML view over the Badger keyspace,
// filtered by a ?prefix= query. Development aid only; never reachable in a
// deployment unless the debug port is opened on purpose.
func StartDebugServer(db *badger.DB, port int, endpoint string, mapper RowMapper, statsProvider StatsProvider) {
	mux := http.NewServeMux()
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))

	if mapper == nil {
		mapper = DefaultMapper
	}

	mux.HandleFunc(endpoint, func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")

		var rows []InspectRow
		err := db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()

			prefixBytes := []byte(prefix)
			for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
				item := it.Item()
				key := string(item.Key())
				if err := item.Value(func(val []byte) error {
					rows = append(rows, mapper(key, val))
					return nil
				}); err != nil {
					return err
				}
				if len(rows) >= 500 {
					break
				}
			}
			return nil
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		stats := map[string]any{}
		if statsProvider != nil {
			stats = statsProvider()
		}
		_ = tmpl.Execute(w, struct {
			Prefix string
			Items  []InspectRow
			Stats  map[string]any
		}{Prefix: prefix, Items: rows, Stats: stats})
	})

	go func() {
		_ = http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
	}()
}

// DefaultMapper classifies a row by its key namespace without decoding the
// value.
func DefaultMapper(key string, val []byte) InspectRow {
	namespace, _, _ := strings.Cut(key, ":")
	return InspectRow{
		Key:    key,
		Type:   strings.ToUpper(namespace),
		Detail: fmt.Sprintf("%d bytes", len(val)),
	}
}
