//go:generate go run go.uber.org/mock/mockgen -source=analysis.go -destination=../mocks/mock_analysis_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"channel-scope/domain"
)

const analysisPrefix = "analysis:"

type IAnalysisRepository interface {
	Store(record domain.Record) error
	ListByChannel(channel string, limit *int) ([]domain.Record, error)
}

// AnalysisRepository keeps the history of completed runs in BadgerDB so
// past analyses stay queryable after the console output is gone.
type AnalysisRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewAnalysisRepository(db *badger.DB, log *slog.Logger) *AnalysisRepository {
	return &AnalysisRepository{db: db, log: log}
}

// Store archives one record under analysis:<channel>:<ts>:<id>.
func (r *AnalysisRepository) Store(record domain.Record) error {
	key := fmt.Sprintf("%s%s:%d:%s",
		analysisPrefix,
		record.Channel,
		time.Now().UnixNano(),
		record.ID,
	)
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), payload)
	})
}

// ListByChannel returns the stored records for one channel, newest
// first. A nil limit returns everything.
func (r *AnalysisRepository) ListByChannel(channel string, limit *int) ([]domain.Record, error) {
	var records []domain.Record
	prefix := []byte(analysisPrefix + channel + ":")

	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(v []byte) error {
				var record domain.Record
				if err := json.Unmarshal(v, &record); err != nil {
					// A corrupt entry never hides the rest of the history.
					r.log.Warn("Skipping unreadable record", "key", string(item.Key()), "error", err)
					return nil
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].AnalysisDate > records[j].AnalysisDate
	})
	if limit != nil && *limit < len(records) {
		records = records[:*limit]
	}
	return records, nil
}

// ListAll returns every stored record regardless of channel, newest
// first. Used by the history inspector.
func (r *AnalysisRepository) ListAll() ([]domain.Record, error) {
	var channels []domain.Record

	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(analysisPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			if !strings.HasPrefix(string(item.Key()), analysisPrefix) {
				continue
			}
			err := item.Value(func(v []byte) error {
				var record domain.Record
				if err := json.Unmarshal(v, &record); err != nil {
					r.log.Warn("Skipping unreadable record", "key", string(item.Key()), "error", err)
					return nil
				}
				channels = append(channels, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(channels, func(i, j int) bool {
		return channels[i].AnalysisDate > channels[j].AnalysisDate
	})
	return channels, nil
}
