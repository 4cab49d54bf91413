package sink

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"channel-scope/domain"
)

// JSONSink writes each completed record to its own timestamped file in
// the configured directory.
type JSONSink struct {
	dir string
	log *slog.Logger
}

func NewJSONSink(dir string, log *slog.Logger) JSONSink {
	return JSONSink{dir: dir, log: log}
}

// Persist serializes the record as indented JSON. The field set is
// stable across runs; see domain.Record.
func (s JSONSink) Persist(record domain.Record) error {
	filename := fmt.Sprintf("channel_analysis_%s.json", time.Now().Format("20060102_150405"))
	path := filepath.Join(s.dir, filename)

	payload, err := json.MarshalIndent(record, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}

	s.log.Info("Analysis results saved", "path", path)
	return nil
}
