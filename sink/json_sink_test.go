package sink

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"channel-scope/domain"
	"channel-scope/internal"
)

func TestJSONSink_Persist(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	archive := NewJSONSink(dir, internal.GetLoggerFromLevel(slog.LevelError))

	record := domain.Record{
		ID:           "0c9b6f9a-0000-0000-0000-000000000000",
		Channel:      "golang news",
		AnalysisDate: "2026-08-23 10:00:00",
		TotalFiles:   3,
		TotalSize:    3500,
		MediaTypes: map[string]domain.RecordCategory{
			"videos":    {Count: 1, Size: 1000},
			"documents": {Count: 1, Size: 2000},
			"images":    {Count: 1, Size: 500},
		},
		LargestFile: domain.RecordLargest{Size: 2000, Name: "b.pdf", Type: "documents"},
		Duration:    "1.2s",
	}
	req.NoError(archive.Persist(record))

	entries, err := os.ReadDir(dir)
	req.NoError(err)
	req.Len(entries, 1)
	req.Regexp(`^channel_analysis_\d{8}_\d{6}\.json$`, entries[0].Name())

	payload, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	req.NoError(err)

	var stored domain.Record
	req.NoError(json.Unmarshal(payload, &stored))
	req.Equal(record, stored)
}

func TestJSONSink_PersistUnwritableDir(t *testing.T) {
	req := require.New(t)
	archive := NewJSONSink(filepath.Join(t.TempDir(), "absent"), internal.GetLoggerFromLevel(slog.LevelError))

	req.Error(archive.Persist(domain.Record{Channel: "golang news"}))
}
