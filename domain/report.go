package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// CategoryRow is one line of the distribution table. Percentage is the
// category's share of the grand total size.
type CategoryRow struct {
	Category   Category
	Count      uint64
	Size       uint64
	Percentage float64
}

// Report is the immutable snapshot built once from frozen statistics.
// It is the only entity crossing the boundary to the display and
// persistence collaborators.
type Report struct {
	ID          uuid.UUID
	Channel     string
	GeneratedAt time.Time
	TotalFiles  uint64
	TotalSize   uint64
	Duration    time.Duration
	Largest     LargestFile
	// Rows is sorted by category label ascending.
	Rows []CategoryRow
}

// BuildReport derives the presentation-ready snapshot from finished
// statistics. Pure transformation, no I/O. Percentages are zero when the
// grand total is zero, never a fault.
func BuildReport(stats *RunningStatistics, channelName string) Report {
	rows := lo.MapToSlice(stats.PerCategory, func(category Category, entry CategoryStats) CategoryRow {
		row := CategoryRow{Category: category, Count: entry.Count, Size: entry.Size}
		if stats.TotalSize > 0 {
			row.Percentage = float64(entry.Size) / float64(stats.TotalSize) * 100
		}
		return row
	})
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Category < rows[j].Category
	})

	return Report{
		ID:          uuid.New(),
		Channel:     channelName,
		GeneratedAt: time.Now(),
		TotalFiles:  stats.TotalFiles,
		TotalSize:   stats.TotalSize,
		Duration:    stats.Duration(),
		Largest:     stats.Largest,
		Rows:        rows,
	}
}

// RecordCategory mirrors CategoryStats with stable serialized names.
type RecordCategory struct {
	Count uint64 `json:"count"`
	Size  uint64 `json:"size"`
}

// RecordLargest mirrors LargestFile with stable serialized names.
type RecordLargest struct {
	Size uint64 `json:"size"`
	Name string `json:"name,omitempty"`
	Type string `json:"type,omitempty"`
}

// Record is the serializable half of a report. Its field set and types
// are stable across runs; collaborators may archive it as-is.
type Record struct {
	ID           string                    `json:"id"`
	Channel      string                    `json:"channel"`
	AnalysisDate string                    `json:"analysis_date"`
	TotalFiles   uint64                    `json:"total_files"`
	TotalSize    uint64                    `json:"total_size"`
	MediaTypes   map[string]RecordCategory `json:"media_types"`
	LargestFile  RecordLargest             `json:"largest_file"`
	Duration     string                    `json:"duration"`
}

// Record converts the report into its persistable form.
func (r Report) Record() Record {
	mediaTypes := make(map[string]RecordCategory, len(r.Rows))
	for _, row := range r.Rows {
		mediaTypes[string(row.Category)] = RecordCategory{Count: row.Count, Size: row.Size}
	}
	return Record{
		ID:           r.ID.String(),
		Channel:      r.Channel,
		AnalysisDate: r.GeneratedAt.Format("2006-01-02 15:04:05"),
		TotalFiles:   r.TotalFiles,
		TotalSize:    r.TotalSize,
		MediaTypes:   mediaTypes,
		LargestFile: RecordLargest{
			Size: r.Largest.Size,
			Name: r.Largest.Name,
			Type: string(r.Largest.Category),
		},
		Duration: r.Duration.Round(time.Millisecond).String(),
	}
}
