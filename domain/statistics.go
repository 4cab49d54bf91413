package domain

import "time"

// CategoryStats holds the running count and cumulative size for one
// category.
type CategoryStats struct {
	Count uint64
	Size  uint64
}

// LargestFile tracks the single biggest attachment seen so far.
// Replacement uses a strict comparison, so ties keep the earlier file.
type LargestFile struct {
	Size     uint64
	Name     string
	Category Category
}

// RunningStatistics is the sole mutable state of one analysis run. It is
// owned exclusively by the stream driver: updates happen strictly one
// message at a time between suspension points, so no locking is needed
// on the aggregation path.
type RunningStatistics struct {
	TotalSize   uint64
	TotalFiles  uint64
	PerCategory map[Category]CategoryStats
	Largest     LargestFile

	startedAt  time.Time
	finishedAt time.Time
}

func NewRunningStatistics() *RunningStatistics {
	return &RunningStatistics{
		PerCategory: make(map[Category]CategoryStats),
	}
}

// Start stamps the beginning of the run. Starting twice is a programming
// error and panics.
func (s *RunningStatistics) Start() {
	if !s.startedAt.IsZero() {
		panic("statistics: Start called twice")
	}
	s.startedAt = time.Now()
}

// Finish stamps the end of the run. Finishing before Start, or twice,
// is a programming error and panics.
func (s *RunningStatistics) Finish() {
	if s.startedAt.IsZero() {
		panic("statistics: Finish called before Start")
	}
	if !s.finishedAt.IsZero() {
		panic("statistics: Finish called twice")
	}
	s.finishedAt = time.Now()
}

// Update folds one qualifying attachment into the statistics. All
// effects are O(1) and unconditional: totals always grow, the
// per-category entry only when a category was assigned, and the largest
// file only on a strictly larger size.
func (s *RunningStatistics) Update(category Category, size uint64, filename string) {
	s.TotalFiles++
	s.TotalSize += size

	if category != CategoryNone {
		entry := s.PerCategory[category]
		entry.Count++
		entry.Size += size
		s.PerCategory[category] = entry
	}

	if size > s.Largest.Size {
		name := filename
		if name == "" {
			name = "Unknown"
		}
		s.Largest = LargestFile{Size: size, Name: name, Category: category}
	}
}

// Duration reports the elapsed time between Start and Finish.
func (s *RunningStatistics) Duration() time.Duration {
	return s.finishedAt.Sub(s.startedAt)
}

// StartedAt returns the run's start stamp.
func (s *RunningStatistics) StartedAt() time.Time { return s.startedAt }

// FinishedAt returns the run's end stamp.
func (s *RunningStatistics) FinishedAt() time.Time { return s.finishedAt }
