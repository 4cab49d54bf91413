// Package observability exposes the scan's live counters. The stream
// driver owns the writes; the progress reporter reads snapshots from a
// separate goroutine, so the counters are atomic.
package observability

import (
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// ScanSnapshot is one consistent-enough view of the counters, taken
// between messages. Suitable for display only.
type ScanSnapshot struct {
	Elapsed            time.Duration
	MessagesSeen       uint64
	FilesCounted       uint64
	BytesCounted       uint64
	UncategorizedCount uint64
	RSSMb              uint64
}

// ScanMonitor accumulates telemetry for one analysis run.
type ScanMonitor struct {
	log *slog.Logger

	messagesSeen  uint64
	filesCounted  uint64
	bytesCounted  uint64
	uncategorized uint64

	startedAt time.Time
	proc      *process.Process
}

func NewScanMonitor(log *slog.Logger) *ScanMonitor {
	// A nil proc just drops the RSS column from snapshots.
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Debug("Process metrics unavailable", "error", err)
		proc = nil
	}
	return &ScanMonitor{
		log:       log,
		startedAt: time.Now(),
		proc:      proc,
	}
}

func (m *ScanMonitor) IncrMessagesSeen() {
	atomic.AddUint64(&m.messagesSeen, 1)
}

func (m *ScanMonitor) IncrFilesCounted(size uint64) {
	atomic.AddUint64(&m.filesCounted, 1)
	atomic.AddUint64(&m.bytesCounted, size)
}

func (m *ScanMonitor) IncrUncategorized() {
	atomic.AddUint64(&m.uncategorized, 1)
}

// Snapshot reads the current counters plus the process resident memory.
func (m *ScanMonitor) Snapshot() ScanSnapshot {
	snapshot := ScanSnapshot{
		Elapsed:            time.Since(m.startedAt),
		MessagesSeen:       atomic.LoadUint64(&m.messagesSeen),
		FilesCounted:       atomic.LoadUint64(&m.filesCounted),
		BytesCounted:       atomic.LoadUint64(&m.bytesCounted),
		UncategorizedCount: atomic.LoadUint64(&m.uncategorized),
	}
	if m.proc != nil {
		if mem, err := m.proc.MemoryInfo(); err == nil && mem != nil {
			snapshot.RSSMb = mem.RSS / 1024 / 1024
		}
	}
	return snapshot
}
