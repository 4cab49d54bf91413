// Package sink holds the presentation and persistence collaborators a
// completed report is handed to.
package sink

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"channel-scope/domain"
	"channel-scope/observability"
)

// ConsoleSink renders progress and the final tables on a terminal.
// Advance is decoupled from the stream driver through a buffered
// channel: a slow terminal drops progress updates instead of blocking
// aggregation.
type ConsoleSink struct {
	log     *slog.Logger
	monitor *observability.ScanMonitor
	out     io.Writer
	colours bool

	advances chan uint64
	closed   chan struct{}
	once     sync.Once
}

func NewConsoleSink(log *slog.Logger, monitor *observability.ScanMonitor, out io.Writer, colours bool) *ConsoleSink {
	c := &ConsoleSink{
		log:      log,
		monitor:  monitor,
		out:      out,
		colours:  colours,
		advances: make(chan uint64, 64),
		closed:   make(chan struct{}),
	}
	go c.consume()
	return c
}

// Advance signals batch progress. Never blocks; updates the display at
// most, never correctness.
func (c *ConsoleSink) Advance(n uint64) {
	select {
	case c.advances <- n:
	default:
	}
}

// Close stops the progress consumer. Idempotent.
func (c *ConsoleSink) Close() {
	c.once.Do(func() { close(c.advances) })
	<-c.closed
}

func (c *ConsoleSink) consume() {
	defer close(c.closed)
	var processed uint64
	for n := range c.advances {
		processed += n
		snapshot := c.monitor.Snapshot()
		fmt.Fprintf(c.out, "\rAnalyzing messages... [%s] %d files | %s | RAM: %d MB",
			snapshot.Elapsed.Round(time.Second),
			processed,
			domain.FormatSize(snapshot.BytesCounted),
			snapshot.RSSMb,
		)
	}
	fmt.Fprintln(c.out)
}

// RenderSummary prints the main statistics table.
func (c *ConsoleSink) RenderSummary(report domain.Report) {
	header := fmt.Sprintf("Analysis Complete for %s", report.Channel)
	if c.colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Fprintf(c.out, "\n%s\n", header)

	table := c.newTable()
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Total Files", fmt.Sprintf("%d", report.TotalFiles)})
	table.Append([]string{"Total Size", domain.FormatSize(report.TotalSize)})
	table.Append([]string{"Analysis Duration", report.Duration.String()})
	if report.Largest.Name != "" {
		table.Append([]string{
			"Largest File",
			fmt.Sprintf("%s (%s)", report.Largest.Name, domain.FormatSize(report.Largest.Size)),
		})
	}
	table.Render()
}

// RenderDistribution prints the per-category breakdown, one row per
// category, sorted by label (the report rows already are).
func (c *ConsoleSink) RenderDistribution(report domain.Report) {
	if len(report.Rows) == 0 {
		return
	}

	fmt.Fprintf(c.out, "\nMedia Type Distribution\n")
	table := c.newTable()
	table.SetHeader([]string{"Media Type", "Count", "Size", "Percentage"})
	for _, row := range report.Rows {
		table.Append([]string{
			row.Category.Display(),
			fmt.Sprintf("%d", row.Count),
			domain.FormatSize(row.Size),
			fmt.Sprintf("%.1f%%", row.Percentage),
		})
	}
	table.Render()
}

func (c *ConsoleSink) newTable() *tablewriter.Table {
	table := tablewriter.NewWriter(c.out)
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
	return table
}
