// Command history_inspect prints the stored analysis history as a
// table. It opens the database read-only so it can run next to the
// analyzer.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"

	"channel-scope/domain"
	"channel-scope/repositories"
)

func main() {
	dbPath := flag.String("db", "data/history", "path to the history database")
	channel := flag.String("channel", "", "restrict to one channel")
	flag.Parse()

	opts := badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatal("Error while opening history database: ", err)
	}
	defer db.Close()

	repo := repositories.NewAnalysisRepository(db, slog.Default())

	var records []domain.Record
	if *channel != "" {
		records, err = repo.ListByChannel(*channel, nil)
	} else {
		records, err = repo.ListAll()
	}
	if err != nil {
		log.Fatal(err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Date", "Channel", "Files", "Size", "Largest", "Duration"})
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

	for _, record := range records {
		largest := record.LargestFile.Name
		if largest == "" {
			largest = "-"
		}
		table.Append([]string{
			record.AnalysisDate,
			record.Channel,
			fmt.Sprintf("%d", record.TotalFiles),
			domain.FormatSize(record.TotalSize),
			largest,
			record.Duration,
		})
	}

	table.Render()
}
