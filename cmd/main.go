package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"

	"channel-scope/auth"
	"channel-scope/client"
	"channel-scope/contract"
	scanerrors "channel-scope/errors"
	"channel-scope/internal"
	"channel-scope/observability"
	"channel-scope/repositories"
	"channel-scope/services"
	"channel-scope/sink"
)

// Exit codes of the analyzer binary.
const (
	exitOK        = 0
	exitRuntime   = 1
	exitConfig    = 2
	exitCancelled = 3
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "channel-scope: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, executes one analysis and centralizes
// error reporting, so deferred cleanup (database close, progress
// shutdown) always executes before the process exits.
func run() (int, error) {
	// 1. Configuration & logger
	_ = godotenv.Load()
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, err
	}
	log := internal.GetLoggerFromString(config.LogLevel)

	channelID := flag.String("channel", "", "channel identifier to analyze")
	noColour := flag.Bool("no-colour", false, "disable colorized output")
	flag.Parse()
	if *channelID == "" {
		return exitConfig, fmt.Errorf("missing -channel")
	}

	// 2. Run-history database
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return exitRuntime, fmt.Errorf("history database opening failed: %w", err)
	}
	defer func() {
		log.Debug("Closing history database")
		_ = db.Close()
	}()

	// 3. Collaborators: session store, platform client, sinks
	sessions := auth.NewSessionStore(config.SessionFile, []byte(config.SessionSecret), config.SessionTTL)
	platform := client.NewReplayClient(log, config.DumpDir, sessions)
	monitor := observability.NewScanMonitor(log)
	console := sink.NewConsoleSink(log, monitor, os.Stdout, !*noColour)
	defer console.Close()

	history := repositories.NewAnalysisRepository(db, log)
	archive := sink.NewJSONSink(config.ReportDir, log)

	credentials := contract.Credentials{
		APIID:       config.APIID,
		APIHash:     config.APIHash,
		PhoneNumber: config.PhoneNumber,
	}
	service := services.NewAnalyzerService(log, platform, console, monitor, credentials, config.BatchSize)

	// 4. Context & signals: Ctrl+C cancels the run, never truncates it.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. One analysis run
	report, err := service.AnalyzeChannel(ctx, *channelID)
	if err != nil {
		if kind, ok := scanerrors.KindOf(err); ok && kind == scanerrors.KindCancelled {
			return exitCancelled, err
		}
		return exitRuntime, err
	}

	// 6. Hand the report to its consumers
	console.RenderSummary(report)
	console.RenderDistribution(report)

	record := report.Record()
	if err := archive.Persist(record); err != nil {
		return exitRuntime, err
	}
	if err := history.Store(record); err != nil {
		return exitRuntime, err
	}

	previous, err := history.ListByChannel(record.Channel, config.HistoryLimit)
	if err != nil {
		log.Warn("Run history unavailable", "error", err)
	} else {
		log.Info("Run archived", "channel", record.Channel, "stored_runs", len(previous))
	}

	return exitOK, nil
}
