package test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/require"

	"channel-scope/auth"
	"channel-scope/client"
	"channel-scope/contract"
	"channel-scope/domain"
	scanerrors "channel-scope/errors"
	"channel-scope/internal"
	"channel-scope/observability"
	"channel-scope/repositories"
	"channel-scope/services"
	"channel-scope/sink"
)

type testConfig struct {
	LogLevel  string `envconfig:"TEST_LOG_LEVEL" default:"error"`
	BatchSize uint64 `envconfig:"TEST_BATCH_SIZE" default:"2"`
}

func loadTestConfig(t *testing.T) testConfig {
	t.Helper()
	var cfg testConfig
	require.NoError(t, envconfig.Process("", &cfg))
	return cfg
}

type fixture struct {
	service    *services.AnalyzerService
	repository *repositories.AnalysisRepository
	archive    sink.JSONSink
	reportDir  string
	dumpDir    string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	req := require.New(t)
	cfg := loadTestConfig(t)
	log := internal.GetLoggerFromString(cfg.LogLevel)

	dumpDir := t.TempDir()
	reportDir := t.TempDir()

	sessions := auth.NewSessionStore(
		filepath.Join(t.TempDir(), "session.jwt"),
		[]byte("a-test-secret-of-sufficient-length"),
		time.Hour,
	)
	req.NoError(sessions.Save("+33612345678"))

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	platform := client.NewReplayClient(log, dumpDir, sessions)
	monitor := observability.NewScanMonitor(log)
	creds := contract.Credentials{APIID: "id", APIHash: "hash", PhoneNumber: "+33612345678"}
	service := services.NewAnalyzerService(log, platform, noProgress{}, monitor, creds, cfg.BatchSize)

	return fixture{
		service:    service,
		repository: repositories.NewAnalysisRepository(db, log),
		archive:    sink.NewJSONSink(reportDir, log),
		reportDir:  reportDir,
		dumpDir:    dumpDir,
	}
}

type noProgress struct{}

func (noProgress) Advance(uint64) {}

func writeDump(t *testing.T, dir, channel, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, channel+".jsonl"), []byte(content), 0o644))
}

func Test_Scenario_FullAnalysis(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	f := newFixture(t)

	// 1. An exported channel with three qualifying attachments and one
	// bare text message.
	writeDump(t, f.dumpDir, "golang-news",
		`{"media":true,"document":true,"filename":"a.mp4","size":1000}
{"media":true,"document":true,"filename":"b.pdf","size":2000}
{"media":true,"photo":true,"size":500}
{"media":false}
`)

	// 2. The whole pipeline runs against the dump.
	report, err := f.service.AnalyzeChannel(ctx, "golang-news")
	req.NoError(err)

	req.Equal(uint64(3), report.TotalFiles)
	req.Equal(uint64(3500), report.TotalSize)
	req.Equal(domain.LargestFile{Size: 2000, Name: "b.pdf", Category: domain.CategoryDocuments}, report.Largest)
	req.Len(report.Rows, 3)

	// 3. The record survives both persistence paths.
	record := report.Record()
	req.NoError(f.archive.Persist(record))
	req.NoError(f.repository.Store(record))

	entries, err := os.ReadDir(f.reportDir)
	req.NoError(err)
	req.Len(entries, 1)

	payload, err := os.ReadFile(filepath.Join(f.reportDir, entries[0].Name()))
	req.NoError(err)
	var archived domain.Record
	req.NoError(json.Unmarshal(payload, &archived))
	req.Equal(record, archived)

	history, err := f.repository.ListByChannel("golang-news", nil)
	req.NoError(err)
	req.Len(history, 1)
	req.Equal(record.ID, history[0].ID)
}

func Test_Scenario_EmptyChannel(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	writeDump(t, f.dumpDir, "silent", "")

	report, err := f.service.AnalyzeChannel(context.Background(), "silent")
	req.NoError(err)

	req.Equal(uint64(0), report.TotalFiles)
	req.Empty(report.Rows)
	req.NoError(f.archive.Persist(report.Record()))
}

func Test_Scenario_UnknownChannel(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	_, err := f.service.AnalyzeChannel(context.Background(), "never-exported")
	req.Error(err)
	kind, ok := scanerrors.KindOf(err)
	req.True(ok)
	req.Equal(scanerrors.KindChannelResolution, kind)
}

func Test_Scenario_Cancellation(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	writeDump(t, f.dumpDir, "golang-news",
		`{"media":true,"document":true,"filename":"a.mp4","size":1000}
{"media":true,"document":true,"filename":"b.pdf","size":2000}
`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.service.AnalyzeChannel(ctx, "golang-news")
	req.Error(err)
	kind, ok := scanerrors.KindOf(err)
	req.True(ok)
	req.Equal(scanerrors.KindCancelled, kind)
}
