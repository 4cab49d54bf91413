package client

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"channel-scope/auth"
	"channel-scope/contract"
	"channel-scope/errors"
	"channel-scope/internal"
)

func newTestClient(t *testing.T) (*ReplayClient, string) {
	t.Helper()
	dir := t.TempDir()
	log := internal.GetLoggerFromLevel(slog.LevelError)
	sessions := auth.NewSessionStore(
		filepath.Join(dir, "session.jwt"),
		[]byte("a-test-secret-of-sufficient-length"),
		time.Hour,
	)
	return NewReplayClient(log, dir, sessions), dir
}

func writeDump(t *testing.T, dir, channel, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, channel+".jsonl"), []byte(content), 0o644))
}

func TestReplayClient_Connect(t *testing.T) {
	req := require.New(t)

	client, _ := newTestClient(t)
	req.NoError(client.Connect(context.Background()))

	log := internal.GetLoggerFromLevel(slog.LevelError)
	missing := NewReplayClient(log, filepath.Join(t.TempDir(), "nope"), nil)
	req.Error(missing.Connect(context.Background()))
}

func TestReplayClient_Authentication(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	client, _ := newTestClient(t)

	ok, err := client.IsAuthorized(ctx)
	req.NoError(err)
	req.False(ok)

	req.Error(client.Authenticate(ctx, contract.Credentials{APIID: "id"}))

	creds := contract.Credentials{APIID: "id", APIHash: "hash", PhoneNumber: "+330000"}
	req.NoError(client.Authenticate(ctx, creds))

	ok, err = client.IsAuthorized(ctx)
	req.NoError(err)
	req.True(ok)
}

func TestReplayClient_ResolveChannel(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	client, dir := newTestClient(t)
	writeDump(t, dir, "golang-news", "")

	channel, err := client.ResolveChannel(ctx, "golang-news")
	req.NoError(err)
	req.Equal("golang-news", channel.Title)
	req.Equal(filepath.Join(dir, "golang-news.jsonl"), channel.ID)

	_, err = client.ResolveChannel(ctx, "does-not-exist")
	req.ErrorIs(err, errors.ErrUnknownChannel)
}

func TestReplayClient_StreamMessages(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	client, dir := newTestClient(t)

	writeDump(t, dir, "golang-news",
		`{"media":true,"document":true,"filename":"a.mp4","size":1000}
{"media":true,"document":true,"filename":"b.pdf","mime_type":"application/pdf","size":2000}

not json at all
{"media":true,"photo":true,"size":500}
`)

	channel, err := client.ResolveChannel(ctx, "golang-news")
	req.NoError(err)
	stream, err := client.StreamMessages(ctx, channel)
	req.NoError(err)

	// Blank and malformed lines are skipped, not fatal.
	var names []string
	var sizes []uint64
	for {
		msg, err := stream.Next(ctx)
		if err == io.EOF {
			break
		}
		req.NoError(err)
		name, _ := msg.Filename()
		names = append(names, name)
		sizes = append(sizes, msg.MediaSize())
	}
	req.Equal([]string{"a.mp4", "b.pdf", ""}, names)
	req.Equal([]uint64{1000, 2000, 500}, sizes)
}

func TestReplayClient_StreamCancellation(t *testing.T) {
	req := require.New(t)
	client, dir := newTestClient(t)
	writeDump(t, dir, "golang-news", `{"media":true,"photo":true,"size":500}`+"\n")

	channel, err := client.ResolveChannel(context.Background(), "golang-news")
	req.NoError(err)
	stream, err := client.StreamMessages(context.Background(), channel)
	req.NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = stream.Next(ctx)
	req.ErrorIs(err, context.Canceled)
}

func TestDumpMessage_MIMEFlags(t *testing.T) {
	req := require.New(t)

	// Explicit flags win; a declared MIME type backs them up.
	req.True(dumpMessage{Audio: true}.IsAudio())
	req.True(dumpMessage{MimeType: "audio/mpeg"}.IsAudio())
	req.False(dumpMessage{MimeType: "video/mp4"}.IsAudio())
	req.True(dumpMessage{MimeType: "video/mp4"}.IsVideo())
}
