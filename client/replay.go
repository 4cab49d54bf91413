// Package client provides the offline implementation of the platform
// boundary: a ChannelClient that replays an exported channel dump.
// Dumps are line-delimited JSON, one message per line, as produced by
// the platform's export tooling.
package client

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"channel-scope/auth"
	"channel-scope/contract"
	"channel-scope/domain/mimetypes"
	"channel-scope/errors"
)

// maxLineSize bounds one dump line; attachment metadata stays far below
// this even for pathological filenames.
const maxLineSize = 1 << 20

// ReplayClient implements contract.ChannelClient over a directory of
// channel dumps. Channel identifiers map to <dir>/<identifier>.jsonl.
type ReplayClient struct {
	log      *slog.Logger
	dumpDir  string
	sessions *auth.SessionStore
}

func NewReplayClient(log *slog.Logger, dumpDir string, sessions *auth.SessionStore) *ReplayClient {
	return &ReplayClient{log: log, dumpDir: dumpDir, sessions: sessions}
}

// Connect verifies the dump directory is reachable.
func (c *ReplayClient) Connect(_ context.Context) error {
	info, err := os.Stat(c.dumpDir)
	if err != nil {
		return fmt.Errorf("dump directory %s: %w", c.dumpDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("dump path %s is not a directory", c.dumpDir)
	}
	return nil
}

// IsAuthorized reports whether a valid persisted session exists.
func (c *ReplayClient) IsAuthorized(_ context.Context) (bool, error) {
	_, err := c.sessions.Load()
	if err == nil {
		return true, nil
	}
	c.log.Debug("No usable session", "error", err)
	return false, nil
}

// Authenticate establishes a fresh session for the configured account.
func (c *ReplayClient) Authenticate(_ context.Context, creds contract.Credentials) error {
	if creds.APIID == "" || creds.APIHash == "" || creds.PhoneNumber == "" {
		return fmt.Errorf("incomplete credentials")
	}
	return c.sessions.Save(creds.PhoneNumber)
}

// ResolveChannel maps an identifier to its dump file.
func (c *ReplayClient) ResolveChannel(_ context.Context, identifier string) (contract.Channel, error) {
	path := filepath.Join(c.dumpDir, identifier+".jsonl")
	if _, err := os.Stat(path); err != nil {
		return contract.Channel{}, fmt.Errorf("%w: %s", errors.ErrUnknownChannel, identifier)
	}
	return contract.Channel{ID: path, Title: identifier}, nil
}

// StreamMessages opens the dump as a lazy single-pass sequence.
func (c *ReplayClient) StreamMessages(_ context.Context, channel contract.Channel) (contract.MessageStream, error) {
	file, err := os.Open(channel.ID)
	if err != nil {
		return nil, fmt.Errorf("opening dump for %s: %w", channel.Title, err)
	}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	return &replayStream{log: c.log, file: file, scanner: scanner}, nil
}

type replayStream struct {
	log     *slog.Logger
	file    *os.File
	scanner *bufio.Scanner
}

// Next yields the next message of the dump, skipping lines that do not
// parse; a malformed attachment is never fatal.
func (s *replayStream) Next(ctx context.Context) (contract.MessageDescriptor, error) {
	for {
		if err := ctx.Err(); err != nil {
			_ = s.file.Close()
			return nil, err
		}
		if !s.scanner.Scan() {
			_ = s.file.Close()
			if err := s.scanner.Err(); err != nil {
				return nil, fmt.Errorf("reading dump: %w", err)
			}
			return nil, io.EOF
		}

		line := s.scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var msg dumpMessage
		if err := json.Unmarshal(line, &msg); err != nil {
			s.log.Debug("Skipping malformed dump line", "error", err)
			continue
		}
		return msg, nil
	}
}

// dumpMessage is one exported message, restricted to the media
// attributes the analyzer asks about.
type dumpMessage struct {
	Media    bool   `json:"media"`
	Photo    bool   `json:"photo"`
	Document bool   `json:"document"`
	Name     string `json:"filename,omitempty"`
	MimeType string `json:"mime_type,omitempty"`
	Size     uint64 `json:"size"`
	Audio    bool   `json:"audio"`
	Video    bool   `json:"video"`
}

func (m dumpMessage) HasMedia() bool    { return m.Media }
func (m dumpMessage) IsPhoto() bool     { return m.Photo }
func (m dumpMessage) HasDocument() bool { return m.Document }
func (m dumpMessage) MediaSize() uint64 { return m.Size }

func (m dumpMessage) Filename() (string, bool) {
	return m.Name, m.Name != ""
}

func (m dumpMessage) DeclaredMIME() string { return m.MimeType }

func (m dumpMessage) IsAudio() bool {
	return m.Audio || mimetypes.IsAudio(m.MimeType)
}

func (m dumpMessage) IsVideo() bool {
	return m.Video || mimetypes.IsVideo(m.MimeType)
}
