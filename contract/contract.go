//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"

	"channel-scope/domain"
)

// Credentials identify the account the analyzer acts as when a fresh
// session has to be established.
type Credentials struct {
	APIID       string
	APIHash     string
	PhoneNumber string
}

// Channel is the resolved handle of one remote channel.
type Channel struct {
	ID    string
	Title string
}

// MessageDescriptor is the capability view of one message's media
// payload. Implementations are built once per message by the transport
// layer; there is no reflective probing.
type MessageDescriptor interface {
	HasMedia() bool
	IsPhoto() bool
	HasDocument() bool
	// MediaSize is the declared size of the document or photo payload.
	MediaSize() uint64
	// Filename returns the declared filename attribute, if any.
	Filename() (string, bool)
	// DeclaredMIME returns the announced MIME type, empty when absent.
	DeclaredMIME() string
	IsAudio() bool
	IsVideo() bool
}

// MessageStream is a lazy, single-pass, non-restartable sequence of
// messages of unknown and unbounded length. Next returns io.EOF when
// the source is exhausted.
type MessageStream interface {
	Next(ctx context.Context) (MessageDescriptor, error)
}

// ChannelClient is the boundary to the remote messaging platform.
// Transport, pagination and credential exchange are its concern.
type ChannelClient interface {
	Connect(ctx context.Context) error
	IsAuthorized(ctx context.Context) (bool, error)
	Authenticate(ctx context.Context, creds Credentials) error
	ResolveChannel(ctx context.Context, identifier string) (Channel, error)
	StreamMessages(ctx context.Context, channel Channel) (MessageStream, error)
}

// ProgressSink receives batch-cadence progress signals. Advance is
// fire-and-forget: implementations must never block the caller.
type ProgressSink interface {
	Advance(n uint64)
}

// ReportSink renders a completed report for a human.
type ReportSink interface {
	RenderSummary(report domain.Report)
	RenderDistribution(report domain.Report)
}

// RecordSink archives the serializable half of a completed report.
type RecordSink interface {
	Persist(record domain.Record) error
}
