package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"

	"channel-scope/contract"
	"channel-scope/domain"
	"channel-scope/errors"
	"channel-scope/observability"
)

// phase tracks where a run is in its lifecycle. Statistics exist only
// from phaseStreaming on, so a failure in any earlier phase has nothing
// to discard.
type phase string

const (
	phaseIdle           phase = "idle"
	phaseConnecting     phase = "connecting"
	phaseAuthenticating phase = "authenticating"
	phaseStreaming      phase = "streaming"
	phaseFinalized      phase = "finalized"
	phaseFailed         phase = "failed"
)

// DefaultBatchSize is the progress-signal cadence when none is
// configured. It has no correctness effect.
const DefaultBatchSize uint64 = 100

type IAnalyzerService interface {
	AnalyzeChannel(ctx context.Context, identifier string) (domain.Report, error)
}

// AnalyzerService drives one analysis run: it pulls messages from the
// platform client strictly one at a time, classifies each attachment,
// folds it into the running statistics and signals progress every
// batchSize qualifying messages. There is no fan-out; statistics are
// mutated by this single flow only.
type AnalyzerService struct {
	log         *slog.Logger
	client      contract.ChannelClient
	progress    contract.ProgressSink
	monitor     *observability.ScanMonitor
	credentials contract.Credentials
	batchSize   uint64
}

func NewAnalyzerService(
	log *slog.Logger,
	client contract.ChannelClient,
	progress contract.ProgressSink,
	monitor *observability.ScanMonitor,
	credentials contract.Credentials,
	batchSize uint64,
) *AnalyzerService {
	if batchSize == 0 {
		batchSize = DefaultBatchSize
	}
	return &AnalyzerService{
		log:         log,
		client:      client,
		progress:    progress,
		monitor:     monitor,
		credentials: credentials,
		batchSize:   batchSize,
	}
}

// AnalyzeChannel is the single public entry point of a run. On any
// terminal failure the partially accumulated statistics are discarded
// and the returned error carries a distinguishable failure kind; a
// report is only ever returned for a fully exhausted stream.
func (s *AnalyzerService) AnalyzeChannel(ctx context.Context, identifier string) (domain.Report, error) {
	current := phaseIdle
	fail := func(kind errors.Kind, cause error) (domain.Report, error) {
		s.log.Error("Analysis run failed", "phase", current, "kind", kind, "error", cause)
		current = phaseFailed
		return domain.Report{}, errors.NewScanError(kind, cause)
	}

	current = s.transition(current, phaseConnecting)
	if err := s.client.Connect(ctx); err != nil {
		return fail(errors.KindConnection, err)
	}

	current = s.transition(current, phaseAuthenticating)
	authorized, err := s.client.IsAuthorized(ctx)
	if err != nil {
		return fail(errors.KindAuthentication, err)
	}
	if !authorized {
		s.log.Info("New session. Starting authentication process...")
		if err := s.client.Authenticate(ctx, s.credentials); err != nil {
			return fail(errors.KindAuthentication, err)
		}
		s.log.Info("Authentication successful")
	}

	channel, err := s.client.ResolveChannel(ctx, identifier)
	if err != nil {
		return fail(errors.KindChannelResolution, err)
	}

	stream, err := s.client.StreamMessages(ctx, channel)
	if err != nil {
		return fail(errors.KindStreamInterrupted, err)
	}

	current = s.transition(current, phaseStreaming)
	stats := domain.NewRunningStatistics()
	stats.Start()

	var sinceLastSignal uint64
	for {
		// Cancellation is observed between items, bounded by one pull.
		select {
		case <-ctx.Done():
			return fail(errors.KindCancelled, ctx.Err())
		default:
		}

		message, err := stream.Next(ctx)
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if ctx.Err() != nil {
				return fail(errors.KindCancelled, ctx.Err())
			}
			return fail(errors.KindStreamInterrupted, err)
		}

		s.monitor.IncrMessagesSeen()
		attachment := buildAttachment(message)
		if !qualifies(attachment) {
			continue
		}

		category := domain.Classify(attachment)
		stats.Update(category, attachment.Size, attachment.Filename)
		s.monitor.IncrFilesCounted(attachment.Size)
		if category == domain.CategoryNone {
			s.monitor.IncrUncategorized()
		}

		sinceLastSignal++
		if sinceLastSignal == s.batchSize {
			// Fire-and-forget: the sink must never block this loop.
			s.progress.Advance(s.batchSize)
			sinceLastSignal = 0
		}
	}

	stats.Finish()
	current = s.transition(current, phaseFinalized)
	s.log.Info("Stream exhausted",
		"channel", channel.Title,
		"files", stats.TotalFiles,
		"size", domain.FormatSize(stats.TotalSize),
		"duration", stats.Duration(),
	)

	return domain.BuildReport(stats, channel.Title), nil
}

func (s *AnalyzerService) transition(from, to phase) phase {
	s.log.Debug(fmt.Sprintf("Run phase %s -> %s", from, to))
	return to
}

// qualifies keeps the messages the aggregator counts: a media payload
// carrying a document or a photo.
func qualifies(a domain.Attachment) bool {
	return a.HasMedia && (a.HasDocument || a.IsPhoto)
}

// buildAttachment materializes the capability view once per message.
func buildAttachment(m contract.MessageDescriptor) domain.Attachment {
	filename, _ := m.Filename()
	return domain.Attachment{
		HasMedia:     m.HasMedia(),
		HasDocument:  m.HasDocument(),
		IsPhoto:      m.IsPhoto(),
		Filename:     filename,
		DeclaredMIME: m.DeclaredMIME(),
		Size:         m.MediaSize(),
		Audio:        m.IsAudio(),
		Video:        m.IsVideo(),
	}
}
