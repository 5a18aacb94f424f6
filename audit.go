package goVault

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"
)

// Severity classifies an audit event for the consuming system log.
type Severity string

const (
	// SeverityCritical marks conditions requiring operator attention, such as
	// vault exhaustion.
	SeverityCritical Severity = "critical"
	// SeverityWarning marks abnormal but self-healing conditions, such as
	// reclaimed leaked keys.
	SeverityWarning Severity = "warning"
	// SeverityInfo marks routine operational events.
	SeverityInfo Severity = "info"
)

// AuditEvent is the structured record handed to the configured sink.
type AuditEvent struct {
	EventID     string            `json:"event_id"`
	Timestamp   time.Time         `json:"timestamp"`
	EventType   string            `json:"event_type"`
	Severity    Severity          `json:"severity"`
	Function    string            `json:"function"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// AuditSink receives emitted audit events. Delivery is fire-and-forget: a
// failing or slow sink never fails the vault operation that produced the
// event.
//
// Events are delivered one at a time from a single dispatcher goroutine, and
// Close waits for the in-flight delivery. Emit must therefore return promptly
// and must not block indefinitely; a sink that waits on external I/O should
// honor ctx cancellation or buffer internally.
type AuditSink interface {
	Emit(ctx context.Context, event AuditEvent)
}

// NoOpSink drops audit events.
type NoOpSink struct{}

func (NoOpSink) Emit(context.Context, AuditEvent) {}

// ChannelSink writes audit events into a buffered channel. When the channel
// is full the event is discarded, so a consumer that stops reading can never
// wedge the dispatcher or hang Close.
type ChannelSink struct {
	events chan AuditEvent
}

func NewChannelSink(buffer int) *ChannelSink {
	if buffer <= 0 {
		buffer = 1
	}
	return &ChannelSink{
		events: make(chan AuditEvent, buffer),
	}
}

func (s *ChannelSink) Emit(_ context.Context, event AuditEvent) {
	select {
	case s.events <- event:
	default:
	}
}

func (s *ChannelSink) Events() <-chan AuditEvent {
	return s.events
}

// JSONWriterSink writes one JSON object per line.
type JSONWriterSink struct {
	writer io.Writer
	mu     sync.Mutex
}

func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return &JSONWriterSink{
		writer: w,
	}
}

func (s *JSONWriterSink) Emit(ctx context.Context, event AuditEvent) {
	if s == nil || s.writer == nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = s.writer.Write(data)
	_, _ = s.writer.Write([]byte("\n"))
}
