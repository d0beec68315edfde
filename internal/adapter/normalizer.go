package adapter

import (
	"github.com/i-am-called-glitchy/kirka-bot-go/internal/domain"
	"github.com/i-am-called-glitchy/kirka-bot-go/internal/kirka"
	"github.com/i-am-called-glitchy/kirka-bot-go/pkg/errors"
	"go.uber.org/zap"
)

// Normalizer converts raw chat frames into zero or more normalized events.
// Decoding failures never escape; a bad frame or sub-message degrades to "no
// event" with a log line. The first frame after each (re)connection is the
// server greeting and is discarded unconditionally.
type Normalizer struct {
	logger        *zap.Logger
	handshakeDone bool
}

func NewNormalizer(logger *zap.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// Reset re-arms the handshake discard. Call on every successful connect.
func (n *Normalizer) Reset() {
	n.handshakeDone = false
}

// Normalize expands a frame into its chat events: a batch yields its
// sub-messages in order, a single chat frame yields one event, system frames
// yield none, and unrecognized types are attempted as a single event on a
// best-effort basis.
func (n *Normalizer) Normalize(frame *kirka.Frame) []*domain.ChatEvent {
	if frame == nil {
		return nil
	}

	if !n.handshakeDone {
		n.handshakeDone = true
		return nil
	}

	switch frame.Type {
	case kirka.FrameTypeBatch:
		events := make([]*domain.ChatEvent, 0, len(frame.Messages))
		for _, sub := range frame.Messages {
			event, err := n.toEvent(sub)
			if err != nil {
				n.logger.Warn("Skipping malformed batched message", zap.Error(err))
				continue
			}
			events = append(events, event)
		}
		return events

	case kirka.FrameTypeChat:
		event, err := n.toEvent(frame)
		if err != nil {
			n.logger.Warn("Skipping malformed chat frame", zap.Error(err))
			return nil
		}
		return []*domain.ChatEvent{event}

	case kirka.FrameTypeSystem:
		// Server-authored lines carry no author and are not commands.
		return nil

	default:
		event, err := n.toEvent(frame)
		if err != nil {
			n.logger.Warn("Failed to process frame of unknown type",
				zap.Int("type", frame.Type),
				zap.Error(err),
			)
			return nil
		}
		return []*domain.ChatEvent{event}
	}
}

func (n *Normalizer) toEvent(frame *kirka.Frame) (*domain.ChatEvent, error) {
	if frame == nil {
		return nil, errors.NewValidationError("frame is nil", "frame", nil)
	}
	if frame.User == nil {
		return nil, errors.NewValidationError("frame has no author", "user", nil)
	}

	return &domain.ChatEvent{
		Content: frame.Message,
		Author: domain.Author{
			ID:      frame.User.ID,
			ShortID: frame.User.ShortID,
			Name:    frame.User.Name,
			Role:    frame.User.Role,
			Level:   frame.User.Level,
		},
		EventType: frame.Type,
		Raw:       frame.Raw,
	}, nil
}
