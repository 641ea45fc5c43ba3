package output

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/povarna/generative-ai-agents/listing-agent/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const DefaultStream = "listing-events"

// StreamAdder is the part of *redis.Client the stream sink needs.
type StreamAdder interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// StreamSink publishes listings to a Redis stream as {"payload": <json>}.
type StreamSink struct {
	client StreamAdder
	stream string
	logger *zerolog.Logger
}

func NewStreamSink(client StreamAdder, stream string, logger *zerolog.Logger) *StreamSink {
	if stream == "" {
		stream = DefaultStream
	}
	return &StreamSink{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (s *StreamSink) Name() string {
	return "redis-stream"
}

func (s *StreamSink) Save(ctx context.Context, listing models.Listing) (string, error) {
	data, err := json.Marshal(listing)
	if err != nil {
		return "", fmt.Errorf("failed to marshal listing: %w", err)
	}

	id, err := s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		Values: map[string]any{"payload": string(data)},
	}).Result()
	if err != nil {
		return "", fmt.Errorf("failed to publish to stream %s: %w", s.stream, err)
	}

	s.logger.Info().
		Str("stream", s.stream).
		Str("id", id).
		Str("listing_id", listing.ID).
		Msg("Published successfully!")

	return fmt.Sprintf("%s/%s", s.stream, id), nil
}
