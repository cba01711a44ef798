package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/pitchlab/callgrader/internal/enrich"
	"github.com/pitchlab/callgrader/internal/grader"
	"github.com/pitchlab/callgrader/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Consumer pulls finished-session transcripts off a redis stream, grades
// them, and publishes the enriched flat record to the output stream.
type Consumer struct {
	client       *redis.Client
	stream       string
	outStream    string
	groupID      string
	consumerName string
	grader       *grader.Grader
	logger       *zerolog.Logger
}

func NewConsumer(client *redis.Client, stream, outStream, groupID, consumerName string, g *grader.Grader, logger *zerolog.Logger) *Consumer {
	return &Consumer{
		client:       client,
		stream:       stream,
		outStream:    outStream,
		groupID:      groupID,
		consumerName: consumerName,
		grader:       g,
		logger:       logger,
	}
}

func (c *Consumer) Setup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.stream, c.groupID, "0").Err()
	if err != nil && err.Error() != "BUSYGROUP Consumer Group name already exists" {
		return err
	}
	return nil
}

func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("stream", c.stream).
		Str("group", c.groupID).
		Str("consumer", c.consumerName).
		Msg("Consumer started")

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		msgs, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.groupID,
			Consumer: c.consumerName,
			Streams:  []string{c.stream, ">"},
			Count:    1,
			Block:    2 * time.Second,
		}).Result()

		if err != nil {
			if errors.Is(err, redis.Nil) {
				// timeout, no message -> loop again
				continue
			}

			if ctx.Err() != nil {
				return ctx.Err() // context cancelled during block
			}

			c.logger.Error().Err(err).Msg("Failed to read from stream")
			continue
		}

		for _, msg := range msgs[0].Messages {
			c.process(ctx, msg)
		}
	}
}

func (c *Consumer) Stop() error {
	// No-op
	return nil
}

func (c *Consumer) process(ctx context.Context, msg redis.XMessage) {
	c.logger.Info().Str("id", msg.ID).Msg("Message received")

	payload, ok := msg.Values["payload"].(string)
	if !ok {
		c.logger.Error().Str("id", msg.ID).Msg("Missing payload field")
		c.ack(ctx, msg.ID)
		return
	}

	var req models.GradeRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to decode message")
		c.ack(ctx, msg.ID) // bad message, ACK to skip it
		return
	}

	transcript := models.Transcript{SessionID: req.SessionID, Turns: req.Turns}
	packet := c.grader.Grade(ctx, transcript, req.PolicySnippets)
	record := enrich.Enrich(transcript, packet)

	c.logger.Info().
		Str("id", msg.ID).
		Str("session_id", packet.SessionID).
		Int("final", packet.Scores.Final).
		Str("band", string(packet.Scores.Band)).
		Msg("Grading complete")

	c.publish(ctx, msg.ID, record)
	c.ack(ctx, msg.ID)
}

func (c *Consumer) publish(ctx context.Context, msgID string, record enrich.FlatRecord) {
	body, err := json.Marshal(record)
	if err != nil {
		c.logger.Error().Err(err).Str("id", msgID).Msg("Failed to encode record")
		return
	}

	err = c.client.XAdd(ctx, &redis.XAddArgs{
		Stream: c.outStream,
		Values: map[string]any{"payload": string(body)},
	}).Err()
	if err != nil {
		c.logger.Error().Err(err).Str("id", msgID).Msg("Failed to publish record")
	}
}

func (c *Consumer) ack(ctx context.Context, msgID string) {
	if err := c.client.XAck(ctx, c.stream, c.groupID, msgID).Err(); err != nil {
		c.logger.Error().Err(err).Str("id", msgID).Msg("Failed to ACK message")
	}
}
