package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

// ChangeHandler processes one decoded change event. A returned error stops the
// consume loop.
type ChangeHandler func(ctx context.Context, event ChangeEvent) error

// Consumer reads change events from the changes topic and feeds them to a
// handler. Messages that do not decode are logged and skipped so one bad
// payload cannot wedge the group.
type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, groupID, topic string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

func (c *Consumer) Consume(ctx context.Context, handler ChangeHandler) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		event, err := decodeChangeEvent(msg.Value)
		if err != nil {
			log.Warn().Err(err).Str("topic", msg.Topic).Int64("offset", msg.Offset).
				Msg("skipping undecodable change event")
			continue
		}

		if err := handler(ctx, event); err != nil {
			return err
		}
	}
}

func decodeChangeEvent(value []byte) (ChangeEvent, error) {
	var event ChangeEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return ChangeEvent{}, fmt.Errorf("decode change event: %w", err)
	}
	if event.Entity == "" || event.Action == "" {
		return ChangeEvent{}, fmt.Errorf("change event missing entity or action")
	}
	return event, nil
}
