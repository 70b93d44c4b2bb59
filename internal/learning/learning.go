// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

// Package learning moves completed interactions into the history store
// asynchronously. Publishing is fire-and-forget: a failure is logged and
// counted but never reaches the response path.
package learning

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/ckersey/souschef/internal/metrics"
	"github.com/ckersey/souschef/internal/models"
)

// Topic carries interaction records from the pipeline to the worker.
const Topic = "interactions.recorded"

// InteractionSink accepts completed interactions for learning.
type InteractionSink interface {
	Append(ctx context.Context, rec models.InteractionRecord) error
}

// Bus is the in-process pub/sub pair for learning events.
type Bus struct {
	channel *gochannel.GoChannel
	logger  zerolog.Logger
}

// NewBus creates the learning event bus with the given buffer capacity.
func NewBus(bufferSize int, logger zerolog.Logger) *Bus {
	if bufferSize <= 0 {
		bufferSize = 256
	}
	channel := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: int64(bufferSize),
	}, watermill.NopLogger{})

	return &Bus{
		channel: channel,
		logger:  logger.With().Str("component", "learning").Logger(),
	}
}

// Publish hands one interaction record to the bus. Errors are returned
// for accounting but callers treat them as best-effort.
func (b *Bus) Publish(rec models.InteractionRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		metrics.LearningEventsDropped.Inc()
		return fmt.Errorf("failed to marshal interaction: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := b.channel.Publish(Topic, msg); err != nil {
		metrics.LearningEventsDropped.Inc()
		return fmt.Errorf("failed to publish interaction: %w", err)
	}
	metrics.LearningEventsPublished.Inc()
	return nil
}

// Subscribe returns the message stream for the worker.
func (b *Bus) Subscribe(ctx context.Context) (<-chan *message.Message, error) {
	return b.channel.Subscribe(ctx, Topic)
}

// Close shuts the bus down. Pending messages are dropped.
func (b *Bus) Close() error {
	return b.channel.Close()
}

// Invalidator drops cached state for a user after new feedback lands.
type Invalidator interface {
	Invalidate(userID string)
}

// Worker drains the bus into the interaction sink. It implements
// suture.Service and is restarted by the supervisor on failure.
type Worker struct {
	bus         *Bus
	sink        InteractionSink
	invalidator Invalidator
	logger      zerolog.Logger
}

// NewWorker creates the learning worker. invalidator may be nil.
func NewWorker(bus *Bus, sink InteractionSink, invalidator Invalidator, logger zerolog.Logger) *Worker {
	return &Worker{
		bus:         bus,
		sink:        sink,
		invalidator: invalidator,
		logger:      logger.With().Str("component", "learning-worker").Logger(),
	}
}

// Serve consumes learning events until the context is cancelled. A
// record that fails to store is logged and dropped; the worker never
// retries, since history is advisory data.
func (w *Worker) Serve(ctx context.Context) error {
	messages, err := w.bus.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("failed to subscribe to learning bus: %w", err)
	}
	w.logger.Info().Msg("Learning worker started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			w.handle(ctx, msg)
		}
	}
}

func (w *Worker) handle(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	var rec models.InteractionRecord
	if err := json.Unmarshal(msg.Payload, &rec); err != nil {
		metrics.LearningEventsDropped.Inc()
		w.logger.Warn().Err(err).Str("message_id", msg.UUID).Msg("Dropping malformed learning event")
		return
	}

	if err := w.sink.Append(ctx, rec); err != nil {
		metrics.LearningEventsDropped.Inc()
		w.logger.Warn().Err(err).Str("user_id", rec.UserID).Msg("Failed to store interaction")
		return
	}

	if w.invalidator != nil && rec.Feedback != nil {
		w.invalidator.Invalidate(rec.UserID)
	}
	w.logger.Debug().Str("user_id", rec.UserID).Str("interaction_id", rec.ID).Msg("Interaction recorded")
}

// String names the worker in supervisor logs.
func (w *Worker) String() string {
	return "learning-worker"
}
