package outbox

import (
	"context"
	"log/slog"
	"time"

	"club-booking/internal/pkg/clock"
	"club-booking/internal/pkg/config"
	"club-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	defaultPollEvery = 2 * time.Second
	defaultBatchSize = 50
)

// MessageWriter is the subset of *kafka.Writer the relay uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Relay publishes due notification jobs to Kafka and marks them published
// in the same transaction that claimed them.
type Relay struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	logger    *slog.Logger
	brokers   []string
	pollEvery time.Duration
	batchSize int

	newWriter func(brokers []string) MessageWriter
}

func NewRelay(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger, cfg config.KafkaConfig) *Relay {
	if cfg.PollEvery <= 0 {
		cfg.PollEvery = defaultPollEvery
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Relay{
		uow:       uow,
		clock:     clk,
		logger:    logger.With("component", "outbox_relay"),
		brokers:   SplitBrokers(cfg.Brokers),
		pollEvery: cfg.PollEvery,
		batchSize: cfg.BatchSize,
		newWriter: newKafkaWriter,
	}
}

// WithWriter replaces the Kafka writer factory.
func (r *Relay) WithWriter(newWriter func(brokers []string) MessageWriter) *Relay {
	r.newWriter = newWriter
	return r
}

func (r *Relay) Enabled() bool {
	return len(r.brokers) > 0
}

// Run polls until ctx is done. It returns immediately when no brokers are configured.
func (r *Relay) Run(ctx context.Context) {
	if !r.Enabled() {
		r.logger.Warn("outbox relay disabled (no kafka brokers configured)")
		return
	}

	writer := r.newWriter(r.brokers)
	defer func() {
		if err := writer.Close(); err != nil {
			r.logger.Warn("failed to close kafka writer", "error", err)
		}
	}()

	ticker := time.NewTicker(r.pollEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := r.PublishBatch(ctx, writer)
			if err != nil {
				r.logger.Error("outbox publish failed", "error", err)
				continue
			}
			if n > 0 {
				r.logger.Debug("outbox batch published", "count", n)
			}
		}
	}
}

// PublishBatch relays at most one batch and returns how many jobs were published.
func (r *Relay) PublishBatch(ctx context.Context, writer MessageWriter) (int, error) {
	published := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		published = 0
		now := r.clock.Now()

		jobs, err := tx.Notifications().ClaimDue(ctx, now, r.batchSize)
		if err != nil {
			return err
		}
		if len(jobs) == 0 {
			return nil
		}

		msgs := make([]kafka.Message, len(jobs))
		ids := make([]uuid.UUID, len(jobs))
		for i, job := range jobs {
			msgs[i] = toMessage(ctx, job)
			ids[i] = job.ID
		}
		if err := writer.WriteMessages(ctx, msgs...); err != nil {
			return err
		}
		if err := tx.Notifications().MarkPublished(ctx, ids, now); err != nil {
			return err
		}
		published = len(jobs)
		return nil
	})
	return published, err
}

func toMessage(ctx context.Context, job shared.NotificationJob) kafka.Message {
	msg := kafka.Message{
		Topic: job.Topic,
		Key:   []byte(job.Key),
		Value: job.Payload,
		Headers: []kafka.Header{
			{Key: headerJobID, Value: []byte(job.ID.String())},
			{Key: headerKind, Value: []byte(job.Kind)},
		},
	}
	msg.Headers = injectTraceHeaders(ctx, msg.Headers)
	return msg
}

func newKafkaWriter(brokers []string) MessageWriter {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}
