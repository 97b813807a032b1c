package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	jsoniter "github.com/json-iterator/go"

	"steam_trader/internal/worker"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// QueueTrades is the asynq queue carrying confirmation tasks.
const QueueTrades = "trades"

// ConfirmScheduler enqueues confirmation attempts as asynq tasks. The retry
// loop is driven by the confirmer re-enqueueing with a fresh attempt counter,
// so asynq-level retries stay off.
type ConfirmScheduler struct {
	client *asynq.Client
}

func NewConfirmScheduler(redis asynq.RedisClientOpt) *ConfirmScheduler {
	return &ConfirmScheduler{client: asynq.NewClient(redis)}
}

func (s *ConfirmScheduler) Schedule(ctx context.Context, offerID string, attempt int, delay time.Duration) error {
	payload, err := json.Marshal(worker.ConfirmPayload{OfferID: offerID, Attempt: attempt})
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	task := asynq.NewTask(worker.TaskTypeConfirmOffer, payload)

	opts := []asynq.Option{
		asynq.Queue(QueueTrades),
		asynq.MaxRetry(0),
	}
	if delay > 0 {
		opts = append(opts, asynq.ProcessIn(delay))
	}

	if _, err := s.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("asynq.Enqueue: %w", err)
	}

	return nil
}

func (s *ConfirmScheduler) Close() error {
	if err := s.client.Close(); err != nil {
		return fmt.Errorf("asynqClient.Close: %w", err)
	}

	return nil
}
