package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"steam_trader/internal/domain/entity"
	"steam_trader/internal/domain/service/trade"
	"steam_trader/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	TaskTypeConfirmOffer = "offer:confirm"

	// An accepted offer gets at most confirmMaxAttempts confirmation tries,
	// confirmRetryDelay apart, then the offer is abandoned: the item transfer
	// already happened, so exhaustion is an alert, not a decision to revisit.
	confirmMaxAttempts = 3
	confirmRetryDelay  = 10 * time.Second
)

//nolint:gochecknoglobals
var confirmationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "trade_confirmations_total",
		Help: "Confirmation attempts for accepted offers by result.",
	},
	[]string{"result"},
)

// ConfirmPayload is the task payload for a single confirmation attempt.
type ConfirmPayload struct {
	OfferID string `json:"offer_id"`
	Attempt int    `json:"attempt"`
}

// OfferConfirmer performs the mobile-confirmation step for an accepted offer.
type OfferConfirmer interface {
	Confirm(ctx context.Context, offerID string) error
}

type confirmStatusStore interface {
	UpdateStatus(ctx context.Context, offerID string, status entity.TradeStatus) error
}

// Alerter delivers operational alerts, best-effort.
type Alerter interface {
	Alert(ctx context.Context, text string) error
}

// Confirmer is the per-offer confirmation retry state machine. Each attempt
// is an independently scheduled task, so a waiting retry never blocks the
// evaluation of other offers. Retries are bounded; accept itself is never
// re-invoked from here.
type Confirmer struct {
	client      OfferConfirmer
	scheduler   trade.ConfirmScheduler
	trades      confirmStatusStore
	alerts      Alerter
	maxAttempts int
	retryDelay  time.Duration
}

func NewConfirmer(
	client OfferConfirmer,
	scheduler trade.ConfirmScheduler,
	trades confirmStatusStore,
	alerts Alerter,
) *Confirmer {
	return &Confirmer{
		client:      client,
		scheduler:   scheduler,
		trades:      trades,
		alerts:      alerts,
		maxAttempts: confirmMaxAttempts,
		retryDelay:  confirmRetryDelay,
	}
}

// WithRetryPolicy overrides the attempt bound and delay.
func (c *Confirmer) WithRetryPolicy(maxAttempts int, retryDelay time.Duration) *Confirmer {
	c.maxAttempts = maxAttempts
	c.retryDelay = retryDelay

	return c
}

// HandleTask is the asynq handler for confirmation tasks. Retries are
// scheduled explicitly with a fresh attempt counter, so the task itself
// always completes; asynq must never re-run it.
func (c *Confirmer) HandleTask(ctx context.Context, task *asynq.Task) error {
	var payload ConfirmPayload

	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	c.Process(ctx, payload.OfferID, payload.Attempt)

	return nil
}

// Process runs one confirmation attempt. attempt is zero-based.
func (c *Confirmer) Process(ctx context.Context, offerID string, attempt int) {
	err := c.client.Confirm(ctx, offerID)
	if err == nil {
		confirmationsTotal.WithLabelValues("confirmed").Inc()

		if updErr := c.trades.UpdateStatus(ctx, offerID, entity.TradeStatusConfirmed); updErr != nil {
			logger(ctx).Error("trade status update failed", logx.FieldOfferID, offerID, logx.Error(updErr))
		}

		logger(ctx).Info("offer confirmed", logx.FieldOfferID, offerID, "attempt", attempt)

		return
	}

	if attempt+1 >= c.maxAttempts {
		confirmationsTotal.WithLabelValues("abandoned").Inc()

		logger(ctx).Error("confirmation abandoned, retries exhausted",
			logx.FieldOfferID, offerID,
			"attempts", attempt+1,
			logx.Error(err),
		)

		if updErr := c.trades.UpdateStatus(ctx, offerID, entity.TradeStatusAbandoned); updErr != nil {
			logger(ctx).Error("trade status update failed", logx.FieldOfferID, offerID, logx.Error(updErr))
		}

		if c.alerts != nil {
			text := fmt.Sprintf("Offer %s accepted but confirmation failed %d times, manual confirmation needed.", offerID, attempt+1)
			if alertErr := c.alerts.Alert(ctx, text); alertErr != nil {
				logger(ctx).Warn("confirmation alert failed", logx.Error(alertErr))
			}
		}

		return
	}

	confirmationsTotal.WithLabelValues("retried").Inc()

	logger(ctx).Warn("confirmation failed, retrying",
		logx.FieldOfferID, offerID,
		"attempt", attempt,
		logx.Error(err),
	)

	if schedErr := c.scheduler.Schedule(ctx, offerID, attempt+1, c.retryDelay); schedErr != nil {
		logger(ctx).Error("confirmation reschedule failed", logx.FieldOfferID, offerID, logx.Error(schedErr))
	}
}
