package trade

import (
	"context"
	"fmt"
	"time"

	"steam_trader/internal/domain/entity"
	"steam_trader/internal/domain/value"
	"steam_trader/pkg/contextx"
	"steam_trader/pkg/logx"
)

// TradeClient performs offer side effects against the marketplace. Accept is
// not safely repeatable, so a failed accept is never retried here; only the
// post-accept confirmation hop retries (see worker.Confirmer).
type TradeClient interface {
	PartnerDetails(ctx context.Context, offer entity.Offer) (escrowDays int, err error)
	Accept(ctx context.Context, offer entity.Offer) error
	Decline(ctx context.Context, offer entity.Offer) error
}

// ProfileChannel posts a comment on the partner's profile. Best-effort: a
// failed comment never blocks or alters the trade decision.
type ProfileChannel interface {
	Comment(ctx context.Context, partnerID, text string) error
}

// ConfirmScheduler schedules a confirmation attempt for an accepted offer.
type ConfirmScheduler interface {
	Schedule(ctx context.Context, offerID string, attempt int, delay time.Duration) error
}

type TradeRepository interface {
	Create(ctx context.Context, record *entity.TradeRecord) error
	Exists(ctx context.Context, offerID string) (bool, error)
	UpdateStatus(ctx context.Context, offerID string, status entity.TradeStatus) error
	List(ctx context.Context, limit, offset int) ([]entity.TradeRecord, error)
}

// PriceSource exposes the active price table snapshot.
type PriceSource interface {
	Current() value.PriceTable
}

// TradeService decides incoming offers and executes the decision. Offers are
// handled one at a time per poll cycle, so side effects for the same offer
// are never raced.
type TradeService struct {
	client    TradeClient
	profile   ProfileChannel
	scheduler ConfirmScheduler
	tradeRepo TradeRepository
	prices    PriceSource
	policy    value.Policy
}

func NewTradeService(
	client TradeClient,
	profile ProfileChannel,
	scheduler ConfirmScheduler,
	tradeRepo TradeRepository,
	prices PriceSource,
	policy value.Policy,
) *TradeService {
	return &TradeService{
		client:    client,
		profile:   profile,
		scheduler: scheduler,
		tradeRepo: tradeRepo,
		prices:    prices,
		policy:    policy,
	}
}

// HandleOffer evaluates a new offer and drives it to a terminal outcome.
// Already-decided offers are skipped, so an offer is never decided twice
// even across restarts.
func (s *TradeService) HandleOffer(ctx context.Context, offer entity.Offer) error {
	ctx = contextx.WithPartnerID(ctx, contextx.PartnerID(offer.PartnerID))

	exists, err := s.tradeRepo.Exists(ctx, offer.ID)
	if err != nil {
		return fmt.Errorf("tradeRepo.Exists: %w", err)
	}

	if exists {
		logger(ctx).Debug("offer already decided", logx.FieldOfferID, offer.ID)
		return nil
	}

	escrowDays, detailsErr := s.client.PartnerDetails(ctx, offer)
	offer.EscrowDays = escrowDays

	table := s.prices.Current()
	decision := Evaluate(offer, detailsErr, table, s.policy)

	decisionsTotal.WithLabelValues(string(decision.Action), decision.Reason.String()).Inc()

	logger(ctx).Info("offer decided",
		logx.FieldOfferID, offer.ID,
		logx.FieldPartnerID, offer.PartnerID,
		"action", string(decision.Action),
		"reason", decision.Reason.String(),
	)

	if decision.Accepted() {
		return s.accept(ctx, offer, decision, table)
	}

	return s.decline(ctx, offer, decision, table)
}

func (s *TradeService) accept(ctx context.Context, offer entity.Offer, decision value.Decision, table value.PriceTable) error {
	s.comment(ctx, offer.PartnerID, decision)

	record := s.newRecord(offer, decision, table)

	if err := s.client.Accept(ctx, offer); err != nil {
		logger(ctx).Error("offer accept failed", logx.FieldOfferID, offer.ID, logx.Error(err))

		record.Status = entity.TradeStatusAcceptFailed

		if repoErr := s.tradeRepo.Create(ctx, record); repoErr != nil {
			return fmt.Errorf("tradeRepo.Create: %w", repoErr)
		}

		return nil
	}

	record.Status = entity.TradeStatusAccepted

	if err := s.tradeRepo.Create(ctx, record); err != nil {
		return fmt.Errorf("tradeRepo.Create: %w", err)
	}

	if err := s.scheduler.Schedule(ctx, offer.ID, 0, 0); err != nil {
		logger(ctx).Error("confirmation schedule failed", logx.FieldOfferID, offer.ID, logx.Error(err))
	}

	return nil
}

func (s *TradeService) decline(ctx context.Context, offer entity.Offer, decision value.Decision, table value.PriceTable) error {
	s.comment(ctx, offer.PartnerID, decision)

	if err := s.client.Decline(ctx, offer); err != nil {
		// Not retried: the offer expires or the counterparty resends it.
		logger(ctx).Error("offer decline failed", logx.FieldOfferID, offer.ID, logx.Error(err))
	}

	record := s.newRecord(offer, decision, table)
	record.Status = entity.TradeStatusDeclined

	if err := s.tradeRepo.Create(ctx, record); err != nil {
		return fmt.Errorf("tradeRepo.Create: %w", err)
	}

	return nil
}

// comment relays the decision message to the partner profile when the reply
// toggles allow it. Failures are swallowed.
func (s *TradeService) comment(ctx context.Context, partnerID string, decision value.Decision) {
	if decision.Message == "" {
		return
	}

	if decision.IsError && !s.policy.ReplyOnFailure {
		return
	}

	if !decision.IsError && !s.policy.ReplyOnSuccess {
		return
	}

	if err := s.profile.Comment(ctx, partnerID, decision.Message); err != nil {
		logger(ctx).Warn("profile comment failed", logx.FieldPartnerID, partnerID, logx.Error(err))
	}
}

func (s *TradeService) newRecord(offer entity.Offer, decision value.Decision, table value.PriceTable) *entity.TradeRecord {
	now := time.Now()

	return &entity.TradeRecord{
		OfferID:       offer.ID,
		PartnerID:     offer.PartnerID,
		Reason:        decision.Reason.String(),
		ReceivedValue: valueOf(offer.ItemsToReceive, table, s.policy.UserMultiplier),
		GivenValue:    valueOf(offer.ItemsToGive, table, s.policy.BotMultiplier),
		DecidedAt:     now,
		UpdatedAt:     now,
	}
}
