package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"steam_trader/internal/domain/entity"
	"steam_trader/internal/worker"
)

type fakeOfferSource struct {
	mu     sync.Mutex
	offers []entity.Offer
	since  []time.Time
}

func (s *fakeOfferSource) RecentOffers(_ context.Context, since time.Time) ([]entity.Offer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.since = append(s.since, since)

	return s.offers, nil
}

type fakeOfferHandler struct {
	mu      sync.Mutex
	handled []string
	errs    map[string]error
}

func (h *fakeOfferHandler) HandleOffer(_ context.Context, offer entity.Offer) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.errs[offer.ID]; err != nil {
		// Simulate a transient failure: the next attempt succeeds.
		delete(h.errs, offer.ID)
		return err
	}

	h.handled = append(h.handled, offer.ID)

	return nil
}

func (h *fakeOfferHandler) handledIDs() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]string(nil), h.handled...)
}

type fakeCursorStore struct {
	mu     sync.Mutex
	cursor time.Time
}

func (s *fakeCursorStore) Load(_ context.Context) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cursor, nil
}

func (s *fakeCursorStore) Save(_ context.Context, cursor time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cursor = cursor

	return nil
}

func (s *fakeCursorStore) saved() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cursor
}

func runPoller(t *testing.T, poller *worker.OfferPoller, d time.Duration) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()

	err := poller.Run(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestOfferPollerHandlesEachOfferOnce(t *testing.T) {
	rq := require.New(t)

	decided := time.Now().Add(-time.Minute).Truncate(time.Second)

	source := &fakeOfferSource{offers: []entity.Offer{
		{ID: "100001", PartnerID: "76561198999999999", UpdatedAt: decided},
		{ID: "100002", PartnerID: "76561198999999998", UpdatedAt: decided.Add(time.Second)},
	}}
	handler := &fakeOfferHandler{}
	cursor := &fakeCursorStore{}

	poller := worker.NewOfferPoller(source, handler, cursor, 10*time.Millisecond)

	// Several cycles run; the dedupe cache keeps repeats out.
	runPoller(t, poller, 100*time.Millisecond)

	rq.Equal([]string{"100001", "100002"}, handler.handledIDs())
	rq.Equal(decided.Add(time.Second), cursor.saved())
}

func TestOfferPollerRetriesFailedOffers(t *testing.T) {
	rq := require.New(t)

	source := &fakeOfferSource{offers: []entity.Offer{
		{ID: "100003", PartnerID: "76561198999999999", UpdatedAt: time.Now()},
	}}
	handler := &fakeOfferHandler{errs: map[string]error{
		"100003": errors.New("steam hiccup"),
	}}
	cursor := &fakeCursorStore{}

	poller := worker.NewOfferPoller(source, handler, cursor, 10*time.Millisecond)

	runPoller(t, poller, 100*time.Millisecond)

	// Failed on the first cycle, picked up again on a later one.
	rq.Equal([]string{"100003"}, handler.handledIDs())
}

func TestOfferPollerResumesFromStoredCursor(t *testing.T) {
	rq := require.New(t)

	resume := time.Now().Add(-time.Hour).Truncate(time.Second)

	source := &fakeOfferSource{}
	cursor := &fakeCursorStore{cursor: resume}

	poller := worker.NewOfferPoller(source, &fakeOfferHandler{}, cursor, 10*time.Millisecond)

	runPoller(t, poller, 50*time.Millisecond)

	source.mu.Lock()
	defer source.mu.Unlock()

	rq.NotEmpty(source.since)
	rq.Equal(resume, source.since[0])
}
