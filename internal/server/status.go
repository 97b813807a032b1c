package server

import (
	"net/http"
	"strconv"

	"git.appkode.ru/pub/go/failure"
	"github.com/samber/lo"

	"steam_trader/pkg/errcodes"
	"steam_trader/pkg/httpx/reply"
	"steam_trader/pkg/lox"
	"steam_trader/pkg/rest"
)

const (
	defaultTradesLimit = 50
	maxTradesLimit     = 500
)

func (s Server) getV1Status(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	reply.JSON(ctx, w, http.StatusOK, rest.Status{
		Name:            s.name,
		Version:         s.version,
		Apps:            s.apps,
		PricedItems:     s.prices.Current().Items(),
		PricesUpdatedAt: s.prices.UpdatedAt(),
	})

	return nil
}

func (s Server) getV1Prices(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	appID, err := strconv.ParseInt(r.PathValue("appID"), 10, 64)
	if err != nil {
		return failure.NewInvalidArgumentError(
			"invalid app id",
			failure.WithCode(errcodes.InvalidAppID),
			failure.WithDescription("App id must be a number"),
		)
	}

	if !lo.Contains(s.apps, appID) {
		return failure.NewNotFoundError(
			"app is not traded",
			failure.WithCode(errcodes.NotFound),
		)
	}

	items := s.prices.Current()[appID]

	response := rest.AppPrices{
		AppID: appID,
		Items: len(items),
	}

	if name := r.URL.Query().Get("item"); name != "" {
		price, ok := items[name]
		if !ok {
			return failure.NewNotFoundError(
				"item is not priced",
				failure.WithCode(errcodes.NotFound),
			)
		}

		response.Item = &rest.ItemPrice{Name: name, Price: price}
	}

	reply.JSON(ctx, w, http.StatusOK, response)

	return nil
}

func (s Server) getV1Trades(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	limit, offset, err := paging(r)
	if err != nil {
		return err
	}

	records, err := s.trades.List(ctx, limit, offset)
	if err != nil {
		return err
	}

	reply.JSON(ctx, w, http.StatusOK, lox.Map(records, newRESTTrade))

	return nil
}

func paging(r *http.Request) (limit, offset int, err error) {
	limit = defaultTradesLimit

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 || limit > maxTradesLimit {
			return 0, 0, failure.NewInvalidArgumentError(
				"invalid limit",
				failure.WithCode(errcodes.InvalidPaging),
			)
		}
	}

	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return 0, 0, failure.NewInvalidArgumentError(
				"invalid offset",
				failure.WithCode(errcodes.InvalidPaging),
			)
		}
	}

	return limit, offset, nil
}
