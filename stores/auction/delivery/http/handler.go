package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/zkzk-trade/goapi/base/ctx"
	"github.com/zkzk-trade/goapi/base/delivery"
	"github.com/zkzk-trade/goapi/domain/auction"
	"github.com/zkzk-trade/goapi/domain/toast"
	"github.com/zkzk-trade/goapi/middleware"
)

type handler struct {
	auction auction.UseCase
	toast   toast.Tracker
	now     func() time.Time
}

func New(
	e *echo.Echo,
	auction auction.UseCase,
	toast toast.Tracker) {
	newHandler(e, auction, toast, time.Now)
}

func newHandler(e *echo.Echo, uc auction.UseCase, tracker toast.Tracker, now func() time.Time) *handler {
	h := &handler{uc, tracker, now}

	isDomain := middleware.IsValidDomain("domain")

	gs := e.Group("/auctions")
	gs.GET("", h.listAuctions)
	gs.POST("", h.createAuction)
	gs.GET("/:domain", h.getAuction, isDomain)
	gs.PATCH("/:domain/price", h.updatePrice, isDomain)
	gs.POST("/:domain/offer", h.offer, isDomain)
	gs.POST("/:domain/buy", h.buy, isDomain)
	gs.POST("/:domain/bid", h.bid, isDomain)
	gs.POST("/:domain/claim", h.claim, isDomain)
	gs.POST("/:domain/select", h.selectAuction, isDomain)

	e.GET("/collections", h.listCollections)
	e.DELETE("/modals/:modal", h.closeModal)
	e.GET("/toasts/:id", h.getToast)
	return h
}

func (h *handler) listAuctions(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.auction.LoadAuctions(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, auction.ToCards(res, false, h.now()))
}

func (h *handler) listCollections(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.auction.LoadCollections(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, auction.ToCards(res, true, h.now()))
}

func (h *handler) getAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, _ := strconv.ParseInt(c.Param("domain"), 10, 64)

	item, err := h.auction.LoadAuction(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	bidders, err := h.auction.GetBidders(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	type result struct {
		Auction *auction.Card     `json:"auction"`
		Bidders []*auction.Bidder `json:"bidders"`
	}
	return delivery.MakeJsonResp(c, http.StatusOK, result{
		Auction: auction.ToCard(item, false, h.now()),
		Bidders: bidders,
	})
}

// track binds and validates p, then runs fn in the background behind a toast
func (h *handler) track(c echo.Context, p interface{}, msgs toast.Messages, fn func(ctx.Ctx) error) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	t, err := h.toast.Promise(ctx, msgs, fn)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusServiceUnavailable, err)
	}
	return delivery.MakeJsonResp(c, http.StatusAccepted, t)
}

func (h *handler) createAuction(c echo.Context) error {
	p := &auction.CreateParams{}
	return h.track(c, p, toast.MsgCreate, func(c ctx.Ctx) error {
		return h.auction.CreateAuction(c, p)
	})
}

func (h *handler) updatePrice(c echo.Context) error {
	p := &auction.UpdatePriceParams{}
	return h.track(c, p, toast.MsgPrice, func(c ctx.Ctx) error {
		return h.auction.UpdatePrice(c, p)
	})
}

func (h *handler) offer(c echo.Context) error {
	p := &auction.OfferParams{}
	return h.track(c, p, toast.MsgOffer, func(c ctx.Ctx) error {
		return h.auction.OfferItemOnMarket(c, p)
	})
}

func (h *handler) buy(c echo.Context) error {
	p := &auction.TradeParams{}
	return h.track(c, p, toast.MsgBuy, func(c ctx.Ctx) error {
		return h.auction.BuyItem(c, p)
	})
}

func (h *handler) bid(c echo.Context) error {
	p := &auction.TradeParams{}
	return h.track(c, p, toast.MsgBid, func(c ctx.Ctx) error {
		return h.auction.PlaceBid(c, p)
	})
}

func (h *handler) claim(c echo.Context) error {
	p := &auction.ClaimParams{}
	return h.track(c, p, toast.MsgClaim, func(c ctx.Ctx) error {
		return h.auction.ClaimPrize(c, p)
	})
}

func (h *handler) selectAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Domain int64  `param:"domain"`
		Modal  string `json:"modal"`
	}
	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	res, err := h.auction.Select(ctx, p.Domain, p.Modal)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, auction.ToCard(res, false, h.now()))
}

func (h *handler) closeModal(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if err := h.auction.CloseModal(ctx, c.Param("modal")); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, c.Param("modal"))
}

func (h *handler) getToast(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	t, err := h.toast.Get(ctx, c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, t)
}
