package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/zkzk-trade/goapi/base/ctx"
	"github.com/zkzk-trade/goapi/base/delivery"
	"github.com/zkzk-trade/goapi/domain"
	"github.com/zkzk-trade/goapi/domain/auction"
	"github.com/zkzk-trade/goapi/service/ens"
)

const connectLabel = "Connect Wallet"

type Link struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

type Site struct {
	Brand  string `json:"brand"`
	Nav    []Link `json:"nav"`
	Footer string `json:"footer"`
}

var site = Site{
	Brand: "ZKZK.trade",
	Nav: []Link{
		{Label: "Market", Path: "/"},
		{Label: "My Domains", Path: "/collections"},
	},
	Footer: "Built at ETHBangkok",
}

// Wallet is the header button: the account when connected, a connect call to action otherwise
type Wallet struct {
	Connected bool           `json:"connected"`
	Account   domain.Address `json:"account,omitempty"`
	Label     string         `json:"label"`
}

type handler struct {
	auction auction.UseCase
	ens     ens.ENS
}

func New(
	e *echo.Echo,
	auction auction.UseCase,
	ens ens.ENS) {
	h := &handler{auction, ens}

	e.GET("/", h.getSite)
	e.GET("/wallet", h.getWallet)
	e.POST("/wallet/connect", h.connect)
}

func (h *handler) getSite(c echo.Context) error {
	return delivery.MakeJsonResp(c, http.StatusOK, site)
}

func (h *handler) getWallet(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	account, err := h.auction.IsWalletConnected(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, h.toWallet(ctx, account))
}

func (h *handler) connect(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	account, err := h.auction.ConnectWallet(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, h.toWallet(ctx, account))
}

func (h *handler) toWallet(c ctx.Ctx, account domain.Address) *Wallet {
	if account.IsEmpty() {
		return &Wallet{Label: connectLabel}
	}

	label := auction.Truncate(string(account), 8, 8, 11)
	if name, err := h.ens.ReverseResolve(c, account); err != nil {
		c.WithField("err", err).Warn("ens.ReverseResolve failed")
	} else if name != "" {
		label = name
	}
	return &Wallet{Connected: true, Account: account, Label: label}
}
