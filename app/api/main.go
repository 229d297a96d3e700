package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/zkzk-trade/goapi/app/gateway"
	"github.com/zkzk-trade/goapi/base/ctx"
	"github.com/zkzk-trade/goapi/base/log"
	bValidator "github.com/zkzk-trade/goapi/base/validator"
	mmiddleware "github.com/zkzk-trade/goapi/middleware"
	auction_delivery "github.com/zkzk-trade/goapi/stores/auction/delivery/http"
	hc_delivery "github.com/zkzk-trade/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/zkzk-trade/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/zkzk-trade/goapi/stores/healthcheck/usecase"
	state_delivery "github.com/zkzk-trade/goapi/stores/state/delivery/ws"
	wallet_delivery "github.com/zkzk-trade/goapi/stores/wallet/delivery/http"
)

var configFile = flag.String("config", gateway.DefaultConfigFile, "path of the yaml config")

func init() {
	flag.Parse()
	if err := gateway.LoadConfig(*configFile); err != nil {
		panic(err)
	}
}

func main() {
	defer log.Sync()

	// init echo
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.AddContext())
	e.Use(middL.ResponseLogger())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(bValidator.New())

	context := ctx.Background()

	g, err := gateway.New(context)
	if err != nil {
		context.WithField("err", err).Panic("gateway.New failed")
	}
	defer g.Close()

	// restore the session of an already authorized wallet, like a page load would
	if _, err := g.Auction.IsWalletConnected(context); err != nil {
		context.WithField("err", err).Warn("IsWalletConnected failed")
	}

	hcRepo := hc_repo.New(g.Chain, g.Cache)
	hc_delivery.New(e, hc_usecase.New(hcRepo))
	wallet_delivery.New(e, g.Auction, g.Ens)
	auction_delivery.New(e, g.Auction, g.Toast)
	state_delivery.New(e, g.Store)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
