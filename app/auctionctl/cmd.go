package main

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/xerrors"

	"github.com/zkzk-trade/goapi/app/gateway"
	"github.com/zkzk-trade/goapi/base/ctx"
	"github.com/zkzk-trade/goapi/base/validator"
	"github.com/zkzk-trade/goapi/domain"
	"github.com/zkzk-trade/goapi/domain/auction"
)

// loader builds the usecase once flags are parsed, release frees what it opened
type loader func(c ctx.Ctx, configFile string) (uc auction.UseCase, release func(), err error)

func loadGateway(c ctx.Ctx, configFile string) (auction.UseCase, func(), error) {
	if err := gateway.LoadConfig(configFile); err != nil {
		return nil, nil, err
	}
	g, err := gateway.New(c)
	if err != nil {
		return nil, nil, err
	}
	return g.Auction, g.Close, nil
}

type cli struct {
	load    loader
	now     func() time.Time
	uc      auction.UseCase
	release func()
}

// newRootCmd returns the command tree and a func releasing what the run opened
func newRootCmd(load loader, now func() time.Time) (*cobra.Command, func()) {
	app := &cli{load: load, now: now}
	var configFile string

	root := &cobra.Command{
		Use:          "auctionctl",
		Short:        "Trade domains on the ZKZK.trade auction contract",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			uc, release, err := app.load(ctx.From(cmd.Context()), configFile)
			if err != nil {
				return err
			}
			app.uc, app.release = uc, release
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configFile, "config", gateway.DefaultConfigFile, "path of the yaml config")

	root.AddCommand(
		app.connectCmd(),
		app.listCmd(),
		app.showCmd(),
		app.biddersCmd(),
		app.collectionsCmd(),
		app.createCmd(),
		app.priceCmd(),
		app.offerCmd(),
		app.buyCmd(),
		app.bidCmd(),
		app.claimCmd(),
	)
	return root, func() {
		if app.release != nil {
			app.release()
		}
	}
}

func (app *cli) context(cmd *cobra.Command) ctx.Ctx {
	return ctx.WithValue(ctx.From(cmd.Context()), "cmd", cmd.Name())
}

// session authorizes the wallet, the terminal user is present to unlock it
func (app *cli) session(c ctx.Ctx) error {
	_, err := app.uc.ConnectWallet(c)
	return err
}

func output(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseDomain(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 0 {
		return 0, xerrors.Errorf("domain %q: %w", arg, domain.ErrBadParamInput)
	}
	return id, nil
}

func validate(p interface{}) error {
	if err := validator.New().Struct(p); err != nil {
		return xerrors.Errorf("%v: %w", err, domain.ErrBadParamInput)
	}
	return nil
}

func (app *cli) connectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect",
		Short: "Authorize the wallet and show the connected account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := app.uc.ConnectWallet(app.context(cmd))
			if err != nil {
				return err
			}
			return output(cmd, map[string]interface{}{
				"account": account,
				"label":   auction.Truncate(string(account), 8, 8, 11),
			})
		},
	}
}

func (app *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the live market",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := app.context(cmd)
			if err := app.session(c); err != nil {
				return err
			}
			res, err := app.uc.LoadAuctions(c)
			if err != nil {
				return err
			}
			return output(cmd, auction.ToCards(res, false, app.now()))
		},
	}
}

func (app *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <domain>",
		Short: "Show one auction with its bids",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseDomain(args[0])
			if err != nil {
				return err
			}
			c := app.context(cmd)
			if err := app.session(c); err != nil {
				return err
			}
			item, err := app.uc.LoadAuction(c, id)
			if err != nil {
				return err
			}
			bidders, err := app.uc.GetBidders(c, id)
			if err != nil {
				return err
			}
			return output(cmd, map[string]interface{}{
				"auction": auction.ToCard(item, false, app.now()),
				"bidders": bidders,
			})
		},
	}
}

func (app *cli) biddersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bidders <domain>",
		Short: "List bids on an auction, highest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseDomain(args[0])
			if err != nil {
				return err
			}
			c := app.context(cmd)
			if err := app.session(c); err != nil {
				return err
			}
			bidders, err := app.uc.GetBidders(c, id)
			if err != nil {
				return err
			}
			return output(cmd, bidders)
		},
	}
}

func (app *cli) collectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "collections",
		Short: "List the domains of the connected account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := app.context(cmd)
			if err := app.session(c); err != nil {
				return err
			}
			res, err := app.uc.LoadCollections(c)
			if err != nil {
				return err
			}
			return output(cmd, auction.ToCards(res, true, app.now()))
		},
	}
}

// write runs a state changing operation after authorizing the wallet
func (app *cli) write(cmd *cobra.Command, p interface{}, fn func(c ctx.Ctx) error) error {
	if err := validate(p); err != nil {
		return err
	}
	c := app.context(cmd)
	if err := app.session(c); err != nil {
		return err
	}
	if err := fn(c); err != nil {
		return err
	}
	return output(cmd, map[string]interface{}{"status": "success", "params": p})
}

func (app *cli) createCmd() *cobra.Command {
	p := &auction.CreateParams{}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Mint a domain and put it on the market",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.write(cmd, p, func(c ctx.Ctx) error {
				return app.uc.CreateAuction(c, p)
			})
		},
	}
	cmd.Flags().StringVar(&p.Name, "name", "", "domain name")
	cmd.Flags().StringVar(&p.Description, "description", "", "description")
	cmd.Flags().StringVar(&p.Price, "price", "", "price in ETH")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("price")
	return cmd
}

func (app *cli) priceCmd() *cobra.Command {
	p := &auction.UpdatePriceParams{}
	cmd := &cobra.Command{
		Use:   "price <domain>",
		Short: "Change the price of an owned domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if p.Domain, err = parseDomain(args[0]); err != nil {
				return err
			}
			return app.write(cmd, p, func(c ctx.Ctx) error {
				return app.uc.UpdatePrice(c, p)
			})
		},
	}
	cmd.Flags().StringVar(&p.Price, "price", "", "new price in ETH")
	_ = cmd.MarkFlagRequired("price")
	return cmd
}

func (app *cli) offerCmd() *cobra.Command {
	p := &auction.OfferParams{}
	cmd := &cobra.Command{
		Use:   "offer <domain>",
		Short: "List an owned domain, for sale or for bids",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if p.Domain, err = parseDomain(args[0]); err != nil {
				return err
			}
			return app.write(cmd, p, func(c ctx.Ctx) error {
				return app.uc.OfferItemOnMarket(c, p)
			})
		},
	}
	cmd.Flags().BoolVar(&p.Biddable, "biddable", false, "accept bids instead of a fixed price")
	cmd.Flags().Int64Var(&p.Sec, "sec", 0, "seconds of the bidding window")
	cmd.Flags().Int64Var(&p.Min, "min", 0, "minutes of the bidding window")
	cmd.Flags().Int64Var(&p.Hour, "hour", 0, "hours of the bidding window")
	cmd.Flags().Int64Var(&p.Day, "day", 0, "days of the bidding window")
	return cmd
}

func (app *cli) tradeCmd(use, short string, fn func(c ctx.Ctx, p *auction.TradeParams) error) *cobra.Command {
	p := &auction.TradeParams{}
	cmd := &cobra.Command{
		Use:   use + " <domain>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if p.Domain, err = parseDomain(args[0]); err != nil {
				return err
			}
			return app.write(cmd, p, func(c ctx.Ctx) error {
				return fn(c, p)
			})
		},
	}
	cmd.Flags().StringVar(&p.Price, "price", "", "amount sent in ETH")
	_ = cmd.MarkFlagRequired("price")
	return cmd
}

func (app *cli) buyCmd() *cobra.Command {
	return app.tradeCmd("buy", "Buy a fixed price domain", func(c ctx.Ctx, p *auction.TradeParams) error {
		return app.uc.BuyItem(c, p)
	})
}

func (app *cli) bidCmd() *cobra.Command {
	return app.tradeCmd("bid", "Bid on a domain", func(c ctx.Ctx, p *auction.TradeParams) error {
		return app.uc.PlaceBid(c, p)
	})
}

func (app *cli) claimCmd() *cobra.Command {
	p := &auction.ClaimParams{}
	cmd := &cobra.Command{
		Use:   "claim <domain>",
		Short: "Claim a won domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if p.Domain, err = parseDomain(args[0]); err != nil {
				return err
			}
			return app.write(cmd, p, func(c ctx.Ctx) error {
				return app.uc.ClaimPrize(c, p)
			})
		},
	}
	cmd.Flags().Int64Var(&p.Id, "id", 0, "index of the winning bid")
	return cmd
}
