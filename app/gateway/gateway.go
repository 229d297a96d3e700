// Package gateway wires the services shared by the api server and the cli from viper settings.
package gateway

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/zkzk-trade/goapi/base/ctx"
	"github.com/zkzk-trade/goapi/base/database/redisclient"
	"github.com/zkzk-trade/goapi/base/log"
	"github.com/zkzk-trade/goapi/base/state"
	"github.com/zkzk-trade/goapi/domain/auction"
	"github.com/zkzk-trade/goapi/domain/keys"
	domainWallet "github.com/zkzk-trade/goapi/domain/wallet"
	"github.com/zkzk-trade/goapi/service/cache"
	"github.com/zkzk-trade/goapi/service/cache/provider"
	"github.com/zkzk-trade/goapi/service/cache/provider/compound"
	"github.com/zkzk-trade/goapi/service/cache/provider/primitive"
	redisCache "github.com/zkzk-trade/goapi/service/cache/provider/redis"
	"github.com/zkzk-trade/goapi/service/chain"
	"github.com/zkzk-trade/goapi/service/chain/contract"
	"github.com/zkzk-trade/goapi/service/ens"
	"github.com/zkzk-trade/goapi/service/toast"
	"github.com/zkzk-trade/goapi/service/wallet"
	auctionUsecase "github.com/zkzk-trade/goapi/stores/auction/usecase"
)

const DefaultConfigFile = "infra/configs/config.yaml"

// DefaultListingFee is the createAuction fee when auction.listingFee is unset
const DefaultListingFee = "0.02"

// LoadConfig reads the yaml config and overlays secrets from .env and the environment
func LoadConfig(file string) error {
	// .env is optional
	_ = godotenv.Load()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(file)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	_ = viper.BindEnv("wallet.privateKey", "WALLET_PRIVATE_KEY")
	_ = viper.BindEnv("wallet.passphrase", "WALLET_PASSPHRASE")

	viper.SetDefault("auction.listingFee", DefaultListingFee)
	viper.SetDefault("cache.sizeMB", 32)
	viper.SetDefault("cache.ttl", "30s")
	viper.SetDefault("toast.ttl", "10m")
	viper.SetDefault("workers.size", 8)

	if err := viper.ReadInConfig(); err != nil {
		return err
	}

	log.SetDebug(viper.GetBool("debug"))
	if viper.GetBool("debug") {
		log.Log().Info("Service RUN on DEBUG mode")
	}
	return nil
}

type Gateway struct {
	Store    *state.Store
	Chain    chain.Client
	Contract auction.Contract
	// Wallet is nil when neither a private key nor a keystore is configured
	Wallet  wallet.Provider
	Cache   provider.Provider
	Auction auction.UseCase
	Toast   *toast.Tracker
	Ens     ens.ENS

	cancel func()
}

// New builds every service. The wallet watcher runs until Close.
func New(c ctx.Ctx) (*Gateway, error) {
	g := &Gateway{Store: state.New()}

	c.Info("init chain client")
	chainService, err := chain.NewClient(c, &chain.ClientCfg{
		RpcUrl:           viper.GetString("chain.rpcUrl"),
		ChainId:          viper.GetInt64("chain.chainId"),
		ConfirmTimeout:   viper.GetDuration("chain.confirmTimeout"),
		MaxConcurrentRpc: viper.GetInt("chain.maxConcurrentRpc"),
	})
	if err != nil {
		return nil, err
	}
	g.Chain = chainService
	g.Contract = contract.NewAuction(chainService, common.HexToAddress(viper.GetString("auction.address")))

	c.Info("init cache")
	g.Cache, err = newCacheProvider(c)
	if err != nil {
		return nil, err
	}

	c.Info("init wallet")
	g.Wallet, err = wallet.NewFromConfig(c, wallet.Config{
		PrivateKey:  viper.GetString("wallet.privateKey"),
		KeystoreDir: viper.GetString("wallet.keystoreDir"),
		Passphrase:  viper.GetString("wallet.passphrase"),
	})
	if err != nil {
		return nil, err
	}

	listingFee, err := auction.ParseEther(viper.GetString("auction.listingFee"))
	if err != nil {
		c.WithField("err", err).Error("invalid auction.listingFee")
		return nil, err
	}

	g.Auction = auctionUsecase.NewAuction(auctionUsecase.Config{
		Contract: g.Contract,
		Wallet:   g.walletProvider(),
		Store:    g.Store,
		Cache: cache.New(cache.ServiceConfig{
			Ttl:   viper.GetDuration("cache.ttl"),
			Pfx:   keys.PfxAuction,
			Cache: g.Cache,
		}),
		ListingFee: listingFee,
	})

	g.Toast = toast.New(toast.Config{
		Ttl:     viper.GetDuration("toast.ttl"),
		Workers: viper.GetInt("workers.size"),
	}, primitive.NewPrimitive("toast", 8), g.Store)

	g.Ens, err = ens.New(c, viper.GetString("ens.rpcUrl"), g.Cache)
	if err != nil {
		return nil, err
	}

	watchCtx, cancel := ctx.WithCancel(ctx.Detach(c))
	g.cancel = cancel
	if g.Wallet != nil {
		wallet.NewWatcher(chainService, g.Wallet, viper.GetDuration("wallet.watchInterval")).Start(watchCtx)
	}
	return g, nil
}

// walletProvider keeps an unset wallet a nil interface for the usecase
func (g *Gateway) walletProvider() domainWallet.Provider {
	if g.Wallet == nil {
		return nil
	}
	return g.Wallet
}

func newCacheProvider(c ctx.Ctx) (provider.Provider, error) {
	local := primitive.NewPrimitive("auction", viper.GetInt("cache.sizeMB"))

	uri := viper.GetString("redis_cache.uri")
	if uri == "" {
		return local, nil
	}

	c.WithField("uri", uri).Info("init redis cache")
	pool, err := redisclient.ConnectRedis(uri, viper.GetString("redis_cache.password"), redisclient.RedisParam{
		PoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
		Retry:          true,
	})
	if err != nil {
		c.WithField("err", err).Error("redisclient.ConnectRedis failed")
		return nil, err
	}
	return compound.NewCompound([]provider.Provider{
		local,
		redisCache.NewRedis("redis_cache", pool),
	}), nil
}

func (g *Gateway) Close() {
	if g.cancel != nil {
		g.cancel()
	}
	if g.Toast != nil {
		g.Toast.Close()
	}
	if g.Wallet != nil {
		if err := g.Wallet.Close(); err != nil {
			log.Log().WithField("err", err).Warn("wallet.Close failed")
		}
	}
}
