// Package bootstrap builds the auction engine and its collaborators from the viper config
// shared by the api and keeper binaries.
package bootstrap

import (
	"time"

	"github.com/spf13/viper"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/database/memtx"
	"github.com/x-xyz/auctionhouse/base/database/mongoclient"
	"github.com/x-xyz/auctionhouse/base/database/redisclient"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/base/metrics"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/activity"
	"github.com/x-xyz/auctionhouse/domain/allowlist"
	"github.com/x-xyz/auctionhouse/domain/auction"
	"github.com/x-xyz/auctionhouse/domain/healthcheck"
	"github.com/x-xyz/auctionhouse/domain/item"
	"github.com/x-xyz/auctionhouse/domain/keys"
	"github.com/x-xyz/auctionhouse/domain/ledger"
	"github.com/x-xyz/auctionhouse/domain/params"
	"github.com/x-xyz/auctionhouse/domain/vault"
	"github.com/x-xyz/auctionhouse/service/cache"
	"github.com/x-xyz/auctionhouse/service/cache/provider"
	"github.com/x-xyz/auctionhouse/service/cache/provider/compound"
	"github.com/x-xyz/auctionhouse/service/cache/provider/primitive"
	cacheRedis "github.com/x-xyz/auctionhouse/service/cache/provider/redis"
	"github.com/x-xyz/auctionhouse/service/lock"
	"github.com/x-xyz/auctionhouse/service/query"
	"github.com/x-xyz/auctionhouse/service/redis"
	activity_repository "github.com/x-xyz/auctionhouse/stores/activity/repository"
	activity_usecase "github.com/x-xyz/auctionhouse/stores/activity/usecase"
	allowlist_repository "github.com/x-xyz/auctionhouse/stores/allowlist/repository"
	allowlist_usecase "github.com/x-xyz/auctionhouse/stores/allowlist/usecase"
	auction_repository "github.com/x-xyz/auctionhouse/stores/auction/repository"
	auction_usecase "github.com/x-xyz/auctionhouse/stores/auction/usecase"
	hc_repository "github.com/x-xyz/auctionhouse/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/auctionhouse/stores/healthcheck/usecase"
	item_repository "github.com/x-xyz/auctionhouse/stores/item/repository"
	item_usecase "github.com/x-xyz/auctionhouse/stores/item/usecase"
	ledger_repository "github.com/x-xyz/auctionhouse/stores/ledger/repository"
	ledger_usecase "github.com/x-xyz/auctionhouse/stores/ledger/usecase"
	params_repository "github.com/x-xyz/auctionhouse/stores/params/repository"
	params_usecase "github.com/x-xyz/auctionhouse/stores/params/usecase"
	vault_repository "github.com/x-xyz/auctionhouse/stores/vault/repository"
	vault_usecase "github.com/x-xyz/auctionhouse/stores/vault/usecase"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

type Engine struct {
	Auction     auction.Usecase
	Ledger      ledger.Usecase
	Items       item.Usecase
	AllowList   allowlist.Usecase
	Params      params.Usecase
	Vault       vault.Usecase
	Activity    activity.Usecase
	HealthCheck healthcheck.Usecase

	// Redis is nil when running on the memory driver
	Redis redis.Service
	// Cache backs the highest bid cache and the http response cache
	Cache provider.Provider
	// Nonces holds login nonces, which every replica must see
	Nonces provider.Provider
}

type repos struct {
	tx          domain.TxRunner
	auctions    auction.Repo
	configs     auction.ConfigRepo
	settlements auction.SettlementRepo
	balances    ledger.Repo
	items       item.Repo
	transfers   vault.Repo
	params      params.Repo
	allowList   allowlist.Repo
	activities  activity.Repo
	mgoClient   *mongoclient.Client
}

func memoryRepos() *repos {
	auctions := auction_repository.NewMemory()
	configs := auction_repository.NewMemoryConfig()
	settlements := auction_repository.NewMemorySettlement()
	balances := ledger_repository.NewMemory()
	items := item_repository.NewMemory()
	transfers := vault_repository.NewMemory()
	ps := params_repository.NewMemory()
	allowList := allowlist_repository.NewMemory()

	return &repos{
		tx:          memtx.New(auctions, configs, settlements, balances, items, transfers, ps, allowList),
		auctions:    auctions,
		configs:     configs,
		settlements: settlements,
		balances:    balances,
		items:       items,
		transfers:   transfers,
		params:      ps,
		allowList:   allowList,
		activities:  activity_repository.NewMemory(),
	}
}

// mongoIndexes backs every filter and sort the repositories issue. Unique keys
// turn a racing create into ErrDuplicateKey.
var mongoIndexes = map[domain.Table][]query.Index{
	domain.TableAuctions: {
		{Keys: []string{"itemId"}, Unique: true},
		{Keys: []string{"endTime"}},
	},
	domain.TableAuctionConfigs: {{Keys: []string{"itemId"}, Unique: true}},
	domain.TableItems:          {{Keys: []string{"itemId"}, Unique: true}},
	domain.TableBalances:       {{Keys: []string{"account"}, Unique: true}},
	domain.TableAllowList:      {{Keys: []string{"address"}, Unique: true}},
	domain.TableSettlements:    {{Keys: []string{"itemId", "-settledAt"}}},
	domain.TableVaultTransfers: {{Keys: []string{"account", "-createdAt"}}},
	domain.TableActivities: {
		{Keys: []string{"-time"}},
		{Keys: []string{"itemId", "-time"}},
		{Keys: []string{"account", "-time"}},
		{Keys: []string{"type", "-time"}},
	},
}

func mongoRepos(c ctx.Ctx) *repos {
	c.Info("init mongo")
	cfg := mongoclient.Config{SetSafe: true, PoolSizeMultiplier: 2}
	if err := viper.UnmarshalKey("mongo", &cfg); err != nil {
		c.WithField("err", err).Panic("invalid mongo config")
	}
	mgoClient := mongoclient.MustConnectMongoClient(cfg)
	checkIndex := viper.GetBool("mongo.checkIndex")
	if checkIndex {
		c.Warn("mongo.checkIndex is on, every mutation will fail with no transaction")
	}
	q := query.New(mgoClient, checkIndex)
	for table, indexes := range mongoIndexes {
		if err := q.EnsureIndex(c, table, indexes...); err != nil {
			c.WithFields(log.Fields{"table": table, "err": err}).Panic("q.EnsureIndex failed")
		}
	}
	return &repos{
		tx:          q,
		auctions:    auction_repository.New(q),
		configs:     auction_repository.NewConfigRepo(q),
		settlements: auction_repository.NewSettlementRepo(q),
		balances:    ledger_repository.New(q),
		items:       item_repository.New(q),
		transfers:   vault_repository.New(q),
		params:      params_repository.New(q),
		allowList:   allowlist_repository.New(q),
		activities:  activity_repository.New(q),
		mgoClient:   mgoClient,
	}
}

func connectRedis(c ctx.Ctx) redis.Service {
	c.Info("init redis")
	name := viper.GetString("redis.name")
	cfg := redisclient.Config{Retries: 3}
	if err := viper.UnmarshalKey("redis", &cfg); err != nil {
		c.WithField("err", err).Panic("invalid redis config")
	}
	pool := redisclient.MustConnectRedis(cfg)
	return redis.New(name, metrics.New(name), &redis.Pools{Src: pool})
}

// InitParams reads the engine.* keys. They only take effect on a store without params.
func InitParams(c ctx.Ctx, u params.Usecase) error {
	minimumBid, err := domain.ParseAmount(viper.GetString("engine.minimumBid"))
	if err != nil {
		c.WithField("err", err).Error("invalid engine.minimumBid")
		return err
	}
	return u.Init(c, params.Params{
		EngineAddress: domain.Address(viper.GetString("engine.address")),
		MinimumBid:    minimumBid,
		FeeRate:       viper.GetString("engine.feeRate"),
		Admin:         domain.Address(viper.GetString("engine.admin")),
		Beneficiary:   domain.Address(viper.GetString("engine.beneficiary")),
		FeeRecipient:  domain.Address(viper.GetString("engine.feeRecipient")),
	})
}

// New wires the engine on the storage.driver store. With the memory driver every replica
// holds its own state, so it is meant for a single process.
func New(c ctx.Ctx, sinks ...activity.Sink) (*Engine, error) {
	var (
		r           *repos
		redisClient redis.Service
		locker      lock.Locker
	)

	sizeMb := viper.GetInt("cache.localSizeMb")
	if sizeMb <= 0 {
		sizeMb = 64
	}
	localCache := primitive.NewPrimitive("auctionhouse", sizeMb)
	cacheProvider, nonces := localCache, localCache

	switch driver := viper.GetString("storage.driver"); driver {
	case DriverMemory:
		r = memoryRepos()
		locker = lock.NewLocal()
	case DriverMongo, "":
		r = mongoRepos(c)
		redisClient = connectRedis(c)
		locker = lock.NewRedis(redisClient, lock.Config{
			Ttl:  viper.GetDuration("engine.lockTtl"),
			Wait: viper.GetDuration("engine.lockWait"),
		})
		remote := cacheRedis.NewRedis(redisClient)
		cacheProvider = compound.NewCompound([]provider.Provider{localCache, remote})
		nonces = remote
	default:
		c.WithField("driver", driver).Error("unknown storage.driver")
		return nil, domain.ErrBadParamInput
	}

	paramsUC := params_usecase.New(r.params)
	if err := InitParams(c, paramsUC); err != nil {
		c.WithField("err", err).Error("InitParams failed")
		return nil, err
	}

	activityUC := activity_usecase.New(r.activities, sinks...)
	allowListUC := allowlist_usecase.New(r.allowList, paramsUC)
	ledgerUC := ledger_usecase.New(r.balances)
	vaultUC := vault_usecase.New(r.transfers)
	itemUC := item_usecase.New(&item_usecase.ItemUseCaseCfg{
		Repo:      r.items,
		AllowList: allowListUC,
		Params:    paramsUC,
		Publisher: activityUC,
	})

	cacheTtl := viper.GetDuration("cache.ttl")
	if cacheTtl <= 0 {
		cacheTtl = 5 * time.Second
	}
	auctionUC := auction_usecase.New(&auction_usecase.AuctionUseCaseCfg{
		Tx:          r.tx,
		Locker:      locker,
		Registry:    auction_usecase.NewRegistry(r.auctions, paramsUC),
		Auctions:    r.auctions,
		Configs:     r.configs,
		Settlements: r.settlements,
		Ledger:      ledgerUC,
		Items:       itemUC,
		Vault:       vaultUC,
		Params:      paramsUC,
		Publisher:   activityUC,
		HighestBidCache: cache.New(cache.ServiceConfig{
			Ttl:   cacheTtl,
			Pfx:   keys.PfxHighestBid,
			Cache: cacheProvider,
		}),
	})

	return &Engine{
		Auction:     auctionUC,
		Ledger:      ledgerUC,
		Items:       itemUC,
		AllowList:   allowListUC,
		Params:      paramsUC,
		Vault:       vaultUC,
		Activity:    activityUC,
		HealthCheck: hc_usecase.New(hc_repository.New(r.mgoClient, redisClient), paramsUC),
		Redis:       redisClient,
		Cache:       cacheProvider,
		Nonces:      nonces,
	}, nil
}
