package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/x-xyz/auctionhouse/app/bootstrap"
	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/log"
	bValidator "github.com/x-xyz/auctionhouse/base/validator"
	"github.com/x-xyz/auctionhouse/domain/activity"
	mmiddleware "github.com/x-xyz/auctionhouse/middleware"
	"github.com/x-xyz/auctionhouse/service/discord"
	activity_delivery "github.com/x-xyz/auctionhouse/stores/activity/delivery/http"
	allowlist_delivery "github.com/x-xyz/auctionhouse/stores/allowlist/delivery/http"
	auction_delivery "github.com/x-xyz/auctionhouse/stores/auction/delivery/http"
	auth_delivery "github.com/x-xyz/auctionhouse/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/auctionhouse/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/x-xyz/auctionhouse/stores/auth/usecase"
	hc_delivery "github.com/x-xyz/auctionhouse/stores/healthcheck/delivery/http"
	item_delivery "github.com/x-xyz/auctionhouse/stores/item/delivery/http"
	params_delivery "github.com/x-xyz/auctionhouse/stores/params/delivery/http"
	vault_delivery "github.com/x-xyz/auctionhouse/stores/vault/delivery/http"

	_ "github.com/x-xyz/auctionhouse/app/api/docs"
)

func init() {
	pflag.String("config", `infra/configs/config.yaml`, "path of the yaml config")
	pflag.Parse()
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		panic(err)
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(viper.GetString("config"))
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
		viper.SetDefault("log.level", "debug")
	}
	if lvl := viper.GetString("log.level"); lvl != "" {
		if err := log.SetLevel(lvl); err != nil {
			log.Log().WithFields(log.Fields{"level": lvl, "err": err}).Warn("invalid log.level, keeping info")
		}
	}
}

func discordSinks(c ctx.Ctx) []activity.Sink {
	botKey := viper.GetString("discord.botKey")
	if len(botKey) == 0 {
		return nil
	}
	types := []activity.EventType{}
	for _, t := range viper.GetStringSlice("discord.types") {
		types = append(types, activity.EventType(t))
	}
	sink, err := discord.NewSink(discord.Config{
		BotKey:    botKey,
		ChannelId: viper.GetString("discord.channelId"),
		Types:     types,
	})
	if err != nil {
		c.WithField("err", err).Warn("discord.NewSink failed, running without discord")
		return nil
	}
	return []activity.Sink{sink}
}

//	@title			Auction House API
//	@version		1.0
//	@description	Sequential auctions with escrowed bids.

// main
//
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description				retrieve token from #/auth/post_auth_login and apply with `bearer {token}`
func main() {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.AddContext())
	e.Use(middL.ResponseLogger())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	engine, err := bootstrap.New(context, discordSinks(context)...)
	if err != nil {
		context.WithField("err", err).Panic("bootstrap.New failed")
	}

	signatureMsg := viper.GetString("auth.signatureMsg")
	auth := auth_usecase.New(&auth_usecase.AuthUseCaseCfg{
		JwtSecret:          viper.GetString("auth.jwtSecret"),
		SigningMsgTemplate: signatureMsg,
		Nonces:             engine.Nonces,
	})
	authMiddleware := auth_middleware.New(auth, engine.Params)

	var listCache echo.MiddlewareFunc = func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	if ttl := viper.GetDuration("cache.listTtl"); ttl > 0 {
		listCache = mmiddleware.CacheHttp(engine.Cache, ttl)
	}

	hc_delivery.New(e, engine.HealthCheck)
	auth_delivery.New(e, auth, signatureMsg)
	auction_delivery.New(e, engine.Auction, authMiddleware, listCache)
	allowlist_delivery.New(e, engine.AllowList, authMiddleware)
	item_delivery.New(e, engine.Items, authMiddleware)
	params_delivery.New(e, engine.Params, authMiddleware)
	activity_delivery.New(e, engine.Activity)
	vault_delivery.New(e, engine.Vault)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
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
