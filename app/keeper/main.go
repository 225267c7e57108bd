package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/auctionhouse/app/bootstrap"
	bCtx "github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/goroutine"
	"github.com/x-xyz/auctionhouse/base/keeper"
	"github.com/x-xyz/auctionhouse/base/log"
)

func init() {
	pflag.String("config", `infra/configs/keeper/config.yaml`, "path of the yaml config")
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

func main() {
	ctx, cancel := bCtx.WithCancel(bCtx.Background())

	engine, err := bootstrap.New(ctx)
	if err != nil {
		ctx.WithField("err", err).Panic("bootstrap.New failed")
	}

	keeperInfo := viper.Sub("keeper")
	cfg := &keeper.SettlerCfg{
		Auction:      engine.Auction,
		Batch:        keeperInfo.GetInt("batch"),
		Workers:      keeperInfo.GetInt("workers"),
		Interval:     keeperInfo.GetDuration("interval"),
		RetryLimit:   keeperInfo.GetInt("retryLimit"),
		BackoffStart: keeperInfo.GetDuration("backoffStart"),
		BackoffLimit: keeperInfo.GetDuration("backoffLimit"),
	}
	ctx.WithFields(log.Fields{
		"batch":    cfg.Batch,
		"workers":  cfg.Workers,
		"interval": cfg.Interval,
	}).Info("config")

	panicCh := goroutine.RecoverableGo(func() {
		settler := keeper.NewSettler(cfg)
		settler.Start(ctx)
		settler.Wait()
	}, goroutine.WithName("settler"))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-quit:
		log.Log().WithField("signal", sig).Info("received signal")
		cancel()
		<-panicCh
	case p, ok := <-panicCh:
		cancel()
		if ok {
			log.Log().WithField("panic", p.Panic).Error("settler stopped")
			os.Exit(1)
		}
	}
	log.Log().Info("keeper stopped")
}
