package mongoclient

import (
	"context"
	"crypto/tls"
	"runtime"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/x-xyz/auctionhouse/base/log"
)

const (
	mgSocketTimeout  = 60 * time.Second
	mgConnectTimeout = 10 * time.Second
)

// Config is the `mongo` config section
type Config struct {
	URI        string `mapstructure:"uri"`
	AuthDBName string `mapstructure:"authDBName"`
	DbName     string `mapstructure:"dbName"`
	EnableSSL  bool   `mapstructure:"enableSSL"`
	// SetSafe makes writes and transaction reads wait for a replica set majority
	SetSafe bool `mapstructure:"setSafe"`
	// PoolSizeMultiplier scales the pool by cpu count, 1 when unset
	PoolSizeMultiplier float64 `mapstructure:"poolSizeMultiplier"`
}

// Client wraps mongo.Client
type Client struct {
	DbName string
	*mongo.Client
}

// MustConnectMongoClient returns MongoDB connection client if connected successfully, or it will trigger panic
func MustConnectMongoClient(cfg Config) *Client {
	cli, err := ConnectMongoClient(cfg)
	if err != nil {
		log.Log().WithFields(log.Fields{"dbName": cfg.DbName, "err": err}).Panic("fail to dial Mongo")
	}
	return cli
}

func poolSize(multiplier float64, hosts int) uint64 {
	if multiplier <= 0 {
		multiplier = 1
	}
	if hosts < 1 {
		hosts = 1
	}
	total := int(float64(runtime.NumCPU()) * multiplier)
	// each host has its own pool, split the total between them
	size := (total + hosts - 1) / hosts
	if size < 1 {
		size = 1
	}
	return uint64(size)
}

// ConnectMongoClient returns mongo driver client
func ConnectMongoClient(cfg Config) (*Client, error) {
	connSetting, err := connstring.Parse(cfg.URI)
	if err != nil {
		// the uri may carry credentials, keep it out of the log
		log.Log().WithFields(log.Fields{"dbName": cfg.DbName, "err": err}).Error("fail to parse connstring")
		return nil, err
	}
	logger := log.Log().WithFields(log.Fields{"mongoHosts": connSetting.Hosts, "dbName": cfg.DbName})

	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetSocketTimeout(mgSocketTimeout).
		SetConnectTimeout(mgConnectTimeout).
		SetRetryWrites(true)

	// If AuthSource is not set in connstring, set it to AuthDBName
	if connSetting.Username != "" && connSetting.AuthSource == "" {
		clientOpts.SetAuth(options.Credential{
			AuthMechanism:           connSetting.AuthMechanism,
			AuthMechanismProperties: connSetting.AuthMechanismProperties,
			Username:                connSetting.Username,
			Password:                connSetting.Password,
			PasswordSet:             connSetting.PasswordSet,
			AuthSource:              cfg.AuthDBName,
		})
	}

	size := poolSize(cfg.PoolSizeMultiplier, len(connSetting.Hosts))
	clientOpts.SetMinPoolSize(size / 4).SetMaxPoolSize(size)
	logger.WithField("poolSize", size).Info("mongo driver pool size")

	if cfg.EnableSSL {
		clientOpts.SetTLSConfig(&tls.Config{})
	}

	if cfg.SetSafe {
		clientOpts.SetWriteConcern(writeconcern.New(writeconcern.WMajority()))
		clientOpts.SetReadConcern(readconcern.Majority())
	}

	ctx, cancel := context.WithTimeout(context.Background(), mgConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		logger.WithField("err", err).Error("fail to connect mongo db")
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.WithField("err", err).Error("fail to ping mongo primary")
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.Info("mongo connected")
	return &Client{
		Client: client,
		DbName: cfg.DbName,
	}, nil
}
