package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/JeffreyEssien/cms/internal/infra/config"
)

// Mode selects the connection lifecycle for the Connector.
type Mode string

const (
	// ModeShared dials once and reuses the client across acquisitions.
	ModeShared Mode = "shared"
	// ModePerCall dials a fresh client per acquisition; the release
	// function disconnects it.
	ModePerCall Mode = "per-call"
)

const defaultConnectTimeout = 10 * time.Second

// Connector hands out database handles under an explicit lifecycle mode,
// replacing an implicit environment-gated cached connection. Acquisition
// failure is surfaced to callers independently of business-logic failures.
type Connector struct {
	cfg  config.MongoSettings
	log  *zap.Logger
	mode Mode

	mu     sync.Mutex
	shared *mongo.Client
}

// NewConnector validates settings and builds a connector. No connection is
// dialed until the first acquisition.
func NewConnector(cfg config.MongoSettings, log *zap.Logger) (*Connector, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("mongo uri is required")
	}
	if cfg.Database == "" {
		return nil, fmt.Errorf("mongo database name is required")
	}

	mode := Mode(cfg.Mode)
	switch mode {
	case "":
		mode = ModeShared
	case ModeShared, ModePerCall:
	default:
		return nil, fmt.Errorf("unknown mongo mode %q", cfg.Mode)
	}

	if log == nil {
		log = zap.NewNop()
	}

	return &Connector{cfg: cfg, log: log, mode: mode}, nil
}

// Acquire returns a database handle and a release function. In shared mode
// the release is a no-op; in per-call mode it disconnects the client.
func (c *Connector) Acquire(ctx context.Context) (*mongo.Database, func(), error) {
	if c.mode == ModePerCall {
		client, err := c.dial(ctx)
		if err != nil {
			return nil, nil, err
		}
		release := func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), defaultConnectTimeout)
			defer cancel()
			if err := client.Disconnect(disconnectCtx); err != nil {
				c.log.Warn("disconnect mongo client", zap.Error(err))
			}
		}
		return client.Database(c.cfg.Database), release, nil
	}

	client, err := c.sharedClient(ctx)
	if err != nil {
		return nil, nil, err
	}
	return client.Database(c.cfg.Database), func() {}, nil
}

// Ping verifies connectivity for readiness checks.
func (c *Connector) Ping(ctx context.Context) error {
	db, release, err := c.Acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	if err := db.Client().Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo ping failed: %w", err)
	}
	return nil
}

// Close disconnects the shared client, if one was dialed.
func (c *Connector) Close(ctx context.Context) error {
	c.mu.Lock()
	client := c.shared
	c.shared = nil
	c.mu.Unlock()

	if client == nil {
		return nil
	}

	c.log.Info("closing mongo connection")
	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect mongo: %w", err)
	}
	return nil
}

func (c *Connector) sharedClient(ctx context.Context) (*mongo.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.shared != nil {
		return c.shared, nil
	}

	client, err := c.dial(ctx)
	if err != nil {
		return nil, err
	}

	c.log.Info("connected to mongo",
		zap.String("database", c.cfg.Database),
		zap.String("mode", string(c.mode)),
	)

	c.shared = client
	return client, nil
}

func (c *Connector) dial(ctx context.Context) (*mongo.Client, error) {
	timeout := c.cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	opts := options.Client().
		ApplyURI(c.cfg.URI).
		SetConnectTimeout(timeout)
	if c.cfg.MaxPoolSize > 0 {
		opts = opts.SetMaxPoolSize(c.cfg.MaxPoolSize)
	}

	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(dialCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(dialCtx, readpref.Primary()); err != nil {
		disconnectCtx, cancelDisconnect := context.WithTimeout(context.Background(), timeout)
		defer cancelDisconnect()
		_ = client.Disconnect(disconnectCtx)
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}

	return client, nil
}
