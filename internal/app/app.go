// Package app assembles the client from configuration: persistence backend,
// state store, API client and services.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/nikolayk812/storefront-client/internal/apiclient"
	"github.com/nikolayk812/storefront-client/internal/config"
	"github.com/nikolayk812/storefront-client/internal/kvstore"
	"github.com/nikolayk812/storefront-client/internal/logging"
	"github.com/nikolayk812/storefront-client/internal/port"
	"github.com/nikolayk812/storefront-client/internal/repository"
	"github.com/nikolayk812/storefront-client/internal/service"
	"github.com/nikolayk812/storefront-client/internal/store"
	"github.com/sirupsen/logrus"
)

type App struct {
	Log     *logrus.Logger
	KV      port.KeyValueStore
	Store   *store.Store
	API     *apiclient.Client
	Service *service.Cart

	closers []func() error
}

// Open builds every component and restores the persisted state. The store
// is ready when Open returns.
func Open(ctx context.Context, cfg config.Config, logOut io.Writer) (_ *App, err error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("cfg.Validate: %w", err)
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, logOut)
	if err != nil {
		return nil, fmt.Errorf("logging.New: %w", err)
	}

	cur, err := cfg.Currency()
	if err != nil {
		return nil, fmt.Errorf("cfg.Currency: %w", err)
	}

	a := &App{Log: log}
	defer func() {
		if err != nil {
			err = errors.Join(err, a.Close())
		}
	}()

	a.KV, err = a.openKV(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("openKV: %w", err)
	}

	repo, err := repository.NewState(a.KV)
	if err != nil {
		return nil, fmt.Errorf("repository.NewState: %w", err)
	}

	a.Store, err = store.New(repo,
		store.WithLogger(log),
		store.WithCurrency(cur),
		store.WithWriteTimeout(cfg.Store.WriteTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("store.New: %w", err)
	}
	a.closers = append(a.closers, func() error {
		a.Store.Close()
		return nil
	})

	a.API, err = apiclient.New(cfg.API.BaseURL,
		apiclient.WithTimeout(cfg.API.Timeout),
		apiclient.WithSigner(apiclient.NewBearerSigner(a.Store)),
		apiclient.WithCurrency(cur),
		apiclient.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("apiclient.New: %w", err)
	}

	a.Service, err = service.NewCart(a.Store, a.API, log)
	if err != nil {
		return nil, fmt.Errorf("service.NewCart: %w", err)
	}

	if err := a.Store.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("store.Initialize: %w", err)
	}

	log.WithField("storage", cfg.Storage.Driver).Info("client ready")
	return a, nil
}

func (a *App) openKV(ctx context.Context, cfg config.StorageConfig) (port.KeyValueStore, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return kvstore.NewMemory(), nil

	case config.DriverSQLite:
		kv, err := kvstore.OpenSQLite(ctx, cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("kvstore.OpenSQLite: %w", err)
		}
		a.closers = append(a.closers, kv.Close)
		return kv, nil

	case config.DriverPostgres:
		kv, pool, err := kvstore.OpenPostgres(ctx, cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("kvstore.OpenPostgres: %w", err)
		}
		a.closers = append(a.closers, func() error {
			pool.Close()
			return nil
		})
		return kv, nil

	case config.DriverRedis:
		kv, err := kvstore.OpenRedis(ctx, cfg.Addr, cfg.KeyPrefix)
		if err != nil {
			return nil, fmt.Errorf("kvstore.OpenRedis: %w", err)
		}
		a.closers = append(a.closers, kv.Close)
		return kv, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// Close flushes pending writes and releases the backend, in reverse order of opening.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
