package cli

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/mamdani"
	"github.com/aretw0/mamdani/pkg/adapters/file"
	"github.com/aretw0/mamdani/pkg/adapters/redis"
	"github.com/aretw0/mamdani/pkg/observability"
	"github.com/aretw0/mamdani/pkg/ports"
)

// CreateEngine initializes an engine with standard CLI conventions.
func CreateEngine(opts Options, logger *slog.Logger, extra ...mamdani.Option) (*mamdani.Engine, error) {
	engineOpts := []mamdani.Option{
		mamdani.WithLogger(logger),
		mamdani.WithLifecycleHooks(observability.LogHooks(logger)),
	}
	if opts.Concurrency > 0 {
		engineOpts = append(engineOpts, mamdani.WithConcurrency(opts.Concurrency))
	}

	store, err := CreateStore(opts)
	if err != nil {
		return nil, err
	}
	if store != nil {
		engineOpts = append(engineOpts, mamdani.WithRecordStore(store))
	}
	engineOpts = append(engineOpts, extra...)

	engine, err := mamdani.New(opts.ConfigPath, engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, nil
}

// CreateStore returns the record store selected by opts, or nil when persistence is off.
func CreateStore(opts Options) (ports.RecordStore, error) {
	switch {
	case opts.RedisAddr != "":
		var storeOpts []redis.Option
		if opts.RecordTTL != "" {
			ttl, err := time.ParseDuration(opts.RecordTTL)
			if err != nil {
				return nil, fmt.Errorf("invalid record TTL: %w", err)
			}
			storeOpts = append(storeOpts, redis.WithTTL(ttl))
		}
		return redis.New(opts.RedisAddr, "", 0, storeOpts...), nil
	case opts.RecordsDir != "":
		return file.NewStore(opts.RecordsDir), nil
	}
	return nil, nil
}

// CloseStore releases the engine's record store when it holds a connection.
func CloseStore(engine *mamdani.Engine) error {
	if closer, ok := engine.Store().(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
