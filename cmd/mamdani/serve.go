package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/mamdani"
	"github.com/aretw0/mamdani/internal/cli"
	"github.com/aretw0/mamdani/pkg/observability"
)

var (
	servePort  int
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP inference server",
	Long: `Starts a REST API exposing fuzzification, inference and pipeline evaluation.
Evaluations are stored in redis when --redis (or MAMDANI_REDIS_ADDR) is set,
otherwise in --records when given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		metrics := observability.NewMetrics()
		engine, logger, err := setup(mamdani.WithLifecycleHooks(metrics.Hooks()))
		if err != nil {
			return err
		}
		defer func() {
			if err := cli.CloseStore(engine); err != nil {
				logger.Warn("failed to close record store", "error", err)
			}
		}()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return cli.Serve(ctx, engine, cli.ServeOptions{
			Addr:    fmt.Sprintf(":%d", servePort),
			Watch:   serveWatch,
			Metrics: metrics,
		}, logger)
	},
}

func init() {
	f := serveCmd.Flags()
	f.IntVarP(&servePort, "port", "p", 8080, "Port to listen on")
	f.BoolVarP(&serveWatch, "watch", "w", false, "Reload the document when it changes on disk")
	f.StringVar(&opts.RedisAddr, "redis", cli.DefaultRedisAddr(), "Redis address for evaluation records")
	f.StringVar(&opts.RecordTTL, "record-ttl", "", "Expire redis records after this duration (e.g. 24h)")
	f.StringVar(&opts.RecordsDir, "records", "", "Directory for evaluation records when redis is not used")
	rootCmd.AddCommand(serveCmd)
}
