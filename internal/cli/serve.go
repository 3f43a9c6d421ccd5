package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/logger"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai"
	infra "resume-builder/pkg/infrastructure"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), e)
		},
	}
	cmd.Flags().IntP("port", "p", 3000, "listen port")
	_ = e.v.BindPFlag("port", cmd.Flags().Lookup("port"))
	return cmd
}

func serve(ctx context.Context, e *env) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, log, err := e.load()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	aiCfg, err := cfg.Completion()
	if err != nil {
		return err
	}
	completer, err := ai.New(ctx, aiCfg, log)
	if err != nil {
		return err
	}
	if aiCfg.APIKey == "" {
		log.Warn("no api key configured; generation requests will fail", zap.String(logger.FieldProvider, completer.Provider()))
	}

	renderer := infra.NewChromedpRenderer(cfg.Export.ChromePath, cfg.Export.Timeout, log.Named("export"))
	builder := usecase.NewBuilder(
		repo.NewSessionsRepo(),
		usecase.NewGenerator(completer, log.Named("generate")),
		renderer,
		log,
	)
	app := httpadapter.NewApp(httpadapter.NewHandler(builder, log), log.Named("http"))

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.Addr())
	}()
	fields := append([]zap.Field{
		zap.String("version", version),
		zap.String("addr", cfg.Addr()),
	}, logger.ProviderFields(completer.Provider(), completer.Model())...)
	log.Info("starting the resume-builder", fields...)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
