package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/kurochkinivan/damage_assessor/internal/config"
	v1 "github.com/kurochkinivan/damage_assessor/internal/controller/http/v1"
	"github.com/kurochkinivan/damage_assessor/internal/infrastructure/awsconfig"
	"github.com/kurochkinivan/damage_assessor/internal/infrastructure/bedrock"
	"github.com/kurochkinivan/damage_assessor/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/damage_assessor/internal/infrastructure/s3storage"
	"github.com/kurochkinivan/damage_assessor/internal/pipeline"
	"github.com/kurochkinivan/damage_assessor/internal/repository/dynamodb"
	"github.com/kurochkinivan/damage_assessor/internal/repository/postgresql"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

type recordStore interface {
	pipeline.RecordSaver
	pipeline.RecordProvider
}

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("aws_region", a.cfg.AWS.Region),
		slog.String("bucket", a.cfg.Storage.Bucket),
		slog.String("record_store", a.cfg.Records.Backend),
		slog.String("records_table", a.cfg.Records.Table),
		slog.String("model_id", a.cfg.Inference.ModelID),
	)

	if a.cfg.Storage.Bucket == "" || a.cfg.Records.Table == "" {
		a.log.WarnContext(ctx, "storage targets are incomplete, uploads will be rejected until they are configured")
	}
	if a.cfg.Inference.ModelID == "" {
		a.log.WarnContext(ctx, "inference model is not configured, uploads will be stored without assessments")
	}

	awsCfg, err := awsconfig.Load(ctx, a.cfg.AWS)
	if err != nil {
		return fmt.Errorf("failed to load aws config: %w", err)
	}

	records, closeRecords, err := a.recordStore(ctx, awsCfg)
	if err != nil {
		return err
	}
	defer closeRecords()

	blobs := s3storage.New(awsCfg, a.cfg.Storage.Endpoint)
	assessor := bedrock.NewFromConfig(awsCfg, a.cfg.Inference.ModelID, a.cfg.Inference.Timeout)

	targets := pipeline.Targets{
		Bucket:       a.cfg.Storage.Bucket,
		RecordsTable: a.cfg.Records.Table,
	}

	uploader := pipeline.NewUploader(a.log, targets, blobs, assessor, records)
	lookup := pipeline.NewLookup(a.log, targets, records, blobs, a.cfg.Storage.PresignTTL)

	server, err := v1.NewServer(a.cfg.HTTP, a.log, uploader, lookup, report_generator.New())
	if err != nil {
		return fmt.Errorf("failed to create http server: %w", err)
	}

	return a.serve(ctx, server)
}

// recordStore opens the configured record backend. The returned func releases it.
func (a *App) recordStore(ctx context.Context, awsCfg aws.Config) (recordStore, func(), error) {
	switch a.cfg.Records.Backend {
	case config.RecordStorePostgreSQL:
		a.log.InfoContext(ctx, "establishing postgresql connection",
			slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
			slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
			slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
		)

		pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create db connection: %w", err)
		}

		return postgresql.NewUploadsRepository(pool, a.cfg.Records.Table), pool.Close, nil

	case config.RecordStoreDynamoDB, "":
		client := dynamodb.NewClient(awsCfg, a.cfg.Records.Endpoint)

		return dynamodb.NewUploadsRepository(client, a.cfg.Records.Table), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown record store %q", a.cfg.Records.Backend)
	}
}

func (a *App) serve(ctx context.Context, server *v1.Server) error {
	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "app stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "app stopped gracefully")

	return nil
}
