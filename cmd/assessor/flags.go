package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/damage_assessor/internal/app"
	"github.com/kurochkinivan/damage_assessor/internal/config"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "assessor",
		Usage:   "Vehicle damage photo upload and assessment service",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
			if !ok {
				return errors.New("failed to get logger from context")
			}

			cfg := config.Load(cmd)

			return app.New(log, cfg).Run(ctx)
		},
	}
}

func flags() []cli.Flag {
	var configFile string

	source := func(env, key string) cli.ValueSourceChain {
		if env == "" {
			return cli.NewValueSourceChain(yaml.YAML(key, altsrc.NewStringPtrSourcer(&configFile)))
		}
		return cli.NewValueSourceChain(cli.EnvVar(env), yaml.YAML(key, altsrc.NewStringPtrSourcer(&configFile)))
	}

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &configFile,
		},
		&cli.StringFlag{
			Name:    "aws-region",
			Usage:   "Set AWS region",
			Value:   "us-east-1",
			Sources: source("AWS_REGION", "aws.region"),
		},
		&cli.StringFlag{
			Name:    "aws-access-key-id",
			Usage:   "Set AWS access key id, the default credential chain is used when empty",
			Sources: source("AWS_ACCESS_KEY_ID", "aws.access_key_id"),
		},
		&cli.StringFlag{
			Name:    "aws-secret-access-key",
			Usage:   "Set AWS secret access key",
			Sources: source("AWS_SECRET_ACCESS_KEY", "aws.secret_access_key"),
		},
		&cli.StringFlag{
			Name:    "s3-bucket",
			Usage:   "Set bucket uploaded images are stored in",
			Sources: source("S3_BUCKET_NAME", "storage.bucket"),
		},
		&cli.StringFlag{
			Name:    "s3-endpoint",
			Usage:   "Set custom S3 endpoint, e.g. a local emulator",
			Sources: source("S3_ENDPOINT", "storage.endpoint"),
		},
		&cli.DurationFlag{
			Name:    "s3-presign-ttl",
			Usage:   "Set lifetime of presigned image links",
			Value:   time.Hour,
			Sources: source("", "storage.presign_ttl"),
		},
		&cli.StringFlag{
			Name:      "record-store",
			Usage:     "Set upload record backend, dynamodb or postgresql",
			Value:     config.RecordStoreDynamoDB,
			Sources:   source("RECORD_STORE", "records.backend"),
			Validator: validateRecordStore,
		},
		&cli.StringFlag{
			Name:    "records-table",
			Usage:   "Set table upload records are written to",
			Sources: source("DYNAMODB_UPLOADS_TABLE_NAME", "records.table"),
		},
		&cli.StringFlag{
			Name:    "dynamodb-endpoint",
			Usage:   "Set custom DynamoDB endpoint, e.g. a local emulator",
			Sources: source("DYNAMODB_ENDPOINT", "records.endpoint"),
		},
		&cli.StringFlag{
			Name:    "bedrock-model-id",
			Usage:   "Set inference model id, uploads are stored without assessment when empty",
			Sources: source("BEDROCK_MODEL_ID", "inference.model_id"),
		},
		&cli.DurationFlag{
			Name:    "bedrock-timeout",
			Usage:   "Set inference call timeout",
			Value:   time.Minute,
			Sources: source("", "inference.timeout"),
		},
		&cli.StringFlag{
			Name:    "pg-host",
			Usage:   "Set PostgreSQL host",
			Value:   "localhost",
			Sources: source("PG_HOST", "postgresql.host"),
		},
		&cli.StringFlag{
			Name:    "pg-port",
			Usage:   "Set PostgreSQL port",
			Value:   "5432",
			Sources: source("PG_PORT", "postgresql.port"),
		},
		&cli.StringFlag{
			Name:    "pg-username",
			Usage:   "Set PostgreSQL username",
			Sources: source("PG_USERNAME", "postgresql.username"),
		},
		&cli.StringFlag{
			Name:    "pg-password",
			Usage:   "Set PostgreSQL password",
			Sources: source("PG_PASSWORD", "postgresql.password"),
		},
		&cli.StringFlag{
			Name:    "pg-dbname",
			Usage:   "Set PostgreSQL database name",
			Value:   "damage_assessor",
			Sources: source("PG_DBNAME", "postgresql.dbname"),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: source("HTTP_HOST", "http.host"),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: source("HTTP_PORT", "http.port"),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: source("", "http.idle_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   30 * time.Second,
			Sources: source("", "http.read_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   2 * time.Minute,
			Sources: source("", "http.write_timeout"),
		},
	}
}

func validateRecordStore(backend string) error {
	switch backend {
	case config.RecordStoreDynamoDB, config.RecordStorePostgreSQL:
		return nil
	default:
		return fmt.Errorf("unknown record store %q, use %s or %s", backend, config.RecordStoreDynamoDB, config.RecordStorePostgreSQL)
	}
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
