package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

const (
	RecordStoreDynamoDB   = "dynamodb"
	RecordStorePostgreSQL = "postgresql"
)

type Config struct {
	AWS
	Storage
	Records
	Inference
	PostgreSQL
	HTTP
}

type AWS struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

type Storage struct {
	Bucket     string
	Endpoint   string
	PresignTTL time.Duration
}

type Records struct {
	Backend  string
	Table    string
	Endpoint string
}

type Inference struct {
	ModelID string
	Timeout time.Duration
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		AWS: AWS{
			Region:          cmd.String("aws-region"),
			AccessKeyID:     cmd.String("aws-access-key-id"),
			SecretAccessKey: cmd.String("aws-secret-access-key"),
		},
		Storage: Storage{
			Bucket:     cmd.String("s3-bucket"),
			Endpoint:   cmd.String("s3-endpoint"),
			PresignTTL: cmd.Duration("s3-presign-ttl"),
		},
		Records: Records{
			Backend:  cmd.String("record-store"),
			Table:    cmd.String("records-table"),
			Endpoint: cmd.String("dynamodb-endpoint"),
		},
		Inference: Inference{
			ModelID: cmd.String("bedrock-model-id"),
			Timeout: cmd.Duration("bedrock-timeout"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
	}
}
