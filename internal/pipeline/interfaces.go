package pipeline

import (
	"context"
	"time"

	"github.com/kurochkinivan/damage_assessor/internal/domain"
)

type BlobStore interface {
	PutObject(ctx context.Context, bucket, key string, body []byte, contentType string) error
}

type Presigner interface {
	PresignGetObject(ctx context.Context, bucket, key string, ttl time.Duration) (string, error)
}

type Assessor interface {
	Assess(ctx context.Context, image []byte, contentType string) (*domain.DamageAssessment, error)
}

type RecordSaver interface {
	SaveUpload(ctx context.Context, record *domain.UploadRecord) error
}

type RecordProvider interface {
	UploadByID(ctx context.Context, uploadID string) (*domain.UploadRecord, error)
	RecentUploads(ctx context.Context, limit int) ([]*domain.UploadRecord, error)
}
