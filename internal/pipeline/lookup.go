package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/damage_assessor/internal/domain"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 100
)

// Lookup reads upload records back for the report and listing views.
type Lookup struct {
	log        *slog.Logger
	targets    Targets
	records    RecordProvider
	presigner  Presigner
	presignTTL time.Duration
}

func NewLookup(
	log *slog.Logger,
	targets Targets,
	records RecordProvider,
	presigner Presigner,
	presignTTL time.Duration,
) *Lookup {
	return &Lookup{
		log:        log,
		targets:    targets,
		records:    records,
		presigner:  presigner,
		presignTTL: presignTTL,
	}
}

func (l *Lookup) GetByID(ctx context.Context, uploadID string) (*domain.UploadRecord, error) {
	if l.targets.RecordsTable == "" {
		return nil, fmt.Errorf("%w: records table is not configured", ErrConfiguration)
	}

	if _, err := uuid.Parse(uploadID); err != nil {
		return nil, ErrNotFound
	}

	record, err := l.records.UploadByID(ctx, uploadID)
	if err != nil {
		if errors.Is(err, domain.ErrUploadNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get upload %q: %w", uploadID, err)
	}

	return record, nil
}

// ListRecent returns up to limit records in store order. An unconfigured index yields an empty batch.
func (l *Lookup) ListRecent(ctx context.Context, limit int) ([]*domain.UploadRecord, error) {
	if l.targets.RecordsTable == "" {
		l.log.DebugContext(ctx, "records table is not configured, returning empty listing")
		return []*domain.UploadRecord{}, nil
	}

	if limit <= 0 {
		limit = DefaultListLimit
	}
	limit = min(limit, MaxListLimit)

	records, err := l.records.RecentUploads(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list uploads: %w", err)
	}

	if records == nil {
		records = []*domain.UploadRecord{}
	}

	return records, nil
}

// ImageURL returns a temporary link to the stored image of the record.
func (l *Lookup) ImageURL(ctx context.Context, record *domain.UploadRecord) (string, error) {
	url, err := l.presigner.PresignGetObject(ctx, record.StorageBucket, record.StorageKey, l.presignTTL)
	if err != nil {
		return "", fmt.Errorf("failed to presign image url: %w", err)
	}

	return url, nil
}
