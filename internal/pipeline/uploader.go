package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/damage_assessor/internal/domain"
)

const (
	MaxImageSize = 10 * 1024 * 1024

	storagePrefix    = "uploads/"
	defaultExtension = "jpg"
)

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"image/heic": true,
	"image/heif": true,
}

// Targets names the external locations an upload is written to.
type Targets struct {
	Bucket       string
	RecordsTable string
}

type Uploader struct {
	log      *slog.Logger
	targets  Targets
	blobs    BlobStore
	assessor Assessor
	records  RecordSaver
	now      func() time.Time
}

func NewUploader(
	log *slog.Logger,
	targets Targets,
	blobs BlobStore,
	assessor Assessor,
	records RecordSaver,
) *Uploader {
	return &Uploader{
		log:      log,
		targets:  targets,
		blobs:    blobs,
		assessor: assessor,
		records:  records,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Submit stores the image, asks for an assessment and indexes the result.
// Only validation, configuration and the image write can fail the call;
// assessment and indexing failures are recorded or logged and the submission still succeeds.
func (u *Uploader) Submit(ctx context.Context, image domain.Image) (*domain.Submission, error) {
	if err := validateImage(image); err != nil {
		return nil, err
	}

	if err := u.checkTargets(); err != nil {
		return nil, err
	}

	uploadID := uuid.NewString()
	key := StorageKey(uploadID, image.Filename)

	log := u.log.With(
		slog.String("upload_id", uploadID),
		slog.String("key", key),
		slog.String("filename", image.Filename),
	)

	// the caller may go away, but a stored image must still be assessed and indexed
	ctx = context.WithoutCancel(ctx)

	if err := u.blobs.PutObject(ctx, u.targets.Bucket, key, image.Data, image.ContentType); err != nil {
		log.ErrorContext(ctx, "failed to store image", slog.String("err", err.Error()))
		return nil, fmt.Errorf("%w: %w", ErrBlobWrite, err)
	}
	uploadedAt := u.now()

	log.InfoContext(ctx, "image stored", slog.Int64("size", image.Size))

	outcome := u.assess(ctx, log, image)

	record := &domain.UploadRecord{
		UploadID:      uploadID,
		Filename:      image.Filename,
		ContentType:   image.ContentType,
		FileSize:      image.Size,
		StorageKey:    key,
		StorageBucket: u.targets.Bucket,
		UploadedAt:    uploadedAt,
		Outcome:       outcome,
	}

	if err := u.index(ctx, record); err != nil {
		log.ErrorContext(ctx, "failed to index upload, image is stored without a record",
			slog.String("bucket", u.targets.Bucket),
			slog.String("err", err.Error()),
		)
	}

	return &domain.Submission{
		UploadID:    uploadID,
		StorageKey:  key,
		Filename:    image.Filename,
		ContentType: image.ContentType,
		Size:        image.Size,
	}, nil
}

func (u *Uploader) assess(ctx context.Context, log *slog.Logger, image domain.Image) domain.Outcome {
	assessment, err := u.assessor.Assess(ctx, image.Data, image.ContentType)
	if err == nil && assessment == nil {
		err = errors.New("assessor returned no result")
	}
	if err == nil {
		err = assessment.Validate()
	}

	if err != nil {
		log.WarnContext(ctx, "damage assessment failed, continuing without it", slog.String("err", err.Error()))

		reason := err.Error()
		if reason == "" {
			reason = "assessment failed"
		}

		return domain.Failed{Reason: reason}
	}

	log.InfoContext(ctx, "damage assessed",
		slog.String("make", assessment.Vehicle.Make),
		slog.String("model", assessment.Vehicle.Model),
	)

	return domain.Assessed{Assessment: *assessment, AssessedAt: u.now()}
}

func (u *Uploader) index(ctx context.Context, record *domain.UploadRecord) error {
	if err := u.records.SaveUpload(ctx, record); err != nil {
		return fmt.Errorf("failed to save upload record: %w", err)
	}

	return nil
}

func (u *Uploader) checkTargets() error {
	if u.targets.Bucket == "" {
		return fmt.Errorf("%w: storage bucket is not configured", ErrConfiguration)
	}

	if u.targets.RecordsTable == "" {
		return fmt.Errorf("%w: records table is not configured", ErrConfiguration)
	}

	return nil
}

func validateImage(image domain.Image) error {
	if !allowedContentTypes[image.ContentType] {
		return fmt.Errorf("%w: content type %q is not allowed, use JPEG, PNG, GIF, WebP, HEIC or HEIF", ErrInvalidInput, image.ContentType)
	}

	if image.Size > MaxImageSize {
		return fmt.Errorf("%w: file is too large, maximum size is 10MB", ErrInvalidInput)
	}

	if image.Size <= 0 || int64(len(image.Data)) != image.Size {
		return fmt.Errorf("%w: file is empty or its size does not match the declared %d bytes", ErrInvalidInput, image.Size)
	}

	return nil
}

// StorageKey derives the blob key for an upload from its id and the extension of the original filename.
func StorageKey(uploadID, filename string) string {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		ext = defaultExtension
	}

	return storagePrefix + uploadID + "." + ext
}
