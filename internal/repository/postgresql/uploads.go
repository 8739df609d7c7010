package postgresql

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kurochkinivan/damage_assessor/internal/domain"
)

const TableUploads = "uploads"

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type UploadsRepository struct {
	db    DBTX
	qb    sq.StatementBuilderType
	table string
}

func NewUploadsRepository(db DBTX, table string) *UploadsRepository {
	if table == "" {
		table = TableUploads
	}

	return &UploadsRepository{
		db:    db,
		qb:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		table: table,
	}
}

type uploadRow struct {
	UploadID        string                   `db:"upload_id"`
	Filename        string                   `db:"filename"`
	ContentType     string                   `db:"content_type"`
	FileSize        int64                    `db:"file_size"`
	StorageKey      string                   `db:"storage_key"`
	StorageBucket   string                   `db:"storage_bucket"`
	UploadedAt      time.Time                `db:"uploaded_at"`
	Assessment      *domain.DamageAssessment `db:"assessment"`
	AssessedAt      *time.Time               `db:"assessed_at"`
	AssessmentError *string                  `db:"assessment_error"`
}

var uploadColumns = []string{
	"upload_id::text AS upload_id",
	"filename",
	"content_type",
	"file_size",
	"storage_key",
	"storage_bucket",
	"uploaded_at",
	"assessment",
	"assessed_at",
	"assessment_error",
}

// SaveUpload inserts a new record. A duplicate upload id is an error, records are never overwritten.
func (r *UploadsRepository) SaveUpload(ctx context.Context, record *domain.UploadRecord) error {
	assessment, assessedAt, assessmentError := domain.OutcomeFields(record.Outcome)

	sql, args, err := r.qb.
		Insert(r.table).
		Columns(
			"upload_id",
			"filename",
			"content_type",
			"file_size",
			"storage_key",
			"storage_bucket",
			"uploaded_at",
			"assessment",
			"assessed_at",
			"assessment_error",
		).
		Values(
			record.UploadID,
			record.Filename,
			record.ContentType,
			record.FileSize,
			record.StorageKey,
			record.StorageBucket,
			record.UploadedAt,
			assessment,
			assessedAt,
			assessmentError,
		).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}

func (r *UploadsRepository) UploadByID(ctx context.Context, uploadID string) (*domain.UploadRecord, error) {
	sql, args, err := r.qb.
		Select(uploadColumns...).
		From(r.table).
		Where(sq.Eq{"upload_id": uploadID}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[uploadRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUploadNotFound
		}
		return nil, collectRowsError(err)
	}

	return row.toDomain()
}

func (r *UploadsRepository) RecentUploads(ctx context.Context, limit int) ([]*domain.UploadRecord, error) {
	sql, args, err := r.qb.
		Select(uploadColumns...).
		From(r.table).
		OrderBy("uploaded_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	uploads, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[uploadRow])
	if err != nil {
		return nil, collectRowsError(err)
	}

	records := make([]*domain.UploadRecord, 0, len(uploads))
	for _, u := range uploads {
		record, err := u.toDomain()
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func (u *uploadRow) toDomain() (*domain.UploadRecord, error) {
	var assessmentError string
	if u.AssessmentError != nil {
		assessmentError = *u.AssessmentError
	}

	assessedAt := u.AssessedAt
	if assessedAt != nil {
		utc := assessedAt.UTC()
		assessedAt = &utc
	}

	outcome, err := domain.OutcomeFromFields(u.Assessment, assessedAt, assessmentError)
	if err != nil {
		return nil, inconsistentRowError(u.UploadID, err)
	}

	return &domain.UploadRecord{
		UploadID:      u.UploadID,
		Filename:      u.Filename,
		ContentType:   u.ContentType,
		FileSize:      u.FileSize,
		StorageKey:    u.StorageKey,
		StorageBucket: u.StorageBucket,
		UploadedAt:    u.UploadedAt.UTC(),
		Outcome:       outcome,
	}, nil
}
