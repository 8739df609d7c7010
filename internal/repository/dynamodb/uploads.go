package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/kurochkinivan/damage_assessor/internal/domain"
)

const keyAttribute = "uploadId"

type API interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type UploadsRepository struct {
	client API
	table  string
}

func NewUploadsRepository(client API, table string) *UploadsRepository {
	return &UploadsRepository{
		client: client,
		table:  table,
	}
}

// NewClient builds a DynamoDB client, pointed at endpoint when one is given (e.g. DynamoDB Local).
func NewClient(awsCfg aws.Config, endpoint string) *dynamodb.Client {
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}

// SaveUpload writes a new record. Existing records are never overwritten.
func (r *UploadsRepository) SaveUpload(ctx context.Context, record *domain.UploadRecord) error {
	item, err := attributevalue.MarshalMap(toItem(record))
	if err != nil {
		return fmt.Errorf("failed to marshal upload item: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(" + keyAttribute + ")"),
	})
	if err != nil {
		return fmt.Errorf("failed to put upload item: %w", err)
	}

	return nil
}

func (r *UploadsRepository) UploadByID(ctx context.Context, uploadID string) (*domain.UploadRecord, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			keyAttribute: &types.AttributeValueMemberS{Value: uploadID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get upload item: %w", err)
	}

	if len(out.Item) == 0 {
		return nil, domain.ErrUploadNotFound
	}

	return unmarshalRecord(out.Item)
}

// RecentUploads returns one scan page of at most limit records. Scan order is unspecified.
func (r *UploadsRepository) RecentUploads(ctx context.Context, limit int) ([]*domain.UploadRecord, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
		Limit:     aws.Int32(int32(limit)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan upload items: %w", err)
	}

	records := make([]*domain.UploadRecord, 0, len(out.Items))
	for _, item := range out.Items {
		record, err := unmarshalRecord(item)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

type uploadItem struct {
	UploadID        string                   `dynamodbav:"uploadId"`
	Filename        string                   `dynamodbav:"filename"`
	StorageKey      string                   `dynamodbav:"s3Key"`
	StorageBucket   string                   `dynamodbav:"s3Bucket"`
	ContentType     string                   `dynamodbav:"contentType"`
	FileSize        int64                    `dynamodbav:"fileSize"`
	UploadedAt      string                   `dynamodbav:"uploadedAt"`
	Assessment      *domain.DamageAssessment `dynamodbav:"assessment,omitempty"`
	AssessedAt      string                   `dynamodbav:"assessedAt,omitempty"`
	AssessmentError string                   `dynamodbav:"assessmentError,omitempty"`
}

func toItem(record *domain.UploadRecord) uploadItem {
	item := uploadItem{
		UploadID:      record.UploadID,
		Filename:      record.Filename,
		StorageKey:    record.StorageKey,
		StorageBucket: record.StorageBucket,
		ContentType:   record.ContentType,
		FileSize:      record.FileSize,
		UploadedAt:    record.UploadedAt.UTC().Format(time.RFC3339Nano),
	}

	assessment, assessedAt, assessmentError := domain.OutcomeFields(record.Outcome)
	item.Assessment = assessment
	if assessedAt != nil {
		item.AssessedAt = assessedAt.UTC().Format(time.RFC3339Nano)
	}
	if assessmentError != nil {
		item.AssessmentError = *assessmentError
	}

	return item
}

func unmarshalRecord(av map[string]types.AttributeValue) (*domain.UploadRecord, error) {
	var item uploadItem
	if err := attributevalue.UnmarshalMap(av, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal upload item: %w", err)
	}

	uploadedAt, err := parseTime(item.UploadedAt)
	if err != nil {
		return nil, fmt.Errorf("upload %q: invalid uploadedAt: %w", item.UploadID, err)
	}

	var assessedAt *time.Time
	if item.AssessedAt != "" {
		at, err := parseTime(item.AssessedAt)
		if err != nil {
			return nil, fmt.Errorf("upload %q: invalid assessedAt: %w", item.UploadID, err)
		}
		assessedAt = &at
	}

	outcome, err := domain.OutcomeFromFields(item.Assessment, assessedAt, item.AssessmentError)
	if err != nil {
		return nil, fmt.Errorf("upload %q: %w", item.UploadID, err)
	}

	return &domain.UploadRecord{
		UploadID:      item.UploadID,
		Filename:      item.Filename,
		ContentType:   item.ContentType,
		FileSize:      item.FileSize,
		StorageKey:    item.StorageKey,
		StorageBucket: item.StorageBucket,
		UploadedAt:    uploadedAt,
		Outcome:       outcome,
	}, nil
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	return time.Parse(time.RFC3339Nano, s)
}
