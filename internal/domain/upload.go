package domain

import (
	"encoding/json"
	"errors"
	"time"
)

var ErrUploadNotFound = errors.New("upload not found")

// Image is a submitted file as received from the caller.
type Image struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

// Submission is returned to the caller once the image is stored.
type Submission struct {
	UploadID    string `json:"uploadId"`
	StorageKey  string `json:"key"`
	Filename    string `json:"filename"`
	ContentType string `json:"type"`
	Size        int64  `json:"size"`
}

type UploadRecord struct {
	UploadID      string
	Filename      string
	ContentType   string
	FileSize      int64
	StorageKey    string
	StorageBucket string
	UploadedAt    time.Time
	Outcome       Outcome
}

type uploadRecordJSON struct {
	UploadID        string            `json:"uploadId"`
	Filename        string            `json:"filename"`
	StorageKey      string            `json:"s3Key"`
	StorageBucket   string            `json:"s3Bucket"`
	ContentType     string            `json:"contentType"`
	FileSize        int64             `json:"fileSize"`
	UploadedAt      time.Time         `json:"uploadedAt"`
	Assessment      *DamageAssessment `json:"assessment,omitempty"`
	AssessedAt      *time.Time        `json:"assessedAt,omitempty"`
	AssessmentError *string           `json:"assessmentError,omitempty"`
}

func (r UploadRecord) MarshalJSON() ([]byte, error) {
	assessment, assessedAt, assessmentError := OutcomeFields(r.Outcome)

	return json.Marshal(uploadRecordJSON{
		UploadID:        r.UploadID,
		Filename:        r.Filename,
		StorageKey:      r.StorageKey,
		StorageBucket:   r.StorageBucket,
		ContentType:     r.ContentType,
		FileSize:        r.FileSize,
		UploadedAt:      r.UploadedAt,
		Assessment:      assessment,
		AssessedAt:      assessedAt,
		AssessmentError: assessmentError,
	})
}

func (r *UploadRecord) UnmarshalJSON(data []byte) error {
	var v uploadRecordJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	var assessmentError string
	if v.AssessmentError != nil {
		assessmentError = *v.AssessmentError
	}

	outcome, err := OutcomeFromFields(v.Assessment, v.AssessedAt, assessmentError)
	if err != nil {
		return err
	}

	*r = UploadRecord{
		UploadID:      v.UploadID,
		Filename:      v.Filename,
		ContentType:   v.ContentType,
		FileSize:      v.FileSize,
		StorageKey:    v.StorageKey,
		StorageBucket: v.StorageBucket,
		UploadedAt:    v.UploadedAt,
		Outcome:       outcome,
	}

	return nil
}
